package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "gemini [url]" {
			t.Errorf("expected use 'gemini [url]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has browsing flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"pager", "max-redirects", "timeout", "proxy", "config", "no-history"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		subcommands := cmd.Commands()
		if len(subcommands) == 0 {
			t.Error("expected subcommands")
		}

		hasFetch := false
		hasHistory := false
		for _, sub := range subcommands {
			if sub.Use == "fetch <url>" {
				hasFetch = true
			}
			if sub.Use == "history" {
				hasHistory = true
			}
		}
		if !hasFetch {
			t.Error("expected fetch subcommand")
		}
		if !hasHistory {
			t.Error("expected history subcommand")
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}
