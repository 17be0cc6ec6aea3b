package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags; build info fills the gaps for plain
// "go install" builds.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildMetadata is the resolved version information of this binary.
type buildMetadata struct {
	Version string
	Commit  string
	Date    string
}

// resolveBuildMetadata merges ldflags values with the module build info.
// ldflags win; unset fields fall back to vcs stamps, then to placeholders.
func resolveBuildMetadata() buildMetadata {
	meta := buildMetadata{Version: version, Commit: commit, Date: date}

	if info, ok := debug.ReadBuildInfo(); ok {
		if meta.Version == "" {
			meta.Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if meta.Commit == "" {
					meta.Commit = shortHash(setting.Value)
				}
			case "vcs.time":
				if meta.Date == "" {
					meta.Date = setting.Value
				}
			}
		}
	}

	if meta.Version == "" {
		meta.Version = "(devel)"
	}
	if meta.Commit == "" {
		meta.Commit = "unknown"
	}
	if meta.Date == "" {
		meta.Date = "unknown"
	}
	return meta
}

// shortHash abbreviates a vcs revision to the usual seven characters.
func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// getVersion returns the version string shown by --version.
func getVersion() string {
	return resolveBuildMetadata().Version
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of gemini.`,
		Run: func(cmd *cobra.Command, _ []string) {
			meta := resolveBuildMetadata()
			fmt.Fprintf(cmd.OutOrStdout(), "gemini %s (commit %s, built %s)\n",
				meta.Version, meta.Commit, meta.Date)
		},
	}
}
