// Package main provides the entry point for the gemini CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Muxutruk2/gemini/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts an interactive browsing session.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gemini [url]",
		Short: "Terminal browser for the Gemini protocol",
		Long: `gemini is a terminal browser for the Gemini protocol.

It fetches a capsule page over TLS, displays it through a pager, and
prompts for the next action: follow a numbered link, type a new URL,
go back, reload, or quit. Server input prompts (status 1x) and
redirects (status 3x) are handled in place.

Certificate verification is skipped: self-signed certificates are the
norm in Geminispace.`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		RunE:          runBrowseCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Browsing flags live on the root because browsing is the default action
	cmd.Flags().StringP("pager", "p", config.DefaultPager,
		"Pager program: less, more, bat, or nvim")
	cmd.Flags().IntP("max-redirects", "r", config.DefaultMaxRedirects,
		"Maximum consecutive redirects before giving up")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:9050 for Tor)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .gemini in current or home directory)")
	cmd.Flags().Bool("no-history", false,
		"Do not record visits in the history database")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
