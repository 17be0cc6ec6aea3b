package main

import (
	"fmt"

	"github.com/Muxutruk2/gemini/internal/config"
	"github.com/Muxutruk2/gemini/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the visit history",
		Long: `History lists the most recent visits recorded by browsing sessions,
newest first, with the status code the server answered.

Examples:
  # Show the last 20 visits
  gemini history

  # Show more
  gemini history --limit 100

  # Delete all recorded visits
  gemini history --clear`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of visits to show")
	cmd.Flags().Bool("clear", false, "Delete all recorded visits")
	cmd.Flags().String("data-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	clearAll, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return err
	}
	dir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}
	if dir == "" {
		dir = config.XDGDataDir()
	}

	store, err := history.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()

	if clearAll {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	visits, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(visits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No visits recorded yet.")
		return nil
	}

	for _, v := range visits {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %2d  %s\n",
			v.VisitedAt.Local().Format("2006-01-02 15:04:05"), v.StatusCode, v.URL)
	}
	return nil
}
