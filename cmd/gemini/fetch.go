package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Muxutruk2/gemini/internal/browser"
	"github.com/Muxutruk2/gemini/internal/config"
	"github.com/Muxutruk2/gemini/internal/gemini"
	"github.com/Muxutruk2/gemini/internal/log"
	"github.com/Muxutruk2/gemini/internal/render"
	"github.com/Muxutruk2/gemini/internal/transport"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a single page and print it",
		Long: `Fetch retrieves one Gemini page and prints its body to stdout.

Redirects are followed up to the configured bound. Pages that request
user input (status 1x) fail, since fetch is non-interactive.

Examples:
  # Print a page
  gemini fetch gemini://geminiprotocol.net/

  # Convert a page to Markdown and write it to a file
  gemini fetch --markdown --output page.md gemini://example.org/doc.gmi`,
		Args: cobra.ExactArgs(1),
		RunE: runFetchCmd,
	}

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each request")
	cmd.Flags().IntP("max-redirects", "r", config.DefaultMaxRedirects,
		"Maximum consecutive redirects before giving up")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:9050 for Tor)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the page as Markdown instead of raw gemtext")
	cmd.Flags().StringP("output", "o", "",
		"Write the page to specified file path (creates directories if needed)")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	maxRedirects, err := cmd.Flags().GetInt("max-redirects")
	if err != nil {
		return err
	}
	proxy, err := cmd.Flags().GetString("proxy")
	if err != nil {
		return err
	}
	asMarkdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	target, err := gemini.ParseLocation(args[0])
	if err != nil {
		return err
	}

	client, err := transport.NewClient(transport.Options{
		Timeout:      timeout,
		ProxyAddress: proxy,
	})
	if err != nil {
		return err
	}

	// No prompter: input responses fail instead of blocking a script.
	sess := browser.NewSession(client, browser.Options{
		MaxRedirects: maxRedirects,
		Logger:       logger,
	})

	doc, err := fetchDocument(cmd.Context(), sess, target)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	loc, err := sess.Current()
	if err != nil {
		_ = closeOutput()
		return err
	}

	writeErr := writeDocument(output, loc, doc, asMarkdown, logger)

	// A failed close can mean the page never reached the disk.
	if err := closeOutput(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("close output file: %w", err)
	}
	return writeErr
}

// writeDocument writes the page to output, as Markdown or as decoded text.
func writeDocument(output *os.File, loc gemini.Location, doc *gemini.Response, asMarkdown bool, logger *slog.Logger) error {
	if asMarkdown {
		return render.WriteMarkdown(output, loc, doc)
	}

	body, err := render.DecodeBody(doc.Meta, doc.Body)
	if err != nil {
		logger.Warn("could not decode body, printing raw bytes", "error", err)
		body = doc.Body
	}
	_, err = fmt.Fprintln(output, body)
	return err
}

// fetchDocument steps the session until a page is ready, following
// redirects without user interaction.
func fetchDocument(ctx context.Context, sess *browser.Session, target gemini.Location) (*gemini.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		outcome, err := sess.Step(ctx, target)
		if err != nil {
			return nil, err
		}
		switch outcome.Kind {
		case browser.OutcomeNext:
			target = outcome.Next
		case browser.OutcomeDisplay:
			return outcome.Document, nil
		case browser.OutcomeQuit:
			return nil, fmt.Errorf("fetch %s: session ended without a page", target)
		}
	}
}

// openOutput returns the destination writer for the fetched page and a
// close function. For stdout the close is a no-op; for a file it reports
// the close error so a failed flush is never silent.
func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}
