package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Muxutruk2/gemini/internal/browser"
	"github.com/Muxutruk2/gemini/internal/config"
	"github.com/Muxutruk2/gemini/internal/gemini"
	"github.com/Muxutruk2/gemini/internal/history"
	"github.com/Muxutruk2/gemini/internal/log"
	"github.com/Muxutruk2/gemini/internal/render"
	"github.com/Muxutruk2/gemini/internal/transport"
	"github.com/Muxutruk2/gemini/internal/ui"
	"github.com/spf13/cobra"
)

// choicePrompt is shown under every displayed page.
const choicePrompt = "Select a link by number or type a new URL ([q]uit [b]ack [r]eload [e]dit): "

// runBrowseCmd executes the interactive browsing session.
func runBrowseCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	prompter := ui.NewTerminalPrompter()

	start := ""
	if len(args) > 0 {
		start = args[0]
	}
	if start == "" {
		start, err = prompter.Line("Enter a URL: ")
		if err != nil {
			return err
		}
	}
	target, err := gemini.ParseLocation(start)
	if err != nil {
		return err
	}

	return runBrowse(ctx, cfg, logger, prompter, target)
}

// buildConfig creates a Config from defaults, the configuration file,
// and cobra command flags, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; the default search
	// falls back to pure defaults when nothing is found.
	found := config.FindConfigFile(configPath)
	if found == "" && configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}
	if found != "" {
		file, err := config.LoadFile(found)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(file); err != nil {
			return nil, err
		}
	}

	// Flags override the file only when the user set them.
	if cmd.Flags().Changed("pager") {
		if cfg.Pager, err = cmd.Flags().GetString("pager"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-redirects") {
		if cfg.MaxRedirects, err = cmd.Flags().GetInt("max-redirects"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("proxy") {
		if cfg.ProxyAddress, err = cmd.Flags().GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("no-history") {
		if cfg.NoHistory, err = cmd.Flags().GetBool("no-history"); err != nil {
			return nil, err
		}
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runBrowse drives the navigation loop until the user quits or an
// unrecoverable error occurs.
func runBrowse(ctx context.Context, cfg *config.Config, logger *slog.Logger, prompter *ui.TerminalPrompter, target gemini.Location) error {
	pager, err := ui.ParsePager(cfg.Pager)
	if err != nil {
		return err
	}

	client, err := transport.NewClient(transport.Options{
		Timeout:      cfg.Timeout,
		ProxyAddress: cfg.ProxyAddress,
		MaxBodySize:  cfg.MaxBodySize,
	})
	if err != nil {
		return err
	}

	opener := ui.SystemOpener{}

	var recorder browser.Recorder
	if !cfg.NoHistory {
		store, err := history.Open(cfg.HistoryDir)
		if err != nil {
			// Browsing works without the journal.
			logger.Warn("could not open history database", "error", err)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	sess := browser.NewSession(client, browser.Options{
		MaxRedirects: cfg.MaxRedirects,
		Prompter:     prompter,
		Opener:       opener,
		Recorder:     recorder,
		Logger:       logger,
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		outcome, err := sess.Step(ctx, target)
		if err != nil {
			return err
		}

		switch outcome.Kind {
		case browser.OutcomeNext:
			target = outcome.Next
		case browser.OutcomeQuit:
			return nil
		case browser.OutcomeDisplay:
			doc := outcome.Document
			body, err := render.DecodeBody(doc.Meta, doc.Body)
			if err != nil {
				logger.Warn("could not decode body, showing raw bytes", "error", err)
				body = doc.Body
			}
			if err := pager.Show(body, doc.Links); err != nil {
				logger.Warn("pager failed", "error", err)
			}

			next, quit, err := choose(sess, prompter, opener, doc, logger)
			if err != nil {
				return err
			}
			if quit {
				fmt.Println("Goodbye!")
				return nil
			}
			target = next
		}
	}
}

// choose reads prompt input until it yields the next location to fetch
// or a quit. Unresolvable input is reported and re-prompted; external
// links are handed to the opener without navigating.
func choose(sess *browser.Session, prompter *ui.TerminalPrompter, opener browser.Opener, doc *gemini.Response, logger *slog.Logger) (gemini.Location, bool, error) {
	for {
		line, err := prompter.Line(choicePrompt)
		if err != nil {
			// EOF on stdin ends the session like an explicit quit.
			return gemini.Location{}, true, nil
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "q":
			return gemini.Location{}, true, nil
		case "b":
			loc, err := sess.Back()
			if err != nil {
				fmt.Println("Nothing to go back to.")
				continue
			}
			return loc, false, nil
		case "r":
			loc, err := sess.Reload()
			if err != nil {
				return gemini.Location{}, false, err
			}
			return loc, false, nil
		case "e":
			cur, err := sess.Current()
			if err != nil {
				continue
			}
			edited, err := ui.EditText(cur.String())
			if err != nil {
				if !errors.Is(err, ui.ErrEditAborted) {
					logger.Warn("editor failed", "error", err)
				}
				continue
			}
			line = edited
		}

		// A bare number picks the matching annotated link.
		if n, err := strconv.Atoi(line); err == nil {
			if n < 0 || n >= len(doc.Links) {
				fmt.Printf("No link numbered %d on this page.\n", n)
				continue
			}
			line = doc.Links[n].Href
		}

		target, err := sess.Resolve(line)
		if err != nil {
			fmt.Printf("Cannot resolve %q: %v\n", line, err)
			continue
		}
		if target.Kind == browser.TargetExternal {
			logger.Debug("opening external target", "target", target.External)
			if err := opener.Open(target.External); err != nil {
				fmt.Printf("Cannot open %s: %v\n", target.External, err)
			}
			continue
		}
		return target.Location, false, nil
	}
}
