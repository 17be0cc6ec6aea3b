package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// ErrUnknownPager is returned when the configured pager name is not one
// of the supported programs.
var ErrUnknownPager = errors.New("unknown pager: supported values are less, more, bat, nvim")

// Pager names the external program used to display documents.
type Pager string

// Supported pagers.
const (
	PagerLess Pager = "less"
	PagerMore Pager = "more"
	PagerBat  Pager = "bat"
	PagerNvim Pager = "nvim"
)

// ParsePager validates a pager name from configuration or flags.
func ParsePager(name string) (Pager, error) {
	switch Pager(strings.ToLower(strings.TrimSpace(name))) {
	case PagerLess:
		return PagerLess, nil
	case PagerMore:
		return PagerMore, nil
	case PagerBat:
		return PagerBat, nil
	case PagerNvim:
		return PagerNvim, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPager, name)
	}
}

// command builds the pager invocation.
func (p Pager) command() *exec.Cmd {
	switch p {
	case PagerMore:
		return exec.Command("more")
	case PagerBat:
		return exec.Command("bat", "--paging=always", "--decorations=never")
	case PagerNvim:
		return exec.Command("nvim", "+Man!", "-")
	default:
		return exec.Command("less", "-R")
	}
}

// Show pipes the document body and its numbered link list through the
// pager and blocks until the user closes it. When the pager cannot be
// spawned the content is written to stdout instead so the document is
// never lost.
func (p Pager) Show(body string, links []gemini.Link) error {
	content := renderContent(body, links)

	cmd := p.command()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		fmt.Println(content)
		return nil
	}
	if err := cmd.Start(); err != nil {
		fmt.Println(content)
		return nil
	}

	// The pager may exit before reading everything; a broken pipe here
	// is not an error.
	_, _ = io.WriteString(stdin, content)
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("pager %s: %w", p, err)
	}
	return nil
}

// renderContent joins the body and the numbered link footer.
func renderContent(body string, links []gemini.Link) string {
	var b strings.Builder
	if body == "" {
		b.WriteString("No content")
	} else {
		b.WriteString(body)
	}
	b.WriteString("\n\n")
	for i, link := range links {
		name := link.Name
		if name == "" {
			name = link.Href
		}
		fmt.Fprintf(&b, "%d: %s (%s)\n", i, name, link.Href)
	}
	return b.String()
}
