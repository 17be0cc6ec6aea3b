package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompter reads user input from the terminal. It implements the
// browser's Prompter interface: Line echoes the reply, Secret masks it.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter bound to stdin/stdout.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Line prints the prompt and reads one echoed line.
func (p *TerminalPrompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Secret prints the prompt and reads one line without echoing it.
func (p *TerminalPrompter) Secret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	reply, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret input: %w", err)
	}
	return string(reply), nil
}
