package ui

import (
	"fmt"
	"os/exec"
)

// SystemOpener hands non-gemini targets to the host URL opener. It
// implements the browser's Opener interface.
type SystemOpener struct{}

// Open launches the opener and returns without waiting for it. The
// process is reaped in the background; its exit status is not observed
// and never influences navigation.
func (SystemOpener) Open(target string) error {
	cmd := exec.Command("xdg-open", target)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %q: %w", target, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
