package ui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrEditAborted is returned when the editor exits unsuccessfully or the
// user leaves the buffer empty. The caller discards the edit and keeps
// the current location.
var ErrEditAborted = errors.New("edit aborted")

// defaultEditor is used when $EDITOR is unset.
const defaultEditor = "nano"

// EditText writes text to a temporary file, opens it in the user's
// editor, and returns the edited content with surrounding whitespace
// stripped.
func EditText(text string) (string, error) {
	tmp, err := os.CreateTemp("", "gemini-edit-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path) //nolint:errcheck // Best-effort cleanup.

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.Command(editor, path) //nolint:gosec // $EDITOR is the user's own choice.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEditAborted, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Reading back our own temp file.
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}

	edited := strings.TrimSpace(string(data))
	if edited == "" {
		return "", ErrEditAborted
	}
	return edited, nil
}
