package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditText opens text in $VISUAL or $EDITOR and returns the edited text and
// whether it differs from the input.
// Returns error if neither is set or the editor exits non-zero.
func EditText(text string) (string, bool, error) {
	editor := getEditor()
	if editor == "" {
		return "", false, fmt.Errorf("EDITOR not set. Set it or use `pz import --format text` instead")
	}

	tmpFile, err := os.CreateTemp("", "pz-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(text); err != nil {
		tmpFile.Close()
		return "", false, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", false, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return "", false, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to read edited file: %w", err)
	}

	return string(result), !bytes.Equal(result, []byte(text)), nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
func runEditor(editor, path string) error {
	// "code --wait" style commands carry their own args
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
