package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const fallback = "vi"

// ErrNoEditor is returned when the editor command is blank.
var ErrNoEditor = errors.New("no editor configured")

// Editor opens files in an external program attached to the terminal.
type Editor struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns an editor for command, falling back to $VISUAL, $EDITOR and vi.
func New(command string) *Editor {
	return &Editor{
		Command: Resolve(command),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Resolve picks the editor command to run.
func Resolve(command string) string {
	for _, c := range []string{command, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return fallback
}

// Edit runs the editor on path and waits for it to exit.
func (e *Editor) Edit(path string) error {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return ErrNoEditor
	}
	args = append(args, path)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", args[0], err)
	}
	return nil
}
