// Package terminal prompts for secrets on the controlling terminal.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"cpgate/internal/errors"
)

// Adapter reads passwords from stdin with echo disabled.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
}

// NewAdapter creates a new terminal adapter. Prompts go to stderr.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
	}
}

type passwordRead struct {
	password []byte
	err      error
}

// ReadPassword prompts and reads one line without echo. Cancelling ctx
// restores the terminal and returns immediately.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fd, ok := a.terminalFd()
	if !ok {
		return "", errors.NewValidationError("stdin", "", "terminal",
			"cannot prompt for a password: non-interactive terminal")
	}

	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read terminal state: %w", err)
	}

	fmt.Fprint(a.stderr, prompt)

	done := make(chan passwordRead, 1)
	go func() {
		password, err := term.ReadPassword(fd)
		done <- passwordRead{password: password, err: err}
	}()

	select {
	case r := <-done:
		fmt.Fprintln(a.stderr)
		if r.err != nil {
			return "", fmt.Errorf("failed to read password: %w", r.err)
		}
		return strings.TrimRight(string(r.password), "\r\n"), nil
	case <-ctx.Done():
		_ = term.Restore(fd, state)
		fmt.Fprintln(a.stderr)
		return "", ctx.Err()
	}
}

// IsInteractive reports whether stdin is a terminal.
func (a *Adapter) IsInteractive() bool {
	_, ok := a.terminalFd()
	return ok
}

func (a *Adapter) terminalFd() (int, bool) {
	file, ok := a.stdin.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	return fd, term.IsTerminal(fd)
}
