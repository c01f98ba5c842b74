package prompt

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// terminalFd returns the descriptor behind r when it is an interactive terminal.
func terminalFd(r io.Reader) (int, bool) {
	f, ok := r.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// readHidden reads a line without echo.
func readHidden(fd int) (string, error) {
	b, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// saveState captures the terminal state and returns an idempotent function
// restoring it. The result is nil when the state cannot be read.
func saveState(fd int) func() {
	state, err := term.GetState(fd)
	if err != nil {
		return nil
	}
	var once sync.Once
	return func() {
		once.Do(func() { _ = term.Restore(fd, state) })
	}
}

// enterRaw switches the terminal to raw mode. The returned function restores
// the previous mode and is safe to call more than once.
func enterRaw(fd int) (func(), error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	var once sync.Once
	return func() {
		once.Do(func() { _ = term.Restore(fd, state) })
	}, nil
}
