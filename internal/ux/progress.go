package ux

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Interactive reports whether stderr is a terminal. Spinners and prompts are
// suppressed on non-interactive runs (pipes, CI).
func Interactive() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Spin runs fn with a spinner on stderr while it executes. On
// non-interactive runs fn is executed without any decoration.
func Spin(message string, fn func() error) error {
	if !Interactive() {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	return fn()
}
