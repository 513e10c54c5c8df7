// Package terminal reports whether the process is attached to a terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminalFunc = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both terminals, which
// the full-screen client and huh prompts require.
func IsInteractive() bool {
	return StdinIsTerminal() && isTerminalFunc(int(os.Stdout.Fd()))
}

// StdinIsTerminal reports whether stdin is a terminal. When it is not, input
// is read from the pipe instead of prompting.
func StdinIsTerminal() bool {
	return isTerminalFunc(int(os.Stdin.Fd()))
}
