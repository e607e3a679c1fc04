package cli

import (
	"os"

	"golang.org/x/term"
)

// isInteractive reports whether prompts can be shown. Tests replace it.
var isInteractive = hasTTY

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
