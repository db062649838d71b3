package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTTY returns true if w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorsWanted decides whether diagnostics written to w are colorized.
// NO_COLOR disables colour whatever its value, see https://no-color.org.
func colorsWanted(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTTY(w)
}
