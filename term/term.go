package term

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
)

const defaultTermWidth uint = 120

// IsTerminal returns true if w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetTerminalWidth returns the terminal width set by the TERMWIDTH or COLUMNS environment variables
func GetTerminalWidth() uint {
	for _, name := range []string{"TERMWIDTH", "COLUMNS"} {
		if w, err := strconv.Atoi(os.Getenv(name)); err == nil && w > 0 {
			return uint(w)
		}
	}
	return defaultTermWidth
}
