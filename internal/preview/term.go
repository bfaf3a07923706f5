package preview

import (
	"os"

	"golang.org/x/term"
)

// TerminalSize returns the size of the terminal attached to f, or the
// fallback when f is not a terminal.
func TerminalSize(f *os.File, fallbackWidth, fallbackHeight int) (width, height int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth, fallbackHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// Columns returns the drawing width for f: the configured value when
// positive, otherwise the terminal width minus the outer border.
func Columns(f *os.File, configured int) int {
	if configured > 0 {
		return configured
	}
	w, _ := TerminalSize(f, 80, 24)
	return max(w-2, 1)
}
