package preview

import "github.com/mattn/go-runewidth"

// Cell is a single character cell of the preview grid.
// Wide characters occupy two cells; the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

// NewCell creates a Cell with its display width detected.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether c is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of r in terminal cells, 1 or 2.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return min(w, 2)
}
