package preview

import "strings"

// Rect is a rectangle in whole cells.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlap of two rectangles, or an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Grid is a 2D array of cells the preview draws into.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid filled with spaces.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	blank := NewCell(' ')
	for i := range cells {
		cells[i] = blank
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in rows.
func (g *Grid) Height() int { return g.height }

// Rect returns the grid bounds.
func (g *Grid) Rect() Rect { return Rect{Width: g.width, Height: g.height} }

func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Cell returns the cell at (x, y), or an empty Cell out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	i := g.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return g.cells[i]
}

func (g *Grid) setCell(x, y int, c Cell) {
	if i := g.idx(x, y); i >= 0 {
		g.cells[i] = c
	}
}

// SetRune writes r at (x, y), clearing any wide character it overlaps.
func (g *Grid) SetRune(x, y int, r rune) {
	if g.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := g.Cell(x, y)

	if current.IsContinuation() {
		g.clearWideAt(x, y)
	}
	if current.Width == 2 {
		g.setCell(x+1, y, NewCell(' '))
	}
	if width == 2 && x+1 < g.width {
		next := g.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			g.clearWideAt(x+1, y)
		}
	}

	// A wide rune cannot start in the last column.
	if width == 2 && x+1 >= g.width {
		g.setCell(x, y, NewCell(' '))
		return
	}

	g.setCell(x, y, Cell{Rune: r, Width: uint8(width)})
	if width == 2 {
		g.setCell(x+1, y, Cell{})
	}
}

func (g *Grid) clearWideAt(x, y int) {
	cell := g.Cell(x, y)
	blank := NewCell(' ')

	if cell.IsContinuation() {
		g.setCell(x-1, y, blank)
		g.setCell(x, y, blank)
	} else if cell.Width == 2 {
		g.setCell(x, y, blank)
		g.setCell(x+1, y, blank)
	}
}

// SetString writes s from (x, y) without wrapping and returns the width used.
// Output stops at limit columns (or the grid edge when limit <= 0).
func (g *Grid) SetString(x, y int, s string, limit int) int {
	if y < 0 || y >= g.height {
		return 0
	}
	end := g.width
	if limit > 0 {
		end = min(end, x+limit)
	}

	cur := x
	for _, r := range s {
		w := RuneWidth(r)
		if cur+w > end {
			break
		}
		if cur >= 0 {
			g.SetRune(cur, y, r)
		}
		cur += w
	}
	return cur - x
}

// Fill sets every cell in rect to r.
func (g *Grid) Fill(rect Rect, r rune) {
	rect = rect.Intersect(g.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			g.SetRune(x, y, r)
		}
	}
}

// String renders the grid, one line per row. Continuation cells are skipped.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cell := g.cells[y*g.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (g *Grid) StringTrimmed() string {
	lines := strings.Split(g.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
