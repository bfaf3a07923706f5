package preview

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone draws nothing.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// borderForDepth cycles styles so nested boxes stay distinguishable.
func borderForDepth(depth int) BorderStyle {
	styles := [...]BorderStyle{BorderSingle, BorderRounded, BorderDouble, BorderThick}
	return styles[depth%len(styles)]
}

// DrawBox draws a box border around rect. Boxes smaller than 2x2 are drawn
// as a filled run of edge characters so zero-thickness frames stay visible.
func DrawBox(g *Grid, rect Rect, border BorderStyle) {
	if border == BorderNone || rect.IsEmpty() {
		return
	}
	chars := border.Chars()

	clipped := rect.Intersect(g.Rect())
	if clipped.IsEmpty() {
		return
	}

	switch {
	case rect.Height == 1:
		g.Fill(clipped, chars.Top)
		return
	case rect.Width == 1:
		g.Fill(clipped, chars.Left)
		return
	}

	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	// Edges are drawn unclipped; SetRune ignores cells outside the grid.
	for x := left + 1; x < right; x++ {
		g.SetRune(x, top, chars.Top)
		g.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		g.SetRune(left, y, chars.Left)
		g.SetRune(right, y, chars.Right)
	}
	g.SetRune(left, top, chars.TopLeft)
	g.SetRune(right, top, chars.TopRight)
	g.SetRune(left, bottom, chars.BottomLeft)
	g.SetRune(right, bottom, chars.BottomRight)
}
