package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// mainBefore returns the edge that precedes a box along the main axis.
func (e Edges) mainBefore(isRow bool) float64 {
	if isRow {
		return e.Left
	}
	return e.Top
}

func (e Edges) mainAfter(isRow bool) float64 {
	if isRow {
		return e.Right
	}
	return e.Bottom
}

func (e Edges) crossBefore(isRow bool) float64 {
	if isRow {
		return e.Top
	}
	return e.Left
}

func (e Edges) crossAfter(isRow bool) float64 {
	if isRow {
		return e.Bottom
	}
	return e.Right
}
