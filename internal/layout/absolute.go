package layout

// layoutAbsolute positions an overlay child against its container's full
// padded box (boxWidth x boxHeight). Absolute children do not stretch: an
// unresolved size is 0 unless both opposing offsets or an aspect ratio pin it.
func layoutAbsolute(container Style, child *Node, boxWidth, boxHeight float64) {
	cs := child.Style

	left, hasLeft := cs.Left.Resolve(boxWidth)
	right, hasRight := cs.Right.Resolve(boxWidth)
	top, hasTop := cs.Top.Resolve(boxHeight)
	bottom, hasBottom := cs.Bottom.Resolve(boxHeight)

	width, hasWidth := cs.Width.Resolve(boxWidth)
	if !hasWidth && hasLeft && hasRight {
		width = boxWidth - left - right - cs.Margin.Horizontal()
		hasWidth = true
	}
	height, hasHeight := cs.Height.Resolve(boxHeight)
	if !hasHeight && hasTop && hasBottom {
		height = boxHeight - top - bottom - cs.Margin.Vertical()
		hasHeight = true
	}

	if ratio, ok := aspectRatio(cs); ok {
		switch {
		case hasWidth && !hasHeight:
			height = width / ratio
		case hasHeight && !hasWidth:
			width = height * ratio
		}
	}

	width = nonNegative(clampValue(width, cs.MinWidth, cs.MaxWidth, boxWidth))
	height = nonNegative(clampValue(height, cs.MinHeight, cs.MaxHeight, boxHeight))

	var x, y float64
	switch {
	case hasLeft:
		x = left + cs.Margin.Left
	case hasRight:
		x = boxWidth - right - width - cs.Margin.Right
	default:
		x = container.Padding.Left
	}
	switch {
	case hasTop:
		y = top + cs.Margin.Top
	case hasBottom:
		y = boxHeight - bottom - height - cs.Margin.Bottom
	default:
		y = container.Padding.Top
	}

	child.Layout.Frame = NewRect(x, y, width, height)
	calculateNode(child, width, height)
}
