package layout

import "math"

// flexItem holds intermediate calculation state for a flow child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node *Node

	align     Align
	basis     float64
	hypoCross float64

	mainBefore, mainAfter   float64
	crossBefore, crossAfter float64

	mainSize  float64
	crossSize float64
}

// layoutFlow arranges the flow children of a container within its content box.
// This implements the single-line flexbox algorithm.
func layoutFlow(style Style, children []*Node, contentWidth, contentHeight float64) {
	isRow := style.Direction.IsRow()

	// Determine main/cross axis dimensions
	mainSize, crossSize := contentWidth, contentHeight
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}
	gap := style.mainGap()
	totalGap := gap * float64(len(children)-1)

	// Phase 1: flex basis, hypothetical cross size and margins
	items := make([]flexItem, len(children))
	usedSpace := totalGap
	totalGrow := 0.0
	totalScaledShrink := 0.0

	for i, child := range children {
		cs := child.Style
		item := &items[i]
		item.node = child
		item.align = style.alignFor(cs)
		item.mainBefore = cs.Margin.mainBefore(isRow)
		item.mainAfter = cs.Margin.mainAfter(isRow)
		item.crossBefore = cs.Margin.crossBefore(isRow)
		item.crossAfter = cs.Margin.crossAfter(isRow)

		var measured *Size
		measure := func() Size {
			if measured == nil {
				s := child.measure(child, contentWidth, contentHeight)
				s.Width, s.Height = nonNegative(finite(s.Width)), nonNegative(finite(s.Height))
				measured = &s
			}
			return *measured
		}

		if v, ok := cs.FlexBasis.Resolve(mainSize); ok {
			item.basis = v
		} else if v, ok := cs.mainSize(isRow).Resolve(mainSize); ok {
			item.basis = v
		} else if child.isLeaf() {
			item.basis = axisOf(measure(), isRow)
		}
		item.basis = nonNegative(item.basis)

		if v, ok := cs.crossSize(isRow).Resolve(crossSize); ok {
			item.hypoCross = v
		} else if child.isLeaf() {
			item.hypoCross = axisOf(measure(), !isRow)
		} else {
			item.hypoCross = crossSize
		}

		usedSpace += item.basis + item.mainBefore + item.mainAfter
		totalGrow += nonNegative(cs.FlexGrow)
		totalScaledShrink += nonNegative(cs.FlexShrink) * item.basis
	}

	// Phase 2: distribute free space, then clamp to min/max
	freeSpace := mainSize - usedSpace
	for i := range items {
		item := &items[i]
		cs := item.node.Style
		switch {
		case freeSpace > 0 && totalGrow > 0:
			item.mainSize = item.basis + freeSpace*nonNegative(cs.FlexGrow)/totalGrow
		case freeSpace < 0 && totalScaledShrink > 0:
			item.mainSize = item.basis + freeSpace*(nonNegative(cs.FlexShrink)*item.basis)/totalScaledShrink
		default:
			item.mainSize = item.basis
		}
		minMain, maxMain := cs.mainBounds(isRow)
		item.mainSize = nonNegative(clampValue(item.mainSize, minMain, maxMain, mainSize))
	}

	// Phase 3: cross-axis sizing
	for i := range items {
		item := &items[i]
		cs := item.node.Style
		// Stretch overrides an explicit cross size; min/max and aspect ratio still apply
		if item.align == AlignStretch {
			item.crossSize = crossSize - item.crossBefore - item.crossAfter
		} else {
			item.crossSize = item.hypoCross
		}
		if ratio, ok := aspectRatio(cs); ok {
			if isRow {
				item.crossSize = item.mainSize / ratio
			} else {
				item.crossSize = item.mainSize * ratio
			}
		}
		minCross, maxCross := cs.crossBounds(isRow)
		item.crossSize = nonNegative(clampValue(item.crossSize, minCross, maxCross, crossSize))
	}

	// Phase 4: justify along the main axis
	remaining := mainSize - totalGap
	for i := range items {
		remaining -= items[i].mainSize + items[i].mainBefore + items[i].mainAfter
	}
	offset := justifyOffset(style.JustifyContent, remaining, len(items))
	spacing := gap + justifySpacing(style.JustifyContent, remaining, len(items))

	// Phase 5: place children and recurse
	cursor := offset
	for k := range items {
		i := k
		if style.Direction.IsReverse() {
			i = len(items) - 1 - k
		}
		item := &items[i]

		cursor += item.mainBefore
		crossPos := alignOffset(item.align, crossSize, item.crossSize, item.crossBefore, item.crossAfter)

		var frame Rect
		if isRow {
			frame = NewRect(cursor, crossPos, item.mainSize, item.crossSize)
		} else {
			frame = NewRect(crossPos, cursor, item.crossSize, item.mainSize)
		}
		item.node.Layout.Frame = frame
		calculateNode(item.node, frame.Width, frame.Height)

		cursor += item.mainSize + item.mainAfter + spacing
	}
}

// justifyOffset returns the initial main-axis offset for the first child
// based on the justify mode and remaining space.
// Negative remaining space is applied as-is, so overflowing items shift back.
func justifyOffset(justify Justify, remaining float64, itemCount int) float64 {
	if itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyFlexEnd:
		return remaining
	case JustifyCenter:
		return remaining / 2
	case JustifySpaceAround:
		return remaining / float64(itemCount) / 2
	case JustifySpaceEvenly:
		return remaining / float64(itemCount+1)
	default: // JustifyFlexStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing added to the gap between children
// based on the justify mode and remaining space.
func justifySpacing(justify Justify, remaining float64, itemCount int) float64 {
	if itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		if itemCount == 1 {
			return 0
		}
		return remaining / float64(itemCount-1)
	case JustifySpaceAround:
		return remaining / float64(itemCount)
	case JustifySpaceEvenly:
		return remaining / float64(itemCount+1)
	default: // JustifyFlexStart, JustifyFlexEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
func alignOffset(align Align, crossSize, itemSize, marginBefore, marginAfter float64) float64 {
	switch align {
	case AlignFlexEnd:
		return crossSize - itemSize - marginAfter
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignFlexStart, AlignStretch, AlignBaseline
		return marginBefore
	}
}

// axisOf picks the main-axis (isRow: width) component of s.
func axisOf(s Size, isRow bool) float64 {
	if isRow {
		return s.Width
	}
	return s.Height
}

// aspectRatio returns the node's width/height ratio if it is usable.
func aspectRatio(s Style) (float64, bool) {
	if s.AspectRatio == nil {
		return 0, false
	}
	r := *s.AspectRatio
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}
