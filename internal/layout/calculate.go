package layout

// Calculate performs layout calculation on the tree rooted at root.
// The root and all laid-out descendants will have their Layout populated.
// Clean subtrees offered the same size as their last pass are skipped.
//
// availableWidth and availableHeight specify the root constraint. Negative
// or non-finite values are treated as 0.
func Calculate(root *Node, availableWidth, availableHeight float64) {
	if root == nil || root.Style.Display == DisplayNone {
		return
	}

	availableWidth = nonNegative(finite(availableWidth))
	availableHeight = nonNegative(finite(availableHeight))

	// The root resolves its own size against the available space. Children
	// receive theirs from the parent's flex calculation instead.
	style := root.Style
	width := style.Width.ResolveOr(availableWidth, availableWidth)
	height := style.Height.ResolveOr(availableHeight, availableHeight)
	width = nonNegative(clampValue(width, style.MinWidth, style.MaxWidth, availableWidth))
	height = nonNegative(clampValue(height, style.MinHeight, style.MaxHeight, availableHeight))

	root.Layout.Frame = NewRect(0, 0, width, height)
	calculateNode(root, width, height)
}

// calculateNode lays out the children of node, whose frame size has already
// been decided by its parent (or by Calculate for the root).
func calculateNode(node *Node, width, height float64) {
	// Dirty propagates up, so a clean node at the same size has a clean subtree
	if !node.dirty && node.laidOut && node.lastW == width && node.lastH == height {
		return
	}

	style := node.Style

	// 1. Content box: frame minus padding
	content := NewRect(0, 0, width, height).Inset(style.Padding)
	content.Width, content.Height = nonNegative(content.Width), nonNegative(content.Height)
	node.Layout.Content = content
	contentWidth, contentHeight := content.Width, content.Height

	// 2. Partition children, preserving order within each group
	var flow, overlay []*Node
	for _, child := range node.Children {
		if child.Style.Display == DisplayNone {
			continue
		}
		if child.Style.PositionType == PositionAbsolute {
			overlay = append(overlay, child)
		} else {
			flow = append(flow, child)
		}
	}

	// 3. Flow children within the content box
	if len(flow) > 0 {
		layoutFlow(style, flow, contentWidth, contentHeight)
	}

	// 4. Overlay children against the full padded box
	for _, child := range overlay {
		layoutAbsolute(style, child, width, height)
	}

	// 5. Clear dirty flag
	node.dirty = false
	node.laidOut = true
	node.lastW = width
	node.lastH = height
}
