package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Frame is the node's box. Flow children are positioned relative to the
	// parent's content-box origin; absolute children relative to the parent's
	// padding-box origin.
	Frame Rect

	// Content is Frame minus padding, relative to Frame's origin.
	// Flow children are placed inside it.
	Content Rect
}
