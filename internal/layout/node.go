package layout

// MeasureFunc reports the intrinsic size of a leaf node given the space its
// container offers. It is supplied by the host; the engine never measures content.
type MeasureFunc func(node *Node, availableWidth, availableHeight float64) Size

// Node represents an element in the layout tree.
type Node struct {
	// Configuration (user-set)
	Style    Style
	Children []*Node

	// Computed (set by layout engine)
	Layout Layout

	// Internal state
	dirty     bool  // Needs recalculation
	parent    *Node // Back-pointer for dirty propagation
	measure   MeasureFunc
	dirtyHook func(*Node)

	// Size of the last completed pass, for skipping clean subtrees.
	laidOut bool
	lastW   float64
	lastH   float64
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		Style: style,
		dirty: true, // New nodes need layout
	}
}

// AddChild appends children and marks this node dirty.
// A child that already has a parent is detached from it first.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// InsertChild inserts child at index, clamped to [0, len(Children)].
func (n *Node) InsertChild(child *Node, index int) {
	if child == nil {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	index = max(0, min(index, len(n.Children)))
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
	child.parent = n
	n.MarkDirty()
}

// RemoveChild removes a child by pointer and marks dirty.
// Sibling order is preserved. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// UpdateStyle applies fn to the node's style and marks the node dirty.
func (n *Node) UpdateStyle(fn func(*Style)) {
	fn(&n.Style)
	n.MarkDirty()
}

// SetMeasureFunc installs the intrinsic size callback for a leaf node.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	n.measure = fn
	n.MarkDirty()
}

// SetDirtyHook registers fn to be called when the tree rooted at n goes from
// clean to dirty. Repeated invalidations before the next layout pass call it
// at most once, which is how a host schedules a single recomputation.
func (n *Node) SetDirtyHook(fn func(*Node)) {
	n.dirtyHook = fn
}

// MarkDirty marks this node and all ancestors as needing recalculation.
// The walk does not stop at a node that is already dirty: a display:none
// subtree keeps its flag across passes while its ancestors are cleared.
func (n *Node) MarkDirty() {
	root := n
	for ; root.parent != nil; root = root.parent {
		root.dirty = true
	}
	wasDirty := root.dirty
	root.dirty = true
	if !wasDirty && root.dirtyHook != nil {
		root.dirtyHook(root)
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// isLeaf reports whether n should be sized by its measure callback.
func (n *Node) isLeaf() bool {
	return n.measure != nil && len(n.Children) == 0
}
