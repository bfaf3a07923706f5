package host

import (
	"github.com/grindlemire/go-flex/internal/document"
	"github.com/grindlemire/go-flex/internal/layout"
)

// Frames returns every displayed node's frame in absolute coordinates, in
// depth-first pre-order. Nodes with display: none and their subtrees are
// omitted.
func (h *Host) Frames() []document.Frame {
	h.mu.Lock()
	defer h.mu.Unlock()

	root := h.tree.Root
	if root.Style.Display == layout.DisplayNone {
		return nil
	}

	frames := make([]document.Frame, 0, len(h.tree.Entries))
	var walk func(n *layout.Node, originX, originY float64)
	walk = func(n *layout.Node, originX, originY float64) {
		f := n.Layout.Frame.Translate(originX, originY)
		x, y := f.X, f.Y

		e := h.meta[n]
		frames = append(frames, document.Frame{
			ID:       e.ID,
			Path:     e.Path,
			X:        x,
			Y:        y,
			Width:    f.Width,
			Height:   f.Height,
			Rotation: e.Rotation,
		})

		for _, c := range n.Children {
			if c.Style.Display == layout.DisplayNone {
				continue
			}
			// Flow children are placed in the content box, overlays in the
			// padding box.
			if c.Style.PositionType == layout.PositionAbsolute {
				walk(c, x, y)
			} else {
				walk(c, x+n.Layout.Content.X, y+n.Layout.Content.Y)
			}
		}
	}
	walk(root, 0, 0)
	return frames
}

// Frame returns the absolute frame of the node with the given id.
func (h *Host) Frame(id string) (layout.Rect, bool) {
	for _, f := range h.Frames() {
		if f.ID == id {
			return layout.NewRect(f.X, f.Y, f.Width, f.Height), true
		}
	}
	return layout.Rect{}, false
}

// NodeAt returns the id of the topmost node whose frame contains (x, y).
// Later siblings and descendants draw over earlier ones, so the last match
// in pre-order wins. Nodes without an id are skipped.
func (h *Host) NodeAt(x, y float64) (string, bool) {
	frames := h.Frames()
	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		if f.ID == "" {
			continue
		}
		if layout.NewRect(f.X, f.Y, f.Width, f.Height).Contains(x, y) {
			return f.ID, true
		}
	}
	return "", false
}
