// Package host owns a layout tree on behalf of an application. It keeps the
// id index, serializes mutations and layout passes, and turns any number of
// invalidations into a single pending pass.
package host

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/document"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/logger"
)

// ErrUnknownNode is returned when an id is not in the host's index.
var ErrUnknownNode = errors.New("unknown node")

// Host drives layout for one tree. It is safe for concurrent use.
type Host struct {
	mu     sync.Mutex
	tree   *document.Tree
	meta   map[*layout.Node]document.Entry
	width  float64
	height float64

	dirty  atomic.Bool
	passes atomic.Int64

	log *logger.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(h *Host) {
		h.log = l
	}
}

// New takes ownership of tree and lays it out at width x height on the
// first Flush.
func New(tree *document.Tree, width, height float64, opts ...Option) *Host {
	h := &Host{
		tree:   tree,
		meta:   make(map[*layout.Node]document.Entry, len(tree.Entries)),
		width:  width,
		height: height,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, e := range tree.Entries {
		h.meta[e.Node] = e
	}

	// The hook fires on the root's clean -> dirty transition only, so a burst
	// of style changes costs one store.
	tree.Root.SetDirtyHook(func(*layout.Node) {
		h.Invalidate()
	})
	h.dirty.Store(true)
	return h
}

// Size returns the size the tree is laid out at.
func (h *Host) Size() (width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

// SetSize changes the available size. A change schedules a pass.
func (h *Host) SetSize(width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	h.Invalidate()
}

// Update applies fn to the style of the node with the given id.
func (h *Host) Update(id string, fn func(*layout.Style)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	node, ok := h.tree.Index.Lookup(id)
	if !ok {
		return fmt.Errorf("update %q: %w", id, ErrUnknownNode)
	}
	node.UpdateStyle(fn)
	return nil
}

// Style returns a copy of the style of the node with the given id.
func (h *Host) Style(id string) (layout.Style, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	node, ok := h.tree.Index.Lookup(id)
	if !ok {
		return layout.Style{}, false
	}
	return node.Style, true
}

// Invalidate schedules a layout pass. Safe to call from any goroutine.
func (h *Host) Invalidate() {
	h.dirty.Store(true)
}

// Pending reports whether a pass is scheduled.
func (h *Host) Pending() bool {
	return h.dirty.Load()
}

// Flush runs a layout pass if one is pending and reports whether it did.
func (h *Host) Flush() bool {
	if !h.dirty.Swap(false) {
		return false
	}
	h.Layout()
	return true
}

// Layout runs a pass unconditionally. Clean subtrees are still skipped by
// the engine.
func (h *Host) Layout() {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := time.Now()
	layout.Calculate(h.tree.Root, h.width, h.height)
	elapsed := time.Since(start)
	pass := h.passes.Add(1)

	h.log.WithFields(map[string]any{
		"pass":     pass,
		"nodes":    len(h.tree.Entries),
		"duration": elapsed.String(),
	}).Debug("layout pass")
	debug.Event("layout pass", func(e *zerolog.Event) {
		e.Int64("pass", pass).
			Float64("width", h.width).
			Float64("height", h.height).
			Dur("elapsed", elapsed)
	})
}

// Passes returns the number of layout passes run so far.
func (h *Host) Passes() int64 {
	return h.passes.Load()
}
