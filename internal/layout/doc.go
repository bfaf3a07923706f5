// Package layout implements a pure-Go flexbox layout engine.
//
// It supports row/column directions and their reverse variants, justify and
// align modes, padding, margin, gap, grow/shrink/basis, min/max constraints,
// point and percentage dimensions, aspect ratio, absolutely positioned
// overlays and host-supplied measurement of leaf content.
// Types are re-exported through the root flex package for public consumption.
//
// The main entry point is [Calculate], which takes a [Node] tree and
// computes a [Rect] frame for each node.
package layout
