// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Column        = layout.Column
	Row           = layout.Row
	ColumnReverse = layout.ColumnReverse
	RowReverse    = layout.RowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignAuto      = layout.AlignAuto
	AlignStretch   = layout.AlignStretch
	AlignFlexStart = layout.AlignFlexStart
	AlignFlexEnd   = layout.AlignFlexEnd
	AlignCenter    = layout.AlignCenter
	AlignBaseline  = layout.AlignBaseline
)

// Wrap is recognized; a single flex line is always computed.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapOn      = layout.WrapOn
	WrapReverse = layout.WrapReverse
)

// PositionType selects flow or overlay placement.
type PositionType = layout.PositionType

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Display toggles whether a node takes part in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Value represents a dimension value (points, percent, auto or unset).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUnset   = layout.UnitUnset
	UnitAuto    = layout.UnitAuto
	UnitPoints  = layout.UnitPoints
	UnitPercent = layout.UnitPercent
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Node is an element of the layout tree.
type Node = layout.Node

// MeasureFunc reports the intrinsic size of a leaf node.
type MeasureFunc = layout.MeasureFunc

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// ErrInvalidValue is returned by the Parse helpers for malformed input.
var ErrInvalidValue = layout.ErrInvalidValue

// Points creates a Value with an absolute length.
func Points(n float64) Value {
	return layout.Points(n)
}

// Percent creates a Value representing a percentage of the parent length.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value computed from flex or content.
func Auto() Value {
	return layout.Auto()
}

// Unset creates a Value that was never specified.
func Unset() Value {
	return layout.Unset()
}

// Float returns a pointer to v, for optional style fields such as AspectRatio.
func Float(v float64) *float64 {
	return layout.Float(v)
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewNode creates a dirty node with the given style.
func NewNode(style Style) *Node {
	return layout.NewNode(style)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate performs flexbox layout on the given tree.
func Calculate(root *Node, availableWidth, availableHeight float64) {
	layout.Calculate(root, availableWidth, availableHeight)
}

// ParseValue converts a style string such as "50%", "12px" or "auto" into a Value.
func ParseValue(s string) (Value, error) {
	return layout.ParseValue(s)
}

// ParsePercent extracts the number from a percentage string like "50%".
func ParsePercent(s string) (float64, bool) {
	return layout.ParsePercent(s)
}

// ParseAngle converts an angle string ("90deg", "0.5turn", ...) to degrees.
func ParseAngle(s string) (float64, error) {
	return layout.ParseAngle(s)
}

// Clamp restricts v to [lo, hi], applying hi last.
func Clamp(v, lo, hi float64) float64 {
	return layout.Clamp(v, lo, hi)
}
