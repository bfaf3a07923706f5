package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Column        Direction = iota // Children laid out top-to-bottom
	Row                            // Children laid out left-to-right
	ColumnReverse                  // Column, children placed in reverse order
	RowReverse                     // Row, children placed in reverse order
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether children are placed in reverse order.
func (d Direction) IsReverse() bool {
	return d == ColumnReverse || d == RowReverse
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyFlexStart    Justify = iota // Pack at start
	JustifyFlexEnd                     // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
// AlignAuto is only meaningful for AlignSelf, where it defers to the
// container's AlignItems.
type Align uint8

const (
	AlignAuto      Align = iota // Inherit the container's AlignItems
	AlignStretch                // Stretch to fill cross axis
	AlignFlexStart              // Align to start of cross axis
	AlignFlexEnd                // Align to end of cross axis
	AlignCenter                 // Center on cross axis
	AlignBaseline               // Treated as AlignFlexStart
)

// Wrap is recognized but a single flex line is always computed.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapOn
	WrapReverse
)

// PositionType selects flow or overlay placement.
type PositionType uint8

const (
	PositionRelative PositionType = iota // Participates in flex flow
	PositionAbsolute                     // Overlays the padded box of its parent
)

// Display toggles whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width       Value
	Height      Value
	MinWidth    Value
	MinHeight   Value
	MaxWidth    Value
	MaxHeight   Value
	AspectRatio *float64 // width / height, nil when unset

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	AlignContent   Align
	Wrap           Wrap
	Gap            float64
	RowGap         *float64 // Overrides Gap between rows (column direction)
	ColumnGap      *float64 // Overrides Gap between columns (row direction)

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value
	AlignSelf  Align // Override parent's AlignItems (AlignAuto = inherit)

	// Spacing
	Padding Edges
	Margin  Edges

	// Positioning
	PositionType PositionType
	Top          Value
	Right        Value
	Bottom       Value
	Left         Value

	Display Display
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Direction:    Column,
		AlignItems:   AlignStretch,
		AlignContent: AlignStretch,
		FlexShrink:   1.0,
	}
}

// mainGap returns the gap between adjacent flow children on the main axis.
func (s Style) mainGap() float64 {
	if s.Direction.IsRow() {
		if s.ColumnGap != nil {
			return *s.ColumnGap
		}
		return s.Gap
	}
	if s.RowGap != nil {
		return *s.RowGap
	}
	return s.Gap
}

// alignFor returns the effective cross-axis alignment of a child.
func (s Style) alignFor(child Style) Align {
	if child.AlignSelf != AlignAuto {
		return child.AlignSelf
	}
	if s.AlignItems == AlignAuto {
		return AlignStretch
	}
	return s.AlignItems
}

func (s Style) mainSize(isRow bool) Value {
	if isRow {
		return s.Width
	}
	return s.Height
}

func (s Style) crossSize(isRow bool) Value {
	if isRow {
		return s.Height
	}
	return s.Width
}

func (s Style) mainBounds(isRow bool) (minV, maxV Value) {
	if isRow {
		return s.MinWidth, s.MaxWidth
	}
	return s.MinHeight, s.MaxHeight
}

func (s Style) crossBounds(isRow bool) (minV, maxV Value) {
	if isRow {
		return s.MinHeight, s.MaxHeight
	}
	return s.MinWidth, s.MaxWidth
}

// Float returns a pointer to v, for optional style fields.
func Float(v float64) *float64 {
	return &v
}
