package document

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Entry associates a built node with the document data the engine does not keep.
type Entry struct {
	ID       string
	Path     string // position in the tree, e.g. "root/0/2"
	Node     *layout.Node
	Rotation float64 // degrees
}

// Index maps node ids to nodes. Nodes without an id are not indexed.
type Index map[string]*layout.Node

// Lookup returns the node with the given id.
func (ix Index) Lookup(id string) (*layout.Node, bool) {
	n, ok := ix[id]
	return n, ok
}

// Tree is the result of building a document.
type Tree struct {
	Root *layout.Node
	// Entries lists every node in depth-first pre-order.
	Entries []Entry
	Index   Index
}

// Build converts the document's node specs into a layout tree.
// The document must have passed Validate.
func Build(doc *Document) (*Tree, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("build: document has no root")
	}

	t := &Tree{Index: make(Index)}
	root, err := t.build(doc.Root, "root")
	if err != nil {
		return nil, err
	}
	t.Root = root
	return t, nil
}

func (t *Tree) build(spec *NodeSpec, path string) (*layout.Node, error) {
	node := layout.NewNode(spec.Style.ToStyle())

	var rotation float64
	if spec.Rotation != "" {
		deg, err := layout.ParseAngle(spec.Rotation)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", path, err)
		}
		rotation = deg
	}

	if len(spec.Children) == 0 {
		switch {
		case spec.Measure != nil:
			size := layout.Size{Width: spec.Measure.Width, Height: spec.Measure.Height}
			node.SetMeasureFunc(func(*layout.Node, float64, float64) layout.Size {
				return size
			})
		case spec.Text != "":
			node.SetMeasureFunc(TextMeasure(spec.Text))
		}
	}

	t.Entries = append(t.Entries, Entry{ID: spec.ID, Path: path, Node: node, Rotation: rotation})
	if spec.ID != "" {
		t.Index[spec.ID] = node
	}

	for i, c := range spec.Children {
		child, err := t.build(c, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

// TextMeasure returns a MeasureFunc sizing text in terminal cells. Lines
// wider than the available width are word-wrapped; a single word longer than
// the width keeps its own line.
func TextMeasure(text string) layout.MeasureFunc {
	return func(_ *layout.Node, availableWidth, _ float64) layout.Size {
		lines := strings.Split(text, "\n")
		if availableWidth <= 0 {
			return layout.Size{Width: float64(lipgloss.Width(text)), Height: float64(len(lines))}
		}

		limit := int(availableWidth)
		width, height := 0, 0
		for _, line := range lines {
			for _, wrapped := range wrapLine(line, limit) {
				width = max(width, lipgloss.Width(wrapped))
				height++
			}
		}
		return layout.Size{Width: float64(width), Height: float64(height)}
	}
}

func wrapLine(line string, limit int) []string {
	if lipgloss.Width(line) <= limit {
		return []string{line}
	}

	var out []string
	var cur string
	for _, word := range strings.Fields(line) {
		switch {
		case cur == "":
			cur = word
		case lipgloss.Width(cur)+1+lipgloss.Width(word) <= limit:
			cur += " " + word
		default:
			out = append(out, cur)
			cur = word
		}
	}
	if cur != "" || len(out) == 0 {
		out = append(out, cur)
	}
	return out
}

var (
	directions = map[string]layout.Direction{
		"column":         layout.Column,
		"row":            layout.Row,
		"column-reverse": layout.ColumnReverse,
		"row-reverse":    layout.RowReverse,
	}
	justifies = map[string]layout.Justify{
		"flex-start":    layout.JustifyFlexStart,
		"flex-end":      layout.JustifyFlexEnd,
		"center":        layout.JustifyCenter,
		"space-between": layout.JustifySpaceBetween,
		"space-around":  layout.JustifySpaceAround,
		"space-evenly":  layout.JustifySpaceEvenly,
	}
	aligns = map[string]layout.Align{
		"auto":       layout.AlignAuto,
		"stretch":    layout.AlignStretch,
		"flex-start": layout.AlignFlexStart,
		"flex-end":   layout.AlignFlexEnd,
		"center":     layout.AlignCenter,
		"baseline":   layout.AlignBaseline,
		// Multi-line values only apply to alignContent, which is recognized
		// but has no effect on a single line.
		"space-between": layout.AlignStretch,
		"space-around":  layout.AlignStretch,
	}
	wraps = map[string]layout.Wrap{
		"nowrap":       layout.NoWrap,
		"wrap":         layout.WrapOn,
		"wrap-reverse": layout.WrapReverse,
	}
)

// ToStyle converts s into an engine style, starting from
// layout.DefaultStyle for anything left unset.
func (s StyleSpec) ToStyle() layout.Style {
	style := layout.DefaultStyle()

	style.Width = s.Width.Value
	style.Height = s.Height.Value
	style.MinWidth = s.MinWidth.Value
	style.MinHeight = s.MinHeight.Value
	style.MaxWidth = s.MaxWidth.Value
	style.MaxHeight = s.MaxHeight.Value
	style.AspectRatio = s.AspectRatio

	if d, ok := directions[s.FlexDirection]; ok {
		style.Direction = d
	}
	if j, ok := justifies[s.JustifyContent]; ok {
		style.JustifyContent = j
	}
	if a, ok := aligns[s.AlignItems]; ok {
		style.AlignItems = a
	}
	if a, ok := aligns[s.AlignContent]; ok {
		style.AlignContent = a
	}
	if a, ok := aligns[s.AlignSelf]; ok {
		style.AlignSelf = a
	}
	if w, ok := wraps[s.FlexWrap]; ok {
		style.Wrap = w
	}
	if s.Gap != nil {
		style.Gap = *s.Gap
	}
	style.RowGap = s.RowGap
	style.ColumnGap = s.ColumnGap

	// flex: n is shorthand for grow n, shrink 1, basis 0.
	if s.Flex != nil {
		style.FlexGrow = *s.Flex
		style.FlexShrink = 1
		style.FlexBasis = layout.Points(0)
	}
	if s.FlexGrow != nil {
		style.FlexGrow = *s.FlexGrow
	}
	if s.FlexShrink != nil {
		style.FlexShrink = *s.FlexShrink
	}
	if s.FlexBasis.Unit != layout.UnitUnset {
		style.FlexBasis = s.FlexBasis.Value
	}

	style.Padding = s.Padding.Edges
	style.Margin = s.Margin.Edges

	if s.Position == "absolute" {
		style.PositionType = layout.PositionAbsolute
	}
	style.Top = s.Top.Value
	style.Right = s.Right.Value
	style.Bottom = s.Bottom.Value
	style.Left = s.Left.Value

	if s.Display == "none" {
		style.Display = layout.DisplayNone
	}
	return style
}
