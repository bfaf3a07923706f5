package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-flex/internal/layout"
)

func mustBuild(t *testing.T, content string) *Tree {
	t.Helper()

	doc, err := Parse("test.yaml", []byte(content))
	require.NoError(t, err)
	tree, err := Build(doc)
	require.NoError(t, err)
	return tree
}

func TestBuild_IndexAndEntries(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t, overlayDoc)

	require.Len(t, tree.Entries, 3)
	assert.Equal(t, "root", tree.Entries[0].Path)
	assert.Equal(t, "root/0", tree.Entries[1].Path)
	assert.Equal(t, "root/1", tree.Entries[2].Path)
	assert.Equal(t, 90.0, tree.Entries[2].Rotation)

	badge, ok := tree.Index.Lookup("badge")
	require.True(t, ok)
	assert.Same(t, tree.Root.Children[1], badge)

	_, ok = tree.Index.Lookup("missing")
	assert.False(t, ok)
}

func TestBuild_ComputesOverlayFrame(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t, overlayDoc)
	layout.Calculate(tree.Root, 300, 200)

	badge, _ := tree.Index.Lookup("badge")
	assert.Equal(t, layout.NewRect(250, 0, 50, 50), badge.Layout.Frame)
}

func TestBuild_NilDocument(t *testing.T) {
	t.Parallel()

	_, err := Build(nil)
	require.Error(t, err)
	_, err = Build(&Document{})
	require.Error(t, err)
}

func TestStyleSpec_ToStyle(t *testing.T) {
	t.Parallel()

	type tc struct {
		content string
		check   func(t *testing.T, s layout.Style)
	}

	tests := map[string]tc{
		"defaults": {
			content: "root: {}",
			check: func(t *testing.T, s layout.Style) {
				assert.Equal(t, layout.DefaultStyle(), s)
			},
		},
		"container properties": {
			content: `root:
  style:
    flexDirection: row-reverse
    justifyContent: space-evenly
    alignItems: center
    alignContent: space-between
    flexWrap: wrap
    gap: 2
    rowGap: 3`,
			check: func(t *testing.T, s layout.Style) {
				assert.Equal(t, layout.RowReverse, s.Direction)
				assert.Equal(t, layout.JustifySpaceEvenly, s.JustifyContent)
				assert.Equal(t, layout.AlignCenter, s.AlignItems)
				assert.Equal(t, layout.AlignStretch, s.AlignContent)
				assert.Equal(t, layout.WrapOn, s.Wrap)
				assert.Equal(t, 2.0, s.Gap)
				require.NotNil(t, s.RowGap)
				assert.Equal(t, 3.0, *s.RowGap)
				assert.Nil(t, s.ColumnGap)
			},
		},
		"flex shorthand": {
			content: "root: {style: {flex: 2}}",
			check: func(t *testing.T, s layout.Style) {
				assert.Equal(t, 2.0, s.FlexGrow)
				assert.Equal(t, 1.0, s.FlexShrink)
				assert.Equal(t, layout.Points(0), s.FlexBasis)
			},
		},
		"explicit item properties win over shorthand": {
			content: "root: {style: {flex: 2, flexShrink: 0, flexBasis: \"20%\", alignSelf: flex-end}}",
			check: func(t *testing.T, s layout.Style) {
				assert.Equal(t, 2.0, s.FlexGrow)
				assert.Equal(t, 0.0, s.FlexShrink)
				assert.Equal(t, layout.Percent(20), s.FlexBasis)
				assert.Equal(t, layout.AlignFlexEnd, s.AlignSelf)
			},
		},
		"position and display": {
			content: "root: {style: {position: absolute, bottom: 4, display: none, aspectRatio: 1.5}}",
			check: func(t *testing.T, s layout.Style) {
				assert.Equal(t, layout.PositionAbsolute, s.PositionType)
				assert.Equal(t, layout.Points(4), s.Bottom)
				assert.Equal(t, layout.DisplayNone, s.Display)
				require.NotNil(t, s.AspectRatio)
				assert.Equal(t, 1.5, *s.AspectRatio)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := mustBuild(t, tt.content)
			tt.check(t, tree.Root.Style)
		})
	}
}

func TestBuild_MeasuredLeaves(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t, `root:
  style: {flexDirection: row, alignItems: flex-start}
  children:
    - id: fixed
      measure: {width: 7, height: 2}
    - id: label
      text: "hello world"
    - id: container
      measure: {width: 50, height: 50}
      children:
        - id: inner
`)
	layout.Calculate(tree.Root, 100, 10)

	fixed, _ := tree.Index.Lookup("fixed")
	label, _ := tree.Index.Lookup("label")
	container, _ := tree.Index.Lookup("container")

	assert.Equal(t, layout.NewRect(0, 0, 7, 2), fixed.Layout.Frame)
	assert.Equal(t, layout.NewRect(7, 0, 11, 1), label.Layout.Frame)
	// Containers are sized by their children, never by measure.
	assert.Equal(t, 0.0, container.Layout.Frame.Width)
}

func TestTextMeasure(t *testing.T) {
	t.Parallel()

	type tc struct {
		text      string
		available float64
		expected  layout.Size
	}

	tests := map[string]tc{
		"single line fits": {
			text:      "hello",
			available: 20,
			expected:  layout.Size{Width: 5, Height: 1},
		},
		"multi line": {
			text:      "ab\nabcd",
			available: 20,
			expected:  layout.Size{Width: 4, Height: 2},
		},
		"wraps on words": {
			text:      "the quick brown fox",
			available: 10,
			expected:  layout.Size{Width: 9, Height: 2},
		},
		"long word keeps its line": {
			text:      "abcdefghijkl xy",
			available: 5,
			expected:  layout.Size{Width: 12, Height: 2},
		},
		"no constraint": {
			text:      "the quick brown fox",
			available: 0,
			expected:  layout.Size{Width: 19, Height: 1},
		},
		"wide runes": {
			text:      "日本",
			available: 10,
			expected:  layout.Size{Width: 4, Height: 1},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := TextMeasure(tt.text)(nil, tt.available, 0)
			assert.Equal(t, tt.expected, got)
		})
	}
}
