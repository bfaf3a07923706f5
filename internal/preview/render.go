// Package preview draws computed layout frames as boxes in a terminal.
package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-flex/internal/document"
)

// Options controls a preview rendering.
type Options struct {
	// Columns is the width of the drawing in cells, excluding the outer border.
	Columns int
	// Border names the lipgloss border around the drawing: normal, rounded,
	// double, thick or hidden.
	Border string
	// ShowIDs writes each node's label into its top edge.
	ShowIDs bool
	// Title is printed above the drawing when set.
	Title string
}

// cellAspect is how many columns match one row on screen.
const cellAspect = 2.0

var titleStyle = lipgloss.NewStyle().Bold(true)

// Render draws frames scaled so the first (root) frame spans opts.Columns.
// Frames are drawn in order, so later frames (children, overlays) sit on top.
func Render(frames []document.Frame, opts Options) string {
	grid := Draw(frames, opts)
	if grid == nil {
		return ""
	}

	body := lipgloss.NewStyle().Border(lipglossBorder(opts.Border)).Render(grid.String())
	if opts.Title == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(opts.Title), body)
}

// Draw rasterizes frames into a Grid without the outer border.
// It returns nil when there is nothing to draw.
func Draw(frames []document.Frame, opts Options) *Grid {
	if len(frames) == 0 || opts.Columns <= 0 {
		return nil
	}
	root := frames[0]
	if root.Width <= 0 || root.Height <= 0 {
		return nil
	}

	scaleX := float64(opts.Columns) / root.Width
	scaleY := scaleX / cellAspect
	rows := max(1, int(math.Round(root.Height*scaleY)))
	grid := NewGrid(opts.Columns, rows)

	toCells := func(f document.Frame) Rect {
		x0 := int(math.Round((f.X - root.X) * scaleX))
		y0 := int(math.Round((f.Y - root.Y) * scaleY))
		x1 := int(math.Round((f.X - root.X + f.Width) * scaleX))
		y1 := int(math.Round((f.Y - root.Y + f.Height) * scaleY))
		return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	}

	for _, f := range frames[1:] {
		r := toCells(f)
		if r.IsEmpty() {
			continue
		}
		DrawBox(grid, r, borderForDepth(strings.Count(f.Path, "/")-1))
		if opts.ShowIDs && r.Width > 2 && r.Height > 1 {
			grid.SetString(r.X+1, r.Y, f.Label(), r.Width-2)
		}
	}
	return grid
}

func lipglossBorder(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
