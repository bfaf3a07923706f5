package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Frame is a node's computed box in absolute coordinates.
type Frame struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Path     string  `json:"path" yaml:"path"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// Label names the frame by id, falling back to its tree path.
func (f Frame) Label() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Path
}

// Format selects the frame output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, yaml or table)", s)
}

// Result is the encoded output of one document.
type Result struct {
	Source string  `json:"source" yaml:"source"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Frames []Frame `json:"frames" yaml:"frames"`
}

// Encode writes results to w in the given format.
func Encode(w io.Writer, format Format, results ...Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)

	case FormatYAML:
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	case FormatTable:
		for i, r := range results {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, renderTable(r)+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderTable(r Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NODE", "X", "Y", "WIDTH", "HEIGHT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, f := range r.Frames {
		t.Row(f.Label(), num(f.X), num(f.Y), num(f.Width), num(f.Height))
	}

	title := fmt.Sprintf("%s (%sx%s)", r.Source, num(r.Width), num(r.Height))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
