package document

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Length is a layout.Value read from a number ("12") or a string
// understood by layout.ParseValue ("50%", "12px", "auto").
type Length struct {
	layout.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a number or string", node.Line)
	}
	if node.Tag == "!!null" {
		l.Value = layout.Unset()
		return nil
	}

	v, err := layout.ParseValue(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	l.Value = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Length) MarshalYAML() (any, error) {
	return FormatValue(l.Value), nil
}

// FormatValue renders v in the form ParseValue accepts.
func FormatValue(v layout.Value) string {
	if v.IsAuto() {
		return "auto"
	}
	switch v.Unit {
	case layout.UnitPoints:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	case layout.UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	default:
		return ""
	}
}

// lengthAmount feeds numeric validation tags. Unresolved lengths report nil
// so omitempty skips them.
func lengthAmount(l Length) any {
	if !l.IsDefined() {
		return nil
	}
	return l.Amount
}

// Edges is a layout.Edges read from a number (all sides), a CSS-style
// sequence of one to four numbers, or a mapping of named sides.
type Edges struct {
	layout.Edges
}

type edgesMapping struct {
	All        *float64 `yaml:"all"`
	Vertical   *float64 `yaml:"vertical"`
	Horizontal *float64 `yaml:"horizontal"`
	Top        *float64 `yaml:"top"`
	Right      *float64 `yaml:"right"`
	Bottom     *float64 `yaml:"bottom"`
	Left       *float64 `yaml:"left"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Edges) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n float64
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: edges: %w", node.Line, err)
		}
		e.Edges = layout.EdgeAll(n)
		return nil

	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("line %d: edges: %w", node.Line, err)
		}
		switch len(vals) {
		case 1:
			e.Edges = layout.EdgeAll(vals[0])
		case 2:
			e.Edges = layout.EdgeSymmetric(vals[0], vals[1])
		case 3:
			e.Edges = layout.EdgeTRBL(vals[0], vals[1], vals[2], vals[1])
		case 4:
			e.Edges = layout.EdgeTRBL(vals[0], vals[1], vals[2], vals[3])
		default:
			return fmt.Errorf("line %d: edges take 1 to 4 values, got %d", node.Line, len(vals))
		}
		return nil

	case yaml.MappingNode:
		var m edgesMapping
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("line %d: edges: %w", node.Line, err)
		}
		// Most specific wins: all < vertical/horizontal < named side.
		var out layout.Edges
		apply := func(v *float64, dst ...*float64) {
			if v == nil {
				return
			}
			for _, d := range dst {
				*d = *v
			}
		}
		apply(m.All, &out.Top, &out.Right, &out.Bottom, &out.Left)
		apply(m.Vertical, &out.Top, &out.Bottom)
		apply(m.Horizontal, &out.Left, &out.Right)
		apply(m.Top, &out.Top)
		apply(m.Right, &out.Right)
		apply(m.Bottom, &out.Bottom)
		apply(m.Left, &out.Left)
		e.Edges = out
		return nil
	}

	return fmt.Errorf("line %d: edges must be a number, sequence or mapping", node.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (e Edges) MarshalYAML() (any, error) {
	return []float64{e.Top, e.Right, e.Bottom, e.Left}, nil
}
