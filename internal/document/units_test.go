package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

func TestLength_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	type tc struct {
		input    string
		expected layout.Value
		wantErr  bool
	}

	tests := map[string]tc{
		"integer":   {input: "12", expected: layout.Points(12)},
		"float":     {input: "12.5", expected: layout.Points(12.5)},
		"px string": {input: `"12px"`, expected: layout.Points(12)},
		"percent":   {input: `"50%"`, expected: layout.Percent(50)},
		"auto":      {input: "auto", expected: layout.Auto()},
		"null":      {input: "~", expected: layout.Unset()},
		"garbage":   {input: "wide", wantErr: true},
		"sequence":  {input: "[1]", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var l Length
			err := yaml.Unmarshal([]byte(tt.input), &l)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.Value)
		})
	}
}

func TestLength_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []layout.Value{layout.Points(3.5), layout.Percent(25), layout.Auto()} {
		out, err := yaml.Marshal(Length{Value: v})
		require.NoError(t, err)

		var back Length
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, v, back.Value)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatValue(layout.Unset()))
	assert.Equal(t, "auto", FormatValue(layout.Auto()))
	assert.Equal(t, "12", FormatValue(layout.Points(12)))
	assert.Equal(t, "33.5%", FormatValue(layout.Percent(33.5)))
}

func TestEdges_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	type tc struct {
		input    string
		expected layout.Edges
		wantErr  bool
	}

	tests := map[string]tc{
		"scalar":          {input: "4", expected: layout.EdgeAll(4)},
		"one value":       {input: "[2]", expected: layout.EdgeAll(2)},
		"two values":      {input: "[1, 2]", expected: layout.EdgeSymmetric(1, 2)},
		"three values":    {input: "[1, 2, 3]", expected: layout.EdgeTRBL(1, 2, 3, 2)},
		"four values":     {input: "[1, 2, 3, 4]", expected: layout.EdgeTRBL(1, 2, 3, 4)},
		"named sides":     {input: "{top: 1, left: 4}", expected: layout.Edges{Top: 1, Left: 4}},
		"all then side":   {input: "{all: 2, left: 5}", expected: layout.EdgeTRBL(2, 2, 2, 5)},
		"axes":            {input: "{vertical: 1, horizontal: 3}", expected: layout.EdgeSymmetric(1, 3)},
		"too many values": {input: "[1, 2, 3, 4, 5]", wantErr: true},
		"empty sequence":  {input: "[]", wantErr: true},
		"not a number":    {input: "wide", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var e Edges
			err := yaml.Unmarshal([]byte(tt.input), &e)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, e.Edges)
		})
	}
}
