package layout

import "testing"

func newRow(width, height float64) *Node {
	n := NewNode(DefaultStyle())
	n.Style.Width = Points(width)
	n.Style.Height = Points(height)
	n.Style.Direction = Row
	return n
}

func newColumn(width, height float64) *Node {
	n := NewNode(DefaultStyle())
	n.Style.Width = Points(width)
	n.Style.Height = Points(height)
	n.Style.Direction = Column
	return n
}

func fixedChild(width, height float64) *Node {
	n := NewNode(DefaultStyle())
	n.Style.Width = Points(width)
	n.Style.Height = Points(height)
	return n
}

func TestCalculate_TwoChildren_Row(t *testing.T) {
	parent := newRow(100, 50)
	child1 := fixedChild(30, 50)
	child2 := fixedChild(40, 50)
	parent.AddChild(child1, child2)

	Calculate(parent, 200, 200)

	assertFrame(t, "child1", child1, NewRect(0, 0, 30, 50))
	assertFrame(t, "child2", child2, NewRect(30, 0, 40, 50))
}

func TestCalculate_TwoChildren_Column(t *testing.T) {
	parent := newColumn(100, 100)
	child1 := fixedChild(100, 30)
	child2 := fixedChild(100, 40)
	parent.AddChild(child1, child2)

	Calculate(parent, 200, 200)

	assertFrame(t, "child1", child1, NewRect(0, 0, 100, 30))
	assertFrame(t, "child2", child2, NewRect(0, 30, 100, 40))
}

func TestCalculate_FlexGrow(t *testing.T) {
	parent := newRow(100, 50)

	fixed := fixedChild(30, 50)

	growing := NewNode(DefaultStyle())
	growing.Style.FlexGrow = 1

	parent.AddChild(fixed, growing)
	Calculate(parent, 200, 200)

	assertFrame(t, "fixed", fixed, NewRect(0, 0, 30, 50))
	// Growing child expands to fill remaining space (100 - 30 = 70)
	assertFrame(t, "growing", growing, NewRect(30, 0, 70, 50))
}

func TestCalculate_FlexGrow_ProportionalDistribution(t *testing.T) {
	parent := newRow(100, 50)

	child1 := NewNode(DefaultStyle())
	child1.Style.FlexGrow = 1
	child2 := NewNode(DefaultStyle())
	child2.Style.FlexGrow = 3

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	// Child1 gets 1/4 of space (25), child2 gets 3/4 (75)
	if child1.Layout.Frame.Width != 25 {
		t.Errorf("child1 width = %v, want 25", child1.Layout.Frame.Width)
	}
	if child2.Layout.Frame.Width != 75 {
		t.Errorf("child2 width = %v, want 75", child2.Layout.Frame.Width)
	}
}

func TestCalculate_FlexGrow_FromBasis(t *testing.T) {
	parent := newRow(200, 50)

	child1 := NewNode(DefaultStyle())
	child1.Style.FlexBasis = Points(50)
	child1.Style.FlexGrow = 1

	child2 := NewNode(DefaultStyle())
	child2.Style.FlexBasis = Points(50)
	child2.Style.FlexGrow = 1

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 50)

	// Free space 100 split evenly on top of each 50 basis
	assertFrame(t, "child1", child1, NewRect(0, 0, 100, 50))
	assertFrame(t, "child2", child2, NewRect(100, 0, 100, 50))
}

func TestCalculate_FlexBasis_OverridesWidth(t *testing.T) {
	parent := newRow(200, 50)

	child := NewNode(DefaultStyle())
	child.Style.Width = Points(120)
	child.Style.FlexBasis = Percent(25)

	parent.AddChild(child)
	Calculate(parent, 200, 50)

	if child.Layout.Frame.Width != 50 {
		t.Errorf("child width = %v, want 50 (25%% basis of 200)", child.Layout.Frame.Width)
	}
}

func TestCalculate_ShrinkBelowBasis(t *testing.T) {
	parent := newRow(100, 50)

	child1 := NewNode(DefaultStyle())
	child1.Style.FlexBasis = Points(80)
	child1.Style.FlexShrink = 1

	child2 := NewNode(DefaultStyle())
	child2.Style.FlexBasis = Points(80)
	child2.Style.FlexShrink = 1

	parent.AddChild(child1, child2)
	Calculate(parent, 100, 50)

	// Total is 160, container is 100, deficit is 60, split evenly
	assertFrame(t, "child1", child1, NewRect(0, 0, 50, 50))
	assertFrame(t, "child2", child2, NewRect(50, 0, 50, 50))
}

func TestCalculate_FlexShrink_ProportionalDistribution(t *testing.T) {
	parent := newRow(100, 50)

	child1 := fixedChild(80, 50)
	child1.Style.FlexShrink = 1 // Will shrink less

	child2 := fixedChild(80, 50)
	child2.Style.FlexShrink = 3 // Will shrink more

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	// Deficit 60: child1 shrinks by 60 * 1/4 = 15, child2 by 60 * 3/4 = 45
	if child1.Layout.Frame.Width != 65 {
		t.Errorf("child1 width = %v, want 65", child1.Layout.Frame.Width)
	}
	if child2.Layout.Frame.Width != 35 {
		t.Errorf("child2 width = %v, want 35", child2.Layout.Frame.Width)
	}
}

func TestCalculate_FlexShrink_WeightedByBasis(t *testing.T) {
	parent := newRow(100, 50)

	child1 := NewNode(DefaultStyle())
	child1.Style.FlexBasis = Points(150)

	child2 := NewNode(DefaultStyle())
	child2.Style.FlexBasis = Points(50)

	parent.AddChild(child1, child2)
	Calculate(parent, 100, 50)

	// Deficit 100 split 3:1 by shrink*basis
	if child1.Layout.Frame.Width != 75 {
		t.Errorf("child1 width = %v, want 75", child1.Layout.Frame.Width)
	}
	if child2.Layout.Frame.Width != 25 {
		t.Errorf("child2 width = %v, want 25", child2.Layout.Frame.Width)
	}
}

func TestCalculate_NoShrink_Overflows(t *testing.T) {
	parent := newRow(100, 50)

	child1 := fixedChild(80, 50)
	child1.Style.FlexShrink = 0
	child2 := fixedChild(80, 50)
	child2.Style.FlexShrink = 0

	parent.AddChild(child1, child2)
	Calculate(parent, 100, 50)

	assertFrame(t, "child1", child1, NewRect(0, 0, 80, 50))
	assertFrame(t, "child2", child2, NewRect(80, 0, 80, 50))
}

func TestCalculate_WithGap(t *testing.T) {
	type tc struct {
		direction Direction
		gap       float64
		rowGap    *float64
		columnGap *float64
		second    Rect
	}

	tests := map[string]tc{
		"row uses gap": {
			direction: Row,
			gap:       10,
			second:    NewRect(30, 0, 20, 100),
		},
		"row prefers column gap": {
			direction: Row,
			gap:       10,
			columnGap: Float(5),
			rowGap:    Float(40),
			second:    NewRect(25, 0, 20, 100),
		},
		"column prefers row gap": {
			direction: Column,
			gap:       10,
			columnGap: Float(40),
			rowGap:    Float(4),
			second:    NewRect(0, 24, 100, 20),
		},
		"column uses gap": {
			direction: Column,
			gap:       6,
			second:    NewRect(0, 26, 100, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode(DefaultStyle())
			parent.Style.Direction = tt.direction
			parent.Style.Gap = tt.gap
			parent.Style.RowGap = tt.rowGap
			parent.Style.ColumnGap = tt.columnGap

			children := make([]*Node, 2)
			for i := range children {
				children[i] = NewNode(DefaultStyle())
				children[i].Style.FlexBasis = Points(20)
			}
			parent.AddChild(children...)

			Calculate(parent, 100, 100)

			assertFrame(t, "second", children[1], tt.second)
		})
	}
}

func TestCalculate_GapReducesGrowSpace(t *testing.T) {
	parent := newRow(110, 20)
	parent.Style.Gap = 10

	child1 := NewNode(DefaultStyle())
	child1.Style.FlexGrow = 1
	child2 := NewNode(DefaultStyle())
	child2.Style.FlexGrow = 1

	parent.AddChild(child1, child2)
	Calculate(parent, 110, 20)

	assertFrame(t, "child1", child1, NewRect(0, 0, 50, 20))
	assertFrame(t, "child2", child2, NewRect(60, 0, 50, 20))
}

func TestCalculate_MinMax_FlexGrow(t *testing.T) {
	parent := newRow(100, 50)

	capped := NewNode(DefaultStyle())
	capped.Style.FlexGrow = 1
	capped.Style.MaxWidth = Points(30)

	other := NewNode(DefaultStyle())
	other.Style.FlexGrow = 1

	parent.AddChild(capped, other)
	Calculate(parent, 100, 50)

	// Each grows to 50 first; the capped child is clamped afterwards.
	assertFrame(t, "capped", capped, NewRect(0, 0, 30, 50))
	assertFrame(t, "other", other, NewRect(30, 0, 50, 50))
}

func TestCalculate_MinMax_FlexShrink(t *testing.T) {
	parent := newRow(100, 50)

	floored := fixedChild(80, 50)
	floored.Style.MinWidth = Points(70)

	other := fixedChild(80, 50)

	parent.AddChild(floored, other)
	Calculate(parent, 100, 50)

	assertFrame(t, "floored", floored, NewRect(0, 0, 70, 50))
	assertFrame(t, "other", other, NewRect(70, 0, 50, 50))
}

func TestCalculate_PercentMinMax(t *testing.T) {
	parent := newRow(200, 100)

	child := NewNode(DefaultStyle())
	child.Style.FlexGrow = 1
	child.Style.MaxWidth = Percent(30) // 30% of 200 = 60

	parent.AddChild(child)
	Calculate(parent, 300, 300)

	if child.Layout.Frame.Width != 60 {
		t.Errorf("child.Width = %v, want 60 (30%% max)", child.Layout.Frame.Width)
	}
}

func TestCalculate_MinMax_InvertedPrefersMax(t *testing.T) {
	parent := newColumn(100, 200)

	child := NewNode(DefaultStyle())
	child.Style.Height = Points(50)
	child.Style.MinHeight = Points(120)
	child.Style.MaxHeight = Points(90)

	parent.AddChild(child)
	Calculate(parent, 100, 200)

	if child.Layout.Frame.Height != 90 {
		t.Errorf("child.Height = %v, want 90 (max applied last)", child.Layout.Frame.Height)
	}
}

func TestCalculate_Reverse(t *testing.T) {
	type tc struct {
		direction Direction
		first     Rect
		second    Rect
	}

	tests := map[string]tc{
		"row reverse": {
			direction: RowReverse,
			first:     NewRect(20, 0, 30, 100),
			second:    NewRect(0, 0, 20, 100),
		},
		"column reverse": {
			direction: ColumnReverse,
			first:     NewRect(0, 20, 100, 30),
			second:    NewRect(0, 0, 100, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode(DefaultStyle())
			parent.Style.Direction = tt.direction

			first := NewNode(DefaultStyle())
			first.Style.FlexBasis = Points(30)
			second := NewNode(DefaultStyle())
			second.Style.FlexBasis = Points(20)
			parent.AddChild(first, second)

			Calculate(parent, 100, 100)

			assertFrame(t, "first", first, tt.first)
			assertFrame(t, "second", second, tt.second)
		})
	}
}

func TestCalculate_MainAxisMargins(t *testing.T) {
	parent := newRow(100, 50)

	child1 := fixedChild(20, 10)
	child1.Style.Margin = EdgeTRBL(0, 5, 0, 10)
	child2 := fixedChild(20, 10)
	child2.Style.Margin = EdgeTRBL(0, 0, 0, 5)

	parent.AddChild(child1, child2)
	Calculate(parent, 100, 50)

	// Stretch fills the cross axis over the explicit height
	assertFrame(t, "child1", child1, NewRect(10, 0, 20, 50))
	// 10 + 20 + 5 (child1 right) + 5 (child2 left)
	assertFrame(t, "child2", child2, NewRect(40, 0, 20, 50))
}

func TestCalculate_MarginsConsumeGrowSpace(t *testing.T) {
	parent := newRow(100, 50)

	child := NewNode(DefaultStyle())
	child.Style.FlexGrow = 1
	child.Style.Margin = EdgeAll(10)

	parent.AddChild(child)
	Calculate(parent, 100, 50)

	assertFrame(t, "child", child, NewRect(10, 10, 80, 30))
}
