package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUnset   Unit = iota // Not specified; callers substitute a default
	UnitAuto                // Size determined by flex or content
	UnitPoints              // Absolute length
	UnitPercent             // Percentage of the parent reference length
)

func (u Unit) String() string {
	switch u {
	case UnitUnset:
		return "unset"
	case UnitAuto:
		return "auto"
	case UnitPoints:
		return "points"
	case UnitPercent:
		return "percent"
	}
	return "unknown"
}

// Value represents a dimension that can be a length, a percentage, auto, or unset.
// The zero Value is Unset.
type Value struct {
	Amount float64
	Unit   Unit
}

// Unset returns a Value that was never specified.
func Unset() Value {
	return Value{Unit: UnitUnset}
}

// Auto returns a Value that should be computed from flex or content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Points returns a Value representing an absolute length.
func Points(n float64) Value {
	return Value{Amount: n, Unit: UnitPoints}
}

// Percent returns a Value representing a percentage of the parent length.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the length given the parent reference length.
// It reports false for Auto and Unset. A non-finite parent is treated as 0,
// and a non-finite result resolves to 0.
func (v Value) Resolve(parent float64) (float64, bool) {
	switch v.Unit {
	case UnitPoints:
		return finite(v.Amount), true
	case UnitPercent:
		return finite(finite(parent) * v.Amount / 100.0), true
	default:
		return 0, false
	}
}

// ResolveOr is Resolve with a fallback for unresolved values.
func (v Value) ResolveOr(parent, fallback float64) float64 {
	if r, ok := v.Resolve(parent); ok {
		return r
	}
	return fallback
}

// IsDefined reports whether the value resolves to a length.
func (v Value) IsDefined() bool {
	return v.Unit == UnitPoints || v.Unit == UnitPercent
}

// IsAuto returns true if this value should be computed from flex or content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
