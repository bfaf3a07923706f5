package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when a style string cannot be parsed.
var ErrInvalidValue = errors.New("invalid value")

// lengthSuffixes are unit suffixes accepted for absolute lengths.
var lengthSuffixes = []string{"px", "pt", "dp"}

// ParseValue converts a style string into a Value.
//
//	"", "unset"        -> Unset
//	"auto"             -> Auto
//	"50%"              -> Percent(50)
//	"12", "12px", ...  -> Points(12)
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "unset":
		return Unset(), nil
	case "auto":
		return Auto(), nil
	}

	if p, ok := ParsePercent(s); ok {
		return Percent(p), nil
	}

	num := s
	for _, suffix := range lengthSuffixes {
		if strings.HasSuffix(num, suffix) {
			num = strings.TrimSuffix(num, suffix)
			break
		}
	}
	f, err := parseFinite(num)
	if err != nil {
		return Value{}, fmt.Errorf("%w: length %q", ErrInvalidValue, s)
	}
	return Points(f), nil
}

// ParsePercent extracts the number from a percentage string like "50%".
// It reports false if s is not a finite percentage.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	f, err := parseFinite(strings.TrimSpace(strings.TrimSuffix(s, "%")))
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseAngle converts an angle string to degrees.
// Accepted units are deg, rad, grad and turn; a bare number is degrees.
func ParseAngle(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	scale := 1.0
	num := s
	switch {
	case strings.HasSuffix(s, "grad"):
		num, scale = strings.TrimSuffix(s, "grad"), 0.9
	case strings.HasSuffix(s, "deg"):
		num = strings.TrimSuffix(s, "deg")
	case strings.HasSuffix(s, "rad"):
		num, scale = strings.TrimSuffix(s, "rad"), 180/math.Pi
	case strings.HasSuffix(s, "turn"):
		num, scale = strings.TrimSuffix(s, "turn"), 360
	}

	f, err := parseFinite(num)
	if err != nil {
		return 0, fmt.Errorf("%w: angle %q", ErrInvalidValue, s)
	}
	return f * scale, nil
}

// Clamp restricts v to [lo, hi]. hi is applied last, so an inverted pair
// yields hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// clampValue clamps v against optional bounds resolved against parent.
// Unresolved bounds are no-ops; max is applied after min.
func clampValue(v float64, minV, maxV Value, parent float64) float64 {
	if lo, ok := minV.Resolve(parent); ok {
		v = math.Max(v, lo)
	}
	if hi, ok := maxV.Resolve(parent); ok {
		v = math.Min(v, hi)
	}
	return v
}

// nonNegative floors v at zero. NaN becomes zero.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidValue
	}
	return f, nil
}
