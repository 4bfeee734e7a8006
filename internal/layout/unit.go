package layout

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is a single scalar dimension expressed as pixels plus a fraction of
// the enclosing size. The zero Unit is Zero.
type Unit struct {
	pixels  float64
	percent float64
	dynamic bool
}

var (
	// Zero is a zero offset or size.
	Zero = Unit{}

	// Fill is the whole enclosing size.
	Fill = Unit{percent: 1}

	// DynamicSize marks a size computed from the box's children. Used as an
	// offset it behaves like Zero.
	DynamicSize = Unit{dynamic: true}
)

// NewUnit returns pixels + percent*enclosing. percent must lie in [0, 1].
func NewUnit(pixels, percent float64) (Unit, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 1 {
		return Unit{}, fmt.Errorf("unit %vpx+%v: %w", pixels, percent, ErrPercentOutOfRange)
	}
	return Unit{pixels: pixels, percent: percent}, nil
}

// MustUnit is like NewUnit but panics on an invalid percent.
func MustUnit(pixels, percent float64) Unit {
	u, err := NewUnit(pixels, percent)
	if err != nil {
		panic(err)
	}
	return u
}

// Pixels returns a Unit with a fixed pixel amount.
func Pixels(px float64) Unit {
	return Unit{pixels: px}
}

// Percent returns a Unit that is a fraction of the enclosing size.
// The value is on a 0-1 scale (0.5 = 50%).
func Percent(p float64) (Unit, error) {
	return NewUnit(0, p)
}

// PixelAmount returns the fixed part of the unit.
func (u Unit) PixelAmount() float64 { return u.pixels }

// PercentAmount returns the fractional part of the unit.
func (u Unit) PercentAmount() float64 { return u.percent }

// Value computes the unit against the enclosing size.
func (u Unit) Value(enclosing float64) float64 {
	return u.pixels + u.percent*enclosing
}

// IsDynamic reports whether u is DynamicSize.
func (u Unit) IsDynamic() bool {
	return u.dynamic
}

// String renders the unit as 12px, 50%, 12px+50% or dynamic.
func (u Unit) String() string {
	switch {
	case u.dynamic:
		return "dynamic"
	case u.percent == 0:
		return formatFloat(u.pixels) + "px"
	case u.pixels == 0:
		return formatFloat(u.percent*100) + "%"
	default:
		return formatFloat(u.pixels) + "px+" + formatFloat(u.percent*100) + "%"
	}
}

// ClampUnit restricts value to the range described by minUnit and maxUnit
// evaluated against enclosing. If the bounds are inverted, the minimum wins
// for values below it and the maximum wins otherwise.
func ClampUnit(value float64, minUnit, maxUnit Unit, enclosing float64) float64 {
	lo := minUnit.Value(enclosing)
	hi := maxUnit.Value(enclosing)
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
