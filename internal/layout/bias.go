package layout

import (
	"fmt"
	"math"
)

// Bias distributes the combined offsets of a box constrained on both opposing
// edges of an axis. 0 leaves the leading edge without offset, 1 leaves the
// trailing edge without offset and 0.5 splits evenly.
type Bias struct {
	Horizontal float64
	Vertical   float64
}

// DefaultBias splits evenly on both axes.
var DefaultBias = Bias{Horizontal: 0.5, Vertical: 0.5}

// NewBias validates both components against [0, 1].
func NewBias(horizontal, vertical float64) (Bias, error) {
	for _, v := range [...]float64{horizontal, vertical} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return Bias{}, fmt.Errorf("bias (%v, %v): %w", horizontal, vertical, ErrBiasOutOfRange)
		}
	}
	return Bias{Horizontal: horizontal, Vertical: vertical}, nil
}

// Along returns the bias component for axis.
func (b Bias) Along(axis Axis) float64 {
	if axis == Vertical {
		return b.Vertical
	}
	return b.Horizontal
}
