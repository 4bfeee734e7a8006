package layout

import (
	"errors"
	"math"
	"testing"
)

func TestUnit_Value(t *testing.T) {
	type tc struct {
		pixels    float64
		percent   float64
		enclosing float64
		expected  float64
	}

	tests := map[string]tc{
		"pixels only":        {pixels: 12, percent: 0, enclosing: 300, expected: 12},
		"percent only":       {pixels: 0, percent: 0.5, enclosing: 300, expected: 150},
		"pixels and percent": {pixels: 5, percent: 0.1, enclosing: 200, expected: 25},
		"negative pixels":    {pixels: -4, percent: 1, enclosing: 10, expected: 6},
		"zero enclosing":     {pixels: 3, percent: 1, enclosing: 0, expected: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			u, err := NewUnit(tt.pixels, tt.percent)
			if err != nil {
				t.Fatalf("NewUnit(%g, %g) error = %v", tt.pixels, tt.percent, err)
			}
			if got := u.Value(tt.enclosing); got != tt.expected {
				t.Errorf("Value(%g) = %g, want %g", tt.enclosing, got, tt.expected)
			}
		})
	}
}

func TestNewUnit_PercentOutOfRange(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN()} {
		if _, err := NewUnit(0, p); !errors.Is(err, ErrPercentOutOfRange) {
			t.Errorf("NewUnit(0, %g) error = %v, want ErrPercentOutOfRange", p, err)
		}
	}
	if _, err := Percent(2); !errors.Is(err, ErrPercentOutOfRange) {
		t.Errorf("Percent(2) error = %v, want ErrPercentOutOfRange", err)
	}
}

func TestMustUnit_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustUnit(0, 5) did not panic")
		}
	}()
	MustUnit(0, 5)
}

func TestUnit_Dynamic(t *testing.T) {
	if !DynamicSize.IsDynamic() {
		t.Error("DynamicSize.IsDynamic() = false")
	}
	if Zero.IsDynamic() {
		t.Error("Zero.IsDynamic() = true")
	}
	if got := DynamicSize.Value(100); got != 0 {
		t.Errorf("DynamicSize.Value(100) = %g, want 0", got)
	}
	if Zero == DynamicSize {
		t.Error("Zero and DynamicSize compare equal")
	}
}

func TestUnit_String(t *testing.T) {
	type tc struct {
		unit     Unit
		expected string
	}

	tests := map[string]tc{
		"zero":     {unit: Zero, expected: "0px"},
		"pixels":   {unit: Pixels(12), expected: "12px"},
		"fill":     {unit: Fill, expected: "100%"},
		"combined": {unit: MustUnit(5, 0.25), expected: "5px+25%"},
		"dynamic":  {unit: DynamicSize, expected: "dynamic"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.unit.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClampUnit(t *testing.T) {
	type tc struct {
		value    float64
		min, max Unit
		expected float64
	}

	tests := map[string]tc{
		"inside":         {value: 50, min: Pixels(10), max: Fill, expected: 50},
		"below min":      {value: 5, min: Pixels(10), max: Fill, expected: 10},
		"above max":      {value: 150, min: Zero, max: Fill, expected: 100},
		"percent max":    {value: 80, min: Zero, max: MustUnit(0, 0.5), expected: 50},
		"inverted below": {value: 10, min: Pixels(60), max: Pixels(40), expected: 60},
		"inverted above": {value: 70, min: Pixels(60), max: Pixels(40), expected: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ClampUnit(tt.value, tt.min, tt.max, 100); got != tt.expected {
				t.Errorf("ClampUnit(%g, %s, %s, 100) = %g, want %g", tt.value, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}
