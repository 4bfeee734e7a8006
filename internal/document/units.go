package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// ParseUnit reads dynamic, fill, zero, <n>, <n>px, <p>% and <n>px+<p>%.
// An empty string is zero.
func ParseUnit(s string) (layout.Unit, error) {
	text := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	switch text {
	case "", "0", "zero":
		return layout.Zero, nil
	case "fill":
		return layout.Fill, nil
	case "dynamic":
		return layout.DynamicSize, nil
	}

	var pixels, percent float64
	for _, part := range strings.Split(text, "+") {
		var err error
		switch {
		case strings.HasSuffix(part, "%"):
			var p float64
			p, err = strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
			percent += p / 100
		case strings.HasSuffix(part, "px"):
			var px float64
			px, err = strconv.ParseFloat(strings.TrimSuffix(part, "px"), 64)
			pixels += px
		default:
			var px float64
			px, err = strconv.ParseFloat(part, 64)
			pixels += px
		}
		if err != nil {
			return layout.Unit{}, fmt.Errorf("%q: %w", s, ErrBadUnit)
		}
	}

	u, err := layout.NewUnit(pixels, percent)
	if err != nil {
		return layout.Unit{}, fmt.Errorf("%q: %w", s, err)
	}
	return u, nil
}

// parseUnitOr returns def for an empty string.
func parseUnitOr(s string, def layout.Unit) (layout.Unit, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseUnit(s)
}

var gravityNames = map[string]layout.GravityType{
	"none":              layout.GravityNone,
	"left":              layout.GravityLeft,
	"right":             layout.GravityRight,
	"top":               layout.GravityTop,
	"bottom":            layout.GravityBottom,
	"center":            layout.GravityCenter,
	"center_horizontal": layout.CenterHorizontal,
	"center_vertical":   layout.CenterVertical,
}

// ParseGravity combines named gravity flags with the two offsets.
func ParseGravity(spec GravitySpec) (layout.Gravity, error) {
	var t layout.GravityType
	for _, name := range spec.Type {
		flag, ok := gravityNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return layout.Gravity{}, fmt.Errorf("%q: %w", name, ErrUnknownGravity)
		}
		t |= flag
	}
	h, err := ParseUnit(spec.Horizontal)
	if err != nil {
		return layout.Gravity{}, fmt.Errorf("gravity horizontal offset: %w", err)
	}
	v, err := ParseUnit(spec.Vertical)
	if err != nil {
		return layout.Gravity{}, fmt.Errorf("gravity vertical offset: %w", err)
	}
	return layout.NewGravity(t, h, v), nil
}

// ParseSize converts a SizeSpec. Missing bounds default to zero and fill.
func ParseSize(spec SizeSpec) (layout.SizeConstraint, error) {
	fields := []struct {
		name string
		text string
		def  layout.Unit
	}{
		{"width", spec.Width, layout.Zero},
		{"height", spec.Height, layout.Zero},
		{"min_width", spec.MinWidth, layout.Zero},
		{"max_width", spec.MaxWidth, layout.Fill},
		{"min_height", spec.MinHeight, layout.Zero},
		{"max_height", spec.MaxHeight, layout.Fill},
	}
	units := make([]layout.Unit, len(fields))
	for i, f := range fields {
		u, err := parseUnitOr(f.text, f.def)
		if err != nil {
			return layout.SizeConstraint{}, fmt.Errorf("size %s: %w", f.name, err)
		}
		units[i] = u
	}
	return layout.NewSizeConstraint(units[0], units[1],
		layout.WithMinWidth(units[2]),
		layout.WithMaxWidth(units[3]),
		layout.WithMinHeight(units[4]),
		layout.WithMaxHeight(units[5]),
	), nil
}

// parseInsets expands the 1, 2 or 4 value shorthand.
func parseInsets(v []float64) (layout.Edges, error) {
	switch len(v) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(v[0]), nil
	case 2:
		return layout.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("%v: %w", v, ErrBadInsets)
	}
}
