package layout

import "strings"

// GravityType is a flag set describing how a box is aligned in its parent.
type GravityType uint8

const (
	HasHorizontal      GravityType = 0x01
	HasVertical        GravityType = 0x02
	MirroredHorizontal GravityType = 0x04
	MirroredVertical   GravityType = 0x08
	CenterHorizontal   GravityType = 0x10 | HasHorizontal
	CenterVertical     GravityType = 0x20 | HasVertical

	GravityNone   GravityType = 0
	GravityLeft               = HasHorizontal
	GravityRight              = HasHorizontal | MirroredHorizontal
	GravityTop                = HasVertical
	GravityBottom             = HasVertical | MirroredVertical
	GravityCenter             = CenterHorizontal | CenterVertical

	centerHorizontalBit GravityType = 0x10
	centerVerticalBit   GravityType = 0x20
)

// Has reports whether every bit of flag is set.
func (t GravityType) Has(flag GravityType) bool {
	return t&flag == flag
}

func (t GravityType) String() string {
	if t == GravityNone {
		return "none"
	}
	var parts []string
	switch {
	case t.Has(CenterHorizontal):
		parts = append(parts, "center_horizontal")
	case t.Has(GravityRight):
		parts = append(parts, "right")
	case t.Has(GravityLeft):
		parts = append(parts, "left")
	}
	switch {
	case t.Has(CenterVertical):
		parts = append(parts, "center_vertical")
	case t.Has(GravityBottom):
		parts = append(parts, "bottom")
	case t.Has(GravityTop):
		parts = append(parts, "top")
	}
	return strings.Join(parts, "|")
}

// GravityAxis is the alignment along a single axis.
type GravityAxis uint8

const (
	LeadingEdge  GravityAxis = iota // Left or Top
	Centered                        // Middle of the parent
	TrailingEdge                    // Right or Bottom
)

// Gravity anchors a box inside its parent's free space.
type Gravity struct {
	Type       GravityType
	Horizontal Unit // offset on the horizontal axis
	Vertical   Unit // offset on the vertical axis
}

// NewGravity normalizes the flag set: centering on an axis overrides the edge
// and mirror flags of that axis, and the offset of an unaligned axis is dropped.
func NewGravity(t GravityType, horizontal, vertical Unit) Gravity {
	if t&centerHorizontalBit != 0 {
		t = (t &^ MirroredHorizontal) | HasHorizontal
	}
	if t&centerVerticalBit != 0 {
		t = (t &^ MirroredVertical) | HasVertical
	}
	if t&HasHorizontal == 0 {
		horizontal = Zero
	}
	if t&HasVertical == 0 {
		vertical = Zero
	}
	return Gravity{Type: t, Horizontal: horizontal, Vertical: vertical}
}

// GravityFromAxes builds a Gravity from per-axis alignments.
func GravityFromAxes(h, v GravityAxis, horizontal, vertical Unit) Gravity {
	var t GravityType
	switch h {
	case LeadingEdge:
		t |= GravityLeft
	case Centered:
		t |= CenterHorizontal
	case TrailingEdge:
		t |= GravityRight
	}
	switch v {
	case LeadingEdge:
		t |= GravityTop
	case Centered:
		t |= CenterVertical
	case TrailingEdge:
		t |= GravityBottom
	}
	return NewGravity(t, horizontal, vertical)
}

// Centered reports whether the gravity centers the box on axis.
func (g Gravity) Centered(axis Axis) bool {
	if axis == Vertical {
		return g.Type&centerVerticalBit != 0
	}
	return g.Type&centerHorizontalBit != 0
}

// Aligned reports whether the gravity has any alignment on axis.
func (g Gravity) Aligned(axis Axis) bool {
	if axis == Vertical {
		return g.Type&HasVertical != 0
	}
	return g.Type&HasHorizontal != 0
}

func (g Gravity) mirrored(axis Axis) bool {
	if axis == Vertical {
		return g.Type&MirroredVertical != 0
	}
	return g.Type&MirroredHorizontal != 0
}

func (g Gravity) offset(axis Axis) Unit {
	if axis == Vertical {
		return g.Vertical
	}
	return g.Horizontal
}

// Fraction returns the point of the box pinned to the anchor on axis:
// 0 for the leading edge, 0.5 for the middle and 1 for the trailing edge.
func (g Gravity) Fraction(axis Axis) float64 {
	switch {
	case g.Centered(axis):
		return 0.5
	case g.Aligned(axis) && g.mirrored(axis):
		return 1
	default:
		return 0
	}
}

// AnchorAlong returns the anchor coordinate on a single axis.
func (g Gravity) AnchorAlong(axis Axis, parent float64) float64 {
	if !g.Aligned(axis) {
		return 0
	}
	var anchor float64
	switch {
	case g.Centered(axis):
		anchor = parent / 2
	case g.mirrored(axis):
		anchor = parent
	}
	return anchor + g.offset(axis).Value(parent)
}

// Anchor returns the anchor point in the parent's content frame.
func (g Gravity) Anchor(parent Size) Point {
	return Point{
		X: g.AnchorAlong(Horizontal, parent.Width),
		Y: g.AnchorAlong(Vertical, parent.Height),
	}
}
