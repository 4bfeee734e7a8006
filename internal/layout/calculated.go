package layout

import (
	"fmt"
	"math"
)

type layoutMode uint8

const (
	modeWritable layoutMode = iota
	modeReadOnly
)

// CalculatedLayout is the per-pass scratch record of a box. Its edges are
// the margin box in the parent's content frame. Layouts are created fresh by
// every pass and are not reused.
type CalculatedLayout struct {
	box  Box
	mode layoutMode

	edges [edgeCount]float64

	parent   *CalculatedLayout
	children []*CalculatedLayout

	// own holds the link writing each edge, dependents the links reading it.
	own        [edgeCount]*dimensionLink
	dependents [edgeCount][]*dimensionLink

	// attrs are the manager's attributes, nil for read-only layouts. The
	// effective gravity, size and bias below already resolve inheritance.
	attrs   *Attributes
	gravity Gravity
	size    *SizeConstraint
	bias    Bias

	// screen is set on the placeholder of a root without a parent.
	screen   bool
	viewport Size
}

func newWritableLayout(box Box, parent *CalculatedLayout) *CalculatedLayout {
	return &CalculatedLayout{box: box, mode: modeWritable, parent: parent, bias: DefaultBias}
}

// newMirrorLayout builds a read-only layout holding the host's current geometry.
func newMirrorLayout(box Box, parent *CalculatedLayout) *CalculatedLayout {
	c := &CalculatedLayout{box: box, mode: modeReadOnly, parent: parent, bias: DefaultBias}
	c.setRect(box.Geometry().Rect())
	return c
}

func newScreenLayout(viewport Size) *CalculatedLayout {
	c := &CalculatedLayout{mode: modeReadOnly, screen: true, viewport: viewport}
	c.edges[EdgeRight] = viewport.Width
	c.edges[EdgeBottom] = viewport.Height
	return c
}

// Box returns the host box, or nil for the screen.
func (c *CalculatedLayout) Box() Box { return c.box }

// ReadOnly reports whether the layout only mirrors its host.
func (c *CalculatedLayout) ReadOnly() bool { return c.mode == modeReadOnly }

func (c *CalculatedLayout) Left() float64   { return c.edges[EdgeLeft] }
func (c *CalculatedLayout) Top() float64    { return c.edges[EdgeTop] }
func (c *CalculatedLayout) Right() float64  { return c.edges[EdgeRight] }
func (c *CalculatedLayout) Bottom() float64 { return c.edges[EdgeBottom] }

// Width returns Right - Left.
func (c *CalculatedLayout) Width() float64 { return c.edges[EdgeRight] - c.edges[EdgeLeft] }

// Height returns Bottom - Top.
func (c *CalculatedLayout) Height() float64 { return c.edges[EdgeBottom] - c.edges[EdgeTop] }

// Rect returns the margin box in the parent's content frame.
func (c *CalculatedLayout) Rect() Rect {
	return Rect{X: c.Left(), Y: c.Top(), Width: c.Width(), Height: c.Height()}
}

func (c *CalculatedLayout) extent(axis Axis) float64 {
	if axis == Vertical {
		return c.Height()
	}
	return c.Width()
}

func (c *CalculatedLayout) margin() Edges {
	if c.box == nil {
		return Edges{}
	}
	return c.box.Margin()
}

func (c *CalculatedLayout) padding() Edges {
	if c.box == nil {
		return Edges{}
	}
	return c.box.Padding()
}

// ChildContainerSize is the size of the content frame children are laid out
// in: the box minus its margins and paddings, never negative. The screen
// returns the viewport.
func (c *CalculatedLayout) ChildContainerSize() Size {
	if c.screen {
		return c.viewport
	}
	insets := c.margin().Add(c.padding())
	return Size{
		Width:  math.Max(0, c.Width()-insets.Horizontal()),
		Height: math.Max(0, c.Height()-insets.Vertical()),
	}
}

// contentOrigin returns the offset of the content frame inside the parent's
// content frame.
func (c *CalculatedLayout) contentOrigin() Point {
	insets := c.margin().Add(c.padding())
	return Point{X: c.Left() + insets.Left, Y: c.Top() + insets.Top}
}

func (c *CalculatedLayout) setRect(r Rect) {
	c.edges = [edgeCount]float64{
		EdgeLeft:   r.X,
		EdgeTop:    r.Y,
		EdgeRight:  r.Right(),
		EdgeBottom: r.Bottom(),
	}
}

// setEdge writes a single edge and re-evaluates the links reading it.
// Read-only layouts ignore the write.
func (c *CalculatedLayout) setEdge(e Edge, v float64) {
	c.setEdges(e, v, e, v)
}

// setEdges writes two edges before notifying the dependents of either, so
// readers never observe a half-moved box.
func (c *CalculatedLayout) setEdges(a Edge, va float64, b Edge, vb float64) {
	if c.mode == modeReadOnly {
		return
	}
	changedA := c.edges[a] != va
	changedB := a != b && c.edges[b] != vb
	c.edges[a] = va
	c.edges[b] = vb
	if changedA {
		c.notify(a)
	}
	if changedB {
		c.notify(b)
	}
}

func (c *CalculatedLayout) notify(e Edge) {
	for _, l := range c.dependents[e] {
		l.evaluate()
	}
}

// moveEdge places edge e at v and drags the opposite edge along so the
// extent on that axis is unchanged.
func (c *CalculatedLayout) moveEdge(e Edge, v float64) {
	opp := e.Opposite()
	delta := v - c.edges[e]
	c.setEdges(e, v, opp, c.edges[opp]+delta)
}

func (c *CalculatedLayout) pinned(e Edge) bool {
	return c.own[e] != nil
}

// AssignWidth gives the box width w. A box pinned on one edge grows away
// from it, a box pinned on both keeps what its constraints say, and a free
// box is placed so its gravity point sits on the gravity anchor.
func (c *CalculatedLayout) AssignWidth(w float64, g Gravity, parent Size) {
	c.assign(Horizontal, w, g, parent.Width)
}

// AssignHeight is AssignWidth for the vertical axis.
func (c *CalculatedLayout) AssignHeight(h float64, g Gravity, parent Size) {
	c.assign(Vertical, h, g, parent.Height)
}

func (c *CalculatedLayout) assign(axis Axis, length float64, g Gravity, parent float64) {
	lead, trail := EdgeLeft, EdgeRight
	if axis == Vertical {
		lead, trail = EdgeTop, EdgeBottom
	}
	switch {
	case c.pinned(lead) && c.pinned(trail):
	case c.pinned(lead):
		c.setEdge(trail, c.edges[lead]+length)
	case c.pinned(trail):
		c.setEdge(lead, c.edges[trail]-length)
	default:
		start := g.AnchorAlong(axis, parent) - g.Fraction(axis)*length
		c.setEdges(lead, start, trail, start+length)
	}
}

// ExportBoxMetrics returns the absolute outer, bounds and inner rectangles
// given the absolute origin of the parent's content frame.
func (c *CalculatedLayout) ExportBoxMetrics(origin Point) Metrics {
	outer := c.Rect().Translate(origin.X, origin.Y)
	bounds := outer.Inset(c.margin())
	return Metrics{
		Outer:  outer,
		Bounds: bounds,
		Inner:  bounds.Inset(c.padding()),
	}
}

// align returns the normalized gravity anchor for centered axes.
func (c *CalculatedLayout) align(parent Size) (h, v float64) {
	ratio := func(axis Axis, length float64) float64 {
		if !c.gravity.Centered(axis) {
			return 0
		}
		if length <= 0 {
			return 0.5
		}
		return c.gravity.AnchorAlong(axis, length) / length
	}
	return ratio(Horizontal, parent.Width), ratio(Vertical, parent.Height)
}

func (c *CalculatedLayout) String() string {
	return fmt.Sprintf("%s[%g,%g %gx%g]", boxLabel(c.box), c.Left(), c.Top(), c.Width(), c.Height())
}

// boxLabel names a box in diagnostics.
func boxLabel(b Box) string {
	if !validBox(b) {
		return "screen"
	}
	if s, ok := b.(fmt.Stringer); ok {
		if name := s.String(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("box#%d", b.ID())
}
