package layout

import (
	"math"
	"slices"

	"go.uber.org/zap"
)

// pass holds the layouts of one Apply. Layouts are allocated fresh by reset
// and dropped after writeBack.
type pass struct {
	engine *Engine
	logger *zap.Logger

	root        *CalculatedLayout
	placeholder *CalculatedLayout
	siblings    []*CalculatedLayout

	byID     map[BoxID]*CalculatedLayout
	all      []*CalculatedLayout
	writable []*CalculatedLayout
	locked   []*Manager
	links    int

	warned map[*CalculatedLayout]bool
}

func newPass(e *Engine) *pass {
	return &pass{
		engine: e,
		logger: e.logger,
		byID:   make(map[BoxID]*CalculatedLayout),
		warned: make(map[*CalculatedLayout]bool),
	}
}

func axisEdges(axis Axis) (lead, trail Edge) {
	if axis == Vertical {
		return EdgeTop, EdgeBottom
	}
	return EdgeLeft, EdgeRight
}

// reset builds a fresh layout for every box of the subtree, mirrors the
// root's parent (or the screen) and the root's siblings, and resolves size
// and gravity inheritance.
func (p *pass) reset(root Box) {
	parent := root.Parent()
	if validBox(parent) {
		p.placeholder = newMirrorLayout(parent, nil)
		for _, s := range parent.Children() {
			if !validBox(s) || s.ID() == root.ID() {
				continue
			}
			m := newMirrorLayout(s, p.placeholder)
			p.siblings = append(p.siblings, m)
			p.byID[s.ID()] = m
		}
	} else {
		p.placeholder = newScreenLayout(p.engine.viewport)
	}

	p.root = p.build(root, p.placeholder)

	for _, c := range p.writable {
		p.inherit(c)
		if c.size == nil {
			c.setRect(c.box.Geometry().Rect())
		}
	}
}

func (p *pass) build(box Box, parent *CalculatedLayout) *CalculatedLayout {
	var c *CalculatedLayout
	if m, ok := p.engine.managers[box.ID()]; ok && !m.IsReadOnly() {
		c = newWritableLayout(box, parent)
		c.attrs = m.attrs
		c.gravity = m.attrs.Gravity
		c.size = m.attrs.Size
		c.bias = m.attrs.Bias
		p.writable = append(p.writable, c)
	} else {
		c = newMirrorLayout(box, parent)
	}
	p.byID[box.ID()] = c
	p.all = append(p.all, c)

	for _, child := range box.Children() {
		if !validBox(child) {
			continue
		}
		c.children = append(c.children, p.build(child, c))
	}
	return c
}

// inherit replaces the size or gravity of c with those of the box it
// inherits from. A source without attributes lends its host size.
func (p *pass) inherit(c *CalculatedLayout) {
	if src := c.attrs.SizeSource(); src != NoBox {
		if m, ok := p.engine.managers[src]; ok && m.attrs != nil {
			c.size = m.attrs.Size
		} else if h, ok := p.byID[src]; ok {
			g := h.box.Geometry()
			s := NewSizeConstraint(Pixels(g.Width), Pixels(g.Height))
			c.size = &s
		} else {
			p.logger.Warn("size inheritance source not found",
				zap.String("box", boxLabel(c.box)),
				zap.Uint64("source", uint64(src)),
			)
		}
	}
	if src := c.attrs.GravitySource(); src != NoBox {
		if m, ok := p.engine.managers[src]; ok && m.attrs != nil {
			c.gravity = m.attrs.Gravity
		} else {
			p.logger.Warn("gravity inheritance source not found",
				zap.String("box", boxLabel(c.box)),
				zap.Uint64("source", uint64(src)),
			)
		}
	}
}

// init binds every declared constraint to concrete layouts and pairs links
// on opposing edges.
func (p *pass) init() error {
	for _, c := range p.writable {
		for _, con := range c.attrs.Constraints() {
			anchor := p.anchorFor(c, con)
			l := newDimensionLink(c, anchor, con)
			c.own[con.Relation.SourceEdge()] = l
			if anchor == c.parent {
				// The parent anchor reads the container size, which moves
				// with either edge of the axis.
				lead, trail := axisEdges(con.Relation.Axis())
				anchor.dependents[lead] = append(anchor.dependents[lead], l)
				anchor.dependents[trail] = append(anchor.dependents[trail], l)
			} else {
				edge := con.Relation.AnchorEdge()
				anchor.dependents[edge] = append(anchor.dependents[edge], l)
			}
			p.links++
		}
		for _, axis := range [...]Axis{Horizontal, Vertical} {
			lead, trail := axisEdges(axis)
			if a, b := c.own[lead], c.own[trail]; a != nil && b != nil {
				a.opposite, b.opposite = b, a
			}
		}
	}
	return p.detectCycles()
}

func (p *pass) anchorFor(c *CalculatedLayout, con Constraint) *CalculatedLayout {
	if con.AnchoredToParent() {
		return c.parent
	}
	if a, ok := p.byID[con.Anchor]; ok && a != c && a.parent == c.parent {
		return a
	}
	p.logger.Warn("constraint anchor is not a sibling, using parent",
		zap.String("box", boxLabel(c.box)),
		zap.Stringer("relation", con.Relation),
		zap.Uint64("anchor", uint64(con.Anchor)),
	)
	return c.parent
}

// resolve computes sizes and positions top-down.
func (p *pass) resolve() {
	for e := Edge(0); e < edgeCount; e++ {
		p.placeholder.notify(e)
		for _, s := range p.siblings {
			s.notify(e)
		}
	}
	p.resolveBox(p.root, p.placeholder.ChildContainerSize())
}

func (p *pass) resolveBox(c *CalculatedLayout, parent Size) {
	p.resolveAxis(c, Horizontal, parent.Width)
	p.resolveAxis(c, Vertical, parent.Height)

	inner := c.ChildContainerSize()
	for _, child := range c.children {
		p.resolveBox(child, inner)
	}
}

func (p *pass) resolveAxis(c *CalculatedLayout, axis Axis, parent float64) {
	if c.ReadOnly() {
		return
	}
	lead, trail := axisEdges(axis)
	for _, e := range [...]Edge{lead, trail} {
		if l := c.own[e]; l != nil {
			l.evaluate()
		}
	}

	switch {
	case c.size == nil:
		// Unsized boxes keep their host extent and only move for gravity.
		if c.gravity.Aligned(axis) {
			c.assign(axis, c.extent(axis), c.gravity, parent)
		}
	case c.size.Along(axis).IsDynamic():
		c.assign(axis, p.dynamicLength(c, axis, parent), c.gravity, parent)
	default:
		c.assign(axis, c.size.Constrained(axis, parent), c.gravity, parent)
	}

	c.notify(lead)
	c.notify(trail)
}

// dynamicLength sizes c on axis from the extent of its children, which are
// resolved on that axis first.
func (p *pass) dynamicLength(c *CalculatedLayout, axis Axis, parent float64) float64 {
	if len(c.children) == 0 {
		p.warnDynamic(c)
		return c.size.Clamp(axis, 0, parent)
	}
	// The box has no extent yet, so children are measured against the space
	// the box itself could take.
	insets := c.margin().Add(c.padding())
	inner := math.Max(0, parent-insets.Along(axis))
	lead, trail := axisEdges(axis)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, child := range c.children {
		p.resolveAxis(child, axis, inner)
		lo = math.Min(lo, child.edges[lead])
		hi = math.Max(hi, child.edges[trail])
	}
	lo = math.Max(0, lo)
	hi = math.Max(lo, hi)
	return c.size.Clamp(axis, hi-lo, parent)
}

func (p *pass) warnDynamic(c *CalculatedLayout) {
	if p.warned[c] {
		return
	}
	p.warned[c] = true
	p.logger.Warn("dynamic size with no children, using 0",
		zap.String("box", boxLabel(c.box)),
		zap.Strings("hierarchy", hierarchy(c.box)),
	)
}

// hierarchy lists the labels from the host root down to b.
func hierarchy(b Box) []string {
	var out []string
	for ; validBox(b); b = b.Parent() {
		out = append(out, boxLabel(b))
	}
	slices.Reverse(out)
	return out
}

// writeBack mirrors the pass into the host boxes and releases one lock
// level on each resolved box.
func (p *pass) writeBack() {
	var origin Point
	if !p.placeholder.screen {
		origin = p.placeholder.box.Metrics().Inner.Origin()
	}
	p.writeBox(p.root, origin, p.placeholder.ChildContainerSize())
	p.unlock()
}

// unlock releases the locks taken by Apply, including those of managers
// released since.
func (p *pass) unlock() {
	for _, m := range p.locked {
		if m.lock > 0 {
			m.lock--
		}
	}
	p.locked = nil
}

func (p *pass) writeBox(c *CalculatedLayout, origin Point, parent Size) {
	if !c.ReadOnly() {
		if m, ok := p.engine.managers[c.box.ID()]; ok && m.lock <= 1 {
			c.box.SetGeometry(GeometryOf(c.Rect()))
			c.box.SetMetrics(c.ExportBoxMetrics(origin))
			c.box.SetAlign(c.align(parent))
			m.layout, m.computed = c.Rect(), true
		}
	}

	inner := origin.Add(c.contentOrigin())
	size := c.ChildContainerSize()
	for _, child := range c.children {
		p.writeBox(child, inner, size)
	}
}
