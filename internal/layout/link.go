package layout

// dimensionLink is a constraint bound to concrete layouts for one pass. It
// writes one edge of dependent from an edge of anchor.
type dimensionLink struct {
	dependent *CalculatedLayout
	anchor    *CalculatedLayout
	offset    Unit
	relation  Relation

	// opposite is the link on the other edge of the same axis, if any.
	opposite *dimensionLink
}

func newDimensionLink(dependent, anchor *CalculatedLayout, c Constraint) *dimensionLink {
	return &dimensionLink{
		dependent: dependent,
		anchor:    anchor,
		offset:    c.Offset,
		relation:  c.Relation,
	}
}

// anchorValue reads the anchor edge in the dependent's frame. The parent's
// content frame starts at 0, so its leading edges read 0 and its trailing
// edges read the container size.
func (l *dimensionLink) anchorValue() float64 {
	edge := l.relation.AnchorEdge()
	if l.anchor == l.dependent.parent {
		if edge.Trailing() {
			return l.anchor.ChildContainerSize().Along(edge.Axis())
		}
		return 0
	}
	return l.anchor.edges[edge]
}

// offsetValue returns the distance from the anchor edge. With
// both opposing edges constrained the two offsets are blended by the bias.
func (l *dimensionLink) offsetValue() float64 {
	axis := l.relation.Axis()
	available := l.dependent.parent.ChildContainerSize().Along(axis)
	v := l.offset.Value(available)
	if l.opposite == nil {
		return v
	}
	bias := l.dependent.bias.Along(axis)
	if l.relation.Trailing() {
		bias = 1 - bias
	}
	return (v + l.opposite.offset.Value(available)) * bias
}

func (l *dimensionLink) evaluate() {
	off := l.offsetValue()
	v := l.anchorValue() + off
	if l.relation.Trailing() {
		v = l.anchorValue() - off
	}
	edge := l.relation.SourceEdge()
	if l.opposite != nil {
		l.dependent.setEdge(edge, v)
		return
	}
	l.dependent.moveEdge(edge, v)
}
