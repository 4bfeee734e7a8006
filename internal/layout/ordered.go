package layout

import (
	"fmt"
	"slices"
)

// Direction specifies the axis an ordered layout chains its elements along.
type Direction uint8

const (
	Row    Direction = iota // Elements chained left-to-right
	Column                  // Elements chained top-to-bottom
)

// Axis returns the axis the direction chains along.
func (d Direction) Axis() Axis {
	if d == Column {
		return Vertical
	}
	return Horizontal
}

func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// OrderedLayout chains the elements of a container one after another. The
// first element is pinned to the container and every other element to its
// predecessor with the spacing in between.
type OrderedLayout struct {
	engine    *Engine
	container Container
	direction Direction
	spacing   Unit
	elements  []Box
}

// NewOrderedLayout returns an empty ordered layout over container.
func NewOrderedLayout(engine *Engine, container Box, direction Direction, spacing Unit) (*OrderedLayout, error) {
	c, ok := container.(Container)
	if !ok || !validBox(container) {
		return nil, fmt.Errorf("ordered layout over %T: %w", container, ErrNotContainer)
	}
	engine.Manage(container)
	return &OrderedLayout{
		engine:    engine,
		container: c,
		direction: direction,
		spacing:   spacing,
	}, nil
}

// Container returns the box the elements live in.
func (o *OrderedLayout) Container() Container { return o.container }

// Direction returns the chaining direction.
func (o *OrderedLayout) Direction() Direction { return o.direction }

// AlignmentToParent is the relation pinning the first element.
func (o *OrderedLayout) AlignmentToParent() Relation {
	if o.direction == Column {
		return TopToTopOf
	}
	return LeftToLeftOf
}

// AlignmentToSibling is the relation chaining an element to its predecessor.
func (o *OrderedLayout) AlignmentToSibling() Relation {
	if o.direction == Column {
		return TopToBottomOf
	}
	return LeftToRightOf
}

// Spacing returns the gap between consecutive elements.
func (o *OrderedLayout) Spacing() Unit { return o.spacing }

// SetSpacing changes the gap and re-chains every element.
func (o *OrderedLayout) SetSpacing(u Unit) {
	o.spacing = u
	o.relink()
}

// Len returns the number of elements.
func (o *OrderedLayout) Len() int { return len(o.elements) }

// Elements returns a copy of the elements in chain order.
func (o *OrderedLayout) Elements() []Box { return slices.Clone(o.elements) }

// IndexOf returns the position of box in the chain or -1.
func (o *OrderedLayout) IndexOf(box Box) int {
	return slices.IndexFunc(o.elements, func(b Box) bool { return b.ID() == box.ID() })
}

// AddElement appends box to the chain.
func (o *OrderedLayout) AddElement(box Box) (*Attributes, error) {
	return o.InsertElement(len(o.elements), box)
}

// InsertElement places box at index i of the chain, adopting it into the
// container when needed. The element previously at i is chained to box.
// When box is already in the chain it is moved, and i counts positions
// without it. Nothing changes when i is out of range.
func (o *OrderedLayout) InsertElement(i int, box Box) (*Attributes, error) {
	if !validBox(box) {
		return nil, fmt.Errorf("insert element %T: %w", box, ErrNotContainer)
	}
	j := o.IndexOf(box)
	n := len(o.elements)
	if j >= 0 {
		n--
	}
	if i < 0 || i > n {
		return nil, fmt.Errorf("insert element at %d of %d: %w", i, n, ErrIndexOutOfRange)
	}

	if j >= 0 {
		o.elements = slices.Delete(o.elements, j, j+1)
		if j < len(o.elements) {
			o.link(j)
		}
	}

	if !o.hosts(box) {
		at := len(o.container.Children())
		if i < len(o.elements) {
			if k := indexOfBox(o.container.Children(), o.elements[i]); k >= 0 {
				at = k
			}
		}
		if err := o.container.InsertChild(at, box); err != nil {
			return nil, fmt.Errorf("insert element: %w", err)
		}
	}

	m := o.engine.Manage(box)
	if m.Attributes() == nil {
		m.SetAttributes(NewAttributes(box.ID()))
	}
	o.elements = slices.Insert(o.elements, i, box)

	o.link(i)
	if i+1 < len(o.elements) {
		o.link(i + 1)
	}
	return m.Attributes(), nil
}

// RemoveElement drops box from the chain and the container, clears its
// constraints and chains its successor to its predecessor, or to the
// container when box was first.
func (o *OrderedLayout) RemoveElement(box Box) bool {
	i := o.IndexOf(box)
	if i < 0 {
		return false
	}
	o.detach(box)
	o.elements = slices.Delete(o.elements, i, i+1)
	if i < len(o.elements) {
		o.link(i)
	}
	return true
}

// Clear detaches every element from the container and clears their
// constraints.
func (o *OrderedLayout) Clear() {
	for _, b := range o.elements {
		o.detach(b)
	}
	o.elements = nil
}

// Sync forgets elements that are no longer children of the container and
// re-chains the rest.
func (o *OrderedLayout) Sync() {
	o.elements = slices.DeleteFunc(o.elements, func(b Box) bool { return !o.hosts(b) })
	o.relink()
}

// Recalculate re-asserts the chain and lays out the container.
func (o *OrderedLayout) Recalculate() error {
	o.relink()
	return o.engine.Recalculate(o.container)
}

func (o *OrderedLayout) hosts(b Box) bool {
	p := b.Parent()
	return validBox(p) && p.ID() == o.container.ID()
}

func (o *OrderedLayout) relink() {
	for i := range o.elements {
		o.link(i)
	}
}

// link pins element i to its predecessor or to the container. Read-only
// elements keep whatever constraints they have. Elements are unique, so the
// anchor is never the element itself.
func (o *OrderedLayout) link(i int) {
	m := o.engine.Manager(o.elements[i])
	if m.IsReadOnly() {
		return
	}
	a := m.Attributes()
	if i == 0 {
		a.RemoveConstraint(o.AlignmentToSibling())
		a.setConstraint(o.AlignmentToParent(), NoBox, Zero)
		return
	}
	a.RemoveConstraint(o.AlignmentToParent())
	a.setConstraint(o.AlignmentToSibling(), o.elements[i-1].ID(), o.spacing)
}

// detach removes b from the container and clears its constraint set.
func (o *OrderedLayout) detach(b Box) {
	if m := o.engine.Manager(b); !m.IsReadOnly() {
		m.Attributes().ClearConstraints()
	}
	o.container.RemoveChild(b)
}

func indexOfBox(boxes []Box, b Box) int {
	return slices.IndexFunc(boxes, func(x Box) bool { return x.ID() == b.ID() })
}

// OrderedList keeps a logical order of items over an OrderedLayout and can
// present them reversed.
type OrderedList struct {
	layout   *OrderedLayout
	items    []Box
	reversed bool
}

// NewOrderedList returns an empty list over container.
func NewOrderedList(engine *Engine, container Box, direction Direction, spacing Unit) (*OrderedList, error) {
	l, err := NewOrderedLayout(engine, container, direction, spacing)
	if err != nil {
		return nil, err
	}
	return &OrderedList{layout: l}, nil
}

// Layout returns the underlying chain.
func (l *OrderedList) Layout() *OrderedLayout { return l.layout }

// Items returns the items in logical order.
func (l *OrderedList) Items() []Box { return slices.Clone(l.items) }

// Len returns the number of items.
func (l *OrderedList) Len() int { return len(l.items) }

// Reversed reports whether the chain shows the items last to first.
func (l *OrderedList) Reversed() bool { return l.reversed }

// Add appends box in logical order.
func (l *OrderedList) Add(box Box) (*Attributes, error) {
	return l.Insert(len(l.items), box)
}

// AddRange appends boxes in order and stops at the first error.
func (l *OrderedList) AddRange(boxes ...Box) error {
	for _, b := range boxes {
		if _, err := l.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// Insert places box at logical index i.
func (l *OrderedList) Insert(i int, box Box) (*Attributes, error) {
	if i < 0 || i > len(l.items) {
		return nil, fmt.Errorf("insert item at %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	at := i
	if l.reversed {
		at = len(l.items) - i
	}
	a, err := l.layout.InsertElement(at, box)
	if err != nil {
		return nil, err
	}
	l.items = slices.Insert(l.items, i, box)
	return a, nil
}

// Remove drops box from the list.
func (l *OrderedList) Remove(box Box) bool {
	i := indexOfBox(l.items, box)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return l.layout.RemoveElement(box)
}

// Clear removes every item.
func (l *OrderedList) Clear() {
	l.items = nil
	l.layout.Clear()
}

// SetReversed re-chains the items in the requested order. Items stay in the
// container and keep their other constraints.
func (l *OrderedList) SetReversed(reversed bool) {
	if l.reversed == reversed {
		return
	}
	l.reversed = reversed
	chain := slices.Clone(l.items)
	if reversed {
		slices.Reverse(chain)
	}
	l.layout.elements = chain
	l.layout.relink()
}

// TotalSize is the extent of the items along the chain axis after the last
// mirrored pass. Items never laid out or without area are ignored.
func (l *OrderedList) TotalSize() float64 {
	var bounds Rect
	for _, b := range l.items {
		if r, ok := l.layout.engine.Manager(b).Layout(); ok {
			bounds = bounds.Union(r)
		}
	}
	return bounds.Size().Along(l.layout.direction.Axis())
}
