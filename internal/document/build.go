package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// Tree is a built document: the host nodes, the engine managing them and
// the ordered containers chaining their children.
type Tree struct {
	Root    *layout.Node
	Engine  *layout.Engine
	Ordered []*layout.OrderedList

	nodes map[string]*layout.Node
	order []*layout.Node
}

// Node returns the element called name.
func (t *Tree) Node(name string) (*layout.Node, bool) {
	n, ok := t.nodes[name]
	return n, ok
}

// Nodes returns every node in document order.
func (t *Tree) Nodes() []*layout.Node { return t.order }

// Calculate lays out the whole tree and writes the results to the nodes.
func (t *Tree) Calculate() error {
	return t.Engine.Recalculate(t.Root)
}

type builder struct {
	tree     *Tree
	elements map[*layout.Node]*Element
}

// Build creates the node tree of doc and registers every element that is not
// read-only with a fresh engine. The document viewport, when present,
// overrides the viewport option.
func Build(doc *Document, opts ...layout.Option) (*Tree, error) {
	if doc.Viewport != nil {
		opts = append(opts, layout.WithViewport(doc.Viewport.Width, doc.Viewport.Height))
	}
	b := &builder{
		tree: &Tree{
			Engine: layout.NewEngine(opts...),
			nodes:  make(map[string]*layout.Node),
		},
		elements: make(map[*layout.Node]*Element),
	}

	root, err := b.node(&doc.Root, "root")
	if err != nil {
		return nil, err
	}
	b.tree.Root = root

	// Attributes reference other elements by name, so they are applied once
	// every node exists. Chains go last so they win over declared constraints.
	for _, n := range b.tree.order {
		if err := b.attributes(n, b.elements[n]); err != nil {
			return nil, fmt.Errorf("element %s: %w", n.Name(), err)
		}
	}
	for _, n := range b.tree.order {
		if err := b.chain(n, b.elements[n]); err != nil {
			return nil, fmt.Errorf("element %s: %w", n.Name(), err)
		}
	}
	// Ordered containers manage their elements; read-only ones stay mirrors.
	for _, n := range b.tree.order {
		if m, ok := b.tree.Engine.Lookup(n.ID()); ok && b.elements[n].ReadOnly {
			m.SetReadOnly(true)
		}
	}
	return b.tree, nil
}

func (b *builder) node(el *Element, name string) (*layout.Node, error) {
	if el.Name != "" {
		name = el.Name
	}
	if _, dup := b.tree.nodes[name]; dup {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	switch el.Kind {
	case "", KindBox, KindRow, KindColumn:
	default:
		return nil, fmt.Errorf("element %s kind %q: %w", name, el.Kind, ErrUnknownKind)
	}

	n := layout.NewNode(name)
	b.tree.nodes[name] = n
	b.tree.order = append(b.tree.order, n)
	b.elements[n] = el

	margin, err := parseInsets(el.Margin)
	if err != nil {
		return nil, fmt.Errorf("element %s margin: %w", name, err)
	}
	padding, err := parseInsets(el.Padding)
	if err != nil {
		return nil, fmt.Errorf("element %s padding: %w", name, err)
	}
	n.SetMargin(margin).SetPadding(padding)
	if g := el.Geometry; g != nil {
		n.SetGeometry(layout.Geometry{Left: g.Left, Top: g.Top, Width: g.Width, Height: g.Height})
	}

	for i := range el.Children {
		child, err := b.node(&el.Children[i], name+"."+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (b *builder) lookup(name string) (layout.BoxID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "parent":
		return layout.NoBox, nil
	}
	n, ok := b.tree.nodes[name]
	if !ok {
		return layout.NoBox, fmt.Errorf("%q: %w", name, ErrUnknownName)
	}
	return n.ID(), nil
}

func (b *builder) attributes(n *layout.Node, el *Element) error {
	if el.ReadOnly {
		return nil
	}
	a := b.tree.Engine.Manage(n).Attributes()

	if el.Size != nil {
		s, err := ParseSize(*el.Size)
		if err != nil {
			return err
		}
		a.WithSize(s)
	}
	if el.Gravity != nil {
		g, err := ParseGravity(*el.Gravity)
		if err != nil {
			return err
		}
		a.WithGravity(g)
	}
	if el.Bias != nil {
		h, v := 0.5, 0.5
		if el.Bias.Horizontal != nil {
			h = *el.Bias.Horizontal
		}
		if el.Bias.Vertical != nil {
			v = *el.Bias.Vertical
		}
		bias, err := layout.NewBias(h, v)
		if err != nil {
			return err
		}
		a.WithBias(bias)
	}
	if el.InheritSize != "" {
		id, err := b.lookup(el.InheritSize)
		if err != nil {
			return fmt.Errorf("inherit_size: %w", err)
		}
		a.InheritSize(id)
	}
	if el.InheritGravity != "" {
		id, err := b.lookup(el.InheritGravity)
		if err != nil {
			return fmt.Errorf("inherit_gravity: %w", err)
		}
		a.InheritGravity(id)
	}

	for i, c := range el.Constraints {
		rel, err := layout.ParseRelation(c.Relation)
		if err != nil {
			return fmt.Errorf("constraint %d: %w", i, err)
		}
		anchor, err := b.lookup(c.Anchor)
		if err != nil {
			return fmt.Errorf("constraint %d anchor: %w", i, err)
		}
		offset, err := ParseUnit(c.Offset)
		if err != nil {
			return fmt.Errorf("constraint %d offset: %w", i, err)
		}
		if err := a.AddConstraint(rel, anchor, offset); err != nil {
			return fmt.Errorf("constraint %d: %w", i, err)
		}
	}
	return nil
}

// chain wires row and column elements to an ordered list over their children.
func (b *builder) chain(n *layout.Node, el *Element) error {
	if el.Kind != KindRow && el.Kind != KindColumn {
		return nil
	}
	dir := layout.Row
	if el.Kind == KindColumn {
		dir = layout.Column
	}
	spacing, err := ParseUnit(el.Spacing)
	if err != nil {
		return fmt.Errorf("spacing: %w", err)
	}
	list, err := layout.NewOrderedList(b.tree.Engine, n, dir, spacing)
	if err != nil {
		return err
	}
	for _, child := range n.Children() {
		if _, err := list.Add(child); err != nil {
			return err
		}
	}
	list.SetReversed(el.Reversed)
	b.tree.Ordered = append(b.tree.Ordered, list)
	return nil
}
