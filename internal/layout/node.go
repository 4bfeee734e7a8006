package layout

import (
	"fmt"
	"slices"
	"sync/atomic"
)

var nextNodeID atomic.Uint64

// Node is an in-memory Box. It is the host the CLI and the document loader
// build trees from, and a convenient Box for tests.
type Node struct {
	id       BoxID
	name     string
	parent   *Node
	children []*Node

	margin  Edges
	padding Edges

	geometry Geometry
	metrics  Metrics
	alignH   float64
	alignV   float64
}

// NewNode returns a detached node with a process-unique ID.
func NewNode(name string) *Node {
	return &Node{id: BoxID(nextNodeID.Add(1)), name: name}
}

// ID implements Box.
func (n *Node) ID() BoxID { return n.id }

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

func (n *Node) String() string { return n.name }

// Parent implements Box. A root returns nil rather than a nil *Node.
func (n *Node) Parent() Box {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentNode returns the parent node or nil.
func (n *Node) ParentNode() *Node { return n.parent }

// Children implements Box.
func (n *Node) Children() []Box {
	out := make([]Box, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// ChildNodes returns the children as nodes.
func (n *Node) ChildNodes() []*Node { return n.children }

// AddChild appends children, detaching them from any previous parent.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, child := range children {
		child.detach()
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// InsertChild implements Container. Only nodes can be adopted.
func (n *Node) InsertChild(index int, child Box) error {
	c, ok := child.(*Node)
	if !ok || c == nil {
		return fmt.Errorf("node %q cannot adopt %T: %w", n.name, child, ErrNotContainer)
	}
	limit := len(n.children)
	if c.parent == n {
		limit--
	}
	if index < 0 || index > limit {
		return fmt.Errorf("insert into %q at %d of %d: %w", n.name, index, limit, ErrIndexOutOfRange)
	}
	c.detach()
	c.parent = n
	n.children = slices.Insert(n.children, index, c)
	return nil
}

// RemoveChild implements Container. It reports whether child was found.
func (n *Node) RemoveChild(child Box) bool {
	c, ok := child.(*Node)
	if !ok || c == nil {
		return false
	}
	return n.removeChild(c)
}

func (n *Node) removeChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

func (n *Node) detach() {
	if n.parent != nil {
		n.parent.removeChild(n)
	}
}

// Margin implements Box.
func (n *Node) Margin() Edges { return n.margin }

// Padding implements Box.
func (n *Node) Padding() Edges { return n.padding }

// SetMargin sets the margin and returns n for chaining.
func (n *Node) SetMargin(e Edges) *Node {
	n.margin = e
	return n
}

// SetPadding sets the padding and returns n for chaining.
func (n *Node) SetPadding(e Edges) *Node {
	n.padding = e
	return n
}

// Geometry implements Box.
func (n *Node) Geometry() Geometry { return n.geometry }

// SetGeometry implements Box.
func (n *Node) SetGeometry(g Geometry) { n.geometry = g }

// Metrics implements Box.
func (n *Node) Metrics() Metrics { return n.metrics }

// SetMetrics implements Box.
func (n *Node) SetMetrics(m Metrics) { n.metrics = m }

// SetAlign implements Box.
func (n *Node) SetAlign(h, v float64) { n.alignH, n.alignV = h, v }

// Align returns the values from the last SetAlign.
func (n *Node) Align() (h, v float64) { return n.alignH, n.alignV }

// Walk calls fn for n and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
