package layout

import (
	"fmt"
	"strings"
)

// Axis is one of the two layout axes.
type Axis uint8

const (
	Horizontal Axis = iota // Left/Right edges, widths
	Vertical               // Top/Bottom edges, heights
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Edge is one side of a box.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom

	edgeCount = 4
)

var edgeNames = [edgeCount]string{"left", "top", "right", "bottom"}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// Axis returns the axis the edge lies on.
func (e Edge) Axis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return Vertical
	}
	return Horizontal
}

// Trailing reports whether the edge is Right or Bottom.
func (e Edge) Trailing() bool {
	return e == EdgeRight || e == EdgeBottom
}

// Opposite returns the other edge on the same axis.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeLeft:
		return EdgeRight
	case EdgeRight:
		return EdgeLeft
	case EdgeTop:
		return EdgeBottom
	default:
		return EdgeTop
	}
}

// Relation names which edge of a box is tied to which edge of its anchor.
type Relation uint8

const (
	LeftToLeftOf     Relation = iota // Left edge to the anchor's left edge
	LeftToRightOf                    // Left edge to the anchor's right edge
	RightToLeftOf                    // Right edge to the anchor's left edge
	RightToRightOf                   // Right edge to the anchor's right edge
	TopToTopOf                       // Top edge to the anchor's top edge
	TopToBottomOf                    // Top edge to the anchor's bottom edge
	BottomToTopOf                    // Bottom edge to the anchor's top edge
	BottomToBottomOf                 // Bottom edge to the anchor's bottom edge

	relationCount = 8
)

var relationEdges = [relationCount]struct {
	source, anchor Edge
	name           string
}{
	LeftToLeftOf:     {EdgeLeft, EdgeLeft, "left_to_left_of"},
	LeftToRightOf:    {EdgeLeft, EdgeRight, "left_to_right_of"},
	RightToLeftOf:    {EdgeRight, EdgeLeft, "right_to_left_of"},
	RightToRightOf:   {EdgeRight, EdgeRight, "right_to_right_of"},
	TopToTopOf:       {EdgeTop, EdgeTop, "top_to_top_of"},
	TopToBottomOf:    {EdgeTop, EdgeBottom, "top_to_bottom_of"},
	BottomToTopOf:    {EdgeBottom, EdgeTop, "bottom_to_top_of"},
	BottomToBottomOf: {EdgeBottom, EdgeBottom, "bottom_to_bottom_of"},
}

// Valid reports whether r is one of the eight relations.
func (r Relation) Valid() bool {
	return r < relationCount
}

// SourceEdge returns the edge of the constrained box the relation writes.
func (r Relation) SourceEdge() Edge {
	return relationEdges[r].source
}

// AnchorEdge returns the edge of the anchor the relation reads.
func (r Relation) AnchorEdge() Edge {
	return relationEdges[r].anchor
}

// Axis returns the axis the relation acts on.
func (r Relation) Axis() Axis {
	return r.SourceEdge().Axis()
}

// Trailing reports whether the relation writes a Right or Bottom edge.
// Offsets of trailing relations point left or up.
func (r Relation) Trailing() bool {
	return r.SourceEdge().Trailing()
}

func (r Relation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
	return relationEdges[r].name
}

// ParseRelation accepts the snake_case names produced by String as well as
// the CamelCase constant names.
func ParseRelation(s string) (Relation, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for r := Relation(0); r < relationCount; r++ {
		if strings.ReplaceAll(relationEdges[r].name, "_", "") == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("relation %q: %w", s, ErrUnknownRelation)
}

// Constraint ties one edge of a box to an edge of an anchor box plus an offset.
// An Anchor of NoBox means the box's parent. Anchors are held by ID only and
// are checked for liveness during every pass.
type Constraint struct {
	Relation Relation
	Offset   Unit
	Anchor   BoxID
}

// AnchoredToParent reports whether the constraint uses the parent as anchor.
func (c Constraint) AnchoredToParent() bool {
	return c.Anchor == NoBox
}
