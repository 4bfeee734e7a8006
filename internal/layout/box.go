package layout

// BoxID identifies a box across layout passes. Constraints reference their
// anchors by ID so a removed anchor never keeps a box alive.
type BoxID uint64

// NoBox is the zero BoxID. As a constraint anchor it means the parent.
const NoBox BoxID = 0

// Geometry is the margin box of a box in its parent's content frame.
type Geometry struct {
	Left, Top     float64
	Width, Height float64
}

// Rect converts the geometry to a Rect.
func (g Geometry) Rect() Rect {
	return Rect{X: g.Left, Y: g.Top, Width: g.Width, Height: g.Height}
}

// GeometryOf converts a Rect to Geometry.
func GeometryOf(r Rect) Geometry {
	return Geometry{Left: r.X, Top: r.Y, Width: r.Width, Height: r.Height}
}

// Metrics holds the absolute rectangles of a laid out box.
type Metrics struct {
	// Outer is the margin box.
	Outer Rect

	// Bounds is Outer minus the margin, the space the box paints in.
	Bounds Rect

	// Inner is Bounds minus the padding, where children are placed.
	Inner Rect
}

// Box is the host element the engine lays out. The engine only reads the
// tree structure and insets and writes results back through the setters.
type Box interface {
	// ID returns a stable identifier, never NoBox.
	ID() BoxID

	// Parent returns the parent box or nil for a root.
	Parent() Box

	// Children returns the child boxes in order.
	Children() []Box

	Margin() Edges
	Padding() Edges

	// Geometry returns the margin box in the parent's content frame.
	Geometry() Geometry

	// SetGeometry is called by the engine during write-back.
	SetGeometry(Geometry)

	// Metrics returns the last absolute rectangles.
	Metrics() Metrics

	// SetMetrics is called by the engine during write-back.
	SetMetrics(Metrics)

	// SetAlign receives the normalized anchor position of the box inside its
	// parent for centered axes and 0 otherwise.
	SetAlign(h, v float64)
}

// Container is a Box whose children can be edited. Ordered layouts require it.
type Container interface {
	Box
	InsertChild(index int, child Box) error
	RemoveChild(child Box) bool
}

// validBox reports whether b holds a usable value, catching typed nils.
func validBox(b Box) bool {
	if b == nil {
		return false
	}
	if n, ok := b.(*Node); ok && n == nil {
		return false
	}
	return true
}
