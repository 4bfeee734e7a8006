// layout.go re-exports the engine types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import "github.com/grindlemire/go-boxlayout/internal/layout"

// BoxID identifies a box across passes.
type BoxID = layout.BoxID

// NoBox is the anchor value meaning "the parent".
const NoBox = layout.NoBox

// Box is the host element the engine lays out.
type Box = layout.Box

// Container is a Box whose children can be edited.
type Container = layout.Container

// Node is a ready-made Box implementation.
type Node = layout.Node

// Geometry is a margin box in the parent's content frame.
type Geometry = layout.Geometry

// Metrics holds the absolute outer, bounds and inner rectangles of a box.
type Metrics = layout.Metrics

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Unit is a length of pixels plus a fraction of the enclosing length.
type Unit = layout.Unit

var (
	Zero        = layout.Zero
	Fill        = layout.Fill
	DynamicSize = layout.DynamicSize
)

// Axis is horizontal or vertical.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Relation names the edge pair a Constraint ties together.
type Relation = layout.Relation

const (
	LeftToLeftOf     = layout.LeftToLeftOf
	LeftToRightOf    = layout.LeftToRightOf
	RightToLeftOf    = layout.RightToLeftOf
	RightToRightOf   = layout.RightToRightOf
	TopToTopOf       = layout.TopToTopOf
	TopToBottomOf    = layout.TopToBottomOf
	BottomToTopOf    = layout.BottomToTopOf
	BottomToBottomOf = layout.BottomToBottomOf
)

// Constraint ties one edge of a box to an edge of an anchor box.
type Constraint = layout.Constraint

// GravityType is a set of gravity flags.
type GravityType = layout.GravityType

const (
	GravityNone      = layout.GravityNone
	GravityLeft      = layout.GravityLeft
	GravityRight     = layout.GravityRight
	GravityTop       = layout.GravityTop
	GravityBottom    = layout.GravityBottom
	GravityCenter    = layout.GravityCenter
	CenterHorizontal = layout.CenterHorizontal
	CenterVertical   = layout.CenterVertical
)

// Gravity anchors a box inside its parent's free space.
type Gravity = layout.Gravity

// Bias splits free space between two opposing constraints.
type Bias = layout.Bias

// SizeConstraint is a preferred size with bounds.
type SizeConstraint = layout.SizeConstraint

// SizeOption sets a bound on a SizeConstraint.
type SizeOption = layout.SizeOption

// Attributes are the per-box layout inputs.
type Attributes = layout.Attributes

// Engine computes layouts for managed boxes.
type Engine = layout.Engine

// Option configures an Engine.
type Option = layout.Option

// Manager holds the attributes and lock state of one box.
type Manager = layout.Manager

// Direction is the axis an ordered layout chains along.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// OrderedLayout chains the elements of a container one after another.
type OrderedLayout = layout.OrderedLayout

// OrderedList is an OrderedLayout that can present its items reversed.
type OrderedList = layout.OrderedList

var (
	ErrPercentOutOfRange = layout.ErrPercentOutOfRange
	ErrBiasOutOfRange    = layout.ErrBiasOutOfRange
	ErrSelfReference     = layout.ErrSelfReference
	ErrUnknownRelation   = layout.ErrUnknownRelation
	ErrConstraintCycle   = layout.ErrConstraintCycle
	ErrNotContainer      = layout.ErrNotContainer
	ErrIndexOutOfRange   = layout.ErrIndexOutOfRange
)

// NewEngine creates an engine with the default viewport and a no-op logger.
func NewEngine(opts ...Option) *Engine {
	return layout.NewEngine(opts...)
}

// WithViewport sets the size roots are laid out against.
var WithViewport = layout.WithViewport

// WithLogger sets the engine's logger.
var WithLogger = layout.WithLogger

// NewNode creates a named node with no parent.
func NewNode(name string) *Node {
	return layout.NewNode(name)
}

// NewUnit creates a Unit. percent must be within [0, 1].
func NewUnit(pixels, percent float64) (Unit, error) {
	return layout.NewUnit(pixels, percent)
}

// Pixels creates a fixed Unit.
func Pixels(px float64) Unit {
	return layout.Pixels(px)
}

// Percent creates a Unit that is a fraction of the enclosing length.
func Percent(p float64) (Unit, error) {
	return layout.Percent(p)
}

// NewGravity creates a Gravity from flags and per-axis offsets.
func NewGravity(t GravityType, horizontal, vertical Unit) Gravity {
	return layout.NewGravity(t, horizontal, vertical)
}

// NewBias creates a Bias. Both values must be within [0, 1].
func NewBias(horizontal, vertical float64) (Bias, error) {
	return layout.NewBias(horizontal, vertical)
}

// NewSize creates a SizeConstraint with optional bounds.
func NewSize(width, height Unit, opts ...SizeOption) SizeConstraint {
	return layout.NewSizeConstraint(width, height, opts...)
}

var (
	WithMinWidth  = layout.WithMinWidth
	WithMaxWidth  = layout.WithMaxWidth
	WithMinHeight = layout.WithMinHeight
	WithMaxHeight = layout.WithMaxHeight
)

// ParseRelation reads a relation name such as "left_to_right_of".
func ParseRelation(s string) (Relation, error) {
	return layout.ParseRelation(s)
}

// NewOrderedLayout chains the children of container along direction.
func NewOrderedLayout(engine *Engine, container Box, direction Direction, spacing Unit) (*OrderedLayout, error) {
	return layout.NewOrderedLayout(engine, container, direction, spacing)
}

// NewOrderedList creates an OrderedList over container.
func NewOrderedList(engine *Engine, container Box, direction Direction, spacing Unit) (*OrderedList, error) {
	return layout.NewOrderedList(engine, container, direction, spacing)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
