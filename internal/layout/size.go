package layout

// SizeConstraint is the desired size of a box plus its bounds.
type SizeConstraint struct {
	Width     Unit
	Height    Unit
	MinWidth  Unit
	MaxWidth  Unit
	MinHeight Unit
	MaxHeight Unit
}

// SizeOption customizes a SizeConstraint.
type SizeOption func(*SizeConstraint)

// WithMinWidth sets the lower width bound.
func WithMinWidth(u Unit) SizeOption { return func(s *SizeConstraint) { s.MinWidth = u } }

// WithMaxWidth sets the upper width bound.
func WithMaxWidth(u Unit) SizeOption { return func(s *SizeConstraint) { s.MaxWidth = u } }

// WithMinHeight sets the lower height bound.
func WithMinHeight(u Unit) SizeOption { return func(s *SizeConstraint) { s.MinHeight = u } }

// WithMaxHeight sets the upper height bound.
func WithMaxHeight(u Unit) SizeOption { return func(s *SizeConstraint) { s.MaxHeight = u } }

// NewSizeConstraint returns a size with bounds Zero..Fill unless overridden.
func NewSizeConstraint(width, height Unit, opts ...SizeOption) SizeConstraint {
	s := SizeConstraint{
		Width:     width,
		Height:    height,
		MinWidth:  Zero,
		MaxWidth:  Fill,
		MinHeight: Zero,
		MaxHeight: Fill,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Along returns the desired size on axis.
func (s SizeConstraint) Along(axis Axis) Unit {
	if axis == Vertical {
		return s.Height
	}
	return s.Width
}

// Constrained returns the desired size on axis clamped by its bounds.
func (s SizeConstraint) Constrained(axis Axis, parent float64) float64 {
	return s.Clamp(axis, s.Along(axis).Value(parent), parent)
}

// Clamp restricts an externally computed size on axis to the bounds.
func (s SizeConstraint) Clamp(axis Axis, v, parent float64) float64 {
	if axis == Vertical {
		return ClampUnit(v, s.MinHeight, s.MaxHeight, parent)
	}
	return ClampUnit(v, s.MinWidth, s.MaxWidth, parent)
}

// ConstrainedWidth returns Width clamped by MinWidth and MaxWidth.
func (s SizeConstraint) ConstrainedWidth(parentWidth float64) float64 {
	return s.Constrained(Horizontal, parentWidth)
}

// ConstrainedHeight returns Height clamped by MinHeight and MaxHeight.
func (s SizeConstraint) ConstrainedHeight(parentHeight float64) float64 {
	return s.Constrained(Vertical, parentHeight)
}

// ClampWidth clamps width by MinWidth and MaxWidth.
func (s SizeConstraint) ClampWidth(width, parentWidth float64) float64 {
	return s.Clamp(Horizontal, width, parentWidth)
}

// ClampHeight clamps height by MinHeight and MaxHeight.
func (s SizeConstraint) ClampHeight(height, parentHeight float64) float64 {
	return s.Clamp(Vertical, height, parentHeight)
}
