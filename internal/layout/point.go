package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Along returns the component of the size on the given axis.
func (s Size) Along(axis Axis) float64 {
	if axis == Vertical {
		return s.Height
	}
	return s.Width
}
