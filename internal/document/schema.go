package document

// Document is the root of a layout file.
type Document struct {
	Viewport *Viewport `toml:"viewport,omitempty" yaml:"viewport,omitempty" json:"viewport,omitempty"`
	Root     Element   `toml:"root" yaml:"root" json:"root"`
}

// Viewport overrides the configured screen size.
type Viewport struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
}

// Element kinds.
const (
	KindBox    = "box"
	KindRow    = "row"
	KindColumn = "column"
)

// Element describes one box and its children.
type Element struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	// Kind is box (the default), row or column. Rows and columns chain
	// their children in document order.
	Kind     string `toml:"kind,omitempty" yaml:"kind,omitempty" json:"kind,omitempty"`
	Spacing  string `toml:"spacing,omitempty" yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Reversed bool   `toml:"reversed,omitempty" yaml:"reversed,omitempty" json:"reversed,omitempty"`

	// Margin and Padding take 1 (all sides), 2 (vertical, horizontal) or
	// 4 (top, right, bottom, left) values.
	Margin  []float64 `toml:"margin,omitempty" yaml:"margin,omitempty" json:"margin,omitempty"`
	Padding []float64 `toml:"padding,omitempty" yaml:"padding,omitempty" json:"padding,omitempty"`

	// ReadOnly elements are not laid out and keep Geometry.
	ReadOnly bool          `toml:"read_only,omitempty" yaml:"read_only,omitempty" json:"read_only,omitempty"`
	Geometry *GeometrySpec `toml:"geometry,omitempty" yaml:"geometry,omitempty" json:"geometry,omitempty"`

	Size    *SizeSpec    `toml:"size,omitempty" yaml:"size,omitempty" json:"size,omitempty"`
	Gravity *GravitySpec `toml:"gravity,omitempty" yaml:"gravity,omitempty" json:"gravity,omitempty"`
	Bias    *BiasSpec    `toml:"bias,omitempty" yaml:"bias,omitempty" json:"bias,omitempty"`

	InheritSize    string `toml:"inherit_size,omitempty" yaml:"inherit_size,omitempty" json:"inherit_size,omitempty"`
	InheritGravity string `toml:"inherit_gravity,omitempty" yaml:"inherit_gravity,omitempty" json:"inherit_gravity,omitempty"`

	Constraints []ConstraintSpec `toml:"constraints,omitempty" yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Children    []Element        `toml:"children,omitempty" yaml:"children,omitempty" json:"children,omitempty"`
}

// GeometrySpec is a host-provided margin box.
type GeometrySpec struct {
	Left   float64 `toml:"left" yaml:"left" json:"left"`
	Top    float64 `toml:"top" yaml:"top" json:"top"`
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
}

// SizeSpec holds units in the text form accepted by ParseUnit. Empty
// bounds keep their defaults.
type SizeSpec struct {
	Width     string `toml:"width" yaml:"width" json:"width"`
	Height    string `toml:"height" yaml:"height" json:"height"`
	MinWidth  string `toml:"min_width,omitempty" yaml:"min_width,omitempty" json:"min_width,omitempty"`
	MaxWidth  string `toml:"max_width,omitempty" yaml:"max_width,omitempty" json:"max_width,omitempty"`
	MinHeight string `toml:"min_height,omitempty" yaml:"min_height,omitempty" json:"min_height,omitempty"`
	MaxHeight string `toml:"max_height,omitempty" yaml:"max_height,omitempty" json:"max_height,omitempty"`
}

// GravitySpec lists gravity flags by name plus per-axis offsets.
type GravitySpec struct {
	Type       []string `toml:"type" yaml:"type" json:"type"`
	Horizontal string   `toml:"horizontal,omitempty" yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Vertical   string   `toml:"vertical,omitempty" yaml:"vertical,omitempty" json:"vertical,omitempty"`
}

// BiasSpec components default to 0.5 when omitted.
type BiasSpec struct {
	Horizontal *float64 `toml:"horizontal,omitempty" yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Vertical   *float64 `toml:"vertical,omitempty" yaml:"vertical,omitempty" json:"vertical,omitempty"`
}

// ConstraintSpec ties an edge of the element to an edge of a named sibling,
// or of the parent when Anchor is empty or "parent".
type ConstraintSpec struct {
	Relation string `toml:"relation" yaml:"relation" json:"relation"`
	Anchor   string `toml:"anchor,omitempty" yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Offset   string `toml:"offset,omitempty" yaml:"offset,omitempty" json:"offset,omitempty"`
}
