package document

import "errors"

var (
	// ErrUnknownFormat is returned for files that are not TOML, YAML or JSON.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrBadUnit is returned for unit strings outside the unit grammar.
	ErrBadUnit = errors.New("invalid unit")

	// ErrUnknownGravity is returned for an unknown gravity flag name.
	ErrUnknownGravity = errors.New("unknown gravity")

	// ErrUnknownKind is returned for an element kind other than box, row or column.
	ErrUnknownKind = errors.New("unknown element kind")

	// ErrBadInsets is returned for margins or paddings with 3 or more than 4 values.
	ErrBadInsets = errors.New("insets need 1, 2 or 4 values")

	// ErrDuplicateName is returned when two elements share a name.
	ErrDuplicateName = errors.New("duplicate element name")

	// ErrUnknownName is returned when an anchor or inheritance source names no element.
	ErrUnknownName = errors.New("unknown element name")
)
