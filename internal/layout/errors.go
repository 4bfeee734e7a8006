package layout

import "errors"

var (
	// ErrPercentOutOfRange is returned when a unit's percent lies outside [0, 1].
	ErrPercentOutOfRange = errors.New("percent out of range [0, 1]")

	// ErrBiasOutOfRange is returned when a constraint bias lies outside [0, 1].
	ErrBiasOutOfRange = errors.New("bias out of range [0, 1]")

	// ErrSelfReference is returned when a constraint anchors a box to itself.
	ErrSelfReference = errors.New("constraint anchors box to itself")

	// ErrUnknownRelation is returned for a relation outside the eight edge relations.
	ErrUnknownRelation = errors.New("unknown constraint relation")

	// ErrConstraintCycle is returned by a pass whose constraint graph is cyclic.
	ErrConstraintCycle = errors.New("constraint cycle")

	// ErrNotContainer is returned when an ordered layout is built on a box
	// that cannot hold children.
	ErrNotContainer = errors.New("box is not a container")

	// ErrIndexOutOfRange is returned by ordered layout insertions past the end.
	ErrIndexOutOfRange = errors.New("index out of range")
)
