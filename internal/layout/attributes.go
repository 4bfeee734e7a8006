package layout

import "fmt"

// Attributes are the declarative layout inputs of a single box: its gravity,
// size, bias and at most one constraint per edge.
type Attributes struct {
	owner BoxID

	Gravity Gravity
	// Size is nil for boxes that keep the size the host gave them.
	Size *SizeConstraint
	Bias Bias

	constraints [edgeCount]*Constraint

	inheritSize    BoxID
	inheritGravity BoxID
}

// NewAttributes returns empty attributes for the box owner.
func NewAttributes(owner BoxID) *Attributes {
	return &Attributes{owner: owner, Bias: DefaultBias}
}

// Owner returns the box these attributes belong to.
func (a *Attributes) Owner() BoxID {
	return a.owner
}

// WithGravity sets the gravity and returns a for chaining.
func (a *Attributes) WithGravity(g Gravity) *Attributes {
	a.Gravity = g
	return a
}

// WithSize sets the size and returns a for chaining.
func (a *Attributes) WithSize(s SizeConstraint) *Attributes {
	a.Size = &s
	return a
}

// WithBias sets the bias and returns a for chaining.
func (a *Attributes) WithBias(b Bias) *Attributes {
	a.Bias = b
	return a
}

// AddConstraint ties the relation's source edge to anchor. A second
// constraint on the same edge replaces the first. An anchor of NoBox means
// the parent.
func (a *Attributes) AddConstraint(rel Relation, anchor BoxID, offset Unit) error {
	if !rel.Valid() {
		return fmt.Errorf("add constraint %s: %w", rel, ErrUnknownRelation)
	}
	if anchor != NoBox && anchor == a.owner {
		return fmt.Errorf("add constraint %s on box %d: %w", rel, anchor, ErrSelfReference)
	}
	a.setConstraint(rel, anchor, offset)
	return nil
}

// setConstraint stores a constraint the caller has already validated.
func (a *Attributes) setConstraint(rel Relation, anchor BoxID, offset Unit) {
	a.constraints[rel.SourceEdge()] = &Constraint{Relation: rel, Offset: offset, Anchor: anchor}
}

// RemoveConstraint drops the constraint declared with rel. It reports whether
// anything was removed.
func (a *Attributes) RemoveConstraint(rel Relation) bool {
	if !rel.Valid() {
		return false
	}
	edge := rel.SourceEdge()
	c := a.constraints[edge]
	if c == nil || c.Relation != rel {
		return false
	}
	a.constraints[edge] = nil
	return true
}

// ChangeConstraintAnchor points the constraint declared with rel at a new
// anchor. Missing constraints are left alone.
func (a *Attributes) ChangeConstraintAnchor(rel Relation, anchor BoxID) error {
	if !rel.Valid() {
		return fmt.Errorf("change anchor %s: %w", rel, ErrUnknownRelation)
	}
	c := a.constraints[rel.SourceEdge()]
	if c == nil || c.Relation != rel {
		return nil
	}
	if anchor != NoBox && anchor == a.owner {
		return fmt.Errorf("change anchor %s on box %d: %w", rel, anchor, ErrSelfReference)
	}
	c.Anchor = anchor
	return nil
}

// ClearConstraints removes every constraint.
func (a *Attributes) ClearConstraints() {
	a.constraints = [edgeCount]*Constraint{}
}

// Constraint returns the constraint writing edge, if any.
func (a *Attributes) Constraint(edge Edge) (Constraint, bool) {
	if edge >= edgeCount || a.constraints[edge] == nil {
		return Constraint{}, false
	}
	return *a.constraints[edge], true
}

// Constraints returns the declared constraints ordered left, top, right, bottom.
func (a *Attributes) Constraints() []Constraint {
	var out []Constraint
	for _, c := range a.constraints {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// Constrained reports whether edge has a constraint.
func (a *Attributes) Constrained(edge Edge) bool {
	return edge < edgeCount && a.constraints[edge] != nil
}

// InheritSize makes the box take its size from another box at every pass.
// NoBox stops inheriting.
func (a *Attributes) InheritSize(from BoxID) *Attributes {
	a.inheritSize = from
	return a
}

// InheritGravity makes the box take its gravity from another box at every
// pass. NoBox stops inheriting.
func (a *Attributes) InheritGravity(from BoxID) *Attributes {
	a.inheritGravity = from
	return a
}

// SizeSource returns the box the size is inherited from, or NoBox.
func (a *Attributes) SizeSource() BoxID { return a.inheritSize }

// GravitySource returns the box the gravity is inherited from, or NoBox.
func (a *Attributes) GravitySource() BoxID { return a.inheritGravity }

// Clone returns a deep copy of a.
func (a *Attributes) Clone() *Attributes {
	c := *a
	if a.Size != nil {
		s := *a.Size
		c.Size = &s
	}
	for i, con := range a.constraints {
		if con != nil {
			cc := *con
			c.constraints[i] = &cc
		}
	}
	return &c
}
