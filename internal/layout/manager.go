package layout

// Manager owns the layout attributes of one box and tracks its lock depth
// across Apply and Mirror.
type Manager struct {
	engine *Engine
	box    Box
	attrs  *Attributes

	readOnly  bool
	transient bool
	lock      int

	layout   Rect
	computed bool
}

// Box returns the managed box.
func (m *Manager) Box() Box { return m.box }

// Attributes returns the box's attributes. Transient views return nil.
func (m *Manager) Attributes() *Attributes { return m.attrs }

// SetAttributes replaces the attributes. A nil value leaves the box as a
// read-only mirror of its host geometry.
func (m *Manager) SetAttributes(a *Attributes) {
	if m.transient {
		return
	}
	if a != nil && a.owner == NoBox {
		a.owner = m.box.ID()
	}
	m.attrs = a
}

// IsReadOnly reports whether passes leave the box untouched.
func (m *Manager) IsReadOnly() bool {
	return m.transient || m.readOnly || m.attrs == nil
}

// SetReadOnly toggles whether passes leave the box untouched.
func (m *Manager) SetReadOnly(readOnly bool) {
	if m.transient {
		return
	}
	m.readOnly = readOnly
}

// Locked reports whether a computed pass is waiting to be mirrored.
func (m *Manager) Locked() bool { return m.lock > 0 }

// Layout returns the margin box from the last mirrored pass in the parent's
// content frame.
func (m *Manager) Layout() (Rect, bool) {
	return m.layout, m.computed
}
