package layout

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultViewport is the screen size used when no viewport is configured.
var DefaultViewport = Size{Width: 800, Height: 600}

// Engine maps boxes to their managers and runs layout passes. An Engine is
// not safe for concurrent use.
type Engine struct {
	managers map[BoxID]*Manager
	pending  map[BoxID]*pass
	viewport Size
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithViewport sets the size of the screen root boxes are laid out in.
func WithViewport(width, height float64) Option {
	return func(e *Engine) {
		e.viewport = Size{Width: width, Height: height}
	}
}

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine returns an engine with no managed boxes.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		managers: make(map[BoxID]*Manager),
		pending:  make(map[BoxID]*pass),
		viewport: DefaultViewport,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Viewport returns the screen size.
func (e *Engine) Viewport() Size { return e.viewport }

// SetViewport changes the screen size for subsequent passes.
func (e *Engine) SetViewport(width, height float64) {
	e.viewport = Size{Width: width, Height: height}
}

// Manage returns the manager of box, creating it with empty attributes.
func (e *Engine) Manage(box Box) *Manager {
	if m, ok := e.managers[box.ID()]; ok {
		return m
	}
	m := &Manager{engine: e, box: box, attrs: NewAttributes(box.ID())}
	e.managers[box.ID()] = m
	return m
}

// Manager returns the manager of box. Unmanaged boxes get a transient
// read-only view that is not registered.
func (e *Engine) Manager(box Box) *Manager {
	if m, ok := e.managers[box.ID()]; ok {
		return m
	}
	return &Manager{engine: e, box: box, transient: true}
}

// Lookup returns the registered manager for id.
func (e *Engine) Lookup(id BoxID) (*Manager, bool) {
	m, ok := e.managers[id]
	return m, ok
}

// Release forgets the manager of box. The box is mirrored read-only by
// later passes until it is managed again. A pass applied at box and not yet
// mirrored is dropped and its locks released.
func (e *Engine) Release(box Box) {
	if p, ok := e.pending[box.ID()]; ok {
		p.unlock()
		delete(e.pending, box.ID())
	}
	delete(e.managers, box.ID())
}

// Recalculate lays out the subtree rooted at box and writes the results back
// to the host boxes.
func (e *Engine) Recalculate(box Box) error {
	if err := e.Apply(box); err != nil {
		return err
	}
	e.Mirror(box)
	return nil
}

// Apply computes the subtree rooted at box and locks every resolved box
// until Mirror. Applying a locked box, or a box whose pass is still
// pending, does nothing.
func (e *Engine) Apply(box Box) error {
	if !validBox(box) {
		return nil
	}
	if _, ok := e.pending[box.ID()]; ok {
		e.logger.Debug("skipping pending box", zap.String("box", boxLabel(box)))
		return nil
	}
	if m, ok := e.managers[box.ID()]; ok && m.Locked() {
		e.logger.Debug("skipping locked box", zap.String("box", boxLabel(box)))
		return nil
	}

	p := newPass(e)
	p.reset(box)
	if err := p.init(); err != nil {
		return fmt.Errorf("apply %s: %w", boxLabel(box), err)
	}
	p.resolve()

	for _, c := range p.writable {
		m := e.managers[c.box.ID()]
		m.lock++
		p.locked = append(p.locked, m)
	}
	e.pending[box.ID()] = p

	e.logger.Debug("layout pass applied",
		zap.String("root", boxLabel(box)),
		zap.Int("boxes", len(p.all)),
		zap.Int("links", p.links),
	)
	return nil
}

// Mirror writes the pass computed by Apply back to the host boxes and
// unlocks them. Boxes still locked by an outer pass are not written.
func (e *Engine) Mirror(box Box) {
	if !validBox(box) {
		return
	}
	p, ok := e.pending[box.ID()]
	if !ok {
		return
	}
	delete(e.pending, box.ID())
	p.writeBack()
}
