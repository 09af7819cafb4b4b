package surface

import (
	"fmt"
	"sync"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/lifecycle"
	"github.com/go-ember/ember/pkg/log"
	"github.com/go-ember/ember/pkg/paint"
)

// Manager tracks the current surface handle and the graphics target built
// on it. All mutations happen on the render thread (driven by drained
// platform events); the mutex keeps IsReady consistent for the frame loop's
// pre-present check.
type Manager struct {
	machine *lifecycle.Machine
	backend Backend

	mu     sync.Mutex
	handle Handle
	target Target
	size   geom.ISize
	scale  float64
}

// NewManager creates a manager gated by the given lifecycle machine.
func NewManager(machine *lifecycle.Machine, backend Backend) *Manager {
	return &Manager{machine: machine, backend: backend, scale: 1}
}

// Available records a freshly created platform surface and builds a
// graphics target on it, provided the lifecycle permits one.
func (m *Manager) Available(h Handle, size geom.ISize, scale float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.target != nil {
		// The platform recreated the surface without a destroyed callback
		// in between. Release the stale target first.
		m.target.Destroy()
		m.target = nil
	}

	m.handle = h
	m.size = size
	if scale > 0 {
		m.scale = scale
	}
	m.ensureTargetLocked()
}

// Changed records a surface resize or density change and resizes the target.
func (m *Manager) Changed(size geom.ISize, scale float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.size = size
	if scale > 0 {
		m.scale = scale
	}
	if m.target == nil {
		return
	}
	if err := m.target.Resize(size); err != nil {
		errors.Report(&errors.EmberError{
			Op:   "surface.Changed",
			Kind: errors.KindSurface,
			Err:  err,
		})
		m.target.Destroy()
		m.target = nil
	}
}

// Destroyed releases the graphics target synchronously and forgets the
// handle. The previously supplied handle is invalid once this returns.
func (m *Manager) Destroyed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.releaseLocked()
	m.handle = nil
}

// OnLifecycle keeps the target's lifetime inside the lifecycle window:
// the target is torn down when the activity leaves the foreground states
// and rebuilt when it starts again with a handle still in hand.
func (m *Manager) OnLifecycle(_, next lifecycle.State, _ lifecycle.Transition) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch next {
	case lifecycle.StateStopped, lifecycle.StateDestroyed:
		m.releaseLocked()
	case lifecycle.StateStarted:
		m.ensureTargetLocked()
	}
}

func (m *Manager) ensureTargetLocked() {
	if m.target != nil || m.handle == nil || m.size.IsEmpty() {
		return
	}
	if !m.machine.Foreground() {
		return
	}
	target, err := m.backend.CreateTarget(m.handle, m.size)
	if err != nil {
		errors.Report(&errors.EmberError{
			Op:   "surface.ensureTarget",
			Kind: errors.KindSurface,
			Err:  fmt.Errorf("create target: %w", err),
		})
		return
	}
	m.target = target
	logger := log.For("surface")
	logger.Debug().
		Int("width", m.size.Width).
		Int("height", m.size.Height).
		Float64("scale", m.scale).
		Msg("surface target created")
}

func (m *Manager) releaseLocked() {
	if m.target == nil {
		return
	}
	m.target.Destroy()
	m.target = nil
	logger := log.For("surface")
	logger.Debug().Msg("surface target released")
}

// IsReady reports whether a frame may be presented right now: the activity
// is resumed and a live target exists. The frame loop checks this
// immediately before every present. Note the target may be *held* while
// merely started or paused; presenting additionally requires resumed.
func (m *Manager) IsReady() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.target != nil && m.machine.Current() == lifecycle.StateResumed
}

// Scale returns the current density scale factor.
func (m *Manager) Scale() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale
}

// LogicalSize returns the current surface size in logical coordinates.
func (m *Manager) LogicalSize() geom.Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size.Logical(m.scale)
}

// Present submits one frame of draw output. Returns ErrInvalidated when the
// surface is gone or was lost mid-present; the caller drops the frame
// silently and re-checks IsReady before the next attempt.
func (m *Manager) Present(out *paint.Output) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.target == nil || !m.machine.Foreground() {
		return ErrInvalidated
	}
	if err := m.target.Present(out); err != nil {
		// A present failure means the platform pulled the surface out from
		// under us; the target is unusable from here on.
		m.target.Destroy()
		m.target = nil
		return fmt.Errorf("%w: %v", ErrInvalidated, err)
	}
	return nil
}
