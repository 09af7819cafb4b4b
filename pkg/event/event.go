// Package event adapts the platform's callback stream into a typed, ordered
// event sequence consumed by the frame loop. Platform callbacks arrive on a
// platform-owned thread at arbitrary times; they enqueue here and the render
// thread drains. A single FIFO keeps lifecycle and surface events ordered
// ahead of any input queued after them.
package event

import (
	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/lifecycle"
	"github.com/go-ember/ember/pkg/surface"
)

// Event is one typed platform event.
type Event interface {
	isEvent()
}

// LifecycleEvent carries a lifecycle transition signal.
type LifecycleEvent struct {
	Transition lifecycle.Transition
}

func (LifecycleEvent) isEvent() {}

// SurfaceAvailableEvent signals that the platform created a render surface.
type SurfaceAvailableEvent struct {
	Handle surface.Handle
	Size   geom.ISize
	Scale  float64
}

func (SurfaceAvailableEvent) isEvent() {}

// SurfaceChangedEvent signals a surface resize or density change.
type SurfaceChangedEvent struct {
	Size  geom.ISize
	Scale float64
}

func (SurfaceChangedEvent) isEvent() {}

// SurfaceDestroyedEvent signals that the platform is tearing the surface
// down. All graphics resources must be released before the originating
// callback returns, so this event is always pushed synchronously.
type SurfaceDestroyedEvent struct{}

func (SurfaceDestroyedEvent) isEvent() {}

// ConfigChangedEvent signals a device configuration change (density,
// night mode).
type ConfigChangedEvent struct {
	Scale    float64
	DarkMode bool
}

func (ConfigChangedEvent) isEvent() {}

// LowMemoryEvent relays the platform's memory pressure signal.
type LowMemoryEvent struct{}

func (LowMemoryEvent) isEvent() {}

// InputEvent wraps one raw input event for translation on the render thread.
type InputEvent struct {
	Raw input.RawEvent
}

func (InputEvent) isEvent() {}
