// Package app defines the contract between the embedder and the GUI
// toolkit. The embedder treats the toolkit as a single frame-update call:
// input in, draw output and a repaint hint out. Exactly one goroutine calls
// Update at a time; toolkit state is not safe for concurrent use.
package app

import (
	"time"

	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/paint"
)

// Frame is the input to one toolkit update.
type Frame struct {
	// Events are the translated input events accumulated since the last
	// frame, in arrival order.
	Events []input.Event
	// Size is the current logical size of the surface.
	Size geom.Size
	// Scale is the current density scale factor.
	Scale float64
	// Time is the monotonic time since the application was created.
	Time time.Duration
	// DarkMode reflects the platform's night-mode configuration.
	DarkMode bool
}

// Application is the root of an embedded application.
//
// An Application may be constructed multiple times during the life of one
// process as the user reopens the activity; be careful with global state.
type Application interface {
	// Update runs one frame. A returned error skips presentation for this
	// frame but is non-fatal: the loop logs it and continues.
	Update(frame Frame) (*paint.Output, paint.RepaintHint, error)

	// SaveState serializes application state for process-death recovery.
	// Called synchronously while the activity pauses; it must return before
	// the platform may kill the process.
	SaveState() ([]byte, error)

	// RestoreState rehydrates state saved by a previous instance. The bytes
	// are exactly what SaveState returned. Never called with nil.
	RestoreState(data []byte) error
}

// MemoryPressureHandler is optionally implemented by Applications that want
// the platform's low-memory signal (e.g. to drop caches).
type MemoryPressureHandler interface {
	OnLowMemory()
}
