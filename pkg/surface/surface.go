// Package surface owns the renderable surface in lockstep with the
// lifecycle: the handle's validity window, the graphics target built on top
// of it, and the single ready gate the frame loop checks immediately before
// every present.
package surface

import (
	"errors"

	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/paint"
)

// Handle is an opaque, platform-owned drawable target. The platform
// invalidates it on surface loss; the embedder never destroys it. After the
// destroyed callback returns, the handle must not be dereferenced again.
type Handle interface {
	// NativePointer returns the platform's native window pointer for the
	// graphics backend to bind against.
	NativePointer() uintptr
}

// ErrInvalidated reports that the surface vanished between the ready check
// and the present. This is an expected race during teardown: the frame is
// silently dropped, not surfaced to the application.
var ErrInvalidated = errors.New("surface invalidated")

// ErrUnsupported reports that no graphics backend exists for this platform.
var ErrUnsupported = errors.New("graphics backend not supported on this platform")

// Target is a live graphics rendering target bound to a Handle.
type Target interface {
	// Resize adapts the target to a new physical size.
	Resize(size geom.ISize) error
	// Present draws one frame of output and submits it.
	Present(out *paint.Output) error
	// Destroy releases the target's resources. Must complete synchronously;
	// the platform tears the native surface down as soon as the destroyed
	// callback returns.
	Destroy()
}

// Backend creates graphics targets for platform surface handles.
type Backend interface {
	CreateTarget(h Handle, size geom.ISize) (Target, error)
}
