// Package errors provides structured error handling for the Ember embedder.
//
// No error reported through this package may escape across a platform
// callback boundary: the JNI layer treats an escaping fault as fatal to the
// whole process, so every callback entry point recovers panics and converts
// failures into EmberError values before returning.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindLifecycle indicates an invalid or out-of-order lifecycle transition.
	KindLifecycle
	// KindSurface indicates a render surface or graphics backend error.
	KindSurface
	// KindInput indicates an input translation failure.
	KindInput
	// KindPersist indicates a saved-state serialization or storage error.
	KindPersist
	// KindToolkit indicates an error returned by the application's update call.
	KindToolkit
	// KindConfig indicates an embedder manifest error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindLifecycle:
		return "lifecycle"
	case KindSurface:
		return "surface"
	case KindInput:
		return "input"
	case KindPersist:
		return "persist"
	case KindToolkit:
		return "toolkit"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// EmberError represents a structured error in the embedder.
type EmberError struct {
	// Op is the operation that failed (e.g., "runner.presentFrame").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EmberError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EmberError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered at a platform callback boundary.
type PanicError struct {
	// Op is the callback that panicked (e.g., "android.OnSurfaceDestroyed").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the embedder.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EmberError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
