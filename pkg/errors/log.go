package errors

import (
	"github.com/go-ember/ember/pkg/log"
)

// LogHandler is a Handler that writes errors through the embedder logger.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool
}

// HandleError logs an EmberError.
func (h *LogHandler) HandleError(err *EmberError) {
	if err == nil {
		return
	}
	logger := log.Base()
	ev := logger.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("embedder error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	logger := log.Base()
	ev := logger.Error().
		Str("op", err.Op).
		Any("value", err.Value)
	if err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
