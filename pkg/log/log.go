// Package log configures the process-wide zerolog logger used by the
// embedder. On Android the output is routed to logcat; elsewhere it goes to
// stderr. Configuration happens exactly once per process, matching the
// platform's guarantee that the entry point runs once even though an
// activity may be created many times.
package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	// Level is the minimum level ("trace", "debug", "info", ...).
	// Empty means info.
	Level string
	// Tag is attached to every entry and used as the logcat tag on Android.
	// Empty means "ember".
	Tag string
	// Output overrides the default writer. Nil selects the platform writer
	// (logcat on Android, stderr elsewhere).
	Output io.Writer
}

var base zerolog.Logger = newLogger(Config{})

// Configure initialises the global logger. Later calls replace the logger;
// the embedder calls this once from its entry point with manifest settings.
func Configure(cfg Config) {
	base = newLogger(cfg)
}

func newLogger(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	tag := cfg.Tag
	if tag == "" {
		tag = "ember"
	}

	writer := cfg.Output
	if writer == nil {
		writer = platformWriter(tag)
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("tag", tag).
		Logger()
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	return base
}

// For returns a component-scoped logger.
func For(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
