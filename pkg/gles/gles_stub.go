//go:build !android

// Package gles provides a stub backend for non-Android platforms so the
// module compiles for host-side development and tests. The real EGL/GLES2
// backend is Android-only.
package gles

import (
	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/surface"
)

// Backend is the GLES presentation backend.
type Backend struct{}

// NewBackend creates the stub backend.
func NewBackend() *Backend {
	return &Backend{}
}

// CreateTarget always fails on non-Android platforms.
func (b *Backend) CreateTarget(surface.Handle, geom.ISize) (surface.Target, error) {
	return nil, surface.ErrUnsupported
}
