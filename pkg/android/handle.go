package android

import (
	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/surface"
)

// windowHandle wraps an ANativeWindow pointer. The embedder never
// dereferences it; only the GLES backend does, and only between
// surface-available and surface-destroyed.
type windowHandle uintptr

func (h windowHandle) NativePointer() uintptr { return uintptr(h) }

// WindowHandle wraps a native window pointer for the surface manager.
func WindowHandle(ptr uintptr) surface.Handle {
	return windowHandle(ptr)
}

func geomSize(width, height int) geom.ISize {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return geom.ISize{Width: width, Height: height}
}
