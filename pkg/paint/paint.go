// Package paint describes what an application hands back from its update
// call: tessellated draw output for the surface, a repaint hint telling the
// frame loop when to wake next, and platform side-effects the toolkit
// requested during the frame.
package paint

import (
	"time"

	"golang.org/x/image/math/f32"

	"github.com/go-ember/ember/pkg/geom"
)

// Vertex is one tessellated vertex in logical coordinates.
type Vertex struct {
	// Pos is the vertex position.
	Pos f32.Vec2
	// UV is the texture coordinate.
	UV f32.Vec2
	// Color is premultiplied RGBA, packed as 0xRRGGBBAA.
	Color uint32
}

// Mesh is a textured triangle list clipped to a rectangle.
type Mesh struct {
	// Texture identifies the texture sampled by this mesh. Zero is the
	// toolkit's font atlas.
	Texture uint64
	// Clip bounds the mesh in logical coordinates.
	Clip geom.Rect
	// Vertices is the vertex buffer.
	Vertices []Vertex
	// Indices index Vertices in groups of three.
	Indices []uint32
}

// TextureUpdate uploads or replaces texture pixels before meshes are drawn.
type TextureUpdate struct {
	ID     uint64
	Size   geom.ISize
	Pixels []byte // RGBA, Size.Width*Size.Height*4 bytes
}

// Output is the draw result of one application update.
type Output struct {
	// Meshes are drawn in order.
	Meshes []Mesh
	// TextureUpdates are applied before drawing.
	TextureUpdates []TextureUpdate
	// TexturesToFree are released after drawing.
	TexturesToFree []uint64

	// ShowKeyboard requests the soft keyboard be made visible.
	ShowKeyboard bool
	// CopyText, when non-empty, is placed on the system clipboard.
	CopyText string
	// OpenURL, when non-empty, is opened by the platform.
	OpenURL string
}

// RepaintMode tells the frame loop when the next frame is needed absent
// new input.
type RepaintMode int

const (
	// RepaintOnInput produces the next frame only when input arrives.
	RepaintOnInput RepaintMode = iota
	// RepaintAt produces the next frame at the hint's deadline.
	RepaintAt
	// RepaintContinuous produces frames as fast as the loop allows.
	RepaintContinuous
)

// RepaintHint is the toolkit's scheduling request for the next frame.
type RepaintHint struct {
	Mode RepaintMode
	// At is the wake deadline when Mode is RepaintAt.
	At time.Time
}

// OnInput returns a hint that waits for input.
func OnInput() RepaintHint { return RepaintHint{Mode: RepaintOnInput} }

// Continuous returns a hint that repaints every frame.
func Continuous() RepaintHint { return RepaintHint{Mode: RepaintContinuous} }

// At returns a hint that repaints at the given deadline.
func At(t time.Time) RepaintHint { return RepaintHint{Mode: RepaintAt, At: t} }

// After returns a hint that repaints after the given delay.
func After(d time.Duration) RepaintHint { return At(time.Now().Add(d)) }
