// Package geom provides the small geometry vocabulary shared by the
// embedder: logical points and sizes, physical pixel sizes, and the
// density-scale conversion between the two.
package geom

// Point is a position in logical (density-independent) coordinates.
type Point struct {
	X float64
	Y float64
}

// Size is an extent in logical coordinates.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ISize is an extent in physical pixels, as reported by the platform
// surface callbacks.
type ISize struct {
	Width  int
	Height int
}

// IsEmpty returns true if either dimension is zero or negative.
func (s ISize) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Logical converts a physical pixel size to logical coordinates using the
// given density scale factor. A non-positive scale is treated as 1.
func (s ISize) Logical(scale float64) Size {
	if scale <= 0 {
		scale = 1
	}
	return Size{
		Width:  float64(s.Width) / scale,
		Height: float64(s.Height) / scale,
	}
}

// LogicalPoint converts a physical pixel position to logical coordinates.
// A non-positive scale is treated as 1.
func LogicalPoint(x, y, scale float64) Point {
	if scale <= 0 {
		scale = 1
	}
	return Point{X: x / scale, Y: y / scale}
}

// Rect is an axis-aligned rectangle in logical coordinates.
type Rect struct {
	Min Point
	Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
