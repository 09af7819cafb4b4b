package geom

import "testing"

func TestISize_Logical(t *testing.T) {
	tests := []struct {
		size  ISize
		scale float64
		want  Size
	}{
		{ISize{1080, 1920}, 2.0, Size{540, 960}},
		{ISize{1080, 1920}, 3.0, Size{360, 640}},
		{ISize{100, 100}, 1.0, Size{100, 100}},
		{ISize{100, 100}, 0, Size{100, 100}},  // bad scale falls back to 1
		{ISize{100, 100}, -2, Size{100, 100}}, // bad scale falls back to 1
	}
	for _, tt := range tests {
		if got := tt.size.Logical(tt.scale); got != tt.want {
			t.Errorf("%+v.Logical(%v) = %+v, want %+v", tt.size, tt.scale, got, tt.want)
		}
	}
}

func TestLogicalPoint(t *testing.T) {
	if got := LogicalPoint(100, 200, 2); got != (Point{50, 100}) {
		t.Errorf("LogicalPoint = %+v", got)
	}
	if got := LogicalPoint(100, 200, 0); got != (Point{100, 200}) {
		t.Errorf("LogicalPoint with zero scale = %+v", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(ISize{}).IsEmpty() || !(ISize{Width: -1, Height: 10}).IsEmpty() {
		t.Error("empty ISize not detected")
	}
	if (ISize{Width: 1, Height: 1}).IsEmpty() {
		t.Error("non-empty ISize reported empty")
	}
	if !(Size{}).IsEmpty() || (Size{Width: 0.5, Height: 0.5}).IsEmpty() {
		t.Error("Size emptiness wrong")
	}
}

func TestRect_Extents(t *testing.T) {
	r := Rect{Min: Point{10, 20}, Max: Point{40, 80}}
	if r.Width() != 30 || r.Height() != 60 {
		t.Errorf("extents = %v x %v, want 30 x 60", r.Width(), r.Height())
	}
}
