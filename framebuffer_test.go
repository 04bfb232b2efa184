package softrast

import (
	"errors"
	"image"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

func TestNewFramebuffer(t *testing.T) {
	fb, err := NewFramebuffer(4, 3)
	if err != nil {
		t.Fatalf("NewFramebuffer() error = %v", err)
	}
	if fb.Width() != 4 || fb.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", fb.Width(), fb.Height())
	}
	if len(fb.Pixels()) != 12 || len(fb.Depths()) != 12 {
		t.Errorf("buffers = %d, %d elements, want 12", len(fb.Pixels()), len(fb.Depths()))
	}
	for i, d := range fb.Depths() {
		if !math32.IsInf(d, 1) {
			t.Fatalf("depth[%d] = %v, want +Inf", i, d)
		}
	}
	if fb.Size() != (gputypes.Extent3D{Width: 4, Height: 3, DepthOrArrayLayers: 1}) {
		t.Errorf("Size() = %+v", fb.Size())
	}
	if fb.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", fb.Bounds())
	}
}

func TestNewFramebufferInvalid(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {0, 0}} {
		_, err := NewFramebuffer(size[0], size[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewFramebuffer(%d, %d) error = %v, want %v", size[0], size[1], err, ErrInvalidDimensions)
		}
	}
}

func TestFramebufferColor(t *testing.T) {
	fb, err := NewFramebuffer(3, 2)
	if err != nil {
		t.Fatal(err)
	}

	fb.SetColor(2, 1, Red)
	if got := fb.ColorAt(2, 1); got != Red {
		t.Errorf("ColorAt(2, 1) = %v, want red", got)
	}
	if got := fb.Pixels()[1*3+2]; got != 0xFF0000 {
		t.Errorf("pixel index y*width+x = %06x, want ff0000", got)
	}

	fb.SetColorUnchecked(0, 1, Blue)
	if got := fb.ColorAt(0, 1); got != Blue {
		t.Errorf("ColorAt(0, 1) = %v, want blue", got)
	}

	// Out of bounds writes are ignored and reads return black.
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		fb.SetColor(p[0], p[1], White)
		if got := fb.ColorAt(p[0], p[1]); got != Black {
			t.Errorf("ColorAt(%d, %d) = %v, want black", p[0], p[1], got)
		}
	}
	for i, raw := range fb.Pixels() {
		if raw == 0xFFFFFF {
			t.Errorf("pixel %d was written by an out of bounds SetColor", i)
		}
	}
}

func TestFramebufferDepth(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	fb.SetDepth(1, 0, 0.25)
	if got := fb.DepthAt(1, 0); got != 0.25 {
		t.Errorf("DepthAt(1, 0) = %v, want 0.25", got)
	}
	fb.SetDepth(5, 5, 0)
	if got := fb.DepthAt(5, 5); !math32.IsInf(got, 1) {
		t.Errorf("DepthAt(5, 5) = %v, want +Inf", got)
	}

	fb.ClearDepth(1)
	if got := fb.DepthAt(1, 0); got != 1 {
		t.Errorf("after ClearDepth(1), DepthAt(1, 0) = %v", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetDepth(0, 0, 0.5)
	fb.Clear(Cyan)

	for y := range 2 {
		for x := range 2 {
			if got := fb.ColorAt(x, y); got != Cyan {
				t.Errorf("ColorAt(%d, %d) = %v, want cyan", x, y, got)
			}
			if got := fb.DepthAt(x, y); !math32.IsInf(got, 1) {
				t.Errorf("DepthAt(%d, %d) = %v, want +Inf", x, y, got)
			}
		}
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb, err := NewFramebuffer(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetColor(1, 0, RGB(1, 0.5, 0))

	img := fb.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 0); got.R != 255 || got.G != 128 || got.B != 0 || got.A != 255 {
		t.Errorf("RGBAAt(1, 0) = %v", got)
	}
	if got := img.RGBAAt(0, 0); got.R != 0 || got.A != 255 {
		t.Errorf("RGBAAt(0, 0) = %v", got)
	}
}

func TestDepthPasses(t *testing.T) {
	tests := []struct {
		cmp                gputypes.CompareFunction
		less, equal, great bool
	}{
		{gputypes.CompareFunctionNever, false, false, false},
		{gputypes.CompareFunctionLess, true, false, false},
		{gputypes.CompareFunctionEqual, false, true, false},
		{gputypes.CompareFunctionLessEqual, true, true, false},
		{gputypes.CompareFunctionGreater, false, false, true},
		{gputypes.CompareFunctionNotEqual, true, false, true},
		{gputypes.CompareFunctionGreaterEqual, false, true, true},
		{gputypes.CompareFunctionAlways, true, true, true},
		{gputypes.CompareFunctionUndefined, true, true, true},
	}
	for _, tt := range tests {
		if got := depthPasses(tt.cmp, 0.25, 0.5); got != tt.less {
			t.Errorf("%v: depthPasses(0.25, 0.5) = %v, want %v", tt.cmp, got, tt.less)
		}
		if got := depthPasses(tt.cmp, 0.5, 0.5); got != tt.equal {
			t.Errorf("%v: depthPasses(0.5, 0.5) = %v, want %v", tt.cmp, got, tt.equal)
		}
		if got := depthPasses(tt.cmp, 0.75, 0.5); got != tt.great {
			t.Errorf("%v: depthPasses(0.75, 0.5) = %v, want %v", tt.cmp, got, tt.great)
		}
	}
}
