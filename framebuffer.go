package softrast

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

// Framebuffer is a fixed-size color and depth target.
//
// Colors are stored packed as 0xRRGGBB (see ToRaw) and depth as one float32
// per pixel. Both arrays always hold width*height elements in row-major
// order (index y*width + x).
type Framebuffer struct {
	width  int
	height int
	color  []uint32
	depth  []float32
}

// NewFramebuffer creates a framebuffer cleared to black with depth +Inf.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]uint32, width*height),
		depth:  make([]float32, width*height),
	}
	fb.ClearDepth(math32.Inf(1))
	return fb, nil
}

// Width returns the width of the framebuffer in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height of the framebuffer in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Size returns the framebuffer extent.
func (f *Framebuffer) Size() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(f.width),  //nolint:gosec // positive by construction
		Height:             uint32(f.height), //nolint:gosec // positive by construction
		DepthOrArrayLayers: 1,
	}
}

// Bounds returns the pixel rectangle covered by the framebuffer.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// Clear fills the color buffer with c and resets depth to +Inf.
func (f *Framebuffer) Clear(c Color) {
	f.ClearColor(c)
	f.ClearDepth(math32.Inf(1))
}

// ClearColor fills the color buffer with c.
func (f *Framebuffer) ClearColor(c Color) {
	raw := ToRaw(c)
	for i := range f.color {
		f.color[i] = raw
	}
}

// ClearDepth fills the depth buffer with d.
func (f *Framebuffer) ClearDepth(d float32) {
	for i := range f.depth {
		f.depth[i] = d
	}
}

// Contains reports whether (x, y) addresses a pixel of the framebuffer.
func (f *Framebuffer) Contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// SetColor writes a pixel. Coordinates outside the framebuffer are ignored.
func (f *Framebuffer) SetColor(x, y int, c Color) {
	if !f.Contains(x, y) {
		return
	}
	f.color[y*f.width+x] = ToRaw(c)
}

// SetColorUnchecked writes a pixel without a bounds check. Callers must
// guarantee (x, y) is inside the framebuffer.
func (f *Framebuffer) SetColorUnchecked(x, y int, c Color) {
	f.color[y*f.width+x] = ToRaw(c)
}

// ColorAt returns the color of a pixel, or Black outside the framebuffer.
func (f *Framebuffer) ColorAt(x, y int) Color {
	if !f.Contains(x, y) {
		return Black
	}
	return FromRaw(f.color[y*f.width+x])
}

// SetDepth writes a depth value. Coordinates outside the framebuffer are ignored.
func (f *Framebuffer) SetDepth(x, y int, d float32) {
	if !f.Contains(x, y) {
		return
	}
	f.depth[y*f.width+x] = d
}

// DepthAt returns the stored depth of a pixel, or +Inf outside the framebuffer.
func (f *Framebuffer) DepthAt(x, y int) float32 {
	if !f.Contains(x, y) {
		return math32.Inf(1)
	}
	return f.depth[y*f.width+x]
}

// Pixels returns the packed color buffer. The slice aliases the
// framebuffer and must be treated as read-only.
func (f *Framebuffer) Pixels() []uint32 {
	return f.color
}

// Depths returns the depth buffer. The slice aliases the framebuffer and
// must be treated as read-only.
func (f *Framebuffer) Depths() []float32 {
	return f.depth
}

// ToImage converts the color buffer to an opaque image.RGBA.
func (f *Framebuffer) ToImage() *image.RGBA {
	return packedToImage(f.color, f.width, f.height)
}

// Present hands the color buffer to a sink.
func (f *Framebuffer) Present(s Sink) error {
	return s.Present(f.color, f.width, f.height)
}

// depthPasses applies a depth comparison of an incoming value z against
// the stored value.
func depthPasses(cmp gputypes.CompareFunction, z, stored float32) bool {
	switch cmp {
	case gputypes.CompareFunctionNever:
		return false
	case gputypes.CompareFunctionLess:
		return z < stored
	case gputypes.CompareFunctionEqual:
		return z == stored
	case gputypes.CompareFunctionLessEqual:
		return z <= stored
	case gputypes.CompareFunctionGreater:
		return z > stored
	case gputypes.CompareFunctionNotEqual:
		return z != stored
	case gputypes.CompareFunctionGreaterEqual:
		return z >= stored
	default:
		// Undefined and Always disable the test.
		return true
	}
}
