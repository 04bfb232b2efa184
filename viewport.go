package softrast

import "github.com/gogpu/softrast/linear"

// Viewport maps normalized device coordinates to framebuffer pixels.
//
// NDC (-1, -1) maps to (X, Y) and (1, 1) to (X+Width, Y+Height).
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// NewViewport creates a viewport with the given offset and extent.
func NewViewport(x, y, width, height float32) Viewport {
	return Viewport{X: x, Y: y, Width: width, Height: height}
}

// FullViewport creates a viewport covering a whole width x height target.
func FullViewport(width, height int) Viewport {
	return NewViewport(0, 0, float32(width), float32(height))
}

// Set retargets the viewport, typically between frames.
func (v *Viewport) Set(x, y, width, height float32) {
	*v = NewViewport(x, y, width, height)
}

// NDCToFramebuffer maps an NDC position to framebuffer pixel space.
func (v Viewport) NDCToFramebuffer(p linear.Vec2) linear.Vec2 {
	return linear.Vec2{
		X: (p.X+1)*v.Width/2 + v.X,
		Y: (p.Y+1)*v.Height/2 + v.Y,
	}
}
