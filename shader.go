package softrast

import "github.com/gogpu/softrast/linear"

// Fragment is a value that can be interpolated across a triangle.
//
// Interpolate returns the combination w.X*f + w.Y*b + w.Z*c of the receiver
// and the other two corners. The weights sum to 1 when interpolating
// attributes and to 0 when computing derivatives, so implementations must
// be linear in their components.
type Fragment[F any] interface {
	Interpolate(b, c F, w linear.Vec3) F
}

// VertexShader transforms an input vertex into a clip-space position and
// the attributes interpolated for the fragment shader.
type VertexShader[In, U any, F Fragment[F]] interface {
	ShadeVertex(in In, u *U) (linear.Vec4, F)
}

// FragmentShader computes the color of a covered pixel.
type FragmentShader[F Fragment[F], U any] interface {
	ShadeFragment(in FragmentInput[F], u *U) Color
}

// FragmentInput is what a fragment shader sees for one pixel.
type FragmentInput[F any] struct {
	// Value holds the perspective-correct attributes at the pixel center.
	Value F

	// DDX and DDY are the change of Value for a one pixel step along x and
	// y. Texture samplers use them to size their footprint.
	DDX, DDY F

	// X and Y are the framebuffer coordinates of the pixel.
	X, Y int

	// Depth is the depth value that passed the depth test.
	Depth float32
}

// VertexShaderFunc adapts a function to the VertexShader interface.
type VertexShaderFunc[In, U any, F Fragment[F]] func(in In, u *U) (linear.Vec4, F)

// ShadeVertex calls fn(in, u).
func (fn VertexShaderFunc[In, U, F]) ShadeVertex(in In, u *U) (linear.Vec4, F) {
	return fn(in, u)
}

// FragmentShaderFunc adapts a function to the FragmentShader interface.
type FragmentShaderFunc[F Fragment[F], U any] func(in FragmentInput[F], u *U) Color

// ShadeFragment calls fn(in, u).
func (fn FragmentShaderFunc[F, U]) ShadeFragment(in FragmentInput[F], u *U) Color {
	return fn(in, u)
}
