// Package shader provides ready-made vertex and fragment shaders for
// softrast pipelines.
//
// ColorShader draws per-vertex colors. TextureShader maps a texture with
// a sampler, using the pixel derivatives for anisotropic filtering.
package shader

import (
	"github.com/gogpu/softrast"
	"github.com/gogpu/softrast/linear"
	"github.com/gogpu/softrast/texture"
)

// Uniforms are the per-draw constants shared by the shaders in this
// package. The shaders accept a nil *Uniforms and then pass positions
// through unchanged.
type Uniforms struct {
	// Transform maps model coordinates to clip space.
	Transform linear.Mat4
}

// transform applies u.Transform, or nothing when u is nil.
func (u *Uniforms) transform(p linear.Vec4) linear.Vec4 {
	if u == nil {
		return p
	}
	return u.Transform.MulVec4(p)
}

// Vertex2D is a colored vertex in the z = 0 plane.
type Vertex2D struct {
	Pos   linear.Vec2
	Color softrast.Color
}

// Position returns the homogeneous model-space position.
func (v Vertex2D) Position() linear.Vec4 {
	return linear.V4(v.Pos.X, v.Pos.Y, 0, 1)
}

// VertexColor returns the vertex color.
func (v Vertex2D) VertexColor() softrast.Color {
	return v.Color
}

// Vertex3D is a colored vertex.
type Vertex3D struct {
	Pos   linear.Vec3
	Color softrast.Color
}

// Position returns the homogeneous model-space position.
func (v Vertex3D) Position() linear.Vec4 {
	return v.Pos.Vec4(1)
}

// VertexColor returns the vertex color.
func (v Vertex3D) VertexColor() softrast.Color {
	return v.Color
}

// ColoredVertex is a vertex carrying a position and a color.
type ColoredVertex interface {
	Position() linear.Vec4
	VertexColor() softrast.Color
}

// ColorShader transforms colored vertices and outputs their interpolated
// color. It is both the vertex and the fragment stage.
type ColorShader[V ColoredVertex] struct{}

// ShadeVertex implements softrast.VertexShader.
func (ColorShader[V]) ShadeVertex(in V, u *Uniforms) (linear.Vec4, softrast.Color) {
	return u.transform(in.Position()), in.VertexColor()
}

// ShadeFragment implements softrast.FragmentShader.
func (ColorShader[V]) ShadeFragment(in softrast.FragmentInput[softrast.Color], _ *Uniforms) softrast.Color {
	return in.Value
}

// TexturedVertex is a vertex with texture coordinates.
type TexturedVertex struct {
	Pos linear.Vec3
	UV  linear.Vec2
}

// TexCoord is an interpolated texture coordinate.
type TexCoord linear.Vec2

// Interpolate implements softrast.Fragment.
func (t TexCoord) Interpolate(b, c TexCoord, w linear.Vec3) TexCoord {
	return TexCoord{
		X: t.X*w.X + b.X*w.Y + c.X*w.Z,
		Y: t.Y*w.X + b.Y*w.Y + c.Y*w.Z,
	}
}

// TextureShader maps a texture onto textured vertices.
type TextureShader struct {
	// Texture is sampled per fragment. A nil Texture samples as white, so
	// only Tint shows.
	Texture texture.Source
	Sampler texture.Sampler

	// Tint is multiplied with every sample. The zero value is treated as
	// white.
	Tint softrast.Color
}

// ShadeVertex implements softrast.VertexShader.
func (s *TextureShader) ShadeVertex(in TexturedVertex, u *Uniforms) (linear.Vec4, TexCoord) {
	return u.transform(in.Pos.Vec4(1)), TexCoord(in.UV)
}

// ShadeFragment implements softrast.FragmentShader.
func (s *TextureShader) ShadeFragment(in softrast.FragmentInput[TexCoord], _ *Uniforms) softrast.Color {
	c := softrast.White
	if s.Texture != nil {
		c = s.Sampler.Sample(s.Texture, linear.Vec2(in.Value), linear.Vec2(in.DDX), linear.Vec2(in.DDY))
	}
	if s.Tint == (softrast.Color{}) {
		return c
	}
	return c.Modulate(s.Tint)
}

// DepthShader visualizes depth: near fragments are white and far ones
// black. Use it as the fragment stage of any pipeline.
type DepthShader[F softrast.Fragment[F], U any] struct{}

// ShadeFragment implements softrast.FragmentShader.
func (DepthShader[F, U]) ShadeFragment(in softrast.FragmentInput[F], _ *U) softrast.Color {
	d := 1 - in.Depth
	return softrast.RGB(d, d, d)
}
