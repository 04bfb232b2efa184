package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/softrast"
	"github.com/gogpu/softrast/linear"
	"github.com/gogpu/softrast/texture"
)

var identity = Uniforms{Transform: linear.Identity()}

func newFramebuffer(t *testing.T, w, h int) *softrast.Framebuffer {
	t.Helper()
	fb, err := softrast.NewFramebuffer(w, h)
	require.NoError(t, err)
	return fb
}

// screenQuad covers NDC [-1, 1]² at depth z with uv (0,0) in the top-left
// framebuffer corner.
func screenQuad(z float32) []TexturedVertex {
	a := TexturedVertex{Pos: linear.V3(-1, -1, z), UV: linear.V2(0, 0)}
	b := TexturedVertex{Pos: linear.V3(-1, 1, z), UV: linear.V2(0, 1)}
	c := TexturedVertex{Pos: linear.V3(1, -1, z), UV: linear.V2(1, 0)}
	d := TexturedVertex{Pos: linear.V3(1, 1, z), UV: linear.V2(1, 1)}
	return []TexturedVertex{a, b, c, b, d, c}
}

func TestTexCoordInterpolate(t *testing.T) {
	a, b, c := TexCoord{X: 0, Y: 0}, TexCoord{X: 1, Y: 0}, TexCoord{X: 0, Y: 2}

	got := a.Interpolate(b, c, linear.V3(0.5, 0.25, 0.25))
	assert.InDelta(t, 0.25, got.X, 1e-6)
	assert.InDelta(t, 0.5, got.Y, 1e-6)

	assert.Equal(t, c, a.Interpolate(b, c, linear.V3(0, 0, 1)))
}

func TestColorShaderVertex(t *testing.T) {
	u := Uniforms{Transform: linear.Translate(linear.V3(1, 2, 3))}

	pos, col := ColorShader[Vertex2D]{}.ShadeVertex(Vertex2D{Pos: linear.V2(1, 1), Color: softrast.Red}, &u)
	assert.Equal(t, linear.V4(2, 3, 3, 1), pos)
	assert.Equal(t, softrast.Red, col)

	pos, col = ColorShader[Vertex3D]{}.ShadeVertex(Vertex3D{Pos: linear.V3(0, 0, -1), Color: softrast.Blue}, &u)
	assert.Equal(t, linear.V4(1, 2, 2, 1), pos)
	assert.Equal(t, softrast.Blue, col)
}

func TestShadersAcceptNilUniforms(t *testing.T) {
	pos, _ := ColorShader[Vertex3D]{}.ShadeVertex(Vertex3D{Pos: linear.V3(0.5, -0.5, 0.25)}, nil)
	assert.Equal(t, linear.V4(0.5, -0.5, 0.25, 1), pos)

	ts := &TextureShader{}
	pos, uv := ts.ShadeVertex(TexturedVertex{Pos: linear.V3(1, 2, 3), UV: linear.V2(0.5, 1)}, nil)
	assert.Equal(t, linear.V4(1, 2, 3, 1), pos)
	assert.Equal(t, TexCoord{X: 0.5, Y: 1}, uv)

	fb := newFramebuffer(t, 4, 4)
	cs := ColorShader[Vertex3D]{}
	p := softrast.NewPipeline[Vertex3D, Uniforms, softrast.Color](softrast.FullViewport(4, 4), cs, cs)
	verts := []Vertex3D{
		{Pos: linear.V3(-1, -1, 0), Color: softrast.Red},
		{Pos: linear.V3(-1, 1, 0), Color: softrast.Red},
		{Pos: linear.V3(1, -1, 0), Color: softrast.Red},
	}
	stats, err := p.Draw(fb, verts, nil)
	require.NoError(t, err)
	assert.Positive(t, stats.Written)
}

func TestTextureShaderNilTexture(t *testing.T) {
	in := softrast.FragmentInput[TexCoord]{Value: TexCoord{X: 0.5, Y: 0.5}}

	assert.Equal(t, softrast.White, (&TextureShader{}).ShadeFragment(in, nil))
	assert.Equal(t, softrast.Cyan, (&TextureShader{Tint: softrast.Cyan}).ShadeFragment(in, nil))
}

func TestColorShaderDraw(t *testing.T) {
	fb := newFramebuffer(t, 8, 8)
	cs := ColorShader[Vertex3D]{}
	p := softrast.NewPipeline[Vertex3D, Uniforms, softrast.Color](softrast.FullViewport(8, 8), cs, cs)

	verts := []Vertex3D{
		{Pos: linear.V3(-1, -1, 0), Color: softrast.Green},
		{Pos: linear.V3(-1, 1, 0), Color: softrast.Green},
		{Pos: linear.V3(1, -1, 0), Color: softrast.Green},
	}
	stats, err := p.Draw(fb, verts, &identity)
	require.NoError(t, err)

	// The shared diagonal's pixel centers belong to the other half.
	assert.Equal(t, 28, stats.Written)
	assert.Equal(t, softrast.Green, fb.ColorAt(0, 0))
	assert.Equal(t, softrast.Black, fb.ColorAt(7, 7))
}

func TestTextureShaderCopiesTexture(t *testing.T) {
	tex, err := texture.Checkerboard(4, 4, 1, softrast.Red, softrast.Blue)
	require.NoError(t, err)

	fb := newFramebuffer(t, 4, 4)
	ts := &TextureShader{Texture: tex}
	p := softrast.NewPipeline[TexturedVertex, Uniforms, TexCoord](softrast.FullViewport(4, 4), ts, ts)

	stats, err := p.Draw(fb, screenQuad(0), &identity)
	require.NoError(t, err)
	assert.Equal(t, 16, stats.Written)
	assert.Equal(t, tex.Pixels(), fb.Pixels())
}

func TestTextureShaderTint(t *testing.T) {
	tex, err := texture.FromColors([]softrast.Color{softrast.White}, 1, 1)
	require.NoError(t, err)

	in := softrast.FragmentInput[TexCoord]{Value: TexCoord{X: 0.5, Y: 0.5}}

	plain := &TextureShader{Texture: tex}
	assert.Equal(t, softrast.White, plain.ShadeFragment(in, &identity))

	tinted := &TextureShader{Texture: tex, Tint: softrast.Yellow}
	assert.Equal(t, softrast.Yellow, tinted.ShadeFragment(in, &identity))
}

func TestDepthShader(t *testing.T) {
	fb := newFramebuffer(t, 4, 4)
	ts := &TextureShader{}
	p := softrast.NewPipeline[TexturedVertex, Uniforms, TexCoord](
		softrast.FullViewport(4, 4), ts, DepthShader[TexCoord, Uniforms]{})

	_, err := p.Draw(fb, screenQuad(0.25), &identity)
	require.NoError(t, err)

	want := softrast.ToRaw(softrast.RGB(0.75, 0.75, 0.75))
	for i, px := range fb.Pixels() {
		assert.Equal(t, want, px, "pixel %d", i)
	}
}
