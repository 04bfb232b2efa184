package softrast

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/softrast/internal/clip"
	"github.com/gogpu/softrast/internal/raster"
	"github.com/gogpu/softrast/linear"
)

// DrawStats counts what happened to the primitives of one Draw call.
type DrawStats struct {
	// Triangles is the number of input triangles.
	Triangles int

	// ClippedAway counts input triangles entirely outside the view volume.
	ClippedAway int

	// Culled counts screen triangles rejected as degenerate or by the
	// cull mode. A clipped triangle may yield several screen triangles.
	Culled int

	// Rasterized counts screen triangles handed to the rasterizer.
	Rasterized int

	// Fragments counts covered pixels, DepthRejected those failing the
	// depth test and Written those that reached the framebuffer.
	Fragments     int
	DepthRejected int
	Written       int
}

// Add accumulates o into s.
func (s *DrawStats) Add(o DrawStats) {
	s.Triangles += o.Triangles
	s.ClippedAway += o.ClippedAway
	s.Culled += o.Culled
	s.Rasterized += o.Rasterized
	s.Fragments += o.Fragments
	s.DepthRejected += o.DepthRejected
	s.Written += o.Written
}

// LogValue implements slog.LogValuer.
func (s DrawStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("triangles", s.Triangles),
		slog.Int("clipped", s.ClippedAway),
		slog.Int("culled", s.Culled),
		slog.Int("rasterized", s.Rasterized),
		slog.Int("fragments", s.Fragments),
		slog.Int("depthRejected", s.DepthRejected),
		slog.Int("written", s.Written),
	)
}

// Homogenize performs the perspective divide of a clip-space position.
// It returns the normalized device coordinates and 1/w.
func Homogenize(pos linear.Vec4) (ndc linear.Vec3, invW float32) {
	invW = 1 / pos.W
	return pos.XYZ().Mul(invW), invW
}

// screenVertex is a vertex after the perspective divide and viewport map.
type screenVertex[F any] struct {
	pos   linear.Vec2
	depth float32
	invW  float32
	value F
}

// Pipeline draws triangles through a vertex shader, the fixed-function
// stages and a fragment shader.
//
// In is the input vertex type, U the uniform type and F the attributes
// produced by the vertex shader and interpolated for the fragment shader.
//
// A Pipeline keeps scratch state between calls and must not be used by
// several goroutines at once.
type Pipeline[In, U any, F Fragment[F]] struct {
	viewport Viewport
	vs       VertexShader[In, U, F]
	fs       FragmentShader[F, U]
	opts     pipelineOptions

	clipper clip.Clipper
	raster  raster.Rasterizer
	screen  []screenVertex[F]
}

// NewPipeline creates a pipeline drawing into viewport.
func NewPipeline[In, U any, F Fragment[F]](
	viewport Viewport,
	vs VertexShader[In, U, F],
	fs FragmentShader[F, U],
	opts ...PipelineOption,
) *Pipeline[In, U, F] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline[In, U, F]{
		viewport: viewport,
		vs:       vs,
		fs:       fs,
		opts:     o,
		screen:   make([]screenVertex[F], 0, clip.MaxVertices),
	}
}

// Viewport returns the current viewport.
func (p *Pipeline[In, U, F]) Viewport() Viewport {
	return p.viewport
}

// SetViewport retargets the pipeline, typically after a resize.
func (p *Pipeline[In, U, F]) SetViewport(v Viewport) {
	p.viewport = v
}

func (p *Pipeline[In, U, F]) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

// Draw renders vertices into fb.
//
// With the TriangleList topology every three vertices form a triangle. If
// len(vertices) is not a multiple of 3, the trailing vertices are ignored
// and ErrVertexCount is returned together with the stats of the triangles
// that were drawn. With TriangleStrip every vertex after the second forms
// a triangle with its two predecessors.
//
// Triangles that are degenerate, culled or outside the view volume are
// skipped silently and only show up in the returned stats.
//
// u is handed unchanged to both shaders. Draw never dereferences it, so
// whether nil is allowed is up to the shaders.
func (p *Pipeline[In, U, F]) Draw(fb *Framebuffer, vertices []In, u *U) (DrawStats, error) {
	var (
		stats DrawStats
		err   error
	)

	var next func(i int) (a, b, c In)
	switch p.opts.primitive.Topology {
	case gputypes.PrimitiveTopologyTriangleList:
		stats.Triangles = len(vertices) / 3
		if rem := len(vertices) % 3; rem != 0 {
			err = fmt.Errorf("%w: %d vertices", ErrVertexCount, len(vertices))
			p.logger().Warn("softrast: ignoring trailing vertices",
				"vertices", len(vertices), "ignored", rem)
		}
		next = func(i int) (a, b, c In) {
			return vertices[3*i], vertices[3*i+1], vertices[3*i+2]
		}
	case gputypes.PrimitiveTopologyTriangleStrip:
		stats.Triangles = max(len(vertices)-2, 0)
		next = func(i int) (a, b, c In) {
			if i%2 == 1 {
				return vertices[i+1], vertices[i], vertices[i+2]
			}
			return vertices[i], vertices[i+1], vertices[i+2]
		}
	default:
		return stats, fmt.Errorf("%w: %v", ErrTopology, p.opts.primitive.Topology)
	}

	scissor := fb.Bounds()
	if !p.opts.scissor.Empty() {
		scissor = scissor.Intersect(p.opts.scissor)
	}
	if !scissor.Empty() {
		p.raster.Scissor = scissor
		for i := range stats.Triangles {
			a, b, c := next(i)
			p.drawTriangle(fb, a, b, c, u, &stats)
		}
	}

	p.logger().Debug("softrast: draw", "stats", stats)
	return stats, err
}

// drawTriangle runs one input triangle through the whole pipeline.
func (p *Pipeline[In, U, F]) drawTriangle(fb *Framebuffer, a, b, c In, u *U, stats *DrawStats) {
	var (
		pos  [3]linear.Vec4
		vary [3]F
	)
	pos[0], vary[0] = p.vs.ShadeVertex(a, u)
	pos[1], vary[1] = p.vs.ShadeVertex(b, u)
	pos[2], vary[2] = p.vs.ShadeVertex(c, u)

	poly := p.clipper.Triangle(pos)
	if poly == nil {
		stats.ClippedAway++
		return
	}

	screen := p.screen[:0]
	for _, v := range poly {
		// Only the origin of clip space has w == 0 inside the volume.
		if v.Pos.W <= 0 {
			stats.Culled++
			return
		}
		ndc, invW := Homogenize(v.Pos)
		screen = append(screen, screenVertex[F]{
			pos:   p.viewport.NDCToFramebuffer(ndc.XY()),
			depth: ndc.Z,
			invW:  invW,
			value: vary[0].Interpolate(vary[1], vary[2], v.Weights),
		})
	}
	p.screen = screen

	tris := clip.Fan(screen)
	for i := 0; i < len(tris); i += 3 {
		p.rasterize(fb, [3]screenVertex[F]{tris[i], tris[i+1], tris[i+2]}, u, stats)
	}
}

// frontFacing reports whether a triangle with the given raster orientation
// is a front face.
func (p *Pipeline[In, U, F]) frontFacing(orientation int) bool {
	ccw := orientation > 0
	if p.opts.primitive.FrontFace == gputypes.FrontFaceCW {
		return !ccw
	}
	return ccw
}

// rasterize culls, rasterizes and shades a screen-space triangle.
func (p *Pipeline[In, U, F]) rasterize(fb *Framebuffer, v [3]screenVertex[F], u *U, stats *DrawStats) {
	tri := [3]linear.Vec2{v[0].pos, v[1].pos, v[2].pos}
	o := raster.Orientation(tri)
	if o == 0 {
		stats.Culled++
		return
	}
	front := p.frontFacing(o)
	switch p.opts.primitive.CullMode {
	case gputypes.CullModeBack:
		if !front {
			stats.Culled++
			return
		}
	case gputypes.CullModeFront:
		if front {
			stats.Culled++
			return
		}
	}

	// The rasterizer only accepts positive area.
	if o < 0 {
		v[1], v[2] = v[2], v[1]
		tri[1], tri[2] = tri[2], tri[1]
	}
	stats.Rasterized++

	depths := linear.V3(v[0].depth, v[1].depth, v[2].depth)
	invW := linear.V3(v[0].invW, v[1].invW, v[2].invW)
	cmp := p.opts.depthCompare
	write := p.opts.depthWrite

	p.raster.Triangle(tri, func(f raster.Fragment) {
		stats.Fragments++

		i := f.Y*fb.width + f.X
		z := f.T.Dot(depths)
		if !depthPasses(cmp, z, fb.depth[i]) {
			stats.DepthRejected++
			return
		}

		w := perspectiveWeights(f.T, invW)
		in := FragmentInput[F]{
			Value: v[0].value.Interpolate(v[1].value, v[2].value, w),
			DDX:   v[0].value.Interpolate(v[1].value, v[2].value, perspectiveWeights(f.T.Add(f.DTdx), invW).Sub(w)),
			DDY:   v[0].value.Interpolate(v[1].value, v[2].value, perspectiveWeights(f.T.Add(f.DTdy), invW).Sub(w)),
			X:     f.X,
			Y:     f.Y,
			Depth: z,
		}
		fb.color[i] = ToRaw(p.fs.ShadeFragment(in, u))
		if write {
			fb.depth[i] = z
		}
		stats.Written++
	})
}

// perspectiveWeights converts screen-space barycentric weights into weights
// for attributes that vary linearly in clip space.
func perspectiveWeights(t, invW linear.Vec3) linear.Vec3 {
	s := t.MulVec(invW)
	sum := s.Sum()
	if sum == 0 {
		return t
	}
	return s.Mul(1 / sum)
}
