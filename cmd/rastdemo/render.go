package main

import (
	"fmt"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softrast"
	"github.com/gogpu/softrast/linear"
	"github.com/gogpu/softrast/mesh"
	"github.com/gogpu/softrast/shader"
	"github.com/gogpu/softrast/texture"
)

// facePalette colors untextured cube faces.
var facePalette = [6]softrast.Color{
	mesh.FaceTop:    softrast.Hex("#e94560"),
	mesh.FaceLeft:   softrast.Hex("#0f3460"),
	mesh.FaceBottom: softrast.Hex("#16a085"),
	mesh.FaceRight:  softrast.Hex("#f39c12"),
	mesh.FaceFront:  softrast.Hex("#8e44ad"),
	mesh.FaceBack:   softrast.Hex("#2980b9"),
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// viewProjection maps world space to clip space. Rows grow downward in
// the framebuffer, so world +y is flipped to keep the image upright.
func (s *Scene) viewProjection() linear.Mat4 {
	aspect := float32(s.Width) / float32(s.Height)
	proj := linear.Perspective(radians(s.Camera.FOV), aspect, s.Camera.Near, s.Camera.Far)
	view := linear.Translate(linear.V3(0, 0, -s.Camera.Distance))
	return linear.Scale(linear.V3(1, -1, 1)).Mul(proj).Mul(view)
}

// model returns the object's model matrix.
func (o *Object) model() linear.Mat4 {
	return linear.Translate(linear.V3(o.Position[0], o.Position[1], o.Position[2])).
		Mul(linear.RotateY(radians(o.Rotation[1]))).
		Mul(linear.RotateX(radians(o.Rotation[0]))).
		Mul(linear.RotateZ(radians(o.Rotation[2]))).
		Mul(linear.Scale(linear.V3(o.Scale, o.Scale, o.Scale)))
}

// flat places 2D mesh coordinates (y down) in the z = 0 plane (y up).
func flat(q linear.Vec2) linear.Vec3 {
	return linear.V3(q.X, -q.Y, 0)
}

// Render draws the scene into a new framebuffer.
func Render(s *Scene) (*softrast.Framebuffer, softrast.DrawStats, error) {
	var total softrast.DrawStats

	fb, err := softrast.NewFramebuffer(s.Width, s.Height)
	if err != nil {
		return nil, total, err
	}
	fb.Clear(softrast.Hex(s.Background))

	vp := softrast.FullViewport(s.Width, s.Height)
	viewProj := s.viewProjection()

	for i := range s.Objects {
		o := &s.Objects[i]
		u := shader.Uniforms{Transform: viewProj.Mul(o.model())}
		cull, err := parseCull(o.Cull)
		if err != nil {
			return nil, total, fmt.Errorf("object %d: %w", i, err)
		}
		opts := []softrast.PipelineOption{
			softrast.WithPrimitiveState(gputypes.PrimitiveState{CullMode: cull}),
		}

		var stats softrast.DrawStats
		if o.Texture != "" {
			stats, err = s.drawTextured(fb, vp, o, &u, opts)
		} else {
			stats, err = drawColored(fb, vp, o, &u, opts)
		}
		if err != nil {
			return nil, total, fmt.Errorf("object %d: %w", i, err)
		}
		total.Add(stats)
	}
	return fb, total, nil
}

func (s *Scene) loadTexture(o *Object) (texture.Source, error) {
	if o.Texture == "checker" {
		tint := softrast.White
		if o.Color != "" {
			tint = softrast.Hex(o.Color)
		}
		return texture.Checkerboard(64, 64, 8, tint, softrast.Hex("#222222"))
	}
	path := o.Texture
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	return texture.Load(path)
}

func (s *Scene) drawTextured(fb *softrast.Framebuffer, vp softrast.Viewport, o *Object, u *shader.Uniforms, opts []softrast.PipelineOption) (softrast.DrawStats, error) {
	tex, err := s.loadTexture(o)
	if err != nil {
		return softrast.DrawStats{}, err
	}
	smp, err := o.Sampler.sampler()
	if err != nil {
		return softrast.DrawStats{}, err
	}
	ts := &shader.TextureShader{Texture: tex, Sampler: smp}

	rep := o.Sampler.Repeat
	uv := func(q linear.Vec2) linear.Vec2 {
		return q.Add(linear.V2(0.5, 0.5)).Mul(rep)
	}

	var verts []shader.TexturedVertex
	switch o.Mesh {
	case "triangle":
		verts = mesh.UnitTriangle(func(q linear.Vec2) shader.TexturedVertex {
			return shader.TexturedVertex{Pos: flat(q), UV: uv(q)}
		})
	case "quad":
		verts = mesh.UnitQuad(func(q linear.Vec2) shader.TexturedVertex {
			return shader.TexturedVertex{Pos: flat(q), UV: uv(q)}
		})
	default:
		verts = mesh.UnitCube(func(_ mesh.Face, p linear.Vec3, q linear.Vec2) shader.TexturedVertex {
			return shader.TexturedVertex{Pos: p, UV: uv(q)}
		})
	}

	p := softrast.NewPipeline[shader.TexturedVertex, shader.Uniforms, shader.TexCoord](vp, ts, ts, opts...)
	return p.Draw(fb, verts, u)
}

func drawColored(fb *softrast.Framebuffer, vp softrast.Viewport, o *Object, u *shader.Uniforms, opts []softrast.PipelineOption) (softrast.DrawStats, error) {
	var verts []shader.Vertex3D
	switch o.Mesh {
	case "triangle", "quad":
		corners := []softrast.Color{softrast.Red, softrast.Green, softrast.Blue, softrast.Yellow}
		n := 0
		gen := func(q linear.Vec2) shader.Vertex3D {
			c := corners[n%len(corners)]
			if o.Color != "" {
				c = softrast.Hex(o.Color)
			}
			n++
			return shader.Vertex3D{Pos: flat(q), Color: c}
		}
		if o.Mesh == "triangle" {
			verts = mesh.UnitTriangle(gen)
		} else {
			verts = mesh.UnitQuad(gen)
		}
	default:
		verts = mesh.UnitCube(func(f mesh.Face, p linear.Vec3, _ linear.Vec2) shader.Vertex3D {
			c := facePalette[f]
			if o.Color != "" {
				c = softrast.Hex(o.Color)
			}
			return shader.Vertex3D{Pos: p, Color: c}
		})
	}

	cs := shader.ColorShader[shader.Vertex3D]{}
	p := softrast.NewPipeline[shader.Vertex3D, shader.Uniforms, softrast.Color](vp, cs, cs, opts...)
	return p.Draw(fb, verts, u)
}
