// Package softrast provides a software triangle rasterization pipeline.
//
// # Overview
//
// softrast turns 3D vertex data into shaded pixels in a color and depth
// framebuffer without any GPU API. It follows the structure of a GPU
// render pipeline: a vertex shader, fixed-function clipping and
// rasterization, a depth test and a fragment shader.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/softrast"
//		"github.com/gogpu/softrast/linear"
//		"github.com/gogpu/softrast/shader"
//	)
//
//	fb, err := softrast.NewFramebuffer(640, 480)
//	if err != nil {
//		return err
//	}
//
//	cs := shader.ColorShader[shader.Vertex2D]{}
//	p := softrast.NewPipeline[shader.Vertex2D, shader.Uniforms, softrast.Color](
//		softrast.FullViewport(640, 480), cs, cs)
//
//	u := shader.Uniforms{Transform: linear.Identity()}
//	if _, err := p.Draw(fb, vertices, &u); err != nil {
//		return err
//	}
//
//	// Save to PNG
//	err = fb.Present(softrast.PNGSink{Path: "output.png"})
//
// # Pipeline Stages
//
// Each triangle passed to [Pipeline.Draw] goes through:
//   - vertex shading into clip space
//   - clipping against the six planes of the view volume
//   - fan triangulation of the clipped polygon
//   - perspective divide and viewport mapping
//   - culling and edge-function rasterization with the top-left rule
//   - depth test, fragment shading and framebuffer write
//
// Attributes are interpolated perspective-correctly. Depth is interpolated
// linearly in screen space.
//
// # Coordinate System
//
// Normalized device coordinates span [-1, 1] in x and y and [0, 1] in z.
// The viewport maps x = -1 to its left edge and y = -1 to its first row;
// framebuffer rows grow downward.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pipeline, Framebuffer, Viewport, Color, Sink
//   - linear: vectors and matrices
//   - texture: images and samplers
//   - shader: ready-made vertex and fragment shaders
//   - mesh: procedural test geometry
//   - Internal: clip (polygon clipping), raster (fixed-point rasterizer)
//
// # Concurrency
//
// A Pipeline and a Framebuffer are single-threaded. Use one of each per
// goroutine.
package softrast
