package softrast

import (
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"
)

// PipelineOption configures a Pipeline during creation.
// Use functional options to customize fixed-function state.
//
// Example:
//
//	// Default state: depth test Less, depth writes on, back faces culled
//	p := softrast.NewPipeline[In, U, F](vp, vs, fs)
//
//	// Draw both faces and keep the depth buffer untouched
//	p := softrast.NewPipeline[In, U, F](vp, vs, fs,
//		softrast.WithPrimitiveState(gputypes.PrimitiveState{CullMode: gputypes.CullModeNone}),
//		softrast.WithDepthWrite(false),
//	)
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds the fixed-function state of a Pipeline.
type pipelineOptions struct {
	depthCompare gputypes.CompareFunction
	depthWrite   bool
	primitive    gputypes.PrimitiveState
	scissor      image.Rectangle
	logger       *slog.Logger
}

// defaultOptions returns the default pipeline state.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		depthCompare: gputypes.CompareFunctionLess,
		depthWrite:   true,
		primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		logger: nil, // Falls back to the package logger
	}
}

// WithDepthCompare sets the function comparing a fragment's depth against
// the stored depth. Fragments failing the comparison are discarded before
// the fragment shader runs.
//
// CompareFunctionAlways (or Undefined) disables the test.
func WithDepthCompare(cmp gputypes.CompareFunction) PipelineOption {
	return func(o *pipelineOptions) {
		o.depthCompare = cmp
	}
}

// WithDepthWrite enables or disables writing depth for fragments that
// pass the depth test.
func WithDepthWrite(enabled bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.depthWrite = enabled
	}
}

// WithPrimitiveState sets topology, front face and cull mode.
//
// Winding is judged in framebuffer space, where rows grow downward: a
// triangle is counter-clockwise when its corners turn counter-clockwise on
// screen. Supported topologies are TriangleList and TriangleStrip.
//
// Example:
//
//	// Render a mesh authored with clockwise front faces
//	opt := softrast.WithPrimitiveState(gputypes.PrimitiveState{
//		FrontFace: gputypes.FrontFaceCW,
//		CullMode:  gputypes.CullModeBack,
//	})
func WithPrimitiveState(state gputypes.PrimitiveState) PipelineOption {
	return func(o *pipelineOptions) {
		o.primitive = state
	}
}

// WithScissor restricts drawing to r. The rectangle is intersected with
// the framebuffer bounds on every draw. An empty rectangle removes the
// restriction.
func WithScissor(r image.Rectangle) PipelineOption {
	return func(o *pipelineOptions) {
		o.scissor = r.Canon()
	}
}

// WithLogger sets the logger used by this pipeline instead of the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(o *pipelineOptions) {
		o.logger = l
	}
}
