// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements edge-function triangle rasterization.
//
// Coverage is decided on a 28.4 fixed-point grid with the top-left fill
// rule, so two triangles sharing an edge never both cover a pixel on it and
// never leave a gap between them.
package raster

import (
	"image"

	"github.com/gogpu/softrast/linear"
)

// Fragment is a covered pixel produced by the rasterizer.
type Fragment struct {
	// X and Y are the pixel coordinates.
	X, Y int

	// T holds the barycentric weights of the pixel center relative to the
	// triangle corners. Each weight is >= 0 and they sum to 1.
	T linear.Vec3

	// DTdx and DTdy are the screen-space derivatives of T. They are
	// constant across the triangle.
	DTdx, DTdy linear.Vec3
}

// Rasterizer converts screen-space triangles into fragments.
// The zero value is ready to use and has no scissor.
type Rasterizer struct {
	// Scissor limits the pixels visited. An empty rectangle disables it.
	Scissor image.Rectangle
}

// Triangle rasterizes tri with the default rasterizer.
func Triangle(tri [3]linear.Vec2, fn func(Fragment)) {
	var r Rasterizer
	r.Triangle(tri, fn)
}

// Orientation returns +1 when tri has a positive signed area on the
// fixed-point grid (the winding Triangle rasterizes), -1 when it is
// negative and 0 when it is degenerate.
func Orientation(tri [3]linear.Vec2) int {
	c0, c1, c2 := FixedPointFrom(tri[0]), FixedPointFrom(tri[1]), FixedPointFrom(tri[2])
	switch area := edgeFunction(c0, c1, c2); {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}

// Triangle calls fn once per covered pixel of tri, in row-major order
// (y ascending, then x ascending).
//
// Triangles whose signed area is <= 0 are back-facing or degenerate and
// produce no fragments. A pixel is covered when its center lies inside all
// three edges, with ties resolved by the top-left rule.
func (r *Rasterizer) Triangle(tri [3]linear.Vec2, fn func(Fragment)) {
	c0, c1, c2 := FixedPointFrom(tri[0]), FixedPointFrom(tri[1]), FixedPointFrom(tri[2])

	area := edgeFunction(c0, c1, c2)
	if area <= 0 {
		return
	}

	minX := min(c0.X, c1.X, c2.X).Floor()
	minY := min(c0.Y, c1.Y, c2.Y).Floor()
	maxX := max(c0.X, c1.X, c2.X).Ceil()
	maxY := max(c0.Y, c1.Y, c2.Y).Ceil()
	if !r.Scissor.Empty() {
		minX = max(minX, r.Scissor.Min.X)
		minY = max(minY, r.Scissor.Min.Y)
		maxX = min(maxX, r.Scissor.Max.X)
		maxY = min(maxY, r.Scissor.Max.Y)
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Edge k is the edge opposite corner k.
	bias0 := topLeftBias(c1, c2)
	bias1 := topLeftBias(c2, c0)
	bias2 := topLeftBias(c0, c1)

	// Per-pixel increments of each edge function.
	dx0, dy0 := int64(c2.Y-c1.Y)<<FixedShift, int64(c1.X-c2.X)<<FixedShift
	dx1, dy1 := int64(c0.Y-c2.Y)<<FixedShift, int64(c2.X-c0.X)<<FixedShift
	dx2, dy2 := int64(c1.Y-c0.Y)<<FixedShift, int64(c0.X-c1.X)<<FixedShift

	inv := 1 / float32(area)
	dtdx := linear.Vec3{X: float32(dx0) * inv, Y: float32(dx1) * inv, Z: float32(dx2) * inv}
	dtdy := linear.Vec3{X: float32(dy0) * inv, Y: float32(dy1) * inv, Z: float32(dy2) * inv}

	start := FixedPoint{X: FixedFromInt(minX) + FixedHalf, Y: FixedFromInt(minY) + FixedHalf}
	row0 := edgeFunction(c1, c2, start)
	row1 := edgeFunction(c2, c0, start)
	row2 := edgeFunction(c0, c1, start)

	for y := minY; y < maxY; y++ {
		e0, e1, e2 := row0, row1, row2
		for x := minX; x < maxX; x++ {
			if e0-bias0 >= 0 && e1-bias1 >= 0 && e2-bias2 >= 0 {
				fn(Fragment{
					X:    x,
					Y:    y,
					T:    linear.Vec3{X: float32(e0) * inv, Y: float32(e1) * inv, Z: float32(e2) * inv},
					DTdx: dtdx,
					DTdy: dtdy,
				})
			}
			e0 += dx0
			e1 += dx1
			e2 += dx2
		}
		row0 += dy0
		row1 += dy1
		row2 += dy2
	}
}
