// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/softrast/linear"
)

// Fixed-point coordinates for triangle setup.
//
// Vertex and pixel-center positions are snapped to a 28.4 grid (1/16 pixel)
// before any coverage decision. Edge functions multiply two 28.4 values and
// are kept as exact int64 products with 8 fractional bits, so coverage never
// depends on floating-point rounding at tie conditions.

// Fixed is a 28.4 signed fixed-point number (4 fractional bits).
type Fixed int32

// Fixed-point constants.
const (
	// FixedShift is the number of fractional bits in Fixed.
	FixedShift = 4

	// FixedOne is 1.0 in Fixed representation.
	FixedOne Fixed = 1 << FixedShift

	// FixedHalf is 0.5 in Fixed representation.
	FixedHalf Fixed = FixedOne / 2

	// FixedMask is the mask for the fractional part of Fixed.
	FixedMask = FixedOne - 1
)

// FixedFromInt converts an integer to Fixed.
func FixedFromInt(n int) Fixed {
	return Fixed(n) << FixedShift
}

// FixedFromFloat32 converts a float32 to the nearest Fixed value.
// Ties round away from zero.
func FixedFromFloat32(f float32) Fixed {
	return Fixed(math32.Round(f * float32(FixedOne)))
}

// Float32 converts f to float32.
func (f Fixed) Float32() float32 {
	return float32(f) / float32(FixedOne)
}

// Floor returns the largest integer <= f.
func (f Fixed) Floor() int {
	return int(f >> FixedShift)
}

// Ceil returns the smallest integer >= f.
func (f Fixed) Ceil() int {
	return int((f + FixedMask) >> FixedShift)
}

// FixedPoint is a 2D point on the 28.4 grid.
type FixedPoint struct {
	X, Y Fixed
}

// FixedPointFrom snaps a floating-point position to the 28.4 grid.
func FixedPointFrom(p linear.Vec2) FixedPoint {
	return FixedPoint{X: FixedFromFloat32(p.X), Y: FixedFromFloat32(p.Y)}
}

// edgeFunction returns perp(p - a, b - a) in 24.8 units. It is positive for
// points on one side of the directed edge a→b, zero on it and negative on
// the other side. The sum over the three edges of a triangle equals the
// triangle's edgeFunction(c0, c1, c2) at every p.
func edgeFunction(a, b, p FixedPoint) int64 {
	px, py := int64(p.X-a.X), int64(p.Y-a.Y)
	ex, ey := int64(b.X-a.X), int64(b.Y-a.Y)
	return px*ey - py*ex
}

// topLeftBias returns the amount subtracted from an edge function so that
// points exactly on a non top-left edge are excluded.
//
// An edge is "left" when dy > 0 and "top" when dy == 0 and dx < 0.
func topLeftBias(a, b FixedPoint) int64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dy > 0 || (dy == 0 && dx < 0) {
		return 0
	}
	return 1
}
