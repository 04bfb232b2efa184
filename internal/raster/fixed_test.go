// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/gogpu/softrast/linear"
)

// TestFixedFromFloat32 tests float32 to Fixed conversion.
func TestFixedFromFloat32(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  Fixed
	}{
		{"zero", 0, 0},
		{"one", 1, 16},
		{"half", 0.5, 8},
		{"sixteenth", 0.0625, 1},
		{"negative", -1.5, -24},
		{"round down", 1.02, 16},
		{"tie rounds away from zero", 1.03125, 17},
		{"negative tie", -0.03125, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixedFromFloat32(tt.input)
			if got != tt.want {
				t.Errorf("FixedFromFloat32(%f) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixedFloorCeil(t *testing.T) {
	tests := []struct {
		input     Fixed
		floor     int
		ceil      int
		asFloat32 float32
	}{
		{0, 0, 0, 0},
		{16, 1, 1, 1},
		{17, 1, 2, 1.0625},
		{-1, -1, 0, -0.0625},
		{-17, -2, -1, -1.0625},
		{40, 2, 3, 2.5},
	}

	for _, tt := range tests {
		if got := tt.input.Floor(); got != tt.floor {
			t.Errorf("Fixed(%d).Floor() = %d, want %d", tt.input, got, tt.floor)
		}
		if got := tt.input.Ceil(); got != tt.ceil {
			t.Errorf("Fixed(%d).Ceil() = %d, want %d", tt.input, got, tt.ceil)
		}
		if got := tt.input.Float32(); got != tt.asFloat32 {
			t.Errorf("Fixed(%d).Float32() = %f, want %f", tt.input, got, tt.asFloat32)
		}
	}
}

func TestFixedFromInt(t *testing.T) {
	for _, n := range []int{-3, 0, 1, 640} {
		if got := FixedFromInt(n); got.Floor() != n || got.Ceil() != n {
			t.Errorf("FixedFromInt(%d) = %d, does not round-trip", n, got)
		}
	}
}

func TestEdgeFunctionSumsToArea(t *testing.T) {
	c0 := FixedPointFrom(linear.V2(1.25, 3.5))
	c1 := FixedPointFrom(linear.V2(7.75, 9.0625))
	c2 := FixedPointFrom(linear.V2(8.5, 0.125))
	area := edgeFunction(c0, c1, c2)

	for _, p := range []linear.Vec2{{X: 0, Y: 0}, {X: 4.5, Y: 4.5}, {X: -3, Y: 100}} {
		fp := FixedPointFrom(p)
		sum := edgeFunction(c1, c2, fp) + edgeFunction(c2, c0, fp) + edgeFunction(c0, c1, fp)
		if sum != area {
			t.Errorf("edge sum at %v = %d, want area %d", p, sum, area)
		}
	}
}

func TestTopLeftBias(t *testing.T) {
	tests := []struct {
		name string
		a, b linear.Vec2
		want int64
	}{
		{"left edge", linear.V2(0, 0), linear.V2(1, 2), 0},
		{"top edge", linear.V2(2, 0), linear.V2(0, 0), 0},
		{"bottom edge", linear.V2(0, 2), linear.V2(2, 2), 1},
		{"right edge", linear.V2(1, 2), linear.V2(0, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topLeftBias(FixedPointFrom(tt.a), FixedPointFrom(tt.b))
			if got != tt.want {
				t.Errorf("topLeftBias(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
