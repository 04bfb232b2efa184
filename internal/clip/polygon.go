// Package clip clips clip-space triangles against the canonical view volume
// and splits the resulting convex polygons back into triangles.
package clip

import "github.com/gogpu/softrast/linear"

// MaxVertices is the largest polygon a triangle can clip to: each of the
// six planes adds at most one vertex.
const MaxVertices = 3 + len(planes)

// Vertex is a vertex of a clipped polygon.
type Vertex struct {
	// Pos is the homogeneous clip-space position.
	Pos linear.Vec4

	// Weights are the barycentric coordinates of Pos relative to the
	// corners of the input triangle. They always sum to 1.
	Weights linear.Vec3
}

// corners are the one-hot weights of the input triangle corners.
var corners = [3]linear.Vec3{
	{X: 1},
	{Y: 1},
	{Z: 1},
}

// Lerp interpolates position and weights between v and w by t.
func (v Vertex) Lerp(w Vertex, t float32) Vertex {
	return Vertex{
		Pos:     v.Pos.Lerp(w.Pos, t),
		Weights: v.Weights.Lerp(w.Weights, t),
	}
}

// Fan splits a convex polygon into triangles sharing poly[0].
//
// The result holds 3*(len(poly)-2) elements, (poly[0], poly[i], poly[i+1])
// for each i, and preserves the polygon's winding. Polygons with fewer
// than 3 vertices yield nil. The split is only correct for convex
// polygons, which is what Triangle produces.
func Fan[T any](poly []T) []T {
	if len(poly) < 3 {
		return nil
	}
	out := make([]T, 0, 3*(len(poly)-2))
	for i := 1; i < len(poly)-1; i++ {
		out = append(out, poly[0], poly[i], poly[i+1])
	}
	return out
}
