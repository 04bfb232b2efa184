package clip

import "github.com/gogpu/softrast/linear"

// planes are the six canonical clip planes. A point p is inside a plane
// when dot(p, plane) >= 0, giving -w <= x <= w, -w <= y <= w and
// 0 <= z <= w.
var planes = [6]linear.Vec4{
	{X: 1, W: 1},
	{X: -1, W: 1},
	{Y: 1, W: 1},
	{Y: -1, W: 1},
	{Z: 1},
	{Z: -1, W: 1},
}

// Clipper clips triangles with the Sutherland-Hodgman algorithm.
//
// A Clipper reuses its scratch buffers between calls; the slice returned
// by Triangle is only valid until the next call. The zero value is ready
// to use. A Clipper must not be used concurrently.
type Clipper struct {
	a, b [MaxVertices]Vertex
}

// Triangle clips tri with a fresh Clipper and returns a newly allocated
// polygon.
func Triangle(tri [3]linear.Vec4) []Vertex {
	var c Clipper
	poly := c.Triangle(tri)
	if poly == nil {
		return nil
	}
	return append([]Vertex(nil), poly...)
}

// Triangle clips tri against the six planes and returns the clipped convex
// polygon with its winding preserved.
//
// The result has between 3 and MaxVertices vertices, or is nil when the
// triangle lies entirely outside any one plane. A triangle entirely inside
// the volume is returned unchanged with one-hot weights.
func (c *Clipper) Triangle(tri [3]linear.Vec4) []Vertex {
	in := c.a[:0]
	for i, p := range tri {
		in = append(in, Vertex{Pos: p, Weights: corners[i]})
	}
	if allInside(tri) {
		return in
	}

	out := c.b[:0]
	for _, plane := range planes {
		out = clipPolygon(in, out[:0], plane)
		if len(out) == 0 {
			return nil
		}
		in, out = out, in
	}
	return in
}

// clipPolygon clips poly against a single plane, appending to dst.
//
// For each edge j→i, an inside i is emitted after the intersection when j
// is outside; an outside i emits only the intersection when j is inside.
func clipPolygon(poly, dst []Vertex, plane linear.Vec4) []Vertex {
	j := len(poly) - 1
	dj := poly[j].Pos.Dot(plane)
	for i := range poly {
		di := poly[i].Pos.Dot(plane)
		switch {
		case di >= 0:
			if dj < 0 {
				dst = append(dst, poly[j].Lerp(poly[i], dj/(dj-di)))
			}
			dst = append(dst, poly[i])
		case dj >= 0:
			dst = append(dst, poly[j].Lerp(poly[i], dj/(dj-di)))
		}
		j, dj = i, di
	}
	return dst
}

// allInside reports whether every corner is inside every plane.
func allInside(tri [3]linear.Vec4) bool {
	for _, p := range tri {
		for _, plane := range planes {
			if p.Dot(plane) < 0 {
				return false
			}
		}
	}
	return true
}
