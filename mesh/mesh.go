// Package mesh generates small procedural meshes as triangle lists.
//
// Every generator takes a function building the caller's vertex type from
// a generated position, so the same geometry can feed any pipeline.
// Triangles are wound counter-clockwise when seen from outside in a y-down
// screen frame, the front face of the default pipeline state.
package mesh

import "github.com/gogpu/softrast/linear"

// UnitTriangle returns a triangle inscribed in the unit square centered on
// the origin, with its apex at the top (y = -0.5).
func UnitTriangle[V any](f func(linear.Vec2) V) []V {
	return []V{
		f(linear.V2(0, -0.5)),
		f(linear.V2(-0.5, 0.5)),
		f(linear.V2(0.5, 0.5)),
	}
}

// UnitQuad returns the unit square centered on the origin as two
// triangles. f is called once per distinct corner.
func UnitQuad[V any](f func(linear.Vec2) V) []V {
	topLeft := f(linear.V2(-0.5, -0.5))
	bottomLeft := f(linear.V2(-0.5, 0.5))
	bottomRight := f(linear.V2(0.5, 0.5))
	topRight := f(linear.V2(0.5, -0.5))
	return []V{
		topLeft, bottomLeft, topRight,
		bottomLeft, bottomRight, topRight,
	}
}

// Face identifies a face of the unit cube by its outward direction.
type Face uint8

const (
	FaceTop    Face = iota // +y
	FaceLeft               // -x
	FaceBottom             // -y
	FaceRight              // +x
	FaceFront              // +z
	FaceBack               // -z
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceTop:
		return "Top"
	case FaceLeft:
		return "Left"
	case FaceBottom:
		return "Bottom"
	case FaceRight:
		return "Right"
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() linear.Vec3 {
	switch f {
	case FaceTop:
		return linear.V3(0, 1, 0)
	case FaceLeft:
		return linear.V3(-1, 0, 0)
	case FaceBottom:
		return linear.V3(0, -1, 0)
	case FaceRight:
		return linear.V3(1, 0, 0)
	case FaceFront:
		return linear.V3(0, 0, 1)
	default:
		return linear.V3(0, 0, -1)
	}
}

// faces maps unit quad coordinates onto each cube face.
var faces = [6]func(q linear.Vec2) linear.Vec3{
	FaceTop:    func(q linear.Vec2) linear.Vec3 { return linear.V3(q.X, 0.5, q.Y) },
	FaceLeft:   func(q linear.Vec2) linear.Vec3 { return linear.V3(-0.5, q.Y, -q.X) },
	FaceBottom: func(q linear.Vec2) linear.Vec3 { return linear.V3(q.X, -0.5, -q.Y) },
	FaceRight:  func(q linear.Vec2) linear.Vec3 { return linear.V3(0.5, q.Y, q.X) },
	FaceFront:  func(q linear.Vec2) linear.Vec3 { return linear.V3(q.X, -q.Y, 0.5) },
	FaceBack:   func(q linear.Vec2) linear.Vec3 { return linear.V3(q.X, q.Y, -0.5) },
}

// UnitCube returns the 12 triangles of the unit cube centered on the
// origin, two per face in Face order. f receives the face, the position
// and the face-local unit quad coordinates in [-0.5, 0.5], which are
// convenient for texture mapping.
func UnitCube[V any](f func(face Face, pos linear.Vec3, quad linear.Vec2) V) []V {
	out := make([]V, 0, 36)
	for face, place := range faces {
		out = append(out, UnitQuad(func(q linear.Vec2) V {
			return f(Face(face), place(q), q)
		})...)
	}
	return out
}
