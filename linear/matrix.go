package linear

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored as four columns.
type Mat4 [4]Vec4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{X: 1},
		{Y: 1},
		{Z: 1},
		{W: 1},
	}
}

// Translate returns a translation by v.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3] = Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
	return m
}

// Scale returns a non-uniform scale by v.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{X: v.X},
		{Y: v.Y},
		{Z: v.Z},
		{W: 1},
	}
}

// RotateX returns a rotation of angle radians around the X axis.
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		{X: 1},
		{Y: c, Z: s},
		{Y: -s, Z: c},
		{W: 1},
	}
}

// RotateY returns a rotation of angle radians around the Y axis.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		{X: c, Z: -s},
		{Y: 1},
		{X: s, Z: c},
		{W: 1},
	}
}

// RotateZ returns a rotation of angle radians around the Z axis.
func RotateZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		{X: c, Y: s},
		{X: -s, Y: c},
		{Z: 1},
		{W: 1},
	}
}

// Perspective returns a right-handed projection looking down -Z.
//
// Depth is mapped so that the near plane lands on z = 0 and the far plane
// on z = w, matching the clip volume used by the rasterizer.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovy/2)
	d := near - far
	return Mat4{
		{X: f / aspect},
		{Y: f},
		{Z: far / d, W: -1},
		{Z: near * far / d},
	}
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for i := range r {
		r[i] = m.MulVec4(n[i])
	}
	return r
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return m[0].Mul(v.X).
		Add(m[1].Mul(v.Y)).
		Add(m[2].Mul(v.Z)).
		Add(m[3].Mul(v.W))
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{X: m[0].X, Y: m[1].X, Z: m[2].X, W: m[3].X},
		{X: m[0].Y, Y: m[1].Y, Z: m[2].Y, W: m[3].Y},
		{X: m[0].Z, Y: m[1].Z, Z: m[2].Z, W: m[3].Z},
		{X: m[0].W, Y: m[1].W, Z: m[2].W, W: m[3].W},
	}
}
