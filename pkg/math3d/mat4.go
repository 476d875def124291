package math3d

import (
	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix stored as four Vec4 columns.
// Vectors multiply on the right as column vectors (m · v), so for a
// transform matrix the translation lives in the fourth column:
//
//	| Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
//	| Xy Yy Zy Ty |   T = translation
//	| Xz Yz Zz Tz |
//	| 0  0  0  1  |
type Mat4 [4]Vec4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Scale creates a scaling matrix from v's x,y,z components.
func Scale(v Vec4) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float32) Mat4 {
	return Scale(V4(s, s, s, 1))
}

// Translate creates a translation matrix from v's x,y,z components.
func Translate(v Vec4) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{v.X, v.Y, v.Z, 1},
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Rotate creates a Rodrigues rotation matrix around an arbitrary axis.
// The angle is in radians; the axis's x,y,z components are normalized
// first, its w is ignored.
func Rotate(axis Vec4, angle float32) Mat4 {
	axis = axis.Normalize()
	c, s := math32.Cos(angle), math32.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// Row returns the nth row as a vector.
func (m Mat4) Row(n int) Vec4 {
	return Vec4{m[0].At(n), m[1].At(n), m[2].At(n), m[3].At(n)}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	row0 := a.Row(0)
	row1 := a.Row(1)
	row2 := a.Row(2)
	row3 := a.Row(3)

	var m Mat4
	for col := range 4 {
		m[col] = Vec4{
			row0.Dot(b[col]),
			row1.Dot(b[col]),
			row2.Dot(b[col]),
			row3.Dot(b[col]),
		}
	}
	return m
}

// MulVec4 transforms v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m.Row(0).Dot(v),
		m.Row(1).Dot(v),
		m.Row(2).Dot(v),
		m.Row(3).Dot(v),
	}
}

// Add returns the component-wise matrix sum.
//
//nolint:st1016 // a+b naming convention is clearer for matrix operations
func (a Mat4) Add(b Mat4) Mat4 {
	return Mat4{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2]), a[3].Add(b[3])}
}

// Sub returns the component-wise matrix difference.
//
//nolint:st1016 // a-b naming convention is clearer for matrix operations
func (a Mat4) Sub(b Mat4) Mat4 {
	return Mat4{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2]), a[3].Sub(b[3])}
}

// Scale returns the matrix with every entry multiplied by s.
func (m Mat4) Scale(s float32) Mat4 {
	return Mat4{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Div returns the matrix with every entry divided by s.
func (m Mat4) Div(s float32) Mat4 {
	return Mat4{m[0].Div(s), m[1].Div(s), m[2].Div(s), m[3].Div(s)}
}

// AddScalar returns the matrix with s added to every entry.
func (m Mat4) AddScalar(s float32) Mat4 {
	return Mat4{m[0].AddScalar(s), m[1].AddScalar(s), m[2].AddScalar(s), m[3].AddScalar(s)}
}

// SubScalar returns the matrix with s subtracted from every entry.
func (m Mat4) SubScalar(s float32) Mat4 {
	return Mat4{m[0].SubScalar(s), m[1].SubScalar(s), m[2].SubScalar(s), m[3].SubScalar(s)}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec4 {
	return Vec4{m[3].X, m[3].Y, m[3].Z, 1}
}
