package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V4(1, 2, 3, 1))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translate(V4(1, 2, 3, 1)).Mul(RotateY(0.5))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkRotate(b *testing.B) {
	axis := V4(1, 1, 1, 1).Normalize()

	for b.Loop() {
		_ = Rotate(axis, 0.5)
	}
}

func BenchmarkVec4Normalize(b *testing.B) {
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec4Cross(b *testing.B) {
	v1 := V4(1, 2, 3, 1)
	v2 := V4(4, 5, 6, 1)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec4Dot(b *testing.B) {
	v1 := V4(1, 2, 3, 1)
	v2 := V4(4, 5, 6, 1)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}
