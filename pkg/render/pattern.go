package render

import (
	"github.com/chewxy/math32"

	"github.com/lukasx999/tdrf/pkg/math3d"
)

// SolidShader returns a fragment shader that paints every fragment the
// same color.
func SolidShader(c Color) FragmentShader {
	return func(math3d.Vec4) Color {
		return c
	}
}

// CheckerShader returns a fragment shader that paints a procedural
// checkerboard in pixel space with the given cell size.
func CheckerShader(cellSize int, c1, c2 Color) FragmentShader {
	return func(p math3d.Vec4) Color {
		cx := int(p.X) / cellSize
		cy := int(p.Y) / cellSize
		if (cx+cy)%2 == 0 {
			return c1
		}
		return c2
	}
}

// GradientShader returns a fragment shader that blends from left to
// right across a viewport of the given width.
func GradientShader(width int, left, right Color) FragmentShader {
	return func(p math3d.Vec4) Color {
		t := p.X / float32(width-1)
		t = math32.Max(0, math32.Min(1, t))
		return left.Lerp(right, t)
	}
}
