package render

import (
	"github.com/lukasx999/tdrf/pkg/math3d"
)

// VertexShader maps an input vertex position to a post-transform
// position. It must be a pure function: the rasterizer may call it in
// any order and expects identical results for identical inputs.
type VertexShader func(math3d.Vec4) math3d.Vec4

// FragmentShader maps a pixel-space point (z=0, w=1 at the call site)
// to an output color.
type FragmentShader func(math3d.Vec4) Color

// DefaultVertexShader passes positions through unchanged.
func DefaultVertexShader(pos math3d.Vec4) math3d.Vec4 {
	return pos
}

// DefaultFragmentShader shades every fragment solid blue.
func DefaultFragmentShader(math3d.Vec4) Color {
	return ColorBlue
}
