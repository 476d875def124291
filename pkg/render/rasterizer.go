package render

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/lukasx999/tdrf/pkg/math3d"
)

// WindingOrder is the vertex winding of front-face triangles in screen
// space.
type WindingOrder int

const (
	// CounterClockwise front faces (the default).
	CounterClockwise WindingOrder = iota
	// Clockwise front faces.
	Clockwise
)

// CullMode selects which faces the rasterizer discards.
type CullMode int

const (
	CullNone CullMode = iota // Draw both faces (the default)
	CullFront
	CullBack
)

// Rasterizer walks triangles in NDC through the pipeline: vertex shader,
// viewport transform, edge-function traversal, depth test, blend, store.
//
// It borrows the framebuffer exclusively for the duration of a draw
// call; besides the framebuffer reference, the only state it keeps
// between calls is the winding order and the cull mode.
type Rasterizer struct {
	fb      *Framebuffer
	winding WindingOrder
	cull    CullMode
}

// NewRasterizer creates a rasterizer targeting fb and clears it.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{fb: fb}
	r.Clear()
	return r
}

// Framebuffer returns the render target.
func (r *Rasterizer) Framebuffer() *Framebuffer {
	return r.fb
}

// Clear resets the framebuffer's color and depth buffers.
func (r *Rasterizer) Clear() {
	r.fb.Clear()
}

// WindingOrder returns the active front-face winding.
func (r *Rasterizer) WindingOrder() WindingOrder {
	return r.winding
}

// SetWindingOrder sets the front-face winding, effective from the next
// draw call.
func (r *Rasterizer) SetWindingOrder(w WindingOrder) {
	r.winding = w
}

// CullMode returns the active cull mode.
func (r *Rasterizer) CullMode() CullMode {
	return r.cull
}

// SetCullMode sets the cull mode, effective from the next draw call.
func (r *Rasterizer) SetCullMode(c CullMode) {
	r.cull = c
}

// RenderVertexBuffer draws every consecutive vertex triple as one
// triangle, in input order. The vertex count must be a multiple of 3;
// otherwise an error is returned and nothing is rendered.
func (r *Rasterizer) RenderVertexBuffer(vertices []math3d.Vec4, vs VertexShader, fs FragmentShader) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("render: vertex count %d is not a multiple of 3", len(vertices))
	}

	for i := 0; i < len(vertices); i += 3 {
		r.DrawTriangle(vertices[i], vertices[i+1], vertices[i+2], vs, fs)
	}
	return nil
}

// DrawTriangle rasterizes one triangle given in NDC:
//
//	               (y)
//	                1 (-z)
//	                ^  -1
//	                |  /
//	                | /
//	                |/
//	(-x) -1 -----------------> 1 (x)
//	               /|
//	              / |
//	             /  |
//	            1  -1
//	           (z)(-y)
//
// A nil vertex or fragment shader falls back to the default.
// Degenerate triangles and triangles whose bounding box misses the
// viewport are skipped silently.
func (r *Rasterizer) DrawTriangle(aNDC, bNDC, cNDC math3d.Vec4, vs VertexShader, fs FragmentShader) {
	if vs == nil {
		vs = DefaultVertexShader
	}
	if fs == nil {
		fs = DefaultFragmentShader
	}

	aVP := r.viewportTransform(vs(aNDC))
	bVP := r.viewportTransform(vs(bNDC))
	cVP := r.viewportTransform(vs(cNDC))

	minX, minY, maxX, maxY, ok := r.triangleAABB(aVP, bVP, cVP)
	if !ok {
		return
	}

	abc := triangleSignedArea(aVP, bVP, cVP)
	if abc == 0 {
		return
	}

	colorBuf := r.fb.Color()
	depthBuf := r.fb.Depth()

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := math3d.Point(float32(x), float32(y), 0)

			abp := triangleSignedArea(aVP, bVP, p)
			bcp := triangleSignedArea(bVP, cVP, p)
			cpa := triangleSignedArea(cVP, aVP, p)

			// The comparisons include zero, so a zero edge value
			// counts toward both orientations: pixels on an edge
			// shared by adjacent triangles are never dropped, and
			// each of the two triangles draws them.
			cw := abp >= 0 && bcp >= 0 && cpa >= 0
			ccw := abp <= 0 && bcp <= 0 && cpa <= 0

			front, back := r.facesFromWinding(cw, ccw)
			if !r.applyCulling(front, back) {
				continue
			}

			weightA := bcp / abc
			weightB := cpa / abc
			weightC := abp / abc
			if math32.IsNaN(weightA) || math32.IsNaN(weightB) || math32.IsNaN(weightC) {
				continue
			}

			depth := weightA*aVP.Z + weightB*bVP.Z + weightC*cVP.Z
			if depth < depthBuf.Get(x, y) {
				continue
			}

			color := blendColors(fs(p), colorBuf.Get(x, y))
			colorBuf.Set(x, y, color)
			depthBuf.Set(x, y, depth)
		}
	}
}

// DrawTriangleWire draws only the projected edges of a triangle, with
// no depth test or blending.
func (r *Rasterizer) DrawTriangleWire(aNDC, bNDC, cNDC math3d.Vec4, vs VertexShader, color Color) {
	if vs == nil {
		vs = DefaultVertexShader
	}

	aVP := r.viewportTransform(vs(aNDC))
	bVP := r.viewportTransform(vs(bNDC))
	cVP := r.viewportTransform(vs(cNDC))

	r.fb.DrawLine(int(aVP.X), int(aVP.Y), int(bVP.X), int(bVP.Y), color)
	r.fb.DrawLine(int(bVP.X), int(bVP.Y), int(cVP.X), int(cVP.Y), color)
	r.fb.DrawLine(int(cVP.X), int(cVP.Y), int(aVP.X), int(aVP.Y), color)
}

// viewportTransform maps NDC [-1,1]² with y-up to pixel space
// [0,W]×[0,H] with y-down. z and w pass through.
func (r *Rasterizer) viewportTransform(v math3d.Vec4) math3d.Vec4 {
	return math3d.Vec4{
		X: (v.X + 1) / 2 * float32(r.fb.Width()),
		Y: (1 - v.Y) / 2 * float32(r.fb.Height()),
		Z: v.Z,
		W: v.W,
	}
}

// triangleAABB returns the triangle's bounding rectangle clamped to the
// framebuffer: x in [minX, maxX), y in [minY, maxY). ok is false when
// the clamped rectangle is empty.
func (r *Rasterizer) triangleAABB(a, b, c math3d.Vec4) (minX, minY, maxX, maxY int, ok bool) {
	for _, v := range [3]math3d.Vec4{a, b, c} {
		if math32.IsNaN(v.X) || math32.IsNaN(v.Y) {
			return 0, 0, 0, 0, false
		}
	}

	minX = int(math32.Floor(min(a.X, b.X, c.X)))
	minY = int(math32.Floor(min(a.Y, b.Y, c.Y)))
	// The inclusive upper pixel is floor(max), so the exclusive loop
	// bound is floor(max)+1: ceil would exclude on-edge pixels when the
	// maximum lands on an exact integer.
	maxX = int(math32.Floor(max(a.X, b.X, c.X))) + 1
	maxY = int(math32.Floor(max(a.Y, b.Y, c.Y))) + 1

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, r.fb.Width())
	maxY = min(maxY, r.fb.Height())

	return minX, minY, maxX, maxY, minX < maxX && minY < maxY
}

// triangleSignedArea returns twice the signed area of the triangle
// spanned by a, b and c (the 2D cross product of ab and ac). The sign indicates which side of edge ab the point c lies
// on.
func triangleSignedArea(a, b, c math3d.Vec4) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// facesFromWinding maps the two screen-space orientations to front and
// back according to the active winding order.
func (r *Rasterizer) facesFromWinding(cw, ccw bool) (front, back bool) {
	switch r.winding {
	case Clockwise:
		return cw, ccw
	default:
		return ccw, cw
	}
}

// applyCulling reports whether a pixel with the given face
// classification survives the active cull mode.
func (r *Rasterizer) applyCulling(front, back bool) bool {
	switch r.cull {
	case CullFront:
		return back
	case CullBack:
		return front
	default:
		return front || back
	}
}

// blendColors combines a fragment with the stored pixel using the
// source's alpha: src·α + dest·(1−α).
func blendColors(src, dest Color) Color {
	factorSrc := float32(src.A) / 255
	factorDest := 1 - factorSrc
	return src.Scale(factorSrc).Add(dest.Scale(factorDest))
}
