// Package models provides triangle geometry loading for tdrf scenes.
package models

import (
	"github.com/chewxy/math32"

	"github.com/lukasx999/tdrf/pkg/math3d"
)

// Mesh represents triangle geometry as homogeneous positions (w=1) and
// faces indexing into them.
type Mesh struct {
	Name      string
	Positions []math3d.Vec4
	Faces     [][3]int

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec4
	BoundsMax math3d.Vec4
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of positions.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		m.BoundsMin = math3d.Zero4()
		m.BoundsMax = math3d.Zero4()
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		m.BoundsMin = math3d.V4(
			math32.Min(m.BoundsMin.X, p.X),
			math32.Min(m.BoundsMin.Y, p.Y),
			math32.Min(m.BoundsMin.Z, p.Z),
			1,
		)
		m.BoundsMax = math3d.V4(
			math32.Max(m.BoundsMax.X, p.X),
			math32.Max(m.BoundsMax.Y, p.Y),
			math32.Max(m.BoundsMax.Z, p.Z),
			1,
		)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec4 {
	return math3d.V4(
		(m.BoundsMin.X+m.BoundsMax.X)/2,
		(m.BoundsMin.Y+m.BoundsMax.Y)/2,
		(m.BoundsMin.Z+m.BoundsMax.Z)/2,
		1,
	)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec4 {
	return math3d.V4(
		m.BoundsMax.X-m.BoundsMin.X,
		m.BoundsMax.Y-m.BoundsMin.Y,
		m.BoundsMax.Z-m.BoundsMin.Z,
		0,
	)
}

// Transform applies a matrix to every position.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Positions {
		m.Positions[i] = mat.MulVec4(m.Positions[i])
	}
	m.CalculateBounds()
}

// FitNDC centers the mesh and uniformly scales it so the geometry fits
// inside the NDC cube, leaving a small margin.
func (m *Mesh) FitNDC() {
	m.CalculateBounds()
	size := m.Size()
	maxDim := math32.Max(size.X, math32.Max(size.Y, size.Z))
	if maxDim == 0 {
		return
	}

	scale := 1.8 / maxDim
	center := m.Center()
	fit := math3d.ScaleUniform(scale).
		Mul(math3d.Translate(center.Scale(-1)))
	m.Transform(fit)
}

// VertexBuffer flattens the faces into the vertex-triple stream the
// rasterizer consumes. Its length is always a multiple of 3.
func (m *Mesh) VertexBuffer() []math3d.Vec4 {
	verts := make([]math3d.Vec4, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		verts = append(verts, m.Positions[f[0]], m.Positions[f[1]], m.Positions[f[2]])
	}
	return verts
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Positions: make([]math3d.Vec4, len(m.Positions)),
		Faces:     make([][3]int, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Positions, m.Positions)
	copy(clone.Faces, m.Faces)
	return clone
}
