package models

import (
	"github.com/lukasx999/tdrf/pkg/math3d"
)

// cubeCorners are the eight corners of the unit cube.
var cubeCorners = [8]math3d.Vec4{
	{X: 0, Y: 0, Z: 0, W: 1},
	{X: 1, Y: 0, Z: 0, W: 1},
	{X: 1, Y: 1, Z: 0, W: 1},
	{X: 0, Y: 1, Z: 0, W: 1},
	{X: 0, Y: 0, Z: 1, W: 1},
	{X: 1, Y: 0, Z: 1, W: 1},
	{X: 1, Y: 1, Z: 1, W: 1},
	{X: 0, Y: 1, Z: 1, W: 1},
}

// cubeFaces lists the two triangles per cube face.
var cubeFaces = [12][3]int{
	{0, 1, 2}, {2, 3, 0}, // back  (z=0)
	{4, 5, 6}, {6, 7, 4}, // front (z=1)
	{7, 3, 0}, {0, 4, 7}, // left  (x=0)
	{6, 2, 1}, {1, 5, 6}, // right (x=1)
	{0, 1, 5}, {5, 4, 0}, // bottom (y=0)
	{3, 2, 6}, {6, 7, 3}, // top    (y=1)
}

// Cube returns the unit cube [0,1]³ as a 12-triangle mesh.
func Cube() *Mesh {
	mesh := NewMesh("cube")
	mesh.Positions = append(mesh.Positions, cubeCorners[:]...)
	mesh.Faces = append(mesh.Faces, cubeFaces[:]...)
	mesh.CalculateBounds()
	return mesh
}
