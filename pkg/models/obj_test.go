package models

import (
	"strings"
	"testing"

	"github.com/lukasx999/tdrf/pkg/math3d"
)

func TestParseOBJTriangle(t *testing.T) {
	const src = `
# a single triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if mesh.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d, want 1", mesh.TriangleCount())
	}
	if mesh.Positions[1] != math3d.Point(1, 0, 0) {
		t.Errorf("Positions[1] = %+v", mesh.Positions[1])
	}
	if mesh.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("Faces[0] = %v", mesh.Faces[0])
	}
}

func TestParseOBJQuadTriangulation(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if mesh.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2", mesh.TriangleCount())
	}
	if mesh.Faces[0] != [3]int{0, 1, 2} || mesh.Faces[1] != [3]int{0, 2, 3} {
		t.Errorf("fan triangulation = %v", mesh.Faces)
	}
}

func TestParseOBJIndexForms(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1 2/1/1 -1//1
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	// `-1` resolves relative to the end of the vertex list.
	if mesh.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("Faces[0] = %v", mesh.Faces[0])
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2"},
		{"bad coordinate", "v a b c"},
		{"short face", "v 0 0 0\nf 1 1"},
		{"zero index", "v 0 0 0\nf 0 0 0"},
		{"out of range", "v 0 0 0\nf 1 2 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tc.src)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseOBJBounds(t *testing.T) {
	const src = `
v -2 0 1
v 3 5 -4
v 0 0 0
f 1 2 3
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if mesh.BoundsMin != math3d.Point(-2, 0, -4) {
		t.Errorf("BoundsMin = %+v", mesh.BoundsMin)
	}
	if mesh.BoundsMax != math3d.Point(3, 5, 1) {
		t.Errorf("BoundsMax = %+v", mesh.BoundsMax)
	}
}
