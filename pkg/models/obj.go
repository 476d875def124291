package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lukasx999/tdrf/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file into a Mesh.
// Only `v` and `f` statements are consumed; faces with more than three
// vertices are fan-triangulated. Normals, texture coordinates and
// material statements are ignored.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse obj %s: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ parses Wavefront OBJ data from a reader.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("")

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var coords [3]float32
			for i := range 3 {
				v, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", line, fields[i+1], err)
				}
				coords[i] = float32(v)
			}
			mesh.Positions = append(mesh.Positions, math3d.Point(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				i, err := parseFaceIndex(ref, len(mesh.Positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			// Fan-triangulate polygons.
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseFaceIndex resolves one face vertex reference (`7`, `7/1`,
// `7/1/3`, `7//3` or a negative relative index) to a 0-based position
// index.
func parseFaceIndex(ref string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}

	i, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", ref, err)
	}

	switch {
	case i > 0:
		i--
	case i < 0:
		i += vertexCount
	default:
		return 0, fmt.Errorf("face index must not be zero")
	}

	if i < 0 || i >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range (%d vertices)", ref, vertexCount)
	}
	return i, nil
}
