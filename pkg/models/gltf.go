package models

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/lukasx999/tdrf/pkg/math3d"
)

// LoadGLB loads a binary glTF (.glb/.gltf) file into a Mesh.
// Only triangle primitives are consumed; normals, texture coordinates
// and materials are ignored since the rasterizer interpolates position
// only.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))

	for _, m := range doc.Meshes {
		if err := appendGLTFMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// appendGLTFMesh extracts positions and faces from one glTF mesh.
func appendGLTFMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					baseVertex + indices[i],
					baseVertex + indices[i+1],
					baseVertex + indices[i+2],
				})
			}
		} else {
			// No indices, assume sequential triangles.
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					baseVertex + i,
					baseVertex + i + 1,
					baseVertex + i + 2,
				})
			}
		}
	}

	return nil
}

// readPositions reads a VEC3 float accessor as homogeneous points.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Vec4, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := accessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	stride := accessorStride(doc, accessor, 12)
	result := make([]math3d.Vec4, accessor.Count)
	for i := range accessor.Count {
		offset := i * stride
		result[i] = math3d.Point(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
		)
	}
	return result, nil
}

// readIndices reads a scalar index accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	data, err := accessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		stride := accessorStride(doc, accessor, 1)
		for i := range accessor.Count {
			result[i] = int(data[i*stride])
		}
	case gltf.ComponentUshort:
		stride := accessorStride(doc, accessor, 2)
		for i := range accessor.Count {
			offset := i * stride
			result[i] = int(uint16(data[offset]) | uint16(data[offset+1])<<8)
		}
	case gltf.ComponentUint:
		stride := accessorStride(doc, accessor, 4)
		for i := range accessor.Count {
			offset := i * stride
			result[i] = int(uint32(data[offset]) |
				uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 |
				uint32(data[offset+3])<<24)
		}
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}
	return result, nil
}

// accessorBytes returns the raw bytes an accessor refers to.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	return buffer.Data[start:], nil
}

// accessorStride returns the accessor's byte stride, falling back to the
// packed element size.
func accessorStride(doc *gltf.Document, accessor *gltf.Accessor, packed int) int {
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.ByteStride != 0 {
		return bufferView.ByteStride
	}
	return packed
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
