// Package model holds renderable meshes and the models built from them.
package model

import (
	"fmt"
	"image"

	"github.com/Faultbox/lumen/internal/engine/gfx"
)

// Interleaved vertex layout: position(3) uv(2) normal(3).
const (
	VertexStride = 8
	UVOffset     = 3
	NormalOffset = 5
)

// NoTexture marks a mesh drawn with the plain white texture.
const NoTexture = -1

// Mesh is an indexed triangle list with interleaved float vertex data.
type Mesh struct {
	Vertices     []float32
	Indices      []uint32
	Stride       int
	NormalOffset int
	Texture      int // index into Model.Textures, or NoTexture

	gpu gfx.Mesh
}

// NewMesh returns a mesh using the standard vertex layout.
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	return &Mesh{
		Vertices:     vertices,
		Indices:      indices,
		Stride:       VertexStride,
		NormalOffset: NormalOffset,
		Texture:      NoTexture,
	}
}

// VertexCount returns the number of whole vertices in the buffer.
func (m *Mesh) VertexCount() int {
	if m.Stride <= 0 {
		return 0
	}
	return len(m.Vertices) / m.Stride
}

// Validate checks the buffer invariants: the vertex buffer holds a whole
// number of vertices and every index refers to one of them.
func (m *Mesh) Validate() error {
	if m.Stride <= 0 {
		return fmt.Errorf("invalid stride %d", m.Stride)
	}
	if m.NormalOffset < 0 || m.NormalOffset+3 > m.Stride {
		return fmt.Errorf("normal offset %d outside stride %d", m.NormalOffset, m.Stride)
	}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("empty mesh")
	}
	count := m.VertexCount()
	if count*m.Stride != len(m.Vertices) {
		return fmt.Errorf("vertex buffer length %d is not a multiple of stride %d", len(m.Vertices), m.Stride)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= count {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, count)
		}
	}
	return nil
}

// Bounds holds the axis-aligned bounding box of a model.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Model is an ordered list of meshes loaded from one asset file.
type Model struct {
	Name     string
	Meshes   []*Mesh
	Textures []*image.RGBA
	Bounds   Bounds

	textureIDs []uint32
	plainTex   uint32
	uploaded   bool
}

// ComputeBounds recalculates Bounds from the mesh positions.
func (m *Model) ComputeBounds() {
	first := true
	for _, mesh := range m.Meshes {
		for i := 0; i+2 < len(mesh.Vertices); i += mesh.Stride {
			p := [3]float32{mesh.Vertices[i], mesh.Vertices[i+1], mesh.Vertices[i+2]}
			if first {
				m.Bounds = Bounds{Min: p, Max: p}
				first = false
				continue
			}
			updateBounds(&m.Bounds, p)
		}
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// TriangleCount returns the number of triangles across all meshes.
func (m *Model) TriangleCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Indices) / 3
	}
	return n
}
