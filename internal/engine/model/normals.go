package model

import "github.com/go-gl/mathgl/mgl32"

// CalculateAverageNormals writes smooth per-vertex normals into the mesh's
// normal slots by summing the face normals of every triangle sharing a vertex.
// Existing normal data is overwritten.
func CalculateAverageNormals(m *Mesh) {
	stride := m.Stride
	off := m.NormalOffset
	v := m.Vertices

	for i := 0; i < m.VertexCount(); i++ {
		n := i*stride + off
		v[n], v[n+1], v[n+2] = 0, 0, 0
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i]) * stride
		i1 := int(m.Indices[i+1]) * stride
		i2 := int(m.Indices[i+2]) * stride

		e1 := mgl32.Vec3{v[i1] - v[i0], v[i1+1] - v[i0+1], v[i1+2] - v[i0+2]}
		e2 := mgl32.Vec3{v[i2] - v[i1], v[i2+1] - v[i1+1], v[i2+2] - v[i1+2]}
		normal := e1.Cross(e2)
		if normal.Len() == 0 {
			continue // degenerate triangle
		}
		normal = normal.Normalize()

		for _, base := range [3]int{i0, i1, i2} {
			v[base+off] += normal[0]
			v[base+off+1] += normal[1]
			v[base+off+2] += normal[2]
		}
	}

	for i := 0; i < m.VertexCount(); i++ {
		n := i*stride + off
		vec := mgl32.Vec3{v[n], v[n+1], v[n+2]}
		if vec.Len() == 0 {
			continue
		}
		vec = vec.Normalize()
		v[n], v[n+1], v[n+2] = vec[0], vec[1], vec[2]
	}
}
