package model

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Faultbox/lumen/internal/engine/gfx"
)

// Attribute locations shared with the scene vertex shader.
var meshLayout = []gfx.AttribLayout{
	{Location: 0, Components: 3, Offset: 0},
	{Location: 1, Components: 2, Offset: UVOffset},
	{Location: 2, Components: 3, Offset: NormalOffset},
}

// Upload validates every mesh and copies meshes and textures to the device.
func (m *Model) Upload(dev gfx.Device) error {
	if m.uploaded {
		return nil
	}
	for i, mesh := range m.Meshes {
		if err := mesh.Validate(); err != nil {
			return fmt.Errorf("model %s mesh %d: %w", m.Name, i, err)
		}
		if mesh.Texture != NoTexture && (mesh.Texture < 0 || mesh.Texture >= len(m.Textures)) {
			return fmt.Errorf("model %s mesh %d: texture index %d out of range", m.Name, i, mesh.Texture)
		}
	}

	for _, mesh := range m.Meshes {
		mesh.gpu = dev.UploadMesh(mesh.Vertices, mesh.Indices, int32(mesh.Stride), meshLayout)
	}

	m.textureIDs = make([]uint32, len(m.Textures))
	for i, img := range m.Textures {
		m.textureIDs[i] = dev.UploadTexture(img)
	}
	m.plainTex = dev.UploadTexture(PlainTexture())

	m.uploaded = true
	return nil
}

// Render draws every mesh in order with the currently bound program,
// binding each mesh's diffuse texture to unit 0.
func (m *Model) Render(dev gfx.Device) {
	for _, mesh := range m.Meshes {
		tex := m.plainTex
		if mesh.Texture != NoTexture {
			tex = m.textureIDs[mesh.Texture]
		}
		dev.BindTexture(0, tex)
		dev.DrawMesh(mesh.gpu)
	}
}

// Release frees device resources.
func (m *Model) Release(dev gfx.Device) {
	if !m.uploaded {
		return
	}
	for _, mesh := range m.Meshes {
		dev.DeleteMesh(mesh.gpu)
		mesh.gpu = gfx.Mesh{}
	}
	for _, tex := range m.textureIDs {
		dev.DeleteTexture(tex)
	}
	dev.DeleteTexture(m.plainTex)
	m.textureIDs = nil
	m.plainTex = 0
	m.uploaded = false
}

// PlainTexture returns a 1x1 opaque white image, so untextured meshes
// show pure lighting.
func PlainTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
