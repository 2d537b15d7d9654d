// Package gfx defines the narrow set of graphics calls the renderer makes,
// and an OpenGL 4.1 core implementation of it.
package gfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Format identifies a render target attachment format.
type Format uint32

// Supported attachment formats.
const (
	FormatNone Format = iota
	FormatRGBA8
	FormatDepth24Stencil8
	FormatDepth24
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatDepth24Stencil8:
		return "DEPTH24_STENCIL8"
	case FormatDepth24:
		return "DEPTH24"
	default:
		return "none"
	}
}

// IsColor reports whether the format can back a color attachment.
func (f Format) IsColor() bool {
	return f == FormatRGBA8
}

// HasStencil reports whether the format carries a stencil component.
func (f Format) HasStencil() bool {
	return f == FormatDepth24Stencil8
}

// Attachment describes one render target attachment.
type Attachment struct {
	Format Format
	Width  int32
	Height int32
}

// Target holds the device objects of an allocated render target.
type Target struct {
	FBO          uint32
	Color        uint32 // texture
	DepthStencil uint32 // renderbuffer
}

// StatusComplete is the completeness status of a usable render target.
const StatusComplete uint32 = 0x8CD5 // GL_FRAMEBUFFER_COMPLETE

// Color is a normalized RGBA clear color.
type Color [4]float32

// AttribLayout describes one float vertex attribute inside an interleaved buffer.
type AttribLayout struct {
	Location   uint32
	Components int32
	Offset     int32 // floats from the start of a vertex
}

// Mesh is an uploaded indexed triangle list.
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Device is the set of graphics operations used by the demo.
// Uniform setters act on the program last passed to UseProgram; a location of -1 is ignored.
type Device interface {
	UseProgram(program uint32)
	UniformMatrix4(loc int32, m mgl32.Mat4)
	Uniform3(loc int32, v mgl32.Vec3)
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)

	CreateTarget(color, depthStencil Attachment) (Target, uint32)
	DeleteTarget(t Target)
	BindFramebuffer(fbo uint32)
	Viewport(x, y, width, height int32)
	Clear(c Color)
	SetDepthTest(enabled bool)
	ReadPixels(fbo uint32, width, height int32) []byte

	UploadMesh(vertices []float32, indices []uint32, stride int32, layout []AttribLayout) Mesh
	DeleteMesh(m Mesh)
	DrawMesh(m Mesh)

	UploadTexture(img *image.RGBA) uint32
	DeleteTexture(tex uint32)
	BindTexture(unit uint32, tex uint32)
}
