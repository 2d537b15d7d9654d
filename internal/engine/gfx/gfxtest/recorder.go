// Package gfxtest provides a recording gfx.Device for tests that run without a GL context.
package gfxtest

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lumen/internal/engine/gfx"
)

// Call is one recorded device call.
type Call struct {
	Op      string
	Program uint32 // program active when the call was made
	Loc     int32
	Value   any
}

func (c Call) String() string {
	return fmt.Sprintf("%s(p=%d loc=%d %v)", c.Op, c.Program, c.Loc, c.Value)
}

// Recorder implements gfx.Device by logging every call.
type Recorder struct {
	Calls []Call

	// Status returned from CreateTarget. Zero means complete.
	TargetStatus uint32
	// Pixels returned from ReadPixels; generated when nil.
	Pixels []byte

	program     uint32
	framebuffer uint32
	depthTest   bool
	textures    map[uint32]uint32
	nextID      uint32

	Deleted []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{textures: make(map[uint32]uint32), nextID: 1}
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) record(op string, loc int32, v any) {
	r.Calls = append(r.Calls, Call{Op: op, Program: r.program, Loc: loc, Value: v})
}

// Reset clears the call log but keeps device state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Program returns the program currently in use.
func (r *Recorder) Program() uint32 { return r.program }

// Framebuffer returns the currently bound framebuffer.
func (r *Recorder) Framebuffer() uint32 { return r.framebuffer }

// DepthTest reports whether depth testing is enabled.
func (r *Recorder) DepthTest() bool { return r.depthTest }

// BoundTexture returns the texture bound to a unit.
func (r *Recorder) BoundTexture(unit uint32) uint32 { return r.textures[unit] }

// Ops returns the op names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Uniforms returns the last value written to each location, restricted to a program.
func (r *Recorder) Uniforms(program uint32) map[int32]any {
	vals := make(map[int32]any)
	for _, c := range r.Calls {
		if c.Program != program || c.Loc < 0 {
			continue
		}
		switch c.Op {
		case "UniformMatrix4", "Uniform3", "Uniform1f", "Uniform1i":
			vals[c.Loc] = c.Value
		}
	}
	return vals
}

func (r *Recorder) UseProgram(program uint32) {
	r.program = program
	r.record("UseProgram", -1, program)
}

func (r *Recorder) UniformMatrix4(loc int32, m mgl32.Mat4) { r.record("UniformMatrix4", loc, m) }
func (r *Recorder) Uniform3(loc int32, v mgl32.Vec3)       { r.record("Uniform3", loc, v) }
func (r *Recorder) Uniform1f(loc int32, v float32)         { r.record("Uniform1f", loc, v) }
func (r *Recorder) Uniform1i(loc int32, v int32)           { r.record("Uniform1i", loc, v) }

func (r *Recorder) CreateTarget(color, depthStencil gfx.Attachment) (gfx.Target, uint32) {
	r.record("CreateTarget", -1, [2]gfx.Attachment{color, depthStencil})
	status := r.TargetStatus
	if status == 0 {
		status = gfx.StatusComplete
	}
	return gfx.Target{FBO: r.id(), Color: r.id(), DepthStencil: r.id()}, status
}

func (r *Recorder) DeleteTarget(t gfx.Target) {
	r.Deleted = append(r.Deleted, fmt.Sprintf("target:%d", t.FBO))
	r.record("DeleteTarget", -1, t)
}

func (r *Recorder) BindFramebuffer(fbo uint32) {
	r.framebuffer = fbo
	r.record("BindFramebuffer", -1, fbo)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", -1, [4]int32{x, y, width, height})
}

func (r *Recorder) Clear(c gfx.Color) { r.record("Clear", -1, c) }

func (r *Recorder) SetDepthTest(enabled bool) {
	r.depthTest = enabled
	r.record("SetDepthTest", -1, enabled)
}

func (r *Recorder) ReadPixels(fbo uint32, width, height int32) []byte {
	r.record("ReadPixels", -1, fbo)
	if r.Pixels != nil {
		return r.Pixels
	}
	px := make([]byte, width*height*4)
	for i := range px {
		px[i] = byte(i)
	}
	return px
}

func (r *Recorder) UploadMesh(vertices []float32, indices []uint32, stride int32, layout []gfx.AttribLayout) gfx.Mesh {
	r.record("UploadMesh", -1, len(indices))
	return gfx.Mesh{VAO: r.id(), VBO: r.id(), EBO: r.id(), IndexCount: int32(len(indices))}
}

func (r *Recorder) DeleteMesh(m gfx.Mesh) {
	r.Deleted = append(r.Deleted, fmt.Sprintf("mesh:%d", m.VAO))
	r.record("DeleteMesh", -1, m.VAO)
}

func (r *Recorder) DrawMesh(m gfx.Mesh) { r.record("DrawMesh", -1, m.VAO) }

func (r *Recorder) UploadTexture(img *image.RGBA) uint32 {
	r.record("UploadTexture", -1, img.Bounds().Size())
	return r.id()
}

func (r *Recorder) DeleteTexture(tex uint32) {
	r.Deleted = append(r.Deleted, fmt.Sprintf("texture:%d", tex))
	r.record("DeleteTexture", -1, tex)
}

func (r *Recorder) BindTexture(unit uint32, tex uint32) {
	r.textures[unit] = tex
	r.record("BindTexture", int32(unit), tex)
}

var _ gfx.Device = (*Recorder)(nil)
