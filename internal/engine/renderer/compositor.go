package renderer

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/input"
	"github.com/Faultbox/lumen/internal/engine/shader"
)

// Effect is a post-process shader applied to one half of the screen.
type Effect uint8

const (
	Passthrough Effect = iota
	Sharpen
	BoxBlur

	effectCount
)

func (e Effect) String() string {
	switch e {
	case Passthrough:
		return "passthrough"
	case Sharpen:
		return "sharpen"
	case BoxBlur:
		return "boxblur"
	default:
		return fmt.Sprintf("effect(%d)", e)
	}
}

// SelectEffects picks each half's effect from the actions held this frame.
// The left half sharpens while ToggleSharpen is held and the right half
// blurs while ToggleBoxBlur is held; the halves never affect each other.
func SelectEffects(s input.ActionState) (left, right Effect) {
	left, right = Passthrough, Passthrough
	if s.Held(input.ToggleSharpen) {
		left = Sharpen
	}
	if s.Held(input.ToggleBoxBlur) {
		right = BoxBlur
	}
	return left, right
}

// Screen quad vertex layout: NDC position(2) uv(2).
const quadStride = 4

var quadLayout = []gfx.AttribLayout{
	{Location: 0, Components: 2, Offset: 0},
	{Location: 1, Components: 2, Offset: 2},
}

var quadIndices = []uint32{0, 1, 2, 0, 2, 3}

// LeftQuad covers x in [-1, 0] and samples u in [0, 0.5].
func LeftQuad() []float32 {
	return halfQuad(-1, 0, 0, 0.5)
}

// RightQuad covers x in [0, 1] and samples u in [0.5, 1].
func RightQuad() []float32 {
	return halfQuad(0, 1, 0.5, 1)
}

func halfQuad(x0, x1, u0, u1 float32) []float32 {
	return []float32{
		x0, -1, u0, 0,
		x1, -1, u1, 0,
		x1, 1, u1, 1,
		x0, 1, u0, 1,
	}
}

// Compositor draws the offscreen color texture to the default target as
// two half-screen quads, each through its own effect.
type Compositor struct {
	dev      gfx.Device
	programs [effectCount]*shader.Program
	left     gfx.Mesh
	right    gfx.Mesh
}

// NewCompositor uploads the quads. Every effect needs a program.
func NewCompositor(dev gfx.Device, programs map[Effect]*shader.Program) (*Compositor, error) {
	c := &Compositor{dev: dev}
	for e := Effect(0); e < effectCount; e++ {
		p, ok := programs[e]
		if !ok || p == nil {
			return nil, fmt.Errorf("compositor: no program for %s", e)
		}
		c.programs[e] = p
	}

	c.left = dev.UploadMesh(LeftQuad(), quadIndices, quadStride, quadLayout)
	c.right = dev.UploadMesh(RightQuad(), quadIndices, quadStride, quadLayout)
	return c, nil
}

// Composite draws both halves sampling colorTexture.
func (c *Compositor) Composite(colorTexture uint32, actions input.ActionState) {
	left, right := SelectEffects(actions)

	c.dev.BindTexture(0, colorTexture)
	c.drawHalf(c.left, c.programs[left])
	c.drawHalf(c.right, c.programs[right])
}

func (c *Compositor) drawHalf(quad gfx.Mesh, p *shader.Program) {
	c.dev.UseProgram(p.ID)
	c.dev.Uniform1i(p.Location(uniformScreenTexture), 0)
	c.dev.DrawMesh(quad)
}

// Release frees the quad meshes.
func (c *Compositor) Release() {
	c.dev.DeleteMesh(c.left)
	c.dev.DeleteMesh(c.right)
	c.left, c.right = gfx.Mesh{}, gfx.Mesh{}
}
