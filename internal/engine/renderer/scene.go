package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/engine/shader"
)

// RotationStep is how far a spinning object turns each frame, in degrees.
const RotationStep float32 = 0.05

// Object is a model placed in the world with its own material.
type Object struct {
	Name     string
	Model    *model.Model
	Material material.Material
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Spin     bool

	rotation float32 // degrees about Y, never wrapped
}

// Rotation returns the accumulated rotation in degrees.
func (o *Object) Rotation() float32 {
	return o.rotation
}

// Advance steps the object's animation by one frame.
func (o *Object) Advance() {
	if o.Spin {
		o.rotation += RotationStep
	}
}

// Transform returns the model matrix translate * rotateY * scale.
func (o *Object) Transform() mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	if o.rotation != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.rotation)))
	}
	return m.Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

// RenderWorld draws objects in order. The program must already be bound
// through b.Bind for this frame.
func RenderWorld(b *Binder, p *shader.Program, objects []*Object) {
	for _, o := range objects {
		b.SetModel(p, o.Transform())
		b.BindMaterial(p, o.Material)
		o.Model.Render(b.dev)
	}
}
