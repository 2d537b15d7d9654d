package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/lighting"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/shader"
)

// Clip planes of the scene projection.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// FlashlightOffset is where spot light 0 sits relative to the camera.
var FlashlightOffset = mgl32.Vec3{0, -0.3, 0}

// Viewer is the camera state read once per frame.
type Viewer interface {
	Position() mgl32.Vec3
	Direction() mgl32.Vec3
	ViewMatrix() mgl32.Mat4
}

// Binder writes per-frame and per-draw uniform state for the scene program.
type Binder struct {
	dev        gfx.Device
	projection mgl32.Mat4
}

// NewBinder computes the session projection from a vertical field of view
// in degrees and the viewport aspect ratio.
func NewBinder(dev gfx.Device, fovDegrees, aspect float32) *Binder {
	return &Binder{
		dev:        dev,
		projection: mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, NearPlane, FarPlane),
	}
}

// Projection returns the projection matrix uploaded every frame.
func (b *Binder) Projection() mgl32.Mat4 {
	return b.projection
}

// Bind activates the program and uploads camera and light state.
// Spot light 0 is moved to the camera and aimed along its view first.
// Only the first min(Count, capacity) lights of each set are uploaded and
// the count uniforms are clamped to match.
func (b *Binder) Bind(p *shader.Program, cam Viewer, rig *lighting.Rig) {
	dev := b.dev

	dev.UseProgram(p.ID)
	dev.UniformMatrix4(p.Location(uniformProjection), b.projection)
	dev.UniformMatrix4(p.Location(uniformView), cam.ViewMatrix())
	dev.Uniform3(p.Location(uniformEyePosition), cam.Position())
	dev.Uniform1i(p.Location(uniformTexture), 0)

	b.bindDirectional(p, rig.Directional)

	points := rig.Points.Active()
	dev.Uniform1i(p.Location(uniformPointLightCount), int32(len(points)))
	for i := range points {
		b.bindPoint(p, pointUniforms[i], points[i])
	}

	rig.Spots.Lights[0].SetFlash(cam.Position().Add(FlashlightOffset), cam.Direction())

	spots := rig.Spots.Active()
	dev.Uniform1i(p.Location(uniformSpotLightCount), int32(len(spots)))
	for i := range spots {
		names := spotUniforms[i]
		b.bindPoint(p, names.pointNames, spots[i].PointLight)
		dev.Uniform3(p.Location(names.direction), spots[i].Direction)
		dev.Uniform1f(p.Location(names.edge), spots[i].Edge)
	}
}

// BindMaterial uploads the coefficients for the next draw.
func (b *Binder) BindMaterial(p *shader.Program, m material.Material) {
	b.dev.Uniform1f(p.Location(uniformSpecularIntensity), m.SpecularIntensity())
	b.dev.Uniform1f(p.Location(uniformShininess), m.Shininess())
}

// SetModel uploads the model matrix for the next draw.
func (b *Binder) SetModel(p *shader.Program, model mgl32.Mat4) {
	b.dev.UniformMatrix4(p.Location(uniformModel), model)
}

func (b *Binder) bindLight(p *shader.Program, names lightNames, l lighting.Light) {
	b.dev.Uniform3(p.Location(names.colour), l.Color)
	b.dev.Uniform1f(p.Location(names.ambient), l.AmbientIntensity)
	b.dev.Uniform1f(p.Location(names.diffuse), l.DiffuseIntensity)
}

func (b *Binder) bindDirectional(p *shader.Program, d lighting.DirectionalLight) {
	b.bindLight(p, directionalUniforms.lightNames, d.Light)
	b.dev.Uniform3(p.Location(directionalUniforms.direction), d.Direction)
}

func (b *Binder) bindPoint(p *shader.Program, names pointNames, l lighting.PointLight) {
	b.bindLight(p, names.lightNames, l.Light)
	b.dev.Uniform3(p.Location(names.position), l.Position)
	b.dev.Uniform1f(p.Location(names.constant), l.Constant)
	b.dev.Uniform1f(p.Location(names.linear), l.Linear)
	b.dev.Uniform1f(p.Location(names.exponent), l.Exponent)
}
