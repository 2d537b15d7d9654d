// Package camera provides the first-person fly camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlyCamera moves freely through the scene, steered by keyboard and mouse.
// Angles are in degrees; yaw -90 looks down -Z.
type FlyCamera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	MoveSpeed float32 // world units per second
	TurnSpeed float32 // degrees per pixel of mouse motion

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewFlyCamera creates a camera at position with default settings.
func NewFlyCamera(position mgl32.Vec3) *FlyCamera {
	c := &FlyCamera{
		position:  position,
		worldUp:   mgl32.Vec3{0, 1, 0},
		Yaw:       -90,
		Pitch:     0,
		MinPitch:  -89,
		MaxPitch:  89,
		MoveSpeed: 5,
		TurnSpeed: 0.2,
	}
	c.update()
	return c
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera without changing its orientation.
func (c *FlyCamera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// Direction returns the normalized look direction.
func (c *FlyCamera) Direction() mgl32.Vec3 {
	return c.front
}

// Right returns the normalized right vector.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.right
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// HandleMovement moves the camera along its look and right vectors.
// forward and right are in [-1, 1]; dt is in seconds.
func (c *FlyCamera) HandleMovement(forward, right, dt float32) {
	velocity := c.MoveSpeed * dt
	c.position = c.position.
		Add(c.front.Mul(forward * velocity)).
		Add(c.right.Mul(right * velocity))
}

// HandleMouse turns the camera by relative mouse motion in pixels.
// Positive dy (mouse moved down) pitches down.
func (c *FlyCamera) HandleMouse(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	c.Yaw += dx * c.TurnSpeed
	c.Pitch -= dy * c.TurnSpeed

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}

	c.update()
}

// update recomputes the basis vectors from yaw and pitch.
func (c *FlyCamera) update() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
