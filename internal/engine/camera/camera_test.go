package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, epsilon)
}

func TestNewFlyCameraDefaults(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{1, 2, 3})

	if c.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("unexpected position %v", c.Position())
	}
	if !vecNear(c.Direction(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("expected to look down -Z, got %v", c.Direction())
	}
	if !vecNear(c.Right(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("expected right +X, got %v", c.Right())
	}
	if c.MoveSpeed != 5 || c.TurnSpeed != 0.2 {
		t.Errorf("unexpected speeds move=%f turn=%f", c.MoveSpeed, c.TurnSpeed)
	}
}

func TestHandleMovement(t *testing.T) {
	tests := []struct {
		name           string
		forward, right float32
		dt             float32
		want           mgl32.Vec3
	}{
		{name: "forward one second", forward: 1, dt: 1, want: mgl32.Vec3{0, 0, -5}},
		{name: "back half second", forward: -1, dt: 0.5, want: mgl32.Vec3{0, 0, 2.5}},
		{name: "strafe right", right: 1, dt: 0.2, want: mgl32.Vec3{1, 0, 0}},
		{name: "strafe left", right: -1, dt: 0.2, want: mgl32.Vec3{-1, 0, 0}},
		{name: "no time", forward: 1, right: 1, dt: 0, want: mgl32.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFlyCamera(mgl32.Vec3{})
			c.HandleMovement(tt.forward, tt.right, tt.dt)
			if !vecNear(c.Position(), tt.want) {
				t.Errorf("position = %v, want %v", c.Position(), tt.want)
			}
		})
	}
}

func TestHandleMouseTurns(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})

	// 450 px * 0.2 = 90 degrees of yaw: -90 -> 0 looks down +X
	c.HandleMouse(450, 0)
	if !vecNear(c.Direction(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("expected to look down +X, got %v", c.Direction())
	}

	// moving the mouse up pitches up
	c.HandleMouse(0, -50)
	if c.Pitch != 10 {
		t.Errorf("expected pitch 10, got %f", c.Pitch)
	}
	if c.Direction().Y() <= 0 {
		t.Errorf("expected upward look, got %v", c.Direction())
	}
}

func TestHandleMouseClampsPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})

	c.HandleMouse(0, -10000)
	if c.Pitch != 89 {
		t.Errorf("expected pitch clamped to 89, got %f", c.Pitch)
	}
	c.HandleMouse(0, 10000)
	if c.Pitch != -89 {
		t.Errorf("expected pitch clamped to -89, got %f", c.Pitch)
	}

	// the basis stays well defined near the poles
	if l := c.Right().Len(); l < 1-epsilon || l > 1+epsilon {
		t.Errorf("right vector not normalized: %v", c.Right())
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{3, -2, 7})
	c.HandleMouse(123, 45)

	eye := c.ViewMatrix().Mul4x1(c.Position().Vec4(1))
	if !vecNear(eye.Vec3(), mgl32.Vec3{}) {
		t.Errorf("expected eye at view-space origin, got %v", eye)
	}

	ahead := c.Position().Add(c.Direction())
	p := c.ViewMatrix().Mul4x1(ahead.Vec4(1))
	if !vecNear(p.Vec3(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("expected look direction to map to -Z, got %v", p)
	}
}
