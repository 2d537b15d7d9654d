// Package lighting holds the Blinn-Phong light model: one directional light
// and fixed-capacity sets of point and spot lights.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader-side array capacities. Lights past these are never uploaded.
const (
	MaxPointLights = 3
	MaxSpotLights  = 3
)

// Light is the part shared by every light type.
type Light struct {
	Color            mgl32.Vec3
	AmbientIntensity float32
	DiffuseIntensity float32
}

// DirectionalLight lights the whole scene from one direction.
type DirectionalLight struct {
	Light
	Direction mgl32.Vec3
}

// PointLight radiates from a position with quadratic falloff:
// 1 / (Exponent*d² + Linear*d + Constant).
type PointLight struct {
	Light
	Position mgl32.Vec3
	Constant float32
	Linear   float32
	Exponent float32
}

// SpotLight is a point light restricted to a cone around Direction.
// Edge is the cosine of the cone's half angle.
type SpotLight struct {
	PointLight
	Direction mgl32.Vec3
	Edge      float32
}

// NewSpotLight builds a spot light from a cone half angle in degrees.
func NewSpotLight(base PointLight, direction mgl32.Vec3, edgeDegrees float32) SpotLight {
	return SpotLight{
		PointLight: base,
		Direction:  normalize(direction),
		Edge:       float32(gomath.Cos(float64(mgl32.DegToRad(edgeDegrees)))),
	}
}

// SetFlash moves the light and re-aims it.
func (s *SpotLight) SetFlash(position, direction mgl32.Vec3) {
	s.Position = position
	s.Direction = normalize(direction)
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// activeCount clamps a declared count to [0, capacity].
func activeCount(count, capacity int) int {
	if count < 0 {
		return 0
	}
	if count > capacity {
		return capacity
	}
	return count
}
