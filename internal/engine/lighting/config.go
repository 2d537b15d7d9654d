package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/logger"
)

// FromConfig builds a light rig. Point and spot lists longer than the
// shader capacity are truncated to their first entries.
func FromConfig(cfg config.LightsConfig) *Rig {
	rig := &Rig{
		Directional: DirectionalLight{
			Light:     light(cfg.Directional.Color, cfg.Directional.Ambient, cfg.Directional.Diffuse),
			Direction: normalize(mgl32.Vec3(cfg.Directional.Direction)),
		},
	}

	points := make([]PointLight, 0, len(cfg.Points))
	for _, p := range cfg.Points {
		points = append(points, pointLight(p))
	}
	if dropped := rig.Points.SetLights(points); dropped > 0 {
		logger.Warn("point lights over capacity, extra lights ignored",
			zap.Int("configured", len(points)),
			zap.Int("capacity", MaxPointLights),
		)
	}

	spots := make([]SpotLight, 0, len(cfg.Spots))
	for _, s := range cfg.Spots {
		spots = append(spots, NewSpotLight(pointLight(s.PointLightConfig), mgl32.Vec3(s.Direction), s.EdgeDegrees))
	}
	if dropped := rig.Spots.SetLights(spots); dropped > 0 {
		logger.Warn("spot lights over capacity, extra lights ignored",
			zap.Int("configured", len(spots)),
			zap.Int("capacity", MaxSpotLights),
		)
	}

	return rig
}

func light(color [3]float32, ambient, diffuse float32) Light {
	return Light{Color: mgl32.Vec3(color), AmbientIntensity: ambient, DiffuseIntensity: diffuse}
}

func pointLight(p config.PointLightConfig) PointLight {
	return PointLight{
		Light:    light(p.Color, p.Ambient, p.Diffuse),
		Position: mgl32.Vec3(p.Position),
		Constant: p.Attenuation[0],
		Linear:   p.Attenuation[1],
		Exponent: p.Attenuation[2],
	}
}
