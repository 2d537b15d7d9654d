// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all demo settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	PostProcess PostProcessConfig `yaml:"postprocess"`
	Input       InputConfig       `yaml:"input"`
	Scene       SceneConfig       `yaml:"scene"`
	Shaders     ShaderConfig      `yaml:"shaders"`
	Screenshot  ScreenshotConfig  `yaml:"screenshot"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FOV        float32    `yaml:"fov"` // vertical, degrees
	ClearColor [4]float32 `yaml:"clear_color"`
}

// PostProcessConfig toggles the offscreen compositing stage.
type PostProcessConfig struct {
	Enabled bool `yaml:"enabled"`
}

// InputConfig maps actions to SDL key names and sets look/move tuning.
type InputConfig struct {
	Keys             map[string]string `yaml:"keys"` // action name -> SDL key name
	MouseSensitivity float32           `yaml:"mouse_sensitivity"`
	MoveSpeed        float32           `yaml:"move_speed"`
}

// SceneConfig describes the static world.
type SceneConfig struct {
	AssetDir  string                    `yaml:"asset_dir"`
	Materials map[string]MaterialConfig `yaml:"materials"`
	Objects   []ObjectConfig            `yaml:"objects"`
	Lights    LightsConfig              `yaml:"lights"`
}

// MaterialConfig holds Blinn-Phong specular coefficients.
type MaterialConfig struct {
	SpecularIntensity float32 `yaml:"specular_intensity"`
	Shininess         float32 `yaml:"shininess"`
}

// ObjectConfig places one model in the world.
type ObjectConfig struct {
	Name     string     `yaml:"name"`
	Model    string     `yaml:"model"`
	Material string     `yaml:"material"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale"`
	Spin     bool       `yaml:"spin"`
}

// LightsConfig holds the light rig.
type LightsConfig struct {
	Directional DirectionalLightConfig `yaml:"directional"`
	Points      []PointLightConfig     `yaml:"points"`
	Spots       []SpotLightConfig      `yaml:"spots"`
}

// DirectionalLightConfig describes the single directional light.
type DirectionalLightConfig struct {
	Color     [3]float32 `yaml:"color"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
	Direction [3]float32 `yaml:"direction"`
}

// PointLightConfig describes one point light.
type PointLightConfig struct {
	Color       [3]float32 `yaml:"color"`
	Ambient     float32    `yaml:"ambient"`
	Diffuse     float32    `yaml:"diffuse"`
	Position    [3]float32 `yaml:"position"`
	Attenuation [3]float32 `yaml:"attenuation"` // constant, linear, exponent
}

// SpotLightConfig describes one spot light.
type SpotLightConfig struct {
	PointLightConfig `yaml:",inline"`
	Direction        [3]float32 `yaml:"direction"`
	EdgeDegrees      float32    `yaml:"edge_degrees"`
}

// ShaderConfig optionally points at GLSL sources on disk.
// An empty Dir means the embedded sources are used.
type ShaderConfig struct {
	Dir string `yaml:"dir"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in scene: a ground plane and a spinning helicopter
// lit by one directional light, three colored point lights and a flashlight.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1366,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
			ClearColor: [4]float32{0, 0, 0, 1},
		},
		PostProcess: PostProcessConfig{
			Enabled: true,
		},
		Input: InputConfig{
			Keys: map[string]string{
				"forward":        "W",
				"back":           "S",
				"left":           "A",
				"right":          "D",
				"toggle_sharpen": "1",
				"toggle_boxblur": "2",
				"screenshot":     "F12",
				"quit":           "Escape",
			},
			MouseSensitivity: 0.2,
			MoveSpeed:        5,
		},
		Scene: SceneConfig{
			AssetDir: "assets",
			Materials: map[string]MaterialConfig{
				"shiny": {SpecularIntensity: 4, Shininess: 156},
				"dull":  {SpecularIntensity: 0.3, Shininess: 4},
			},
			Objects: []ObjectConfig{
				{
					Name:     "ground",
					Model:    "models/plane.obj",
					Material: "dull",
					Position: [3]float32{0, -4, -4},
					Scale:    [3]float32{10, 10, 10},
				},
				{
					Name:     "chopper",
					Model:    "models/chopper.obj",
					Material: "shiny",
					Position: [3]float32{0, 0, -3},
					Scale:    [3]float32{0.5, 0.5, 0.5},
					Spin:     true,
				},
			},
			Lights: LightsConfig{
				Directional: DirectionalLightConfig{
					Color:     [3]float32{1, 1, 1},
					Ambient:   0.3,
					Diffuse:   0.6,
					Direction: [3]float32{0, 0, -1},
				},
				Points: []PointLightConfig{
					{Color: [3]float32{1, 0, 0}, Ambient: 10, Diffuse: 10, Position: [3]float32{-8, 0, 8}, Attenuation: [3]float32{0.3, 0.2, 0.2}},
					{Color: [3]float32{0, 1, 0}, Ambient: 10, Diffuse: 10, Position: [3]float32{0, 2, -16}, Attenuation: [3]float32{0.3, 0.2, 0.2}},
					{Color: [3]float32{0, 0, 1}, Ambient: 10, Diffuse: 10, Position: [3]float32{8, 0, 8}, Attenuation: [3]float32{0.3, 0.2, 0.2}},
				},
				Spots: []SpotLightConfig{
					{
						PointLightConfig: PointLightConfig{
							Color:       [3]float32{1, 1, 1},
							Ambient:     0,
							Diffuse:     0.5,
							Attenuation: [3]float32{1, 0, 0},
						},
						Direction:   [3]float32{0, -1, 0},
						EdgeDegrees: 20,
					},
				},
			},
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "lumen",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would make startup impossible.
// Light lists longer than the shader capacity are accepted; the renderer truncates them.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov %.1f out of range (0, 180)", c.Graphics.FOV))
	}
	for i, obj := range c.Scene.Objects {
		if obj.Model == "" {
			errs = append(errs, fmt.Errorf("scene.objects[%d] %q: missing model path", i, obj.Name))
		}
		if _, ok := c.Scene.Materials[obj.Material]; !ok {
			errs = append(errs, fmt.Errorf("scene.objects[%d] %q: unknown material %q", i, obj.Name, obj.Material))
		}
	}
	return errors.Join(errs...)
}
