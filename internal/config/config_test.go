package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1366 || cfg.Graphics.Height != 768 {
		t.Errorf("expected 1366x768, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Graphics.FOV)
	}
	if !cfg.PostProcess.Enabled {
		t.Error("expected post-processing enabled by default")
	}

	shiny := cfg.Scene.Materials["shiny"]
	if shiny.SpecularIntensity != 4 || shiny.Shininess != 156 {
		t.Errorf("unexpected shiny material %+v", shiny)
	}
	dull := cfg.Scene.Materials["dull"]
	if dull.SpecularIntensity != 0.3 || dull.Shininess != 4 {
		t.Errorf("unexpected dull material %+v", dull)
	}

	if len(cfg.Scene.Objects) != 2 {
		t.Fatalf("expected 2 scene objects, got %d", len(cfg.Scene.Objects))
	}
	if cfg.Scene.Objects[0].Name != "ground" || cfg.Scene.Objects[0].Material != "dull" {
		t.Errorf("expected dull ground first, got %+v", cfg.Scene.Objects[0])
	}
	if !cfg.Scene.Objects[1].Spin {
		t.Error("expected second object to spin")
	}

	if len(cfg.Scene.Lights.Points) != 3 {
		t.Errorf("expected 3 point lights, got %d", len(cfg.Scene.Lights.Points))
	}
	if len(cfg.Scene.Lights.Spots) != 1 || cfg.Scene.Lights.Spots[0].EdgeDegrees != 20 {
		t.Errorf("expected one 20 degree flashlight, got %+v", cfg.Scene.Lights.Spots)
	}

	if cfg.Input.Keys["toggle_sharpen"] != "1" || cfg.Input.Keys["toggle_boxblur"] != "2" {
		t.Errorf("unexpected effect keys %v", cfg.Input.Keys)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "lumen.yaml")

	yamlContent := `
graphics:
  width: 800
  height: 600
  vsync: false
  fov: 60

postprocess:
  enabled: false

input:
  keys:
    toggle_sharpen: "Q"

scene:
  asset_dir: "/data/lumen"
  materials:
    matte:
      specular_intensity: 0.1
      shininess: 2
  lights:
    points:
      - color: [1, 1, 1]
        ambient: 1
        diffuse: 1
        position: [0, 5, 0]
        attenuation: [1, 0, 0]

logging:
  level: "debug"
  log_file: "lumen.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.PostProcess.Enabled {
		t.Error("expected post-processing disabled")
	}
	if cfg.Input.Keys["toggle_sharpen"] != "Q" {
		t.Errorf("expected sharpen key Q, got %q", cfg.Input.Keys["toggle_sharpen"])
	}
	// Keys not mentioned in the file keep their defaults
	if cfg.Input.Keys["toggle_boxblur"] != "2" {
		t.Errorf("expected box blur key to keep default, got %q", cfg.Input.Keys["toggle_boxblur"])
	}
	if _, ok := cfg.Scene.Materials["matte"]; !ok {
		t.Error("expected matte material to be added")
	}
	if _, ok := cfg.Scene.Materials["shiny"]; !ok {
		t.Error("expected shiny material to survive the merge")
	}
	if len(cfg.Scene.Lights.Points) != 1 {
		t.Errorf("expected point list replaced with 1 entry, got %d", len(cfg.Scene.Lights.Points))
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "lumen.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/lumen.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Graphics.Width = 0 },
			wantErr: "invalid size",
		},
		{
			name:    "fov out of range",
			mutate:  func(c *Config) { c.Graphics.FOV = 190 },
			wantErr: "fov",
		},
		{
			name:    "unknown material",
			mutate:  func(c *Config) { c.Scene.Objects[0].Material = "chrome" },
			wantErr: "unknown material",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.Scene.Objects[1].Model = "" },
			wantErr: "missing model",
		},
		{
			name: "too many point lights is fine",
			mutate: func(c *Config) {
				for i := 0; i < 5; i++ {
					c.Scene.Lights.Points = append(c.Scene.Lights.Points, c.Scene.Lights.Points[0])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "no-postprocess flag",
			setup: func() { *flagNoPostProcess = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.PostProcess.Enabled {
					t.Error("expected post-processing disabled with no-postprocess flag")
				}
			},
			teardown: func() { *flagNoPostProcess = false },
		},
		{
			name:  "assets flag",
			setup: func() { *flagAssets = "/srv/assets" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.AssetDir != "/srv/assets" {
					t.Errorf("expected asset dir /srv/assets, got %s", cfg.Scene.AssetDir)
				}
			},
			teardown: func() { *flagAssets = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "lumen.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lumen.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1024
	cfg.Input.Keys["toggle_sharpen"] = "F1"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Graphics.Width != 1024 {
		t.Errorf("expected width 1024 after reload, got %d", loaded.Graphics.Width)
	}
	if loaded.Input.Keys["toggle_sharpen"] != "F1" {
		t.Errorf("expected sharpen key F1 after reload, got %q", loaded.Input.Keys["toggle_sharpen"])
	}
}
