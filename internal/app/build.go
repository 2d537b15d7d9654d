package app

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/assets"
	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/engine/camera"
	"github.com/Faultbox/lumen/internal/engine/framebuffer"
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/lighting"
	"github.com/Faultbox/lumen/internal/engine/material"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/engine/renderer"
	"github.com/Faultbox/lumen/internal/engine/shader"
	"github.com/Faultbox/lumen/internal/engine/shaders"
	"github.com/Faultbox/lumen/internal/logger"
)

// ModelLoader loads a model by asset path.
type ModelLoader interface {
	LoadModel(path string) (*model.Model, error)
}

// Programs are the compiled shader programs a frame uses.
type Programs struct {
	Scene   *shader.Program
	Effects map[renderer.Effect]*shader.Program
}

// Delete releases every program.
func (p *Programs) Delete() {
	if p.Scene != nil {
		p.Scene.Delete()
	}
	for _, e := range p.Effects {
		e.Delete()
	}
}

// shaderSource names a stage's embedded source and its file name on disk.
type shaderSource struct {
	file     string
	embedded string
}

var (
	sceneVertex   = shaderSource{"scene.vert", shaders.SceneVertexShader}
	sceneFragment = shaderSource{"scene.frag", shaders.SceneFragmentShader}
	screenVertex  = shaderSource{"screen.vert", shaders.ScreenVertexShader}

	effectFragments = map[renderer.Effect]shaderSource{
		renderer.Passthrough: {"passthrough.frag", shaders.PassthroughFragmentShader},
		renderer.Sharpen:     {"sharpen.frag", shaders.SharpenFragmentShader},
		renderer.BoxBlur:     {"boxblur.frag", shaders.BoxBlurFragmentShader},
	}
)

// LoadPrograms compiles the scene and post-process programs, from dir when
// set, otherwise from the embedded sources. A compile or link failure is
// returned as *shader.CompileError.
func LoadPrograms(dir string, postProcess bool) (*Programs, error) {
	compile := func(name string, vs, fs shaderSource, uniforms []string) (*shader.Program, error) {
		if dir == "" {
			return shader.Compile(name, vs.embedded, fs.embedded, uniforms)
		}
		return shader.Load(name, filepath.Join(dir, vs.file), filepath.Join(dir, fs.file), uniforms)
	}

	progs := &Programs{Effects: make(map[renderer.Effect]*shader.Program)}

	var err error
	progs.Scene, err = compile("scene", sceneVertex, sceneFragment, renderer.SceneUniforms())
	if err != nil {
		return nil, err
	}
	if !postProcess {
		return progs, nil
	}

	for effect, fs := range effectFragments {
		p, err := compile(effect.String(), screenVertex, fs, renderer.ScreenUniforms())
		if err != nil {
			progs.Delete()
			return nil, err
		}
		progs.Effects[effect] = p
	}
	return progs, nil
}

// NewFrameContext builds the scene described by cfg for a width x height viewport.
// Models are uploaded to dev; any failure aborts startup.
func NewFrameContext(dev gfx.Device, cfg *config.Config, loader ModelLoader, progs *Programs, width, height int32) (*FrameContext, error) {
	log := logger.Named("app")

	fc := &FrameContext{
		Device:     dev,
		Program:    progs.Scene,
		Lights:     lighting.FromConfig(cfg.Scene.Lights),
		Binder:     renderer.NewBinder(dev, cfg.Graphics.FOV, float32(width)/float32(height)),
		ClearColor: gfx.Color(cfg.Graphics.ClearColor),
		Width:      width,
		Height:     height,
	}

	fc.Camera = camera.NewFlyCamera(mgl32.Vec3{0, 0, 0})
	if cfg.Input.MoveSpeed > 0 {
		fc.Camera.MoveSpeed = cfg.Input.MoveSpeed
	}
	if cfg.Input.MouseSensitivity > 0 {
		fc.Camera.TurnSpeed = cfg.Input.MouseSensitivity
	}

	for _, oc := range cfg.Scene.Objects {
		obj, err := newObject(dev, cfg, loader, oc)
		if err != nil {
			fc.Release()
			return nil, err
		}
		fc.Objects = append(fc.Objects, obj)
	}

	if cfg.PostProcess.Enabled {
		color, depthStencil := framebuffer.Attachments(width, height)
		target, err := framebuffer.New(dev, color, depthStencil)
		if err != nil {
			fc.Release()
			return nil, err
		}
		target.ClearColor = fc.ClearColor
		fc.Target = target

		fc.Compositor, err = renderer.NewCompositor(dev, progs.Effects)
		if err != nil {
			fc.Release()
			return nil, err
		}
	}

	log.Info("scene ready",
		zap.Int("objects", len(fc.Objects)),
		zap.Int("pointLights", len(fc.Lights.Points.Active())),
		zap.Int("spotLights", len(fc.Lights.Spots.Active())),
		zap.Bool("postProcess", fc.PostProcessing()),
		zap.Int32("width", width),
		zap.Int32("height", height))

	return fc, nil
}

func newObject(dev gfx.Device, cfg *config.Config, loader ModelLoader, oc config.ObjectConfig) (*renderer.Object, error) {
	mc, ok := cfg.Scene.Materials[oc.Material]
	if !ok {
		return nil, fmt.Errorf("object %s: unknown material %q", oc.Name, oc.Material)
	}

	mdl, err := loader.LoadModel(oc.Model)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", oc.Name, err)
	}
	if err := mdl.Upload(dev); err != nil {
		return nil, fmt.Errorf("object %s: %w", oc.Name, &assets.LoadError{Path: oc.Model, Err: err})
	}

	return &renderer.Object{
		Name:     oc.Name,
		Model:    mdl,
		Material: material.New(mc.SpecularIntensity, mc.Shininess),
		Position: mgl32.Vec3(oc.Position),
		Scale:    mgl32.Vec3(oc.Scale),
		Spin:     oc.Spin,
	}, nil
}
