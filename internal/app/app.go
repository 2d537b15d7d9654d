// Package app implements the frame loop and startup wiring.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/assets"
	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/input"
	"github.com/Faultbox/lumen/internal/engine/screenshot"
	"github.com/Faultbox/lumen/internal/engine/window"
	"github.com/Faultbox/lumen/internal/logger"
)

// Title is the window title.
const Title = "Lumen"

// State is the frame loop state.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "closing"
}

// App owns the window and drives frames until the window closes.
type App struct {
	config *config.Config
	state  State

	window      *window.Window
	input       *input.Input
	assets      *assets.Manager
	programs    *Programs
	frame       *FrameContext
	screenshots *screenshot.Capture
}

// New creates the window and GL context, compiles shaders, loads the scene
// and allocates the offscreen target. Errors here are fatal.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("postProcess", cfg.PostProcess.Enabled),
	)

	bindings, err := input.BindingsFromConfig(cfg.Input.Keys)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	a := &App{
		config:      cfg,
		input:       input.New(bindings),
		assets:      assets.NewManager(),
		screenshots: screenshot.New(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		GrabMouse:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Device AFTER window, since OpenGL context must exist
	dev, err := gfx.NewGL()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.programs, err = LoadPrograms(cfg.Shaders.Dir, cfg.PostProcess.Enabled)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.assets.AddRoot(cfg.Scene.AssetDir); err != nil {
		a.Close()
		return nil, &assets.LoadError{Path: cfg.Scene.AssetDir, Err: err}
	}

	width, height := a.window.DrawableSize()
	a.frame, err = NewFrameContext(dev, cfg, a.assets, a.programs, width, height)
	if err != nil {
		a.Close()
		return nil, err
	}

	log.Info("initialized successfully")
	return a, nil
}

// State returns the loop state.
func (a *App) State() State {
	return a.state
}

// Run drives frames until the window closes or Quit is pressed.
func (a *App) Run() error {
	log := logger.Named("app")
	a.state = Running

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	log.Info("starting frame loop")

	for a.state == Running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.state = Closing
			break
		}
		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				log.Debug("window resized, offscreen target keeps its size",
					zap.Int("width", event.Width), zap.Int("height", event.Height))
			}
		}

		actions := a.input.State()
		if actions.Held(input.Quit) {
			a.state = Closing
			break
		}

		dx, dy := a.input.MouseDelta()
		a.frame.Frame(float32(dt), actions, dx, dy)

		if a.input.Pressed(input.Screenshot) {
			a.takeScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	log.Info("frame loop stopped", zap.Stringer("state", a.state))
	return nil
}

func (a *App) takeScreenshot() {
	path, err := a.screenshots.Take(a.frame.Snapshot())
	if err != nil {
		logger.Named("app").Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Named("app").Info("screenshot saved", zap.String("path", path))
}

// Close releases everything New created.
func (a *App) Close() {
	logger.Named("app").Info("closing")
	a.state = Closing

	if a.frame != nil {
		a.frame.Release()
		a.frame = nil
	}
	if a.programs != nil {
		a.programs.Delete()
		a.programs = nil
	}
	a.assets.Close()
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
