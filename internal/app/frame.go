package app

import (
	"github.com/Faultbox/lumen/internal/engine/camera"
	"github.com/Faultbox/lumen/internal/engine/framebuffer"
	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/input"
	"github.com/Faultbox/lumen/internal/engine/lighting"
	"github.com/Faultbox/lumen/internal/engine/renderer"
	"github.com/Faultbox/lumen/internal/engine/screenshot"
	"github.com/Faultbox/lumen/internal/engine/shader"
)

// FrameContext holds everything a frame reads or mutates. It is built once
// at startup and only touched from the render thread.
type FrameContext struct {
	Device  gfx.Device
	Camera  *camera.FlyCamera
	Lights  *lighting.Rig
	Program *shader.Program
	Binder  *renderer.Binder
	Objects []*renderer.Object

	// Target and Compositor are nil when post-processing is disabled.
	Target     *framebuffer.Framebuffer
	Compositor *renderer.Compositor

	ClearColor gfx.Color
	Width      int32
	Height     int32
}

// PostProcessing reports whether frames go through the offscreen target.
func (fc *FrameContext) PostProcessing() bool {
	return fc.Target != nil
}

// Frame advances the camera and draws one frame to the default target.
// dt is in seconds; mouse deltas are in pixels.
func (fc *FrameContext) Frame(dt float32, actions input.ActionState, mouseDX, mouseDY float32) {
	fc.Camera.HandleMouse(mouseDX, mouseDY)
	fc.Camera.HandleMovement(
		actions.Axis(input.MoveForward, input.MoveBack),
		actions.Axis(input.MoveRight, input.MoveLeft),
		dt,
	)

	if !fc.PostProcessing() {
		fc.Device.BindFramebuffer(0)
		fc.Device.Viewport(0, 0, fc.Width, fc.Height)
		fc.Device.Clear(fc.ClearColor)
		fc.Device.SetDepthTest(true)
		fc.renderWorld()
		return
	}

	fc.Target.BeginCapture()
	fc.renderWorld()
	fc.Target.EndCapture()
	fc.Compositor.Composite(fc.Target.ColorTexture(), actions)
}

func (fc *FrameContext) renderWorld() {
	fc.Binder.Bind(fc.Program, fc.Camera, fc.Lights)
	renderer.RenderWorld(fc.Binder, fc.Program, fc.Objects)
	for _, o := range fc.Objects {
		o.Advance()
	}
}

// Snapshot returns the target screenshots are read from: the offscreen
// target when post-processing, else the default framebuffer.
func (fc *FrameContext) Snapshot() screenshot.Source {
	if fc.Target != nil {
		return fc.Target
	}
	return defaultTarget{dev: fc.Device, width: fc.Width, height: fc.Height}
}

// Release frees device resources owned by the frame.
func (fc *FrameContext) Release() {
	// shared models release once
	for _, o := range fc.Objects {
		o.Model.Release(fc.Device)
	}
	if fc.Compositor != nil {
		fc.Compositor.Release()
	}
	if fc.Target != nil {
		fc.Target.Destroy()
	}
}

type defaultTarget struct {
	dev           gfx.Device
	width, height int32
}

func (t defaultTarget) Size() (int32, int32) { return t.width, t.height }

func (t defaultTarget) ReadPixels() []byte {
	return t.dev.ReadPixels(0, t.width, t.height)
}
