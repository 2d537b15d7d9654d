// Package framebuffer provides the offscreen render target the scene is captured into.
package framebuffer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/logger"
)

// ConfigurationError reports attachments that cannot form a complete target.
type ConfigurationError struct {
	Color        gfx.Attachment
	DepthStencil gfx.Attachment
	Status       uint32 // device completeness status, 0 if rejected before allocation
	Reason       string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("framebuffer configuration: %s (color %s %dx%d, depth-stencil %s %dx%d)",
		e.Reason,
		e.Color.Format, e.Color.Width, e.Color.Height,
		e.DepthStencil.Format, e.DepthStencil.Width, e.DepthStencil.Height)
	if e.Status != 0 {
		msg += fmt.Sprintf(" status 0x%x", e.Status)
	}
	return msg
}

// Framebuffer manages an offscreen render target with a color texture and
// a depth+stencil renderbuffer. Its size is fixed at creation.
type Framebuffer struct {
	dev    gfx.Device
	target gfx.Target
	width  int32
	height int32

	// ClearColor is the background both targets are cleared to.
	ClearColor gfx.Color
}

// Attachments returns the standard attachment pair for a viewport:
// RGBA8 color and DEPTH24_STENCIL8.
func Attachments(width, height int32) (color, depthStencil gfx.Attachment) {
	return gfx.Attachment{Format: gfx.FormatRGBA8, Width: width, Height: height},
		gfx.Attachment{Format: gfx.FormatDepth24Stencil8, Width: width, Height: height}
}

// New validates the attachments and allocates the target.
// Any failure is returned as *ConfigurationError.
func New(dev gfx.Device, color, depthStencil gfx.Attachment) (*Framebuffer, error) {
	if reason := validate(color, depthStencil); reason != "" {
		return nil, &ConfigurationError{Color: color, DepthStencil: depthStencil, Reason: reason}
	}

	target, status := dev.CreateTarget(color, depthStencil)
	if status != gfx.StatusComplete {
		dev.DeleteTarget(target)
		return nil, &ConfigurationError{
			Color:        color,
			DepthStencil: depthStencil,
			Status:       status,
			Reason:       "framebuffer incomplete",
		}
	}

	logger.Named("framebuffer").Debug("offscreen target created",
		zap.Uint32("fbo", target.FBO),
		zap.Int32("width", color.Width),
		zap.Int32("height", color.Height),
		zap.Stringer("color", color.Format),
		zap.Stringer("depthStencil", depthStencil.Format))

	return &Framebuffer{
		dev:        dev,
		target:     target,
		width:      color.Width,
		height:     color.Height,
		ClearColor: gfx.Color{0, 0, 0, 1},
	}, nil
}

// validate returns why the attachment pair is unusable, or "".
func validate(color, depthStencil gfx.Attachment) string {
	switch {
	case color.Width <= 0 || color.Height <= 0:
		return "color attachment has non-positive size"
	case depthStencil.Width <= 0 || depthStencil.Height <= 0:
		return "depth-stencil attachment has non-positive size"
	case !color.Format.IsColor():
		return "unsupported color format"
	case depthStencil.Format != gfx.FormatDepth24Stencil8 && depthStencil.Format != gfx.FormatDepth24:
		return "unsupported depth-stencil format"
	case color.Width != depthStencil.Width || color.Height != depthStencil.Height:
		return "attachment sizes differ"
	}
	return ""
}

// BeginCapture makes this target the draw destination, clears it and
// enables depth testing.
func (fb *Framebuffer) BeginCapture() {
	fb.dev.BindFramebuffer(fb.target.FBO)
	fb.dev.Viewport(0, 0, fb.width, fb.height)
	fb.dev.Clear(fb.ClearColor)
	fb.dev.SetDepthTest(true)
}

// EndCapture restores and clears the default target and disables depth
// testing. The color texture is readable until the next BeginCapture.
func (fb *Framebuffer) EndCapture() {
	fb.dev.BindFramebuffer(0)
	fb.dev.Viewport(0, 0, fb.width, fb.height)
	fb.dev.Clear(fb.ClearColor)
	fb.dev.SetDepthTest(false)
}

// ColorTexture returns the color attachment texture ID.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.target.Color
}

// FBO returns the underlying framebuffer object ID.
func (fb *Framebuffer) FBO() uint32 {
	return fb.target.FBO
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// ReadPixels reads the color attachment as RGBA rows, bottom row first.
func (fb *Framebuffer) ReadPixels() []byte {
	return fb.dev.ReadPixels(fb.target.FBO, fb.width, fb.height)
}

// Destroy releases the device resources.
func (fb *Framebuffer) Destroy() {
	if fb.target.FBO == 0 {
		return
	}
	fb.dev.DeleteTarget(fb.target)
	fb.target = gfx.Target{}
}
