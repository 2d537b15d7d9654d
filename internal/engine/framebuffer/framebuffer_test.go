package framebuffer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Faultbox/lumen/internal/engine/gfx"
	"github.com/Faultbox/lumen/internal/engine/gfx/gfxtest"
)

func TestNewRejectsInvalidAttachments(t *testing.T) {
	rgba := func(w, h int32) gfx.Attachment { return gfx.Attachment{Format: gfx.FormatRGBA8, Width: w, Height: h} }
	ds := func(w, h int32) gfx.Attachment {
		return gfx.Attachment{Format: gfx.FormatDepth24Stencil8, Width: w, Height: h}
	}

	tests := []struct {
		name         string
		color, depth gfx.Attachment
		reason       string
	}{
		{
			name:  "mismatched sizes",
			color: rgba(100, 100), depth: ds(200, 200),
			reason: "sizes differ",
		},
		{
			name:  "zero width",
			color: rgba(0, 100), depth: ds(0, 100),
			reason: "non-positive",
		},
		{
			name:  "negative depth height",
			color: rgba(100, 100), depth: ds(100, -1),
			reason: "non-positive",
		},
		{
			name:  "depth format as color",
			color: gfx.Attachment{Format: gfx.FormatDepth24, Width: 64, Height: 64}, depth: ds(64, 64),
			reason: "color format",
		},
		{
			name:  "color format as depth",
			color: rgba(64, 64), depth: rgba(64, 64),
			reason: "depth-stencil format",
		},
		{
			name:  "missing depth",
			color: rgba(64, 64), depth: gfx.Attachment{Width: 64, Height: 64},
			reason: "depth-stencil format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := gfxtest.NewRecorder()
			fb, err := New(dev, tt.color, tt.depth)
			if fb != nil {
				t.Error("expected nil framebuffer on error")
			}

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
			}
			if !strings.Contains(cfgErr.Reason, tt.reason) {
				t.Errorf("expected reason containing %q, got %q", tt.reason, cfgErr.Reason)
			}
			if cfgErr.Status != 0 {
				t.Errorf("expected rejection before allocation, got status 0x%x", cfgErr.Status)
			}
			if len(dev.Calls) != 0 {
				t.Errorf("expected no device calls, got %v", dev.Ops())
			}
		})
	}
}

func TestNewMismatchIsDeterministic(t *testing.T) {
	color := gfx.Attachment{Format: gfx.FormatRGBA8, Width: 100, Height: 100}
	depth := gfx.Attachment{Format: gfx.FormatDepth24Stencil8, Width: 200, Height: 200}

	for i := 0; i < 3; i++ {
		_, err := New(gfxtest.NewRecorder(), color, depth)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("attempt %d: expected *ConfigurationError, got %v", i, err)
		}
		if !strings.Contains(err.Error(), "100x100") || !strings.Contains(err.Error(), "200x200") {
			t.Errorf("expected both sizes in message, got %q", err.Error())
		}
	}
}

func TestNewIncompleteTarget(t *testing.T) {
	dev := gfxtest.NewRecorder()
	dev.TargetStatus = 0x8CD6 // incomplete attachment

	color, depth := Attachments(320, 240)
	_, err := New(dev, color, depth)

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if cfgErr.Status != 0x8CD6 {
		t.Errorf("expected status 0x8CD6, got 0x%x", cfgErr.Status)
	}
	if len(dev.Deleted) != 1 {
		t.Errorf("expected partial target to be deleted, got %v", dev.Deleted)
	}
}

func TestCaptureSequence(t *testing.T) {
	dev := gfxtest.NewRecorder()
	color, depth := Attachments(320, 240)
	fb, err := New(dev, color, depth)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	fb.ClearColor = gfx.Color{0.1, 0.2, 0.3, 1}
	dev.Reset()

	fb.BeginCapture()
	if dev.Framebuffer() != fb.FBO() {
		t.Errorf("expected offscreen FBO bound, got %d", dev.Framebuffer())
	}
	if !dev.DepthTest() {
		t.Error("expected depth test enabled while capturing")
	}

	fb.EndCapture()
	if dev.Framebuffer() != 0 {
		t.Errorf("expected default target bound, got %d", dev.Framebuffer())
	}
	if dev.DepthTest() {
		t.Error("expected depth test disabled after capture")
	}

	want := []string{
		"BindFramebuffer", "Viewport", "Clear", "SetDepthTest",
		"BindFramebuffer", "Viewport", "Clear", "SetDepthTest",
	}
	if got := dev.Ops(); !reflect.DeepEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if v := dev.Calls[1].Value; v != [4]int32{0, 0, 320, 240} {
		t.Errorf("unexpected viewport %v", v)
	}
	if c := dev.Calls[2].Value; c != fb.ClearColor {
		t.Errorf("expected clear to %v, got %v", fb.ClearColor, c)
	}
}

func TestReadPixelsAndDestroy(t *testing.T) {
	dev := gfxtest.NewRecorder()
	color, depth := Attachments(4, 2)
	fb, err := New(dev, color, depth)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if px := fb.ReadPixels(); len(px) != 4*2*4 {
		t.Errorf("expected %d bytes, got %d", 4*2*4, len(px))
	}
	if w, h := fb.Size(); w != 4 || h != 2 {
		t.Errorf("unexpected size %dx%d", w, h)
	}
	if fb.ColorTexture() == 0 {
		t.Error("expected a color texture")
	}

	fb.Destroy()
	fb.Destroy()
	if len(dev.Deleted) != 1 {
		t.Errorf("expected exactly one delete, got %v", dev.Deleted)
	}
}
