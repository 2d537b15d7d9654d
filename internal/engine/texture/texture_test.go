package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// tgaHeader builds an 18-byte TGA header.
func tgaHeader(imageType byte, width, height int, bpp byte, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = bpp
	h[17] = descriptor
	return h
}

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// 2x2, bottom-left origin: file rows are bottom row first
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, red}, {1, 1, green}, {0, 0, blue}, {1, 0, white},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1, 32bpp, top-left origin: one run of 2 red, one raw blue
	data := tgaHeader(TGATypeRLE, 3, 1, 32, 0x20)
	data = append(data,
		0x81, 0, 0, 255, 128, // run of 2
		0x00, 255, 0, 0, 255, // raw 1
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, A: 128}) {
		t.Errorf("pixel 1 = %v, want translucent red", got)
	}
	if got := img.RGBAAt(2, 0); got != blue {
		t.Errorf("pixel 2 = %v, want blue", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := map[string][]byte{
		"short":       {0, 0, 2},
		"color-map":   append(func() []byte { h := tgaHeader(2, 1, 1, 24, 0); h[1] = 1; return h }(), 0, 0, 0),
		"type":        append(tgaHeader(3, 1, 1, 24, 0), 0, 0, 0),
		"depth":       append(tgaHeader(2, 1, 1, 16, 0), 0, 0),
		"truncated":   append(tgaHeader(2, 2, 2, 24, 0), 0, 0, 0),
		"rle-trailer": append(tgaHeader(10, 4, 1, 24, 0), 0x81, 0, 0, 255),
	}
	for name, data := range tests {
		if _, err := DecodeTGA(data); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDecodeFlipsRows(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, red) // top
	src.SetRGBA(0, 1, blue)

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding PNG: %v", err)
	}

	img, err := Decode("diffuse.png", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != blue {
		t.Errorf("row 0 = %v, want blue (bottom of source)", got)
	}
	if got := img.RGBAAt(0, 1); got != red {
		t.Errorf("row 1 = %v, want red (top of source)", got)
	}
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, green)
	src.SetRGBA(1, 0, white)

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("encoding BMP: %v", err)
	}

	img, err := Decode("Metal.BMP", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != green {
		t.Errorf("pixel 0 = %v, want green", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode("broken.png", []byte("not an image")); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestToRGBASubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(2, 2, red)
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	out := ToRGBA(sub)
	if out.Bounds().Min != (image.Point{}) {
		t.Errorf("expected origin-anchored image, got %v", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got != red {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
}
