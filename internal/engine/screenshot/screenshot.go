// Package screenshot writes captures of the offscreen target to PNG files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/lumen/internal/engine/texture"
)

// Source is a render target that can be read back.
type Source interface {
	Size() (width, height int32)
	ReadPixels() []byte // RGBA, bottom row first
}

// Capture writes screenshots into a directory.
type Capture struct {
	outputDir string
	prefix    string

	now func() time.Time
}

// New creates a capture handler.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Take reads the source and saves it. Returns the file written.
func (c *Capture) Take(src Source) (string, error) {
	w, h := src.Size()
	return c.SavePixels(src.ReadPixels(), int(w), int(h))
}

// SavePixels saves bottom-up RGBA pixel rows as a PNG.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	texture.FlipVertical(img)

	return c.SaveImage(img)
}

// SaveImage saves an image under the next free timestamped name.
func (c *Capture) SaveImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename, file, err := c.create()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// create opens a new file, adding a counter when the timestamp is taken.
func (c *Capture) create() (string, *os.File, error) {
	base := fmt.Sprintf("%s_%s", c.prefix, c.now().Format("2006-01-02_15-04-05"))
	for i := 0; i < 100; i++ {
		name := base + ".png"
		if i > 0 {
			name = fmt.Sprintf("%s_%d.png", base, i)
		}
		path := filepath.Join(c.outputDir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("creating file: %w", err)
		}
		return path, file, nil
	}
	return "", nil, fmt.Errorf("too many screenshots named %s", base)
}
