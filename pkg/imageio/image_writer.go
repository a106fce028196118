package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ImageWriter collects rendered pixels into an in-memory image
type ImageWriter struct {
	img *image.RGBA
}

// NewImageWriter creates an image of the given size
func NewImageWriter(width, height int) (*ImageWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &ImageWriter{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// WritePixel sets one pixel. Pixels may arrive in any order.
func (iw *ImageWriter) WritePixel(x, y int, c color.RGBA) error {
	if !(image.Point{X: x, Y: y}).In(iw.img.Rect) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	iw.img.SetRGBA(x, y, c)
	return nil
}

// Image returns the collected image
func (iw *ImageWriter) Image() *image.RGBA {
	return iw.img
}

type multiWriter struct {
	writers []renderer.PixelWriter
}

// MultiWriter duplicates every pixel to all writers, stopping at the first error
func MultiWriter(writers ...renderer.PixelWriter) renderer.PixelWriter {
	return &multiWriter{writers: append([]renderer.PixelWriter(nil), writers...)}
}

func (m *multiWriter) WritePixel(x, y int, c color.RGBA) error {
	for _, w := range m.writers {
		if err := w.WritePixel(x, y, c); err != nil {
			return err
		}
	}
	return nil
}
