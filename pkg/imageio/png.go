package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path, creating parent directories as needed
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WritePNG(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return file.Close()
}

// Thumbnail scales img to the given width, preserving its aspect ratio
func Thumbnail(img image.Image, width int) (image.Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThumbnail, width)
	}
	return resize.Resize(uint(width), 0, img, resize.Lanczos3), nil
}

// SaveThumbnail writes a resized PNG copy of img to path
func SaveThumbnail(path string, img image.Image, width int) error {
	thumb, err := Thumbnail(img, width)
	if err != nil {
		return err
	}
	return SavePNG(path, thumb)
}
