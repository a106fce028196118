package renderer

import (
	"fmt"
	"runtime"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	Seed            uint64 // Root of every per-sample random stream
	DisableJitter   bool   // Sample pixel corners instead of random sub-pixel offsets
	NumWorkers      int    // Number of parallel workers (0 = use CPU count)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        50,
	}
}

// Validate checks the configuration before a render starts
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.MaxDepth)
	}
	return nil
}

// workers resolves the configured worker count
func (c SamplingConfig) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// ImageHeight derives the image height from width and aspect ratio,
// truncating toward zero.
func ImageHeight(width int, aspectRatio float64) int {
	return int(float64(width) / aspectRatio)
}
