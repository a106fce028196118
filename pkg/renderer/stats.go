package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width
	Height          int           // Image height
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Samples taken per pixel
	TotalSamples    int           // Total number of samples taken
	TotalBounces    int           // Scattering events across all paths
	EscapedPaths    int           // Paths that reached the background
	AbsorbedPaths   int           // Paths ended by a material
	ExhaustedPaths  int           // Paths cut off by the depth limit
	Workers         int           // Number of parallel workers
	Duration        time.Duration // Wall time of the render
}

// RaysTraced returns camera rays plus scattered rays
func (s RenderStats) RaysTraced() int {
	return s.TotalSamples + s.TotalBounces
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// addPath records one finished sample path
func (s *RenderStats) addPath(result integrator.PathResult) {
	s.TotalSamples++
	s.TotalBounces += result.Bounces
	switch result.Outcome {
	case integrator.PathEscaped:
		s.EscapedPaths++
	case integrator.PathAbsorbed:
		s.AbsorbedPaths++
	default:
		s.ExhaustedPaths++
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// 8-bit image, in [0, 1].
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			r := float64(c.R) / 255.0
			g := float64(c.G) / 255.0
			b := float64(c.B) / 255.0
			total += 0.2126*r + 0.7152*g + 0.0722*b
		}
	}

	return total / float64(pixels)
}
