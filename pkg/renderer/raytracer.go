package renderer

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// PixelWriter receives finished pixels. Pixels arrive strictly in row-major
// order starting from the top-left corner.
type PixelWriter interface {
	WritePixel(x, y int, c color.RGBA) error
}

// ProgressFunc is called after each completed image row
type ProgressFunc func(rowsDone, totalRows int)

// PathTracer traces a single sample path
type PathTracer interface {
	TracePath(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) integrator.PathResult
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator PathTracer
	width      int
	height     int
	config     SamplingConfig
	logger     log.Logger
	progress   ProgressFunc
}

// NewRaytracer creates a new raytracer. The scene is frozen so that it stays
// read-only while workers share it.
func NewRaytracer(sc *scene.Scene, camera *geometry.Camera, width, height int, config SamplingConfig) (*Raytracer, error) {
	if sc == nil {
		return nil, ErrNilScene
	}
	if camera == nil {
		return nil, ErrNilCamera
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sc.Freeze()

	return &Raytracer{
		scene:      sc,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(),
		width:      width,
		height:     height,
		config:     config,
		logger:     logger,
	}, nil
}

// SetLogger overrides the renderer logger
func (rt *Raytracer) SetLogger(l log.Logger) {
	rt.logger = l
}

// SetProgressFunc registers a callback invoked after every finished row
func (rt *Raytracer) SetProgressFunc(fn ProgressFunc) {
	rt.progress = fn
}

// Width returns the image width
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height
func (rt *Raytracer) Height() int { return rt.height }

// Render renders the whole image into w
func (rt *Raytracer) Render(w PixelWriter) (RenderStats, error) {
	return rt.RenderContext(context.Background(), w)
}

// RenderContext renders the whole image into w, checking ctx between rows.
// Samples of every pixel in a row run in parallel; pixels are emitted only
// after all their samples have joined, top row first, left to right.
func (rt *Raytracer) RenderContext(ctx context.Context, w PixelWriter) (RenderStats, error) {
	if w == nil {
		return RenderStats{}, ErrNilWriter
	}

	start := time.Now()
	spp := rt.config.SamplesPerPixel

	pool := NewWorkerPool(rt.config.workers(), rt.renderSamples)
	pool.Start()
	defer pool.Stop()

	stats := RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		TotalPixels:     rt.width * rt.height,
		SamplesPerPixel: spp,
		Workers:         pool.GetNumWorkers(),
	}

	rt.logger.Infof("Rendering %dx%d, %d samples/pixel, max depth %d, %d workers",
		rt.width, rt.height, spp, rt.config.MaxDepth, stats.Workers)

	chunk := sampleChunkSize(spp, stats.Workers)
	rowResults := make([]integrator.PathResult, rt.width*spp)

	for j := rt.height - 1; j >= 0; j-- {
		select {
		case <-ctx.Done():
			rt.logger.Warningf("Rendering cancelled at row %d", rt.height-1-j)
			return stats, ctx.Err()
		default:
		}

		y := rt.height - 1 - j
		for i := 0; i < rt.width; i++ {
			pixelResults := rowResults[i*spp : (i+1)*spp]
			for first := 0; first < spp; first += chunk {
				last := min(first+chunk, spp)
				pool.SubmitTask(SampleTask{
					X:           i,
					Y:           y,
					PixelIndex:  y*rt.width + i,
					FirstSample: first,
					Results:     pixelResults[first:last],
				})
			}
		}
		pool.Wait()

		for i := 0; i < rt.width; i++ {
			// Reduce in sample-index order so the sum does not depend on scheduling
			var ps PixelStats
			for _, result := range rowResults[i*spp : (i+1)*spp] {
				ps.AddSample(result.Color)
				stats.addPath(result)
			}

			if err := w.WritePixel(i, y, ToRGBA(ps.ColorAccum, ps.SampleCount)); err != nil {
				return stats, fmt.Errorf("failed to write pixel (%d, %d): %w", i, y, err)
			}
		}

		rt.logger.Debugf("Scanlines remaining: %d", j)
		if rt.progress != nil {
			rt.progress(y+1, rt.height)
		}
	}

	stats.Duration = time.Since(start)
	rt.logger.Noticef("Rendered %d pixels (%d samples, %d rays) in %v",
		stats.TotalPixels, stats.TotalSamples, stats.RaysTraced(), stats.Duration)

	return stats, nil
}

// renderSamples traces every sample of a task. Each sample draws from its own
// stream, so results do not depend on which worker runs the task.
func (rt *Raytracer) renderSamples(task SampleTask) {
	// Row index counted from the bottom, matching the camera's t axis
	j := rt.height - 1 - task.Y

	for k := range task.Results {
		sampleIndex := task.FirstSample + k
		sampler := core.NewSeededSampler(rt.config.Seed, task.PixelIndex, sampleIndex)

		du, dv := 0.0, 0.0
		if !rt.config.DisableJitter {
			du = sampler.Get1D()
			dv = sampler.Get1D()
		}
		s := (float64(task.X) + du) / planeDivisor(rt.width)
		t := (float64(j) + dv) / planeDivisor(rt.height)

		ray := rt.camera.GetRay(s, t, sampler)
		task.Results[k] = rt.integrator.TracePath(ray, rt.scene, rt.config.MaxDepth, sampler)
	}
}

// RenderPixel renders one pixel synchronously and returns its averaged linear color.
// x and y follow the output convention with row 0 at the top.
func (rt *Raytracer) RenderPixel(x, y int) core.Vec3 {
	results := make([]integrator.PathResult, rt.config.SamplesPerPixel)
	rt.renderSamples(SampleTask{X: x, Y: y, PixelIndex: y*rt.width + x, Results: results})

	var ps PixelStats
	for _, result := range results {
		ps.AddSample(result.Color)
	}
	return ps.GetColor()
}

// planeDivisor maps pixel indices so the first and last pixels land on the
// viewport edges. A single-pixel dimension uses a divisor of one.
func planeDivisor(n int) float64 {
	return float64(max(n-1, 1))
}

// sampleChunkSize splits a pixel's samples so that a row keeps every worker busy
func sampleChunkSize(spp, workers int) int {
	return max(1, int(math.Ceil(float64(spp)/float64(workers))))
}

// ToRGBA converts a sum of linear radiance samples into an 8-bit color:
// average, gamma 2, clamp to [0, 0.999], scale by 256 and truncate.
func ToRGBA(sum core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float64(samples)
	c := sum.Multiply(scale).GammaCorrect(2.0).Clamp(0, 0.999)

	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

// quantize maps a clamped channel in [0, 0.999] to [0, 255]. Clamp passes
// NaN through, so NaN is mapped to zero here.
func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(256 * v)
}
