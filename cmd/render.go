package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// renderOptions collects everything a render needs from the command line
type renderOptions struct {
	Scene          string
	SceneFile      string
	ScenesDir      string
	Width          int
	Camera         geometry.CameraOverride // Flags given on the command line
	Sampling       renderer.SamplingConfig
	Out            string // "-" streams the PPM to stdout, "" skips it
	PNG            string
	Thumbnail      string
	ThumbnailWidth int
}

// Render a single image.
func RenderImage(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptionsFromContext(ctx)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = runRender(runCtx, opts, os.Stdout)
	return err
}

func renderOptionsFromContext(ctx *cli.Context) (renderOptions, error) {
	opts := renderOptions{
		Scene:     ctx.String("scene"),
		SceneFile: ctx.String("scene-file"),
		ScenesDir: ctx.String("scenes-dir"),
		Width:     ctx.Int("width"),
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("max-depth"),
			Seed:            ctx.Uint64("seed"),
			DisableJitter:   ctx.Bool("no-jitter"),
			NumWorkers:      ctx.Int("workers"),
		},
		Out:            ctx.String("out"),
		PNG:            ctx.String("png"),
		Thumbnail:      ctx.String("thumbnail"),
		ThumbnailWidth: ctx.Int("thumbnail-width"),
	}

	vectors := []struct {
		flag string
		dst  **core.Vec3
	}{
		{"look-from", &opts.Camera.Center},
		{"look-at", &opts.Camera.LookAt},
		{"vup", &opts.Camera.Up},
	}
	for _, v := range vectors {
		if !ctx.IsSet(v.flag) {
			continue
		}
		parsed, err := parseVec3(ctx.String(v.flag))
		if err != nil {
			return renderOptions{}, fmt.Errorf("--%s: %w", v.flag, err)
		}
		*v.dst = &parsed
	}

	scalars := []struct {
		flag string
		dst  **float64
	}{
		{"aspect-ratio", &opts.Camera.AspectRatio},
		{"vfov", &opts.Camera.VFov},
		{"aperture", &opts.Camera.Aperture},
		{"focus-dist", &opts.Camera.FocusDistance},
	}
	for _, f := range scalars {
		if ctx.IsSet(f.flag) {
			value := ctx.Float64(f.flag)
			*f.dst = &value
		}
	}

	return opts, nil
}

// loadScene builds the scene named by the options with camera overrides applied
func loadScene(opts renderOptions) (*scene.Scene, error) {
	var (
		sc  *scene.Scene
		err error
	)
	if opts.SceneFile != "" {
		sc, err = scene.LoadFile(opts.SceneFile)
	} else {
		sc, err = scene.Resolve(opts.Scene, opts.ScenesDir, opts.Sampling.Seed)
	}
	if err != nil {
		return nil, err
	}

	sc.CameraConfig = opts.Camera.Apply(sc.CameraConfig)
	return sc, nil
}

// runRender renders the configured scene to every requested output. The PPM
// stream goes to stdout when opts.Out is "-".
func runRender(ctx context.Context, opts renderOptions, stdout io.Writer) (renderer.RenderStats, error) {
	if opts.Out == "" && opts.PNG == "" && opts.Thumbnail == "" {
		return renderer.RenderStats{}, errors.New("no output selected: set --out, --png or --thumbnail")
	}

	sc, err := loadScene(opts)
	if err != nil {
		return renderer.RenderStats{}, err
	}
	logger.Infof("loaded scene %q with %d spheres", sc.Name, sc.Len())

	camera, err := geometry.NewCamera(sc.CameraConfig)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	width := opts.Width
	height := renderer.ImageHeight(width, sc.CameraConfig.AspectRatio)

	rt, err := renderer.NewRaytracer(sc, camera, width, height, opts.Sampling)
	if err != nil {
		return renderer.RenderStats{}, err
	}
	rt.SetProgressFunc(progressLogger())

	var (
		writers []renderer.PixelWriter
		ppm     *imageio.PPMWriter
		ppmFile *os.File
		img     *imageio.ImageWriter
	)

	if opts.Out != "" {
		dst := stdout
		if opts.Out != "-" {
			if ppmFile, err = os.Create(opts.Out); err != nil {
				return renderer.RenderStats{}, err
			}
			defer ppmFile.Close()
			dst = ppmFile
		}
		if ppm, err = imageio.NewPPMWriter(dst, width, height); err != nil {
			return renderer.RenderStats{}, err
		}
		writers = append(writers, ppm)
	}

	if opts.PNG != "" || opts.Thumbnail != "" {
		if img, err = imageio.NewImageWriter(width, height); err != nil {
			return renderer.RenderStats{}, err
		}
		writers = append(writers, img)
	}

	stats, err := rt.RenderContext(ctx, imageio.MultiWriter(writers...))
	if err != nil {
		return stats, err
	}

	if ppm != nil {
		if err := ppm.Close(); err != nil {
			return stats, err
		}
		if ppmFile != nil {
			if err := ppmFile.Close(); err != nil {
				return stats, err
			}
			logger.Noticef("wrote %s", opts.Out)
		}
	}

	if opts.PNG != "" {
		if err := imageio.SavePNG(opts.PNG, img.Image()); err != nil {
			return stats, err
		}
		logger.Noticef("wrote %s", opts.PNG)
	}

	if opts.Thumbnail != "" {
		if err := imageio.SaveThumbnail(opts.Thumbnail, img.Image(), opts.ThumbnailWidth); err != nil {
			return stats, err
		}
		logger.Noticef("wrote %s", opts.Thumbnail)
	}

	if img != nil {
		displayRenderStats(stats, img.Image())
	} else {
		displayRenderStats(stats, nil)
	}

	return stats, nil
}

// progressLogger reports render progress at Info level in 10% steps
func progressLogger() renderer.ProgressFunc {
	lastReported := -1
	return func(rowsDone, totalRows int) {
		percent := rowsDone * 100 / totalRows
		if step := percent / 10; step > lastReported {
			lastReported = step
			logger.Infof("progress: %d/%d rows (%d%%)", rowsDone, totalRows, percent)
		}
	}
}
