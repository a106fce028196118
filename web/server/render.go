package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// RenderRequest holds the parameters shared by render and inspect requests
type RenderRequest struct {
	Scene           string
	Width           int
	Height          int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Seed            uint64
	DisableJitter   bool
	Format          string
}

// parseRenderRequest reads and validates the query parameters of a render request
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, error) {
	defaults := renderer.DefaultSamplingConfig()
	req := &RenderRequest{
		Scene:  values.Get("scene"),
		Format: values.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = "png"
	}
	if req.Format != "png" && req.Format != "ppm" {
		return nil, fmt.Errorf("format must be png or ppm, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", defaults.SamplesPerPixel, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseUintParam(values, "seed", defaults.Seed); err != nil {
		return nil, err
	}
	if req.AspectRatio, err = parseFloatParam(values, "aspect", 0, minAspect, maxAspect); err != nil {
		return nil, err
	}
	if rowSamples := req.Width * req.SamplesPerPixel; rowSamples > maxRowSamples {
		return nil, fmt.Errorf("width * spp must be at most %d, got: %d", maxRowSamples, rowSamples)
	}
	if v := values.Get("jitter"); v != "" {
		jitter, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid jitter: %s", v)
		}
		req.DisableJitter = !jitter
	}

	return req, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %.2f and %.2f, got: %.2f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// resolveScene builds the requested scene and its camera. The request height
// follows from the width and the scene's aspect ratio.
func (s *Server) resolveScene(req *RenderRequest) (*scene.Scene, *geometry.Camera, error) {
	override := geometry.CameraConfig{AspectRatio: req.AspectRatio}
	sceneObj, err := scene.Resolve(req.Scene, s.scenesDir, req.Seed, override)
	if err != nil {
		return nil, nil, err
	}

	camera, err := geometry.NewCamera(sceneObj.CameraConfig)
	if err != nil {
		return nil, nil, err
	}

	req.Height = renderer.ImageHeight(req.Width, sceneObj.CameraConfig.AspectRatio)
	if req.Height < 1 || req.Height > maxHeight {
		return nil, nil, fmt.Errorf("height must be between 1 and %d, got: %d (width %d, aspect ratio %g)",
			maxHeight, req.Height, req.Width, sceneObj.CameraConfig.AspectRatio)
	}
	return sceneObj, camera, nil
}

// buildRaytracer prepares a raytracer for the requested scene
func (s *Server) buildRaytracer(req *RenderRequest) (*renderer.Raytracer, error) {
	sceneObj, camera, err := s.resolveScene(req)
	if err != nil {
		return nil, err
	}

	config := renderer.SamplingConfig{
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
		DisableJitter:   req.DisableJitter,
	}

	rt, err := renderer.NewRaytracer(sceneObj, camera, req.Width, req.Height, config)
	if err != nil {
		return nil, err
	}
	rt.SetLogger(logger)
	return rt, nil
}

// handleRender renders a full image and returns it as PNG or plain PPM
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid parameters: "+err.Error())
		return
	}

	rt, err := s.buildRaytracer(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Infof("Render request: scene=%s %dx%d spp=%d depth=%d seed=%d",
		req.Scene, req.Width, req.Height, req.SamplesPerPixel, req.MaxDepth, req.Seed)

	var body bytes.Buffer
	var stats renderer.RenderStats
	contentType := "image/png"

	switch req.Format {
	case "ppm":
		contentType = "image/x-portable-pixmap"
		ppm, err := imageio.NewPPMWriter(&body, req.Width, req.Height)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if stats, err = rt.RenderContext(r.Context(), ppm); err == nil {
			err = ppm.Close()
		}
		if err != nil {
			logger.Errorf("Render failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	default:
		img, err := imageio.NewImageWriter(req.Width, req.Height)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if stats, err = rt.RenderContext(r.Context(), img); err == nil {
			err = imageio.WritePNG(&body, img.Image())
		}
		if err != nil {
			logger.Errorf("Render failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Width", strconv.Itoa(stats.Width))
	w.Header().Set("X-Render-Height", strconv.Itoa(stats.Height))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Rays", strconv.Itoa(stats.RaysTraced()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := body.WriteTo(w); err != nil {
		logger.Warningf("failed to write render response: %v", err)
	}
}
