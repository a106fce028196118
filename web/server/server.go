package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

var logger = log.New("server")

// Limits applied to every render request
const (
	minWidth      = 16
	maxWidth      = 2000
	maxHeight     = 2000
	minAspect     = 0.1
	maxAspect     = 10
	maxSamples    = 10000
	maxDepth      = 1000
	maxRowSamples = 1 << 21 // width * spp, bounds the per-row sample buffer
)

// Server handles web requests for the sphere raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server. Scene descriptors are discovered in scenesDir.
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and descriptor scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.Resolve(sceneName, s.scenesDir, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	defaults := renderer.DefaultSamplingConfig()
	sampling := map[string]interface{}{
		"samplesPerPixel": defaults.SamplesPerPixel,
		"maxDepth":        defaults.MaxDepth,
	}

	config := sceneObj.CameraConfig
	camera := map[string]interface{}{
		"lookFrom":    vecArray(config.Center),
		"lookAt":      vecArray(config.LookAt),
		"vup":         vecArray(config.Up),
		"vfov":        config.VFov,
		"aspectRatio": config.AspectRatio,
		"aperture":    config.Aperture,
		"focusDist":   config.FocusDistance,
	}

	limits := map[string]interface{}{
		"width":      map[string]int{"min": minWidth, "max": maxWidth},
		"height":     map[string]int{"min": 1, "max": maxHeight},
		"aspect":     map[string]float64{"min": minAspect, "max": maxAspect},
		"spp":        map[string]int{"min": 1, "max": maxSamples},
		"depth":      map[string]int{"min": 0, "max": maxDepth},
		"rowSamples": map[string]int{"max": maxRowSamples},
	}

	response := map[string]interface{}{
		"scene":    sceneName,
		"defaults": sampling,
		"camera":   camera,
		"limits":   limits,
	}

	writeJSON(w, http.StatusOK, response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseUintParam parses an unsigned 64-bit parameter such as a seed
func parseUintParam(values url.Values, key string, defaultValue uint64) (uint64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
