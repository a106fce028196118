package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Background   *[3]float64            `json:"background,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo describes a material by its variant
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch mat.Kind() {
	case material.KindLambertian:
		albedo := mat.Albedo()
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
	case material.KindMetal:
		albedo := mat.Albedo()
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		properties["fuzz"] = mat.Fuzz()
	case material.KindDielectric:
		properties["refractiveIndex"] = mat.RefractiveIndex()
		properties["color"] = "#ffffff"
	default:
		return "unknown", properties
	}
	return mat.Kind().String(), properties
}

func hexColor(c core.Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// InspectResult holds the first intersection along an inspection ray
type InspectResult struct {
	Hit       bool
	Ray       core.Ray
	HitRecord material.HitRecord
	Shape     geometry.Shape // nil when no single shape reproduces the hit
}

// inspectPixel casts the unjittered ray through a pixel and reports the first object hit.
// Pixel y counts from the top of the image.
func inspectPixel(sceneObj *scene.Scene, camera *geometry.Camera, width, height, pixelX, pixelY int, seed uint64) InspectResult {
	j := height - 1 - pixelY
	s := float64(pixelX) / float64(max(width-1, 1))
	t := float64(j) / float64(max(height-1, 1))

	sampler := core.NewSeededSampler(seed, pixelY*width+pixelX, 0)
	ray := camera.GetRay(s, t, sampler)

	hit, isHit := sceneObj.Hit(ray, integrator.DefaultTMin, math.Inf(1))
	if !isHit {
		return InspectResult{Ray: ray}
	}

	// Scene hits do not say which shape produced them
	for _, shape := range sceneObj.Shapes() {
		if shapeHit, ok := shape.Hit(ray, integrator.DefaultTMin, hit.T+integrator.DefaultTMin); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, Ray: ray, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, Ray: ray, HitRecord: hit}
}

// extractGeometryInfo describes the shape that was hit
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center())
		properties["radius"] = geom.Radius()
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := s.parseRenderRequest(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, camera, err := s.resolveScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, camera, req.Width, req.Height, pixelX, pixelY, req.Seed)
	if !result.Hit {
		background := vecArray(integrator.Background(result.Ray))
		writeJSON(w, http.StatusOK, InspectResponse{Background: &background})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	allProperties := make(map[string]interface{})
	allProperties["material"] = materialProps
	allProperties["geometry"] = geometryProps

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Properties:   allProperties,
	})
}
