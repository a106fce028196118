package scene

import (
	"sync/atomic"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Scene is an ordered collection of shapes plus the camera it is meant to be
// viewed through. Once frozen it is read-only and safe to share between
// any number of render workers.
type Scene struct {
	Name         string
	CameraConfig geometry.CameraConfig

	shapes []geometry.Shape
	frozen atomic.Bool
}

// New creates an empty, mutable scene
func New(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		shapes:       make([]geometry.Shape, 0),
	}
}

// Add appends shapes to the scene. It fails once the scene has been frozen.
func (s *Scene) Add(shapes ...geometry.Shape) error {
	if s.frozen.Load() {
		return ErrSceneFrozen
	}
	for _, shape := range shapes {
		if shape == nil {
			return ErrNilShape
		}
	}
	s.shapes = append(s.shapes, shapes...)
	return nil
}

// AddSphere builds a sphere and appends it to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return err
	}
	return s.Add(sphere)
}

// Freeze makes the scene immutable. Freezing twice is a no-op.
func (s *Scene) Freeze() {
	s.frozen.Store(true)
}

// Frozen reports whether Freeze has been called
func (s *Scene) Frozen() bool {
	return s.frozen.Load()
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns a copy of the scene's shapes in insertion order
func (s *Scene) Shapes() []geometry.Shape {
	return append([]geometry.Shape(nil), s.shapes...)
}

// Hit returns the closest intersection across every shape in [tMin, tMax].
// Each accepted hit narrows the interval the remaining shapes are tested against.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
