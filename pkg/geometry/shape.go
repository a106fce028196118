package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with t in [tMin, tMax].
// Implementations must be safe for concurrent use once placed in a scene.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
}
