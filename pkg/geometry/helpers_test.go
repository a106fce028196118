package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

var testMaterial = material.MustLambertian(core.NewVec3(0.5, 0.5, 0.5))

func mustSphere(center core.Vec3, radius float64) *Sphere {
	s, err := NewSphere(center, radius, testMaterial)
	if err != nil {
		panic(err)
	}
	return s
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
