package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Sphere represents a sphere shape. It is immutable once created.
type Sphere struct {
	center   core.Vec3
	radius   float64
	material material.Material
}

// NewSphere creates a new sphere, rejecting inputs that would put NaN or Inf into the integrator
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if !center.IsFinite() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCenter, center)
	}
	if !core.IsFinite(radius) || radius <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if !mat.Valid() {
		return nil, ErrInvalidMaterial
	}
	return &Sphere{
		center:   center,
		radius:   radius,
		material: mat,
	}, nil
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 { return s.center }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// Material returns the sphere material
func (s *Sphere) Material() material.Material { return s.material }

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root; fall back to the farther one for rays starting inside
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	hit := material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.material,
	}

	// Outward normal is unit length because |point - center| = radius
	outwardNormal := hit.Point.Subtract(s.center).Divide(s.radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
