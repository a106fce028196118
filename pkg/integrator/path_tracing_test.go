package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// scriptedWorld reports one hit per query using the next material in the
// script, then lets every further ray escape.
type scriptedWorld struct {
	materials []material.Material
	next      int
}

func (w *scriptedWorld) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	if w.next >= len(w.materials) {
		return material.HitRecord{}, false
	}
	mat := w.materials[w.next]
	w.next++

	hit := material.HitRecord{T: 1, Point: ray.At(1), Material: mat}
	hit.SetFaceNormal(ray, ray.Direction.Normalize().Negate())
	return hit, true
}

// mirrorWorld always hits, so paths can only end by exhausting depth
type mirrorWorld struct {
	mat material.Material
}

func (w mirrorWorld) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	hit := material.HitRecord{T: 1, Point: ray.At(1), Material: w.mat}
	hit.SetFaceNormal(ray, ray.Direction.Normalize().Negate())
	return hit, true
}

// createTestScene creates a simple scene with a sphere for testing
func createTestScene(t *testing.T, mat material.Material) *scene.Scene {
	t.Helper()
	sc := scene.New("test", geometry.DefaultCameraConfig())
	if err := sc.AddSphere(core.NewVec3(0, 0, -1), 0.5, mat); err != nil {
		t.Fatalf("Failed to build test scene: %v", err)
	}
	sc.Freeze()
	return sc
}

// recursiveRayColor is the textbook recursive estimator used as a reference
func recursiveRayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}
	hit, ok := world.Hit(ray, DefaultTMin, math.Inf(1))
	if !ok {
		return Background(ray)
	}
	scatter, ok := hit.Material.Scatter(ray, hit, sampler)
	if !ok {
		return core.Vec3{}
	}
	return scatter.Attenuation.MultiplyVec(recursiveRayColor(scatter.Scattered, world, depth-1, sampler))
}

func TestPathTracingDepthTermination(t *testing.T) {
	sc := createTestScene(t, material.MustLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	integrator := NewPathTracingIntegrator()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, depth := range []int{0, -3} {
		result := integrator.TracePath(ray, sc, depth, core.NewSeededSampler(42, 0, 0))
		if result.Color != (core.Vec3{}) {
			t.Errorf("Expected black color for depth %d, got %v", depth, result.Color)
		}
		if result.Outcome != PathExhausted || result.Bounces != 0 {
			t.Errorf("Expected exhausted path with no bounces, got %v after %d", result.Outcome, result.Bounces)
		}
	}

	color := integrator.RayColor(ray, sc, 3, core.NewSeededSampler(42, 0, 0))
	if color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackground(t *testing.T) {
	sc := createTestScene(t, material.MustLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewSeededSampler(1, 0, 0)

	t.Run("horizontal miss", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
		result := integrator.TracePath(ray, sc, 50, sampler)

		expected := core.NewVec3(0.75, 0.85, 1.0)
		if result.Color != expected {
			t.Errorf("Expected %v, got %v", expected, result.Color)
		}
		if result.Outcome != PathEscaped || result.Bounces != 0 {
			t.Errorf("Expected escaped path with no bounces, got %v after %d", result.Outcome, result.Bounces)
		}
	})

	t.Run("gradient endpoints", func(t *testing.T) {
		up := Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 5, 0)))
		down := Background(core.NewRay(core.Vec3{}, core.NewVec3(0, -5, 0)))
		if up != core.NewVec3(0.5, 0.7, 1.0) {
			t.Errorf("Expected sky blue at zenith, got %v", up)
		}
		if down != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected white at nadir, got %v", down)
		}
	})

	t.Run("miss equals gradient", func(t *testing.T) {
		directions := []core.Vec3{
			core.NewVec3(0, 1, 0),
			core.NewVec3(0.3, 0.8, 0.2),
			core.NewVec3(-2, -1, 1),
			core.NewVec3(0, 0, 1),
		}
		for _, dir := range directions {
			ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
			got := integrator.RayColor(ray, sc, 1, sampler)

			unit := dir.Normalize()
			tt := 0.5 * (unit.Y + 1.0)
			expected := core.NewVec3(1, 1, 1).Multiply(1.0 - tt).Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(tt))
			if got != expected {
				t.Errorf("Direction %v: expected %v, got %v", dir, expected, got)
			}
		}
	})
}

func TestPathTracingAbsorption(t *testing.T) {
	integrator := NewPathTracingIntegrator()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	// The zero material never scatters
	world := &scriptedWorld{materials: []material.Material{{}}}
	result := integrator.TracePath(ray, world, 10, core.NewSeededSampler(0, 0, 0))

	if result.Color != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed path, got %v", result.Color)
	}
	if result.Outcome != PathAbsorbed {
		t.Errorf("Expected absorbed outcome, got %v", result.Outcome)
	}
}

func TestPathTracingMirrorHall(t *testing.T) {
	integrator := NewPathTracingIntegrator()
	world := mirrorWorld{mat: material.MustMetal(core.NewVec3(0.9, 0.9, 0.9), 0)}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	result := integrator.TracePath(ray, world, 7, core.NewSeededSampler(0, 0, 0))
	if result.Outcome != PathExhausted {
		t.Fatalf("Expected exhausted outcome, got %v", result.Outcome)
	}
	if result.Bounces != 7 {
		t.Errorf("Expected 7 bounces, got %d", result.Bounces)
	}
	if result.Color != (core.Vec3{}) {
		t.Errorf("Expected black for exhausted path, got %v", result.Color)
	}
}

func TestPathTracingMirrorReflection(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	sc := createTestScene(t, material.MustMetal(albedo, 0))
	integrator := NewPathTracingIntegrator()

	// Reflects straight back along +Z and escapes at the horizon
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := integrator.TracePath(ray, sc, 50, core.NewSeededSampler(5, 0, 0))

	expected := albedo.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))
	if result.Color != expected {
		t.Errorf("Expected %v, got %v", expected, result.Color)
	}
	if result.Bounces != 1 || result.Outcome != PathEscaped {
		t.Errorf("Expected one bounce then escape, got %d bounces, %v", result.Bounces, result.Outcome)
	}
}

func TestPathTracingMatchesRecursion(t *testing.T) {
	script := []material.Material{
		material.MustLambertian(core.NewVec3(0.9, 0.3, 0.7)),
		material.MustMetal(core.NewVec3(0.31, 0.77, 0.53), 0.4),
		material.MustLambertian(core.NewVec3(0.123, 0.456, 0.789)),
		material.MustDielectric(1.5),
		material.MustLambertian(core.NewVec3(0.333, 0.666, 0.999)),
	}
	integrator := NewPathTracingIntegrator()

	for sample := 0; sample < 50; sample++ {
		ray := core.NewRay(core.Vec3{}, core.NewVec3(0.1, 0.2, -1))

		got := integrator.TracePath(ray, &scriptedWorld{materials: script}, 10, core.NewSeededSampler(9, 0, sample))
		want := recursiveRayColor(ray, &scriptedWorld{materials: script}, 10, core.NewSeededSampler(9, 0, sample))

		if got.Color != want {
			t.Fatalf("Sample %d: loop gave %v, recursion gave %v", sample, got.Color, want)
		}
	}
}

func TestPathTracingRandomSceneIsFinite(t *testing.T) {
	sc, err := scene.NewRandomScene(3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	camera, err := geometry.NewCamera(sc.CameraConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	integrator := NewPathTracingIntegrator()

	for sample := 0; sample < 200; sample++ {
		sampler := core.NewSeededSampler(3, 0, sample)
		ray := camera.GetRay(sampler.Get1D(), sampler.Get1D(), sampler)
		color := integrator.RayColor(ray, sc, 20, sampler)
		if !color.IsFinite() || !color.InRange(0, 1) {
			t.Fatalf("Sample %d produced out-of-range radiance %v", sample, color)
		}
	}
}
