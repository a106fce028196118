package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

var gray = material.MustLambertian(core.NewVec3(0.5, 0.5, 0.5))

// recordingShape reports a fixed hit and records the tMax it was queried with
type recordingShape struct {
	t        float64
	seenTMax []float64
}

func (r *recordingShape) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	r.seenTMax = append(r.seenTMax, tMax)
	if r.t < tMin || r.t > tMax {
		return material.HitRecord{}, false
	}
	return material.HitRecord{T: r.t, Point: ray.At(r.t), Normal: core.NewVec3(0, 0, 1), FrontFace: true}, true
}

func TestScene_Hit_ClosestWins(t *testing.T) {
	orders := map[string][]float64{
		"near first":  {1, 2, 3},
		"near last":   {3, 2, 1},
		"near middle": {2, 1, 3},
	}

	for name, ts := range orders {
		t.Run(name, func(t *testing.T) {
			s := New("test", geometry.DefaultCameraConfig())
			for _, tt := range ts {
				if err := s.Add(&recordingShape{t: tt}); err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
			}

			hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
			if !ok {
				t.Fatal("Expected hit")
			}
			if hit.T != 1 {
				t.Errorf("Expected closest t=1, got %v", hit.T)
			}
		})
	}
}

func TestScene_Hit_NarrowsInterval(t *testing.T) {
	first := &recordingShape{t: 5}
	second := &recordingShape{t: 2}
	third := &recordingShape{t: 9}

	s := New("test", geometry.DefaultCameraConfig())
	if err := s.Add(first, second, third); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 100)

	if first.seenTMax[0] != 100 {
		t.Errorf("Expected first shape queried with tMax=100, got %v", first.seenTMax[0])
	}
	if second.seenTMax[0] != 5 {
		t.Errorf("Expected second shape queried with tMax=5, got %v", second.seenTMax[0])
	}
	if third.seenTMax[0] != 2 {
		t.Errorf("Expected third shape queried with tMax=2, got %v", third.seenTMax[0])
	}
}

func TestScene_Hit_Miss(t *testing.T) {
	s := New("test", geometry.DefaultCameraConfig())
	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("Expected ray pointing away to miss")
	}

	empty := New("empty", geometry.DefaultCameraConfig())
	if _, ok := empty.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); ok {
		t.Error("Expected empty scene to miss")
	}
}

func TestScene_Hit_SpheresCopyMaterial(t *testing.T) {
	metal := material.MustMetal(core.NewVec3(0.9, 0.9, 0.9), 0.1)

	s := New("test", geometry.DefaultCameraConfig())
	if err := s.AddSphere(core.NewVec3(0, 0, -3), 0.5, gray); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, metal); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, ok := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != metal {
		t.Errorf("Expected nearer sphere's material, got %v", hit.Material)
	}
	if hit.T != 0.5 {
		t.Errorf("Expected t=0.5, got %v", hit.T)
	}
}

func TestScene_Freeze(t *testing.T) {
	s := New("test", geometry.DefaultCameraConfig())
	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s.Freeze()
	if !s.Frozen() {
		t.Error("Expected scene to report frozen")
	}

	err := s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gray)
	if !errors.Is(err, ErrSceneFrozen) {
		t.Errorf("Expected ErrSceneFrozen, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected frozen scene to keep 1 shape, got %d", s.Len())
	}
}

func TestScene_Add_Validation(t *testing.T) {
	s := New("test", geometry.DefaultCameraConfig())

	if err := s.Add(nil); !errors.Is(err, ErrNilShape) {
		t.Errorf("Expected ErrNilShape, got %v", err)
	}
	if err := s.AddSphere(core.NewVec3(0, 0, -1), -0.5, gray); !errors.Is(err, geometry.ErrInvalidRadius) {
		t.Errorf("Expected ErrInvalidRadius, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected rejected shapes to be skipped, got %d shapes", s.Len())
	}
}

func TestScene_Shapes_ReturnsCopy(t *testing.T) {
	s := New("test", geometry.DefaultCameraConfig())
	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	shapes := s.Shapes()
	shapes[0] = nil

	if s.Shapes()[0] == nil {
		t.Error("Mutating the returned slice should not affect the scene")
	}
}
