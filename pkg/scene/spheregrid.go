package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// gridStream selects the PCG stream used for scene generation, keeping it
// apart from the per-sample render streams derived from the same seed.
const gridStream = 0x5ce7e5eed

// NewRandomSceneCameraConfig returns the camera the random scene is framed for
func NewRandomSceneCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}

// NewRandomScene creates a 22x22 grid of small randomised spheres around three
// large feature spheres. The same seed always yields the same scene.
func NewRandomScene(seed uint64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := NewRandomSceneCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewPCG(seed, gridStream)))
	randomColor := func() core.Vec3 {
		r := sampler.Get1D()
		g := sampler.Get1D()
		return core.NewVec3(r, g, sampler.Get1D())
	}

	s := New("random", cameraConfig)
	if err := s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.MustLambertian(core.NewVec3(0.5, 0.5, 0.5))); err != nil {
		return nil, err
	}

	// Keep the small spheres clear of the metal feature sphere
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := sampler.Get1D()
			x := float64(a) + 0.9*sampler.Get1D()
			center := core.NewVec3(x, 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var (
				mat material.Material
				err error
			)
			switch {
			case choice < 0.8:
				mat, err = material.NewLambertian(randomColor().MultiplyVec(randomColor()))
			case choice < 0.95:
				r := core.RandomInRange(sampler, 0.5, 1)
				g := core.RandomInRange(sampler, 0.5, 1)
				albedo := core.NewVec3(r, g, core.RandomInRange(sampler, 0.5, 1))
				mat, err = material.NewMetal(albedo, core.RandomInRange(sampler, 0, 0.5))
			default:
				mat, err = material.NewDielectric(1.5)
			}
			if err != nil {
				return nil, fmt.Errorf("grid sphere (%d, %d): %w", a, b, err)
			}

			if err := s.AddSphere(center, 0.2, mat); err != nil {
				return nil, fmt.Errorf("grid sphere (%d, %d): %w", a, b, err)
			}
		}
	}

	err := s.addSpheres(
		sphereDef{core.NewVec3(0, 1, 0), 1.0, material.MustDielectric(1.5)},
		sphereDef{core.NewVec3(-4, 1, 0), 1.0, material.MustLambertian(core.NewVec3(0.4, 0.2, 0.1))},
		sphereDef{core.NewVec3(4, 1, 0), 1.0, material.MustMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)},
	)
	if err != nil {
		return nil, err
	}

	s.Freeze()
	return s, nil
}
