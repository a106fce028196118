package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// sphereDef describes one sphere of a built-in scene
type sphereDef struct {
	center   core.Vec3
	radius   float64
	material material.Material
}

// addSpheres validates and appends every definition in order
func (s *Scene) addSpheres(defs ...sphereDef) error {
	for _, def := range defs {
		if err := s.AddSphere(def.center, def.radius, def.material); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultScene creates a single diffuse sphere resting on a large ground sphere,
// viewed through the basic camera.
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New("default", cameraConfig)
	err := s.addSpheres(
		sphereDef{core.NewVec3(0, 0, -1), 0.5, material.MustLambertian(core.NewVec3(0.5, 0.5, 0.5))},
		sphereDef{core.NewVec3(0, -100.5, -1), 100, material.MustLambertian(core.NewVec3(0.5, 0.5, 0.5))},
	)
	if err != nil {
		return nil, err
	}

	s.Freeze()
	return s, nil
}

// NewThreeSpheresScene creates a ground sphere with a diffuse center sphere,
// a hollow glass sphere on the left and a polished metal sphere on the right.
func NewThreeSpheresScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	// Zero focus distance focuses on the look-at point, the center sphere
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    2.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	ground := material.MustLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.MustLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.MustDielectric(1.5)
	// The inner surface of the shell sees glass outside and air inside
	bubble := material.MustDielectric(1.0 / 1.5)
	gold := material.MustMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s := New("three-spheres", cameraConfig)
	err := s.addSpheres(
		sphereDef{core.NewVec3(0, -100.5, -1), 100, ground},
		sphereDef{core.NewVec3(0, 0, -1), 0.5, center},
		sphereDef{core.NewVec3(-1, 0, -1), 0.5, glass},
		sphereDef{core.NewVec3(-1, 0, -1), 0.4, bubble},
		sphereDef{core.NewVec3(1, 0, -1), 0.5, gold},
	)
	if err != nil {
		return nil, err
	}

	s.Freeze()
	return s, nil
}
