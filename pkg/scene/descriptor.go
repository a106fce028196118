package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Descriptor is the JSON form of a scene
type Descriptor struct {
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Group       string             `json:"group,omitempty"`
	Camera      *CameraDescriptor  `json:"camera,omitempty"`
	Spheres     []SphereDescriptor `json:"spheres"`
}

// CameraDescriptor holds optional camera settings. Absent fields keep the
// basic camera's values.
type CameraDescriptor struct {
	LookFrom    *[3]float64 `json:"lookFrom,omitempty"`
	LookAt      *[3]float64 `json:"lookAt,omitempty"`
	Vup         *[3]float64 `json:"vup,omitempty"`
	VFov        *float64    `json:"vfov,omitempty"`
	AspectRatio *float64    `json:"aspectRatio,omitempty"`
	Aperture    *float64    `json:"aperture,omitempty"`
	FocusDist   *float64    `json:"focusDist,omitempty"`
}

// SphereDescriptor is one sphere entry
type SphereDescriptor struct {
	Center   [3]float64         `json:"center"`
	Radius   float64            `json:"radius"`
	Material MaterialDescriptor `json:"material"`
}

// MaterialDescriptor selects a material variant by type name
type MaterialDescriptor struct {
	Type   string      `json:"type"`
	Albedo *[3]float64 `json:"albedo,omitempty"`
	Fuzz   float64     `json:"fuzz,omitempty"`
	IOR    float64     `json:"ior,omitempty"`
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraConfig applies the descriptor on top of base
func (c *CameraDescriptor) CameraConfig(base geometry.CameraConfig) geometry.CameraConfig {
	if c == nil {
		return base
	}
	config := base
	if c.LookFrom != nil {
		config.Center = toVec3(*c.LookFrom)
	}
	if c.LookAt != nil {
		config.LookAt = toVec3(*c.LookAt)
	}
	if c.Vup != nil {
		config.Up = toVec3(*c.Vup)
	}
	if c.VFov != nil {
		config.VFov = *c.VFov
	}
	if c.AspectRatio != nil {
		config.AspectRatio = *c.AspectRatio
	}
	if c.Aperture != nil {
		config.Aperture = *c.Aperture
	}
	if c.FocusDist != nil {
		config.FocusDistance = *c.FocusDist
	}
	return config
}

// Material builds the described material
func (m MaterialDescriptor) Material() (material.Material, error) {
	kind, err := material.ParseKind(m.Type)
	if err != nil {
		return material.Material{}, err
	}

	switch kind {
	case material.KindLambertian, material.KindMetal:
		if m.Albedo == nil {
			return material.Material{}, fmt.Errorf("%w: %s requires an albedo", material.ErrInvalidAlbedo, kind)
		}
		if kind == material.KindMetal {
			return material.NewMetal(toVec3(*m.Albedo), m.Fuzz)
		}
		return material.NewLambertian(toVec3(*m.Albedo))
	default:
		return material.NewDielectric(m.IOR)
	}
}

// Build validates the descriptor and creates a frozen scene from it
func (d Descriptor) Build(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if len(d.Spheres) == 0 {
		return nil, ErrEmptyScene
	}

	cameraConfig := d.Camera.CameraConfig(geometry.DefaultCameraConfig())
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	if err := cameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("%w: camera: %w", ErrInvalidDescriptor, err)
	}

	s := New(d.Name, cameraConfig)
	for i, sphere := range d.Spheres {
		mat, err := sphere.Material.Material()
		if err != nil {
			return nil, fmt.Errorf("%w: sphere %d: %w", ErrInvalidDescriptor, i, err)
		}
		if err := s.AddSphere(toVec3(sphere.Center), sphere.Radius, mat); err != nil {
			return nil, fmt.Errorf("%w: sphere %d: %w", ErrInvalidDescriptor, i, err)
		}
	}

	s.Freeze()
	return s, nil
}

// DecodeDescriptor reads a JSON scene descriptor. Unknown fields are rejected.
func DecodeDescriptor(r io.Reader) (Descriptor, error) {
	var d Descriptor
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&d); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	return d, nil
}

// Decode reads a JSON scene descriptor and builds the scene
func Decode(r io.Reader, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	d, err := DecodeDescriptor(r)
	if err != nil {
		return nil, err
	}
	return d.Build(cameraOverrides...)
}

// LoadFile builds a scene from a JSON descriptor on disk. Scenes without a
// name are named after the file.
func LoadFile(path string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	d, err := DecodeDescriptor(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, err := d.Build(cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
