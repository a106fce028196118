package material

import (
	"fmt"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Kind tags the variant held by a Material
type Kind uint8

const (
	// The zero Kind is deliberately invalid so a zero Material never scatters.
	_ Kind = iota
	KindLambertian
	KindMetal
	KindDielectric
)

// String returns the lower-case variant name
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a variant name back to its Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lambertian", "diffuse":
		return KindLambertian, nil
	case "metal":
		return KindMetal, nil
	case "dielectric", "glass":
		return KindDielectric, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Material is a closed tagged variant over the supported surface models.
// Values are immutable, small, and copied into every HitRecord.
type Material struct {
	kind            Kind
	albedo          core.Vec3 // Lambertian, Metal
	fuzz            float64   // Metal, clamped to [0, 1]
	refractiveIndex float64   // Dielectric
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) (Material, error) {
	if err := validateAlbedo(albedo); err != nil {
		return Material{}, err
	}
	return Material{kind: KindLambertian, albedo: albedo}, nil
}

// NewMetal creates a metallic material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) (Material, error) {
	if err := validateAlbedo(albedo); err != nil {
		return Material{}, err
	}
	if !core.IsFinite(fuzz) {
		return Material{}, ErrInvalidFuzz
	}
	return Material{kind: KindMetal, albedo: albedo, fuzz: max(0.0, min(1.0, fuzz))}, nil
}

// NewDielectric creates a transparent material like glass (refractive index 1.5)
func NewDielectric(refractiveIndex float64) (Material, error) {
	if !core.IsFinite(refractiveIndex) || refractiveIndex <= 0 {
		return Material{}, fmt.Errorf("%w: %v", ErrInvalidRefractiveIndex, refractiveIndex)
	}
	return Material{kind: KindDielectric, refractiveIndex: refractiveIndex}, nil
}

// MustLambertian is like NewLambertian but panics on invalid input.
// Intended for scenes built from constants.
func MustLambertian(albedo core.Vec3) Material {
	return must(NewLambertian(albedo))
}

// MustMetal is like NewMetal but panics on invalid input
func MustMetal(albedo core.Vec3, fuzz float64) Material {
	return must(NewMetal(albedo, fuzz))
}

// MustDielectric is like NewDielectric but panics on invalid input
func MustDielectric(refractiveIndex float64) Material {
	return must(NewDielectric(refractiveIndex))
}

func must(m Material, err error) Material {
	if err != nil {
		panic(err)
	}
	return m
}

func validateAlbedo(albedo core.Vec3) error {
	if !albedo.IsFinite() || !albedo.InRange(0, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidAlbedo, albedo)
	}
	return nil
}

// Kind returns the variant tag
func (m Material) Kind() Kind { return m.kind }

// Albedo returns the reflectance color (zero for dielectrics)
func (m Material) Albedo() core.Vec3 { return m.albedo }

// Fuzz returns the metal roughness in [0, 1]
func (m Material) Fuzz() float64 { return m.fuzz }

// RefractiveIndex returns the dielectric index of refraction
func (m Material) RefractiveIndex() float64 { return m.refractiveIndex }

// Valid reports whether the material was built by one of the constructors
func (m Material) Valid() bool {
	return m.kind >= KindLambertian && m.kind <= KindDielectric
}

// String describes the material for logs
func (m Material) String() string {
	switch m.kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v)", m.albedo)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.albedo, m.fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%g)", m.refractiveIndex)
	default:
		return m.kind.String()
	}
}

// Scatter computes the attenuation and scattered ray for an incident ray.
// It returns false when the ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}
