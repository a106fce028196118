package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestNewLambertian_Validation(t *testing.T) {
	tests := []struct {
		name      string
		albedo    core.Vec3
		expectErr bool
	}{
		{"grey", core.NewVec3(0.5, 0.5, 0.5), false},
		{"black", core.NewVec3(0, 0, 0), false},
		{"white", core.NewVec3(1, 1, 1), false},
		{"above one", core.NewVec3(1.2, 0.5, 0.5), true},
		{"negative", core.NewVec3(0.5, -0.1, 0.5), true},
		{"NaN", core.NewVec3(math.NaN(), 0.5, 0.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewLambertian(tt.albedo)
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidAlbedo) {
					t.Errorf("Expected ErrInvalidAlbedo, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if m.Kind() != KindLambertian || m.Albedo() != tt.albedo {
				t.Errorf("Unexpected material %v", m)
			}
		})
	}
}

func TestNewDielectric_Validation(t *testing.T) {
	for _, ior := range []float64{0, -1.5, math.Inf(1), math.NaN()} {
		if _, err := NewDielectric(ior); !errors.Is(err, ErrInvalidRefractiveIndex) {
			t.Errorf("Expected ErrInvalidRefractiveIndex for %v, got %v", ior, err)
		}
	}

	glass, err := NewDielectric(1.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if glass.Kind() != KindDielectric || glass.RefractiveIndex() != 1.5 {
		t.Errorf("Unexpected material %v", glass)
	}
}

func TestMaterial_ZeroValueAbsorbs(t *testing.T) {
	var m Material
	if m.Valid() {
		t.Error("Zero material should not be valid")
	}

	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	if _, ok := m.Scatter(ray, hit, newSequenceSampler(0.5)); ok {
		t.Error("Zero material should absorb every ray")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input     string
		expected  Kind
		expectErr bool
	}{
		{"lambertian", KindLambertian, false},
		{"Metal", KindMetal, false},
		{" glass ", KindDielectric, false},
		{"dielectric", KindDielectric, false},
		{"emissive", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.expectErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("Expected ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil || kind != tt.expected {
				t.Errorf("ParseKind(%q) = %v, %v; expected %v", tt.input, kind, err, tt.expected)
			}
		})
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"ray against normal", core.NewVec3(0, 0, -1), true, outward},
		{"ray along normal", core.NewVec3(0, 0, 1), false, outward.Negate()},
		{"grazing ray", core.NewVec3(1, 0, 0), false, outward.Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			hit.SetFaceNormal(ray, outward)

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(ray.Direction) > 0 {
				t.Errorf("Normal %v does not oppose ray direction %v", hit.Normal, ray.Direction)
			}
		})
	}
}
