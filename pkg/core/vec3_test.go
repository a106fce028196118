package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("Expected squared length 14, got %f", got)
	}
	if got := a.Length(); got != math.Sqrt(14) {
		t.Errorf("Expected length sqrt(14), got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"exact zero", NewVec3(0, 0, 0), true},
		{"tiny components", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component too large", NewVec3(1e-9, 1e-7, 0), false},
		{"unit vector", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN component to be rejected")
	}
	if NewVec3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Expected infinite component to be rejected")
	}
}

func TestVec3_GammaCorrectIsSquareRoot(t *testing.T) {
	c := NewVec3(0.25, 0.5, 0.81)
	got := c.GammaCorrect(2.0)
	expected := NewVec3(math.Sqrt(0.25), math.Sqrt(0.5), math.Sqrt(0.81))
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-1, 0.5, 2).Clamp(0, 0.999)
	expected := NewVec3(0, 0.5, 0.999)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	got := ray.At(0.25)
	expected := NewVec3(1, 1, 0.5)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
