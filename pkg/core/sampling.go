package core

import (
	"math/rand/v2"
)

// Vec2 is a pair of sample values
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms.
// Every rendering task owns its sampler; samplers are never shared between goroutines.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler whose stream is fully determined by the
// global seed and the (pixel, sample) pair it serves.
func NewSeededSampler(seed uint64, pixel, sample int) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewPCG(StreamSeeds(seed, pixel, sample))))
}

// StreamSeeds derives the two PCG seed words for one sample task
func StreamSeeds(seed uint64, pixel, sample int) (uint64, uint64) {
	hi := splitMix64(seed ^ splitMix64(uint64(pixel)))
	lo := splitMix64(hi ^ splitMix64(uint64(sample)+0x632be59bd9b4e019))
	return hi, lo
}

// splitMix64 is the SplitMix64 finalizer
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	x := r.random.Float64()
	return NewVec2(x, r.random.Float64())
}

// RandomInRange returns a uniform value in [lo, hi)
func RandomInRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// RandomInUnitSphere returns a uniform point strictly inside the unit sphere
// by rejection from the [-1,1]³ cube.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		x := RandomInRange(sampler, -1, 1)
		y := RandomInRange(sampler, -1, 1)
		p := NewVec3(x, y, RandomInRange(sampler, -1, 1))
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a uniform direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk returns a uniform point strictly inside the unit disk in the XY plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		x := RandomInRange(sampler, -1, 1)
		p := NewVec3(x, RandomInRange(sampler, -1, 1), 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
