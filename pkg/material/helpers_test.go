package material

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// sequenceSampler replays a fixed list of values, cycling when exhausted
type sequenceSampler struct {
	values []float64
	next   int
}

func newSequenceSampler(values ...float64) *sequenceSampler {
	return &sequenceSampler{values: values}
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 {
	x := s.Get1D()
	return core.NewVec2(x, s.Get1D())
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
