package integrator

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// DefaultTMin skips self-intersections caused by floating point error at the previous hit point
const DefaultTMin = 0.001

var (
	white  = core.NewVec3(1.0, 1.0, 1.0)
	skyTop = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a sky gradient
type PathTracingIntegrator struct {
	tMin float64
	tMax float64
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{
		tMin: DefaultTMin,
		tMax: math.Inf(1),
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	return pt.TracePath(ray, world, depth, sampler).Color
}

// TracePath follows a ray through at most depth scattering events.
// The result is a1 * (a2 * (... * terminal)) over the bounce attenuations, where
// the terminal color is the background for an escaped ray and black otherwise.
func (pt *PathTracingIntegrator) TracePath(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) PathResult {
	var attenuations []core.Vec3
	current := ray

	for remaining := depth; ; remaining-- {
		// If we've exceeded the ray bounce limit, no more light is gathered
		if remaining <= 0 {
			return PathResult{Bounces: len(attenuations), Outcome: PathExhausted}
		}

		hit, isHit := world.Hit(current, pt.tMin, pt.tMax)
		if !isHit {
			return PathResult{
				Color:   foldAttenuations(attenuations, Background(current)),
				Bounces: len(attenuations),
				Outcome: PathEscaped,
			}
		}

		scatter, didScatter := hit.Material.Scatter(current, hit, sampler)
		if !didScatter {
			return PathResult{Bounces: len(attenuations), Outcome: PathAbsorbed}
		}

		attenuations = append(attenuations, scatter.Attenuation)
		current = scatter.Scattered
	}
}

// foldAttenuations multiplies from the innermost bounce outwards, reproducing
// the evaluation order of the recursive formulation exactly.
func foldAttenuations(attenuations []core.Vec3, terminal core.Vec3) core.Vec3 {
	color := terminal
	for i := len(attenuations) - 1; i >= 0; i-- {
		color = attenuations[i].MultiplyVec(color)
	}
	return color
}

// Background returns the sky gradient seen by a ray that leaves the scene:
// white at the horizon blending to light blue at the zenith.
func Background(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return white.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}
