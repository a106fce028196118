package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most
	// depth scattering events through world.
	RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3
}

// PathOutcome describes how a traced path ended
type PathOutcome uint8

const (
	PathExhausted PathOutcome = iota // Depth budget ran out
	PathEscaped                      // Ray left the scene and picked up the background
	PathAbsorbed                     // A material absorbed the ray
)

// String returns a lower-case outcome name
func (o PathOutcome) String() string {
	switch o {
	case PathEscaped:
		return "escaped"
	case PathAbsorbed:
		return "absorbed"
	default:
		return "exhausted"
	}
}

// PathResult is the radiance of one traced path along with how it ended
type PathResult struct {
	Color   core.Vec3
	Bounces int // Number of successful scattering events
	Outcome PathOutcome
}
