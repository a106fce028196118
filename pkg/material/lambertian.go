package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// scatterLambertian scatters around the normal with a cosine-weighted
// distribution by offsetting the normal with a random unit vector.
func (m Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector almost cancelled the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.albedo,
	}, true
}
