package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// scatterMetal reflects about the normal and perturbs the result by fuzz
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// The perturbation is drawn for perfect mirrors too, keeping one sample layout per variant.
	perturbation := core.RandomInUnitSphere(sampler).Multiply(m.fuzz)
	scattered := core.NewRay(hit.Point, reflected.Add(perturbation))

	// Rays pushed below the surface are absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
