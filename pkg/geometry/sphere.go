package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectSphere solves the quadratic for a unit sphere at the
// origin. A negative discriminant means the ray misses; a tangent ray
// yields two equal roots.
func intersectSphere(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(disc)
	return []float64{
		(-b - sqrtDisc) / (2 * a),
		(-b + sqrtDisc) / (2 * a),
	}
}

func normalSphere(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
