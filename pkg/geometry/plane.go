package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectPlane intersects the xz plane. A ray parallel to the plane
// (including coplanar rays) misses.
func intersectPlane(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func normalPlane() core.Tuple {
	return core.NewVector(0, 1, 0)
}
