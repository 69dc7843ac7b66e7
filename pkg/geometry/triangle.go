package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectTriangle implements the Möller–Trumbore test using the edge
// vectors cached at construction time. Rays parallel to the triangle's
// plane, or hitting outside the barycentric range, miss.
func intersectTriangle(s *Shape, ray core.Ray) []float64 {
	dirCrossE2 := ray.Direction.Cross(s.E2)
	det := s.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1 / det
	p1ToOrigin := ray.Origin.Subtract(s.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(s.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	return []float64{f * s.E2.Dot(originCrossE1)}
}
