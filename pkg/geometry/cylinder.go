package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectCylinder intersects a unit-radius cylinder along the y
// axis. Side hits outside the (Min, Max) range are discarded; caps are
// tested separately when the cylinder is closed.
func intersectCylinder(s *Shape, ray core.Ray) []float64 {
	var ts []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		// Not parallel to the y axis; the side quadratic applies.
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}

		sqrtDisc := math.Sqrt(disc)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if s.Min < y0 && y0 < s.Max {
			ts = append(ts, t0)
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if s.Min < y1 && y1 < s.Max {
			ts = append(ts, t1)
		}
	}

	return appendCylinderCaps(s, ray, ts)
}

// appendCylinderCaps intersects the bounding disks at y=Min and y=Max.
func appendCylinderCaps(s *Shape, ray core.Ray, ts []float64) []float64 {
	if !s.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return ts
	}

	t := (s.Min - ray.Origin.Y) / ray.Direction.Y
	if withinCapRadius(ray, t, 1) {
		ts = append(ts, t)
	}

	t = (s.Max - ray.Origin.Y) / ray.Direction.Y
	if withinCapRadius(ray, t, 1) {
		ts = append(ts, t)
	}
	return ts
}

// withinCapRadius checks that the point at t lies within the given
// radius of the y axis.
func withinCapRadius(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

func normalCylinder(s *Shape, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= s.Max-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= s.Min+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
