package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectCone intersects a double-napped cone whose apex sits at the
// origin and whose halves open along the y axis. When the quadratic
// degenerates (a ~ 0) the ray is parallel to one half and can still
// hit the other, giving a single linear root.
func intersectCone(s *Shape, ray core.Ray) []float64 {
	var ts []float64

	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Parallel to both halves: no side hit.
	case math.Abs(a) < core.Epsilon:
		t := -c / (2 * b)
		y := ray.Origin.Y + t*ray.Direction.Y
		if s.Min < y && y < s.Max {
			ts = append(ts, t)
		}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			break
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

	return appendConeCaps(s, ray, ts)
}

// appendConeCaps intersects the bounding disks. Unlike the cylinder,
// the cap radius equals the |y| of the plane being tested.
func appendConeCaps(s *Shape, ray core.Ray, ts []float64) []float64 {
	if !s.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return ts
	}

	t := (s.Min - ray.Origin.Y) / ray.Direction.Y
	if withinCapRadius(ray, t, math.Abs(s.Min)) {
		ts = append(ts, t)
	}

	t = (s.Max - ray.Origin.Y) / ray.Direction.Y
	if withinCapRadius(ray, t, math.Abs(s.Max)) {
		ts = append(ts, t)
	}
	return ts
}

func normalCone(s *Shape, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < s.Max*s.Max && point.Y >= s.Max-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < s.Min*s.Min && point.Y <= s.Min+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
