package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersect computes all intersections between a ray and a shape. The
// ray is transformed into the shape's local space first; groups and
// CSG nodes recurse into their children with the already-localized
// ray. The result is sorted ascending by t.
func (t *Tree) Intersect(id ShapeID, ray core.Ray) Intersections {
	local := ray.Transform(t.shapes[id].inverse)
	return t.localIntersect(id, local)
}

func (t *Tree) localIntersect(id ShapeID, ray core.Ray) Intersections {
	s := &t.shapes[id]
	switch s.Kind {
	case KindSphere:
		return collect(id, intersectSphere(ray))
	case KindPlane:
		return collect(id, intersectPlane(ray))
	case KindCube:
		return collect(id, intersectCube(ray))
	case KindCylinder:
		return collect(id, intersectCylinder(s, ray))
	case KindCone:
		return collect(id, intersectCone(s, ray))
	case KindTriangle:
		return collect(id, intersectTriangle(s, ray))
	case KindGroup:
		var xs Intersections
		for _, child := range s.children {
			xs = append(xs, t.Intersect(child, ray)...)
		}
		return xs.Sort()
	case KindCSG:
		xs := t.Intersect(s.children[0], ray)
		xs = append(xs, t.Intersect(s.children[1], ray)...)
		return t.filterCSG(id, xs.Sort())
	}
	panic(fmt.Sprintf("localIntersect: unknown shape kind %d", s.Kind))
}

func collect(id ShapeID, ts []float64) Intersections {
	if len(ts) == 0 {
		return nil
	}
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Shape: id})
	}
	return xs.Sort()
}

// localNormalAt dispatches the object-space normal computation for a
// primitive. Groups and CSG nodes have no surface of their own: hits
// always reference leaf shapes.
func localNormalAt(s *Shape, point core.Tuple) core.Tuple {
	switch s.Kind {
	case KindSphere:
		return normalSphere(point)
	case KindPlane:
		return normalPlane()
	case KindCube:
		return normalCube(point)
	case KindCylinder:
		return normalCylinder(s, point)
	case KindCone:
		return normalCone(s, point)
	case KindTriangle:
		return s.Normal
	}
	panic(fmt.Sprintf("localNormalAt: %s has no surface", s.Kind))
}
