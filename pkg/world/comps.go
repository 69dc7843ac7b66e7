package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Computations carries the per-hit state that shading needs: the hit
// point with its shadow and refraction offsets, the eye, normal and
// reflection vectors, and the refractive indices on both sides of the
// surface.
type Computations struct {
	T          float64
	Shape      geometry.ShapeID
	Point      core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	Inside     bool
	N1, N2     float64
}

// PrepareComputations derives the shading state for one intersection.
// The full intersection list is needed to determine N1 and N2: walking
// it in t order tracks which shapes the ray is currently inside of, so
// the refractive indices either side of the hit fall out of the
// containers stack when the hit itself is reached.
func PrepareComputations(tree *geometry.Tree, hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	comps := Computations{
		T:     hit.T,
		Shape: hit.Shape,
		N1:    1,
		N2:    1,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = tree.NormalAt(hit.Shape, comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	var containers []geometry.ShapeID
	for _, x := range xs {
		if x == hit {
			if len(containers) == 0 {
				comps.N1 = 1
			} else {
				comps.N1 = tree.MaterialFor(containers[len(containers)-1]).RefractiveIndex
			}
		}

		if i := indexOf(containers, x.Shape); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if x == hit {
			if len(containers) == 0 {
				comps.N2 = 1
			} else {
				comps.N2 = tree.MaterialFor(containers[len(containers)-1]).RefractiveIndex
			}
			break
		}
	}

	return comps
}

func indexOf(ids []geometry.ShapeID, id geometry.ShapeID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
