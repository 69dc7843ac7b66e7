package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewCSGScene builds a dice-like rounded cube: a cube intersected with
// a sphere, with a cylinder bored out of the middle.
func NewCSGScene(width, height int) (*Scene, error) {
	w := world.New()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(-8, 10, -10), core.White),
	}
	tree := w.Objects

	floor := geometry.NewPlane()
	fm := material.New()
	fm.Pattern = material.NewCheckerPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.3, 0.3, 0.3),
	)
	fm.Specular = 0
	floor.Material = &fm
	tree.Add(floor)

	cube := geometry.NewCube()
	cm := material.New()
	cm.Color = core.NewColor(0.9, 0.2, 0.2)
	cm.Reflective = 0.1
	cube.Material = &cm
	cubeID := tree.Add(cube)

	sphere := geometry.NewSphere()
	sm := material.New()
	sm.Color = core.NewColor(0.9, 0.2, 0.2)
	sphere.Material = &sm
	sphereID := tree.Add(sphere)
	mustTransform(tree.SetTransform(sphereID, core.Scaling(1.4, 1.4, 1.4)))

	rounded := tree.AddCSG(geometry.OpIntersection, cubeID, sphereID)

	bore, err := geometry.NewCylinder(-2, 2, true)
	if err != nil {
		return nil, err
	}
	bm := material.New()
	bm.Color = core.NewColor(0.2, 0.2, 0.9)
	bore.Material = &bm
	boreID := tree.Add(bore)
	mustTransform(tree.SetTransform(boreID, core.Scaling(0.5, 1, 0.5)))

	die := tree.AddCSG(geometry.OpDifference, rounded, boreID)
	mustTransform(tree.SetTransform(die,
		core.Translation(0, 1, 0).Multiply(core.RotationY(math.Pi/6))))

	cam, err := lookAt(width, height, math.Pi/3,
		core.NewPoint(0, 2.5, -6), core.NewPoint(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return &Scene{Camera: cam, World: w}, nil
}
