package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene builds three glossy spheres on a checkered floor with
// a striped backdrop wall.
func NewDefaultScene(width, height int) (*Scene, error) {
	w := world.New()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
	}
	tree := w.Objects

	floor := geometry.NewPlane()
	fm := material.New()
	fm.Pattern = material.NewCheckerPattern(
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.2, 0.2, 0.2),
	)
	fm.Specular = 0
	fm.Reflective = 0.1
	floor.Material = &fm
	tree.Add(floor)

	wall := geometry.NewPlane()
	wm := material.New()
	wm.Pattern = material.NewStripePattern(
		core.NewColor(0.6, 0.6, 0.9),
		core.NewColor(0.4, 0.4, 0.7),
	)
	wm.Specular = 0
	wall.Material = &wm
	wallID := tree.Add(wall)
	mustTransform(tree.SetTransform(wallID,
		core.Translation(0, 0, 8).Multiply(core.RotationX(math.Pi/2))))

	middle := geometry.NewSphere()
	mm := material.New()
	mm.Color = core.NewColor(0.1, 1, 0.5)
	mm.Diffuse = 0.7
	mm.Specular = 0.3
	mm.Reflective = 0.2
	middle.Material = &mm
	middleID := tree.Add(middle)
	mustTransform(tree.SetTransform(middleID, core.Translation(-0.5, 1, 0.5)))

	right := geometry.NewSphere()
	rm := material.New()
	rm.Color = core.NewColor(0.5, 1, 0.1)
	rm.Diffuse = 0.7
	rm.Specular = 0.3
	rm.Pattern = material.NewGradientPattern(
		core.NewColor(0.5, 1, 0.1),
		core.NewColor(1, 0.2, 0.2),
	)
	right.Material = &rm
	rightID := tree.Add(right)
	mustTransform(tree.SetTransform(rightID,
		core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5))))

	left := geometry.NewSphere()
	lm := material.New()
	lm.Color = core.NewColor(1, 0.8, 0.1)
	lm.Diffuse = 0.7
	lm.Specular = 0.3
	left.Material = &lm
	leftID := tree.Add(left)
	mustTransform(tree.SetTransform(leftID,
		core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33))))

	cam, err := lookAt(width, height, math.Pi/3,
		core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return &Scene{Camera: cam, World: w}, nil
}
