package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewRefractionScene builds a glass sphere with an air bubble inside,
// hovering over a checkered floor so the refraction is visible.
func NewRefractionScene(width, height int) (*Scene, error) {
	w := world.New()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)),
	}
	tree := w.Objects

	floor := geometry.NewPlane()
	fm := material.New()
	fm.Pattern = material.NewCheckerPattern(core.White, core.NewColor(0.15, 0.15, 0.15))
	fm.Ambient = 0.8
	fm.Diffuse = 0.2
	fm.Specular = 0
	floor.Material = &fm
	floorID := tree.Add(floor)
	mustTransform(tree.SetTransform(floorID, core.Translation(0, -10.1, 0)))

	outer := geometry.NewGlassSphere()
	om := *outer.Material
	om.Diffuse = 0.1
	om.Ambient = 0
	om.Specular = 0.9
	om.Shininess = 300
	om.Reflective = 0.9
	outer.Material = &om
	tree.Add(outer)

	// The bubble: ordinary air, refractive index 1.
	bubble := geometry.NewGlassSphere()
	bm := *bubble.Material
	bm.RefractiveIndex = 1.0000034
	bm.Diffuse = 0.1
	bm.Ambient = 0
	bm.Specular = 0.9
	bm.Shininess = 300
	bm.Reflective = 0.9
	bubble.CastsShadow = false
	bubble.Material = &bm
	bubbleID := tree.Add(bubble)
	mustTransform(tree.SetTransform(bubbleID, core.Scaling(0.5, 0.5, 0.5)))

	// Looking straight down: the up vector must not be parallel to the
	// view direction.
	cam := renderer.NewCamera(width, height, 0.45)
	if err := cam.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, 0),
		core.NewPoint(0, 0, 0),
		core.NewVector(1, 0, 0),
	)); err != nil {
		return nil, err
	}
	return &Scene{Camera: cam, World: w}, nil
}
