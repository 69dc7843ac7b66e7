package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewHexagonScene builds a hexagonal ring of spheres joined by
// cylinders, assembled as a group of six rotated edge groups.
func NewHexagonScene(width, height int) (*Scene, error) {
	w := world.New()
	w.Lights = []world.PointLight{
		world.NewPointLight(core.NewPoint(-5, 8, -8), core.White),
	}
	tree := w.Objects

	hex := tree.Add(geometry.NewGroup())
	hm := material.New()
	hm.Color = core.NewColor(0.8, 0.7, 0.2)
	hm.Specular = 0.6
	hm.Shininess = 50
	tree.SetMaterial(hex, hm)

	for i := 0; i < 6; i++ {
		if err := addHexagonSide(tree, hex, float64(i)*math.Pi/3); err != nil {
			return nil, err
		}
	}
	mustTransform(tree.SetTransform(hex, core.Translation(0, 1, 0)))

	cam, err := lookAt(width, height, math.Pi/3,
		core.NewPoint(0, 4, -4), core.NewPoint(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return &Scene{Camera: cam, World: w}, nil
}

// addHexagonSide attaches one corner sphere and one edge cylinder,
// rotated into place around the ring.
func addHexagonSide(tree *geometry.Tree, hex geometry.ShapeID, angle float64) error {
	side := tree.AddChild(hex, geometry.NewGroup())
	if err := tree.SetTransform(side, core.RotationY(angle)); err != nil {
		return err
	}

	corner := tree.AddChild(side, geometry.NewSphere())
	if err := tree.SetTransform(corner,
		core.Translation(0, 0, -1).Multiply(core.Scaling(0.25, 0.25, 0.25))); err != nil {
		return err
	}

	edge, err := geometry.NewCylinder(0, 1, false)
	if err != nil {
		return err
	}
	edgeID := tree.AddChild(side, edge)
	m := core.Translation(0, 0, -1).
		Multiply(core.RotationY(-math.Pi / 6)).
		Multiply(core.RotationZ(-math.Pi / 2)).
		Multiply(core.Scaling(0.25, 1, 0.25))
	return tree.SetTransform(edgeID, m)
}
