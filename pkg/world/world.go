// Package world assembles the scene graph with its lights and drives
// Whitted shading: local Phong illumination plus recursive reflection
// and refraction, bounded by an explicit depth budget.
package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World is a renderable scene: a shape arena plus one or more lights.
type World struct {
	Objects *geometry.Tree
	Lights  []PointLight
}

// New creates an empty world with no shapes and no lights.
func New() *World {
	return &World{Objects: geometry.NewTree()}
}

// Default creates the two-sphere reference scene used throughout the
// shading tests: an outer green-ish sphere containing a half-size inner
// one, lit by a single white light.
func Default() *World {
	w := New()
	w.Lights = []PointLight{
		NewPointLight(core.NewPoint(-10, 10, -10), core.White),
	}

	outer := geometry.NewSphere()
	m := material.New()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.Material = &m
	w.Objects.Add(outer)

	inner := geometry.NewSphere()
	id := w.Objects.Add(inner)
	if err := w.Objects.SetTransform(id, core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}
	return w
}

// Intersect computes every intersection between the ray and the scene,
// sorted ascending by t.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, root := range w.Objects.Roots() {
		xs = append(xs, w.Objects.Intersect(root, ray)...)
	}
	return xs.Sort()
}
