// Package material defines surface appearance: Phong shading
// parameters, reflection/refraction coefficients, and spatially varying
// patterns evaluated in pattern space.
package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material holds the Phong parameters plus the reflection and
// refraction coefficients for a surface. A nil Pattern means the flat
// Color is used everywhere.
type Material struct {
	Color           core.Color
	Pattern         *Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 matte .. 1 mirror
	Transparency    float64 // 0 opaque .. 1 clear
	RefractiveIndex float64 // 1.0 = vacuum
}

// New returns the default material: white, mostly diffuse, opaque.
func New() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: 1,
	}
}

// Glass returns a fully transparent material with the refractive index
// of glass.
func Glass() Material {
	m := New()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	return m
}
