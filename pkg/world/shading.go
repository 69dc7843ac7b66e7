package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Lighting computes the Phong contribution of one light at a surface
// point. Patterns are evaluated in the shape's object space, which the
// tree resolves through the shape's ancestor transforms. In shadow only
// the ambient term survives.
func Lighting(m material.Material, tree *geometry.Tree, id geometry.ShapeID, light PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.ColorAt(tree.WorldToObject(id, point))
	}

	effective := color.MultiplyColor(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light on the far side of the surface.
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDotEye := lightv.Negate().Reflect(normalv).Dot(eyev)
	if reflectDotEye > 0 {
		specular = light.Intensity.Multiply(m.Specular * math.Pow(reflectDotEye, m.Shininess))
	}

	return ambient.Add(diffuse).Add(specular)
}

// IsShadowed reports whether a point is cut off from a light by an
// occluder between the two. Shapes with shadow casting disabled are
// skipped.
func (w *World) IsShadowed(point core.Tuple, light PointLight) bool {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	r := core.NewRay(point, v.Normalize())

	for _, x := range w.Intersect(r) {
		if x.T <= 0 {
			continue
		}
		if x.T >= distance {
			break
		}
		if w.Objects.Shape(x.Shape).CastsShadow {
			return true
		}
	}
	return false
}

// ShadeHit computes the color at a prepared intersection: the summed
// Phong contribution of every light, plus the reflected and refracted
// colors. When the surface is both reflective and transparent the two
// secondary colors are combined with the Schlick reflectance.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	m := w.Objects.MaterialFor(comps.Shape)

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(Lighting(m, w.Objects, comps.Shape, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt traces a ray into the world and shades the nearest visible
// hit. A miss is the background: black. remaining bounds the reflection
// and refraction recursion.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := PrepareComputations(w.Objects, hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ReflectedColor traces the reflection bounce. A matte surface or an
// exhausted depth budget contributes black.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	m := w.Objects.MaterialFor(comps.Shape)
	if m.Reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(m.Reflective)
}

// RefractedColor traces the transmitted ray through a transparent
// surface using Snell's law. Total internal reflection, an opaque
// surface, or an exhausted depth budget contribute black.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	m := w.Objects.MaterialFor(comps.Shape)
	if m.Transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection.
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(m.Transparency)
}

// Schlick approximates the Fresnel reflectance at a prepared
// intersection. Total internal reflection gives 1 (a perfect mirror).
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		// When the ray leaves the denser medium, the transmitted
		// angle's cosine drives the reflectance.
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
