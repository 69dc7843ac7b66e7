// Package geometry implements the shape set and the scene graph. The
// shape kinds form a closed enum dispatched by switch, and shapes live
// in a flat arena (Tree) that links parents and children by index, so
// transform and material inheritance walk indices instead of pointers.
package geometry

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Construction-time geometry errors.
var (
	ErrDegenerateTriangle = errors.New("triangle has zero area")
	ErrInvalidBounds      = errors.New("lower bound is above upper bound")
)

// Kind enumerates the closed set of shape variants.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindGroup
	KindCSG
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindTriangle:
		return "triangle"
	case KindGroup:
		return "group"
	case KindCSG:
		return "csg"
	}
	return "unknown"
}

// Shape is one node of the scene graph: a primitive, a group, or a CSG
// combination. Kind-specific fields are only meaningful for the
// matching kind. A nil Material inherits from the nearest ancestor
// with an explicit one.
type Shape struct {
	Kind Kind

	// Cylinder and cone truncation.
	Min, Max float64
	Closed   bool

	// Triangle vertices with precomputed edges and face normal.
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple

	// CSG operation; operands are children[0] and children[1].
	Op Operation

	Material    *material.Material
	CastsShadow bool

	transform    core.Matrix
	inverse      core.Matrix
	invTranspose core.Matrix

	parent   ShapeID
	children []ShapeID
}

func newShape(kind Kind) Shape {
	return Shape{
		Kind:         kind,
		CastsShadow:  true,
		transform:    core.Identity(),
		inverse:      core.Identity(),
		invTranspose: core.Identity(),
		parent:       None,
	}
}

// NewSphere creates a unit sphere centered at the origin.
func NewSphere() Shape { return newShape(KindSphere) }

// NewGlassSphere creates a unit sphere with a glass material.
func NewGlassSphere() Shape {
	s := newShape(KindSphere)
	m := material.Glass()
	s.Material = &m
	return s
}

// NewPlane creates the xz plane (y = 0).
func NewPlane() Shape { return newShape(KindPlane) }

// NewCube creates an axis-aligned cube spanning [-1,1] on each axis.
func NewCube() Shape { return newShape(KindCube) }

// NewCylinder creates a unit-radius cylinder along the y axis,
// truncated to (min, max) and optionally capped. Construction fails if
// min > max.
func NewCylinder(min, max float64, closed bool) (Shape, error) {
	if min > max {
		return Shape{}, errors.Wrapf(ErrInvalidBounds, "cylinder min %g, max %g", min, max)
	}
	s := newShape(KindCylinder)
	s.Min, s.Max, s.Closed = min, max, closed
	return s, nil
}

// NewInfiniteCylinder creates an unbounded open cylinder.
func NewInfiniteCylinder() Shape {
	s := newShape(KindCylinder)
	s.Min, s.Max = math.Inf(-1), math.Inf(1)
	return s
}

// NewCone creates a double-napped unit cone along the y axis,
// truncated to (min, max) and optionally capped. Construction fails if
// min > max.
func NewCone(min, max float64, closed bool) (Shape, error) {
	if min > max {
		return Shape{}, errors.Wrapf(ErrInvalidBounds, "cone min %g, max %g", min, max)
	}
	s := newShape(KindCone)
	s.Min, s.Max, s.Closed = min, max, closed
	return s, nil
}

// NewInfiniteCone creates an unbounded open cone.
func NewInfiniteCone() Shape {
	s := newShape(KindCone)
	s.Min, s.Max = math.Inf(-1), math.Inf(1)
	return s
}

// NewTriangle creates a triangle from three vertices. The edge vectors
// and face normal are precomputed; a zero-area triangle is rejected.
func NewTriangle(p1, p2, p3 core.Tuple) (Shape, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	normal := e2.Cross(e1)
	if normal.Magnitude() < core.Epsilon {
		return Shape{}, errors.Wrapf(ErrDegenerateTriangle, "vertices %+v %+v %+v", p1, p2, p3)
	}
	s := newShape(KindTriangle)
	s.P1, s.P2, s.P3 = p1, p2, p3
	s.E1, s.E2 = e1, e2
	s.Normal = normal.Normalize()
	return s, nil
}

// NewGroup creates an empty group. Children are attached with
// Tree.AddChild.
func NewGroup() Shape { return newShape(KindGroup) }

// SetTransform sets the local-to-parent transform. The inverse and its
// transpose are computed once here, so a degenerate transform fails
// scene construction instead of a render.
func (s *Shape) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return errors.Wrapf(err, "%s transform is not invertible", s.Kind)
	}
	s.transform = m
	s.inverse = inv
	s.invTranspose = inv.Transpose()
	return nil
}

// Transform returns the local-to-parent transform.
func (s *Shape) Transform() core.Matrix { return s.transform }
