package material

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PatternKind enumerates the closed set of pattern designs.
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker
	PatternBlend
	PatternNested
)

// Pattern is a spatially varying color function. Solid through checker
// use the A/B colors; blend and nested delegate to the SubA/SubB
// patterns. The transform maps object space into pattern space and its
// inverse is precomputed when the transform is set.
type Pattern struct {
	Kind       PatternKind
	A, B       core.Color
	SubA, SubB *Pattern

	transform core.Matrix
	inverse   core.Matrix
}

// NewSolidPattern returns a pattern that is the same color everywhere.
func NewSolidPattern(c core.Color) *Pattern {
	return newPattern(PatternSolid, c, c)
}

// NewStripePattern alternates two colors with the parity of floor(x).
func NewStripePattern(a, b core.Color) *Pattern {
	return newPattern(PatternStripe, a, b)
}

// NewGradientPattern blends linearly from a to b across one unit of x.
func NewGradientPattern(a, b core.Color) *Pattern {
	return newPattern(PatternGradient, a, b)
}

// NewRingPattern alternates two colors in concentric rings around the
// y axis.
func NewRingPattern(a, b core.Color) *Pattern {
	return newPattern(PatternRing, a, b)
}

// NewCheckerPattern alternates two colors in a 3D checkerboard.
func NewCheckerPattern(a, b core.Color) *Pattern {
	return newPattern(PatternChecker, a, b)
}

// NewBlendPattern averages two sub-patterns.
func NewBlendPattern(a, b *Pattern) *Pattern {
	p := newPattern(PatternBlend, core.Black, core.Black)
	p.SubA, p.SubB = a, b
	return p
}

// NewNestedPattern picks one of two sub-patterns by the checker parity
// rule and evaluates it.
func NewNestedPattern(a, b *Pattern) *Pattern {
	p := newPattern(PatternNested, core.Black, core.Black)
	p.SubA, p.SubB = a, b
	return p
}

func newPattern(kind PatternKind, a, b core.Color) *Pattern {
	return &Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// SetTransform sets the pattern-space transform. A non-invertible
// transform is rejected so pattern evaluation never fails mid-render.
func (p *Pattern) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return errors.Wrap(err, "pattern transform is not invertible")
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// Transform returns the pattern-space transform.
func (p *Pattern) Transform() core.Matrix { return p.transform }

// ColorAt evaluates the pattern at an object-space point, applying the
// pattern's own transform first.
func (p *Pattern) ColorAt(objectPoint core.Tuple) core.Color {
	return p.at(p.inverse.MultiplyTuple(objectPoint))
}

func (p *Pattern) at(point core.Tuple) core.Color {
	switch p.Kind {
	case PatternSolid:
		return p.A
	case PatternStripe:
		if mod2(math.Floor(point.X)) == 0 {
			return p.A
		}
		return p.B
	case PatternGradient:
		distance := p.B.Subtract(p.A)
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(distance.Multiply(fraction))
	case PatternRing:
		if mod2(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z))) == 0 {
			return p.A
		}
		return p.B
	case PatternChecker:
		if mod2(math.Floor(point.X)+math.Floor(point.Y)+math.Floor(point.Z)) == 0 {
			return p.A
		}
		return p.B
	case PatternBlend:
		a := p.SubA.ColorAt(point)
		b := p.SubB.ColorAt(point)
		return a.Add(b).Multiply(0.5)
	case PatternNested:
		if mod2(math.Floor(point.X)+math.Floor(point.Y)+math.Floor(point.Z)) == 0 {
			return p.SubA.ColorAt(point)
		}
		return p.SubB.ColorAt(point)
	}
	return core.Black
}

// mod2 is the parity of a floored coordinate, correct for negatives.
func mod2(v float64) int {
	m := int(v) % 2
	if m < 0 {
		m += 2
	}
	return m
}
