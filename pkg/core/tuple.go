package core

import "math"

// Epsilon is the tolerance used for float comparisons throughout the
// renderer, and for the over/under point offsets that keep shadow and
// refraction rays from re-intersecting the surface they left.
const Epsilon = 1e-5

// FloatEqual reports whether two floats are equal within Epsilon.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a 4-component value. W=1 marks a point, W=0 a vector; the
// distinction is what makes point-point yield a vector and point+vector
// yield a point under plain component arithmetic.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point tuple (W=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector tuple (W=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool { return t.W == 1 }

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool { return t.W == 0 }

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Subtract returns the component-wise difference of two tuples.
func (t Tuple) Subtract(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Magnitude returns the length of a vector.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit vector in the same direction. Normalizing a
// zero vector returns the zero vector rather than NaNs.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag == 0 {
		return Tuple{}
	}
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

// Dot returns the dot product of two tuples. For unit vectors this is
// the cosine of the angle between them.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the cross product of two vectors. Only the x/y/z
// components participate; the result is always a vector.
func (t Tuple) Cross(o Tuple) Tuple {
	return NewVector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Reflect returns the vector reflected about the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether two tuples are equal within Epsilon.
func (t Tuple) Equals(o Tuple) bool {
	return FloatEqual(t.X, o.X) && FloatEqual(t.Y, o.Y) &&
		FloatEqual(t.Z, o.Z) && FloatEqual(t.W, o.W)
}
