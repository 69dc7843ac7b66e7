package core

import "math"

// Translation returns a matrix that moves points by (x, y, z).
// Vectors (W=0) are unaffected.
func Translation(x, y, z float64) Matrix {
	return NewMatrix([4][4]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling returns a matrix that scales each axis independently.
func Scaling(x, y, z float64) Matrix {
	return NewMatrix([4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotationX returns a rotation about the x axis by radians.
func RotationX(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix([4][4]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a rotation about the y axis by radians.
func RotationY(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix([4][4]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a rotation about the z axis by radians.
func RotationZ(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrix([4][4]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing returns a shear matrix where each parameter moves one
// coordinate in proportion to another (xy = x in proportion to y).
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform builds the world-to-camera matrix for an eye at from,
// looking at to, with the given up vector. Up does not need to be
// normalized or exactly perpendicular to the view direction.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
