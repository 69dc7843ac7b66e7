package core

// Color is an RGB triple. Components are unbounded floats during
// shading; they are only clamped when the canvas converts to pixels.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from red, green and blue components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the background color and the color of an exhausted
// recursion branch.
var Black = Color{0, 0, 0}

// White is full-intensity white.
var White = Color{1, 1, 1}

// Add returns the component-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// MultiplyColor returns the Hadamard product of two colors, used to
// combine a surface color with a light's intensity.
func (c Color) MultiplyColor(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Equals reports whether two colors are equal within Epsilon.
func (c Color) Equals(o Color) bool {
	return FloatEqual(c.R, o.R) && FloatEqual(c.G, o.G) && FloatEqual(c.B, o.B)
}
