// Package canvas holds the render target: a rectangular grid of
// unclamped colors with PPM and PNG export.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a width x height grid of colors. Pixels are stored
// unclamped; clamping to [0,255] happens on export.
type Canvas struct {
	Width, Height int
	pixels        []core.Color
}

// New creates a canvas with every pixel black.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel sets the pixel at (x, y). Writes outside the canvas are
// ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the pixel at (x, y).
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// clamp converts one float component to the 0..255 PPM range.
func clamp(v float64) int {
	scaled := int(math.Round(v * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}

// WritePPM writes the canvas as a plain (P3) PPM file. Lines are kept
// at 70 characters or fewer for strict readers.
func (c *Canvas) WritePPM(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		line := ""
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			for _, v := range []float64{p.R, p.G, p.B} {
				sample := strconv.Itoa(clamp(v))
				switch {
				case line == "":
					line = sample
				case len(line)+1+len(sample) > 70:
					b.WriteString(line)
					b.WriteByte('\n')
					line = sample
				default:
					line += " " + sample
				}
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing ppm")
}

// ToImage converts the canvas to an image for PNG export.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			img.Set(x, y, color.RGBA{
				R: uint8(clamp(p.R)),
				G: uint8(clamp(p.G)),
				B: uint8(clamp(p.B)),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, c.ToImage()), "encoding png")
}
