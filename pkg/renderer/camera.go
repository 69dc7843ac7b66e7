// Package renderer maps the scene onto pixels: a pinhole camera that
// generates one ray per pixel center, and a render driver that shades
// rows in parallel onto a canvas.
package renderer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera. The view transform maps world space into
// camera space; rays are generated on a canvas one unit in front of the
// eye, sized from the field of view and the aspect ratio.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64

	transform core.Matrix
	inverse   core.Matrix

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for a hsize x vsize pixel image with the
// given vertical-or-horizontal field of view in radians. The narrower
// image dimension spans the field of view.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// PixelSize returns the world-space size of one pixel on the canvas
// plane.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// SetTransform sets the world-to-camera view transform.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return errors.Wrap(err, "camera transform is not invertible")
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the view transform.
func (c *Camera) Transform() core.Matrix { return c.transform }

// RayForPixel returns the world-space ray through the center of the
// given pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from the canvas edge to the pixel center.
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates; +x is left because the camera
	// looks toward -z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
