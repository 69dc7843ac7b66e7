package loaders

import (
	"math"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// LoadOBJFile reads a Wavefront OBJ mesh from disk and wraps it in a
// ready-to-render scene: the mesh with its default material, a single
// point light above and behind the camera, and a camera framing the
// mesh's bounding box.
func LoadOBJFile(path string, width, height int) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening obj file")
	}
	defer f.Close()

	model, err := ParseOBJ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	glog.Infof("loaded %s: %d vertices, %d triangles, %d ignored lines",
		path, len(model.Vertices), model.TriangleCount(), model.Ignored)

	w := world.New()
	model.AddToTree(w.Objects)

	center, radius := model.bounds()
	w.Lights = []world.PointLight{
		world.NewPointLight(center.Add(core.NewVector(-2*radius, 4*radius, -5*radius)), core.White),
	}

	cam := renderer.NewCamera(width, height, math.Pi/3)
	from := center.Add(core.NewVector(0, radius/2, -2.5*radius))
	if err := cam.SetTransform(core.ViewTransform(from, center, core.NewVector(0, 1, 0))); err != nil {
		return nil, err
	}
	return &scene.Scene{Camera: cam, World: w}, nil
}

// bounds returns the center and half-diagonal of the vertex bounding
// box. Degenerate meshes get a unit radius so the camera still has
// somewhere to stand.
func (o *OBJ) bounds() (core.Tuple, float64) {
	if len(o.Vertices) == 0 {
		return core.NewPoint(0, 0, 0), 1
	}
	min, max := o.Vertices[0], o.Vertices[0]
	for _, v := range o.Vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	center := core.NewPoint((min.X+max.X)/2, (min.Y+max.Y)/2, (min.Z+max.Z)/2)
	radius := max.Subtract(min).Magnitude() / 2
	if radius < core.Epsilon {
		radius = 1
	}
	return center, radius
}
