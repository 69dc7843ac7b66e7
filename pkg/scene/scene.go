// Package scene bundles a camera with a world and ships a small set of
// built-in demonstration scenes selectable by name.
package scene

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene is a fully assembled render job: a camera and the world it
// looks at.
type Scene struct {
	Camera *renderer.Camera
	World  *world.World
}

// builders maps scene names to their constructors. Constructors run on
// every lookup so callers get a fresh, mutable scene.
var builders = map[string]func(width, height int) (*Scene, error){
	"default":    NewDefaultScene,
	"csg":        NewCSGScene,
	"hexagon":    NewHexagonScene,
	"refraction": NewRefractionScene,
}

// Names returns the built-in scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named scene at the given image size.
func Lookup(name string, width, height int) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (have %v)", name, Names())
	}
	return build(width, height)
}

// mustTransform panics on a non-invertible transform. The built-in
// scenes use only rotations, scalings and translations, so a failure
// is a bug in the scene itself.
func mustTransform(err error) {
	if err != nil {
		panic(err)
	}
}

// lookAt is the camera placement every built-in scene uses.
func lookAt(width, height int, fov float64, from, to core.Tuple) (*renderer.Camera, error) {
	cam := renderer.NewCamera(width, height, fov)
	err := cam.SetTransform(core.ViewTransform(from, to, core.NewVector(0, 1, 0)))
	return cam, err
}
