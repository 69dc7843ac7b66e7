package loaders

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// LoadYAMLFile reads a YAML scene description from disk. Relative obj
// file references resolve against the scene file's directory.
func LoadYAMLFile(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene file")
	}
	defer f.Close()
	return loadYAML(f, filepath.Dir(path))
}

// LoadYAML reads a YAML scene description. The format is a list of
// entries: "add" entries place the camera, lights and shapes, and
// "define" entries name reusable material and transform fragments that
// later entries reference and extend.
func LoadYAML(r io.Reader) (*scene.Scene, error) {
	return loadYAML(r, ".")
}

func loadYAML(r io.Reader, dir string) (*scene.Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}

	var entries []map[string]interface{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "parsing scene yaml")
	}

	p := &yamlParser{
		dir:        dir,
		scene:      &scene.Scene{World: world.New()},
		materials:  make(map[string]material.Material),
		transforms: make(map[string][]interface{}),
	}
	for i, e := range entries {
		if err := p.entry(e); err != nil {
			return nil, errors.Wrapf(err, "scene entry %d", i+1)
		}
	}
	if p.scene.Camera == nil {
		return nil, errors.New("scene defines no camera")
	}
	return p.scene, nil
}

type yamlParser struct {
	dir        string
	scene      *scene.Scene
	materials  map[string]material.Material
	transforms map[string][]interface{}
}

func (p *yamlParser) entry(e map[string]interface{}) error {
	if name, ok := e["define"].(string); ok {
		return p.define(name, e)
	}
	kind, ok := e["add"].(string)
	if !ok {
		return errors.New(`entry has neither "add" nor "define"`)
	}

	switch kind {
	case "camera":
		return p.addCamera(e)
	case "light":
		return p.addLight(e)
	default:
		tree := p.scene.World.Objects
		_, err := p.addShape(tree, geometry.None, kind, e)
		return err
	}
}

// define records a named material map or transform list. A material
// define may extend an earlier one, inheriting its values.
func (p *yamlParser) define(name string, e map[string]interface{}) error {
	switch value := e["value"].(type) {
	case map[string]interface{}:
		base := material.New()
		if parent, ok := e["extend"].(string); ok {
			m, ok := p.materials[parent]
			if !ok {
				return errors.Errorf("%s extends unknown material %q", name, parent)
			}
			base = m
		}
		m, err := p.materialFrom(value, base)
		if err != nil {
			return errors.Wrapf(err, "material %s", name)
		}
		p.materials[name] = m
		return nil
	case []interface{}:
		list := value
		if parent, ok := e["extend"].(string); ok {
			t, ok := p.transforms[parent]
			if !ok {
				return errors.Errorf("%s extends unknown transform %q", name, parent)
			}
			list = append(append([]interface{}{}, t...), value...)
		}
		p.transforms[name] = list
		return nil
	}
	return errors.Errorf("define %s has no usable value", name)
}

func (p *yamlParser) addCamera(e map[string]interface{}) error {
	width, err := toInt(e["width"])
	if err != nil {
		return errors.Wrap(err, "camera width")
	}
	height, err := toInt(e["height"])
	if err != nil {
		return errors.Wrap(err, "camera height")
	}
	fov, err := toFloat(e["field-of-view"])
	if err != nil {
		return errors.Wrap(err, "camera field-of-view")
	}
	from, err := toPoint(e["from"])
	if err != nil {
		return errors.Wrap(err, "camera from")
	}
	to, err := toPoint(e["to"])
	if err != nil {
		return errors.Wrap(err, "camera to")
	}
	up, err := toVector(e["up"])
	if err != nil {
		return errors.Wrap(err, "camera up")
	}

	cam := renderer.NewCamera(width, height, fov)
	if err := cam.SetTransform(core.ViewTransform(from, to, up)); err != nil {
		return err
	}
	p.scene.Camera = cam
	return nil
}

func (p *yamlParser) addLight(e map[string]interface{}) error {
	at, err := toPoint(e["at"])
	if err != nil {
		return errors.Wrap(err, "light at")
	}
	intensity, err := toColor(e["intensity"])
	if err != nil {
		return errors.Wrap(err, "light intensity")
	}
	p.scene.World.Lights = append(p.scene.World.Lights, world.NewPointLight(at, intensity))
	return nil
}

// addShape builds one shape entry, placing it either at the root
// (parent == None) or under a group.
func (p *yamlParser) addShape(tree *geometry.Tree, parent geometry.ShapeID, kind string, e map[string]interface{}) (geometry.ShapeID, error) {
	var s geometry.Shape
	var err error

	switch kind {
	case "sphere":
		s = geometry.NewSphere()
	case "plane":
		s = geometry.NewPlane()
	case "cube":
		s = geometry.NewCube()
	case "cylinder":
		s, err = p.boundedShape(geometry.NewInfiniteCylinder(), geometry.NewCylinder, e)
	case "cone":
		s, err = p.boundedShape(geometry.NewInfiniteCone(), geometry.NewCone, e)
	case "group":
		s = geometry.NewGroup()
	case "obj":
		return p.addOBJ(tree, parent, e)
	default:
		return geometry.None, errors.Errorf("unknown shape kind %q", kind)
	}
	if err != nil {
		return geometry.None, err
	}

	if shadow, ok := e["shadow"].(bool); ok {
		s.CastsShadow = shadow
	}

	var id geometry.ShapeID
	if parent == geometry.None {
		id = tree.Add(s)
	} else {
		id = tree.AddChild(parent, s)
	}

	if err := p.applyCommon(tree, id, e); err != nil {
		return geometry.None, errors.Wrap(err, kind)
	}

	if kind == "group" {
		children, _ := e["children"].([]interface{})
		for i, c := range children {
			cm, ok := c.(map[string]interface{})
			if !ok {
				return geometry.None, errors.Errorf("group child %d is not a mapping", i+1)
			}
			ckind, ok := cm["add"].(string)
			if !ok {
				return geometry.None, errors.Errorf("group child %d has no add key", i+1)
			}
			if _, err := p.addShape(tree, id, ckind, cm); err != nil {
				return geometry.None, err
			}
		}
	}
	return id, nil
}

// boundedShape reads the optional min/max/closed keys of a cylinder or
// cone entry.
func (p *yamlParser) boundedShape(infinite geometry.Shape, bounded func(float64, float64, bool) (geometry.Shape, error), e map[string]interface{}) (geometry.Shape, error) {
	_, hasMin := e["min"]
	_, hasMax := e["max"]
	if !hasMin && !hasMax {
		return infinite, nil
	}

	min := infinite.Min
	max := infinite.Max
	var err error
	if hasMin {
		if min, err = toFloat(e["min"]); err != nil {
			return geometry.Shape{}, errors.Wrap(err, "min")
		}
	}
	if hasMax {
		if max, err = toFloat(e["max"]); err != nil {
			return geometry.Shape{}, errors.Wrap(err, "max")
		}
	}
	closed, _ := e["closed"].(bool)
	return bounded(min, max, closed)
}

func (p *yamlParser) addOBJ(tree *geometry.Tree, parent geometry.ShapeID, e map[string]interface{}) (geometry.ShapeID, error) {
	if parent != geometry.None {
		return geometry.None, errors.New("obj models must be added at the top level")
	}
	file, ok := e["file"].(string)
	if !ok {
		return geometry.None, errors.New("obj entry has no file")
	}
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, file)
	}
	f, err := os.Open(path)
	if err != nil {
		return geometry.None, errors.Wrap(err, "opening obj file")
	}
	defer f.Close()

	model, err := ParseOBJ(f)
	if err != nil {
		return geometry.None, errors.Wrapf(err, "parsing %s", file)
	}
	glog.Infof("loaded %s: %d vertices, %d triangles, %d ignored lines",
		file, len(model.Vertices), model.TriangleCount(), model.Ignored)

	id := model.AddToTree(tree)
	if err := p.applyCommon(tree, id, e); err != nil {
		return geometry.None, errors.Wrap(err, "obj")
	}
	return id, nil
}

// applyCommon handles the material and transform keys shared by every
// shape entry.
func (p *yamlParser) applyCommon(tree *geometry.Tree, id geometry.ShapeID, e map[string]interface{}) error {
	if raw, ok := e["material"]; ok {
		m, err := p.resolveMaterial(raw)
		if err != nil {
			return err
		}
		tree.SetMaterial(id, m)
	}
	if raw, ok := e["transform"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return errors.New("transform is not a list")
		}
		m, err := p.resolveTransform(list)
		if err != nil {
			return err
		}
		if err := tree.SetTransform(id, m); err != nil {
			return err
		}
	}
	return nil
}

func (p *yamlParser) resolveMaterial(raw interface{}) (material.Material, error) {
	switch v := raw.(type) {
	case string:
		m, ok := p.materials[v]
		if !ok {
			return material.Material{}, errors.Errorf("unknown material %q", v)
		}
		return m, nil
	case map[string]interface{}:
		return p.materialFrom(v, material.New())
	}
	return material.Material{}, errors.New("material is neither a name nor a mapping")
}

func (p *yamlParser) materialFrom(v map[string]interface{}, base material.Material) (material.Material, error) {
	m := base

	if raw, ok := v["color"]; ok {
		c, err := toColor(raw)
		if err != nil {
			return m, errors.Wrap(err, "color")
		}
		m.Color = c
	}

	scalars := []struct {
		key  string
		dest *float64
	}{
		{"ambient", &m.Ambient},
		{"diffuse", &m.Diffuse},
		{"specular", &m.Specular},
		{"shininess", &m.Shininess},
		{"reflective", &m.Reflective},
		{"transparency", &m.Transparency},
		{"refractive-index", &m.RefractiveIndex},
	}
	for _, s := range scalars {
		if raw, ok := v[s.key]; ok {
			f, err := toFloat(raw)
			if err != nil {
				return m, errors.Wrap(err, s.key)
			}
			*s.dest = f
		}
	}

	if raw, ok := v["pattern"]; ok {
		pm, ok := raw.(map[string]interface{})
		if !ok {
			return m, errors.New("pattern is not a mapping")
		}
		pat, err := p.patternFrom(pm)
		if err != nil {
			return m, errors.Wrap(err, "pattern")
		}
		m.Pattern = pat
	}
	return m, nil
}

func (p *yamlParser) patternFrom(v map[string]interface{}) (*material.Pattern, error) {
	kind, ok := v["type"].(string)
	if !ok {
		return nil, errors.New("pattern has no type")
	}

	rawColors, ok := v["colors"].([]interface{})
	if !ok || len(rawColors) != 2 {
		return nil, errors.New("pattern needs exactly two colors")
	}
	a, err := toColor(rawColors[0])
	if err != nil {
		return nil, errors.Wrap(err, "first color")
	}
	b, err := toColor(rawColors[1])
	if err != nil {
		return nil, errors.Wrap(err, "second color")
	}

	var pat *material.Pattern
	switch kind {
	case "stripes":
		pat = material.NewStripePattern(a, b)
	case "gradient":
		pat = material.NewGradientPattern(a, b)
	case "rings":
		pat = material.NewRingPattern(a, b)
	case "checkers":
		pat = material.NewCheckerPattern(a, b)
	default:
		return nil, errors.Errorf("unknown pattern type %q", kind)
	}

	if raw, ok := v["transform"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return nil, errors.New("pattern transform is not a list")
		}
		m, err := p.resolveTransform(list)
		if err != nil {
			return nil, err
		}
		if err := pat.SetTransform(m); err != nil {
			return nil, err
		}
	}
	return pat, nil
}

// resolveTransform composes a transform list. Each item is either the
// name of a defined transform or an operation list like
// ["translate", 1, 2, 3]; items apply in order, so later operations act
// on the already-transformed shape.
func (p *yamlParser) resolveTransform(list []interface{}) (core.Matrix, error) {
	m := core.Identity()
	for _, item := range list {
		switch v := item.(type) {
		case string:
			sub, ok := p.transforms[v]
			if !ok {
				return m, errors.Errorf("unknown transform %q", v)
			}
			subM, err := p.resolveTransform(sub)
			if err != nil {
				return m, err
			}
			m = subM.Multiply(m)
		case []interface{}:
			op, err := transformOp(v)
			if err != nil {
				return m, err
			}
			m = op.Multiply(m)
		default:
			return m, errors.Errorf("transform item %v is neither a name nor an operation", item)
		}
	}
	return m, nil
}

func transformOp(v []interface{}) (core.Matrix, error) {
	if len(v) == 0 {
		return core.Matrix{}, errors.New("empty transform operation")
	}
	name, ok := v[0].(string)
	if !ok {
		return core.Matrix{}, errors.Errorf("transform operation %v has no name", v)
	}

	args := make([]float64, len(v)-1)
	for i, raw := range v[1:] {
		f, err := toFloat(raw)
		if err != nil {
			return core.Matrix{}, errors.Wrapf(err, "%s argument %d", name, i+1)
		}
		args[i] = f
	}

	want := map[string]int{
		"translate": 3, "scale": 3, "shear": 6,
		"rotate-x": 1, "rotate-y": 1, "rotate-z": 1,
	}
	if n, ok := want[name]; !ok {
		return core.Matrix{}, errors.Errorf("unknown transform operation %q", name)
	} else if len(args) != n {
		return core.Matrix{}, errors.Errorf("%s takes %d arguments, got %d", name, n, len(args))
	}

	switch name {
	case "translate":
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotate-x":
		return core.RotationX(args[0]), nil
	case "rotate-y":
		return core.RotationY(args[0]), nil
	case "rotate-z":
		return core.RotationZ(args[0]), nil
	}
	return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
}

func toFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, errors.Errorf("%v is not a number", raw)
}

func toInt(raw interface{}) (int, error) {
	v, ok := raw.(int)
	if !ok {
		return 0, errors.Errorf("%v is not an integer", raw)
	}
	return v, nil
}

func toTriple(raw interface{}) ([3]float64, error) {
	var out [3]float64
	list, ok := raw.([]interface{})
	if !ok || len(list) != 3 {
		return out, errors.Errorf("%v is not a three-element list", raw)
	}
	for i, item := range list {
		f, err := toFloat(item)
		if err != nil {
			return out, err
		}
		out[i] = f
	}
	return out, nil
}

func toPoint(raw interface{}) (core.Tuple, error) {
	v, err := toTriple(raw)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewPoint(v[0], v[1], v[2]), nil
}

func toVector(raw interface{}) (core.Tuple, error) {
	v, err := toTriple(raw)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewVector(v[0], v[1], v[2]), nil
}

func toColor(raw interface{}) (core.Color, error) {
	v, err := toTriple(raw)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}
