// Package loaders reads external scene descriptions: Wavefront OBJ
// meshes and YAML scene files.
package loaders

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// defaultGroup names the OBJ group faces belong to before any g
// statement.
const defaultGroup = ""

// OBJ is a parsed Wavefront OBJ model: the vertex table, triangulated
// faces grouped by name, and a count of lines the parser skipped.
type OBJ struct {
	Vertices []core.Tuple
	Normals  []core.Tuple
	Ignored  int

	groups map[string][]geometry.Shape
	order  []string
}

// ParseOBJ reads a Wavefront OBJ stream. Supported statements are v,
// vn, f and g; polygon faces are fan-triangulated. Anything else is
// counted in Ignored and skipped. Vertex normals are parsed but unused,
// since every face is flat-shaded.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	o := &OBJ{groups: make(map[string][]geometry.Shape)}
	current := defaultGroup

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parsePoint(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: vertex", lineNo)
			}
			o.Vertices = append(o.Vertices, p)
		case "vn":
			n, err := parseVector(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: normal", lineNo)
			}
			o.Normals = append(o.Normals, n)
		case "f":
			if err := o.addFace(current, fields[1:]); err != nil {
				return nil, errors.Wrapf(err, "line %d: face", lineNo)
			}
		case "g":
			if len(fields) > 1 {
				current = fields[1]
			} else {
				current = defaultGroup
			}
		default:
			o.Ignored++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading obj")
	}
	return o, nil
}

func parsePoint(fields []string) (core.Tuple, error) {
	v, err := parseFloats(fields, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewPoint(v[0], v[1], v[2]), nil
}

func parseVector(fields []string) (core.Tuple, error) {
	v, err := parseFloats(fields, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewVector(v[0], v[1], v[2]), nil
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) != n {
		return nil, errors.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "component %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// addFace fan-triangulates one face statement into the current group.
// Face elements may carry texture and normal references (v/vt/vn); only
// the vertex index is used.
func (o *OBJ) addFace(group string, elems []string) error {
	if len(elems) < 3 {
		return errors.Errorf("face has %d vertices, need at least 3", len(elems))
	}

	verts := make([]core.Tuple, len(elems))
	for i, e := range elems {
		idxStr := strings.SplitN(e, "/", 2)[0]
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return errors.Wrapf(err, "vertex reference %q", e)
		}
		if idx < 1 || idx > len(o.Vertices) {
			return errors.Errorf("vertex reference %d out of range (have %d vertices)", idx, len(o.Vertices))
		}
		verts[i] = o.Vertices[idx-1]
	}

	for i := 1; i < len(verts)-1; i++ {
		tri, err := geometry.NewTriangle(verts[0], verts[i], verts[i+1])
		if err != nil {
			return err
		}
		if _, ok := o.groups[group]; !ok {
			o.order = append(o.order, group)
		}
		o.groups[group] = append(o.groups[group], tri)
	}
	return nil
}

// TriangleCount returns the total number of triangles across all
// groups.
func (o *OBJ) TriangleCount() int {
	n := 0
	for _, tris := range o.groups {
		n += len(tris)
	}
	return n
}

// Triangles returns the triangles of a named group. The anonymous
// default group is the empty string.
func (o *OBJ) Triangles(name string) []geometry.Shape {
	return o.groups[name]
}

// GroupNames returns the group names in the order faces first appeared
// in them.
func (o *OBJ) GroupNames() []string {
	return o.order
}

// AddToTree materializes the model into the scene graph as one group
// per OBJ group under a shared root, and returns the root's id.
func (o *OBJ) AddToTree(tree *geometry.Tree) geometry.ShapeID {
	root := tree.Add(geometry.NewGroup())
	for _, name := range o.order {
		parent := root
		if name != defaultGroup {
			parent = tree.AddChild(root, geometry.NewGroup())
		}
		for _, tri := range o.groups[name] {
			tree.AddChild(parent, tri)
		}
	}
	return root
}
