package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ShapeID identifies a shape within its Tree.
type ShapeID int

// None marks the absence of a shape (a root's parent).
const None ShapeID = -1

// Tree is the scene graph arena. Shapes are stored in a flat slice and
// reference each other by index, which keeps the graph free of pointer
// cycles while preserving O(depth) ancestor walks. A Tree is built
// once and read-only during rendering.
type Tree struct {
	shapes []Shape
}

// NewTree creates an empty scene graph.
func NewTree() *Tree {
	return &Tree{}
}

// Add appends a shape as a root of the scene graph and returns its id.
func (t *Tree) Add(s Shape) ShapeID {
	s.parent = None
	t.shapes = append(t.shapes, s)
	return ShapeID(len(t.shapes) - 1)
}

// AddChild appends a shape as a child of the given group.
func (t *Tree) AddChild(parent ShapeID, s Shape) ShapeID {
	if t.shapes[parent].Kind != KindGroup {
		panic(fmt.Sprintf("AddChild: parent %d is a %s, not a group", parent, t.shapes[parent].Kind))
	}
	s.parent = parent
	t.shapes = append(t.shapes, s)
	id := ShapeID(len(t.shapes) - 1)
	t.shapes[parent].children = append(t.shapes[parent].children, id)
	return id
}

// AddCSG creates a CSG node combining two existing subtrees. Both
// operands must currently be roots; they are reparented under the new
// node.
func (t *Tree) AddCSG(op Operation, left, right ShapeID) ShapeID {
	if t.shapes[left].parent != None || t.shapes[right].parent != None {
		panic("AddCSG: operands must be roots")
	}
	s := newShape(KindCSG)
	s.Op = op
	s.children = []ShapeID{left, right}
	t.shapes = append(t.shapes, s)
	id := ShapeID(len(t.shapes) - 1)
	t.shapes[left].parent = id
	t.shapes[right].parent = id
	return id
}

// Shape returns the shape with the given id. The pointer stays valid
// until the next Add.
func (t *Tree) Shape(id ShapeID) *Shape {
	return &t.shapes[id]
}

// Len returns the number of shapes in the tree.
func (t *Tree) Len() int { return len(t.shapes) }

// Parent returns the id of a shape's parent, or None for roots.
func (t *Tree) Parent(id ShapeID) ShapeID {
	return t.shapes[id].parent
}

// Children returns the child ids of a group or CSG node.
func (t *Tree) Children(id ShapeID) []ShapeID {
	return t.shapes[id].children
}

// Roots returns the ids of all top-level shapes.
func (t *Tree) Roots() []ShapeID {
	var roots []ShapeID
	for i := range t.shapes {
		if t.shapes[i].parent == None {
			roots = append(roots, ShapeID(i))
		}
	}
	return roots
}

// SetTransform sets a shape's local transform, validating that it is
// invertible.
func (t *Tree) SetTransform(id ShapeID, m core.Matrix) error {
	return t.shapes[id].SetTransform(m)
}

// SetMaterial gives a shape an explicit material, overriding
// inheritance.
func (t *Tree) SetMaterial(id ShapeID, m material.Material) {
	t.shapes[id].Material = &m
}

// MaterialFor resolves the material for a shape at shading time: the
// shape's own if set, else the nearest ancestor's, else the default.
func (t *Tree) MaterialFor(id ShapeID) material.Material {
	for cur := id; cur != None; cur = t.shapes[cur].parent {
		if m := t.shapes[cur].Material; m != nil {
			return *m
		}
	}
	return material.New()
}

// Includes reports whether id is root itself or a descendant of root.
// CSG filtering uses it to attribute an intersection to the left or
// right operand subtree.
func (t *Tree) Includes(root, id ShapeID) bool {
	for cur := id; cur != None; cur = t.shapes[cur].parent {
		if cur == root {
			return true
		}
	}
	return false
}

// WorldToObject converts a world-space point into a shape's object
// space by applying every ancestor's inverse transform from the root
// down, then the shape's own.
func (t *Tree) WorldToObject(id ShapeID, point core.Tuple) core.Tuple {
	s := &t.shapes[id]
	if s.parent != None {
		point = t.WorldToObject(s.parent, point)
	}
	return s.inverse.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal into world space,
// walking back up through the ancestor chain with transposed inverses
// and renormalizing at each step.
func (t *Tree) NormalToWorld(id ShapeID, normal core.Tuple) core.Tuple {
	s := &t.shapes[id]
	normal = s.invTranspose.MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()
	if s.parent != None {
		normal = t.NormalToWorld(s.parent, normal)
	}
	return normal
}

// NormalAt computes the world-space surface normal of a shape at a
// world-space point.
func (t *Tree) NormalAt(id ShapeID, worldPoint core.Tuple) core.Tuple {
	localPoint := t.WorldToObject(id, worldPoint)
	localNormal := localNormalAt(&t.shapes[id], localPoint)
	return t.NormalToWorld(id, localNormal)
}
