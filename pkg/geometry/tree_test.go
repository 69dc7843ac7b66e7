package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestGroup_IntersectEmpty(t *testing.T) {
	tree := NewTree()
	g := tree.Add(NewGroup())

	r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	if xs := tree.Intersect(g, r); len(xs) != 0 {
		t.Errorf("empty group: got %d intersections, want 0", len(xs))
	}
}

func TestGroup_IntersectChildren(t *testing.T) {
	tree := NewTree()
	g := tree.Add(NewGroup())
	s1 := tree.AddChild(g, NewSphere())
	s2 := tree.AddChild(g, NewSphere())
	if err := tree.SetTransform(s2, core.Translation(0, 0, -3)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	s3 := tree.AddChild(g, NewSphere())
	if err := tree.SetTransform(s3, core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := tree.Intersect(g, r)
	if len(xs) != 4 {
		t.Fatalf("got %d intersections, want 4", len(xs))
	}
	// Sorted ascending: s2 is closer to the ray origin than s1.
	want := []ShapeID{s2, s2, s1, s1}
	for i, x := range xs {
		if x.Shape != want[i] {
			t.Errorf("xs[%d].Shape = %d, want %d", i, x.Shape, want[i])
		}
	}
}

func TestGroup_IntersectTransformed(t *testing.T) {
	tree := NewTree()
	g := tree.Add(NewGroup())
	if err := tree.SetTransform(g, core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	s := tree.AddChild(g, NewSphere())
	if err := tree.SetTransform(s, core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	r := core.NewRay(core.NewPoint(10, 0, -10), core.NewVector(0, 0, 1))
	if xs := tree.Intersect(g, r); len(xs) != 2 {
		t.Errorf("got %d intersections, want 2", len(xs))
	}
}

func buildNestedGroups(t *testing.T, tree *Tree) ShapeID {
	t.Helper()
	g1 := tree.Add(NewGroup())
	if err := tree.SetTransform(g1, core.RotationY(math.Pi/2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	g2 := tree.AddChild(g1, NewGroup())
	if err := tree.SetTransform(g2, core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	s := tree.AddChild(g2, NewSphere())
	if err := tree.SetTransform(s, core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	return s
}

func TestTree_WorldToObject(t *testing.T) {
	tree := NewTree()
	s := buildNestedGroups(t, tree)

	got := tree.WorldToObject(s, core.NewPoint(-2, 0, -10))
	if diff := cmp.Diff(core.NewPoint(0, 0, -1), got, approx); diff != "" {
		t.Errorf("WorldToObject mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_NormalToWorld(t *testing.T) {
	tree := NewTree()
	g1 := tree.Add(NewGroup())
	if err := tree.SetTransform(g1, core.RotationY(math.Pi/2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	g2 := tree.AddChild(g1, NewGroup())
	if err := tree.SetTransform(g2, core.Scaling(1, 2, 3)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	s := tree.AddChild(g2, NewSphere())
	if err := tree.SetTransform(s, core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	k := math.Sqrt(3) / 3
	got := tree.NormalToWorld(s, core.NewVector(k, k, k))
	if diff := cmp.Diff(core.NewVector(0.28571, 0.42857, -0.85714), got, approx); diff != "" {
		t.Errorf("NormalToWorld mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_NormalAtOnChild(t *testing.T) {
	tree := NewTree()
	g1 := tree.Add(NewGroup())
	if err := tree.SetTransform(g1, core.RotationY(math.Pi/2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	g2 := tree.AddChild(g1, NewGroup())
	if err := tree.SetTransform(g2, core.Scaling(1, 2, 3)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	s := tree.AddChild(g2, NewSphere())
	if err := tree.SetTransform(s, core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	got := tree.NormalAt(s, core.NewPoint(1.7321, 1.1547, -5.5774))
	if diff := cmp.Diff(core.NewVector(0.28570, 0.42854, -0.85716), got, approx); diff != "" {
		t.Errorf("NormalAt mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_MaterialInheritance(t *testing.T) {
	tree := NewTree()
	g := tree.Add(NewGroup())
	child := tree.AddChild(g, NewSphere())
	orphan := tree.Add(NewSphere())

	// No material anywhere: the default applies.
	def := material.New()
	if got := tree.MaterialFor(child); !got.Color.Equals(def.Color) || got.Ambient != def.Ambient {
		t.Errorf("MaterialFor(child) = %+v, want default", got)
	}

	// Group material flows down to children without their own.
	red := material.New()
	red.Color = core.NewColor(1, 0, 0)
	tree.SetMaterial(g, red)
	if got := tree.MaterialFor(child); !got.Color.Equals(red.Color) {
		t.Errorf("MaterialFor(child).Color = %+v, want %+v", got.Color, red.Color)
	}
	if got := tree.MaterialFor(orphan); !got.Color.Equals(def.Color) {
		t.Errorf("MaterialFor(orphan).Color = %+v, want default", got.Color)
	}

	// A child's own material wins over the ancestor's.
	blue := material.New()
	blue.Color = core.NewColor(0, 0, 1)
	tree.SetMaterial(child, blue)
	if got := tree.MaterialFor(child); !got.Color.Equals(blue.Color) {
		t.Errorf("MaterialFor(child).Color = %+v, want %+v", got.Color, blue.Color)
	}
}

func TestTree_Includes(t *testing.T) {
	tree := NewTree()
	g1 := tree.Add(NewGroup())
	g2 := tree.AddChild(g1, NewGroup())
	s := tree.AddChild(g2, NewSphere())
	other := tree.Add(NewSphere())

	if !tree.Includes(g1, s) {
		t.Error("Includes(g1, s) = false, want true")
	}
	if !tree.Includes(g1, g1) {
		t.Error("Includes(g1, g1) = false, want true")
	}
	if tree.Includes(g1, other) {
		t.Error("Includes(g1, other) = true, want false")
	}
	if tree.Includes(s, g1) {
		t.Error("Includes(s, g1) = true, want false")
	}
}

func TestTree_Roots(t *testing.T) {
	tree := NewTree()
	a := tree.Add(NewSphere())
	g := tree.Add(NewGroup())
	tree.AddChild(g, NewSphere())

	roots := tree.Roots()
	if len(roots) != 2 || roots[0] != a || roots[1] != g {
		t.Errorf("Roots() = %v, want [%d %d]", roots, a, g)
	}
}

func TestTree_AddChildRequiresGroup(t *testing.T) {
	tree := NewTree()
	s := tree.Add(NewSphere())

	defer func() {
		if recover() == nil {
			t.Error("AddChild on a sphere did not panic")
		}
	}()
	tree.AddChild(s, NewSphere())
}

func TestShape_SetTransformNotInvertible(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(core.Scaling(0, 1, 1)); err == nil {
		t.Error("SetTransform with a singular matrix did not fail")
	}
}
