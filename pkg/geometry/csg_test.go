package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestIntersectionAllowed(t *testing.T) {
	tests := []struct {
		op               Operation
		lhit, inl, inr   bool
		expected         bool
	}{
		{OpUnion, true, true, true, false},
		{OpUnion, true, true, false, true},
		{OpUnion, true, false, true, false},
		{OpUnion, true, false, false, true},
		{OpUnion, false, true, true, false},
		{OpUnion, false, true, false, false},
		{OpUnion, false, false, true, true},
		{OpUnion, false, false, false, true},

		{OpIntersection, true, true, true, true},
		{OpIntersection, true, true, false, false},
		{OpIntersection, true, false, true, true},
		{OpIntersection, true, false, false, false},
		{OpIntersection, false, true, true, true},
		{OpIntersection, false, true, false, true},
		{OpIntersection, false, false, true, false},
		{OpIntersection, false, false, false, false},

		{OpDifference, true, true, true, false},
		{OpDifference, true, true, false, true},
		{OpDifference, true, false, true, false},
		{OpDifference, true, false, false, true},
		{OpDifference, false, true, true, true},
		{OpDifference, false, true, false, true},
		{OpDifference, false, false, true, false},
		{OpDifference, false, false, false, false},
	}

	for _, tt := range tests {
		got := IntersectionAllowed(tt.op, tt.lhit, tt.inl, tt.inr)
		if got != tt.expected {
			t.Errorf("IntersectionAllowed(%s, %v, %v, %v) = %v, want %v",
				tt.op, tt.lhit, tt.inl, tt.inr, got, tt.expected)
		}
	}
}

func TestFilterCSG(t *testing.T) {
	tests := []struct {
		op       Operation
		expected []int // indices into the merged intersection list
	}{
		{OpUnion, []int{0, 3}},
		{OpIntersection, []int{1, 2}},
		{OpDifference, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			tree := NewTree()
			left := tree.Add(NewSphere())
			right := tree.Add(NewCube())
			csg := tree.AddCSG(tt.op, left, right)

			xs := Intersections{
				{T: 1, Shape: left},
				{T: 2, Shape: right},
				{T: 3, Shape: left},
				{T: 4, Shape: right},
			}

			got := tree.filterCSG(csg, xs)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d intersections, want %d", len(got), len(tt.expected))
			}
			for i, idx := range tt.expected {
				if got[i] != xs[idx] {
					t.Errorf("result[%d] = %+v, want %+v", i, got[i], xs[idx])
				}
			}
		})
	}
}

func TestCSG_IntersectMiss(t *testing.T) {
	tree := NewTree()
	csg := tree.AddCSG(OpUnion, tree.Add(NewSphere()), tree.Add(NewCube()))

	r := core.NewRay(core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1))
	if xs := tree.Intersect(csg, r); len(xs) != 0 {
		t.Errorf("got %d intersections, want 0", len(xs))
	}
}

func TestCSG_IntersectUnion(t *testing.T) {
	tree := NewTree()
	s1 := tree.Add(NewSphere())
	s2 := tree.Add(NewSphere())
	if err := tree.SetTransform(s2, core.Translation(0, 0, 0.5)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	csg := tree.AddCSG(OpUnion, s1, s2)

	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := tree.Intersect(csg, r)
	if diff := cmp.Diff([]float64{4, 6.5}, ts(xs), approx); diff != "" {
		t.Errorf("union intersections mismatch (-want +got):\n%s", diff)
	}
	if xs[0].Shape != s1 || xs[1].Shape != s2 {
		t.Errorf("union hit shapes = %d, %d; want %d, %d", xs[0].Shape, xs[1].Shape, s1, s2)
	}
}

// Difference against grouped operands: the left attribution must treat
// every shape in the left subtree as part of the left operand.
func TestCSG_IntersectGroupedOperands(t *testing.T) {
	tree := NewTree()

	g := tree.Add(NewGroup())
	inner := tree.AddChild(g, NewSphere())
	right := tree.Add(NewSphere())
	if err := tree.SetTransform(right, core.Translation(0, 0, 0.5)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	csg := tree.AddCSG(OpDifference, g, right)

	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := tree.Intersect(csg, r)
	if diff := cmp.Diff([]float64{4, 4.5}, ts(xs), approx); diff != "" {
		t.Errorf("difference intersections mismatch (-want +got):\n%s", diff)
	}
	if xs[0].Shape != inner {
		t.Errorf("first hit shape = %d, want %d", xs[0].Shape, inner)
	}
}

func TestAddCSG_RequiresRoots(t *testing.T) {
	tree := NewTree()
	g := tree.Add(NewGroup())
	child := tree.AddChild(g, NewSphere())
	other := tree.Add(NewSphere())

	defer func() {
		if recover() == nil {
			t.Error("AddCSG with a non-root operand did not panic")
		}
	}()
	tree.AddCSG(OpUnion, child, other)
}
