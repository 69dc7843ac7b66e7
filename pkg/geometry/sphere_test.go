package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func ts(xs Intersections) []float64 {
	if len(xs) == 0 {
		return nil
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.T
	}
	return out
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   core.Tuple
		expected []float64
	}{
		{"through center", core.NewPoint(0, 0, -5), []float64{4, 6}},
		{"tangent", core.NewPoint(0, 1, -5), []float64{5, 5}},
		{"miss", core.NewPoint(0, 2, -5), nil},
		{"inside", core.NewPoint(0, 0, 0), []float64{-1, 1}},
		{"behind", core.NewPoint(0, 0, 5), []float64{-6, -4}},
	}

	tree := NewTree()
	s := tree.Add(NewSphere())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.NewRay(tt.origin, core.NewVector(0, 0, 1))
			xs := tree.Intersect(s, r)
			if diff := cmp.Diff(tt.expected, ts(xs), approx); diff != "" {
				t.Errorf("intersections mismatch (-want +got):\n%s", diff)
			}
			for _, x := range xs {
				if x.Shape != s {
					t.Errorf("intersection references shape %d, want %d", x.Shape, s)
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	tree := NewTree()
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := tree.Add(NewSphere())
	if err := tree.SetTransform(scaled, core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	if diff := cmp.Diff([]float64{3, 7}, ts(tree.Intersect(scaled, r)), approx); diff != "" {
		t.Errorf("scaled sphere mismatch (-want +got):\n%s", diff)
	}

	translated := tree.Add(NewSphere())
	if err := tree.SetTransform(translated, core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	if xs := tree.Intersect(translated, r); len(xs) != 0 {
		t.Errorf("translated sphere: got %d intersections, want 0", len(xs))
	}
}

func TestSphere_NormalAt(t *testing.T) {
	tree := NewTree()
	s := tree.Add(NewSphere())
	k := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"y axis", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"z axis", core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"nonaxial", core.NewPoint(k, k, k), core.NewVector(k, k, k)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.NormalAt(s, tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("NormalAt(%+v) = %+v, want %+v", tt.point, got, tt.expected)
			}
			if !got.Equals(got.Normalize()) {
				t.Errorf("normal %+v is not normalized", got)
			}
		})
	}
}

func TestSphere_NormalAtTransformed(t *testing.T) {
	tree := NewTree()

	translated := tree.Add(NewSphere())
	if err := tree.SetTransform(translated, core.Translation(0, 1, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	got := tree.NormalAt(translated, core.NewPoint(0, 1.70711, -0.70711))
	if diff := cmp.Diff(core.NewVector(0, 0.70711, -0.70711), got, approx); diff != "" {
		t.Errorf("translated normal mismatch (-want +got):\n%s", diff)
	}

	scaledRotated := tree.Add(NewSphere())
	m := core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5))
	if err := tree.SetTransform(scaledRotated, m); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	got = tree.NormalAt(scaledRotated, core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))
	if diff := cmp.Diff(core.NewVector(0, 0.97014, -0.24254), got, approx); diff != "" {
		t.Errorf("scaled/rotated normal mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGlassSphere(t *testing.T) {
	s := NewGlassSphere()
	if s.Material == nil {
		t.Fatal("glass sphere has no material")
	}
	if s.Material.Transparency != 1.0 || s.Material.RefractiveIndex != 1.5 {
		t.Errorf("glass material = %+v", s.Material)
	}
}
