package world

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func ts(xs geometry.Intersections) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.T
	}
	return out
}

func TestNew_Empty(t *testing.T) {
	w := New()
	if w.Objects.Len() != 0 {
		t.Errorf("new world has %d shapes, want 0", w.Objects.Len())
	}
	if len(w.Lights) != 0 {
		t.Errorf("new world has %d lights, want 0", len(w.Lights))
	}
}

func TestDefault(t *testing.T) {
	w := Default()
	if w.Objects.Len() != 2 {
		t.Fatalf("default world has %d shapes, want 2", w.Objects.Len())
	}
	if len(w.Lights) != 1 {
		t.Fatalf("default world has %d lights, want 1", len(w.Lights))
	}
	light := w.Lights[0]
	if !light.Position.Equals(core.NewPoint(-10, 10, -10)) || !light.Intensity.Equals(core.White) {
		t.Errorf("default light = %+v", light)
	}

	outer := w.Objects.MaterialFor(0)
	if !outer.Color.Equals(core.NewColor(0.8, 1.0, 0.6)) || outer.Diffuse != 0.7 || outer.Specular != 0.2 {
		t.Errorf("outer material = %+v", outer)
	}
	if !w.Objects.Shape(1).Transform().Equals(core.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("inner transform = %+v", w.Objects.Shape(1).Transform())
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := Default()
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	xs := w.Intersect(r)
	if diff := cmp.Diff([]float64{4, 4.5, 5.5, 6}, ts(xs), approx); diff != "" {
		t.Errorf("intersections mismatch (-want +got):\n%s", diff)
	}
}
