package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	m := New()

	if m.Color != core.White {
		t.Errorf("default color = %+v, want white", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("unexpected phong defaults: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("unexpected optical defaults: %+v", m)
	}
	if m.Pattern != nil {
		t.Errorf("default material should have no pattern")
	}
}

func TestGlass(t *testing.T) {
	m := Glass()
	if m.Transparency != 1 || m.RefractiveIndex != 1.5 {
		t.Errorf("glass material = %+v", m)
	}
}
