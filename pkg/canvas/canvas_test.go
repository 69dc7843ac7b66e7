package canvas

import (
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCanvas_WriteAndReadPixels(t *testing.T) {
	c := New(10, 20)
	if c.Width != 10 || c.Height != 20 {
		t.Fatalf("canvas = %dx%d, want 10x20", c.Width, c.Height)
	}

	red := core.NewColor(1, 0, 0)
	c.WritePixel(2, 3, red)
	if got := c.PixelAt(2, 3); !got.Equals(red) {
		t.Errorf("PixelAt(2,3) = %+v, want red", got)
	}
	if got := c.PixelAt(0, 0); !got.Equals(core.Black) {
		t.Errorf("PixelAt(0,0) = %+v, want black", got)
	}

	// Out-of-range writes are dropped, not panics.
	c.WritePixel(-1, 0, red)
	c.WritePixel(10, 19, red)
}

func TestCanvas_WritePPMHeader(t *testing.T) {
	c := New(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

	var b strings.Builder
	if err := c.WritePPM(&b); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	lines := strings.Split(b.String(), "\n")
	want := []string{
		"P3",
		"5 3",
		"255",
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], w)
		}
	}
	if !strings.HasSuffix(b.String(), "\n") {
		t.Error("ppm output does not end with a newline")
	}
}

func TestCanvas_WritePPMLineLength(t *testing.T) {
	c := New(10, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			c.WritePixel(x, y, core.NewColor(1, 0.8, 0.6))
		}
	}

	var b strings.Builder
	if err := c.WritePPM(&b); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	for i, line := range strings.Split(b.String(), "\n") {
		if len(line) > 70 {
			t.Errorf("line %d is %d characters long: %q", i+1, len(line), line)
		}
	}
}

func TestCanvas_ToImage(t *testing.T) {
	c := New(2, 2)
	c.WritePixel(0, 0, core.NewColor(1, 0, 0))
	c.WritePixel(1, 1, core.NewColor(0, 0, 1))

	img := c.ToImage()
	if got := img.Bounds().Dx(); got != 2 {
		t.Fatalf("image width = %d, want 2", got)
	}
	r, _, _, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = r %d, a %d; want 255, 255", r>>8, a>>8)
	}
	_, _, bl, _ := img.At(1, 1).RGBA()
	if bl>>8 != 255 {
		t.Errorf("pixel (1,1) blue = %d, want 255", bl>>8)
	}
}
