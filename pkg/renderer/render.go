package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// DefaultMaxDepth bounds the reflection/refraction recursion.
const DefaultMaxDepth = 5

// Options control a render pass.
type Options struct {
	// Workers is the number of goroutines shading rows. Zero means
	// one per CPU.
	Workers int
	// MaxDepth is the recursion budget for secondary rays. Zero renders
	// without reflection and refraction; negative means DefaultMaxDepth.
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.MaxDepth < 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Render shades every pixel of the camera's image against the world.
// Rows are distributed across workers; the world is read-only during
// the pass, so the workers share it without locking.
func (c *Camera) Render(ctx context.Context, w *world.World, opts Options) (*canvas.Canvas, error) {
	opts = opts.withDefaults()
	img := canvas.New(c.HSize, c.VSize)

	rows := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(rows)
		for y := 0; y < c.VSize; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < opts.Workers; i++ {
		g.Go(func() error {
			for y := range rows {
				for x := 0; x < c.HSize; x++ {
					ray := c.RayForPixel(x, y)
					img.WritePixel(x, y, w.ColorAt(ray, opts.MaxDepth))
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}
