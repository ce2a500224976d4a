package raster

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
)

// ProgressFunc receives the number of finished rows. It is called from
// worker goroutines and must be safe for concurrent use.
type ProgressFunc func(rowsDone, rows int)

type Rasterizer struct {
	Eq       field.Equation
	Palette  colormap.Palette
	Compress colormap.Compressor
	Workers  int
	Progress ProgressFunc
}

func New(eq field.Equation, palette colormap.Palette) *Rasterizer {
	return &Rasterizer{
		Eq:       eq,
		Palette:  palette,
		Compress: colormap.Compress,
	}
}

// Rasterize evaluates the field once per pixel of a width x height sampling
// of rect. Pixel (x, y) shows f(Xs[x], Ys[height-1-y]).
func (r *Rasterizer) Rasterize(ctx context.Context, rect grid.Rect, width, height int) (*PixelBuffer, error) {
	if err := r.Eq.Validate(); err != nil {
		return nil, err
	}
	samples, err := grid.NewSampleGrid(rect, width, height)
	if err != nil {
		return nil, err
	}

	compress := r.Compress
	if compress == nil {
		compress = colormap.Compress
	}

	buf := NewPixelBuffer(width, height)

	var done atomic.Int64

	err = ParallelFor(ctx, height, 1, r.Workers, func(ctx context.Context, start, end int) error {
		for y := start; y < end; y++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("rasterize canceled at row %d: %w", y, err)
			}

			sy := samples.Ys[height-1-y]
			for x, sx := range samples.Xs {
				c, err := r.Palette.ToColor(compress(r.Eq.Evaluate(sx, sy)))
				if err != nil {
					return fmt.Errorf("rasterize pixel (%d, %d): %w", x, y, err)
				}
				buf.Set(x, y, c)
			}

			n := done.Add(1)
			if r.Progress != nil {
				r.Progress(int(n), height)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}
