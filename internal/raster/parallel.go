package raster

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelFor splits [0, n) into disjoint contiguous chunks and runs fn on
// each, at most workers at a time. The first error cancels the context the
// remaining chunks see and is returned. Small ranges run inline.
func ParallelFor(ctx context.Context, n, minChunk, workers int, fn func(ctx context.Context, start, end int) error) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		return fn(ctx, 0, n)
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			return fn(gctx, start, end)
		})
	}
	return g.Wait()
}
