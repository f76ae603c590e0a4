package canny

import "golang.org/x/sync/errgroup"

// Options tunes how the per-pixel stages execute. The zero value runs
// everything on the calling goroutine.
type Options struct {
	// Workers is the number of goroutines used by the gradient and
	// suppression stages. Values <= 1 run sequentially.
	Workers int
}

// minRowsPerWorker keeps tiny images on one goroutine.
const minRowsPerWorker = 16

// forRows calls fn over [lo, hi) split into contiguous row bands. Bands are
// disjoint, so fn may write its rows of a shared output without locking.
func forRows(lo, hi, workers int, fn func(y0, y1 int)) {
	n := hi - lo
	if n <= 0 {
		return
	}
	workers = min(workers, n/minRowsPerWorker)
	if workers <= 1 {
		fn(lo, hi)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := lo; start < hi; start += chunk {
		end := min(start+chunk, hi)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	// Bands cannot fail; Wait only joins them.
	_ = g.Wait()
}
