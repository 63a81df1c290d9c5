package pyramid

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/meshquality/gopyramid/geom"
)

// EvalAll computes the metrics selected by flags for every element of
// coords, splitting the work across up to workers goroutines. A workers
// value <= 0 uses one worker per CPU. The i-th result corresponds to the
// i-th input; the first malformed element aborts the pass with its error.
func (ev Evaluators) EvalAll(
	coords [][]geom.Vec, flags Flag, workers int,
) ([]Metrics, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]Metrics, len(coords))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	chunk := (len(coords) + workers - 1) / workers
	for start := 0; start < len(coords); start += chunk {
		lo, hi := start, min(start+chunk, len(coords))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ev.Quality(coords[i], flags, &out[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
