package render

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachRow splits [0,height) into one contiguous band per CPU and calls fn
// for every row. Rows are independent, so the result does not depend on how
// the bands are scheduled. Workers stop at the next row once ctx is done.
func forEachRow(ctx context.Context, height int, fn func(y int)) error {
	numWorkers := min(runtime.NumCPU(), height)
	if numWorkers <= 0 {
		numWorkers = 1
	}

	rowsPerWorker := height / numWorkers
	extraRows := height % numWorkers

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		start := i * rowsPerWorker
		end := start + rowsPerWorker
		if i == numWorkers-1 {
			end += extraRows // remainder goes to the last band
		}

		g.Go(func() error {
			for y := start; y < end; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				fn(y)
			}
			return nil
		})
	}
	return g.Wait()
}
