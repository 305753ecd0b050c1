// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: round-based pair evaluation on a worker group.
//
// A round dequeues up to roundSize pairs, evaluates them concurrently into a
// slot per pair, then merges the slots sequentially in dequeue order. Merging
// is the only step that touches the working set, and the FIFO order of merges
// matches runSequential, so both paths return the same cycles in the same order.

package cyclespace

import (
	"golang.org/x/sync/errgroup"
)

type slot struct {
	vec IncidenceVector
	ok  bool
}

func (e *enumerator) runParallel() error {
	batch := make([]pair, 0, e.opts.roundSize)
	results := make([]slot, e.opts.roundSize)

	for !e.queue.Empty() {
		if err := e.opts.ctx.Err(); err != nil {
			return err
		}

		batch = batch[:0]
		for len(batch) < e.opts.roundSize {
			head, ok := e.queue.Dequeue()
			if !ok {
				break
			}
			batch = append(batch, head.(pair))
		}

		if err := e.evaluate(batch, results[:len(batch)]); err != nil {
			return err
		}

		for k := range batch {
			if !results[k].ok {
				continue
			}
			if err := e.merge(results[k].vec); err != nil {
				return err
			}
		}
	}

	return nil
}

// evaluate fills out[k] with the combination of batch[k]. Workers read
// e.known, which is not appended to until every worker has returned.
func (e *enumerator) evaluate(batch []pair, out []slot) error {
	g, ctx := errgroup.WithContext(e.opts.ctx)

	chunk := (len(batch) + e.opts.workers - 1) / e.opts.workers
	for lo := 0; lo < len(batch); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(batch))
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if k%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				vec, ok := e.combine(batch[k])
				out[k] = slot{vec: vec, ok: ok}
			}
			return nil
		})
	}

	return g.Wait()
}
