package enumerate

import (
	"context"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/crossplay/crossgen/pkg/crossword"
)

// AllThreaded is All generalized to spec.md §6's "-t" flag: threads <= 1
// behaves exactly like All (single-threaded, deterministic). For
// threads > 1, the first candidate word's extension set is partitioned
// round-robin across threads independent search frames, run
// concurrently — the structured-concurrency shape of spawn-all/
// wait-all/propagate-first-error, same as a nursery.Run block. The
// shared filter is mutex-guarded only in this mode; output is merged
// in completion order, so determinism holds only for threads <= 1.
func (e *Enumerator) AllThreaded(ctx context.Context, threads int) iter.Seq[crossword.Crossword] {
	if threads <= 1 {
		return e.All(ctx)
	}

	return func(yield func(crossword.Crossword) bool) {
		cw0 := crossword.Seed(e.words)
		candidates := make([]int, 0, len(e.words)-1)
		for i := 1; i < len(e.words); i++ {
			candidates = append(candidates, i)
		}

		shared := &Enumerator{
			words:  e.words,
			index:  e.index,
			filter: e.filter,
			seed:   e.seed,
			mu:     &sync.Mutex{},
		}
		firstLevel := shared.expand(cw0, candidates)
		if len(firstLevel) == 0 {
			return
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		results := make(chan crossword.Crossword)
		g, gctx := errgroup.WithContext(ctx)

		for seed := 0; seed < threads; seed++ {
			seed := seed
			g.Go(func() error {
				for i := seed; i < len(firstLevel); i += threads {
					ext := firstLevel[i]
					ok := shared.recurse(gctx, ext.cw, ext.candidates, func(cw crossword.Crossword) bool {
						select {
						case results <- cw:
							return true
						case <-gctx.Done():
							return false
						}
					})
					if !ok {
						return nil
					}
				}
				return nil
			})
		}

		go func() {
			g.Wait()
			close(results)
		}()

		for cw := range results {
			if !yield(cw) {
				cancel()
				for range results {
					// drain so the producer goroutines can observe
					// ctx.Done and exit instead of blocking on results<-
				}
				return
			}
		}
	}
}
