package sudoku

import (
	"context"
	"math/rand"
	"sync"

	"github.com/gitrdm/gridlogic/internal/parallel"
)

// generateBatch fans n independent Generate calls out across a worker
// pool, one worker slot per puzzle, each with its own rng derived from
// seed so results are reproducible for a given (seed, n, clueCount)
// but independent of each other.
func generateBatch(ctx context.Context, n, clueCount int, seed int64) ([]*Puzzle, error) {
	pool := parallel.NewWorkerPool(n)
	defer pool.Shutdown()

	results := make([]*Puzzle, n)
	errs := make([]error, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(i)))
			gen := NewGenerator(rng)
			board, solution, err := gen.Generate(ctx, clueCount)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = &Puzzle{Board: board, Solution: solution}
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
