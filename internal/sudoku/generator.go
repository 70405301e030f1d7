package sudoku

import (
	"context"
	"errors"
	"math/rand"
)

// Clue-count bounds. 17 is the smallest clue count known to admit a
// unique solution; 80 leaves only one cell empty.
const (
	MinClueCount     = 17
	MaxClueCount     = 80
	DefaultClueCount = 32
)

var (
	// ErrGenerationFailed means digging holes never reached the
	// requested clue count without losing uniqueness.
	ErrGenerationFailed = errors.New("sudoku: generation failed to reach requested clue count")
	// ErrInvalidClueCount means the requested clue count falls outside
	// [MinClueCount, MaxClueCount].
	ErrInvalidClueCount = errors.New("sudoku: invalid clue count")
)

// Generator produces randomized, uniquely-solvable Sudoku puzzles.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from rng. A nil rng falls
// back to an unseeded source, which is fine for tests but not for
// puzzles meant to vary run to run.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{rng: rng}
}

// Generate returns a puzzle board with exactly clueCount filled cells
// and a unique solution, plus that solution itself.
func (g *Generator) Generate(ctx context.Context, clueCount int) (puzzle, solution *Board, err error) {
	if clueCount < MinClueCount || clueCount > MaxClueCount {
		return nil, nil, ErrInvalidClueCount
	}
	solution, err = g.generateSolution(ctx)
	if err != nil {
		return nil, nil, err
	}
	puzzle, err = g.removeCells(ctx, solution, clueCount)
	if err != nil {
		return nil, nil, err
	}
	return puzzle, solution, nil
}

// generateSolution produces a random complete board by solving an
// empty board with shuffled candidate order.
func (g *Generator) generateSolution(ctx context.Context) (*Board, error) {
	solver := New(Options{Rand: g.rng})
	return solver.Solve(ctx, NewBoard())
}

// removeCells starts from a full solved board and repeatedly clears a
// randomly chosen filled cell, keeping the clear only if the
// resulting board still has a unique solution, until exactly
// clueCount cells remain filled or no further cell can be safely
// cleared.
func (g *Generator) removeCells(ctx context.Context, solution *Board, clueCount int) (*Board, error) {
	board := solution.Clone()
	order := g.rng.Perm(CellCount)
	solver := New(Options{})

	removed := 0
	target := CellCount - clueCount
	for _, pos := range order {
		if removed >= target {
			break
		}
		v := board.Get(pos)
		if v == EmptyCell {
			continue
		}
		board.Clear(pos)
		n, err := solver.CountSolutions(ctx, board, 2)
		if err != nil {
			return nil, err
		}
		if n == 1 {
			removed++
		} else {
			board.SetForce(pos, v)
		}
	}
	if removed < target {
		return nil, ErrGenerationFailed
	}
	return board, nil
}

// GenerateBatch runs n independent generations concurrently, one
// worker per puzzle, via the shared worker pool so that batch
// requests amortize across cores instead of digging holes serially.
func GenerateBatch(ctx context.Context, n, clueCount int, seed int64) ([]*Puzzle, error) {
	return generateBatch(ctx, n, clueCount, seed)
}

// Puzzle bundles a generated board with its unique solution for
// callers that want both without re-solving.
type Puzzle struct {
	Board    *Board
	Solution *Board
}
