package sudoku

import (
	"context"
	"errors"
	"math/bits"
	"math/rand"
)

// Sentinel errors of the solver. Solve and CountSolutions return
// ErrNoSolution, ErrInvalidPuzzle and ErrTimeout; ErrMultipleSolutions
// is not returned by this package. Callers use errors.Is against these
// rather than matching on message text.
var (
	ErrNoSolution        = errors.New("sudoku: no solution exists")
	ErrMultipleSolutions = errors.New("sudoku: puzzle has more than one solution")
	ErrInvalidPuzzle     = errors.New("sudoku: puzzle is invalid")
	ErrTimeout           = errors.New("sudoku: solve timed out")
)

// Options configures a Solver.
type Options struct {
	// Rand supplies randomness for value ordering during generation.
	// A nil Rand makes the solver deterministic (ascending value
	// order), which is what plain solving wants.
	Rand *rand.Rand
}

// Solver finds solutions to a Sudoku board via constraint propagation
// (naked singles, hidden singles) interleaved with MRV backtracking
// search.
type Solver struct {
	opts Options
}

// New returns a Solver configured with opts.
func New(opts Options) *Solver {
	return &Solver{opts: opts}
}

// Solve returns a completed board reachable from b, or ErrNoSolution
// if none exists, or ErrInvalidPuzzle if b already violates its own
// constraints. The input board is not mutated.
func (s *Solver) Solve(ctx context.Context, b *Board) (*Board, error) {
	if !b.IsValid() {
		return nil, ErrInvalidPuzzle
	}
	work := b.Clone()
	if !s.propagateConstraints(work) {
		return nil, ErrNoSolution
	}
	solved, err := s.backtrack(ctx, work)
	if err != nil {
		return nil, err
	}
	return solved, nil
}

// CountSolutions explores up to cap distinct solutions reachable from
// b and returns how many it found (which may be less than the true
// total once cap is hit — callers checking uniqueness only need to
// know whether the count is 0, 1, or "more than 1", so cap=2 suffices
// for that use).
func (s *Solver) CountSolutions(ctx context.Context, b *Board, cap int) (int, error) {
	if !b.IsValid() {
		return 0, ErrInvalidPuzzle
	}
	work := b.Clone()
	if !s.propagateConstraints(work) {
		return 0, nil
	}
	count := 0
	err := s.countBacktrack(ctx, work, cap, &count)
	return count, err
}

// propagateConstraints repeatedly applies naked-singles and
// hidden-singles elimination until neither makes further progress. It
// reports false if a cell is left with no legal candidate, meaning
// the board (or the branch it is in) is a dead end.
func (s *Solver) propagateConstraints(b *Board) bool {
	for {
		changed, ok := s.applyNakedSingles(b)
		if !ok {
			return false
		}
		if changed {
			continue
		}
		changed, ok = s.applyHiddenSingles(b)
		if !ok {
			return false
		}
		if !changed {
			return true
		}
	}
}

func (s *Solver) applyNakedSingles(b *Board) (changed, ok bool) {
	for pos := 0; pos < CellCount; pos++ {
		if b.Get(pos) != EmptyCell {
			continue
		}
		mask := b.CandidateMask(pos)
		if mask == 0 {
			return changed, false
		}
		if bits.OnesCount(mask) == 1 {
			b.SetForce(pos, bits.TrailingZeros(mask)+1)
			changed = true
		}
	}
	return changed, true
}

// applyHiddenSingles finds, for each row/column/box unit, a candidate
// value that can legally go in exactly one empty cell of that unit
// even though the cell itself has other candidates too, and commits
// it.
func (s *Solver) applyHiddenSingles(b *Board) (changed, ok bool) {
	units := make([][]int, 0, 27)
	for r := 0; r < Size; r++ {
		unit := make([]int, Size)
		for c := 0; c < Size; c++ {
			unit[c] = MakePos(r, c)
		}
		units = append(units, unit)
	}
	for c := 0; c < Size; c++ {
		unit := make([]int, Size)
		for r := 0; r < Size; r++ {
			unit[r] = MakePos(r, c)
		}
		units = append(units, unit)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			unit := make([]int, 0, Size)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					unit = append(unit, MakePos(br*3+dr, bc*3+dc))
				}
			}
			units = append(units, unit)
		}
	}

	for _, unit := range units {
		for v := 1; v <= 9; v++ {
			slot, count := -1, 0
			for _, pos := range unit {
				if b.Get(pos) != EmptyCell {
					continue
				}
				if b.HasCandidate(pos, v) {
					count++
					slot = pos
				}
			}
			if count == 1 {
				b.SetForce(slot, v)
				changed = true
			} else if count == 0 {
				if !unitAlreadyHas(b, unit, v) {
					return changed, false
				}
			}
		}
	}
	return changed, true
}

func unitAlreadyHas(b *Board, unit []int, v int) bool {
	for _, pos := range unit {
		if b.Get(pos) == v {
			return true
		}
	}
	return false
}

// findMRVCell returns the empty cell with the fewest legal candidates,
// along with those candidates. ok is false if no empty cell remains,
// meaning the board is complete.
func findMRVCell(b *Board) (pos int, candidates []int, ok bool) {
	best, bestCount := -1, 10
	var bestCandidates []int
	for p := 0; p < CellCount; p++ {
		if b.Get(p) != EmptyCell {
			continue
		}
		cands := b.Candidates(p)
		if len(cands) < bestCount {
			best, bestCount, bestCandidates = p, len(cands), cands
		}
	}
	if best < 0 {
		return 0, nil, false
	}
	return best, bestCandidates, true
}

// order shuffles candidates in place when the Solver carries a random
// source (generation), or leaves them in ascending order otherwise
// (plain solving, which wants determinism).
func (s *Solver) order(candidates []int) []int {
	if s.opts.Rand != nil {
		s.opts.Rand.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	}
	return candidates
}

func (s *Solver) backtrack(ctx context.Context, b *Board) (*Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrTimeout
	}
	pos, candidates, ok := findMRVCell(b)
	if !ok {
		return b, nil
	}
	if len(candidates) == 0 {
		return nil, ErrNoSolution
	}
	for _, v := range s.order(candidates) {
		trial := b.Clone()
		trial.SetForce(pos, v)
		if !s.propagateConstraints(trial) {
			continue
		}
		solved, err := s.backtrack(ctx, trial)
		if err == nil {
			return solved, nil
		}
		if !errors.Is(err, ErrNoSolution) {
			return nil, err
		}
	}
	return nil, ErrNoSolution
}

func (s *Solver) countBacktrack(ctx context.Context, b *Board, cap int, count *int) error {
	if err := ctx.Err(); err != nil {
		return ErrTimeout
	}
	if *count >= cap {
		return nil
	}
	pos, candidates, ok := findMRVCell(b)
	if !ok {
		*count++
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}
	for _, v := range s.order(candidates) {
		if *count >= cap {
			return nil
		}
		trial := b.Clone()
		trial.SetForce(pos, v)
		if !s.propagateConstraints(trial) {
			continue
		}
		if err := s.countBacktrack(ctx, trial, cap, count); err != nil {
			return err
		}
	}
	return nil
}
