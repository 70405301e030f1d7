package gridlogic

// Solver runs propagation to fixpoint and, when propagation stalls on
// an incomplete assignment, branches over the unassigned variable with
// the smallest domain (MRV). It never mutates the caller's Puzzle: the
// top-level Solve call works against a single clone, and every branch
// clones again before assigning a trial value.
type Solver struct{}

// NewSolver returns a Solver. The type carries no state of its own;
// it exists so the search algorithm reads as a method set, matching
// the shape of a production solver that would also carry search
// configuration (heuristics, limits).
func NewSolver() *Solver {
	return &Solver{}
}

// Solve runs the search and returns a row-indexed result. It returns
// ErrUnsolvable if no assignment satisfies every constraint. It does
// not mutate puzzle; all work happens on an internal clone.
func (s *Solver) Solve(puzzle *Puzzle) (Result, error) {
	work := puzzle.Clone()
	assigned, err := s.solveFrame(work)
	if err != nil {
		if isContradiction(err) {
			return nil, ErrUnsolvable
		}
		return nil, err
	}
	return ProjectResult(assigned)
}

// solveFrame implements one recursive frame of the algorithm: it owns
// p exclusively, propagates it to fixpoint, and either returns a
// completed puzzle or a contradiction.
func (s *Solver) solveFrame(p *Puzzle) (*Puzzle, error) {
	if err := propagateToFixpoint(p); err != nil {
		return nil, err
	}

	if p.IsComplete() {
		return p, nil
	}

	name, values, err := selectBranchVariable(p)
	if err != nil {
		return nil, err
	}

	tracef("puzzle %s: branching on %s, domain size %d", p.RunID, name, len(values))

	for _, v := range values {
		branch := p.Clone()
		branchVar, err := branch.GetVariable(name)
		if err != nil {
			return nil, err
		}
		if err := branchVar.Assign(v); err != nil {
			// The value came from the variable's own current domain,
			// so this can only be an internal-invariant violation.
			return nil, err
		}

		result, err := s.solveFrame(branch)
		if err == nil {
			return result, nil
		}
		if !isContradiction(err) {
			return nil, err
		}
		tracef("puzzle %s: branch %s=%d failed, backtracking", p.RunID, name, v)
	}

	return nil, newContradiction("Solver", "all values of "+name+" exhausted")
}

// propagateToFixpoint repeatedly runs every constraint in the puzzle's
// insertion order, accumulating a changed flag, until a full pass
// produces no further change. A contradiction at any point aborts
// immediately.
func propagateToFixpoint(p *Puzzle) error {
	for {
		changed := false
		for _, c := range p.Constraints() {
			ok, err := c.Propagate(p)
			if err != nil {
				return err
			}
			changed = changed || ok
		}
		if !changed {
			return nil
		}
	}
}

// selectBranchVariable chooses the unassigned variable with the
// smallest domain size greater than 1, ties broken by insertion order
// over the puzzle's categories. It fails with an internal-invariant
// contradiction if called on a complete puzzle (callers must check
// IsComplete first).
func selectBranchVariable(p *Puzzle) (string, []int, error) {
	best := ""
	bestSize := -1
	for _, tag := range p.Categories() {
		names, err := p.CategoryVariables(tag)
		if err != nil {
			return "", nil, err
		}
		for _, name := range names {
			v, err := p.GetVariable(name)
			if err != nil {
				return "", nil, err
			}
			size := v.DomainSize()
			if size <= 1 {
				continue
			}
			if bestSize == -1 || size < bestSize {
				best = name
				bestSize = size
			}
		}
	}
	if best == "" {
		return "", nil, newContradiction("Solver", "no branchable variable on an incomplete puzzle")
	}
	v, err := p.GetVariable(best)
	if err != nil {
		return "", nil, err
	}
	return best, v.Domain(), nil
}
