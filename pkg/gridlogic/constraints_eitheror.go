package gridlogic

import "fmt"

// Pair names a variable pair inside an EitherOr alternative, meaning
// "these two variables name the same row."
type Pair struct {
	X, Y string
}

// EitherOr models a choice between alternatives, each of which is a
// pack of Equality constraints intended to hold simultaneously: "all
// these equalities hold" for at least one alternative. Propagation
// fails only when no alternative remains feasible; it does not rule
// out a solution in which more than one alternative holds.
//
// Feasibility is checked per-pair, not jointly: an alternative is
// live as long as every individual pair in it still has a non-empty
// domain intersection, without verifying all pairs in the alternative
// are satisfiable at once. A stricter propagator would tentatively
// enforce every pair of an alternative on a clone and discard the
// alternative if any pair contradicts. This implementation takes the
// simpler per-pair check; the two choices can only differ when pairs
// within a single alternative share a variable.
type EitherOr struct {
	Alternatives [][]Pair
}

// NewEitherOr builds an EitherOr constraint. It fails with
// ErrInvalidArgument if there are no alternatives, or if any
// alternative is empty.
func NewEitherOr(alternatives [][]Pair) (*EitherOr, error) {
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("%w: EitherOr requires at least one alternative", ErrInvalidArgument)
	}
	for i, alt := range alternatives {
		if len(alt) == 0 {
			return nil, fmt.Errorf("%w: EitherOr alternative %d is empty", ErrInvalidArgument, i)
		}
	}
	return &EitherOr{Alternatives: alternatives}, nil
}

func (c *EitherOr) String() string {
	return fmt.Sprintf("EitherOr(%v)", c.Alternatives)
}

// Propagate marks each alternative feasible iff every pair within it
// has a non-empty domain intersection. No alternative feasible is a
// contradiction. Exactly one feasible alternative is enforced pair by
// pair via the Equality propagator. Otherwise nothing changes.
func (c *EitherOr) Propagate(p *Puzzle) (bool, error) {
	feasible := make([]int, 0, len(c.Alternatives))

	for i, alt := range c.Alternatives {
		ok, err := alternativeFeasible(p, alt)
		if err != nil {
			return false, err
		}
		if ok {
			feasible = append(feasible, i)
		}
	}

	if len(feasible) == 0 {
		return false, newContradiction(c.String(), "no alternative remains feasible")
	}
	if len(feasible) > 1 {
		return false, nil
	}

	changed := false
	for _, pair := range c.Alternatives[feasible[0]] {
		eq := NewEquality(pair.X, pair.Y)
		ok, err := eq.Propagate(p)
		if err != nil {
			return false, err
		}
		changed = changed || ok
	}
	return changed, nil
}

func alternativeFeasible(p *Puzzle, alt []Pair) (bool, error) {
	for _, pair := range alt {
		x, err := p.GetVariable(pair.X)
		if err != nil {
			return false, err
		}
		y, err := p.GetVariable(pair.Y)
		if err != nil {
			return false, err
		}
		if x.dom.intersect(y.dom).isEmpty() {
			return false, nil
		}
	}
	return true, nil
}
