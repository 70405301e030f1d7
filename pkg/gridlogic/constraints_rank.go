package gridlogic

import "fmt"

// rankPredicate compares a rank drawn from the left side against a
// rank drawn from the right side of a rank-based constraint.
type rankPredicate func(leftRank, rightRank int) bool

// rankPossibilities returns, for every row still in v's domain, the
// set of ranks possible for that row in category. The slices are
// aligned: rows[i] maps to ranks[i].
func rankPossibilities(p *Puzzle, v *Variable, category string) (rows []int, ranks [][]int, err error) {
	rows = v.Domain()
	ranks = make([][]int, len(rows))
	for i, row := range rows {
		rk, err := p.RanksPossibleForRow(category, row)
		if err != nil {
			return nil, nil, err
		}
		ranks[i] = rk
	}
	return rows, ranks, nil
}

// pruneSide keeps row i in v's domain iff there exists some row j
// still in otherRows and some rank a possible for i, b possible for j,
// with pred(a, b) holding (or pred(b, a) holding, when v plays the
// right-hand role — see the isLeft flag). Rows whose own rank
// possibility set is empty are always pruned.
//
// The caller recomputes rankPossibilities for both sides independently
// on every call, for both the left-pruning and right-pruning passes:
// nothing computed while pruning one side is reused while pruning the
// other.
func pruneSide(v *Variable, isLeft bool, category string, otherRows []int, otherRanks [][]int, pred rankPredicate, p *Puzzle) (bool, error) {
	surviving := newEmptyDomain(p.N)
	for _, i := range v.Domain() {
		ranksI, err := p.RanksPossibleForRow(category, i)
		if err != nil {
			return false, err
		}
		if len(ranksI) == 0 {
			continue
		}
		ok := false
		for idx := range otherRows {
			ranksJ := otherRanks[idx]
			for _, a := range ranksI {
				for _, b := range ranksJ {
					var satisfied bool
					if isLeft {
						satisfied = pred(a, b)
					} else {
						satisfied = pred(b, a)
					}
					if satisfied {
						ok = true
						break
					}
				}
				if ok {
					break
				}
			}
			if ok {
				break
			}
		}
		if ok {
			surviving.set(i)
		}
	}
	return v.Intersect(surviving)
}

func propagateRank(p *Puzzle, leftName, rightName, category string, pred rankPredicate) (bool, error) {
	left, err := p.GetVariable(leftName)
	if err != nil {
		return false, err
	}
	right, err := p.GetVariable(rightName)
	if err != nil {
		return false, err
	}

	// Pass 1: prune left, using right's rows/ranks computed fresh.
	rightRows, rightRanks, err := rankPossibilities(p, right, category)
	if err != nil {
		return false, err
	}
	changedLeft, err := pruneSide(left, true, category, rightRows, rightRanks, pred, p)
	if err != nil {
		return false, err
	}

	// Pass 2: prune right, using left's rows/ranks computed fresh —
	// independently of pass 1, not reusing rightRows/rightRanks or any
	// local left captured above.
	leftRows, leftRanks, err := rankPossibilities(p, left, category)
	if err != nil {
		return false, err
	}
	changedRight, err := pruneSide(right, false, category, leftRows, leftRanks, pred, p)
	if err != nil {
		return false, err
	}

	return changedLeft || changedRight, nil
}

// RankGreater constrains two variables' ranks within a category: the
// row that Left maps to must carry a category rank strictly greater
// than the rank carried by the row Right maps to.
type RankGreater struct {
	Left, Right, Category string
}

// NewRankGreater builds a RankGreater(left, right, category)
// constraint.
func NewRankGreater(left, right, category string) *RankGreater {
	return &RankGreater{Left: left, Right: right, Category: category}
}

func (c *RankGreater) String() string {
	return fmt.Sprintf("RankGreater(%s, %s, %s)", c.Left, c.Right, c.Category)
}

// Propagate prunes both sides using the leftRank > rightRank
// predicate over possible ranks.
func (c *RankGreater) Propagate(p *Puzzle) (bool, error) {
	return propagateRank(p, c.Left, c.Right, c.Category, func(a, b int) bool { return a > b })
}

// RankExactDiff constrains two variables' ranks within a category:
// rank(left) - rank(right) == Diff. Diff may be negative, meaning
// left is lower-ranked than right. The category's ranked values are
// assumed evenly spaced; unequal increments are an explicit
// non-goal.
//
// This is the corrected form of the reference propagator: the
// reference implementation's second pruning pass (pruning Right's
// domain) reused a stale local from the first pass for its emptiness
// short-circuit. Here both passes recompute rankPossibilities for the
// side being used as "the other side" independently.
type RankExactDiff struct {
	Left, Right, Category string
	Diff                  int
}

// NewRankExactDiff builds a RankExactDiff(left, right, category, d)
// constraint: rank(left) - rank(right) == d.
func NewRankExactDiff(left, right, category string, diff int) *RankExactDiff {
	return &RankExactDiff{Left: left, Right: right, Category: category, Diff: diff}
}

func (c *RankExactDiff) String() string {
	return fmt.Sprintf("RankExactDiff(%s, %s, %s, %d)", c.Left, c.Right, c.Category, c.Diff)
}

// Propagate prunes both sides using the leftRank - rightRank == Diff
// predicate over possible ranks.
func (c *RankExactDiff) Propagate(p *Puzzle) (bool, error) {
	return propagateRank(p, c.Left, c.Right, c.Category, func(a, b int) bool { return a-b == c.Diff })
}
