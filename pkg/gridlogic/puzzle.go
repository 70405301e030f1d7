package gridlogic

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var categoryTagPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Puzzle is a container of Variables grouped by category, plus an
// ordered list of Constraints. It is mutable during setup (category
// and constraint additions) and during solving (domain narrowing);
// the Solver never mutates a caller's Puzzle directly while
// branching, it only ever mutates private clones produced by Clone.
type Puzzle struct {
	N int

	// RunID identifies one solve attempt for log correlation; distinct
	// clones made during search keep the same RunID as their ancestor
	// so a trace of one search tree can be grepped out of interleaved
	// output.
	RunID string

	variables   map[string]*Variable
	categories  map[string][]string // tag -> ordered variable names tag1..tagN
	categoryTag []string             // insertion order, for stable iteration
	constraints []Constraint
}

// NewPuzzle constructs an empty puzzle with N rows. N must be at least
// 2.
func NewPuzzle(n int) (*Puzzle, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: N must be >= 2, got %d", ErrInvalidArgument, n)
	}
	return &Puzzle{
		N:           n,
		RunID:       uuid.New().String(),
		variables:   make(map[string]*Variable),
		categories:  make(map[string][]string),
		constraints: make([]Constraint, 0),
	}, nil
}

// AddCategory creates N fresh variables tag1..tagN with full domain
// 0..N-1 and registers an implicit AllDifferent constraint over them.
// It fails with ErrInvalidArgument if tag is not a non-empty alphabetic
// string, and with ErrDuplicateCategory if tag has already been
// registered.
func (p *Puzzle) AddCategory(tag string) error {
	if !categoryTagPattern.MatchString(tag) {
		return fmt.Errorf("%w: category tag must match [A-Za-z]+, got %q", ErrInvalidArgument, tag)
	}
	if _, exists := p.categories[tag]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, tag)
	}

	names := make([]string, p.N)
	for k := 1; k <= p.N; k++ {
		name := fmt.Sprintf("%s%d", tag, k)
		p.variables[name] = newVariable(name, p.N)
		names[k-1] = name
	}
	p.categories[tag] = names
	p.categoryTag = append(p.categoryTag, tag)

	allVars := make([]string, len(names))
	copy(allVars, names)
	p.constraints = append(p.constraints, NewAllDifferent(allVars))

	tracef("puzzle %s: added category %q with %d variables", p.RunID, tag, p.N)
	return nil
}

// GetVariable returns the named variable. It fails with
// ErrUnknownVariable if name was never declared.
func (p *Puzzle) GetVariable(name string) (*Variable, error) {
	v, ok := p.variables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return v, nil
}

// AddConstraint appends a constraint to the puzzle's constraint list.
// Ordering is preserved but not semantically significant, except that
// propagation iterates the list in this order on every fixpoint pass.
func (p *Puzzle) AddConstraint(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// Constraints returns the puzzle's constraint list. Callers must not
// mutate the returned slice.
func (p *Puzzle) Constraints() []Constraint {
	return p.constraints
}

// Categories returns the registered category tags in the order they
// were added.
func (p *Puzzle) Categories() []string {
	return p.categoryTag
}

// CategoryVariables returns the ordered variable names tag1..tagN for
// tag. It fails with ErrUnknownCategory if tag was never registered.
func (p *Puzzle) CategoryVariables(tag string) ([]string, error) {
	names, ok := p.categories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
	}
	return names, nil
}

// RanksPossibleForRow returns the set of rank integers k (1-based) such
// that variable <category><k> still has row in its domain. Rank-based
// propagators (RankGreater, RankExactDiff) use this to translate
// between rows and ranks. It fails with ErrUnknownCategory if category
// was never registered.
func (p *Puzzle) RanksPossibleForRow(category string, row int) ([]int, error) {
	names, err := p.CategoryVariables(category)
	if err != nil {
		return nil, err
	}
	ranks := make([]int, 0, len(names))
	for k, name := range names {
		if p.variables[name].dom.has(row) {
			ranks = append(ranks, k+1)
		}
	}
	return ranks, nil
}

// IsComplete reports whether every variable in the puzzle is assigned.
func (p *Puzzle) IsComplete() bool {
	for _, v := range p.variables {
		if !v.IsAssigned() {
			return false
		}
	}
	return true
}

// Clone deep-copies the puzzle's variable domains. Constraints are
// shared by reference since they are immutable and hold only variable
// names, never references into a specific Puzzle instance.
func (p *Puzzle) Clone() *Puzzle {
	clone := &Puzzle{
		N:           p.N,
		RunID:       p.RunID,
		variables:   make(map[string]*Variable, len(p.variables)),
		categories:  p.categories, // the name lists themselves never mutate
		categoryTag: p.categoryTag,
		constraints: p.constraints, // shared by reference; immutable
	}
	for name, v := range p.variables {
		clone.variables[name] = v.clone()
	}
	return clone
}
