package gridlogic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy described in the package's design
// notes. Contradiction is recoverable control flow inside the Solver;
// every other sentinel indicates a programming error and is surfaced
// to the caller unchanged.
var (
	// ErrContradiction signals that a propagator would empty a domain,
	// that an EitherOr pack has no feasible alternative left, or that
	// two AllDifferent variables are both assigned the same row.
	ErrContradiction = errors.New("gridlogic: contradiction")

	// ErrUnknownVariable is returned when a constraint or query names a
	// variable that was never declared.
	ErrUnknownVariable = errors.New("gridlogic: unknown variable")

	// ErrUnknownCategory is returned when ranks_possible_for_row or a
	// rank-based constraint names a category that was never registered.
	ErrUnknownCategory = errors.New("gridlogic: unknown category")

	// ErrDuplicateCategory is returned by Puzzle.AddCategory when the
	// tag has already been registered.
	ErrDuplicateCategory = errors.New("gridlogic: duplicate category")

	// ErrNotAssigned is returned by Variable.AssignedValue on a
	// non-singleton domain.
	ErrNotAssigned = errors.New("gridlogic: variable not assigned")

	// ErrNotInDomain is returned by Variable.Assign when the requested
	// value is outside the current domain.
	ErrNotInDomain = errors.New("gridlogic: value not in domain")

	// ErrInvalidArgument covers malformed construction arguments: N < 2,
	// a malformed category tag, an empty EitherOr alternative list, etc.
	ErrInvalidArgument = errors.New("gridlogic: invalid argument")

	// ErrUnsolvable is returned by Solve when no assignment satisfies
	// every constraint.
	ErrUnsolvable = errors.New("gridlogic: unsolvable")
)

// ContradictionError carries diagnostic context about which
// propagator raised a contradiction and why. It wraps ErrContradiction
// so callers can match it with errors.Is.
type ContradictionError struct {
	Source string // the propagator or phase that raised the contradiction
	Reason string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("gridlogic: contradiction in %s: %s", e.Source, e.Reason)
}

func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}

func newContradiction(source, reason string) error {
	return &ContradictionError{Source: source, Reason: reason}
}

// isContradiction reports whether err represents recoverable search
// control flow, as opposed to a programming-error sentinel that must
// propagate to the caller unchanged.
func isContradiction(err error) bool {
	return errors.Is(err, ErrContradiction)
}
