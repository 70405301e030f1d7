// Package gridlogic implements a constraint-satisfaction engine for
// logic-grid puzzles: the "who owns the zebra"-style puzzles where N
// categories each contribute N values, and a list of clues pins down
// a unique pairing of every value to a row.
//
// The core pieces are Variable (a named unknown over row indices
// 0..N-1), Puzzle (a container of variables grouped by category plus
// a constraint list), the Constraint family (Equality, Inequality,
// AllDifferent, EitherOr, RankGreater, RankExactDiff), and Solver
// (fixpoint propagation plus MRV backtracking search).
//
// The package is single-threaded and synchronous by design; see
// Solver.Solve for the search algorithm and ProjectResult for how a
// complete assignment becomes a row-indexed mapping.
package gridlogic
