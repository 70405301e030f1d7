// Package knighttour finds a knight's tour — a sequence of knight
// moves that visits every square of an N×N board exactly once —
// using Warnsdorff's heuristic rather than search: at each step, move
// to the reachable unvisited square with the fewest onward moves.
package knighttour

import (
	"errors"
	"fmt"
)

// ErrNoTour is returned when Warnsdorff's heuristic runs into a dead
// end before visiting every square. Heuristic tours are not
// guaranteed to succeed, unlike backtracking search, in exchange for
// running in roughly linear time instead of exponential.
var ErrNoTour = errors.New("knighttour: heuristic ran into a dead end before covering the board")

// Square is a (row, col) board position.
type Square struct {
	Row, Col int
}

var moves = [8]Square{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Tour is an ordered sequence of squares, one per board cell, where
// each consecutive pair is a legal knight move.
type Tour []Square

// Find searches for a tour of an n×n board starting at start using
// Warnsdorff's rule. It returns ErrNoTour if the heuristic dead-ends;
// for n >= 5 a tour almost always exists and is almost always found,
// but neither is guaranteed.
func Find(n int, start Square) (Tour, error) {
	if n <= 0 {
		return nil, fmt.Errorf("knighttour: board size must be positive, got %d", n)
	}
	if !inBounds(n, start) {
		return nil, fmt.Errorf("knighttour: start %v is outside a %dx%d board", start, n, n)
	}

	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}

	tour := make(Tour, 0, n*n)
	cur := start
	visited[cur.Row][cur.Col] = true
	tour = append(tour, cur)

	for len(tour) < n*n {
		next, ok := warnsdorffNext(n, cur, visited)
		if !ok {
			return nil, ErrNoTour
		}
		visited[next.Row][next.Col] = true
		tour = append(tour, next)
		cur = next
	}
	return tour, nil
}

// warnsdorffNext picks the unvisited neighbor of cur with the fewest
// unvisited neighbors of its own, breaking ties by move order.
func warnsdorffNext(n int, cur Square, visited [][]bool) (Square, bool) {
	best := Square{}
	bestDegree := -1
	found := false
	for _, m := range moves {
		cand := Square{cur.Row + m.Row, cur.Col + m.Col}
		if !inBounds(n, cand) || visited[cand.Row][cand.Col] {
			continue
		}
		degree := onwardDegree(n, cand, visited)
		if !found || degree < bestDegree {
			best, bestDegree, found = cand, degree, true
		}
	}
	return best, found
}

func onwardDegree(n int, sq Square, visited [][]bool) int {
	count := 0
	for _, m := range moves {
		cand := Square{sq.Row + m.Row, sq.Col + m.Col}
		if inBounds(n, cand) && !visited[cand.Row][cand.Col] {
			count++
		}
	}
	return count
}

func inBounds(n int, sq Square) bool {
	return sq.Row >= 0 && sq.Row < n && sq.Col >= 0 && sq.Col < n
}

// Board renders the tour as an n×n grid of move numbers, 1-indexed
// from the start square, -1 for any square the tour never reached
// (only possible if the caller constructs a partial Tour by hand).
func (tr Tour) Board(n int) [][]int {
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
		for j := range grid[i] {
			grid[i][j] = -1
		}
	}
	for i, sq := range tr {
		grid[sq.Row][sq.Col] = i + 1
	}
	return grid
}

// IsValid reports whether every consecutive pair of squares in tr is
// a legal knight move and every square of an n×n board appears
// exactly once.
func IsValid(n int, tr Tour) bool {
	if len(tr) != n*n {
		return false
	}
	seen := make(map[Square]bool, n*n)
	for i, sq := range tr {
		if !inBounds(n, sq) || seen[sq] {
			return false
		}
		seen[sq] = true
		if i == 0 {
			continue
		}
		if !isKnightMove(tr[i-1], sq) {
			return false
		}
	}
	return true
}

func isKnightMove(a, b Square) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	for _, m := range moves {
		if m.Row == dr && m.Col == dc {
			return true
		}
	}
	return false
}
