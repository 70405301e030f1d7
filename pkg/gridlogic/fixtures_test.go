package gridlogic

import "testing"

// fiveHousesConstraints returns the ten constraints documented in the
// repository README for the five-row, four-category fixture puzzle
// used by the S6 scenario test. Nine of them anchor B, C and D against
// A (which the search always visits in ascending, identity order); the
// tenth (Equality(C1, B3)) is a confirming clue that both name row 4
// and, by the time it is reached, is already satisfied — it adds no
// further narrowing but documents a genuine fact about the solution.
func fiveHousesConstraints() []Constraint {
	return []Constraint{
		NewEquality("A1", "B2"),
		NewEquality("A1", "C2"),
		NewEquality("A1", "D5"),
		NewEquality("A2", "B1"),
		NewEquality("A2", "D4"),
		NewEquality("A3", "D3"),
		NewEquality("A4", "C3"),
		NewEquality("A5", "B3"),
		NewEquality("A5", "C1"),
		NewEquality("C1", "B3"),
	}
}

func buildFiveHousesPuzzle(t *testing.T) *Puzzle {
	t.Helper()
	p := mustPuzzle(t, 5, "A", "B", "C", "D")
	for _, c := range fiveHousesConstraints() {
		p.AddConstraint(c)
	}
	return p
}
