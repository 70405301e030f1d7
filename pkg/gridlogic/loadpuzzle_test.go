package gridlogic

import "testing"

func TestParsePuzzleBuildsSolvableFixture(t *testing.T) {
	data := []byte(`{
		"n": 2,
		"categories": ["A", "B"],
		"constraints": [
			{"type": "equality", "a": "A1", "b": "B1"}
		]
	}`)
	p, err := ParsePuzzle(data)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}
	result, err := NewSolver().Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result[0]["A"] != "A1" || result[0]["B"] != "B1" {
		t.Fatalf("row 0 = %v; want A1/B1", result[0])
	}
}

func TestParsePuzzleRejectsUnknownConstraintType(t *testing.T) {
	data := []byte(`{"n": 2, "categories": ["A"], "constraints": [{"type": "bogus"}]}`)
	if _, err := ParsePuzzle(data); err == nil {
		t.Fatalf("ParsePuzzle should reject an unknown constraint type")
	}
}

func TestParsePuzzleRejectsMalformedJSON(t *testing.T) {
	if _, err := ParsePuzzle([]byte("not json")); err == nil {
		t.Fatalf("ParsePuzzle should reject malformed JSON")
	}
}

func TestParsePuzzleEitherOr(t *testing.T) {
	data := []byte(`{
		"n": 3,
		"categories": ["A", "B", "C"],
		"constraints": [
			{"type": "equality", "a": "A1", "b": "B1"},
			{"type": "eitheror", "alternatives": [
				[{"x": "A1", "y": "C1"}],
				[{"x": "A1", "y": "C2"}]
			]},
			{"type": "inequality", "a": "A1", "b": "C1"}
		]
	}`)
	p, err := ParsePuzzle(data)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}
	if _, err := NewSolver().Solve(p); err != nil {
		t.Fatalf("Solve: %v", err)
	}
}
