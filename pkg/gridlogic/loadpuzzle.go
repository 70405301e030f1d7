package gridlogic

import (
	"encoding/json"
	"fmt"
)

// PuzzleFile is the on-disk JSON shape ParsePuzzle reads: a row count,
// a list of category tags, and a list of typed constraint clues. It
// exists so that callers (the CLI, tests fixing up ad hoc puzzles)
// can describe a puzzle as data rather than a sequence of Go calls.
type PuzzleFile struct {
	N          int              `json:"n"`
	Categories []string         `json:"categories"`
	Clues      []ClueSpec       `json:"constraints"`
}

// ClueSpec is one entry of a PuzzleFile's constraint list. Type
// selects which fields are read; the rest are ignored.
type ClueSpec struct {
	Type         string          `json:"type"`
	A            string          `json:"a,omitempty"`
	B            string          `json:"b,omitempty"`
	Vars         []string        `json:"vars,omitempty"`
	Alternatives [][]PairSpec    `json:"alternatives,omitempty"`
	X            string          `json:"x,omitempty"`
	Y            string          `json:"y,omitempty"`
	Category     string          `json:"category,omitempty"`
	Diff         int             `json:"diff,omitempty"`
}

// PairSpec mirrors Pair for JSON decoding.
type PairSpec struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ParsePuzzle decodes JSON-encoded puzzle data and builds the
// corresponding Puzzle, in the same category-then-constraint order
// the file lists them.
func ParsePuzzle(data []byte) (*Puzzle, error) {
	var pf PuzzleFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("gridlogic: decoding puzzle file: %w", err)
	}
	return BuildPuzzle(pf)
}

// BuildPuzzle constructs a Puzzle from a decoded PuzzleFile.
func BuildPuzzle(pf PuzzleFile) (*Puzzle, error) {
	p, err := NewPuzzle(pf.N)
	if err != nil {
		return nil, err
	}
	for _, tag := range pf.Categories {
		if err := p.AddCategory(tag); err != nil {
			return nil, err
		}
	}
	for i, clue := range pf.Clues {
		c, err := buildConstraint(clue)
		if err != nil {
			return nil, fmt.Errorf("gridlogic: constraint %d: %w", i, err)
		}
		p.AddConstraint(c)
	}
	return p, nil
}

func buildConstraint(clue ClueSpec) (Constraint, error) {
	switch clue.Type {
	case "equality":
		return NewEquality(clue.A, clue.B), nil
	case "inequality":
		return NewInequality(clue.A, clue.B), nil
	case "alldifferent":
		return NewAllDifferent(clue.Vars), nil
	case "rankgreater":
		return NewRankGreater(clue.X, clue.Y, clue.Category), nil
	case "rankexactdiff":
		return NewRankExactDiff(clue.X, clue.Y, clue.Category, clue.Diff), nil
	case "eitheror":
		alts := make([][]Pair, len(clue.Alternatives))
		for i, alt := range clue.Alternatives {
			pairs := make([]Pair, len(alt))
			for j, ps := range alt {
				pairs[j] = Pair{X: ps.X, Y: ps.Y}
			}
			alts[i] = pairs
		}
		return NewEitherOr(alts)
	default:
		return nil, fmt.Errorf("%w: unknown constraint type %q", ErrInvalidArgument, clue.Type)
	}
}
