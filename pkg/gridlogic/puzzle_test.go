package gridlogic

import (
	"errors"
	"testing"
)

func TestNewPuzzleRejectsSmallN(t *testing.T) {
	if _, err := NewPuzzle(1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewPuzzle(1) err = %v; want ErrInvalidArgument", err)
	}
}

func TestAddCategoryCreatesVariables(t *testing.T) {
	p, err := NewPuzzle(3)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if err := p.AddCategory("A"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	for _, name := range []string{"A1", "A2", "A3"} {
		if _, err := p.GetVariable(name); err != nil {
			t.Errorf("GetVariable(%q): %v", name, err)
		}
	}
	if len(p.Constraints()) != 1 {
		t.Fatalf("expected one implicit AllDifferent constraint, got %d", len(p.Constraints()))
	}
}

func TestAddCategoryRejectsBadTag(t *testing.T) {
	p, _ := NewPuzzle(3)
	if err := p.AddCategory("A1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("AddCategory(\"A1\") err = %v; want ErrInvalidArgument", err)
	}
	if err := p.AddCategory(""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("AddCategory(\"\") err = %v; want ErrInvalidArgument", err)
	}
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	p, _ := NewPuzzle(3)
	if err := p.AddCategory("A"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if err := p.AddCategory("A"); !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("AddCategory(\"A\") again err = %v; want ErrDuplicateCategory", err)
	}
}

func TestGetVariableUnknown(t *testing.T) {
	p, _ := NewPuzzle(3)
	if _, err := p.GetVariable("Z9"); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("GetVariable err = %v; want ErrUnknownVariable", err)
	}
}

func TestRanksPossibleForRow(t *testing.T) {
	p, _ := NewPuzzle(3)
	_ = p.AddCategory("A")
	ranks, err := p.RanksPossibleForRow("A", 0)
	if err != nil {
		t.Fatalf("RanksPossibleForRow: %v", err)
	}
	if len(ranks) != 3 {
		t.Fatalf("expected all 3 ranks possible before narrowing, got %v", ranks)
	}

	a1, _ := p.GetVariable("A1")
	if err := a1.Assign(0); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	a2, _ := p.GetVariable("A2")
	if _, err := a2.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	a3, _ := p.GetVariable("A3")
	if _, err := a3.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	ranks, err = p.RanksPossibleForRow("A", 0)
	if err != nil {
		t.Fatalf("RanksPossibleForRow: %v", err)
	}
	if len(ranks) != 1 || ranks[0] != 1 {
		t.Fatalf("RanksPossibleForRow(A, 0) = %v; want [1]", ranks)
	}
}

func TestRanksPossibleForRowUnknownCategory(t *testing.T) {
	p, _ := NewPuzzle(3)
	if _, err := p.RanksPossibleForRow("Z", 0); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v; want ErrUnknownCategory", err)
	}
}

func TestPuzzleCloneIsolatesDomains(t *testing.T) {
	p, _ := NewPuzzle(3)
	_ = p.AddCategory("A")
	clone := p.Clone()

	a1Clone, _ := clone.GetVariable("A1")
	if _, err := a1Clone.Remove(0); err != nil {
		t.Fatalf("Remove on clone: %v", err)
	}

	a1Orig, _ := p.GetVariable("A1")
	if !a1Orig.dom.has(0) {
		t.Fatalf("mutating clone leaked into original puzzle")
	}
}

func TestPuzzleCloneSharesConstraintsByReference(t *testing.T) {
	p, _ := NewPuzzle(3)
	_ = p.AddCategory("A")
	clone := p.Clone()
	if len(p.Constraints()) != len(clone.Constraints()) {
		t.Fatalf("clone constraint count mismatch")
	}
	for i := range p.Constraints() {
		if p.Constraints()[i] != clone.Constraints()[i] {
			t.Fatalf("constraint %d not shared by reference", i)
		}
	}
}
