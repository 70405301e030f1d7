package gridlogic

import "testing"

func TestRankGreaterPrunesLeftSide(t *testing.T) {
	// N=3, category B. In a fresh puzzle ranks_possible_for_row(B, row)
	// returns every rank for every row, so pin B1..B3 to rows 0..2
	// (rank k at row k-1) to make ranks determined, then check
	// RankGreater prunes A accordingly.
	p := mustPuzzle(t, 3, "A", "B")
	b1, _ := p.GetVariable("B1")
	b2, _ := p.GetVariable("B2")
	b3, _ := p.GetVariable("B3")
	if err := b1.Assign(0); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := b2.Assign(1); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := b3.Assign(2); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	// RankGreater(A1, A... ) needs two *different* variables; reuse B1
	// as the right side to keep this a focused unit test of pruning
	// math rather than a full puzzle.
	rg := NewRankGreater("A1", "B1", "B")
	// A1's row must carry a B-rank greater than B1's rank (which is 1,
	// since B1 is pinned to row 0). Only rows with B-rank 2 or 3
	// qualify: rows 1 and 2.
	changed, err := rg.Propagate(p)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if !changed {
		t.Fatalf("expected A1 to be pruned")
	}
	a1, _ := p.GetVariable("A1")
	if a1.dom.has(0) {
		t.Fatalf("A1 should have lost row 0 (B-rank 1, not > 1)")
	}
	if !a1.dom.has(1) || !a1.dom.has(2) {
		t.Fatalf("A1 should still allow rows 1 and 2, got %v", a1.Domain())
	}
}

func TestRankGreaterContradictionWhenNoRankSurvives(t *testing.T) {
	p := mustPuzzle(t, 2, "A", "B")
	b1, _ := p.GetVariable("B1")
	b2, _ := p.GetVariable("B2")
	if err := b1.Assign(0); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := b2.Assign(1); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	// B2 has rank 2, the maximum; nothing can have a rank greater than
	// rank 2 in a 2-row category, so RankGreater(A1, B2, B) must wipe
	// out A1's domain entirely.
	rg := NewRankGreater("A1", "B2", "B")
	if _, err := rg.Propagate(p); !isContradiction(err) {
		t.Fatalf("Propagate err = %v; want contradiction", err)
	}
}

func TestRankExactDiffPrunesToExactOffset(t *testing.T) {
	// N=4, category B pinned so rank == row+1. RankExactDiff(A1, B2, B,
	// 1) requires A1's row to carry a B-rank exactly one greater than
	// B2's rank. B2 is pinned to row 1, i.e. rank 2, so A1 must carry
	// rank 3, i.e. row 2.
	p := mustPuzzle(t, 4, "A", "B")
	for i, name := range []string{"B1", "B2", "B3", "B4"} {
		v, _ := p.GetVariable(name)
		if err := v.Assign(i); err != nil {
			t.Fatalf("Assign %s: %v", name, err)
		}
	}

	red := NewRankExactDiff("A1", "B2", "B", 1)
	changed, err := red.Propagate(p)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if !changed {
		t.Fatalf("expected A1 to collapse to a single row")
	}
	a1, _ := p.GetVariable("A1")
	val, err := a1.AssignedValue()
	if err != nil {
		t.Fatalf("A1 should be fully pinned: %v", err)
	}
	if val != 2 {
		t.Fatalf("A1 = %d; want row 2 (B-rank 3)", val)
	}
}

func TestRankExactDiffNegativeOffset(t *testing.T) {
	p := mustPuzzle(t, 4, "A", "B")
	for i, name := range []string{"B1", "B2", "B3", "B4"} {
		v, _ := p.GetVariable(name)
		if err := v.Assign(i); err != nil {
			t.Fatalf("Assign %s: %v", name, err)
		}
	}
	// rank(A1) - rank(B4) == -1, B4 has rank 4, so A1 must have rank 3
	// (row 2).
	red := NewRankExactDiff("A1", "B4", "B", -1)
	if _, err := red.Propagate(p); err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	a1, _ := p.GetVariable("A1")
	val, err := a1.AssignedValue()
	if err != nil || val != 2 {
		t.Fatalf("A1 = %d, %v; want row 2", val, err)
	}
}
