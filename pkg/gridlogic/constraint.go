package gridlogic

import "fmt"

// Constraint is the single capability every clue-derived propagator
// implements: narrow the domains of the puzzle it is given, report
// whether anything changed, and fail with a contradiction if
// propagation would leave any domain empty.
//
// Constraints hold only variable names and constants, never a
// reference into a specific Puzzle instance — this is what makes them
// safe to share by reference across Puzzle clones during search.
type Constraint interface {
	// Propagate narrows domains in p and reports whether anything
	// changed. A non-nil error other than a contradiction indicates a
	// programming error (an unknown variable or category) and must
	// propagate to the caller unchanged.
	Propagate(p *Puzzle) (bool, error)

	// String returns a human-readable description, used in
	// diagnostics and contradiction messages.
	String() string
}

// Equality constrains two variables to name the same row.
type Equality struct {
	A, B string
}

// NewEquality builds an Equality(a, b) constraint: "a and b name the
// same row."
func NewEquality(a, b string) *Equality {
	return &Equality{A: a, B: b}
}

func (c *Equality) String() string {
	return fmt.Sprintf("Equality(%s, %s)", c.A, c.B)
}

// Propagate computes dom(a) ∩ dom(b); an empty result is a
// contradiction, otherwise both domains are set to the intersection.
func (c *Equality) Propagate(p *Puzzle) (bool, error) {
	a, err := p.GetVariable(c.A)
	if err != nil {
		return false, err
	}
	b, err := p.GetVariable(c.B)
	if err != nil {
		return false, err
	}

	inter := a.dom.intersect(b.dom)
	if inter.isEmpty() {
		return false, newContradiction(c.String(), "empty intersection")
	}

	changedA, err := a.Intersect(inter)
	if err != nil {
		return false, err
	}
	changedB, err := b.Intersect(inter)
	if err != nil {
		return false, err
	}
	return changedA || changedB, nil
}

// Inequality constrains two variables to name different rows.
type Inequality struct {
	A, B string
}

// NewInequality builds an Inequality(a, b) constraint: "a and b name
// different rows."
func NewInequality(a, b string) *Inequality {
	return &Inequality{A: a, B: b}
}

func (c *Inequality) String() string {
	return fmt.Sprintf("Inequality(%s, %s)", c.A, c.B)
}

// Propagate only prunes when one side is a singleton — standard
// arc-consistency for ≠. It removes the singleton's value from the
// other side's domain, symmetrically.
func (c *Inequality) Propagate(p *Puzzle) (bool, error) {
	a, err := p.GetVariable(c.A)
	if err != nil {
		return false, err
	}
	b, err := p.GetVariable(c.B)
	if err != nil {
		return false, err
	}

	changed := false
	if av, ok := a.dom.isSingleton(); ok {
		if bv, ok2 := b.dom.isSingleton(); ok2 && av == bv {
			return false, newContradiction(c.String(), "both sides assigned the same row")
		}
		removed, err := b.Remove(av)
		if err != nil {
			return false, err
		}
		changed = changed || removed
	}
	if bv, ok := b.dom.isSingleton(); ok {
		removed, err := a.Remove(bv)
		if err != nil {
			return false, err
		}
		changed = changed || removed
	}
	return changed, nil
}

// AllDifferent constrains a list of variables to take pairwise
// distinct rows. Propagation is simple Ford-style: each already
// assigned value is removed from the domains of every other listed
// variable. Full Régin matching (arc-consistent all-different via
// bipartite matching) is out of scope — this is intentionally weaker.
type AllDifferent struct {
	Vars []string
}

// NewAllDifferent builds an AllDifferent([v1..vk]) constraint.
func NewAllDifferent(vars []string) *AllDifferent {
	return &AllDifferent{Vars: vars}
}

func (c *AllDifferent) String() string {
	return fmt.Sprintf("AllDifferent(%v)", c.Vars)
}

// Propagate collects assigned values among the listed variables, and
// for each one removes it from the domains of the other listed
// variables. Two listed variables sharing an assigned value is a
// contradiction.
func (c *AllDifferent) Propagate(p *Puzzle) (bool, error) {
	vars := make([]*Variable, len(c.Vars))
	for i, name := range c.Vars {
		v, err := p.GetVariable(name)
		if err != nil {
			return false, err
		}
		vars[i] = v
	}

	assigned := make(map[int]string)
	for _, v := range vars {
		val, ok := v.dom.isSingleton()
		if !ok {
			continue
		}
		if owner, dup := assigned[val]; dup && owner != v.Name {
			return false, newContradiction(c.String(), fmt.Sprintf("%s and %s both assigned row %d", owner, v.Name, val))
		}
		assigned[val] = v.Name
	}

	changed := false
	for val, owner := range assigned {
		for _, v := range vars {
			if v.Name == owner {
				continue
			}
			removed, err := v.Remove(val)
			if err != nil {
				return false, err
			}
			changed = changed || removed
		}
	}
	return changed, nil
}
