package gridlogic

// Variable is a named unknown whose domain is a subset of the row
// indices 0..N-1. The domain is never empty: every removal that would
// empty it is rejected with ErrContradiction before it happens.
//
// A Variable is exclusively owned by the Puzzle that created it; the
// Solver never mutates a Variable directly except through the Puzzle
// it belongs to, and only ever on a private clone while branching.
type Variable struct {
	Name string
	dom  domain
}

func newVariable(name string, n int) *Variable {
	return &Variable{Name: name, dom: newFullDomain(n)}
}

// IsAssigned reports whether the domain has collapsed to a single row.
func (v *Variable) IsAssigned() bool {
	_, ok := v.dom.isSingleton()
	return ok
}

// AssignedValue returns the sole remaining row. It fails with
// ErrNotAssigned if the domain does not currently hold exactly one
// value.
func (v *Variable) AssignedValue() (int, error) {
	val, ok := v.dom.isSingleton()
	if !ok {
		return 0, ErrNotAssigned
	}
	return val, nil
}

// Domain returns the rows still in v's domain, in ascending order.
func (v *Variable) Domain() []int {
	return v.dom.values()
}

// DomainSize returns the number of rows still in v's domain.
func (v *Variable) DomainSize() int {
	return v.dom.count()
}

// Assign collapses the domain to exactly [value]. It fails with
// ErrNotInDomain if value is not currently a candidate.
func (v *Variable) Assign(value int) error {
	if !v.dom.has(value) {
		return ErrNotInDomain
	}
	v.dom = newSingletonDomain(v.dom.n, value)
	return nil
}

// Remove removes value from the domain if present. It reports whether
// a change occurred, and fails with a contradiction if removal would
// leave the domain empty.
func (v *Variable) Remove(value int) (bool, error) {
	if !v.dom.has(value) {
		return false, nil
	}
	if v.dom.count() == 1 {
		return false, newContradiction("Variable.Remove", v.Name+": domain wipeout")
	}
	v.dom.clear(value)
	return true, nil
}

// Intersect replaces the domain with its intersection with values. It
// reports whether a change occurred, and fails with a contradiction if
// the result is empty.
func (v *Variable) Intersect(values domain) (bool, error) {
	next := v.dom.intersect(values)
	if next.equal(v.dom) {
		return false, nil
	}
	if next.isEmpty() {
		return false, newContradiction("Variable.Intersect", v.Name+": domain wipeout")
	}
	v.dom = next
	return true, nil
}

func (v *Variable) clone() *Variable {
	return &Variable{Name: v.Name, dom: v.dom.clone()}
}
