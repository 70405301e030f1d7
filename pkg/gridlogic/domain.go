package gridlogic

import "math/bits"

// domain is a bitset over row indices 0..n-1. Bit i set means row i is
// still a candidate value. Representing domains as bitsets makes
// intersection, removal, and size queries constant-time in the number
// of machine words, which matters inside the solver's fixpoint loop
// since every propagator re-scans every constraint on every pass.
type domain struct {
	n     int
	words []uint64
}

func wordsFor(n int) int {
	return (n + 63) / 64
}

// newFullDomain returns a domain containing every row 0..n-1.
func newFullDomain(n int) domain {
	d := domain{n: n, words: make([]uint64, wordsFor(n))}
	for i := 0; i < n; i++ {
		d.set(i)
	}
	return d
}

// newEmptyDomain returns a domain containing no rows.
func newEmptyDomain(n int) domain {
	return domain{n: n, words: make([]uint64, wordsFor(n))}
}

// newSingletonDomain returns a domain containing exactly v.
func newSingletonDomain(n, v int) domain {
	d := newEmptyDomain(n)
	d.set(v)
	return d
}

func (d *domain) set(v int) {
	d.words[v/64] |= 1 << uint(v%64)
}

func (d *domain) clear(v int) {
	d.words[v/64] &^= 1 << uint(v%64)
}

func (d domain) has(v int) bool {
	if v < 0 || v >= d.n {
		return false
	}
	return d.words[v/64]&(1<<uint(v%64)) != 0
}

func (d domain) count() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

func (d domain) isEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// isSingleton reports whether exactly one bit is set, and returns it.
func (d domain) isSingleton() (int, bool) {
	found := -1
	for wi, w := range d.words {
		if w == 0 {
			continue
		}
		if w&(w-1) != 0 {
			return -1, false // more than one bit in this word
		}
		if found != -1 {
			return -1, false // bits set in more than one word
		}
		found = wi*64 + bits.TrailingZeros64(w)
	}
	if found == -1 {
		return -1, false
	}
	return found, true
}

// values returns the set bits in ascending order.
func (d domain) values() []int {
	out := make([]int, 0, d.count())
	for wi, w := range d.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &^= 1 << uint(tz)
		}
	}
	return out
}

func (d domain) clone() domain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return domain{n: d.n, words: words}
}

// intersect returns a new domain containing only rows present in both
// d and other.
func (d domain) intersect(other domain) domain {
	out := domain{n: d.n, words: make([]uint64, len(d.words))}
	for i := range out.words {
		out.words[i] = d.words[i] & other.words[i]
	}
	return out
}

func (d domain) equal(other domain) bool {
	if d.n != other.n {
		return false
	}
	for i := range d.words {
		if d.words[i] != other.words[i] {
			return false
		}
	}
	return true
}
