package sieve

import "sync"

// Table tracks candidate primality by index: entry i is true while i is
// still considered a prime candidate, false once i is known composite
// (indexes 0 and 1 are cleared by the base sieves). A Table is created per
// sieve invocation and owned by it.
//
// The table owns its synchronization primitive: concurrent workers mark
// composites through MarkComposite, which serializes each flag write with
// the table's own mutex. Unrelated concurrent sieve invocations therefore
// never contend with each other.
type Table struct {
	mu    sync.Mutex
	flags []bool
	bound int
}

// NewTable allocates a table covering candidates 0..bound, with every
// entry flagged as a prime candidate.
func NewTable(bound int) (*Table, error) {
	if bound <= 0 {
		return nil, &ErrInvalidBound{Bound: bound}
	}

	t := &Table{
		flags: make([]bool, bound+1),
		bound: bound,
	}
	if err := t.Fill(); err != nil {
		return nil, err
	}

	return t, nil
}

// Fill flags every entry as a prime candidate. The base sieves expect a
// freshly filled table; Fill is exported so a table can be reset and
// reused across runs.
func (t *Table) Fill() error {
	if t == nil {
		return ErrMissingTable
	}
	for i := range t.flags {
		t.flags[i] = true
	}
	return nil
}

// Bound returns the inclusive upper limit the table covers.
func (t *Table) Bound() int { return t.bound }

// IsCandidate reports whether i is still flagged as a prime candidate.
// Indexes outside 0..Bound() are never candidates.
func (t *Table) IsCandidate(i int) bool {
	if i < 0 || i > t.bound {
		return false
	}
	return t.flags[i]
}

// MarkComposite clears the candidate flag for i under the table lock.
// The transition is monotone: a cleared flag is never set again, so
// concurrent marking from any number of workers converges to the same
// final state.
func (t *Table) MarkComposite(i int) {
	t.mu.Lock()
	t.flags[i] = false
	t.mu.Unlock()
}

// ExtractRange appends every index in from..to (inclusive) still flagged
// as prime to dst, in ascending order, and returns the extended slice.
// An empty range (from > to) is valid and returns dst unchanged. The
// range is clamped to the table's index space.
//
// ExtractRange must not run concurrently with composite marking; the
// strategies only extract after all workers have been joined.
func (t *Table) ExtractRange(from, to int, dst []int) ([]int, error) {
	if t == nil {
		return nil, ErrMissingTable
	}
	if from < 0 {
		from = 0
	}
	if to > t.bound {
		to = t.bound
	}
	for i := from; i <= to; i++ {
		if t.flags[i] {
			dst = append(dst, i)
		}
	}
	return dst, nil
}
