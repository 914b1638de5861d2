// Package dsu provides the array-backed disjoint-set forest.
package dsu

import (
	"fmt"
)

// Forest is a disjoint-set forest over the elements 0..n-1.
//
// parent[i] is the parent pointer of i (i is a root iff parent[i] == i).
// size[r] is the cardinality of the set rooted at r; entries at non-roots are
// stale and are only ever read after resolving through find.
type Forest struct {
	parent []int
	size   []int
	count  int
	tie    TieBreak
}

// New builds a forest of n singleton sets.
//
// Error Conditions:
//   - ErrInvalidArgument : n < 0, or n == 0 with WithNonEmpty, or unknown TieBreak.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: negative universe size %d", ErrInvalidArgument, n)
	}
	if n == 0 && o.NonEmpty {
		return nil, fmt.Errorf("%w: empty universe not allowed", ErrInvalidArgument)
	}
	if o.TieBreak != AttachSecondUnderFirst && o.TieBreak != AttachFirstUnderSecond {
		return nil, fmt.Errorf("%w: tie-break %d", ErrInvalidArgument, int(o.TieBreak))
	}

	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
		tie:    o.TieBreak,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the size of the universe n.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (f *Forest) Count() int { return f.count }

// Find returns the root of the set containing x.
//
// Every node visited on the way up is re-pointed directly at the root, so a
// repeated Find(x) resolves in one step. Set membership never changes.
//
// Error Conditions:
//   - ErrIndexOutOfRange : x outside [0, n).
//
// Complexity: amortized O(α(n)).
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.find(x), nil
}

// Union merges the sets containing x and y and reports whether a merge happened.
//
// Steps:
//  1. Resolve rx = find(x), ry = find(y); equal roots → no-op, false.
//  2. Attach the smaller root under the larger; on equal sizes follow the
//     forest's TieBreak.
//  3. Surviving root size += absorbed root size; Count() decreases by one.
//
// Error Conditions:
//   - ErrIndexOutOfRange : x or y outside [0, n).
//
// Complexity: amortized O(α(n)).
func (f *Forest) Union(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	rx, ry := f.find(x), f.find(y)
	if rx == ry {
		return false, nil
	}

	// After this block rx is the survivor and ry is absorbed.
	switch {
	case f.size[rx] < f.size[ry]:
		rx, ry = ry, rx
	case f.size[rx] == f.size[ry] && f.tie == AttachFirstUnderSecond:
		rx, ry = ry, rx
	}
	f.parent[ry] = rx
	f.size[rx] += f.size[ry]
	f.count--

	return true, nil
}

// Size returns the number of elements in the set containing x.
//
// Error Conditions:
//   - ErrIndexOutOfRange : x outside [0, n).
func (f *Forest) Size(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.size[f.find(x)], nil
}

// Connected reports whether x and y are in the same set.
func (f *Forest) Connected(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	return f.find(x) == f.find(y), nil
}

// find is the unchecked two-pass lookup: walk to the root, then rewrite
// each visited parent pointer to that root.
func (f *Forest) find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, x, len(f.parent))
	}

	return nil
}
