package dsu

// Components returns the current partition of the universe.
// Each component lists its members in ascending order, and components are
// ordered by their smallest member, so the result is independent of which
// element happens to be the root.
//
// Time:   O(n·α(n)).
// Memory: O(n) for the root→slot index and output.
func (f *Forest) Components() [][]int {
	n := len(f.parent)
	slot := make(map[int]int, f.count) // root → index in comps
	comps := make([][]int, 0, f.count)

	for i := 0; i < n; i++ {
		r := f.find(i)
		k, ok := slot[r]
		if !ok {
			k = len(comps)
			slot[r] = k
			comps = append(comps, make([]int, 0, f.size[r]))
		}
		comps[k] = append(comps[k], i)
	}

	return comps
}

// Roots returns every current representative in ascending order.
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			roots = append(roots, i)
		}
	}

	return roots
}
