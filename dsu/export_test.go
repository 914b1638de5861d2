package dsu

// ParentOf exposes the raw parent pointer of x for white-box tests of path
// compression. It performs no bounds check and no compression.
func (f *Forest) ParentOf(x int) int { return f.parent[x] }
