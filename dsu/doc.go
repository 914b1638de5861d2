// Package dsu implements a disjoint-set forest (union–find) over a fixed
// universe of n dense integer elements 0..n-1.
//
// What & Why
//
//   - A Forest partitions {0..n-1} into disjoint sets. Every element belongs to
//     exactly one set; each set is identified by its root (representative).
//
//   - Kruskal's MST, "are all of them connected yet?" sweeps over time-ordered
//     events and component-size queries all reduce to repeated Find/Union on
//     the same structure, so it lives in one package and every caller shares it.
//
// Operations
//
//   - New(n, opts...)  - parent[i] = i, size[i] = 1, Count() == n.
//   - Find(x)          - root of x; rewrites every visited parent to the root.
//   - Union(x, y)      - union by size; reports whether two sets were merged.
//   - Size(x)          - cardinality of the set containing x.
//   - Count()          - number of distinct sets, O(1).
//   - Connected(x, y)  - Find(x) == Find(y).
//   - Components()     - the current partition, deterministic order.
//
// Tie-break
//
//	When both roots have equal size the default rule (AttachSecondUnderFirst)
//	hangs y's root under x's root, so x's root survives. WithTieBreak selects
//	the mirror rule. Either rule is fixed for the lifetime of a Forest, which
//	makes the reported roots reproducible for the same sequence of calls.
//
// Complexity
//
//   - Find/Union/Size: amortized O(α(n)) (inverse Ackermann).
//   - Count/Len: O(1).
//   - Components: O(n·α(n)) time, O(n) memory.
//
// Errors
//
//   - ErrInvalidArgument : negative n, n == 0 under WithNonEmpty, unknown tie-break.
//   - ErrIndexOutOfRange : element outside [0, n).
//
// Concurrency
//
//	A Forest is not safe for concurrent use. Find compresses paths, so even
//	"read-only" queries mutate the forest; callers that share one across
//	goroutines must guard every call with a single mutex.
package dsu
