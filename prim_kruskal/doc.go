// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted graph given as a vertex count n and an edge list over ids 0..n-1:
// Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Typical use: connect n cities at the lowest total cost (MinimumCost), where
//     the answer only exists if the candidate connections span every city.
//
// Algorithms Provided
//
//   - Kruskal(n, edges) ([]Edge, int64, error)
//
//   - Strategy: Sort all edges by weight, then iterate from smallest to largest, merging
//     components with a dsu.Forest and skipping edges whose endpoints already share a root.
//     Stop once the forest holds a single set.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Determinism: a stable sort keeps equal-weight edges in input order.
//
//   - Prim(n, edges, root) ([]Edge, int64, error)
//
//   - Strategy: Grow a single tree from root with a min-heap of candidate edges.
//
//   - Complexity: O(E log V) time, O(V + E) memory.
//
// Error Conditions
//
//	- ErrInvalidGraph
//	    - n < 0, OR
//	    - an edge endpoint outside [0, n), OR
//	    - unknown Method in Compute.
//
//	- ErrRootOutOfRange (Prim only)
//	    - root outside [0, n).
//
//	- ErrDisconnected
//	    - n == 0 (empty graph), OR
//	    - n > 1 but the edges do not span every vertex.
//
// Self-loops are ignored by both algorithms; parallel edges are allowed and the
// lighter one wins.
package prim_kruskal
