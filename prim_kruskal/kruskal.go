// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm
// on top of the dsu disjoint-set forest.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/unionfind/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// with n vertices 0..n-1 and the given edge list.
//
// Error Conditions:
//   - ErrInvalidGraph : n < 0 or an endpoint outside [0, n).
//   - ErrDisconnected : n == 0, or the edges do not span all n vertices.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. n == 0 → ErrDisconnected; n == 1 → trivial MST (empty, weight=0).
//  3. Copy edges, skipping self-loops (From == To).
//  4. Stable sort by ascending Weight so equal weights keep input order.
//  5. Union endpoints through a dsu.Forest; keep an edge only when it merged two sets.
//  6. Stop once Count() == 1. Afterwards Count() > 1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	// 1. Validate input.
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}

	// 2. Degenerate sizes.
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 3. Filter self-loops into a private copy; the caller's slice is not reordered.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		sorted = append(sorted, e)
	}

	// 4. Stable sort keeps ties deterministic.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 5. Greedy merge.
	forest, err := dsu.New(n)
	if err != nil {
		return nil, 0, err
	}
	var (
		mst         = make([]Edge, 0, n-1)
		totalWeight int64
	)
	for _, e := range sorted {
		merged, err := forest.Union(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if !merged {
			// Both endpoints already share a root: the edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 6. A single set means the tree spans every vertex.
		if forest.Count() == 1 {
			break
		}
	}

	if forest.Count() != 1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
