// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph   : n < 0 or an endpoint outside [0, n).
//   - ErrDisconnected   : n == 0, or the graph is not fully connected.
//   - ErrRootOutOfRange : root outside [0, n).
//
// Steps:
//  1. Validate input; n == 0 → ErrDisconnected; check root.
//  2. n == 1 → trivial empty MST.
//  3. Build adjacency lists (both directions, self-loops dropped).
//  4. Mark root visited and push its incident edges.
//  5. While pq not empty and MST has < n-1 edges:
//     a. Pop the smallest-weight edge (u→v).
//     b. If v is already visited, skip (this edge would form a cycle).
//     c. Otherwise add it, mark v, accumulate weight, push v's edges to unvisited vertices.
//  6. If MST size < n-1 → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(n int, edges []Edge, root int) ([]Edge, int64, error) {
	// 1. Validate input and root.
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrRootOutOfRange, root, n)
	}

	// 2. Single vertex: nothing to connect.
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 3. Adjacency lists oriented away from each endpoint.
	adj := make([][]Edge, n)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	// 4. Seed the heap from root.
	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	var totalWeight int64

	pq := &edgePQ{}
	heap.Init(pq)
	visited[root] = true
	for _, e := range adj[root] {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}

	// 5. Main loop: extract smallest edge and expand MST until we have n-1 edges.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(Edge)
		v := e.To
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, e)
		totalWeight += e.Weight

		for _, ne := range adj[v] {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 6. Fewer than n-1 edges means some vertex was never reached.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of Edge, ordered by Weight.
type edgePQ []Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

// Pop removes and returns the last element after heap adjustment. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
