package prim_kruskal

import (
	"fmt"
)

// Connection is a candidate link between two cities numbered from 1, with the
// cost of building it.
type Connection struct {
	A, B int
	Cost int64
}

// MinimumCost returns the cheapest total cost that connects all cities 1..n,
// or ErrDisconnected if the connections cannot span every city.
// opts selects the algorithm (Kruskal by default); a Prim root is a 0-based
// vertex, i.e. city Root+1.
//
// Error Conditions:
//   - ErrInvalidGraph : n < 0, a city outside [1, n], or an unknown method.
//   - ErrDisconnected : n == 0 or not every city is reachable.
func MinimumCost(n int, conns []Connection, opts ...Option) (int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges := make([]Edge, len(conns))
	for i, c := range conns {
		if c.A < 1 || c.A > n || c.B < 1 || c.B > n {
			return 0, fmt.Errorf("%w: connection %d (%d-%d) outside [1, %d]", ErrInvalidGraph, i, c.A, c.B, n)
		}
		edges[i] = Edge{From: c.A - 1, To: c.B - 1, Weight: c.Cost}
	}

	_, total, err := Compute(n, edges, o)
	if err != nil {
		return 0, err
	}

	return total, nil
}
