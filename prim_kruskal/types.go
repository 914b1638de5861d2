// Package prim_kruskal defines edge types, configuration options and sentinel
// errors for MST computation over dense vertex ids.
package prim_kruskal

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph indicates a malformed input: negative vertex count,
// an endpoint outside [0, n), or an unknown method.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrRootOutOfRange indicates that Prim was asked to start outside [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that no spanning tree covers all vertices.
// It also applies to the empty graph (n == 0).
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted edge between vertices From and To,
// both in [0, n).
type Edge struct {
	From, To int
	Weight   int64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(n, edges).
//	– MethodPrim:    Prim(n, edges, opts.Root).
//	– otherwise:     ErrInvalidGraph.
func Compute(n int, edges []Edge, opts MSTOptions) ([]Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: unknown method %q", ErrInvalidGraph, opts.Method)
	}
}

// validate checks the vertex count and every endpoint.
func validate(n int, edges []Edge) error {
	if n < 0 {
		return fmt.Errorf("%w: negative vertex count %d", ErrInvalidGraph, n)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d-%d) outside [0, %d)", ErrInvalidGraph, i, e.From, e.To, n)
		}
	}

	return nil
}
