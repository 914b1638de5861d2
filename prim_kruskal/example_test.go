package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/unionfind/prim_kruskal"
)

var names = []string{"A", "B", "C", "D", "E", "F", "G"}

func printMST(edges []prim_kruskal.Edge, total int64) {
	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", names[e.From], names[e.To])
	}
	fmt.Println()
}

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle.
// The MST is {A–B, B–C} with total weight = 3.
func ExampleKruskal() {
	edges := []prim_kruskal.Edge{
		{From: A, To: B, Weight: 1},
		{From: B, To: C, Weight: 2},
		{From: A, To: C, Weight: 4},
	}

	mst, total, err := prim_kruskal.Kruskal(3, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printMST(mst, total)
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim's algorithm on a 5-vertex pentagon.
// Edges: A–B (1), B–C (2), C–D (3), D–E (5), A–E (12).
// The MST is {A–B, B–C, C–D, D–E} with total weight = 11.
func ExamplePrim() {
	edges := []prim_kruskal.Edge{
		{From: A, To: B, Weight: 1},
		{From: A, To: E, Weight: 12},
		{From: B, To: C, Weight: 2},
		{From: C, To: D, Weight: 3},
		{From: D, To: E, Weight: 5},
	}

	mst, total, err := prim_kruskal.Prim(5, edges, A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printMST(mst, total)
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleMinimumCost connects three cities numbered from 1.
func ExampleMinimumCost() {
	conns := []prim_kruskal.Connection{
		{A: 1, B: 2, Cost: 5},
		{A: 1, B: 3, Cost: 6},
		{A: 2, B: 3, Cost: 1},
	}
	cost, err := prim_kruskal.MinimumCost(3, conns)
	fmt.Println(cost, err)

	_, err = prim_kruskal.MinimumCost(4, []prim_kruskal.Connection{{A: 1, B: 2, Cost: 3}, {A: 3, B: 4, Cost: 4}})
	fmt.Println(err)
	// Output:
	// 6 <nil>
	// prim_kruskal: graph is disconnected
}
