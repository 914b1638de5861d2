package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/unionfind/dsu"
)

// ExampleForest_Union merges two pairs in a 4-element universe and inspects
// the resulting partition.
func ExampleForest_Union() {
	f, err := dsu.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, _ = f.Union(0, 1)
	_, _ = f.Union(2, 3)

	size, _ := f.Size(0)
	same, _ := f.Connected(0, 2)
	fmt.Printf("sets=%d size(0)=%d connected(0,2)=%v\n", f.Count(), size, same)
	fmt.Println(f.Components())
	// Output:
	// sets=2 size(0)=2 connected(0,2)=false
	// [[0 1] [2 3]]
}

// ExampleForest_Find shows that a fresh forest maps every element to itself
// and that the default tie-break keeps the first argument's root.
func ExampleForest_Find() {
	f, _ := dsu.New(3)
	r, _ := f.Find(2)
	fmt.Println("fresh root of 2:", r)

	_, _ = f.Union(2, 1)
	r, _ = f.Find(1)
	fmt.Println("root of 1 after Union(2,1):", r)
	// Output:
	// fresh root of 2: 2
	// root of 1 after Union(2,1): 2
}

func ExampleForest_Find_outOfRange() {
	f, _ := dsu.New(2)
	_, err := f.Find(5)
	fmt.Println(err)
	// Output: dsu: index out of range: 5 not in [0, 2)
}
