package acquaintance_test

import (
	"fmt"

	"github.com/katalvlaran/unionfind/acquaintance"
)

func ExampleEarliestAcq() {
	logs := []acquaintance.Log{
		{Timestamp: 20190101, A: 0, B: 1},
		{Timestamp: 20190104, A: 3, B: 4},
		{Timestamp: 20190107, A: 2, B: 3},
		{Timestamp: 20190211, A: 1, B: 5},
		{Timestamp: 20190224, A: 2, B: 4},
		{Timestamp: 20190301, A: 0, B: 3},
		{Timestamp: 20190312, A: 1, B: 2},
		{Timestamp: 20190322, A: 4, B: 5},
	}
	ts, err := acquaintance.EarliestAcq(logs, 6)
	fmt.Println(ts, err)
	// Output: 20190301 <nil>
}

func ExampleTimeline() {
	logs := []acquaintance.Log{
		{Timestamp: 7, A: 3, B: 1},
		{Timestamp: 0, A: 2, B: 0},
		{Timestamp: 1, A: 0, B: 1},
		{Timestamp: 3, A: 0, B: 3},
	}
	moments, _ := acquaintance.Timeline(logs, 4)
	for _, m := range moments {
		fmt.Printf("t=%d groups=%d largest=%d\n", m.Timestamp, m.Groups, m.Largest)
	}
	// Output:
	// t=0 groups=3 largest=2
	// t=1 groups=2 largest=3
	// t=3 groups=1 largest=4
}
