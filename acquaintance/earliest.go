package acquaintance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/unionfind/dsu"
)

// EarliestAcq returns the earliest timestamp at which all n people are
// acquainted.
//
// Steps:
//  1. Validate n and every log entry.
//  2. Sort a copy of logs by (Timestamp, A, B).
//  3. Union A and B for each log; once Size(A) == n return its Timestamp.
//  4. Logs exhausted → ErrNeverAcquainted.
//
// With n == 1 the first log (necessarily 0 meeting 0) completes the group.
//
// Complexity: O(L log L + L·α(n)) time, O(L + n) memory.
func EarliestAcq(logs []Log, n int) (int64, error) {
	ordered, forest, err := prepare(logs, n)
	if err != nil {
		return 0, err
	}

	for _, l := range ordered {
		if _, err := forest.Union(l.A, l.B); err != nil {
			return 0, err
		}
		size, err := forest.Size(l.A)
		if err != nil {
			return 0, err
		}
		if size == n {
			return l.Timestamp, nil
		}
	}

	return 0, ErrNeverAcquainted
}

// Timeline replays the logs in order and reports every meeting that merged
// two groups. The last Moment has Groups == 1 iff everyone became acquainted.
//
// Complexity: O(L log L + L·α(n)) time, O(L + n) memory.
func Timeline(logs []Log, n int) ([]Moment, error) {
	ordered, forest, err := prepare(logs, n)
	if err != nil {
		return nil, err
	}

	var (
		moments []Moment
		largest = 1
	)
	for _, l := range ordered {
		merged, err := forest.Union(l.A, l.B)
		if err != nil {
			return nil, err
		}
		if !merged {
			continue
		}
		size, err := forest.Size(l.A)
		if err != nil {
			return nil, err
		}
		if size > largest {
			largest = size
		}
		moments = append(moments, Moment{Log: l, Groups: forest.Count(), Largest: largest})
		if forest.Count() == 1 {
			break
		}
	}

	return moments, nil
}

// prepare validates input, returns a sorted copy of logs and a fresh forest.
func prepare(logs []Log, n int) ([]Log, *dsu.Forest, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidGroup, n)
	}
	for i, l := range logs {
		if l.A < 0 || l.A >= n || l.B < 0 || l.B >= n {
			return nil, nil, fmt.Errorf("%w: log %d (%d,%d) with n=%d", ErrInvalidLog, i, l.A, l.B, n)
		}
	}

	ordered := append([]Log(nil), logs...)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		if a.A != b.A {
			return a.A < b.A
		}

		return a.B < b.B
	})

	forest, err := dsu.New(n, dsu.WithNonEmpty())
	if err != nil {
		return nil, nil, err
	}

	return ordered, forest, nil
}
