package malware

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/unionfind/dsu"
)

// MinimizeSpread returns the initial node whose quarantine saves the most
// nodes. If no initial node is alone in its component every saving is zero and
// the smallest initial node is returned.
//
// Error Conditions: see Impact.
func MinimizeSpread(graph [][]int, initial []int) (int, error) {
	scores, err := Impact(graph, initial, Quarantine)
	if err != nil {
		return 0, err
	}

	return best(scores), nil
}

// MinimizeSpreadRemoval returns the initial node whose complete removal from
// the network saves the most nodes, ties broken by the smallest index.
func MinimizeSpreadRemoval(graph [][]int, initial []int) (int, error) {
	scores, err := Impact(graph, initial, Removal)
	if err != nil {
		return 0, err
	}

	return best(scores), nil
}

// Impact computes the saving of every initial node under mode.
// The result is ordered by ascending Node.
//
// Error Conditions:
//   - ErrEmptyGraph       : len(graph) == 0.
//   - ErrNotSquare        : some row length != len(graph).
//   - ErrNoInitial        : len(initial) == 0.
//   - ErrNodeOutOfRange   : an initial node outside [0, n).
//   - ErrDuplicateInitial : an initial node listed twice.
//   - ErrInvalidMode      : mode is neither Quarantine nor Removal.
func Impact(graph [][]int, initial []int, mode Mode) ([]Score, error) {
	infected, err := validate(graph, initial)
	if err != nil {
		return nil, err
	}

	nodes := append([]int(nil), initial...)
	sort.Ints(nodes)

	switch mode {
	case Quarantine:
		return quarantineScores(graph, nodes)
	case Removal:
		return removalScores(graph, nodes, infected)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
}

// quarantineScores unions every link, then credits a node with its component
// size when it is the only initial node in that component.
func quarantineScores(graph [][]int, nodes []int) ([]Score, error) {
	n := len(graph)
	forest, err := dsu.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if linked(graph, i, j) {
				if _, err := forest.Union(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	// Number of initial nodes per component root.
	perRoot := make(map[int]int, len(nodes))
	for _, v := range nodes {
		r, err := forest.Find(v)
		if err != nil {
			return nil, err
		}
		perRoot[r]++
	}

	scores := make([]Score, len(nodes))
	for i, v := range nodes {
		scores[i].Node = v
		r, _ := forest.Find(v)
		if perRoot[r] != 1 {
			continue
		}
		size, err := forest.Size(r)
		if err != nil {
			return nil, err
		}
		scores[i].Saved = size
	}

	return scores, nil
}

// removalScores groups clean nodes only, then credits each initial node with
// every clean component it alone touches.
func removalScores(graph [][]int, nodes []int, infected []bool) ([]Score, error) {
	n := len(graph)
	forest, err := dsu.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if infected[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if infected[j] || !linked(graph, i, j) {
				continue
			}
			if _, err := forest.Union(i, j); err != nil {
				return nil, err
			}
		}
	}

	// touched[k] is the set of clean roots adjacent to nodes[k];
	// touchers[r] counts how many initial nodes touch root r.
	touched := make([]map[int]struct{}, len(nodes))
	touchers := make(map[int]int)
	for k, v := range nodes {
		roots := make(map[int]struct{})
		for u := 0; u < n; u++ {
			if infected[u] || !linked(graph, v, u) {
				continue
			}
			r, err := forest.Find(u)
			if err != nil {
				return nil, err
			}
			roots[r] = struct{}{}
		}
		for r := range roots {
			touchers[r]++
		}
		touched[k] = roots
	}

	scores := make([]Score, len(nodes))
	for k, v := range nodes {
		scores[k].Node = v
		for r := range touched[k] {
			if touchers[r] != 1 {
				continue
			}
			size, err := forest.Size(r)
			if err != nil {
				return nil, err
			}
			scores[k].Saved += size
		}
	}

	return scores, nil
}

// best returns the node with the largest saving; scores are sorted by Node,
// so keeping the first maximum yields the smallest index on ties.
func best(scores []Score) int {
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Saved > top.Saved {
			top = s
		}
	}

	return top.Node
}

// linked reports a link between i and j in either triangle of the matrix.
func linked(graph [][]int, i, j int) bool {
	return graph[i][j] != 0 || graph[j][i] != 0
}

// validate checks the matrix and initial list, returning the infected mask.
func validate(graph [][]int, initial []int) ([]bool, error) {
	n := len(graph)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	for i, row := range graph {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
	}
	if len(initial) == 0 {
		return nil, ErrNoInitial
	}

	infected := make([]bool, n)
	for _, v := range initial {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, v, n)
		}
		if infected[v] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateInitial, v)
		}
		infected[v] = true
	}

	return infected, nil
}
