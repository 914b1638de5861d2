package malware

import (
	"errors"
)

// Sentinel errors for malware-spread queries.
var (
	// ErrEmptyGraph indicates a graph with no nodes.
	ErrEmptyGraph = errors.New("malware: graph has no nodes")

	// ErrNotSquare indicates a row whose length differs from the node count.
	ErrNotSquare = errors.New("malware: adjacency matrix is not square")

	// ErrNoInitial indicates an empty initial infection list.
	ErrNoInitial = errors.New("malware: no initially infected nodes")

	// ErrNodeOutOfRange indicates an initial node outside [0, n).
	ErrNodeOutOfRange = errors.New("malware: initial node out of range")

	// ErrDuplicateInitial indicates an initial node listed more than once.
	ErrDuplicateInitial = errors.New("malware: duplicate initial node")

	// ErrInvalidMode indicates an unknown Mode.
	ErrInvalidMode = errors.New("malware: unknown mode")
)

// Mode selects what removing an initially infected node means.
type Mode int

const (
	// Quarantine keeps the node in the network; it is only cured.
	Quarantine Mode = iota

	// Removal deletes the node together with all of its links.
	Removal
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Quarantine:
		return "quarantine"
	case Removal:
		return "removal"
	default:
		return "unknown"
	}
}

// Score is the number of nodes that stay clean when Node is removed.
type Score struct {
	Node  int
	Saved int
}
