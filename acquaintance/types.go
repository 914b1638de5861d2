package acquaintance

import (
	"errors"
)

// Sentinel errors for acquaintance queries.
var (
	// ErrInvalidGroup is returned when the group size n is not positive.
	ErrInvalidGroup = errors.New("acquaintance: group size must be positive")

	// ErrInvalidLog is returned when a log names a person outside [0, n).
	ErrInvalidLog = errors.New("acquaintance: log entry out of range")

	// ErrNeverAcquainted is returned when the logs never connect everyone.
	ErrNeverAcquainted = errors.New("acquaintance: group never fully acquainted")
)

// Log records that persons A and B met at Timestamp.
type Log struct {
	Timestamp int64
	A, B      int
}

// Moment is one log entry that joined two previously separate groups.
type Moment struct {
	Log
	// Groups is the number of separate groups left after this meeting.
	Groups int
	// Largest is the size of the largest group after this meeting.
	Largest int
}
