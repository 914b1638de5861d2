// Package dsu defines sentinel errors and construction options for Forest.
package dsu

import (
	"errors"
)

// Sentinel errors for Forest construction and queries.
var (
	// ErrInvalidArgument indicates an unsupported universe size or option value.
	ErrInvalidArgument = errors.New("dsu: invalid argument")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("dsu: index out of range")
)

// TieBreak selects which root survives when Union joins two sets of equal size.
type TieBreak int

const (
	// AttachSecondUnderFirst hangs the root of y under the root of x on ties,
	// so Union(x, y) keeps x's representative.
	AttachSecondUnderFirst TieBreak = iota

	// AttachFirstUnderSecond hangs the root of x under the root of y on ties.
	AttachFirstUnderSecond
)

// String returns a human-readable name for the tie-break rule.
func (t TieBreak) String() string {
	switch t {
	case AttachSecondUnderFirst:
		return "second-under-first"
	case AttachFirstUnderSecond:
		return "first-under-second"
	default:
		return "unknown"
	}
}

// Options configures a Forest at construction time.
//
// Fields:
//
//	TieBreak - root selection rule for equal-size unions.
//	NonEmpty - reject n == 0 with ErrInvalidArgument.
type Options struct {
	TieBreak TieBreak
	NonEmpty bool
}

// Option mutates Options. Pass any number of them to New.
type Option func(*Options)

// DefaultOptions returns the zero-surprise setup:
//
//	– TieBreak = AttachSecondUnderFirst
//	– NonEmpty = false (an empty forest is valid).
func DefaultOptions() Options {
	return Options{
		TieBreak: AttachSecondUnderFirst,
		NonEmpty: false,
	}
}

// WithTieBreak sets the equal-size union rule.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithNonEmpty makes New reject an empty universe.
func WithNonEmpty() Option {
	return func(o *Options) {
		o.NonEmpty = true
	}
}
