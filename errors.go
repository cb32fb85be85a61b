package primesieve

import (
	"errors"

	"github.com/hupe1980/primesieve/sieve"
)

var (
	// ErrMissingTable is returned when a required primality table is nil.
	ErrMissingTable = sieve.ErrMissingTable

	// ErrUnknownStrategy is returned for a strategy value or name this
	// package does not recognize.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// ErrInvalidBound indicates a non-positive sieve bound. It aliases the
// sieve package type so callers can match it with errors.As at either
// level.
type ErrInvalidBound = sieve.ErrInvalidBound
