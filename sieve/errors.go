package sieve

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTable is returned when a required primality table is nil.
	ErrMissingTable = errors.New("primality table is required")

	// ErrPoolClosed is returned when work is submitted to a closed pool.
	ErrPoolClosed = errors.New("worker pool is closed")
)

// ErrInvalidBound indicates a non-positive sieve bound.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidBound struct {
	Bound int
	cause error
}

func (e *ErrInvalidBound) Error() string {
	return fmt.Sprintf("invalid bound: %d", e.Bound)
}

func (e *ErrInvalidBound) Unwrap() error { return e.cause }
