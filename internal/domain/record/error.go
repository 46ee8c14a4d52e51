package record

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidData = errors.New("invalid record data")

	// ErrTransaction marks a single put/delete/get that rejected. It is
	// surfaced to the caller as-is and never retried.
	ErrTransaction = errors.New("record transaction failed")
)
