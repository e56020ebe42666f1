package darray

import "errors"

// Sentinel errors reported by array operations. All failures are reported
// synchronously at the call site; a failed operation performs no partial
// mutation.
var (
	// ErrOutOfRange indicates an index or range argument that violates the
	// bounds documented for the operation.
	ErrOutOfRange = errors.New("darray: index out of range")

	// ErrInvalidArgument indicates a nil array, an array that has been
	// destroyed, or a malformed callback argument.
	ErrInvalidArgument = errors.New("darray: invalid argument")

	// ErrAllocationFailure indicates that a requested buffer growth cannot
	// be satisfied.
	ErrAllocationFailure = errors.New("darray: allocation failure")
)
