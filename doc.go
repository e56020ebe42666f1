// Package darray implements a generic, growable dynamic array for Go.
//
// # Overview
//
// A DArray is a contiguous, heap-backed sequence of items whose type the
// container never inspects. All type-specific behavior (releasing,
// comparing, folding, cloning) is supplied by caller-provided functions.
// This is particularly useful for:
//
//   - Collections of heap-allocated objects with a single release point
//   - Nested containers (arrays of arrays) released in one Destroy call
//   - Comparator-driven sorting, searching, and deduplication
//   - Folds over a sequence without building intermediate slices
//
// # Basic Usage
//
//	arr := darray.New[*Record](releaseRecord)
//	defer arr.Destroy() // releases every remaining item
//
//	// Append and insert items
//	arr.Append(r1)
//	arr.Insert(0, r2)
//
//	// Sort, search, deduplicate
//	arr.Sort(byKey)
//	arr.Unique(byKey)
//	i, ok := arr.Search(needle, byKey)
//
//	// Fold the items into an accumulator
//	var total int
//	darray.Aggregate(arr, &total, func(r *Record, acc *int) { *acc += r.N })
//
// # Ownership
//
// Append and Insert store the item handle itself; nothing is copied. The
// release callback bound at construction (or via SetItemFree) receives each
// item exactly once, at the removal points: Pop, PopRange, Clear, Unique,
// and Destroy. Extend and ExtendAt move items between arrays without
// invoking any callback. Clone is the only operation with deep-copy
// semantics; it delegates the per-item copy to the caller's clone function.
//
// # Thread Safety
//
// DArray performs no internal synchronization. Callers sharing an array
// across goroutines must provide external mutual exclusion.
//
// # Growth
//
// The buffer doubles when full and never shrinks automatically, giving
// amortized O(1) Append. EnsureCapacity pre-sizes the buffer, and the
// Metrics snapshot reports length, capacity, utilization, and the number of
// reallocations.
//
// # Errors
//
// Operations report ErrOutOfRange, ErrInvalidArgument, or
// ErrAllocationFailure as ordinary return values. A failed operation leaves
// the array exactly as it was.
package darray
