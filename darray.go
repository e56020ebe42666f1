// Package darray implements a generic, growable, heap-backed dynamic array.
// Typical usage: create one array per collection of caller-owned items,
// register an item-release callback at construction, then Destroy() at the
// end of the collection's lifetime to release every remaining item at once.
package darray

// DArray is a growable sequence of items of type T. Not goroutine-safe;
// callers that share an array across goroutines must serialize access
// externally.
//
// The array stores items by value and never inspects them except to pass
// them to caller-supplied callbacks. An optional release callback, bound at
// construction via New and replaceable via SetItemFree, is invoked on every
// item the array removes (Pop, PopRange, Clear, Unique, Destroy).
type DArray[T any] struct {
	items    []T // live items; cap(items) is the allocated capacity
	itemFree func(T)
	grows    int // buffer reallocations since construction
}

// New creates an empty array with length and capacity zero.
// itemFree, if non-nil, is invoked on each item the array removes; pass nil
// when the caller releases items through some other discipline.
func New[T any](itemFree func(T)) *DArray[T] {
	return &DArray[T]{items: make([]T, 0), itemFree: itemFree}
}

// check reports ErrInvalidArgument for a nil or destroyed array.
// A destroyed array has a nil buffer; a live one never does.
func (d *DArray[T]) check() error {
	if d == nil || d.items == nil {
		return ErrInvalidArgument
	}
	return nil
}

// SetItemFree replaces the release callback. The new callback applies to all
// subsequent removals; items already removed are unaffected.
func (d *DArray[T]) SetItemFree(itemFree func(T)) error {
	if err := d.check(); err != nil {
		return err
	}
	d.itemFree = itemFree
	return nil
}

// Destroy releases every live item in order via the release callback (if
// set), then drops the buffer. Subsequent operations on the array report
// ErrInvalidArgument.
func (d *DArray[T]) Destroy() {
	if d == nil || d.items == nil {
		return
	}
	if d.itemFree != nil {
		for _, item := range d.items {
			d.itemFree(item)
		}
	}
	d.items = nil
}

// Len returns the number of live items. A nil or destroyed array has length 0.
func (d *DArray[T]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Cap returns the allocated capacity in items.
func (d *DArray[T]) Cap() int {
	if d == nil {
		return 0
	}
	return cap(d.items)
}

// IsEmpty reports whether the array holds no items.
func (d *DArray[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Get returns the item at index without removing it. Ownership stays with
// the array: the caller must not release the item unless also removing it.
func (d *DArray[T]) Get(index int) (T, error) {
	var zero T
	if err := d.check(); err != nil {
		return zero, err
	}
	if index < 0 || index >= len(d.items) {
		return zero, ErrOutOfRange
	}
	return d.items[index], nil
}

// Append stores item after the current last slot, growing the buffer if
// full. Amortized O(1): capacity doubles on growth and never shrinks.
// The item itself is stored, not a copy of what it references.
func (d *DArray[T]) Append(item T) error {
	if err := d.check(); err != nil {
		return err
	}
	if len(d.items) == cap(d.items) {
		d.grow(len(d.items) + 1)
	}
	d.items = d.items[:len(d.items)+1]
	d.items[len(d.items)-1] = item
	return nil
}

// Insert places item at index, shifting items at positions >= index one slot
// right. index may equal Len(), which appends. O(Len() - index).
func (d *DArray[T]) Insert(index int, item T) error {
	if err := d.check(); err != nil {
		return err
	}
	if index < 0 || index > len(d.items) {
		return ErrOutOfRange
	}
	if len(d.items) == cap(d.items) {
		d.grow(len(d.items) + 1)
	}
	d.items = d.items[:len(d.items)+1]
	copy(d.items[index+1:], d.items[index:])
	d.items[index] = item
	return nil
}

// Pop releases the item at index via the release callback (if set) and
// shifts subsequent items left to fill the gap.
func (d *DArray[T]) Pop(index int) error {
	if err := d.check(); err != nil {
		return err
	}
	if index < 0 || index >= len(d.items) {
		return ErrOutOfRange
	}
	return d.PopRange(index, index+1)
}

// PopRange removes the items in [start, end), releasing each via the release
// callback (if set) and shifting the tail left. A zero-length range is a
// no-op. On error no item is removed.
func (d *DArray[T]) PopRange(start, end int) error {
	if err := d.check(); err != nil {
		return err
	}
	if start < 0 || start > end || end > len(d.items) {
		return ErrOutOfRange
	}
	if start == end {
		return nil
	}
	if d.itemFree != nil {
		for i := start; i < end; i++ {
			d.itemFree(d.items[i])
		}
	}
	copy(d.items[start:], d.items[end:])
	newLen := len(d.items) - (end - start)
	clear(d.items[newLen:]) // drop stale values so they can be collected
	d.items = d.items[:newLen]
	return nil
}

// Clear removes every item, releasing each via the release callback (if
// set). Capacity is retained for reuse.
func (d *DArray[T]) Clear() error {
	if err := d.check(); err != nil {
		return err
	}
	return d.PopRange(0, len(d.items))
}

// EnsureCapacity grows the buffer so that at least n items fit without a
// further reallocation. Reports ErrAllocationFailure if n is negative.
func (d *DArray[T]) EnsureCapacity(n int) error {
	if err := d.check(); err != nil {
		return err
	}
	if n < 0 {
		return ErrAllocationFailure
	}
	if n <= cap(d.items) {
		return nil
	}
	d.grow(n)
	return nil
}

// grow reallocates the buffer to hold at least min items, doubling the
// current capacity when that is larger.
func (d *DArray[T]) grow(min int) {
	newCap := cap(d.items) * 2
	if newCap < min {
		newCap = min
	}
	buf := make([]T, len(d.items), newCap)
	copy(buf, d.items)
	d.items = buf
	d.grows++
}
