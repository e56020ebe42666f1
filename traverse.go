package darray

// ForEach invokes fn on every item from index 0 to Len()-1, in order, on the
// caller's goroutine. fn must not resize the array; indices would shift
// under the traversal.
func (d *DArray[T]) ForEach(fn func(T)) error {
	if err := d.check(); err != nil {
		return err
	}
	if fn == nil {
		return ErrInvalidArgument
	}
	for _, item := range d.items {
		fn(item)
	}
	return nil
}

// Aggregate folds the array into result by invoking fn(item, result) for
// every item in order, threading the same accumulator through each call.
// fn must mutate only the accumulator, never the item.
//
// Aggregate is a package-level function because the accumulator introduces a
// second type parameter, which Go methods cannot do.
func Aggregate[T, A any](d *DArray[T], result *A, fn func(T, *A)) error {
	if err := d.check(); err != nil {
		return err
	}
	if result == nil || fn == nil {
		return ErrInvalidArgument
	}
	for _, item := range d.items {
		fn(item, result)
	}
	return nil
}

// ToSlice returns a copy of the live items. The returned slice shares no
// storage with the array's buffer; mutating it does not affect the array.
func (d *DArray[T]) ToSlice() []T {
	if d == nil || d.items == nil {
		return nil
	}
	out := make([]T, len(d.items))
	copy(out, d.items)
	return out
}
