package darray

import "github.com/eapache/queue"

// Search scans from index 0 and returns the index of the first item for
// which cmp(item, target) == 0, plus whether a match was found. cmp follows
// the usual three-way convention (negative, zero, positive), though only the
// equality case matters here. O(Len()).
func (d *DArray[T]) Search(target T, cmp func(T, T) int) (int, bool) {
	if d == nil || d.items == nil || cmp == nil {
		return 0, false
	}
	for i, item := range d.items {
		if cmp(item, target) == 0 {
			return i, true
		}
	}
	return 0, false
}

// span is a pending partition range, both bounds inclusive.
type span struct {
	lo, hi int
}

// Sort reorders the array in place under cmp's three-way contract. The sort
// is an unstable quicksort: equal items may be reordered. cmp must be a
// consistent total order.
//
// Recursion is replaced by an explicit work-list of index ranges, so
// adversarial inputs cost time (the algorithm's usual worst case) but never
// grow the goroutine stack. Partitions are independent, so the work-list's
// FIFO order is as correct as a stack's.
func (d *DArray[T]) Sort(cmp func(T, T) int) error {
	if err := d.check(); err != nil {
		return err
	}
	if cmp == nil {
		return ErrInvalidArgument
	}
	if len(d.items) < 2 {
		return nil
	}
	work := queue.New()
	work.Add(span{0, len(d.items) - 1})
	for work.Length() > 0 {
		s := work.Remove().(span)
		if s.lo >= s.hi {
			continue
		}
		p := d.partition(s.lo, s.hi, cmp)
		work.Add(span{s.lo, p - 1})
		work.Add(span{p + 1, s.hi})
	}
	return nil
}

// partition applies a Lomuto partition to items[lo..hi], pivoting on the
// middle item to avoid the sorted-input degenerate case, and returns the
// pivot's final index.
func (d *DArray[T]) partition(lo, hi int, cmp func(T, T) int) int {
	mid := lo + (hi-lo)/2
	d.items[mid], d.items[hi] = d.items[hi], d.items[mid]
	pivot := d.items[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(d.items[j], pivot) < 0 {
			d.items[i], d.items[j] = d.items[j], d.items[i]
			i++
		}
	}
	d.items[i], d.items[hi] = d.items[hi], d.items[i]
	return i
}

// Unique removes items equal to their immediate predecessor, releasing each
// removed item via the release callback (if set). Only adjacent pairs are
// compared, as in the uniq utility; Sort first for a global deduplication.
// Running Unique twice is a no-op the second time.
func (d *DArray[T]) Unique(cmp func(T, T) int) error {
	if err := d.check(); err != nil {
		return err
	}
	if cmp == nil {
		return ErrInvalidArgument
	}
	if len(d.items) < 2 {
		return nil
	}
	w := 1
	for r := 1; r < len(d.items); r++ {
		if cmp(d.items[w-1], d.items[r]) == 0 {
			if d.itemFree != nil {
				d.itemFree(d.items[r])
			}
			continue
		}
		d.items[w] = d.items[r]
		w++
	}
	clear(d.items[w:])
	d.items = d.items[:w]
	return nil
}

// Reverse reverses the item order in place with paired swaps from both ends.
// No allocation; reversing twice restores the original order.
func (d *DArray[T]) Reverse() error {
	if err := d.check(); err != nil {
		return err
	}
	for i, j := 0, len(d.items)-1; i < j; i, j = i+1, j-1 {
		d.items[i], d.items[j] = d.items[j], d.items[i]
	}
	return nil
}
