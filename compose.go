package darray

// ExtendAt inserts every item of source, in order, starting at index,
// shifting the tail right. Items are moved: ownership transfers to the
// receiver without invoking any callback, and source is left with length 0
// (its capacity is retained). source must be a different array; extending an
// array with itself reports ErrInvalidArgument.
func (d *DArray[T]) ExtendAt(index int, source *DArray[T]) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := source.check(); err != nil {
		return err
	}
	if source == d {
		return ErrInvalidArgument
	}
	if index < 0 || index > len(d.items) {
		return ErrOutOfRange
	}
	n := len(source.items)
	if n == 0 {
		return nil
	}
	need := len(d.items) + n
	if need > cap(d.items) {
		d.grow(need)
	}
	d.items = d.items[:need]
	copy(d.items[index+n:], d.items[index:])
	copy(d.items[index:], source.items)
	clear(source.items)
	source.items = source.items[:0]
	return nil
}

// Extend moves every item of source to the end of the receiver.
// Equivalent to ExtendAt(Len(), source).
func (d *DArray[T]) Extend(source *DArray[T]) error {
	if err := d.check(); err != nil {
		return err
	}
	return d.ExtendAt(len(d.items), source)
}

// Clone returns a new, fully independent array carrying the same release
// callback, with every item replaced by cloneItem(original). cloneItem must
// return a deep copy that is independently destroyable and must not mutate
// its argument. Destroying either array never affects the other.
func (d *DArray[T]) Clone(cloneItem func(T) T) (*DArray[T], error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if cloneItem == nil {
		return nil, ErrInvalidArgument
	}
	out := &DArray[T]{items: make([]T, 0, len(d.items)), itemFree: d.itemFree}
	for _, item := range d.items {
		out.items = append(out.items, cloneItem(item))
	}
	return out, nil
}
