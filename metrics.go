package darray

// Utilization returns the ratio of live items to allocated capacity
// (0.0 to 1.0). Returns 0.0 if the array has no capacity.
func (d *DArray[T]) Utilization() float64 {
	capacity := d.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(d.Len()) / float64(capacity)
}

// Grows returns the number of buffer reallocations since construction.
// Useful for verifying that pre-sizing with EnsureCapacity is effective.
func (d *DArray[T]) Grows() int {
	if d == nil {
		return 0
	}
	return d.grows
}

// Metrics returns a snapshot of array statistics.
func (d *DArray[T]) Metrics() DArrayMetrics {
	return DArrayMetrics{
		Len:         d.Len(),
		Cap:         d.Cap(),
		Grows:       d.Grows(),
		Utilization: d.Utilization(),
	}
}

// DArrayMetrics contains statistical information about an array.
type DArrayMetrics struct {
	Len         int     // Live items
	Cap         int     // Allocated capacity in items
	Grows       int     // Buffer reallocations since construction
	Utilization float64 // Ratio of items to capacity (0.0-1.0)
}
