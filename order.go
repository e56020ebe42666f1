package darray

import "golang.org/x/exp/constraints"

// Ascending returns a three-way comparator ordering items of any ordered
// type smallest first. Suitable for Sort, Search, and Unique.
func Ascending[T constraints.Ordered]() func(T, T) int {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Descending returns a three-way comparator ordering items largest first.
func Descending[T constraints.Ordered]() func(T, T) int {
	asc := Ascending[T]()
	return func(a, b T) int {
		return -asc(a, b)
	}
}
