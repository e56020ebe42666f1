package darray

import (
	"errors"
	"testing"
)

func TestForEachOrder(t *testing.T) {
	d := New[int](nil)
	fillInts(t, d, 3, 1, 4, 1, 5)

	var visited []int
	if err := d.ForEach(func(v int) { visited = append(visited, v) }); err != nil {
		t.Fatalf("ForEach error: %v", err)
	}
	if !equalInts(visited, []int{3, 1, 4, 1, 5}) {
		t.Errorf("ForEach visited %v, want [3 1 4 1 5]", visited)
	}
}

func TestForEachEmpty(t *testing.T) {
	d := New[int](nil)
	calls := 0
	if err := d.ForEach(func(int) { calls++ }); err != nil {
		t.Fatalf("ForEach error: %v", err)
	}
	if calls != 0 {
		t.Errorf("ForEach on empty array made %d calls", calls)
	}
}

func TestAggregateSum(t *testing.T) {
	d := New[int](nil)
	fillInts(t, d, 1, 2, 3, 4)

	var sum int
	if err := Aggregate(d, &sum, func(v int, acc *int) { *acc += v }); err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if sum != 10 {
		t.Errorf("sum = %d, want 10", sum)
	}
}

func TestAggregateMax(t *testing.T) {
	d := New[int](nil)
	fillInts(t, d, 3, 9, 2, 7)

	max := -1
	if err := Aggregate(d, &max, func(v int, acc *int) {
		if v > *acc {
			*acc = v
		}
	}); err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if max != 9 {
		t.Errorf("max = %d, want 9", max)
	}
}

func TestAggregateConcat(t *testing.T) {
	d := New[string](nil)
	for _, s := range []string{"a", "b", "c"} {
		if err := d.Append(s); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	var joined string
	if err := Aggregate(d, &joined, func(s string, acc *string) { *acc += s }); err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if joined != "abc" {
		t.Errorf("joined = %q, want %q", joined, "abc")
	}
}

func TestAggregateInvalidArguments(t *testing.T) {
	d := New[int](nil)
	fillInts(t, d, 1)

	if err := Aggregate[int, int](d, nil, func(int, *int) {}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Aggregate(nil result) error = %v, want ErrInvalidArgument", err)
	}
	var acc int
	if err := Aggregate(d, &acc, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Aggregate(nil fn) error = %v, want ErrInvalidArgument", err)
	}
	var nilArr *DArray[int]
	if err := Aggregate(nilArr, &acc, func(int, *int) {}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Aggregate on nil array error = %v, want ErrInvalidArgument", err)
	}
}

func TestToSlice(t *testing.T) {
	d := New[int](nil)
	fillInts(t, d, 1, 2, 3)

	s := d.ToSlice()
	if !equalInts(s, []int{1, 2, 3}) {
		t.Fatalf("ToSlice = %v, want [1 2 3]", s)
	}

	// The snapshot shares no storage with the array.
	s[0] = 99
	if v, _ := d.Get(0); v != 1 {
		t.Errorf("mutating the snapshot changed the array: Get(0) = %d", v)
	}

	var nilArr *DArray[int]
	if nilArr.ToSlice() != nil {
		t.Error("ToSlice on nil array should be nil")
	}
}
