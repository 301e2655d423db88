package sliceutil

// ==========================================
//  Index Clamping Views (always copies)
// ==========================================

// Slice returns a copy of collection[from:until].
// Both bounds are clamped to [0, len(collection)]; an inverted range is empty.
func Slice[T any](collection []T, from, until int) []T {
	n := len(collection)
	lo := min(max(from, 0), n)
	hi := min(max(until, 0), n)
	size := max(hi-lo, 0)
	res := make([]T, size)
	copy(res, collection[lo:lo+size])
	return res
}

// Take returns a copy of the first k elements.
func Take[T any](collection []T, k int) []T {
	return Slice(collection, 0, min(k, len(collection)))
}

// Drop returns a copy of everything after the first k elements.
func Drop[T any](collection []T, k int) []T {
	return Slice(collection, max(k, 0), len(collection))
}

// TakeRight returns a copy of the last k elements.
func TakeRight[T any](collection []T, k int) []T {
	return Drop(collection, len(collection)-max(k, 0))
}

// DropRight returns a copy without the last k elements.
func DropRight[T any](collection []T, k int) []T {
	return Take(collection, len(collection)-max(k, 0))
}

// Tail returns a copy without the first element. It is empty for empty input.
func Tail[T any](collection []T) []T {
	return Slice(collection, 1, len(collection))
}

// Init returns a copy without the last element. It is empty for empty input.
func Init[T any](collection []T) []T {
	return Slice(collection, 0, len(collection)-1)
}

// SplitAt is (Take(k), Drop(k)).
func SplitAt[T any](collection []T, k int) ([]T, []T) {
	return Take(collection, k), Drop(collection, k)
}

// Head returns the first element, or an *IndexError if collection is empty.
func Head[T any](collection []T) (T, error) {
	if len(collection) == 0 {
		var zero T
		return zero, &IndexError{Op: "Head", Index: 0, Length: 0}
	}
	return collection[0], nil
}

// Last returns the last element, or an *IndexError if collection is empty.
func Last[T any](collection []T) (T, error) {
	if len(collection) == 0 {
		var zero T
		return zero, &IndexError{Op: "Last", Index: -1, Length: 0}
	}
	return collection[len(collection)-1], nil
}

// HeadOption returns the first element and true, or the zero value and false.
func HeadOption[T any](collection []T) (T, bool) {
	if len(collection) == 0 {
		var zero T
		return zero, false
	}
	return collection[0], true
}

// LastOption returns the last element and true, or the zero value and false.
func LastOption[T any](collection []T) (T, bool) {
	if len(collection) == 0 {
		var zero T
		return zero, false
	}
	return collection[len(collection)-1], true
}
