package sliceutil

// NotFound is the index returned by the IndexWhere family when nothing matches.
const NotFound = -1

// Contains checks if the target element exists in the collection.
// Works for comparable types.
func Contains[T comparable](collection []T, target T) bool {
	for _, v := range collection {
		if v == target {
			return true
		}
	}
	return false
}

// IndexWhere returns the index of the first element satisfying predicate, or NotFound.
func IndexWhere[T any](collection []T, predicate func(T) bool) int {
	return IndexWhereFrom(collection, predicate, 0)
}

// IndexWhereFrom is IndexWhere starting at from. A negative from is treated as 0.
func IndexWhereFrom[T any](collection []T, predicate func(T) bool, from int) int {
	for i := max(from, 0); i < len(collection); i++ {
		if predicate(collection[i]) {
			return i
		}
	}
	return NotFound
}

// LastIndexWhere returns the index of the last element satisfying predicate, or NotFound.
func LastIndexWhere[T any](collection []T, predicate func(T) bool) int {
	return LastIndexWhereFrom(collection, predicate, len(collection)-1)
}

// LastIndexWhereFrom searches backwards from end (inclusive, clamped to the last index).
func LastIndexWhereFrom[T any](collection []T, predicate func(T) bool, end int) int {
	for i := min(end, len(collection)-1); i >= 0; i-- {
		if predicate(collection[i]) {
			return i
		}
	}
	return NotFound
}

// Find searches for the first element that satisfies the predicate.
// Returns the element and true if found, otherwise returns the zero value and false.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	if i := IndexWhere(collection, predicate); i != NotFound {
		return collection[i], true
	}
	var zero T
	return zero, false
}

// Exists reports whether any element satisfies predicate.
func Exists[T any](collection []T, predicate func(T) bool) bool {
	return IndexWhere(collection, predicate) >= 0
}

// ForAll reports whether every element satisfies predicate.
// It stops at the first failure and is true for an empty collection.
func ForAll[T any](collection []T, predicate func(T) bool) bool {
	for _, v := range collection {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count returns how many elements satisfy predicate.
func Count[T any](collection []T, predicate func(T) bool) int {
	n := 0
	for _, v := range collection {
		if predicate(v) {
			n++
		}
	}
	return n
}
