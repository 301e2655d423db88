package sliceutil

import "arrayops/buffers"

// Distinct returns the elements of collection with duplicates removed.
// The first occurrence of every element keeps its relative position.
func Distinct[T comparable](collection []T) []T {
	return DistinctBy(collection, func(v T) T { return v })
}

// DistinctBy is Distinct keyed by keySelector.
// Useful for non-comparable types or custom uniqueness logic.
func DistinctBy[T any, K comparable](collection []T, keySelector func(T) K) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	seen := make(map[K]struct{}, len(collection))
	b := buffers.NewBuilder[T]()
	for _, v := range collection {
		k := keySelector(v)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			b.Append(v)
		}
	}
	return b.Finish()
}

// Intersect returns the distinct elements of a that also occur in b, in a's order.
func Intersect[T comparable](a, b []T) []T {
	return IntersectBy(a, b, func(v T) T { return v })
}

// IntersectBy is Intersect keyed by keySelector.
func IntersectBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	if len(a) == 0 || len(b) == 0 {
		return []T{}
	}
	mapB := make(map[K]struct{}, len(b))
	for _, v := range b {
		mapB[keySelector(v)] = struct{}{}
	}

	// The result is at most as long as the shorter input.
	res := buffers.NewBuilder[T](buffers.WithCapacity(min(len(a), len(b))))
	for _, v := range a {
		k := keySelector(v)
		if _, found := mapB[k]; found {
			res.Append(v)
			delete(mapB, k) // ensure uniqueness in result
		}
	}
	return res.Finish()
}

// Diff returns the distinct elements of a that do not occur in b (a - b).
func Diff[T comparable](a, b []T) []T {
	return DiffBy(a, b, func(v T) T { return v })
}

// DiffBy is Diff keyed by keySelector.
func DiffBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	if len(a) == 0 {
		return []T{}
	}

	// Holds every key of b plus the keys of a already emitted,
	// so len(a)+len(b) is a safe upper bound.
	exclude := make(map[K]struct{}, len(a)+len(b))
	for _, v := range b {
		exclude[keySelector(v)] = struct{}{}
	}

	res := buffers.NewBuilder[T]()
	for _, v := range a {
		k := keySelector(v)
		if _, exists := exclude[k]; !exists {
			res.Append(v)
			exclude[k] = struct{}{}
		}
	}
	return res.Finish()
}

// Union returns a followed by b with duplicates removed.
func Union[T comparable](a, b []T) []T {
	return UnionBy(a, b, func(v T) T { return v })
}

// UnionBy is Union keyed by keySelector.
func UnionBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	seen := make(map[K]struct{}, len(a)+len(b))
	res := buffers.NewBuilder[T]()
	for _, part := range [2][]T{a, b} {
		for _, v := range part {
			k := keySelector(v)
			if _, alreadyAdded := seen[k]; !alreadyAdded {
				res.Append(v)
				seen[k] = struct{}{}
			}
		}
	}
	return res.Finish()
}
