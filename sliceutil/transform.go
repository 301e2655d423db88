package sliceutil

import (
	"arrayops/buffers"
	"arrayops/seqs"
)

// ==========================================
//  Pure Functions (Happy Path)
// ==========================================

// Map transforms a slice of type T to a slice of type R.
// The result has exactly len(collection) elements.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// MapInPlace overwrites every element with transform(element) and returns collection itself.
// It is the only combinator that writes to its input; the caller must hold
// exclusive access to collection for the duration of the call.
func MapInPlace[T any](collection []T, transform func(T) T) []T {
	for i, v := range collection {
		collection[i] = transform(v)
	}
	return collection
}

// Filter returns the elements satisfying predicate, in order.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	b := buffers.NewBuilder[T]()
	for _, v := range collection {
		if predicate(v) {
			b.Append(v)
		}
	}
	return b.Finish()
}

// Partition splits collection in one pass into the elements that satisfy
// predicate and those that do not. Relative order is kept in both.
func Partition[T any](collection []T, predicate func(T) bool) (matched []T, unmatched []T) {
	yes := buffers.NewBuilder[T]()
	no := buffers.NewBuilder[T]()
	for _, v := range collection {
		if predicate(v) {
			yes.Append(v)
		} else {
			no.Append(v)
		}
	}
	return yes.Finish(), no.Finish()
}

// Reverse returns a reversed copy.
func Reverse[T any](collection []T) []T {
	n := len(collection)
	res := make([]T, n)
	for i, v := range collection {
		res[n-1-i] = v
	}
	return res
}

// FoldLeft combines elements left to right: op(...op(op(z, c[0]), c[1])..., c[n-1]).
func FoldLeft[T any, R any](collection []T, z R, op func(acc R, elem T) R) R {
	acc := z
	for _, v := range collection {
		acc = op(acc, v)
	}
	return acc
}

// FoldRight combines elements right to left: op(c[0], op(c[1], ...op(c[n-1], z))).
// Note the argument order of op is the mirror of FoldLeft's.
func FoldRight[T any, R any](collection []T, z R, op func(elem T, acc R) R) R {
	acc := z
	for i := len(collection) - 1; i >= 0; i-- {
		acc = op(collection[i], acc)
	}
	return acc
}

// ScanLeft is FoldLeft that keeps every intermediate accumulator.
// The result has len(collection)+1 elements and starts with z.
func ScanLeft[T any, R any](collection []T, z R, op func(acc R, elem T) R) []R {
	res := make([]R, len(collection)+1)
	res[0] = z
	acc := z
	for i, v := range collection {
		acc = op(acc, v)
		res[i+1] = acc
	}
	return res
}

// FlatMap concatenates the producers returned by transform for every element.
// Sized producers grow the output once; others are drained element by element.
func FlatMap[T any, R any](collection []T, transform func(T) seqs.Producer[R]) []R {
	b := buffers.NewBuilder[R]()
	for _, v := range collection {
		b.AppendAll(transform(v))
	}
	return b.Finish()
}

// Flatten concatenates nested slices.
// The output is allocated once, sized to the total length of all rows.
func Flatten[S ~[]R, R any](collection []S) []R {
	total := 0
	for _, row := range collection {
		total += len(row)
	}
	b := buffers.NewBuilder[R](buffers.WithCapacity(total))
	for _, row := range collection {
		b.AppendSlice(row)
	}
	return b.Finish()
}

// FlattenProducers concatenates producers.
// Only Sized producers contribute to the up-front size hint.
func FlattenProducers[R any](collection []seqs.Producer[R]) []R {
	total := 0
	for _, p := range collection {
		if k, ok := seqs.KnownSize(p); ok {
			total += k
		}
	}
	b := buffers.NewBuilder[R](buffers.WithCapacity(total))
	for _, p := range collection {
		b.AppendAll(p)
	}
	return b.Finish()
}

// Collect applies a partial mapping. Elements for which transform reports
// false are skipped.
func Collect[T any, R any](collection []T, transform func(T) (R, bool)) []R {
	b := buffers.NewBuilder[R]()
	for _, v := range collection {
		if r, ok := transform(v); ok {
			b.Append(r)
		}
	}
	return b.Finish()
}

// ForEach calls action on every element, left to right.
func ForEach[T any](collection []T, action func(T)) {
	for _, v := range collection {
		action(v)
	}
}

// ==========================================
// Try Functions (Error Handling)
// Suitable for scenarios where errors may occur (Fail Fast)
// ==========================================

// TryFilter similar to Filter, but predicate may return an error.
// Returns immediately upon encountering an error.
func TryFilter[T any](collection []T, predicate func(T) (bool, error)) ([]T, error) {
	b := buffers.NewBuilder[T]()
	for _, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if ok {
			b.Append(v)
		}
	}
	return b.Finish(), nil
}

// TryMap similar to Map, but transform may return an error.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	if len(collection) == 0 {
		return []R{}, nil
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		res[i], err = transform(v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// TryFoldLeft similar to FoldLeft, but op may return an error.
// The accumulator reached before the failing element is returned with the error.
func TryFoldLeft[T any, R any](collection []T, z R, op func(acc R, elem T) (R, error)) (R, error) {
	acc := z
	for _, v := range collection {
		next, err := op(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
