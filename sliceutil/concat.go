package sliceutil

import (
	"arrayops/buffers"
	"arrayops/seqs"
)

// Appended returns a copy of collection with x added at the end.
func Appended[T any](collection []T, x T) []T {
	res := make([]T, len(collection)+1)
	copy(res, collection)
	res[len(collection)] = x
	return res
}

// Prepended returns a copy of collection with x added at the front.
func Prepended[T any](collection []T, x T) []T {
	res := make([]T, len(collection)+1)
	res[0] = x
	copy(res[1:], collection)
	return res
}

// AppendedAll returns collection followed by every element of other.
//
// When other is backed by a plain slice the result is produced with one
// allocation and two copies. Otherwise a builder collects both sides,
// pre-sized when other reports its length.
func AppendedAll[T any](collection []T, other seqs.Producer[T]) []T {
	if c, ok := other.(seqs.Contiguous[T]); ok {
		tail := c.Elements()
		res := make([]T, len(collection)+len(tail))
		copy(res, collection)
		copy(res[len(collection):], tail)
		return res
	}

	b := buffers.NewBuilder[T]()
	if k, ok := seqs.KnownSize(other); ok {
		b.HintCapacity(len(collection) + k)
	}
	b.AppendSlice(collection)
	b.AppendAll(other)
	return b.Finish()
}

// PrependedAll returns every element of other followed by collection.
// Slice-backed producers take the same single-allocation path as AppendedAll.
func PrependedAll[T any](collection []T, other seqs.Producer[T]) []T {
	if c, ok := other.(seqs.Contiguous[T]); ok {
		head := c.Elements()
		res := make([]T, len(head)+len(collection))
		copy(res, head)
		copy(res[len(head):], collection)
		return res
	}

	b := buffers.NewBuilder[T]()
	k, known := seqs.KnownSize(other)
	if known {
		b.HintCapacity(k + len(collection))
	}
	b.AppendAll(other)
	if !known {
		// other's size is only known now; grow once before copying collection.
		b.HintCapacity(b.Len() + len(collection))
	}
	b.AppendSlice(collection)
	return b.Finish()
}

// Patch returns a copy of collection in which the replaced elements starting
// at from are swapped for the elements of other.
//
// from is clamped to [0, len(collection)] and a negative replaced counts as 0,
// so a from past the end appends other.
func Patch[T any](collection []T, from int, other seqs.Producer[T], replaced int) []T {
	n := len(collection)
	r := max(replaced, 0)
	chunk1 := min(max(from, 0), n)
	remaining := max(n-chunk1-r, 0)

	b := buffers.NewBuilder[T]()
	if k, ok := seqs.KnownSize(other); ok {
		b.HintCapacity(chunk1 + k + remaining)
	}
	b.AppendRange(collection, 0, chunk1)
	b.AppendAll(other)
	b.AppendRange(collection, n-remaining, n)
	return b.Finish()
}
