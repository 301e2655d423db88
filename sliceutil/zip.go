package sliceutil

import (
	"arrayops/buffers"
	"arrayops/seqs"
)

// Zip pairs collection[i] with the i-th element of other, stopping at the
// shorter of the two.
func Zip[T any, U any](collection []T, other seqs.Producer[U]) []seqs.Pair[T, U] {
	if c, ok := other.(seqs.Contiguous[U]); ok {
		right := c.Elements()
		n := min(len(collection), len(right))
		res := make([]seqs.Pair[T, U], n)
		for i := range n {
			res[i] = seqs.Pair[T, U]{V1: collection[i], V2: right[i]}
		}
		return res
	}

	hint := len(collection)
	if k, ok := seqs.KnownSize(other); ok {
		hint = min(hint, k)
	}
	b := buffers.NewBuilder[seqs.Pair[T, U]](buffers.WithCapacity(hint))
	if len(collection) == 0 {
		return b.Finish()
	}

	next, stop := seqs.Pull(other)
	defer stop()
	for _, v := range collection {
		u, ok := next()
		if !ok {
			break
		}
		b.Append(seqs.Pair[T, U]{V1: v, V2: u})
	}
	return b.Finish()
}

// ZipWithIndex pairs every element with its position.
func ZipWithIndex[T any](collection []T) []seqs.Pair[T, int] {
	res := make([]seqs.Pair[T, int], len(collection))
	for i, v := range collection {
		res[i] = seqs.Pair[T, int]{V1: v, V2: i}
	}
	return res
}

// Unzip splits a slice of pairs into its two components.
func Unzip[A any, B any](collection []seqs.Pair[A, B]) ([]A, []B) {
	return UnzipFunc(collection, func(p seqs.Pair[A, B]) (A, B) { return p.Unpack() })
}

// UnzipFunc splits every element into two parts using split.
// Both outputs have exactly len(collection) elements.
func UnzipFunc[E any, A any, B any](collection []E, split func(E) (A, B)) ([]A, []B) {
	as := make([]A, len(collection))
	bs := make([]B, len(collection))
	for i, e := range collection {
		as[i], bs[i] = split(e)
	}
	return as, bs
}

// Unzip3 splits a slice of triples into its three components.
func Unzip3[A any, B any, C any](collection []seqs.Triple[A, B, C]) ([]A, []B, []C) {
	return Unzip3Func(collection, func(t seqs.Triple[A, B, C]) (A, B, C) { return t.Unpack() })
}

// Unzip3Func splits every element into three parts using split.
func Unzip3Func[E any, A any, B any, C any](collection []E, split func(E) (A, B, C)) ([]A, []B, []C) {
	as := make([]A, len(collection))
	bs := make([]B, len(collection))
	cs := make([]C, len(collection))
	for i, e := range collection {
		as[i], bs[i], cs[i] = split(e)
	}
	return as, bs, cs
}

// Transpose turns rows into columns.
//
// rows must be rectangular: the width is taken from rows[0], and any row of a
// different length fails with an *IndexError naming the first column that is
// missing or in excess. An empty input transposes to an empty result.
func Transpose[S ~[]U, U any](rows []S) ([][]U, error) {
	if len(rows) == 0 {
		return [][]U{}, nil
	}

	width := len(rows[0])
	columns := make([]*buffers.Builder[U], width)
	for i := range columns {
		columns[i] = buffers.NewBuilder[U](buffers.WithCapacity(len(rows)))
	}

	for _, row := range rows {
		if len(row) != width {
			return nil, &IndexError{Op: "Transpose", Index: min(len(row), width), Length: width}
		}
		for i, v := range row {
			columns[i].Append(v)
		}
	}

	res := make([][]U, width)
	for i, col := range columns {
		res[i] = col.Finish()
	}
	return res, nil
}
