/*
Package sliceutil implements combinators over fixed-length slices.

Every function reads its input and returns a freshly allocated result; no
result shares storage with an argument. [MapInPlace] is the one exception and
writes back into the slice it is given.

# Sizes and allocation

When the output length follows from the input ([Map], [Reverse], [Slice],
[ZipWithIndex], [Unzip]) the result is allocated once at its exact size.
When it does not ([Filter], [Collect], [FlatMap], [Patch]) elements go through
a [buffers.Builder], which is pre-sized whenever a [seqs.Sized] producer makes
that possible.

Concatenation checks whether the other side is [seqs.Contiguous]. If it is,
[AppendedAll] and [PrependedAll] allocate the result once and fill it with two
copy calls:

	sliceutil.AppendedAll(xs, seqs.FromSlice(ys))   // one allocation
	sliceutil.AppendedAll(xs, seqs.FromSeq(it))     // builder path

# Indices

Functions taking indices clamp them instead of failing, so
Slice([]int{1, 2, 3, 4, 5}, -2, 3) is [1 2 3] and Take(xs, 10) on a shorter
slice returns a copy of all of it. Searches report misses with [NotFound] or a
false flag. Only [Head], [Last] and [Transpose] return an [*IndexError].

# Deferred filtering

[WithFilter] builds a [FilteredView] that applies its predicate only when
[FilteredView.ForEach], [MapView] or [FlatMapView] runs. Chained filters fold
into a single predicate.
*/
package sliceutil
