/*
Package seqs defines the finite producers consumed by the slice combinators in
[arrayops/sliceutil] and the growable builders in [arrayops/buffers].

A [Producer] is anything that can hand out its elements as an iter.Seq. Two
optional capabilities refine it:

  - [Sized]: the producer knows its length up front, so consumers can
    pre-allocate.
  - [Contiguous]: the producer is backed by a plain []T, so consumers can
    bulk-copy it with a single copy call instead of draining it element by
    element.

Adapters cover the common cases:

	seqs.FromSlice([]int{1, 2, 3})       // Sized + Contiguous
	seqs.FromSeq(maps.Keys(m))           // unknown size
	seqs.FromSeqN(slices.Values(s), n)   // Sized, not contiguous

[Range], [Repeat] and [RandomInts] are Sized generators. [Pair] and [Triple]
are the element views produced by zipping.
*/
package seqs
