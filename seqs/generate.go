package seqs

import (
	"iter"
	"math/rand/v2"
)

// RandomInts returns a producer of size random integers.
func RandomInts(size int) Producer[int] {
	return FromSeqN(func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}, size)
}

// Range returns the integers from start towards end (exclusive) by step.
// A zero step, or a step pointing away from end, yields nothing.
func Range(start, end, step int) Producer[int] {
	return FromSeqN(rangeSeq(start, end, step), rangeLen(start, end, step))
}

func rangeSeq(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

func rangeLen(start, end, step int) int {
	switch {
	case step > 0 && start < end:
		return (end - start + step - 1) / step
	case step < 0 && start > end:
		return (start - end - step - 1) / -step
	default:
		return 0
	}
}

// Repeat returns a producer yielding value count times.
func Repeat[T any](value T, count int) Producer[T] {
	return FromSeqN(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}, count)
}
