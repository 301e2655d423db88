package seqs

import "iter"

// Producer is a finite source of elements.
// Each call to Values starts a fresh pass; callers drain it at most once per call.
type Producer[T any] interface {
	Values() iter.Seq[T]
}

// Sized is implemented by producers that know how many elements they yield
// before being drained.
type Sized interface {
	Len() int
}

// Contiguous is implemented by producers backed by a single slice.
// Elements returns that backing slice; callers must treat it as read-only.
type Contiguous[T any] interface {
	Producer[T]
	Elements() []T
}

// KnownSize reports the number of elements p will yield, if p advertises it.
func KnownSize[T any](p Producer[T]) (int, bool) {
	if s, ok := p.(Sized); ok {
		return s.Len(), true
	}
	return 0, false
}

// Slice adapts a slice into a Sized, Contiguous producer.
type Slice[T any] []T

// FromSlice wraps s without copying it.
func FromSlice[T any](s []T) Slice[T] {
	return Slice[T](s)
}

func (s Slice[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) Elements() []T { return s }

// Seq adapts an iter.Seq into a producer of unknown size.
type Seq[T any] iter.Seq[T]

// FromSeq wraps seq. A nil seq yields nothing.
func FromSeq[T any](seq iter.Seq[T]) Seq[T] {
	return Seq[T](seq)
}

func (s Seq[T]) Values() iter.Seq[T] {
	if s == nil {
		return func(func(T) bool) {}
	}
	return iter.Seq[T](s)
}

type sizedSeq[T any] struct {
	seq iter.Seq[T]
	n   int
}

// FromSeqN wraps seq and advertises n as its size.
// The caller guarantees seq yields exactly n elements.
func FromSeqN[T any](seq iter.Seq[T], n int) Producer[T] {
	return sizedSeq[T]{seq: seq, n: max(n, 0)}
}

func (s sizedSeq[T]) Values() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

func (s sizedSeq[T]) Len() int { return s.n }

// Empty returns a producer that yields nothing.
func Empty[T any]() Slice[T] {
	return Slice[T]{}
}

// Pull converts p into a pull-style iterator.
// Contiguous producers are read by index; anything else goes through iter.Pull.
// stop must be called once the caller is done, whether or not next was exhausted.
func Pull[T any](p Producer[T]) (next func() (T, bool), stop func()) {
	if c, ok := p.(Contiguous[T]); ok {
		elems := c.Elements()
		i := 0
		next = func() (T, bool) {
			if i >= len(elems) {
				var zero T
				return zero, false
			}
			v := elems[i]
			i++
			return v, true
		}
		return next, func() { i = len(elems) }
	}
	return iter.Pull(p.Values())
}

// Collect drains p into a new slice.
func Collect[T any](p Producer[T]) []T {
	n, _ := KnownSize(p)
	res := make([]T, 0, n)
	for v := range p.Values() {
		res = append(res, v)
	}
	return res
}
