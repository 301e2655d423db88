// Package buffers provides the growable accumulator used by combinators whose
// output size is not known before the input has been traversed.
package buffers

import "arrayops/seqs"

type builderConfig struct {
	capacity int
}

// Option configures a Builder at construction time.
type Option func(*builderConfig)

// WithCapacity pre-allocates room for n elements.
func WithCapacity(n int) Option {
	return func(c *builderConfig) {
		c.capacity = n
	}
}

// Builder accumulates elements and hands them out exactly once through Finish.
// Appended data is always copied, so a Builder never aliases its inputs.
// A Builder is not safe for concurrent use.
type Builder[T any] struct {
	data     []T
	finished bool
}

func NewBuilder[T any](opts ...Option) *Builder[T] {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Builder[T]{}
	if cfg.capacity > 0 {
		b.data = make([]T, 0, cfg.capacity)
	}
	return b
}

func (b *Builder[T]) mustBeOpen(op string) {
	if b.finished {
		panic("buffers.Builder: " + op + " called after Finish")
	}
}

// HintCapacity announces that the builder will hold about n elements in total.
// The hint is non-binding: values at or below the current capacity are ignored.
func (b *Builder[T]) HintCapacity(n int) {
	b.mustBeOpen("HintCapacity")
	if n <= cap(b.data) {
		return
	}
	grown := make([]T, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
}

// Append adds a single element.
func (b *Builder[T]) Append(x T) {
	b.mustBeOpen("Append")
	b.data = append(b.data, x)
}

// AppendSlice bulk-copies s.
func (b *Builder[T]) AppendSlice(s []T) {
	b.mustBeOpen("AppendSlice")
	b.data = append(b.data, s...)
}

// AppendRange bulk-copies s[from:until], with both bounds clamped to [0, len(s)].
func (b *Builder[T]) AppendRange(s []T, from, until int) {
	b.mustBeOpen("AppendRange")
	lo := min(max(from, 0), len(s))
	hi := min(max(until, 0), len(s))
	if hi <= lo {
		return
	}
	b.data = append(b.data, s[lo:hi]...)
}

// AppendAll drains p into the builder.
// Contiguous producers are copied in bulk; Sized ones grow the buffer once up front.
func (b *Builder[T]) AppendAll(p seqs.Producer[T]) {
	b.mustBeOpen("AppendAll")
	if c, ok := p.(seqs.Contiguous[T]); ok {
		b.data = append(b.data, c.Elements()...)
		return
	}
	if k, ok := seqs.KnownSize(p); ok {
		b.HintCapacity(len(b.data) + k)
	}
	for v := range p.Values() {
		b.data = append(b.data, v)
	}
}

// Len returns the number of elements appended so far.
func (b *Builder[T]) Len() int {
	return len(b.data)
}

// Finish returns the accumulated elements and retires the builder.
// The result is never nil. Any later call on b panics.
func (b *Builder[T]) Finish() []T {
	b.mustBeOpen("Finish")
	b.finished = true
	res := b.data
	b.data = nil
	if res == nil {
		return []T{}
	}
	return res
}
