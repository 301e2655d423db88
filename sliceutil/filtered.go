package sliceutil

import (
	"iter"

	"arrayops/buffers"
	"arrayops/seqs"
)

// FilteredView is a deferred filter over a slice.
// Nothing is evaluated or allocated until a terminal operation runs.
// A view has no length and cannot be indexed; use Force to materialize it.
type FilteredView[T any] struct {
	predicate func(T) bool
	source    []T
}

// WithFilter returns a view of the elements of collection satisfying predicate.
func WithFilter[T any](collection []T, predicate func(T) bool) FilteredView[T] {
	return FilteredView[T]{predicate: predicate, source: collection}
}

// WithFilter narrows the view to elements that also satisfy q.
// The result is a single view over the same source holding p && q.
func (v FilteredView[T]) WithFilter(q func(T) bool) FilteredView[T] {
	p := v.predicate
	return FilteredView[T]{
		predicate: func(x T) bool { return p(x) && q(x) },
		source:    v.source,
	}
}

// ForEach calls action for every element that passes the filter.
func (v FilteredView[T]) ForEach(action func(T)) {
	for _, x := range v.source {
		if v.predicate(x) {
			action(x)
		}
	}
}

// Values yields the matching elements lazily, making the view a seqs.Producer
// of unknown size.
func (v FilteredView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.source {
			if v.predicate(x) && !yield(x) {
				return
			}
		}
	}
}

// Force materializes the matching elements into a new slice.
func (v FilteredView[T]) Force() []T {
	return Filter(v.source, v.predicate)
}

// MapView maps the elements that pass the filter.
// The result holds one element per match, not one per source element.
func MapView[T any, R any](v FilteredView[T], transform func(T) R) []R {
	b := buffers.NewBuilder[R]()
	v.ForEach(func(x T) {
		b.Append(transform(x))
	})
	return b.Finish()
}

// FlatMapView concatenates transform's producers for the elements that pass the filter.
func FlatMapView[T any, R any](v FilteredView[T], transform func(T) seqs.Producer[R]) []R {
	b := buffers.NewBuilder[R]()
	v.ForEach(func(x T) {
		b.AppendAll(transform(x))
	})
	return b.Finish()
}
