package sliceutil

// Grouped splits collection into chunks of size elements.
// Every chunk is a fresh copy; the last one may be shorter.
func Grouped[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.Grouped: size must be greater than 0")
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	batchSize := (len(collection) + size - 1) / size
	res := make([][]T, 0, batchSize)
	for i := 0; i < len(collection); i += size {
		res = append(res, Slice(collection, i, i+size))
	}
	return res
}

// Sliding returns copied windows of size elements, advancing by step.
//
//	step < size: overlapping windows, e.g. [1,2,3] [2,3,4] for size=3, step=1
//	step == size: same as Grouped, minus a short final chunk
//	step > size: elements between windows are skipped
//
// Only full windows are returned, except that an input shorter than size
// yields a single window holding all of it.
func Sliding[T any](collection []T, size, step int) [][]T {
	if size <= 0 || step <= 0 {
		panic("sliceutil.Sliding: size and step must be greater than 0")
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	if len(collection) <= size {
		return [][]T{Slice(collection, 0, len(collection))}
	}
	count := (len(collection)-size)/step + 1
	res := make([][]T, 0, count)
	for i := 0; i+size <= len(collection); i += step {
		res = append(res, Slice(collection, i, i+size))
	}
	return res
}

// GroupBy buckets elements by key. Within a bucket the input order is kept.
// The result is never nil.
func GroupBy[T any, K comparable](collection []T, key func(T) K) map[K][]T {
	res := make(map[K][]T)
	for _, v := range collection {
		k := key(v)
		res[k] = append(res[k], v)
	}
	return res
}
