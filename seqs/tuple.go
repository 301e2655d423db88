package seqs

// Pair is a two-element view used for zipped and unzipped sequences.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func MakePair[T1, T2 any](v1 T1, v2 T2) Pair[T1, T2] {
	return Pair[T1, T2]{V1: v1, V2: v2}
}

// Unpack returns both components.
func (p Pair[T1, T2]) Unpack() (T1, T2) {
	return p.V1, p.V2
}

// Triple is the three-element counterpart of Pair.
type Triple[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func MakeTriple[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Triple[T1, T2, T3] {
	return Triple[T1, T2, T3]{V1: v1, V2: v2, V3: v3}
}

// Unpack returns all three components.
func (t Triple[T1, T2, T3]) Unpack() (T1, T2, T3) {
	return t.V1, t.V2, t.V3
}
