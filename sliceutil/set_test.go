package sliceutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arrayops/sliceutil"
)

type User struct {
	ID   int
	Name string
}

func TestDistinct(t *testing.T) {
	input := []int{3, 1, 3, 2, 1}
	assert.Equal(t, []int{3, 1, 2}, sliceutil.Distinct(input))
	assert.Equal(t, []int{3, 1, 3, 2, 1}, input, "Distinct must not touch its input")
	assert.Equal(t, []int{}, sliceutil.Distinct[int](nil))

	users := []User{{1, "Alice"}, {2, "Bob"}, {1, "Alicia"}}
	got := sliceutil.DistinctBy(users, func(u User) int { return u.ID })
	assert.Equal(t, []User{{1, "Alice"}, {2, "Bob"}}, got)
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"Normal", []int{1, 2, 3}, []int{2, 3, 4}, []int{2, 3}},
		{"NoOverlap", []int{1, 2}, []int{3, 4}, []int{}},
		{"EmptyA", []int{}, []int{1, 2}, []int{}},
		{"EmptyB", []int{1, 2}, []int{}, []int{}},
		{"DuplicatesInA", []int{1, 2, 2, 3}, []int{2, 3}, []int{2, 3}}, // Should dedup result
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Intersect(tt.a, tt.b))
		})
	}
}

func TestIntersectBy(t *testing.T) {
	u1 := User{1, "Alice"}
	u2 := User{2, "Bob"}
	u3 := User{3, "Charlie"}

	got := sliceutil.IntersectBy([]User{u1, u2}, []User{u2, u3}, func(u User) int { return u.ID })
	assert.Equal(t, []User{u2}, got)
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"Normal", []int{1, 2, 3, 4}, []int{2, 4}, []int{1, 3}},
		{"DuplicatesInA", []int{1, 1, 2}, []int{2}, []int{1}},
		{"EmptyB", []int{1, 2}, nil, []int{1, 2}},
		{"EmptyA", nil, []int{1}, []int{}},
		{"AllRemoved", []int{1, 2}, []int{2, 1}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Diff(tt.a, tt.b))
		})
	}

	got := sliceutil.DiffBy([]User{{1, "a"}, {2, "b"}}, []User{{2, "x"}}, func(u User) int { return u.ID })
	assert.Equal(t, []User{{1, "a"}}, got)
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, sliceutil.Union([]int{1, 2, 2}, []int{3, 1, 4}))
	assert.Equal(t, []int{}, sliceutil.Union[int](nil, nil))

	got := sliceutil.UnionBy([]User{{1, "a"}}, []User{{1, "b"}, {2, "c"}}, func(u User) int { return u.ID })
	assert.Equal(t, []User{{1, "a"}, {2, "c"}}, got)
}
