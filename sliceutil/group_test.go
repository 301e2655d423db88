package sliceutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arrayops/sliceutil"
)

func TestGrouped(t *testing.T) {
	t.Run("Happy Path (Divisible)", func(t *testing.T) {
		got := sliceutil.Grouped([]int{1, 2, 3, 4}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, got)
	})

	t.Run("Happy Path (Non-Divisible)", func(t *testing.T) {
		got := sliceutil.Grouped([]int{1, 2, 3, 4, 5}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
	})

	t.Run("Edge Case (Empty/Nil)", func(t *testing.T) {
		got := sliceutil.Grouped[int](nil, 3)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Edge Case (Size > Len)", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2}}, sliceutil.Grouped([]int{1, 2}, 5))
	})

	t.Run("Edge Case (Panic)", func(t *testing.T) {
		assert.PanicsWithValue(t, "sliceutil.Grouped: size must be greater than 0", func() {
			sliceutil.Grouped([]int{1}, 0)
		})
	})

	t.Run("Memory Semantics (Copy)", func(t *testing.T) {
		input := []int{1, 2, 3}
		got := sliceutil.Grouped(input, 2)
		got[0][0] = 100
		assert.Equal(t, 1, input[0], "chunks must not share storage with the input")
	})
}

func TestSliding(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name       string
		size, step int
		want       [][]int
	}{
		{"Overlapping", 3, 1, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		{"Exact", 2, 2, [][]int{{1, 2}, {3, 4}}},
		{"Gapped", 1, 3, [][]int{{1}, {4}}},
		{"SizeAtLength", 5, 1, [][]int{{1, 2, 3, 4, 5}}},
		{"SizeOverLength", 9, 2, [][]int{{1, 2, 3, 4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Sliding(input, tt.size, tt.step))
		})
	}

	assert.Empty(t, sliceutil.Sliding([]int{}, 2, 1))
	assert.Panics(t, func() { sliceutil.Sliding(input, 2, 0) })
	assert.Panics(t, func() { sliceutil.Sliding(input, -1, 1) })
}

func TestGroupBy(t *testing.T) {
	type Person struct {
		ID   int
		Age  int
		Name string
	}

	t.Run("Happy Path (Multiple Groups)", func(t *testing.T) {
		input := []Person{
			{ID: 1, Age: 20, Name: "Alice"},
			{ID: 2, Age: 25, Name: "Bob"},
			{ID: 3, Age: 20, Name: "Charlie"},
			{ID: 4, Age: 30, Name: "David"},
		}
		got := sliceutil.GroupBy(input, func(p Person) int { return p.Age })
		want := map[int][]Person{
			20: {{ID: 1, Age: 20, Name: "Alice"}, {ID: 3, Age: 20, Name: "Charlie"}},
			25: {{ID: 2, Age: 25, Name: "Bob"}},
			30: {{ID: 4, Age: 30, Name: "David"}},
		}
		assert.Equal(t, want, got)
	})

	t.Run("Zero Value (Nil Input)", func(t *testing.T) {
		var input []Person // Nil slice
		got := sliceutil.GroupBy(input, func(p Person) int { return p.Age })
		require.NotNil(t, got, "GroupBy() with nil input should return empty map, not nil")
		assert.Empty(t, got)
	})

	t.Run("Robustness (KeyFunc Stress)", func(t *testing.T) {
		count := 10000
		input := make([]Person, count)
		for i := 0; i < count; i++ {
			input[i] = Person{ID: i, Age: i, Name: fmt.Sprintf("User %d", i)}
		}
		got := sliceutil.GroupBy(input, func(p Person) int { return p.ID }) // Each element has a unique key
		require.Len(t, got, count)
		for i := 0; i < count; i++ {
			require.Len(t, got[i], 1)
		}
	})
}
