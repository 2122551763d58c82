package mdp_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
)

func identity[V any](v V) V { return v }

func TestMax(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := mdp.Max(slices.Values([]float64{}), identity[float64])
		assert.False(t, ok)
	})

	t.Run("repeated maximum", func(t *testing.T) {
		got, ok := mdp.Max(slices.Values([]float64{5.0, 3.0, 5.0}), identity[float64])
		require.True(t, ok)
		assert.Equal(t, 5.0, got)
	})

	t.Run("single", func(t *testing.T) {
		got, ok := mdp.Max(slices.Values([]int{-7}), identity[int])
		require.True(t, ok)
		assert.Equal(t, -7, got)
	})

	t.Run("all negative", func(t *testing.T) {
		got, ok := mdp.Max(slices.Values([]float64{-3, -1, -2}), identity[float64])
		require.True(t, ok)
		assert.Equal(t, -1.0, got)
	})

	t.Run("ties keep the first value", func(t *testing.T) {
		// -0 == +0, so the first one seen must survive.
		got, ok := mdp.Max(slices.Values([]float64{math.Copysign(0, -1), 0}), identity[float64])
		require.True(t, ok)
		assert.True(t, math.Signbit(got))
	})

	t.Run("strings", func(t *testing.T) {
		got, ok := mdp.Max(slices.Values([]string{"up", "right", "down"}), identity[string])
		require.True(t, ok)
		assert.Equal(t, "up", got)
	})
}

func TestSum(t *testing.T) {
	type pair struct {
		name  string
		value float64
	}

	t.Run("pairs", func(t *testing.T) {
		got, ok := mdp.Sum(slices.Values([]pair{{"a", 2.0}, {"b", 3.0}}), func(p pair) float64 { return p.value })
		require.True(t, ok)
		assert.Equal(t, 5.0, got)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := mdp.Sum(slices.Values([]pair{}), func(p pair) float64 { return p.value })
		assert.False(t, ok)
	})

	t.Run("zero sum is still a result", func(t *testing.T) {
		got, ok := mdp.Sum(slices.Values([]int{2, -2}), identity[int])
		require.True(t, ok)
		assert.Zero(t, got)
	})

	t.Run("complex", func(t *testing.T) {
		got, ok := mdp.Sum(slices.Values([]complex128{1 + 2i, 3 - 1i}), identity[complex128])
		require.True(t, ok)
		assert.Equal(t, 4+1i, got)
	})

	t.Run("map keys", func(t *testing.T) {
		got, ok := mdp.Sum(maps.Keys(map[int]bool{1: true, 2: true, 3: true}), identity[int])
		require.True(t, ok)
		assert.Equal(t, 6, got)
	})
}

func TestPrimitivesVisitEveryElementOnceInOrder(t *testing.T) {
	input := []int{4, 9, 1, 9, 2}

	var seen []int
	_, ok := mdp.Max(slices.Values(input), func(v int) int {
		seen = append(seen, v)
		return v
	})
	require.True(t, ok)
	assert.Equal(t, input, seen)

	seen = nil
	_, ok = mdp.Sum(slices.Values(input), func(v int) int {
		seen = append(seen, v)
		return v
	})
	require.True(t, ok)
	assert.Equal(t, input, seen)
}
