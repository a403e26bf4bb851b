package polybool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, size float64) MultiPolygon {
	return MultiPolygon{{{
		{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size},
	}}}
}

func TestUnion(t *testing.T) {
	result, err := Union(box(0, 0, 10), box(5, 5, 10))
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0], 1)

	ring := result[0][0]
	assert.Len(t, ring, 9, "eight corners plus the closing vertex")
	assert.Equal(t, ring[0], ring[len(ring)-1], "output rings are closed")
}

func TestIntersection(t *testing.T) {
	result, err := Intersection(box(0, 0, 10), box(5, 5, 10))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, Polygon{{{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 10}, {X: 5, Y: 5}}}, result[0])
}

func TestXor(t *testing.T) {
	t.Run("of overlapping boxes", func(t *testing.T) {
		result, err := Xor(box(0, 0, 10), box(5, 5, 10))
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("with itself is empty", func(t *testing.T) {
		result, err := Xor(box(0, 0, 10), box(0, 0, 10))
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestDifference(t *testing.T) {
	t.Run("carves a hole", func(t *testing.T) {
		result, err := Difference(box(0, 0, 10), box(3, 3, 4))
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.Len(t, result[0], 2, "one exterior ring and one hole")
	})

	t.Run("with itself is empty", func(t *testing.T) {
		result, err := Difference(box(0, 0, 10), box(0, 0, 10))
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("of disjoint regions is the subject", func(t *testing.T) {
		result, err := Difference(box(0, 0, 1), box(5, 5, 1))
		require.NoError(t, err)
		require.Len(t, result, 1)
	})
}

func TestMoreThanTwoOperands(t *testing.T) {
	result, err := Union(box(0, 0, 2), box(1, 0, 2), box(2, 0, 2))
	require.NoError(t, err)
	require.Len(t, result, 1)

	// Three overlapping boxes in a row union into one 4x2 strip
	var area float64
	ring := result[0][0]
	for i := 0; i < len(ring)-1; i++ {
		area += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	assert.InDelta(t, 8, area/2, 1e-9)
}

func TestEmptyInput(t *testing.T) {
	result, err := Union(MultiPolygon{})
	require.NoError(t, err)
	assert.Empty(t, result)
}
