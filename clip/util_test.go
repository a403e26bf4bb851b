package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlpCompare(t *testing.T) {
	t.Run("distinct values", func(t *testing.T) {
		assert.Equal(t, -1, flpCompare(1, 2))
		assert.Equal(t, 1, flpCompare(2, 1))
		assert.Equal(t, 0, flpCompare(3, 3))
	})

	t.Run("within tolerance", func(t *testing.T) {
		assert.Equal(t, 0, flpCompare(1, 1+1e-16))
		assert.True(t, flpEQ(1, 1+1e-16))
		assert.False(t, flpLT(1, 1+1e-16))
	})

	t.Run("tolerance scales with magnitude", func(t *testing.T) {
		// 1e20 and 1e20+1e4 differ by far more than epsilon in absolute
		// terms, but are equal relative to their magnitude.
		assert.True(t, flpEQ(1e20, 1e20+1e4))
		assert.False(t, flpEQ(1e-3, 2e-3))
	})

	t.Run("strict less-than", func(t *testing.T) {
		assert.True(t, flpLT(1, 2))
		assert.False(t, flpLT(2, 1))
		assert.False(t, flpLT(1, 1))
	})
}

func TestComparePoints(t *testing.T) {
	assert.Equal(t, -1, comparePoints(Point{0, 0}, Point{1, 0}))
	assert.Equal(t, 1, comparePoints(Point{1, 0}, Point{0, 0}))
	// x ties break on y
	assert.Equal(t, -1, comparePoints(Point{1, 0}, Point{1, 5}))
	assert.Equal(t, 1, comparePoints(Point{1, 5}, Point{1, 0}))
	assert.Equal(t, 0, comparePoints(Point{1, 5}, Point{1, 5}))
}

func TestArePointsEqual(t *testing.T) {
	assert.True(t, arePointsEqual(Point{1, 2}, Point{1, 2}))
	assert.True(t, arePointsEqual(Point{1, 2}, Point{1 + 1e-16, 2 - 1e-16}))
	assert.False(t, arePointsEqual(Point{1, 2}, Point{1, 3}))
}

func TestCompareVectorAngles(t *testing.T) {
	base := Point{0, 0}
	end := Point{10, 0}

	t.Run("above", func(t *testing.T) {
		assert.Equal(t, 1, compareVectorAngles(Point{5, 3}, base, end))
	})

	t.Run("below", func(t *testing.T) {
		assert.Equal(t, -1, compareVectorAngles(Point{5, -3}, base, end))
	})

	t.Run("colinear", func(t *testing.T) {
		assert.Equal(t, 0, compareVectorAngles(Point{5, 0}, base, end))
		assert.Equal(t, 0, compareVectorAngles(Point{-5, 0}, base, end))
	})

	t.Run("direction matters", func(t *testing.T) {
		// Flipping the segment flips above and below
		assert.Equal(t, -1, compareVectorAngles(Point{5, 3}, end, base))
	})
}
