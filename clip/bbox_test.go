package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBboxContains(t *testing.T) {
	box := newBbox(Point{0, 0}, Point{10, 5})

	assert.True(t, box.contains(Point{5, 2}))
	assert.True(t, box.contains(Point{0, 0}), "corners are contained")
	assert.True(t, box.contains(Point{10, 5}))
	assert.True(t, box.contains(Point{10, 0}))
	assert.False(t, box.contains(Point{11, 2}))
	assert.False(t, box.contains(Point{5, 6}))
	assert.False(t, box.contains(Point{-1, -1}))
}

func TestBboxOverlap(t *testing.T) {
	t.Run("proper overlap", func(t *testing.T) {
		a := newBbox(Point{0, 0}, Point{10, 10})
		b := newBbox(Point{5, 5}, Point{15, 15})
		ov, ok := a.overlap(b)
		require.True(t, ok)
		assert.Equal(t, bbox{5, 5, 10, 10}, ov)
	})

	t.Run("disjoint", func(t *testing.T) {
		a := newBbox(Point{0, 0}, Point{1, 1})
		b := newBbox(Point{5, 5}, Point{6, 6})
		_, ok := a.overlap(b)
		assert.False(t, ok)
	})

	t.Run("shared edge collapses", func(t *testing.T) {
		a := newBbox(Point{0, 0}, Point{10, 10})
		b := newBbox(Point{10, 0}, Point{20, 10})
		ov, ok := a.overlap(b)
		require.True(t, ok)
		assert.Equal(t, bbox{10, 0, 10, 10}, ov)
	})

	t.Run("shared corner collapses to a point", func(t *testing.T) {
		a := newBbox(Point{0, 0}, Point{10, 10})
		b := newBbox(Point{10, 10}, Point{20, 20})
		ov, ok := a.overlap(b)
		require.True(t, ok)
		assert.Equal(t, bbox{10, 10, 10, 10}, ov)
	})
}

func TestBboxCorners(t *testing.T) {
	t.Run("full box has four", func(t *testing.T) {
		box := newBbox(Point{0, 0}, Point{2, 3})
		assert.ElementsMatch(t, []Point{{0, 0}, {0, 3}, {2, 0}, {2, 3}}, box.corners())
	})

	t.Run("vertical sliver has two", func(t *testing.T) {
		box := newBbox(Point{1, 0}, Point{1, 5})
		assert.ElementsMatch(t, []Point{{1, 0}, {1, 5}}, box.corners())
	})

	t.Run("horizontal sliver has two", func(t *testing.T) {
		box := newBbox(Point{0, 2}, Point{8, 2})
		assert.ElementsMatch(t, []Point{{0, 2}, {8, 2}}, box.corners())
	})

	t.Run("point has one", func(t *testing.T) {
		box := newBbox(Point{3, 4}, Point{3, 4})
		assert.Equal(t, []Point{{3, 4}}, box.corners())
	})
}
