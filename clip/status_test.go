package clip

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepStatusNeighbors(t *testing.T) {
	op := NewOperation(Union)
	bottom := testSegment(op, Point{0, 0}, Point{10, 0})
	middle := testSegment(op, Point{0, 5}, Point{10, 5})
	top := testSegment(op, Point{0, 9}, Point{10, 9})

	status := newSweepStatus()
	status.insert(middle)
	status.insert(top)
	status.insert(bottom)

	assert.Nil(t, status.prev(bottom))
	assert.Equal(t, bottom, status.prev(middle))
	assert.Equal(t, middle, status.prev(top))

	assert.Equal(t, middle, status.next(bottom))
	assert.Equal(t, top, status.next(middle))
	assert.Nil(t, status.next(top))
}

func TestSweepStatusRemove(t *testing.T) {
	op := NewOperation(Union)
	bottom := testSegment(op, Point{0, 0}, Point{10, 0})
	middle := testSegment(op, Point{0, 5}, Point{10, 5})
	top := testSegment(op, Point{0, 9}, Point{10, 9})

	status := newSweepStatus()
	status.insert(bottom)
	status.insert(middle)
	status.insert(top)

	status.remove(middle)
	assert.Equal(t, top, status.next(bottom))
	assert.Equal(t, bottom, status.prev(top))

	assert.Panics(t, func() {
		status.remove(middle)
	}, "removing twice is an invariant violation")
}

func TestSweepStatusRandomised(t *testing.T) {
	// Insert a pile of parallel segments in random order and check that
	// neighbor links agree with the true y order after every third one is
	// removed again.
	rng := rand.New(rand.NewSource(42))
	op := NewOperation(Union)

	var segments []*Segment
	for i := 0; i < 100; i++ {
		y := float64(i)
		segments = append(segments, testSegment(op, Point{0, y}, Point{10, y}))
	}

	status := newSweepStatus()
	for _, i := range rng.Perm(len(segments)) {
		status.insert(segments[i])
	}

	kept := make([]*Segment, 0, len(segments))
	for i, seg := range segments {
		if i%3 == 0 {
			status.remove(seg)
			continue
		}
		kept = append(kept, seg)
	}

	for i, seg := range kept {
		if i == 0 {
			assert.Nil(t, status.prev(seg))
		} else {
			require.Equal(t, kept[i-1], status.prev(seg), "prev of segment %d", i)
		}
		if i == len(kept)-1 {
			assert.Nil(t, status.next(seg))
		} else {
			require.Equal(t, kept[i+1], status.next(seg), "next of segment %d", i)
		}
	}
}
