package clip

import (
	"fmt"

	"github.com/osuushi/polybool/dbg"
)

// SweepEvent marks one endpoint of a segment. Whether it is the left or
// the right event is not stored; it is determined by which endpoint slot
// it occupies on its segment, which matters because splitting re-parents
// the right event of the split segment onto the new piece.
type SweepEvent struct {
	id      int
	point   Point
	segment *Segment
}

func (o *Operation) newSweepEvent(point Point, segment *Segment) *SweepEvent {
	return &SweepEvent{id: o.takeEventID(), point: point, segment: segment}
}

func (e *SweepEvent) isLeft() bool {
	return e == e.segment.leftSE
}

func (e *SweepEvent) isRight() bool {
	return e == e.segment.rightSE
}

// otherSE gives the event at the opposite endpoint of the same segment.
func (e *SweepEvent) otherSE() *SweepEvent {
	if e == e.segment.leftSE {
		return e.segment.rightSE
	}
	if e == e.segment.rightSE {
		return e.segment.leftSE
	}
	fatalf("event at [%g, %g] is not an endpoint of its segment", e.point.X, e.point.Y)
	return nil
}

// compare orders events for the queue. Points go in sweep order. At equal
// points, right events go first so a segment closing there leaves the
// status before a segment opening there enters. Left events at the same
// point are ordered bottom-to-top by their segments' status order, which
// guarantees that when a segment goes active, everything below it at that
// point is already in the status and its prev link is the true neighbor.
// Remaining ties fall back to creation ids to keep the order total.
func (a *SweepEvent) compare(b *SweepEvent) int {
	if a == b {
		return 0
	}
	if c := comparePoints(a.point, b.point); c != 0 {
		return c
	}
	if a.isRight() != b.isRight() {
		if a.isRight() {
			return -1
		}
		return 1
	}
	if a.isLeft() && b.isLeft() {
		if c := a.segment.compare(b.segment); c != 0 {
			return c
		}
	}
	if a.id < b.id {
		return -1
	}
	if a.id > b.id {
		return 1
	}
	return 0
}

func (e *SweepEvent) String() string {
	side := "right"
	if e.isLeft() {
		side = "left"
	}
	return fmt.Sprintf("SweepEvent %s (%s of %s) at [%g, %g]",
		dbg.Name(e), side, dbg.Name(e.segment), e.point.X, e.point.Y)
}
