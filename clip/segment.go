package clip

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polybool/dbg"
)

// Segment is an undirected edge of one input ring. Segments are created
// when the input rings are decomposed and again on every split; they are
// never destroyed while the sweep runs. The sweep fills in prev and the
// coincidence class; the classification chain then derives everything else
// from those.
type Segment struct {
	id     int
	op     *Operation
	ringIn *ringIn

	leftSE  *SweepEvent
	rightSE *SweepEvent

	// The segment immediately below this one in the status structure at
	// the moment this segment went active; nil if it entered at the bottom.
	prev *Segment

	// The segments sharing both endpoints with this one, self included.
	// Every member of a coincidence class holds the same list, so the
	// class stays an equivalence class however the pairs are discovered.
	coincidents []*Segment

	// Assigned by the stitcher once the segment lands in an output ring.
	ringOut *ringOut

	cache segmentCache
}

// The classification values that walk prev chains are memoised. Anything
// that changes prev or the coincidence class, and every split, resets the
// memos; nothing reads them until the sweep is over, so staleness can't
// leak through a chain.
type segmentCache struct {
	entersRingKnown   bool
	entersRing        bool
	insideOfKnown     bool
	insideOf          []*ringIn
	inResultKnown     bool
	inResult          bool
	prevInResultKnown bool
	prevInResult      *Segment
}

func (o *Operation) newSegment(a, b Point, ring *ringIn) *Segment {
	if arePointsEqual(a, b) {
		fatalf("cannot make segment with tolerantly equal endpoints [%g, %g] and [%g, %g]",
			a.X, a.Y, b.X, b.Y)
	}
	seg := &Segment{id: o.takeSegmentID(), op: o, ringIn: ring}
	first := o.newSweepEvent(a, seg)
	second := o.newSweepEvent(b, seg)
	if comparePoints(a, b) < 0 {
		seg.leftSE, seg.rightSE = first, second
	} else {
		seg.leftSE, seg.rightSE = second, first
	}
	seg.coincidents = []*Segment{seg}
	o.segments = append(o.segments, seg)
	return seg
}

func (s *Segment) points() [2]Point {
	return [2]Point{s.leftSE.point, s.rightSE.point}
}

func (s *Segment) bbox() bbox {
	return newBbox(s.leftSE.point, s.rightSE.point)
}

func (s *Segment) vector() Point {
	return Point{
		s.rightSE.point.X - s.leftSE.point.X,
		s.rightSE.point.Y - s.leftSE.point.Y,
	}
}

func (s *Segment) isVertical() bool {
	return flpEQ(s.leftSE.point.X, s.rightSE.point.X)
}

func (s *Segment) isPointOn(p Point) bool {
	return s.bbox().contains(p) && compareVectorAngles(p, s.leftSE.point, s.rightSE.point) == 0
}

func (s *Segment) isColinearWith(other *Segment) bool {
	for _, p := range other.points() {
		if compareVectorAngles(p, s.leftSE.point, s.rightSE.point) != 0 {
			return false
		}
	}
	return true
}

func (s *Segment) isCoincidentWith(other *Segment) bool {
	return arePointsEqual(s.leftSE.point, other.leftSE.point) &&
		arePointsEqual(s.rightSE.point, other.rightSE.point)
}

// Strictly above / strictly below; a point on the segment is neither.
func (s *Segment) isPointAbove(p Point) bool {
	return compareVectorAngles(p, s.leftSE.point, s.rightSE.point) > 0
}

func (s *Segment) isPointBelow(p Point) bool {
	return compareVectorAngles(p, s.leftSE.point, s.rightSE.point) < 0
}

// compare defines the bottom-to-top order of segments in the sweep status.
// It has to stay stable for any two segments for as long as both are
// active; splitting is arranged so the surviving left pieces keep their
// order relative to their neighbors.
func (a *Segment) compare(b *Segment) int {
	if a == b {
		return 0
	}

	// Segments whose x ranges don't overlap are never active together;
	// order them out of the way.
	if flpLT(a.rightSE.point.X, b.leftSE.point.X) {
		return 1
	}
	if flpLT(b.rightSE.point.X, a.leftSE.point.X) {
		return -1
	}

	if a.isColinearWith(b) {
		// Colinear segments order by where they start, then by ring.
		// Length is useless as a tie-breaker: it changes on split.
		if c := comparePoints(a.leftSE.point, b.leftSE.point); c != 0 {
			return c
		}
		if a.ringIn.id != b.ringIn.id {
			return intCompare(a.ringIn.id, b.ringIn.id)
		}
		return intCompare(a.id, b.id)
	}

	aLeft, bLeft := a.leftSE.point, b.leftSE.point
	if arePointsEqual(aLeft, bLeft) {
		// Shared left endpoint: the segment angling further downward sits
		// lower. Not colinear, so b's right endpoint is strictly off a.
		if a.isPointBelow(b.rightSE.point) {
			return 1
		}
		return -1
	}

	// Distinct left endpoints on the same vertical: lower starts lower.
	if flpEQ(aLeft.X, bLeft.X) {
		if aLeft.Y < bLeft.Y {
			return -1
		}
		return 1
	}

	// General case: compare at the rightmore of the two left endpoints.
	// Whichever segment passes lower at that x is lower in the status. If
	// the rightmore left endpoint sits exactly on the other segment, the
	// tie is broken by where its segment heads from there.
	if flpLT(aLeft.X, bLeft.X) {
		switch compareVectorAngles(bLeft, aLeft, a.rightSE.point) {
		case 1:
			return -1
		case -1:
			return 1
		}
		if a.isPointBelow(b.rightSE.point) {
			return 1
		}
		if a.isPointAbove(b.rightSE.point) {
			return -1
		}
	} else {
		switch compareVectorAngles(aLeft, bLeft, b.rightSE.point) {
		case 1:
			return 1
		case -1:
			return -1
		}
		if b.isPointBelow(a.rightSE.point) {
			return -1
		}
		if b.isPointAbove(a.rightSE.point) {
			return 1
		}
	}

	fatalf("internal ordering failure between %s and %s", a, b)
	return 0
}

// getIntersections returns the points where the two segments meet: none,
// one, or two (for colinear overlap), in sweep order. Intersections at
// existing endpoints report the endpoint itself, never a recomputed value,
// so no new point is synthesized there.
func (s *Segment) getIntersections(other *Segment) []Point {
	ov, ok := s.bbox().overlap(other.bbox())
	if !ok {
		return nil
	}

	// Check the corners of the bbox overlap first. A corner that is an
	// endpoint of one segment and lies on the other covers colinear
	// overlaps, T-intersections at endpoints, shared endpoints, and boxes
	// collapsed to a segment or point, all without rounding.
	var points []Point
	addPoint := func(p Point) {
		for _, q := range points {
			if arePointsEqual(p, q) {
				return
			}
		}
		points = append(points, p)
	}
	for _, corner := range ov.corners() {
		for _, p := range s.points() {
			if arePointsEqual(corner, p) && other.isPointOn(p) {
				addPoint(p)
			}
		}
		for _, p := range other.points() {
			if arePointsEqual(corner, p) && s.isPointOn(p) {
				addPoint(p)
			}
		}
	}
	if len(points) > 0 {
		if len(points) == 2 && comparePoints(points[0], points[1]) > 0 {
			points[0], points[1] = points[1], points[0]
		}
		return points
	}

	// General case: parameterise each segment and solve for where the
	// parameters meet (Schneider & Eberly).
	a1 := s.leftSE.point
	va := s.vector()
	b1 := other.leftSE.point
	vb := other.vector()
	d := Point{b1.X - a1.X, b1.Y - a1.Y}
	kross := crossProduct(va, vb)
	if flpCompare(kross, 0) == 0 {
		// Parallel and no endpoint contact.
		return nil
	}

	sParam := crossProduct(d, vb) / kross
	tParam := crossProduct(d, va) / kross
	if flpLT(sParam, 0) || flpLT(1, sParam) || flpLT(tParam, 0) || flpLT(1, tParam) {
		return nil
	}

	// Each parameterisation gives a slightly different point; their
	// midpoint is marginally more stable than either alone.
	p1 := Point{a1.X + sParam*va.X, a1.Y + sParam*va.Y}
	p2 := Point{b1.X + tParam*vb.X, b1.Y + tParam*vb.Y}
	return []Point{{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}}
}

// split cuts the segment at each of the given interior points, mutating
// this segment into the leftmost piece and creating a new segment for the
// rest. The old right event migrates onto the new piece so anything
// already queued keeps pointing at a live endpoint; the two events created
// at the split point are returned for the caller to queue.
//
// Splitting silently breaks any coincidence relationship this segment had:
// the sweep driver is responsible for splitting whole coincidence classes
// together so that never actually happens.
func (s *Segment) split(points []Point) []*SweepEvent {
	points = sortUniquePoints(points)
	p := points[0]
	for _, endpoint := range s.points() {
		if arePointsEqual(p, endpoint) {
			fatalf("cannot split segment on its own endpoint [%g, %g]", p.X, p.Y)
		}
	}

	newSeg := &Segment{id: s.op.takeSegmentID(), op: s.op, ringIn: s.ringIn}
	newSeg.coincidents = []*Segment{newSeg}
	newSeg.rightSE = s.rightSE
	newSeg.rightSE.segment = newSeg
	newSeg.leftSE = s.op.newSweepEvent(p, newSeg)
	s.rightSE = s.op.newSweepEvent(p, s)
	s.op.segments = append(s.op.segments, newSeg)
	s.clearCache()

	events := []*SweepEvent{s.rightSE, newSeg.leftSE}
	if len(points) > 1 {
		events = append(events, newSeg.split(points[1:])...)
	}
	return events
}

func sortUniquePoints(points []Point) []Point {
	sorted := make([]Point, 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, q := range sorted {
			if arePointsEqual(p, q) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			sorted = append(sorted, p)
		}
	}
	// Insertion sort; split point lists are tiny.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && comparePoints(sorted[j-1], sorted[j]) > 0; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

func (s *Segment) registerPrev(other *Segment) {
	s.prev = other
	s.clearCache()
}

// registerCoincidence merges the two segments' coincidence classes into
// one shared list, ordered by ring then segment id so the winner choice is
// reproducible.
func (s *Segment) registerCoincidence(other *Segment) {
	if s.inSameCoincidenceClass(other) {
		return
	}
	merged := make([]*Segment, 0, len(s.coincidents)+len(other.coincidents))
	merged = append(merged, s.coincidents...)
	merged = append(merged, other.coincidents...)
	for i := 1; i < len(merged); i++ {
		for j := i; j > 0 && coincidentBefore(merged[j], merged[j-1]); j-- {
			merged[j-1], merged[j] = merged[j], merged[j-1]
		}
	}
	for _, member := range merged {
		member.coincidents = merged
		member.clearCache()
	}
}

func coincidentBefore(a, b *Segment) bool {
	if a.ringIn.id != b.ringIn.id {
		return a.ringIn.id < b.ringIn.id
	}
	return a.id < b.id
}

func (s *Segment) inSameCoincidenceClass(other *Segment) bool {
	for _, member := range s.coincidents {
		if member == other {
			return true
		}
	}
	return false
}

func (s *Segment) registerRingOut(ring *ringOut) {
	s.ringOut = ring
}

func (s *Segment) clearCache() {
	s.cache = segmentCache{}
}

// --- classification -----------------------------------------------------
//
// Everything below is derived after the sweep is done, by walking prev
// chains downward through what the status structure looked like when each
// segment went active. Successive boundary crossings of a single ring
// alternate between entering and exiting it; that alternation is the seed
// every other value grows from.

// sweepLineEntersRing: crossing this segment upward, does the sweep line
// pass into ringIn's interior?
func (s *Segment) sweepLineEntersRing() bool {
	if !s.cache.entersRingKnown {
		prev := s.prev
		for prev != nil && prev.ringIn != s.ringIn {
			prev = prev.prev
		}
		s.cache.entersRing = prev == nil || !prev.sweepLineEntersRing()
		s.cache.entersRingKnown = true
	}
	return s.cache.entersRing
}

// ringsOnEdgeOf: the rings with an edge lying on this segment.
func (s *Segment) ringsOnEdgeOf() []*ringIn {
	rings := make([]*ringIn, 0, len(s.coincidents))
	for _, c := range s.coincidents {
		rings = appendRingUnique(rings, c.ringIn)
	}
	return rings
}

// ringsEntering / ringsExiting: the coincident rings partitioned by which
// side of the segment their interior lies on.
func (s *Segment) ringsEntering() []*ringIn {
	var rings []*ringIn
	for _, c := range s.coincidents {
		if c.sweepLineEntersRing() {
			rings = appendRingUnique(rings, c.ringIn)
		}
	}
	return rings
}

func (s *Segment) ringsExiting() []*ringIn {
	var rings []*ringIn
	for _, c := range s.coincidents {
		if !c.sweepLineEntersRing() {
			rings = appendRingUnique(rings, c.ringIn)
		}
	}
	return rings
}

// ringsInsideOf: the rings this segment is strictly interior to.
// Inherited from the segment below, shifted by the rings whose boundary
// that segment's edge crosses, except when that segment is one of our own
// coincidents, in which case the answer carries over untouched.
func (s *Segment) ringsInsideOf() []*ringIn {
	if !s.cache.insideOfKnown {
		var rings []*ringIn
		if s.prev != nil {
			if s.inSameCoincidenceClass(s.prev) {
				rings = s.prev.ringsInsideOf()
			} else {
				rings = make([]*ringIn, 0, len(s.prev.ringsInsideOf()))
				rings = append(rings, s.prev.ringsInsideOf()...)
				for _, r := range s.prev.ringsEntering() {
					rings = appendRingUnique(rings, r)
				}
				rings = subtractRings(rings, s.prev.ringsExiting())
				rings = subtractRings(rings, s.ringsOnEdgeOf())
			}
		}
		s.cache.insideOf = rings
		s.cache.insideOfKnown = true
	}
	return s.cache.insideOf
}

func subtractRings(rings, remove []*ringIn) []*ringIn {
	kept := rings[:0:len(rings)]
	for _, r := range rings {
		if !ringListContains(remove, r) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (s *Segment) isValidEdgeForPoly() bool {
	return s.ringIn.isValid(s.ringsEntering(), s.ringsExiting(), s.ringsInsideOf())
}

// sweepLineEntersPoly / sweepLineExitsPoly: crossing this segment upward,
// does the sweep line pass into / out of the segment's poly? Only edges
// that actually bound their poly answer true to either.
func (s *Segment) sweepLineEntersPoly() bool {
	if !s.isValidEdgeForPoly() {
		return false
	}
	if s.ringIn.exterior {
		return s.sweepLineEntersRing()
	}
	// Entering a hole means leaving the poly, and vice versa.
	return !s.sweepLineEntersRing()
}

func (s *Segment) sweepLineExitsPoly() bool {
	if !s.isValidEdgeForPoly() {
		return false
	}
	return !s.sweepLineEntersPoly()
}

// polysInsideOf: the polys this segment is strictly interior to.
func (s *Segment) polysInsideOf() []*polyIn {
	insideOf := s.ringsInsideOf()
	onEdge := s.ringsOnEdgeOf()
	var polys []*polyIn
	for _, r := range insideOf {
		if polyListContains(polys, r.poly) {
			continue
		}
		if r.poly.isInside(onEdge, insideOf) {
			polys = append(polys, r.poly)
		}
	}
	return polys
}

func polyListContains(polys []*polyIn, target *polyIn) bool {
	for _, p := range polys {
		if p == target {
			return true
		}
	}
	return false
}

func (s *Segment) multiPolysInsideOf() []*multiPolyIn {
	var mps []*multiPolyIn
	for _, p := range s.polysInsideOf() {
		mps = appendMultiPolyUnique(mps, p.multiPoly)
	}
	return mps
}

// multiPolysSLPEnters / multiPolysSLPExits: the multipolys whose interiors
// lie immediately above / immediately below this segment. A multipoly the
// segment is strictly inside is on both sides.
func (s *Segment) multiPolysSLPEnters() []*multiPolyIn {
	mps := s.multiPolysInsideOf()
	for _, c := range s.coincidents {
		if c.sweepLineEntersPoly() {
			mps = appendMultiPolyUnique(mps, c.ringIn.poly.multiPoly)
		}
	}
	return mps
}

func (s *Segment) multiPolysSLPExits() []*multiPolyIn {
	mps := s.multiPolysInsideOf()
	for _, c := range s.coincidents {
		if c.sweepLineExitsPoly() {
			mps = appendMultiPolyUnique(mps, c.ringIn.poly.multiPoly)
		}
	}
	return mps
}

func appendMultiPolyUnique(mps []*multiPolyIn, mp *multiPolyIn) []*multiPolyIn {
	for _, existing := range mps {
		if existing == mp {
			return mps
		}
	}
	return append(mps, mp)
}

// isCoincidenceWinner: exactly one member of each coincidence class may
// contribute to the result; ties go to the earliest input ring.
func (s *Segment) isCoincidenceWinner() bool {
	for _, c := range s.coincidents {
		if c != s && coincidentBefore(c, s) {
			return false
		}
	}
	return true
}

// isInResult: does this segment survive into the output?
func (s *Segment) isInResult() bool {
	if !s.cache.inResultKnown {
		s.cache.inResult = s.isCoincidenceWinner() &&
			s.op.includeInResult(s.multiPolysSLPEnters(), s.multiPolysSLPExits())
		s.cache.inResultKnown = true
	}
	return s.cache.inResult
}

// prevInResult: the nearest segment below this one that made the result.
func (s *Segment) prevInResult() *Segment {
	if !s.cache.prevInResultKnown {
		prev := s.prev
		for prev != nil && !prev.isInResult() {
			prev = prev.prev
		}
		s.cache.prevInResult = prev
		s.cache.prevInResultKnown = true
	}
	return s.cache.prevInResult
}

func (s *Segment) String() string {
	name := dbg.Name(s)
	extras := []string{fmt.Sprintf("ring %d", s.ringIn.id)}
	if len(s.coincidents) > 1 {
		name = aurora.Yellow(name).String()
		members := make([]interface{}, len(s.coincidents))
		for i, c := range s.coincidents {
			members[i] = c
		}
		extras = append(extras, "coincident "+dbg.Names(members...))
	}
	if s.isVertical() {
		extras = append(extras, "vertical")
	}
	return fmt.Sprintf("Segment %s [%g, %g] -> [%g, %g] (%s)",
		name,
		s.leftSE.point.X, s.leftSE.point.Y,
		s.rightSE.point.X, s.rightSE.point.Y,
		strings.Join(extras, ", "),
	)
}

func intCompare(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
