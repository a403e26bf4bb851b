package clip

import "sort"

// Output assembly. The segments that survived the inclusion predicate form
// the boundary of the result; here they are walked into closed simple
// rings, the rings are nested into polys, and the polys are emitted as a
// MultiPolygon with counterclockwise exteriors and clockwise holes.

type ringOut struct {
	// One event per traversed segment, in walk order. Each event sits at
	// the point where the walk entered its segment, so collecting the
	// event points yields the ring's vertices.
	events []*SweepEvent

	enclosingKnown bool
	enclosing      *ringOut
	exteriorKnown  bool
	exterior       bool
}

type polyOut struct {
	exterior  *ringOut
	interiors []*ringOut
}

// stitchRings walks every in-result segment into a ring. Walks are seeded
// leftmost-first so ring discovery order is reproducible.
func stitchRings(segments []*Segment) []*ringOut {
	var inResult []*Segment
	for _, seg := range segments {
		if seg.isInResult() {
			inResult = append(inResult, seg)
		}
	}
	sort.Slice(inResult, func(i, j int) bool {
		if c := comparePoints(inResult[i].leftSE.point, inResult[j].leftSE.point); c != 0 {
			return c < 0
		}
		return inResult[i].id < inResult[j].id
	})

	linked := linkEventsByPoint(inResult)

	var rings []*ringOut
	for _, seed := range inResult {
		if seed.ringOut != nil {
			continue
		}
		rings = append(rings, walkRing(seed, linked))
	}
	return rings
}

// linkEventsByPoint groups the endpoint events of the in-result segments
// by tolerantly-equal position, so the ring walk can see every segment
// available at a junction.
func linkEventsByPoint(segments []*Segment) map[*SweepEvent][]*SweepEvent {
	events := make([]*SweepEvent, 0, len(segments)*2)
	for _, seg := range segments {
		events = append(events, seg.leftSE, seg.rightSE)
	}
	sort.Slice(events, func(i, j int) bool {
		if c := comparePoints(events[i].point, events[j].point); c != 0 {
			return c < 0
		}
		return events[i].id < events[j].id
	})

	linked := make(map[*SweepEvent][]*SweepEvent, len(events))
	for start := 0; start < len(events); {
		end := start + 1
		for end < len(events) && arePointsEqual(events[start].point, events[end].point) {
			end++
		}
		group := events[start:end]
		for _, e := range group {
			linked[e] = group
		}
		start = end
	}
	return linked
}

func walkRing(seed *Segment, linked map[*SweepEvent][]*SweepEvent) *ringOut {
	ring := &ringOut{}
	start := seed.leftSE
	current := start
	for {
		current.segment.registerRingOut(ring)
		ring.events = append(ring.events, current)
		end := current.otherSE()
		if arePointsEqual(end.point, start.point) {
			break
		}
		next := nextRingEvent(current, end, linked[end])
		if next == nil {
			fatalf("unable to complete output ring: dead end at [%g, %g]",
				end.point.X, end.point.Y)
		}
		current = next
	}
	if len(ring.events) < 3 {
		fatalf("output ring is degenerate: only %d segments", len(ring.events))
	}
	return ring
}

// nextRingEvent picks the segment the walk continues on from a junction:
// the unclaimed in-result segment whose direction is the smallest
// clockwise rotation away from the direction back along the segment we
// arrived on. Always taking the sharpest turn back pinches the walk off at
// self-touching junctions, so figure-eights come out as separate rings.
func nextRingEvent(current, end *SweepEvent, candidates []*SweepEvent) *SweepEvent {
	back := Point{
		current.point.X - end.point.X,
		current.point.Y - end.point.Y,
	}
	var best *SweepEvent
	var bestDir Point
	bestRank := -1
	for _, candidate := range candidates {
		if !candidate.segment.isInResult() || candidate.segment.ringOut != nil {
			continue
		}
		dir := Point{
			candidate.otherSE().point.X - end.point.X,
			candidate.otherSE().point.Y - end.point.Y,
		}
		rank := turnRank(back, dir)
		better := false
		if best == nil || rank < bestRank {
			better = true
		} else if rank == bestRank && (rank == 0 || rank == 2) {
			better = flpCompare(crossProduct(dir, bestDir), 0) < 0
		}
		if better {
			best = candidate
			bestDir = dir
			bestRank = rank
		}
	}
	return best
}

// turnRank buckets an outgoing direction by how far clockwise it sits from
// the reference direction: 0 for the clockwise half-plane, 1 for straight
// across, 2 for the counterclockwise half-plane, 3 for doubling back along
// the reference itself. Within buckets 0 and 2, a negative cross product
// between two candidates means the first is reached sooner going
// clockwise.
func turnRank(ref, dir Point) int {
	switch flpCompare(crossProduct(ref, dir), 0) {
	case -1:
		return 0
	case 1:
		return 2
	}
	if ref.X*dir.X+ref.Y*dir.Y < 0 {
		return 1
	}
	return 3
}

// leftmostEvent returns an event at the ring's leftmost vertex, on the lower
// of the two ring segments that meet there.
func (r *ringOut) leftmostEvent() *SweepEvent {
	i := 0
	for j, e := range r.events {
		if comparePoints(e.point, r.events[i].point) < 0 {
			i = j
		}
	}
	leftmost := r.events[i]
	// The walk arrived at this vertex on the previous segment; scanning down
	// from the upper of the two would find this ring's own lower segment.
	arrived := r.events[(i+len(r.events)-1)%len(r.events)].otherSE()
	if arrived.segment.compare(leftmost.segment) < 0 {
		return arrived
	}
	return leftmost
}

func (r *ringOut) enclosingRing() *ringOut {
	if !r.enclosingKnown {
		r.enclosing = r.calcEnclosingRing()
		r.enclosingKnown = true
	}
	return r.enclosing
}

// calcEnclosingRing finds the ring most immediately containing this one,
// by scanning down from the ring's leftmost point through the in-result
// segments below it. Passing two segments of one ring means that ring lies
// entirely below us, so the scan continues past it.
func (r *ringOut) calcEnclosingRing() *ringOut {
	prevSeg := r.leftmostEvent().segment.prevInResult()
	var prevPrevSeg *Segment
	if prevSeg != nil {
		prevPrevSeg = prevSeg.prevInResult()
	}

	for {
		if prevSeg == nil {
			return nil
		}
		if prevPrevSeg == nil {
			return prevSeg.ringOut
		}
		if prevPrevSeg.ringOut != prevSeg.ringOut {
			if prevPrevSeg.ringOut.enclosingRing() != prevSeg.ringOut {
				return prevSeg.ringOut
			}
			return prevSeg.ringOut.enclosingRing()
		}
		prevSeg = prevPrevSeg.prevInResult()
		prevPrevSeg = nil
		if prevSeg != nil {
			prevPrevSeg = prevSeg.prevInResult()
		}
	}
}

func (r *ringOut) isExteriorRing() bool {
	if !r.exteriorKnown {
		enclosing := r.enclosingRing()
		r.exterior = enclosing == nil || !enclosing.isExteriorRing()
		r.exteriorKnown = true
	}
	return r.exterior
}

// ringPoints emits the ring's vertices, oriented as requested and closed
// with a repeat of the first vertex.
func (r *ringOut) ringPoints(wantCCW bool) Ring {
	points := make(Ring, 0, len(r.events)+1)
	for _, e := range r.events {
		points = append(points, e.point)
	}
	if (signedArea(points) > 0) != wantCCW {
		reversed := make(Ring, 0, len(points)+1)
		reversed = append(reversed, points[0])
		for i := len(points) - 1; i >= 1; i-- {
			reversed = append(reversed, points[i])
		}
		points = reversed
	}
	return append(points, points[0])
}

func signedArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// assemblePolys nests the stitched rings: every exterior ring starts a
// poly, every hole attaches to the ring enclosing it.
func assemblePolys(rings []*ringOut) MultiPolygon {
	polyFor := make(map[*ringOut]*polyOut)
	var polys []*polyOut
	for _, ring := range rings {
		if ring.isExteriorRing() {
			poly := &polyOut{exterior: ring}
			polyFor[ring] = poly
			polys = append(polys, poly)
		}
	}
	for _, ring := range rings {
		if ring.isExteriorRing() {
			continue
		}
		shell := polyFor[ring.enclosingRing()]
		if shell == nil {
			fatalf("hole ring has no enclosing exterior ring")
		}
		shell.interiors = append(shell.interiors, ring)
	}

	result := make(MultiPolygon, 0, len(polys))
	for _, poly := range polys {
		geom := Polygon{poly.exterior.ringPoints(true)}
		for _, hole := range poly.interiors {
			geom = append(geom, hole.ringPoints(false))
		}
		result = append(result, geom)
	}
	return result
}
