package clip

// The sweep pass. Events are processed left to right; every time two
// segments become neighbors in the status structure they are checked
// against each other, split at any crossing, and merged into a coincidence
// class if they cover the same span. When the queue drains, every segment
// carries the prev link and coincidence class the classification chain
// needs; no geometry changes after that.

// baseSegments decomposes every input ring into segments between
// consecutive vertices. The ring points were cleaned on the way in, so no
// pair of consecutive vertices is tolerantly equal.
func (o *Operation) baseSegments() {
	for _, mp := range o.multiPolys {
		for _, poly := range mp.polys {
			for _, ring := range poly.rings() {
				for i, point := range ring.points {
					next := ring.points[(i+1)%len(ring.points)]
					o.newSegment(point, next, ring)
				}
			}
		}
	}
}

func (o *Operation) sweep() {
	queue := &eventQueue{}
	for _, seg := range o.segments {
		queue.push(seg.leftSE)
		queue.push(seg.rightSE)
	}

	status := newSweepStatus()
	for !queue.empty() {
		event := queue.pop()
		seg := event.segment

		if event.isLeft() {
			status.insert(seg)
			prev := status.prev(seg)
			next := status.next(seg)
			seg.registerPrev(prev)
			if prev != nil {
				o.handlePair(seg, prev, queue)
			}
			if next != nil {
				o.handlePair(seg, next, queue)
			}
			continue
		}

		// Right event: the segment goes inactive, and the segments that
		// were its neighbors meet each other for the first time.
		prev := status.prev(seg)
		next := status.next(seg)
		status.remove(seg)
		if prev != nil && next != nil {
			o.handlePair(prev, next, queue)
		}
	}
}

// handlePair examines a newly adjacent pair of active segments. Segments
// covering the same span merge into one coincidence class; otherwise each
// is split at any intersection point interior to it. An intersection at an
// existing endpoint triggers no split, which is what lets the sweep
// terminate: every split strictly shortens some segment, and the split
// points themselves are never re-split.
func (o *Operation) handlePair(seg, neighbor *Segment, queue *eventQueue) {
	intersections := seg.getIntersections(neighbor)
	if len(intersections) == 0 {
		return
	}
	if seg.isCoincidentWith(neighbor) {
		seg.registerCoincidence(neighbor)
		return
	}
	o.splitOnPoints(seg, intersections, queue)
	o.splitOnPoints(neighbor, intersections, queue)

	// Splitting a partial overlap can leave the two surviving left pieces
	// covering the same span; they are still neighbors, so this is the
	// only chance to record that.
	if seg.isCoincidentWith(neighbor) {
		seg.registerCoincidence(neighbor)
	}
}

// splitOnPoints splits a segment, and every member of its coincidence
// class with it, at the given points (skipping points on endpoints).
// Splitting the whole class together keeps the surviving left pieces
// mutually coincident; the right pieces rediscover each other when their
// left events are processed.
func (o *Operation) splitOnPoints(seg *Segment, points []Point, queue *eventQueue) {
	members := make([]*Segment, len(seg.coincidents))
	copy(members, seg.coincidents)
	for _, member := range members {
		interior := member.interiorPoints(points)
		if len(interior) == 0 {
			continue
		}
		for _, event := range member.split(interior) {
			queue.push(event)
		}
	}
}

// interiorPoints filters out points that are tolerantly equal to one of
// the segment's endpoints.
func (s *Segment) interiorPoints(points []Point) []Point {
	var interior []Point
	for _, p := range points {
		onEndpoint := false
		for _, endpoint := range s.points() {
			if arePointsEqual(p, endpoint) {
				onEndpoint = true
				break
			}
		}
		if !onEndpoint {
			interior = append(interior, p)
		}
	}
	return interior
}
