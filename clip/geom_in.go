package clip

// Input geometry, in the shape the public API accepts. A Ring is a closed
// sequence of vertices; repeating the first point at the end is optional.
// The first ring of a Polygon is its outer boundary, the rest are holes.
type Ring []Point
type Polygon []Ring
type MultiPolygon []Polygon

// The interned input model the sweep works against. Rings, polys and
// multipolys are built once from the input geometry and never change; the
// ring ids are the deterministic tie-breakers used all over the engine.

type ringIn struct {
	id       int
	points   []Point
	poly     *polyIn
	exterior bool
}

type polyIn struct {
	exterior  *ringIn
	interiors []*ringIn
	multiPoly *multiPolyIn
}

type multiPolyIn struct {
	polys     []*polyIn
	isSubject bool
}

// addMultiPolygon interns one operand. Rings are cleaned on the way in:
// the closing duplicate vertex and runs of tolerantly-equal consecutive
// vertices are dropped. A ring left with fewer than three distinct points
// has no interior and is skipped entirely.
func (o *Operation) addMultiPolygon(geom MultiPolygon, isSubject bool) *multiPolyIn {
	mp := &multiPolyIn{isSubject: isSubject}
	for _, polygon := range geom {
		if len(polygon) == 0 {
			continue
		}
		poly := &polyIn{multiPoly: mp}
		for i, ring := range polygon {
			points := cleanRingPoints(ring)
			if len(points) < 3 {
				continue
			}
			r := &ringIn{
				id:       o.takeRingID(),
				points:   points,
				poly:     poly,
				exterior: i == 0,
			}
			if r.exterior {
				poly.exterior = r
			} else {
				poly.interiors = append(poly.interiors, r)
			}
		}
		// A polygon whose outer ring was degenerate contributes nothing.
		if poly.exterior == nil {
			continue
		}
		mp.polys = append(mp.polys, poly)
	}
	o.multiPolys = append(o.multiPolys, mp)
	if isSubject {
		o.subject = mp
	}
	return mp
}

func cleanRingPoints(ring Ring) []Point {
	points := make([]Point, 0, len(ring))
	for _, p := range ring {
		if len(points) > 0 && arePointsEqual(points[len(points)-1], p) {
			continue
		}
		points = append(points, p)
	}
	// Drop the closing duplicate if the ring came in explicitly closed.
	for len(points) > 1 && arePointsEqual(points[0], points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	return points
}

func (p *polyIn) rings() []*ringIn {
	rings := make([]*ringIn, 0, len(p.interiors)+1)
	rings = append(rings, p.exterior)
	return append(rings, p.interiors...)
}

// isValid reports whether a segment of this ring actually bounds the
// ring's poly. ringsEntering and ringsExiting are the rings with an edge
// coincident on the segment, split by which side their interior lies on;
// ringsInsideOf are the rings the segment is strictly interior to.
func (r *ringIn) isValid(ringsEntering, ringsExiting, ringsInsideOf []*ringIn) bool {
	if r.exterior {
		// An exterior edge stops bounding its poly when the ring has
		// doubled back strictly inside itself, or wandered into one of the
		// poly's own holes.
		if ringListContains(ringsInsideOf, r) {
			return false
		}
		for _, hole := range r.poly.interiors {
			if ringListContains(ringsInsideOf, hole) {
				return false
			}
			// A hole running along this same edge with its interior on the
			// same side pinches the poly to zero width here.
			if ringListContains(ringsEntering, hole) && ringListContains(ringsEntering, r) {
				return false
			}
			if ringListContains(ringsExiting, hole) && ringListContains(ringsExiting, r) {
				return false
			}
		}
		return true
	}

	// A hole only counts while it sits inside its exterior and isn't
	// swallowed by a sibling hole.
	if !ringListContains(ringsInsideOf, r.poly.exterior) {
		return false
	}
	for _, hole := range r.poly.interiors {
		if hole != r && ringListContains(ringsInsideOf, hole) {
			return false
		}
	}
	return true
}

// isInside decides whether a segment with the given edge and containment
// relationships is strictly interior to this poly. Running along one of the
// poly's own edges does not count as inside; that keeps an edge-adjacent
// segment from being attributed to both sides of the boundary.
func (p *polyIn) isInside(ringsOnEdgeOf, ringsInsideOf []*ringIn) bool {
	if !ringListContains(ringsInsideOf, p.exterior) {
		return false
	}
	for _, hole := range p.interiors {
		if ringListContains(ringsInsideOf, hole) {
			return false
		}
	}
	for _, ring := range p.rings() {
		if ringListContains(ringsOnEdgeOf, ring) {
			return false
		}
	}
	return true
}

func ringListContains(rings []*ringIn, target *ringIn) bool {
	for _, r := range rings {
		if r == target {
			return true
		}
	}
	return false
}

func appendRingUnique(rings []*ringIn, r *ringIn) []*ringIn {
	if ringListContains(rings, r) {
		return rings
	}
	return append(rings, r)
}
