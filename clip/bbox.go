package clip

// Axis-aligned bounding box. A bbox may be collapsed to a segment or to a
// single point; the intersection logic in Segment.getIntersections depends
// on collapsed overlaps being representable.
type bbox struct {
	xmin, ymin, xmax, ymax float64
}

func newBbox(a, b Point) bbox {
	box := bbox{a.X, a.Y, a.X, a.Y}
	return box.extend(b)
}

func (b bbox) extend(p Point) bbox {
	if p.X < b.xmin {
		b.xmin = p.X
	}
	if p.X > b.xmax {
		b.xmax = p.X
	}
	if p.Y < b.ymin {
		b.ymin = p.Y
	}
	if p.Y > b.ymax {
		b.ymax = p.Y
	}
	return b
}

func (b bbox) contains(p Point) bool {
	return !flpLT(p.X, b.xmin) && !flpLT(b.xmax, p.X) &&
		!flpLT(p.Y, b.ymin) && !flpLT(b.ymax, p.Y)
}

// overlap returns the shared region of two bboxes, and false if they don't
// touch at all. Touching counts: the overlap of two boxes sharing only an
// edge or corner is a collapsed box, which is exactly what the endpoint
// snapping in the intersection code needs to see.
func (b bbox) overlap(other bbox) (bbox, bool) {
	if flpLT(b.xmax, other.xmin) || flpLT(other.xmax, b.xmin) ||
		flpLT(b.ymax, other.ymin) || flpLT(other.ymax, b.ymin) {
		return bbox{}, false
	}
	ov := bbox{
		xmin: maxf(b.xmin, other.xmin),
		ymin: maxf(b.ymin, other.ymin),
		xmax: minf(b.xmax, other.xmax),
		ymax: minf(b.ymax, other.ymax),
	}
	// Tolerant comparisons can leave an overlap inverted by less than
	// epsilon; collapse it so downstream code sees a well-formed box.
	if ov.xmax < ov.xmin {
		ov.xmin, ov.xmax = ov.xmax, ov.xmin
	}
	if ov.ymax < ov.ymin {
		ov.ymin, ov.ymax = ov.ymax, ov.ymin
	}
	return ov, true
}

// corners lists the distinct corners of the bbox: four in general, two for
// a box collapsed in one dimension, one for a point.
func (b bbox) corners() []Point {
	flatX := flpEQ(b.xmin, b.xmax)
	flatY := flpEQ(b.ymin, b.ymax)
	if flatX && flatY {
		return []Point{{b.xmin, b.ymin}}
	}
	if flatX {
		return []Point{{b.xmin, b.ymin}, {b.xmin, b.ymax}}
	}
	if flatY {
		return []Point{{b.xmin, b.ymin}, {b.xmax, b.ymin}}
	}
	return []Point{
		{b.xmin, b.ymin},
		{b.xmin, b.ymax},
		{b.xmax, b.ymin},
		{b.xmax, b.ymax},
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
