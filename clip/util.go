package clip

import "math"

// Epsilon is the tolerance underlying every coordinate comparison in the
// engine, relative to the magnitudes involved. Raw == on floats would make
// the sweep oscillate on vertices that differ only by accumulated rounding,
// and on the points we synthesize at segment crossings.
const Epsilon = 1e-15

func flpEQ(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

func flpLT(a, b float64) bool {
	return a < b && !flpEQ(a, b)
}

func flpCompare(a, b float64) int {
	if flpEQ(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

type Point struct {
	X, Y float64
}

func arePointsEqual(a, b Point) bool {
	return flpEQ(a.X, b.X) && flpEQ(a.Y, b.Y)
}

// comparePoints orders points by x, breaking ties by y. This is the order
// the sweep line visits them in; "leftmost" always means least under it.
func comparePoints(a, b Point) int {
	if c := flpCompare(a.X, b.X); c != 0 {
		return c
	}
	return flpCompare(a.Y, b.Y)
}

func crossProduct(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// compareVectorAngles reports where point sits relative to the directed
// segment from base to end: positive above, zero on the line, negative
// below. The raw cross product scales with the vector lengths, so it goes
// through the tolerant compare rather than a direct sign check.
func compareVectorAngles(point, base, end Point) int {
	v1 := Point{end.X - base.X, end.Y - base.Y}
	v2 := Point{point.X - base.X, point.Y - base.Y}
	return flpCompare(crossProduct(v1, v2), 0)
}
