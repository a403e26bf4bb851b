// Boolean operations on polygons for Go.
//
// This package computes union, intersection, difference and symmetric
// difference (xor) of multipolygons in the plane. Inputs may overlap, may
// self-intersect, and may carry degenerate vertices; outputs are
// canonicalised multipolygons whose rings are simple, closed, and oriented
// counterclockwise for exteriors and clockwise for holes.
package polybool

import "github.com/osuushi/polybool/clip"

type Point = clip.Point
type Ring = clip.Ring
type Polygon = clip.Polygon
type MultiPolygon = clip.MultiPolygon

// Union returns the region covered by at least one of the operands.
func Union(first MultiPolygon, more ...MultiPolygon) (MultiPolygon, error) {
	return run(clip.Union, first, more)
}

// Intersection returns the region covered by every operand.
func Intersection(first MultiPolygon, more ...MultiPolygon) (MultiPolygon, error) {
	return run(clip.Intersection, first, more)
}

// Xor returns the region covered by an odd number of operands.
func Xor(first MultiPolygon, more ...MultiPolygon) (MultiPolygon, error) {
	return run(clip.Xor, first, more)
}

// Difference returns the subject minus the union of the clippings.
func Difference(subject MultiPolygon, clippings ...MultiPolygon) (MultiPolygon, error) {
	return run(clip.Difference, subject, clippings)
}

func run(opType clip.OpType, subject MultiPolygon, clippings []MultiPolygon) (result MultiPolygon, err error) {
	defer func() {
		recoveredErr := clip.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	op := clip.NewOperation(opType)
	op.AddSubject(subject)
	for _, clipping := range clippings {
		op.AddClipping(clipping)
	}
	return op.Run(), nil
}
