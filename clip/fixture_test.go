package clip

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs rings. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever
// the first polygon is, then converts that into a CCW Ring. If anything
// goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Ring {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	ring := make(Ring, 0)
	for _, pair := range strings.Fields(pointString) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		ring = append(ring, Point{x, y})
	}

	// Ensure that the ring is CCW
	if signedArea(ring) < 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	return ring
}

func resultArea(mp MultiPolygon) float64 {
	var area float64
	for _, poly := range mp {
		for _, ring := range poly {
			// Holes are clockwise, so their negative area subtracts itself
			area += signedArea(ring[:len(ring)-1])
		}
	}
	return area
}

func TestFixtureOperations(t *testing.T) {
	squareRing := LoadFixture("square")
	offsetRing := LoadFixture("offset_square")
	chevronRing := LoadFixture("chevron")

	squareGeom := MultiPolygon{{squareRing}}
	offsetGeom := MultiPolygon{{offsetRing}}
	chevronGeom := MultiPolygon{{chevronRing}}

	t.Run("overlapping fixture squares", func(t *testing.T) {
		union := runOp(t, Union, squareGeom, offsetGeom)
		require.Len(t, union, 1)
		assert.InDelta(t, 175, resultArea(union), 1e-9)

		intersection := runOp(t, Intersection, squareGeom, offsetGeom)
		require.Len(t, intersection, 1)
		assert.InDelta(t, 25, resultArea(intersection), 1e-9)

		// Xor keeps the two pieces covered by exactly one operand: the
		// union minus the intersection
		xor := runOp(t, Xor, squareGeom, offsetGeom)
		assert.InDelta(t, 150, resultArea(xor), 1e-9)
	})

	t.Run("chevron against the square", func(t *testing.T) {
		// The chevron is non-convex; its notch reaches down into the
		// square's top edge
		intersection := runOp(t, Intersection, chevronGeom, squareGeom)
		difference := runOp(t, Difference, chevronGeom, squareGeom)

		chevronArea := signedArea(chevronRing)
		assert.InDelta(t, chevronArea,
			resultArea(intersection)+resultArea(difference), 1e-9)
	})
}
