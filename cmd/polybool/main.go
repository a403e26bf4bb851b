package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polybool"
)

// Demo of polygon boolean operations. Each input file holds one operand:
// newline separated points in the form "x y", with each ring separated by
// an extra newline. A counterclockwise ring starts a new polygon; a
// clockwise ring is a hole in the polygon before it.
//
// The result is printed as a polygon count line followed by each ring in the
// same "x y" format, every ring closed by repeating its first point. It can
// optionally be rendered to a PNG and displayed inline in the terminal.

var (
	opName = kingpin.Flag("op", "Operation to run: union, intersection, xor or difference.").
		Short('o').Default("union").Enum("union", "intersection", "xor", "difference")
	drawPath = kingpin.Flag("draw", "Render the result to this PNG file.").String()
	show     = kingpin.Flag("show", "Cat the rendered PNG to the terminal (implies --draw to a temp file).").Bool()
	scale    = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("10").Float64()
	files    = kingpin.Arg("files", "Operand files; the first is the subject.").Required().ExistingFiles()
)

func main() {
	kingpin.Parse()

	operands := make([]polybool.MultiPolygon, 0, len(*files))
	for _, path := range *files {
		operands = append(operands, readMultiPolygon(path))
	}

	var result polybool.MultiPolygon
	var err error
	switch *opName {
	case "union":
		result, err = polybool.Union(operands[0], operands[1:]...)
	case "intersection":
		result, err = polybool.Intersection(operands[0], operands[1:]...)
	case "xor":
		result, err = polybool.Xor(operands[0], operands[1:]...)
	case "difference":
		result, err = polybool.Difference(operands[0], operands[1:]...)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", *opName, err)
	}

	printMultiPolygon(result)

	if *drawPath != "" || *show {
		path := *drawPath
		if path == "" {
			path = "/tmp/polybool.png"
		}
		render(result, path, *scale)
		if *show {
			imgcat.CatFile(path, os.Stdout)
		}
	}
}

func readMultiPolygon(path string) polybool.MultiPolygon {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Could not open %q: %v", path, err)
	}
	defer file.Close()

	var result polybool.MultiPolygon
	addRing := func(ring polybool.Ring) {
		if len(ring) == 0 {
			return
		}
		// Clockwise rings are holes in the polygon before them.
		if ringArea(ring) < 0 && len(result) > 0 {
			result[len(result)-1] = append(result[len(result)-1], ring)
			return
		}
		result = append(result, polybool.Polygon{ring})
	}

	scanner := bufio.NewScanner(file)
	var ring polybool.Ring
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current ring
		if line == "" {
			addRing(ring)
			ring = nil
			continue
		}

		ring = append(ring, parsePoint(line))
	}
	addRing(ring)
	return result
}

func parsePoint(line string) polybool.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return polybool.Point{X: x, Y: y}
}

func ringArea(ring polybool.Ring) float64 {
	var area float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func printMultiPolygon(mp polybool.MultiPolygon) {
	fmt.Printf("%d polygons\n", len(mp))
	for _, poly := range mp {
		for _, ring := range poly {
			fmt.Println()
			for _, p := range ring {
				fmt.Printf("%g %g\n", p.X, p.Y)
			}
		}
	}
}

func render(mp polybool.MultiPolygon, path string, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range mp {
		for _, ring := range poly {
			for _, p := range ring {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if minX > maxX {
		log.Fatal("Nothing to render: the result is empty")
	}

	const padding = 20
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()
	ctx.SetFillRuleEvenOdd()

	for _, poly := range mp {
		for _, ring := range poly {
			ctx.MoveTo(padding+scale*(ring[0].X-minX), float64(height)-(padding+scale*(ring[0].Y-minY)))
			for _, p := range ring[1:] {
				ctx.LineTo(padding+scale*(p.X-minX), float64(height)-(padding+scale*(p.Y-minY)))
			}
			ctx.ClosePath()
		}
	}
	ctx.SetLineWidth(2)
	ctx.SetRGB(0, 0.5, 0)
	ctx.FillPreserve()
	ctx.SetRGB(0, 1, 1)
	ctx.Stroke()

	if err := ctx.SavePNG(path); err != nil {
		log.Fatalf("Could not write %q: %v", path, err)
	}
}
