package clip

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders the operand filled even-odd, with every ring stroked, and
// cats the image to the terminal. Handy for eyeballing what an operand
// actually looks like after coercion.
func (mp MultiPolygon) dbgDraw(scale float64) {
	ctx, transform := dbgDrawContext(scale, mp.allPoints())

	ctx.SetFillRuleEvenOdd()
	ctx.SetLineWidth(2)
	for _, poly := range mp {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			x, y := transform(ring[0])
			ctx.MoveTo(x, y)
			for _, p := range ring[1:] {
				x, y := transform(p)
				ctx.LineTo(x, y)
			}
			ctx.ClosePath()
		}
	}
	ctx.SetRGB(0, 0.5, 0)
	ctx.FillPreserve()
	ctx.SetRGB(0, 1, 1)
	ctx.Stroke()

	ctx.SavePNG("/tmp/multipolygon.png")
	imgcat.CatFile("/tmp/multipolygon.png", os.Stdout)
}

// dbgDrawResult overlays the segments that survived the inclusion
// predicate on top of the full segment soup, so you can see exactly which
// edges the operation kept.
func (o *Operation) dbgDrawResult(scale float64) {
	var points []Point
	for _, seg := range o.segments {
		points = append(points, seg.leftSE.point, seg.rightSE.point)
	}
	ctx, transform := dbgDrawContext(scale, points)

	ctx.SetLineWidth(1)
	ctx.SetRGB(0.3, 0.3, 0.3)
	for _, seg := range o.segments {
		if seg.isInResult() {
			continue
		}
		x1, y1 := transform(seg.leftSE.point)
		x2, y2 := transform(seg.rightSE.point)
		ctx.DrawLine(x1, y1, x2, y2)
	}
	ctx.Stroke()

	ctx.SetLineWidth(3)
	ctx.SetRGB(1, 1, 0)
	for _, seg := range o.segments {
		if !seg.isInResult() {
			continue
		}
		x1, y1 := transform(seg.leftSE.point)
		x2, y2 := transform(seg.rightSE.point)
		ctx.DrawLine(x1, y1, x2, y2)
	}
	ctx.Stroke()

	ctx.SavePNG("/tmp/clip_result.png")
	imgcat.CatFile("/tmp/clip_result.png", os.Stdout)
}

func (mp MultiPolygon) allPoints() []Point {
	var points []Point
	for _, poly := range mp {
		for _, ring := range poly {
			points = append(points, ring...)
		}
	}
	return points
}

// dbgDrawContext sets up a black canvas sized to the points' bounds, with
// the origin flipped to the bottom left so the image matches the usual
// y-up mental picture of the plane.
func dbgDrawContext(scale float64, points []Point) (*gg.Context, func(Point) (float64, float64)) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	transform := func(p Point) (float64, float64) {
		x := dbgDrawPadding + scale*(p.X-minX)
		y := float64(height) - (dbgDrawPadding + scale*(p.Y-minY))
		return x, y
	}
	return ctx, transform
}
