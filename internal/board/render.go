package board

import (
	"image/color"
	"math"
)

// Render paints a complete dartboard face onto s.
//
// The first pass draws the four sector bands of every segment in angular
// order, outer band first, so each inner band covers the stroke seam of the
// band outside it. The second pass paints the two bull circles once; they do
// not depend on the segment and must end up above every band.
func Render(s Surface) {
	for index := 0; index < SegmentCount; index++ {
		renderSegment(s, index)
	}
	renderBulls(s)
}

func renderSegment(s Surface, index int) {
	start, end := SegmentAngles(index)
	for _, band := range Bands() {
		sector(s, band.Radius(), start, end, SegmentColor(band, index))
	}
}

func renderBulls(s Surface) {
	disc(s, OuterBull, ColorOuterBull)
	disc(s, InnerBull, ColorInnerBull)
}

// sector draws a closed wedge from the centre out to radius.
func sector(s Surface, radius, start, end float64, fill color.Color) {
	cx, cy := Center()
	s.SetStrokeColor(ColorLine)
	s.SetFillColor(fill)
	s.BeginPath()
	s.MoveTo(cx, cy)
	s.Arc(cx, cy, radius, start, end, false)
	s.ClosePath()
	s.Fill()
	s.Stroke()
}

// disc draws a full circle around the centre.
func disc(s Surface, radius float64, fill color.Color) {
	cx, cy := Center()
	s.SetStrokeColor(ColorLine)
	s.SetFillColor(fill)
	s.BeginPath()
	s.Arc(cx, cy, radius, 0, 2*math.Pi, false)
	s.ClosePath()
	s.Fill()
	s.Stroke()
}
