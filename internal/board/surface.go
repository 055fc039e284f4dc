package board

import "image/color"

// Surface is a 2-D drawing target with HTML canvas path semantics:
// BeginPath discards the current path, Arc continues from the current point
// with a straight line, and Fill and Stroke leave the path in place.
type Surface interface {
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	Arc(cx, cy, radius, start, end float64, counterclockwise bool)
	ClosePath()
	Fill()
	Stroke()
}
