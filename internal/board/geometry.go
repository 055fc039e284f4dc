package board

import (
	"math"

	"granboard.klederson.com/internal/config"
)

// SegmentCount is the number of angular wedges on a regulation board.
const SegmentCount = 20

var (
	// SegmentWidth is the angular width of one segment in radians.
	SegmentWidth = 2 * math.Pi / SegmentCount
	// SegmentOffset shifts segment 0 by half a width so that segment
	// boundaries, not centres, line up with the axes.
	SegmentOffset = SegmentWidth / 2
)

// Ring radii in surface units, outer to inner.
const (
	DoubleOuter      = 240.0
	SingleOuter      = 220.0 // also the inner edge of the double ring
	TripleOuter      = 140.0
	InnerSingleOuter = 120.0 // also the inner edge of the triple ring
	OuterBull        = 30.0
	InnerBull        = 10.0
)

// Center returns the board centre on the drawing surface.
func Center() (x, y float64) {
	return config.BoardCenter, config.BoardCenter
}

// Radii returns every ring radius ordered outer to inner.
func Radii() []float64 {
	return []float64{DoubleOuter, SingleOuter, TripleOuter, InnerSingleOuter, OuterBull, InnerBull}
}

// Band is one of the four per-segment sector bands.
type Band int

const (
	BandDouble Band = iota
	BandOuterSingle
	BandTriple
	BandInnerSingle
)

// Bands returns the per-segment bands in drawing order (outer to inner).
func Bands() []Band {
	return []Band{BandDouble, BandOuterSingle, BandTriple, BandInnerSingle}
}

func (b Band) String() string {
	switch b {
	case BandDouble:
		return "double"
	case BandOuterSingle:
		return "outer single"
	case BandTriple:
		return "triple"
	case BandInnerSingle:
		return "inner single"
	default:
		return "unknown"
	}
}

// Radius returns the outer radius the band's sector is drawn at.
func (b Band) Radius() float64 {
	switch b {
	case BandDouble:
		return DoubleOuter
	case BandOuterSingle:
		return SingleOuter
	case BandTriple:
		return TripleOuter
	case BandInnerSingle:
		return InnerSingleOuter
	default:
		return 0
	}
}

// scoring reports whether the band is a double or triple ring.
func (b Band) scoring() bool {
	return b == BandDouble || b == BandTriple
}

// SegmentAngles returns the start and end angle of segment index in radians.
// Angles follow the surface convention: 0 points along +x and positive
// angles turn clockwise on a y-down surface.
func SegmentAngles(index int) (start, end float64) {
	start = SegmentOffset + float64(index)*SegmentWidth
	return start, start + SegmentWidth
}

// SegmentCenter returns the angle halfway through segment index.
func SegmentCenter(index int) float64 {
	start, _ := SegmentAngles(index)
	return start + SegmentWidth/2
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// PointAt converts polar board coordinates to surface coordinates.
func PointAt(radius, angle float64) (x, y float64) {
	cx, cy := Center()
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}
