// Package canvas provides drawing surfaces for the board renderer.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// Raster is an anti-aliased pixel surface with HTML canvas path semantics.
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Raster{dc: dc}
}

// Clear resets every pixel to transparent and drops the current path.
func (r *Raster) Clear() {
	r.dc.ClearPath()
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()
}

func (r *Raster) SetStrokeColor(c color.Color) {
	r.dc.SetStrokeStyle(gg.NewSolidPattern(c))
}

func (r *Raster) SetFillColor(c color.Color) {
	r.dc.SetFillStyle(gg.NewSolidPattern(c))
}

func (r *Raster) BeginPath() {
	r.dc.ClearPath()
}

func (r *Raster) MoveTo(x, y float64) {
	r.dc.MoveTo(x, y)
}

// Arc appends a circular arc. When a current point exists it is joined to
// the arc's first point with a straight line.
func (r *Raster) Arc(cx, cy, radius, start, end float64, counterclockwise bool) {
	start, end = arcSweep(start, end, counterclockwise)
	r.dc.DrawArc(cx, cy, radius, start, end)
}

func (r *Raster) ClosePath() {
	r.dc.ClosePath()
}

func (r *Raster) Fill() {
	r.dc.FillPreserve()
}

func (r *Raster) Stroke() {
	r.dc.StrokePreserve()
}

// Image returns the backing image. It is shared with the raster.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// At returns the colour of pixel (x, y).
func (r *Raster) At(x, y int) color.Color {
	return r.dc.Image().At(x, y)
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the raster to w in PNG format.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.dc.Image())
}

// arcSweep resolves the end angle so that the arc travels in the requested
// direction, clamping sweeps of a full turn or more to exactly one turn.
func arcSweep(start, end float64, counterclockwise bool) (float64, float64) {
	const full = 2 * math.Pi
	if !counterclockwise {
		if end-start >= full {
			return start, start + full
		}
		for end < start {
			end += full
		}
		return start, end
	}
	if start-end >= full {
		return start, start - full
	}
	for end > start {
		end -= full
	}
	return start, end
}
