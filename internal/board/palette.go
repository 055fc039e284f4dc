package board

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Board palette
var (
	ColorRed   = mustHex("#FF0000")
	ColorBlue  = mustHex("#0000FF")
	ColorBlack = mustHex("#000000")
	ColorWhite = mustHex("#FFFFFF")

	// ColorLine strokes every sector and bull outline.
	ColorLine = ColorBlack

	ColorOuterBull = ColorRed
	ColorInnerBull = ColorBlack
)

// mustHex parses a "#rrggbb" literal, panicking on malformed input.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SegmentColor returns the fill colour of band for segment index. Double and
// triple bands alternate red/blue by parity, singles alternate black/white.
func SegmentColor(b Band, index int) color.Color {
	even := index%2 == 0
	if b.scoring() {
		if even {
			return ColorRed
		}
		return ColorBlue
	}
	if even {
		return ColorBlack
	}
	return ColorWhite
}
