package board

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSegmentColorParity(t *testing.T) {
	for index := 0; index < SegmentCount; index++ {
		even := index%2 == 0

		for _, band := range []Band{BandDouble, BandTriple} {
			want := "#0000ff"
			if even {
				want = "#ff0000"
			}
			if got := hex(t, SegmentColor(band, index)); got != want {
				t.Errorf("%s segment %d = %s, want %s", band, index, got, want)
			}
		}

		for _, band := range []Band{BandOuterSingle, BandInnerSingle} {
			want := "#ffffff"
			if even {
				want = "#000000"
			}
			if got := hex(t, SegmentColor(band, index)); got != want {
				t.Errorf("%s segment %d = %s, want %s", band, index, got, want)
			}
		}
	}
}

func TestBullPalette(t *testing.T) {
	if got := ColorOuterBull.Hex(); got != "#ff0000" {
		t.Errorf("Outer bull = %s, want #ff0000", got)
	}
	if got := ColorInnerBull.Hex(); got != "#000000" {
		t.Errorf("Inner bull = %s, want #000000", got)
	}
}

func TestMustHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF0000", "#ff0000"},
		{"#0000FF", "#0000ff"},
		{"#000000", "#000000"},
		{"#ffffff", "#ffffff"},
	}
	for _, tt := range tests {
		if got := mustHex(tt.in).Hex(); got != tt.want {
			t.Errorf("mustHex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on malformed hex")
		}
	}()
	mustHex("red")
}

func TestPaletteValues(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want string
	}{
		{"red", ColorRed, "#ff0000"},
		{"blue", ColorBlue, "#0000ff"},
		{"black", ColorBlack, "#000000"},
		{"white", ColorWhite, "#ffffff"},
		{"line", ColorLine, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hex(t, tt.c); got != tt.want {
				t.Errorf("Got %s, want %s", got, tt.want)
			}
		})
	}
}

func hex(t *testing.T, c color.Color) string {
	t.Helper()
	cf, ok := colorful.MakeColor(c)
	if !ok {
		t.Fatalf("Colour %v is fully transparent", c)
	}
	return cf.Hex()
}
