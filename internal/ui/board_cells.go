package ui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"granboard.klederson.com/internal/config"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// BoardCells samples img into a width×height block of terminal cells. Each
// cell shows two vertically stacked samples through half-block glyphs, which
// also corrects for the roughly 2:1 aspect of terminal cells. The image is
// scaled to the largest centred square that fits.
func BoardCells(img image.Image, width, height int) string {
	if img == nil || width < 1 || height < 1 {
		return ""
	}

	// Samples per row of cells
	perCell := int(1 / config.AspectRatio)
	side := min(width, height*perCell)
	if side < 1 {
		return ""
	}
	offX := (width - side) / 2
	offY := (height*perCell - side) / 2

	bounds := img.Bounds()
	scaleX := float64(bounds.Dx()) / float64(side)
	scaleY := float64(bounds.Dy()) / float64(side)

	sample := func(vx, vy int) string {
		if vx < 0 || vy < 0 || vx >= side || vy >= side {
			return ""
		}
		x := bounds.Min.X + int((float64(vx)+0.5)*scaleX)
		y := bounds.Min.Y + int((float64(vy)+0.5)*scaleY)
		return hexAt(img, x, y)
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			vx := col - offX
			top := sample(vx, row*perCell-offY)
			bottom := sample(vx, row*perCell+perCell-1-offY)
			sb.WriteString(halfBlock(top, bottom))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func halfBlock(top, bottom string) string {
	switch {
	case top == "" && bottom == "":
		return " "
	case bottom == "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Render(upperHalf)
	case top == "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render(lowerHalf)
	default:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(top)).
			Background(lipgloss.Color(bottom)).
			Render(upperHalf)
	}
}

// hexAt returns the pixel colour as "#rrggbb", or "" for mostly transparent
// pixels.
func hexAt(img image.Image, x, y int) string {
	c := img.At(x, y)
	if _, _, _, a := c.RGBA(); a < 0x8000 {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}
