package app

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var labelColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

func drawText(dst *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawLabels marks each cell with its roughness (bottom) and each row with
// its anisotropy (top of the first cell).
func drawLabels(dst *image.RGBA, s Settings) {
	cell := s.CellSize
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	for r := 0; r < s.AnisotropySteps; r++ {
		for c := 0; c < s.RoughnessSteps; c++ {
			desc := s.Cell(r, c)
			x0, y0 := c*cell, r*cell
			drawText(dst, x0+2, y0+cell-3, fmt.Sprintf("r %.2f", desc.PerceptualRoughness))
			if c == 0 {
				drawText(dst, x0+2, y0+ascent+1, fmt.Sprintf("a %.2f", desc.Anisotropy))
			}
		}
	}
}
