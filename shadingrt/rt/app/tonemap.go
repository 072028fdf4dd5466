package app

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ToneMap applies exposure, a Reinhard curve and the sRGB transfer.
func ToneMap(hdr mgl32.Vec3, exposure float32) color.RGBA {
	var out [3]uint8
	for i := 0; i < 3; i++ {
		x := float64(max(hdr[i]*exposure, 0))
		if math.IsNaN(x) {
			x = 0
		}
		x = x / (1 + x)
		out[i] = uint8(math.Round(encodeSRGB(x) * 255))
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}
}

func encodeSRGB(x float64) float64 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}
