package app

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"

	"github.com/gekko3d/directlight"
	"github.com/gekko3d/directlight/shadingrt/rt/core"
)

var background = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// sphereFill is the sphere radius relative to half a cell.
const sphereFill = 0.88

// spherePixel is one covered pixel of a chart sphere.
type spherePixel struct {
	index  int // into the supersampled framebuffer
	normal mgl32.Vec3
	frame  core.Frame
	cell   int
}

// Chart is a rendered grid of lit spheres.
type Chart struct {
	Settings Settings
	Image    *image.RGBA
	// Radiance is the supersampled HDR framebuffer before tone mapping.
	Radiance []mgl32.Vec3
	Width    int
	Height   int
}

// RenderChart shades every sphere pixel of the chart through the batch
// evaluator, once per light, and sums the contributions.
func RenderChart(s Settings, logger directlight.Logger, prof *Profiler) (*Chart, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = directlight.NewNopLogger()
	}
	if prof == nil {
		prof = NewProfiler()
	}

	rows, cols := s.AnisotropySteps, s.RoughnessSteps
	cell := s.CellSize * s.Supersample
	w, h := cols*cell, rows*cell

	prof.BeginScope("setup")
	lib := directlight.NewMaterialLibrary(logger)
	ids := make([]directlight.MaterialId, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids[r*cols+c] = lib.Add(s.Cell(r, c).Resolve())
		}
	}
	pixels := spherePixels(rows, cols, cell, s.TangentRotation)
	frags := make([]directlight.Fragment, len(pixels))
	for i, p := range pixels {
		frags[i] = directlight.Fragment{
			View:      mgl32.Vec3{0, 0, 1},
			Normal:    p.normal,
			Material:  ids[p.cell],
			Tangent:   p.frame.T,
			Bitangent: p.frame.B,
		}
	}
	prof.EndScope("setup")
	prof.AddCount("fragments", len(frags))

	radiance := make([]mgl32.Vec3, w*h)
	out := make([]mgl32.Vec3, len(frags))
	incoming := make([]mgl32.Vec3, len(frags))
	for li, l := range s.Lights {
		prof.BeginScope("evaluate")
		for i, p := range pixels {
			frags[i].Light, incoming[i] = l.Incident(p.normal)
		}
		if err := lib.EvaluateBatch(frags, out, directlight.BatchOptions{Workers: s.Workers}); err != nil {
			return nil, fmt.Errorf("light %d: %w", li, err)
		}
		for i, p := range pixels {
			c := out[i]
			radiance[p.index] = radiance[p.index].Add(mgl32.Vec3{
				c[0] * incoming[i][0], c[1] * incoming[i][1], c[2] * incoming[i][2],
			})
		}
		prof.EndScope("evaluate")
		prof.AddCount("lights", 1)
	}

	prof.BeginScope("tonemap")
	covered := make([]bool, w*h)
	for _, p := range pixels {
		covered[p.index] = true
	}
	full := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range radiance {
		x, y := i%w, i/w
		if !covered[i] {
			full.SetRGBA(x, y, background)
			continue
		}
		full.SetRGBA(x, y, ToneMap(radiance[i], s.Exposure))
	}
	prof.EndScope("tonemap")

	img := full
	if s.Supersample > 1 {
		prof.BeginScope("downsample")
		img = image.NewRGBA(image.Rect(0, 0, cols*s.CellSize, rows*s.CellSize))
		xdraw.CatmullRom.Scale(img, img.Bounds(), full, full.Bounds(), xdraw.Src, nil)
		prof.EndScope("downsample")
	}

	if s.Labels {
		prof.BeginScope("labels")
		drawLabels(img, s)
		prof.EndScope("labels")
	}

	logger.Debugf("chart %dx%d cells, %d fragments, %d lights", cols, rows, len(frags), len(s.Lights))
	return &Chart{Settings: s, Image: img, Radiance: radiance, Width: w, Height: h}, nil
}

// spherePixels lists the pixels covered by each cell's sphere with an
// orthographic camera looking down -Z.
func spherePixels(rows, cols, cell int, tangentRotationDeg float32) []spherePixel {
	w := cols * cell
	radius := float32(cell) * 0.5 * sphereFill
	rot := mgl32.DegToRad(tangentRotationDeg)
	hint := mgl32.Vec3{1, 0, 0}

	var pixels []spherePixel
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx := float32(c*cell) + float32(cell)*0.5
			cy := float32(r*cell) + float32(cell)*0.5
			for py := r * cell; py < (r+1)*cell; py++ {
				for px := c * cell; px < (c+1)*cell; px++ {
					nx := (float32(px) + 0.5 - cx) / radius
					ny := -(float32(py) + 0.5 - cy) / radius
					d := nx*nx + ny*ny
					if d >= 1 {
						continue
					}
					n := mgl32.Vec3{nx, ny, float32(math.Sqrt(float64(1 - d)))}.Normalize()
					pixels = append(pixels, spherePixel{
						index:  py*w + px,
						normal: n,
						frame:  core.FrameFromNormal(n, hint).Rotated(rot),
						cell:   r*cols + c,
					})
				}
			}
		}
	}
	return pixels
}

// WritePNG encodes the chart image to path.
func (c *Chart) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Image); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
