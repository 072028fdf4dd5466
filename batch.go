// Package directlight evaluates single-light microfacet shading for batches
// of fragments that share a material library.
package directlight

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/brdf"
	"github.com/gekko3d/directlight/shadingrt/rt/core"
)

var ErrLengthMismatch = errors.New("output length does not match fragment count")

const defaultChunkSize = 1024

// Fragment is one surface sample lit by one light.
type Fragment struct {
	View     mgl32.Vec3
	Normal   mgl32.Vec3
	Light    mgl32.Vec3
	Material MaterialId

	// Tangent and Bitangent override the material's anisotropic frame
	// when Tangent is non-zero.
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

type BatchOptions struct {
	Workers   int // <= 0 uses GOMAXPROCS
	ChunkSize int // <= 0 uses defaultChunkSize
}

// EvaluateBatch writes the direct radiance of every fragment into out.
// Materials are resolved once up front; out[i] matches fragments[i] and is
// identical to a single EvaluateDirectLight call regardless of scheduling.
func (l *MaterialLibrary) EvaluateBatch(fragments []Fragment, out []mgl32.Vec3, opts BatchOptions) error {
	if len(out) != len(fragments) {
		return fmt.Errorf("evaluate batch: %d fragments, %d outputs: %w", len(fragments), len(out), ErrLengthMismatch)
	}
	if len(fragments) == 0 {
		return nil
	}

	ids := make(map[MaterialId]struct{})
	for i := range fragments {
		ids[fragments[i].Material] = struct{}{}
	}
	materials, err := l.snapshot(ids)
	if err != nil {
		return fmt.Errorf("evaluate batch: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	chunks := (len(fragments) + chunk - 1) / chunk
	if workers > chunks {
		workers = chunks
	}
	l.logger.Debugf("evaluate batch: %d fragments, %d materials, %d workers, chunk %d",
		len(fragments), len(materials), workers, chunk)

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				c := int(next.Add(1) - 1)
				if c >= chunks {
					return
				}
				start := c * chunk
				end := min(start+chunk, len(fragments))
				evaluateRange(fragments[start:end], out[start:end], materials)
			}
		}()
	}
	wg.Wait()
	return nil
}

func evaluateRange(fragments []Fragment, out []mgl32.Vec3, materials map[MaterialId]core.Material) {
	var lastId MaterialId
	var m core.Material
	for i := range fragments {
		f := &fragments[i]
		if i == 0 || f.Material != lastId {
			m = materials[f.Material]
			lastId = f.Material
		}
		if f.Tangent == (mgl32.Vec3{}) {
			out[i] = brdf.EvaluateDirectLight(f.View, f.Normal, f.Light, m)
			continue
		}
		local := m
		local.AnisotropicTangent = f.Tangent
		local.AnisotropicBitangent = f.Bitangent
		out[i] = brdf.EvaluateDirectLight(f.View, f.Normal, f.Light, local)
	}
}
