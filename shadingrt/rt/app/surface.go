package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/core"
	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

// dielectricF0 is the normal-incidence reflectance of a typical dielectric.
const dielectricF0 = 0.04

// SurfaceDesc is an authoring-side metal/roughness description.
type SurfaceDesc struct {
	BaseColor           mgl32.Vec3 `json:"base_color"`
	Metalness           float32    `json:"metalness"`
	PerceptualRoughness float32    `json:"roughness"`

	UseSpecularWeight bool    `json:"use_specular_weight"`
	SpecularWeight    float32 `json:"specular_weight"`

	Anisotropy float32 `json:"anisotropy"`
}

func DefaultSurface() SurfaceDesc {
	return SurfaceDesc{
		BaseColor:           mgl32.Vec3{1, 1, 1},
		Metalness:           0,
		PerceptualRoughness: 0.5,
		SpecularWeight:      1,
	}
}

// Resolve separates diffuse and specular color and clamps the parameters
// the evaluator expects in range. Roughness is squared from the
// perceptual value.
func (s SurfaceDesc) Resolve() core.Material {
	metal := numerics.Saturate(s.Metalness)
	base := mgl32.Vec3{
		numerics.Saturate(s.BaseColor[0]),
		numerics.Saturate(s.BaseColor[1]),
		numerics.Saturate(s.BaseColor[2]),
	}

	diffuse := base.Mul(1 - metal)
	f0 := mgl32.Vec3{
		numerics.Mix(dielectricF0, base[0], metal),
		numerics.Mix(dielectricF0, base[1], metal),
		numerics.Mix(dielectricF0, base[2], metal),
	}
	r := numerics.Saturate(s.PerceptualRoughness)

	m := core.NewMaterial(diffuse, f0, r*r)
	if s.UseSpecularWeight {
		m = m.WithSpecularWeight(numerics.Saturate(s.SpecularWeight))
	}
	if s.Anisotropy > 0 {
		m = m.WithAnisotropy(numerics.Saturate(s.Anisotropy), mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	}
	return m
}
