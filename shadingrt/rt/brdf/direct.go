// Package brdf evaluates the direct contribution of a single light on a
// microfacet surface.
package brdf

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/core"
	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

const (
	minNdotL     = 0.001
	nDotVEpsilon = 0.001
)

// Terms is the breakdown of one evaluation. Radiance is the only value
// callers need; the rest is kept for debugging and tests.
type Terms struct {
	VdotH float32
	NdotL float32
	NdotV float32
	NdotH float32

	F mgl32.Vec3 // Fresnel, after specular weight
	D float32
	V float32

	Specular mgl32.Vec3
	Diffuse  mgl32.Vec3
	Radiance mgl32.Vec3
}

// EvaluateDirectLight returns the unclamped outgoing radiance for a unit
// light. All directions are unit vectors in the same frame; lightDir points
// from the surface towards the light.
func EvaluateDirectLight(viewDir, normal, lightDir mgl32.Vec3, m core.Material) mgl32.Vec3 {
	return EvaluateDirectLightTerms(viewDir, normal, lightDir, m).Radiance
}

func EvaluateDirectLightTerms(viewDir, normal, lightDir mgl32.Vec3, m core.Material) Terms {
	assertInputs(viewDir, normal, lightDir, m)

	var t Terms
	halfDir := viewDir.Add(lightDir).Normalize()

	t.VdotH = numerics.Saturate(viewDir.Dot(halfDir))
	t.NdotL = mgl32.Clamp(normal.Dot(lightDir), minNdotL, 1)
	// abs keeps back-facing thin surfaces lit
	t.NdotV = float32(math.Abs(float64(normal.Dot(viewDir)))) + nDotVEpsilon
	t.NdotH = numerics.Saturate(normal.Dot(halfDir))

	f0 := m.F0
	f90 := numerics.Broadcast(F90(f0))
	t.F = Fresnel(f0, f90, t.VdotH)
	if m.Features.Has(core.FeatureSpecularWeight) {
		t.F = t.F.Mul(m.SpecularWeight)
	}

	switch m.ShadingModel() {
	case core.ShadingModelAnisotropic:
		frame := core.NewFrame(m.AnisotropicTangent, m.AnisotropicBitangent, normal)
		l := frame.ToLocal(lightDir)
		v := frame.ToLocal(viewDir)
		h := frame.ToLocal(halfDir)
		at := TangentialRoughness(m.Roughness, m.AnisotropyStrength)
		t.V = VisibilityAnisotropic(m.Roughness, at, l, v)
		t.D = DistributionAnisotropic(m.Roughness, at, h)
	default:
		t.D = DistributionGGX(m.Roughness, t.NdotH)
		t.V = VisibilityGGX(m.Roughness, t.NdotL, t.NdotV)
	}

	t.Specular = t.F.Mul(t.V * t.D)
	t.Diffuse = Diffuse(t.F, m.DiffuseAlbedo)
	t.Radiance = t.Diffuse.Add(t.Specular).Mul(t.NdotL)
	return t
}
