package brdf

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

// DistributionGGX is the isotropic Trowbridge-Reitz NDF.
// nDotH must be clamped to [0,1]. roughness 0 at nDotH 1 is 0/0.
func DistributionGGX(roughness, nDotH float32) float32 {
	a2 := roughness * roughness
	f := (nDotH*a2-nDotH)*nDotH + 1
	return a2 / (numerics.Pi * f * f)
}

// TangentialRoughness is the roughness along the tangent axis; the
// bitangent axis keeps the base roughness.
func TangentialRoughness(roughness, anisotropyStrength float32) float32 {
	return numerics.Mix(roughness, 1, anisotropyStrength*anisotropyStrength)
}

// DistributionAnisotropic evaluates the anisotropic GGX NDF for a half
// vector h expressed in the tangent frame.
func DistributionAnisotropic(roughness, tangentialRoughness float32, h mgl32.Vec3) float32 {
	roughnessSquared := roughness * tangentialRoughness
	f := numerics.Mul(h, mgl32.Vec3{roughness, tangentialRoughness, roughnessSquared})
	w2 := roughnessSquared / f.Dot(f)
	return roughnessSquared * w2 * w2 / numerics.Pi
}
