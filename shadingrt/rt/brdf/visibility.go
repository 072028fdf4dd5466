package brdf

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

// directK remaps roughness for analytic lights.
func directK(roughness float32) float32 {
	r := roughness + 1
	return r * r / 8
}

func schlickG1(cosTheta, k float32) float32 {
	return cosTheta / (cosTheta*(1-k) + k)
}

// VisibilityGGX is Smith-Schlick shadow-masking divided by 4·NdotL·NdotV.
// Both cosines must be strictly positive.
func VisibilityGGX(roughness, nDotL, nDotV float32) float32 {
	k := directK(roughness)
	return schlickG1(nDotL, k) * schlickG1(nDotV, k) / (4 * nDotL * nDotV)
}

// VisibilityAnisotropic takes l and v in the tangent frame. The result
// already carries the 1/(4·NdotL·NdotV) normalization.
func VisibilityAnisotropic(roughness, tangentialRoughness float32, l, v mgl32.Vec3) float32 {
	scale := mgl32.Vec3{tangentialRoughness, roughness, 1}
	ggxV := v[2] * numerics.Mul(scale, v).Len()
	ggxL := l[2] * numerics.Mul(scale, l).Len()
	return numerics.Saturate(0.5 / (ggxV + ggxL))
}
