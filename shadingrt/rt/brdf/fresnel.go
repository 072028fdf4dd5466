package brdf

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

// f90Scale maps the brightest f0 channel to grazing reflectance.
// A dielectric f0 of 0.04 saturates to exactly 1.
const f90Scale = 25.0

// F90 derives the grazing reflectance from f0.
func F90(f0 mgl32.Vec3) float32 {
	return numerics.Saturate(numerics.MaxComponent(f0) * f90Scale)
}

// Fresnel is the Schlick approximation. cosTheta is VdotH clamped to [0,1].
func Fresnel(f0, f90 mgl32.Vec3, cosTheta float32) mgl32.Vec3 {
	v := 1 - cosTheta
	v2 := v * v
	w := v2 * v2 * v
	return f0.Add(f90.Sub(f0).Mul(w))
}
