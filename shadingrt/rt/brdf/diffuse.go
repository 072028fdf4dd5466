package brdf

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

// Diffuse is the Lambertian lobe scaled by the energy Fresnel did not reflect.
func Diffuse(fresnel, albedo mgl32.Vec3) mgl32.Vec3 {
	lambert := mgl32.Vec3{albedo[0] / numerics.Pi, albedo[1] / numerics.Pi, albedo[2] / numerics.Pi}
	return numerics.Mul(numerics.Broadcast(1).Sub(fresnel), lambert)
}
