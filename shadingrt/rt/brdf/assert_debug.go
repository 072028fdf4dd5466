//go:build shadingdebug

package brdf

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/core"
)

const unitEpsilon = 1e-3

func assertUnit(name string, v mgl32.Vec3) {
	if l := v.Len(); math.Abs(float64(l-1)) > unitEpsilon {
		panic(fmt.Sprintf("brdf: %s is not unit length (|%v| = %f)", name, v, l))
	}
}

func assertRange(name string, x float32) {
	if x < 0 || x > 1 || math.IsNaN(float64(x)) {
		panic(fmt.Sprintf("brdf: %s out of [0,1]: %f", name, x))
	}
}

func assertNonNegative(name string, v mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if v[i] < 0 || math.IsNaN(float64(v[i])) {
			panic(fmt.Sprintf("brdf: %s has negative channel %d: %v", name, i, v))
		}
	}
}

func assertInputs(viewDir, normal, lightDir mgl32.Vec3, m core.Material) {
	assertUnit("viewDir", viewDir)
	assertUnit("normal", normal)
	assertUnit("lightDir", lightDir)
	assertRange("roughness", m.Roughness)
	assertNonNegative("f0", m.F0)
	assertNonNegative("diffuseAlbedo", m.DiffuseAlbedo)
	if m.Features.Has(core.FeatureSpecularWeight) {
		assertRange("specularWeight", m.SpecularWeight)
	}
	if m.Features.Has(core.FeatureAnisotropy) {
		assertRange("anisotropyStrength", m.AnisotropyStrength)
		assertUnit("anisotropicTangent", m.AnisotropicTangent)
		assertUnit("anisotropicBitangent", m.AnisotropicBitangent)
	}
}
