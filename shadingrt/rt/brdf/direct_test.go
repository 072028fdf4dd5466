package brdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/directlight/shadingrt/rt/core"
	"github.com/gekko3d/directlight/shadingrt/rt/numerics"
)

var up = mgl32.Vec3{0, 0, 1}

func assertFiniteNonNegative(t *testing.T, v mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		f := float64(v[i])
		require.False(t, math.IsNaN(f) || math.IsInf(f, 0), msgAndArgs...)
		require.GreaterOrEqual(t, v[i], float32(0), msgAndArgs...)
	}
}

func randomHemisphere(rng *rand.Rand) mgl32.Vec3 {
	for {
		v := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()}
		if l := v.Len(); l > 0.1 && l <= 1 && v[2] > 0.02 {
			return v.Normalize()
		}
	}
}

func TestHeadOnScenario(t *testing.T) {
	m := core.NewMaterial(mgl32.Vec3{1, 1, 1}, numerics.Broadcast(0.04), 1.0)

	terms := EvaluateDirectLightTerms(up, up, up, m)

	assert.Equal(t, float32(1), terms.VdotH)
	assert.Equal(t, float32(1), terms.NdotL)
	assert.Equal(t, float32(1), terms.NdotH)
	assert.InDelta(t, 1.0, terms.NdotV, 0.002)
	assert.Equal(t, numerics.Broadcast(0.04), terms.F)
	assert.InDelta(t, 1/math.Pi, terms.D, 1e-7)
	assert.InDelta(t, 0.25, terms.V, 1e-3)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.01/math.Pi, terms.Specular[i], 1e-5)
		assert.InDelta(t, 0.96/math.Pi, terms.Diffuse[i], 1e-6)
		assert.InDelta(t, 0.30876, terms.Radiance[i], 1e-5)
	}
	assert.Equal(t, terms.Radiance, EvaluateDirectLight(up, up, up, m))
}

func TestGrazingFloor(t *testing.T) {
	view := mgl32.Vec3{0.6, 0, 0.8}
	light := mgl32.Vec3{0, 0, -1}

	iso := core.NewMaterial(mgl32.Vec3{0.8, 0.6, 0.4}, numerics.Broadcast(0.04), 0.5)
	aniso := iso.WithAnisotropy(0.6, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})

	for _, m := range []core.Material{iso, aniso} {
		terms := EvaluateDirectLightTerms(view, up, light, m)
		assert.Equal(t, float32(0.001), terms.NdotL, m.ShadingModel().String())
		assertFiniteNonNegative(t, terms.Radiance, m.ShadingModel().String())
		for i := 0; i < 3; i++ {
			assert.Less(t, terms.Radiance[i], float32(0.01))
		}
		assert.Greater(t, terms.Radiance[0], float32(0))
	}
}

func TestBackFacingViewStaysDefined(t *testing.T) {
	view := mgl32.Vec3{0, 0.6, -0.8}
	light := mgl32.Vec3{0.6, 0, 0.8}
	m := core.NewMaterial(mgl32.Vec3{0.5, 0.5, 0.5}, numerics.Broadcast(0.04), 0.4)

	terms := EvaluateDirectLightTerms(view, up, light, m)
	assert.InDelta(t, 0.801, terms.NdotV, 1e-6)
	assertFiniteNonNegative(t, terms.Radiance)
}

func TestEnergyBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	albedo := mgl32.Vec3{0.9, 0.5, 0.1}

	for i := 0; i < 500; i++ {
		view := randomHemisphere(rng)
		light := randomHemisphere(rng)
		r := 0.05 + 0.95*rng.Float32()
		f0 := mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
		m := core.NewMaterial(albedo, f0, r)
		if i%2 == 1 {
			m = m.WithAnisotropy(rng.Float32(), mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
		}
		if i%3 == 0 {
			m = m.WithSpecularWeight(rng.Float32())
		}

		terms := EvaluateDirectLightTerms(view, up, light, m)
		assertFiniteNonNegative(t, terms.Radiance, "iteration %d", i)

		for c := 0; c < 3; c++ {
			require.GreaterOrEqual(t, terms.F[c], float32(0))
			require.LessOrEqual(t, terms.F[c], float32(1)+1e-6)
			assert.InDelta(t, terms.F[c]*terms.V*terms.D, terms.Specular[c], 1e-4*float64(terms.Specular[c])+1e-7)
			// diffuse never exceeds the share Fresnel left behind
			unreflected := (1 - terms.F[c]) * albedo[c] / numerics.Pi
			assert.LessOrEqual(t, terms.Diffuse[c], unreflected+1e-6)
		}
	}
}

func TestSpecularWeight(t *testing.T) {
	view := mgl32.Vec3{0.3, 0, 0.954}.Normalize()
	light := mgl32.Vec3{-0.3, 0.1, 0.948}.Normalize()
	base := core.NewMaterial(mgl32.Vec3{0.5, 0.5, 0.5}, numerics.Broadcast(0.04), 0.3)

	plain := EvaluateDirectLightTerms(view, up, light, base)
	half := EvaluateDirectLightTerms(view, up, light, base.WithSpecularWeight(0.5))
	off := EvaluateDirectLightTerms(view, up, light, base.WithSpecularWeight(0))

	for i := 0; i < 3; i++ {
		assert.InDelta(t, plain.F[i]*0.5, half.F[i], 1e-7)
		assert.InDelta(t, plain.Specular[i]*0.5, half.Specular[i], 1e-6)
		assert.Greater(t, half.Diffuse[i], plain.Diffuse[i])
		assert.Equal(t, float32(0), off.Specular[i])
		assert.InDelta(t, 0.5/math.Pi, off.Diffuse[i], 1e-7)
	}

	// SpecularWeight is ignored until the feature is enabled
	unflagged := base
	unflagged.SpecularWeight = 0
	assert.Equal(t, plain.Radiance, EvaluateDirectLight(view, up, light, unflagged))
}

func TestAnisotropicPathDegeneratesToIsotropic(t *testing.T) {
	iso := core.NewMaterial(mgl32.Vec3{0.7, 0.7, 0.7}, numerics.Broadcast(0.04), 0.45)
	aniso := iso.WithAnisotropy(0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})

	isoTerms := EvaluateDirectLightTerms(up, up, up, iso)
	anisoTerms := EvaluateDirectLightTerms(up, up, up, aniso)
	assert.InEpsilon(t, isoTerms.D, anisoTerms.D, 1e-4)
	// isotropic NdotV carries the 0.001 offset
	assert.InDelta(t, isoTerms.V, anisoTerms.V, 1e-3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, isoTerms.Radiance[i], anisoTerms.Radiance[i], 5e-5)
	}

	// the distribution agrees off-axis too
	view := mgl32.Vec3{0.4, 0.2, 0.894}.Normalize()
	light := mgl32.Vec3{-0.1, -0.5, 0.86}.Normalize()
	isoTerms = EvaluateDirectLightTerms(view, up, light, iso)
	anisoTerms = EvaluateDirectLightTerms(view, up, light, aniso)
	assert.InEpsilon(t, isoTerms.D, anisoTerms.D, 1e-4)
}

func TestAnisotropicTangentOrientation(t *testing.T) {
	// swapping the tangent axes reorients the lobe
	view := mgl32.Vec3{0.5, 0, 0.866}
	light := mgl32.Vec3{-0.45, 0.05, 0.891}.Normalize()

	m := core.NewMaterial(mgl32.Vec3{0.5, 0.5, 0.5}, numerics.Broadcast(0.04), 0.15)
	alongX := EvaluateDirectLight(view, up, light, m.WithAnisotropy(0.9, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}))
	alongY := EvaluateDirectLight(view, up, light, m.WithAnisotropy(0.9, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}))

	assert.NotEqual(t, alongX, alongY)
	assertFiniteNonNegative(t, alongX)
	assertFiniteNonNegative(t, alongY)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	view := mgl32.Vec3{0.1, 0.2, 0.97}.Normalize()
	light := mgl32.Vec3{0.5, -0.2, 0.84}.Normalize()
	m := core.DefaultMaterial().WithAnisotropy(0.4, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})

	first := EvaluateDirectLight(view, up, light, m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EvaluateDirectLight(view, up, light, m))
	}
}
