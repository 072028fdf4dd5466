package core

import "github.com/go-gl/mathgl/mgl32"

// Features toggles optional parts of the specular lobe.
type Features uint32

const (
	// FeatureSpecularWeight scales the Fresnel term by Material.SpecularWeight.
	FeatureSpecularWeight Features = 1 << iota
	// FeatureAnisotropy switches to the anisotropic distribution and visibility
	// and requires a tangent frame.
	FeatureAnisotropy
)

func (f Features) Has(flag Features) bool {
	return f&flag != 0
}

// ShadingModel is the specular formulation picked once per batch.
type ShadingModel uint32

const (
	ShadingModelIsotropic ShadingModel = iota
	ShadingModelAnisotropic
)

func (s ShadingModel) String() string {
	switch s {
	case ShadingModelIsotropic:
		return "isotropic"
	case ShadingModelAnisotropic:
		return "anisotropic"
	}
	return "unknown"
}

// Material is the resolved per-fragment reflectance record.
// Roughness and AnisotropyStrength are expected in [0,1] already.
type Material struct {
	DiffuseAlbedo mgl32.Vec3 // Lambertian color after metallic separation
	F0            mgl32.Vec3 // reflectance at normal incidence
	Roughness     float32

	SpecularWeight float32 // read only with FeatureSpecularWeight

	AnisotropyStrength   float32
	AnisotropicTangent   mgl32.Vec3
	AnisotropicBitangent mgl32.Vec3

	Features Features
}

func NewMaterial(diffuse, f0 mgl32.Vec3, roughness float32) Material {
	return Material{
		DiffuseAlbedo:        diffuse,
		F0:                   f0,
		Roughness:            roughness,
		SpecularWeight:       1.0,
		AnisotropicTangent:   mgl32.Vec3{1, 0, 0},
		AnisotropicBitangent: mgl32.Vec3{0, 1, 0},
	}
}

// Helper for a white dielectric
func DefaultMaterial() Material {
	return NewMaterial(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0.04, 0.04, 0.04}, 1.0)
}

// WithSpecularWeight enables the specular weight feature with the given weight.
func (m Material) WithSpecularWeight(w float32) Material {
	m.SpecularWeight = w
	m.Features |= FeatureSpecularWeight
	return m
}

// WithAnisotropy enables the anisotropic lobe along the given tangent frame.
func (m Material) WithAnisotropy(strength float32, tangent, bitangent mgl32.Vec3) Material {
	m.AnisotropyStrength = strength
	m.AnisotropicTangent = tangent
	m.AnisotropicBitangent = bitangent
	m.Features |= FeatureAnisotropy
	return m
}

func (m Material) ShadingModel() ShadingModel {
	if m.Features.Has(FeatureAnisotropy) {
		return ShadingModelAnisotropic
	}
	return ShadingModelIsotropic
}

// EffectiveSpecularWeight is SpecularWeight when the feature is on, otherwise 1.
func (m Material) EffectiveSpecularWeight() float32 {
	if m.Features.Has(FeatureSpecularWeight) {
		return m.SpecularWeight
	}
	return 1.0
}
