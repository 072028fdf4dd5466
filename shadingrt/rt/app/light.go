package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
)

func (t LightType) MarshalText() ([]byte, error) {
	switch t {
	case LightTypePoint:
		return []byte("point"), nil
	case LightTypeDirectional:
		return []byte("directional"), nil
	}
	return nil, fmt.Errorf("unknown light type %d", t)
}

func (t *LightType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "point":
		*t = LightTypePoint
	case "directional":
		*t = LightTypeDirectional
	default:
		return fmt.Errorf("unknown light type %q", b)
	}
	return nil
}

// Light is a preview light in view space.
type Light struct {
	Type      LightType  `json:"type"`
	Position  mgl32.Vec3 `json:"position"`  // point
	Direction mgl32.Vec3 `json:"direction"` // directional, towards the light
	Color     mgl32.Vec3 `json:"color"`
	Intensity float32    `json:"intensity"`
	Range     float32    `json:"range"` // point, 0 disables the window
}

// Incident returns the unit direction from p towards the light and the
// radiance arriving at p.
func (l Light) Incident(p mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	scale := l.Intensity
	var dir mgl32.Vec3
	switch l.Type {
	case LightTypeDirectional:
		dir = l.Direction.Normalize()
	default:
		toLight := l.Position.Sub(p)
		d2 := toLight.Dot(toLight)
		dir = toLight.Normalize()
		scale /= max(d2, 1e-4)
		if l.Range > 0 {
			// smooth window reaching zero at Range
			f := d2 / (l.Range * l.Range)
			w := mgl32.Clamp(1-f*f, 0, 1)
			scale *= w * w
		}
	}
	return dir, l.Color.Mul(scale)
}
