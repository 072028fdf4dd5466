// Package numerics holds the scalar helpers shared by the shading code.
package numerics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi    float32 = math.Pi
	InvPi float32 = 1.0 / math.Pi
)

// MaxComponent returns the largest of the three channels.
func MaxComponent(v mgl32.Vec3) float32 {
	return max(v[0], v[1], v[2])
}

func Saturate(x float32) float32 {
	return mgl32.Clamp(x, 0, 1)
}

// Mix linearly interpolates between a and b by t, like GLSL mix.
func Mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Pow5 computes x^5 as (x*x)^2*x.
func Pow5(x float32) float32 {
	x2 := x * x
	return x2 * x2 * x
}

// Broadcast fills all three channels with s.
func Broadcast(s float32) mgl32.Vec3 {
	return mgl32.Vec3{s, s, s}
}

// Mul multiplies two vectors channel by channel.
func Mul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
