package core

import "github.com/go-gl/mathgl/mgl32"

// Frame is an orthonormal tangent/bitangent/normal basis.
type Frame struct {
	T, B, N mgl32.Vec3
}

func NewFrame(tangent, bitangent, normal mgl32.Vec3) Frame {
	return Frame{T: tangent, B: bitangent, N: normal}
}

// FrameFromNormal builds a frame around n with the tangent taken from
// tangentHint projected onto the plane of n. Falls back to an arbitrary
// axis when the hint is parallel to n.
func FrameFromNormal(n, tangentHint mgl32.Vec3) Frame {
	t := tangentHint.Sub(n.Mul(n.Dot(tangentHint)))
	if t.Len() < 1e-6 {
		axis := mgl32.Vec3{1, 0, 0}
		if n[0] > 0.9 || n[0] < -0.9 {
			axis = mgl32.Vec3{0, 1, 0}
		}
		t = axis.Sub(n.Mul(n.Dot(axis)))
	}
	t = t.Normalize()
	return Frame{T: t, B: n.Cross(t), N: n}
}

// Matrix returns the basis as columns (T, B, N).
func (f Frame) Matrix() mgl32.Mat3 {
	return mgl32.Mat3FromCols(f.T, f.B, f.N)
}

// ToLocal expresses v in the frame: (v·T, v·B, v·N).
func (f Frame) ToLocal(v mgl32.Vec3) mgl32.Vec3 {
	return f.Matrix().Transpose().Mul3x1(v)
}

// ToWorld is the inverse of ToLocal for an orthonormal frame.
func (f Frame) ToWorld(local mgl32.Vec3) mgl32.Vec3 {
	return f.Matrix().Mul3x1(local)
}

// Rotated spins T and B about N by angle radians.
func (f Frame) Rotated(angle float32) Frame {
	q := mgl32.QuatRotate(angle, f.N)
	return Frame{T: q.Rotate(f.T), B: q.Rotate(f.B), N: f.N}
}
