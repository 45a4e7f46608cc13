package geom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/stockyard/pkg/number"
)

// Mat4 returns t as a column-major float64 matrix for renderers, with the
// translation in meters.
func (t Transform) Mat4() mgl64.Mat4 {
	l, tr := t.Linear, t.Translation.Canonical()
	return mgl64.Mat4{
		l.XAxis.X.Float64(), l.XAxis.Y.Float64(), l.XAxis.Z.Float64(), 0,
		l.YAxis.X.Float64(), l.YAxis.Y.Float64(), l.YAxis.Z.Float64(), 0,
		l.ZAxis.X.Float64(), l.ZAxis.Y.Float64(), l.ZAxis.Z.Float64(), 0,
		tr.X.Float64(), tr.Y.Float64(), tr.Z.Float64(), 1,
	}
}

// Quat returns q as a float64 quaternion.
func (q Quaternion) Quat() mgl64.Quat {
	return mgl64.Quat{W: q.W.Float64(), V: mgl64.Vec3{q.X.Float64(), q.Y.Float64(), q.Z.Float64()}}
}

// Mgl returns v in canonical units as a float64 vector.
func (v Vector3[N]) Mgl() mgl64.Vec3 {
	c := v.Canonical()
	return mgl64.Vec3{c.X.Float64(), c.Y.Float64(), c.Z.Float64()}
}

// Mat3 returns m as a column-major float64 matrix.
func (m Matrix3) Mat3() mgl64.Mat3 {
	return mgl64.Mat3{
		m.XAxis.X.Float64(), m.XAxis.Y.Float64(), m.XAxis.Z.Float64(),
		m.YAxis.X.Float64(), m.YAxis.Y.Float64(), m.YAxis.Z.Float64(),
		m.ZAxis.X.Float64(), m.ZAxis.Y.Float64(), m.ZAxis.Z.Float64(),
	}
}

// QuaternionFromQuat converts a float64 quaternion.
func QuaternionFromQuat(q mgl64.Quat) Quaternion {
	return Quaternion{
		X: number.FromFloat64(q.V[0]),
		Y: number.FromFloat64(q.V[1]),
		Z: number.FromFloat64(q.V[2]),
		W: number.FromFloat64(q.W),
	}
}
