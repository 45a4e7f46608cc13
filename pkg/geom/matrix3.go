package geom

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

// Matrix3 is a 3×3 unitless matrix stored as three column vectors.
type Matrix3 struct {
	XAxis Vector3[number.Number] `json:"x_axis" yaml:"x_axis"`
	YAxis Vector3[number.Number] `json:"y_axis" yaml:"y_axis"`
	ZAxis Vector3[number.Number] `json:"z_axis" yaml:"z_axis"`
}

func Matrix3FromCols(x, y, z Vector3[number.Number]) Matrix3 {
	return Matrix3{XAxis: x, YAxis: y, ZAxis: z}
}

func Matrix3FromRows(r0, r1, r2 Vector3[number.Number]) Matrix3 {
	return Matrix3FromCols(r0, r1, r2).Transpose()
}

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return Matrix3FromDiagonal(Ones)
}

// Zero3 returns the zero matrix.
func Zero3() Matrix3 {
	return Matrix3{}
}

// Matrix3FromDiagonal returns the matrix with d on its diagonal.
func Matrix3FromDiagonal(d Vector3[number.Number]) Matrix3 {
	return Matrix3{
		XAxis: Vector3[number.Number]{X: d.X},
		YAxis: Vector3[number.Number]{Y: d.Y},
		ZAxis: Vector3[number.Number]{Z: d.Z},
	}
}

// Matrix3FromScale returns the non-uniform scale matrix for s.
func Matrix3FromScale(s Vector3[number.Number]) Matrix3 {
	return Matrix3FromDiagonal(s)
}

// Matrix3FromQuaternion returns the rotation matrix of the unit quaternion q.
func Matrix3FromQuaternion(q Quaternion) Matrix3 {
	x2, y2, z2 := q.X.Add(q.X), q.Y.Add(q.Y), q.Z.Add(q.Z)
	xx, xy, xz := q.X.Mul(x2), q.X.Mul(y2), q.X.Mul(z2)
	yy, yz, zz := q.Y.Mul(y2), q.Y.Mul(z2), q.Z.Mul(z2)
	wx, wy, wz := q.W.Mul(x2), q.W.Mul(y2), q.W.Mul(z2)
	one := number.One

	return Matrix3{
		XAxis: Vec3(one.Sub(yy.Add(zz)), xy.Add(wz), xz.Sub(wy)),
		YAxis: Vec3(xy.Sub(wz), one.Sub(xx.Add(zz)), yz.Add(wx)),
		ZAxis: Vec3(xz.Add(wy), yz.Sub(wx), one.Sub(xx.Add(yy))),
	}
}

// Matrix3FromAxisAngle returns the rotation by angle around axis using
// Rodrigues' formula, so quarter turns about a coordinate axis are exact.
// The axis is normalized first; a zero axis yields the identity.
func Matrix3FromAxisAngle(axis Vector3[number.Number], angle unit.Angle) Matrix3 {
	a := axis.Normalize()
	if a.IsZero() {
		return Identity3()
	}
	s, c := angle.SinCos()
	t := number.One.Sub(c)
	xs, ys, zs := a.X.Mul(s), a.Y.Mul(s), a.Z.Mul(s)
	xy, xz, yz := a.X.Mul(a.Y).Mul(t), a.X.Mul(a.Z).Mul(t), a.Y.Mul(a.Z).Mul(t)

	return Matrix3{
		XAxis: Vec3(a.X.Mul(a.X).Mul(t).Add(c), xy.Add(zs), xz.Sub(ys)),
		YAxis: Vec3(xy.Sub(zs), a.Y.Mul(a.Y).Mul(t).Add(c), yz.Add(xs)),
		ZAxis: Vec3(xz.Add(ys), yz.Sub(xs), a.Z.Mul(a.Z).Mul(t).Add(c)),
	}
}

// Reflection returns I - 2·(a⊗a), the reflection across the plane whose
// normal is axis. The axis is normalized first; a zero axis yields the
// identity.
func Reflection(axis Vector3[number.Number]) Matrix3 {
	a := axis.Normalize()
	if a.IsZero() {
		return Identity3()
	}
	return Identity3().Sub(Outer(a, a).MulScalar(number.Two))
}

// Row returns row i (0, 1 or 2) of m.
func (m Matrix3) Row(i int) Vector3[number.Number] {
	switch i {
	case 0:
		return Vec3(m.XAxis.X, m.YAxis.X, m.ZAxis.X)
	case 1:
		return Vec3(m.XAxis.Y, m.YAxis.Y, m.ZAxis.Y)
	case 2:
		return Vec3(m.XAxis.Z, m.YAxis.Z, m.ZAxis.Z)
	}
	panic(fmt.Sprintf("geom: matrix row %d out of range", i))
}

// Mul returns m·o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{
		XAxis: o.XAxis.ApplyMatrix3(m),
		YAxis: o.YAxis.ApplyMatrix3(m),
		ZAxis: o.ZAxis.ApplyMatrix3(m),
	}
}

// MulVec returns m·v.
func (m Matrix3) MulVec(v Vector3[number.Number]) Vector3[number.Number] {
	return v.ApplyMatrix3(m)
}

func (m Matrix3) Add(o Matrix3) Matrix3 {
	return Matrix3{m.XAxis.Add(o.XAxis), m.YAxis.Add(o.YAxis), m.ZAxis.Add(o.ZAxis)}
}

func (m Matrix3) Sub(o Matrix3) Matrix3 {
	return Matrix3{m.XAxis.Sub(o.XAxis), m.YAxis.Sub(o.YAxis), m.ZAxis.Sub(o.ZAxis)}
}

func (m Matrix3) MulScalar(n number.Number) Matrix3 {
	return Matrix3{m.XAxis.Mul(n), m.YAxis.Mul(n), m.ZAxis.Mul(n)}
}

func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{m.Row(0), m.Row(1), m.Row(2)}
}

// Determinant returns x·(y×z) for the columns x, y, z.
func (m Matrix3) Determinant() number.Number {
	return m.XAxis.Dot(Cross(m.YAxis, m.ZAxis))
}

// Inverse returns the inverse of m. A singular matrix returns the zero
// matrix and false.
func (m Matrix3) Inverse() (Matrix3, bool) {
	c0 := Cross(m.YAxis, m.ZAxis)
	c1 := Cross(m.ZAxis, m.XAxis)
	c2 := Cross(m.XAxis, m.YAxis)
	det := m.XAxis.Dot(c0)
	if det.IsZero() || !det.IsFinite() {
		return Zero3(), false
	}
	return Matrix3FromRows(c0, c1, c2).MulScalar(det.Recip()), true
}

// Quaternion converts the rotation matrix m to a unit quaternion. The
// branch is chosen by the trace and the largest diagonal element so that
// the square root is always taken of a value of at least one.
func (m Matrix3) Quaternion() Quaternion {
	m00, m11, m22 := m.XAxis.X, m.YAxis.Y, m.ZAxis.Z
	// mRC is row R, column C.
	m01, m02 := m.YAxis.X, m.ZAxis.X
	m10, m12 := m.XAxis.Y, m.ZAxis.Y
	m20, m21 := m.XAxis.Z, m.YAxis.Z
	one := number.One

	var q Quaternion
	switch trace := m00.Add(m11).Add(m22); {
	case trace.Sign() > 0:
		t := one.Add(trace)
		s := number.Half.Quo(t.Sqrt())
		q = Quaternion{
			X: m21.Sub(m12).Mul(s),
			Y: m02.Sub(m20).Mul(s),
			Z: m10.Sub(m01).Mul(s),
			W: t.Mul(s),
		}
	case m00.Cmp(m11) >= 0 && m00.Cmp(m22) >= 0:
		t := one.Add(m00).Sub(m11).Sub(m22)
		s := number.Half.Quo(t.Sqrt())
		q = Quaternion{
			X: t.Mul(s),
			Y: m01.Add(m10).Mul(s),
			Z: m02.Add(m20).Mul(s),
			W: m21.Sub(m12).Mul(s),
		}
	case m11.Cmp(m22) >= 0:
		t := one.Sub(m00).Add(m11).Sub(m22)
		s := number.Half.Quo(t.Sqrt())
		q = Quaternion{
			X: m01.Add(m10).Mul(s),
			Y: t.Mul(s),
			Z: m12.Add(m21).Mul(s),
			W: m02.Sub(m20).Mul(s),
		}
	default:
		t := one.Sub(m00).Sub(m11).Add(m22)
		s := number.Half.Quo(t.Sqrt())
		q = Quaternion{
			X: m02.Add(m20).Mul(s),
			Y: m12.Add(m21).Mul(s),
			Z: t.Mul(s),
			W: m10.Sub(m01).Mul(s),
		}
	}
	return q.Normalize()
}

// RotationScale splits m into a rotation and a per-axis scale. The scale of
// each axis is the length of its column; when m mirrors space the X scale
// is negated so that the remainder is a proper rotation. Columns whose
// length is zero contribute nothing to the rotation.
func (m Matrix3) RotationScale() (Quaternion, Vector3[number.Number]) {
	s := Vec3(m.XAxis.Magnitude(), m.YAxis.Magnitude(), m.ZAxis.Magnitude())
	if m.Determinant().Sign() < 0 {
		s.X = s.X.Neg()
	}
	inv := Vec3(safeRecip(s.X), safeRecip(s.Y), safeRecip(s.Z))
	rot := Matrix3{m.XAxis.Mul(inv.X), m.YAxis.Mul(inv.Y), m.ZAxis.Mul(inv.Z)}
	return rot.Quaternion(), s
}

// safeRecip returns 1/n, or zero when n is approximately zero.
func safeRecip(n number.Number) number.Number {
	if n.ApproxEqual(number.Zero) {
		return number.Zero
	}
	return n.Recip()
}

func (m Matrix3) IsIdentity() bool {
	return m == Identity3()
}

func (m Matrix3) Equal(o Matrix3) bool {
	return m == o
}

func (m Matrix3) ApproxEqual(o Matrix3) bool {
	return m.XAxis.ApproxEqual(o.XAxis) && m.YAxis.ApproxEqual(o.YAxis) && m.ZAxis.ApproxEqual(o.ZAxis)
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%v %v %v]", m.XAxis, m.YAxis, m.ZAxis)
}
