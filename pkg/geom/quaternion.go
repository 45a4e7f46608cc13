package geom

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

// Quaternion is a rotation (when unit length) stored as x·i + y·j + z·k + w.
type Quaternion struct {
	X number.Number `json:"x" yaml:"x"`
	Y number.Number `json:"y" yaml:"y"`
	Z number.Number `json:"z" yaml:"z"`
	W number.Number `json:"w" yaml:"w"`
}

// IdentityQuaternion returns the rotation that leaves every vector unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: number.One}
}

// QuaternionFromAxisAngle returns the rotation by angle around axis. The axis
// is normalized first; a zero axis yields the identity.
func QuaternionFromAxisAngle(axis Vector3[number.Number], angle unit.Angle) Quaternion {
	a := axis.Normalize()
	if a.IsZero() {
		return IdentityQuaternion()
	}
	s, c := angle.Quo(number.Two).SinCos()
	return Quaternion{X: a.X.Mul(s), Y: a.Y.Mul(s), Z: a.Z.Mul(s), W: c}
}

// Mul returns the Hamilton product q·o. Applied to a vector, the result
// rotates by o first and then by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W.Mul(o.X).Add(q.X.Mul(o.W)).Add(q.Y.Mul(o.Z)).Sub(q.Z.Mul(o.Y)),
		Y: q.W.Mul(o.Y).Sub(q.X.Mul(o.Z)).Add(q.Y.Mul(o.W)).Add(q.Z.Mul(o.X)),
		Z: q.W.Mul(o.Z).Add(q.X.Mul(o.Y)).Sub(q.Y.Mul(o.X)).Add(q.Z.Mul(o.W)),
		W: q.W.Mul(o.W).Sub(q.X.Mul(o.X)).Sub(q.Y.Mul(o.Y)).Sub(q.Z.Mul(o.Z)),
	}
}

// Premul returns o·q, i.e. q followed by o.
func (q Quaternion) Premul(o Quaternion) Quaternion {
	return o.Mul(q)
}

func (q Quaternion) MulScalar(n number.Number) Quaternion {
	return Quaternion{q.X.Mul(n), q.Y.Mul(n), q.Z.Mul(n), q.W.Mul(n)}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{q.X.Neg(), q.Y.Neg(), q.Z.Neg(), q.W.Neg()}
}

func (q Quaternion) Dot(o Quaternion) number.Number {
	return q.X.Mul(o.X).Add(q.Y.Mul(o.Y)).Add(q.Z.Mul(o.Z)).Add(q.W.Mul(o.W))
}

// Length returns the norm of q.
func (q Quaternion) Length() number.Number {
	return q.Dot(q).Sqrt()
}

// Normalize returns q scaled to unit length. The zero quaternion has no
// direction and normalizes to the identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l.IsZero() || !l.IsFinite() {
		return IdentityQuaternion()
	}
	if l == number.One {
		return q
	}
	return q.MulScalar(l.Recip())
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.X.Neg(), q.Y.Neg(), q.Z.Neg(), q.W}
}

// Inverse returns the multiplicative inverse of q. The zero quaternion
// inverts to itself.
func (q Quaternion) Inverse() Quaternion {
	n := q.Dot(q)
	if n.IsZero() {
		return q
	}
	return q.Conjugate().MulScalar(n.Recip())
}

// AxisAngle returns the rotation axis and angle of the unit quaternion q. The
// identity reports the X axis and a zero angle.
func (q Quaternion) AxisAngle() (Vector3[number.Number], unit.Angle) {
	if q.W.Signbit() {
		q = q.Neg()
	}
	axis := Vec3(q.X, q.Y, q.Z)
	s := axis.Magnitude()
	if s.IsZero() {
		return XAxis, unit.ZeroAngle()
	}
	angle := unit.AngleFromAtan2(s, q.W).Mul(number.Two)
	return axis.Quo(s), angle
}

func (q Quaternion) Equal(o Quaternion) bool {
	return q == o
}

func (q Quaternion) ApproxEqual(o Quaternion) bool {
	return q.X.ApproxEqual(o.X) && q.Y.ApproxEqual(o.Y) && q.Z.ApproxEqual(o.Z) && q.W.ApproxEqual(o.W)
}

// SameRotation reports whether q and o describe the same rotation, which is
// the case when they are approximately equal up to sign.
func (q Quaternion) SameRotation(o Quaternion) bool {
	return q.ApproxEqual(o) || q.ApproxEqual(o.Neg())
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}
