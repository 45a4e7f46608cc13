package geom

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

// Transform is an affine map: a unitless linear part (rotation, scale and
// shear) followed by a translation in length units.
//
// The zero Transform collapses space to its translation; use
// IdentityTransform as the starting point.
type Transform struct {
	Translation Vector3[unit.Length]
	Linear      Matrix3
}

func IdentityTransform() Transform {
	return Transform{Linear: Identity3()}
}

// FromTranslation returns a pure translation.
func FromTranslation(t Vector3[unit.Length]) Transform {
	return Transform{Translation: t, Linear: Identity3()}
}

// FromTranslationRotationScale returns T·R·S.
func FromTranslationRotationScale(t Vector3[unit.Length], r Quaternion, s Vector3[number.Number]) Transform {
	return Transform{
		Translation: t,
		Linear:      Matrix3FromQuaternion(r).Mul(Matrix3FromScale(s)),
	}
}

// TranslationRotationScale decomposes t into translation, rotation and
// scale. A mirroring transform reports a negative X scale; an axis with zero
// scale is ignored when extracting the rotation.
func (t Transform) TranslationRotationScale() (Vector3[unit.Length], Quaternion, Vector3[number.Number]) {
	r, s := t.Linear.RotationScale()
	return t.Translation, r, s
}

// Translate moves t by (x, y, z) in the parent frame.
func (t Transform) Translate(x, y, z unit.Length) Transform {
	return t.TranslateBy(Vec3(x, y, z))
}

// TranslateBy moves t by v in the parent frame.
func (t Transform) TranslateBy(v Vector3[unit.Length]) Transform {
	t.Translation = t.Translation.Add(v)
	return t
}

// RotateQuaternion rotates the local axes of t by q. The translation is
// unchanged.
func (t Transform) RotateQuaternion(q Quaternion) Transform {
	t.Linear = t.Linear.Mul(Matrix3FromQuaternion(q))
	return t
}

// Rotate rotates t by angle around the line through origin with direction
// axis, in the parent frame. The origin acts as a pivot: it is subtracted
// before rotating and added back afterwards.
func (t Transform) Rotate(axis Vector3[number.Number], angle unit.Angle, origin Vector3[unit.Length]) Transform {
	r := Matrix3FromAxisAngle(axis, angle)
	return Transform{
		Translation: t.Translation.Sub(origin).ApplyMatrix3(r).Add(origin),
		Linear:      r.Mul(t.Linear),
	}
}

// RotateAbout rotates t by angle around axis through the parent origin.
func (t Transform) RotateAbout(axis Vector3[number.Number], angle unit.Angle) Transform {
	return t.Rotate(axis, angle, Vector3[unit.Length]{})
}

// Scale scales the local axes of t by s. The translation is unchanged.
func (t Transform) Scale(s Vector3[number.Number]) Transform {
	t.Linear = t.Linear.Mul(Matrix3FromScale(s))
	return t
}

// ChangeBasis re-expresses t in the coordinates of the orthonormal basis:
// the linear part becomes basisᵀ·L·basis and the translation basisᵀ·t. The
// orientation of the geometry in space is unchanged.
func (t Transform) ChangeBasis(basis Matrix3) Transform {
	return Transform{
		Translation: t.Translation.Remap(basis),
		Linear:      basis.Transpose().Mul(t.Linear).Mul(basis),
	}
}

// Mirror reflects t across the plane through the parent origin whose normal
// is axis. The axis is normalized; a zero axis leaves t unchanged.
func (t Transform) Mirror(axis Vector3[number.Number]) Transform {
	r := Reflection(axis)
	return Transform{
		Translation: t.Translation.ApplyMatrix3(r),
		Linear:      r.Mul(t.Linear),
	}
}

// Compose returns t∘c: the transform that applies c first and then t.
func (t Transform) Compose(c Transform) Transform {
	return Transform{
		Translation: c.Translation.ApplyMatrix3(t.Linear).Add(t.Translation),
		Linear:      t.Linear.Mul(c.Linear),
	}
}

// Inverse returns the transform undoing t. A transform with a singular
// linear part has no inverse and reports false.
func (t Transform) Inverse() (Transform, bool) {
	inv, ok := t.Linear.Inverse()
	if !ok {
		return Transform{}, false
	}
	return Transform{
		Translation: t.Translation.ApplyMatrix3(inv).Neg(),
		Linear:      inv,
	}, true
}

// ApplyPoint maps the point p through t.
func (t Transform) ApplyPoint(p Vector3[unit.Length]) Vector3[unit.Length] {
	return p.ApplyMatrix3(t.Linear).Add(t.Translation)
}

// ApplyVector maps the direction v through the linear part of t.
func (t Transform) ApplyVector(v Vector3[number.Number]) Vector3[number.Number] {
	return v.ApplyMatrix3(t.Linear)
}

func (t Transform) IsIdentity() bool {
	return t.Translation.IsZero() && t.Linear.IsIdentity()
}

func (t Transform) Equal(o Transform) bool {
	return t == o
}

func (t Transform) ApproxEqual(o Transform) bool {
	return t.Translation.ApproxEqual(o.Translation) && t.Linear.ApproxEqual(o.Linear)
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform{translation: %v, linear: %v}", t.Translation, t.Linear)
}
