package geom

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/number"
)

// Vector3 is a 3-component vector over a scalar type.
type Vector3[N Scalar[N]] struct {
	X N `json:"x" yaml:"x"`
	Y N `json:"y" yaml:"y"`
	Z N `json:"z" yaml:"z"`
}

// Vec3 returns the vector (x, y, z).
func Vec3[N Scalar[N]](x, y, z N) Vector3[N] {
	return Vector3[N]{X: x, Y: y, Z: z}
}

// Splat returns a vector with every component set to v.
func Splat[N Scalar[N]](v N) Vector3[N] {
	return Vector3[N]{X: v, Y: v, Z: v}
}

var (
	XAxis = Vector3[number.Number]{X: number.One}
	YAxis = Vector3[number.Number]{Y: number.One}
	ZAxis = Vector3[number.Number]{Z: number.One}
)

// Ones is the unitless vector (1, 1, 1).
var Ones = Splat(number.One)

func (v Vector3[N]) Add(o Vector3[N]) Vector3[N] {
	return Vector3[N]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

func (v Vector3[N]) Sub(o Vector3[N]) Vector3[N] {
	return Vector3[N]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

func (v Vector3[N]) Neg() Vector3[N] {
	return Vector3[N]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// Mul scales v by n.
func (v Vector3[N]) Mul(n number.Number) Vector3[N] {
	return Vector3[N]{v.X.Mul(n), v.Y.Mul(n), v.Z.Mul(n)}
}

// Quo divides v by n.
func (v Vector3[N]) Quo(n number.Number) Vector3[N] {
	return Vector3[N]{v.X.Quo(n), v.Y.Quo(n), v.Z.Quo(n)}
}

// MulComponents multiplies v component-wise by s.
func (v Vector3[N]) MulComponents(s Vector3[number.Number]) Vector3[N] {
	return Vector3[N]{v.X.Mul(s.X), v.Y.Mul(s.Y), v.Z.Mul(s.Z)}
}

// Dot returns v·d for a unitless d. The result keeps v's scalar type.
func (v Vector3[N]) Dot(d Vector3[number.Number]) N {
	return v.X.Mul(d.X).Add(v.Y.Mul(d.Y)).Add(v.Z.Mul(d.Z))
}

// Magnitude returns the Euclidean length of v. Components are scaled by the
// largest one before squaring so that Pythagorean inputs stay exact and
// large quantities do not overflow.
func (v Vector3[N]) Magnitude() N {
	pivot := v.X.Abs()
	for _, c := range [...]N{v.Y.Abs(), v.Z.Abs()} {
		if c.Cmp(pivot) > 0 {
			pivot = c
		}
	}
	if pivot.IsZero() {
		return pivot
	}
	p := pivot.Canonical()
	if p.IsInf(0) {
		return pivot
	}
	x := v.X.Canonical().Quo(p)
	y := v.Y.Canonical().Quo(p)
	z := v.Z.Canonical().Quo(p)
	return pivot.Mul(x.Mul(x).Add(y.Mul(y)).Add(z.Mul(z)).Sqrt())
}

// Normalize returns the unitless direction of v. The zero vector normalizes
// to the zero vector.
func (v Vector3[N]) Normalize() Vector3[number.Number] {
	m := v.Magnitude().Canonical()
	if m.IsZero() {
		return Vector3[number.Number]{}
	}
	c := v.Canonical()
	return Vector3[number.Number]{c.X.Quo(m), c.Y.Quo(m), c.Z.Quo(m)}
}

// Canonical strips the units from v.
func (v Vector3[N]) Canonical() Vector3[number.Number] {
	return Vector3[number.Number]{v.X.Canonical(), v.Y.Canonical(), v.Z.Canonical()}
}

// ApplyMatrix3 returns m·v.
func (v Vector3[N]) ApplyMatrix3(m Matrix3) Vector3[N] {
	return scaled(m.XAxis, v.X).Add(scaled(m.YAxis, v.Y)).Add(scaled(m.ZAxis, v.Z))
}

// ApplyQuaternion rotates v by the unit quaternion q.
func (v Vector3[N]) ApplyQuaternion(q Quaternion) Vector3[N] {
	return v.ApplyMatrix3(Matrix3FromQuaternion(q))
}

// Remap expresses v in the coordinates of basis, i.e. basisᵀ·v.
func (v Vector3[N]) Remap(basis Matrix3) Vector3[N] {
	return Vector3[N]{v.Dot(basis.XAxis), v.Dot(basis.YAxis), v.Dot(basis.ZAxis)}
}

// Reflect mirrors v across the plane with the given normal. The normal does
// not need to be unit length; a zero normal leaves v unchanged.
func (v Vector3[N]) Reflect(normal Vector3[number.Number]) Vector3[N] {
	n := normal.Normalize()
	if n.IsZero() {
		return v
	}
	return v.Sub(scaled(n, v.Dot(n).Mul(number.Two)))
}

// Min returns the component-wise minimum of v and o.
func (v Vector3[N]) Min(o Vector3[N]) Vector3[N] {
	return Vector3[N]{minOf(v.X, o.X), minOf(v.Y, o.Y), minOf(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3[N]) Max(o Vector3[N]) Vector3[N] {
	return Vector3[N]{maxOf(v.X, o.X), maxOf(v.Y, o.Y), maxOf(v.Z, o.Z)}
}

func (v Vector3[N]) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

func (v Vector3[N]) Equal(o Vector3[N]) bool {
	return v.X.Cmp(o.X) == 0 && v.Y.Cmp(o.Y) == 0 && v.Z.Cmp(o.Z) == 0
}

func (v Vector3[N]) ApproxEqual(o Vector3[N]) bool {
	return v.X.ApproxEqual(o.X) && v.Y.ApproxEqual(o.Y) && v.Z.ApproxEqual(o.Z)
}

func (v Vector3[N]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// scaled returns the unitless vector d scaled by s, carrying s's type.
func scaled[N Scalar[N]](d Vector3[number.Number], s N) Vector3[N] {
	return Vector3[N]{s.Mul(d.X), s.Mul(d.Y), s.Mul(d.Z)}
}

// Cross returns a × b.
func Cross(a, b Vector3[number.Number]) Vector3[number.Number] {
	return CrossWith(a, b, number.Number.Mul)
}

// CrossWith returns a × b where the component products are formed by mul,
// which lets dimensioned vectors produce the matching result dimension:
//
//	area := geom.CrossWith(a, b, unit.Length.MulLength)
func CrossWith[A Scalar[A], B Scalar[B], C Scalar[C]](a Vector3[A], b Vector3[B], mul func(A, B) C) Vector3[C] {
	return Vector3[C]{
		X: mul(a.Y, b.Z).Sub(mul(a.Z, b.Y)),
		Y: mul(a.Z, b.X).Sub(mul(a.X, b.Z)),
		Z: mul(a.X, b.Y).Sub(mul(a.Y, b.X)),
	}
}

// DotWith returns a·b where the component products are formed by mul.
func DotWith[A Scalar[A], B Scalar[B], C Scalar[C]](a Vector3[A], b Vector3[B], mul func(A, B) C) C {
	return mul(a.X, b.X).Add(mul(a.Y, b.Y)).Add(mul(a.Z, b.Z))
}

// Outer returns the outer product a⊗b, whose column j is a scaled by b_j.
func Outer(a, b Vector3[number.Number]) Matrix3 {
	return Matrix3{XAxis: a.Mul(b.X), YAxis: a.Mul(b.Y), ZAxis: a.Mul(b.Z)}
}
