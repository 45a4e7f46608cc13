package geom

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/number"
)

// Vector2 is a 2-component vector over a scalar type.
type Vector2[N Scalar[N]] struct {
	X N `json:"x" yaml:"x"`
	Y N `json:"y" yaml:"y"`
}

func Vec2[N Scalar[N]](x, y N) Vector2[N] {
	return Vector2[N]{X: x, Y: y}
}

func (v Vector2[N]) Add(o Vector2[N]) Vector2[N] { return Vector2[N]{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vector2[N]) Sub(o Vector2[N]) Vector2[N] { return Vector2[N]{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vector2[N]) Neg() Vector2[N]             { return Vector2[N]{v.X.Neg(), v.Y.Neg()} }
func (v Vector2[N]) Mul(n number.Number) Vector2[N] {
	return Vector2[N]{v.X.Mul(n), v.Y.Mul(n)}
}

func (v Vector2[N]) Dot(d Vector2[number.Number]) N {
	return v.X.Mul(d.X).Add(v.Y.Mul(d.Y))
}

func (v Vector2[N]) Equal(o Vector2[N]) bool {
	return v.X.Cmp(o.X) == 0 && v.Y.Cmp(o.Y) == 0
}

func (v Vector2[N]) ApproxEqual(o Vector2[N]) bool {
	return v.X.ApproxEqual(o.X) && v.Y.ApproxEqual(o.Y)
}

func (v Vector2[N]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Matrix2 is a 2×2 unitless matrix stored as two column vectors.
type Matrix2 struct {
	XAxis Vector2[number.Number] `json:"x_axis" yaml:"x_axis"`
	YAxis Vector2[number.Number] `json:"y_axis" yaml:"y_axis"`
}

func Matrix2FromCols(x, y Vector2[number.Number]) Matrix2 {
	return Matrix2{XAxis: x, YAxis: y}
}

func Matrix2FromRows(r0, r1 Vector2[number.Number]) Matrix2 {
	return Matrix2{XAxis: Vec2(r0.X, r1.X), YAxis: Vec2(r0.Y, r1.Y)}
}

func Matrix2FromDiagonal(d Vector2[number.Number]) Matrix2 {
	return Matrix2{XAxis: Vector2[number.Number]{X: d.X}, YAxis: Vector2[number.Number]{Y: d.Y}}
}

func Identity2() Matrix2 {
	return Matrix2FromDiagonal(Vec2(number.One, number.One))
}

// MulVec returns m·v.
func (m Matrix2) MulVec(v Vector2[number.Number]) Vector2[number.Number] {
	return m.XAxis.Mul(v.X).Add(m.YAxis.Mul(v.Y))
}

// Mul returns m·o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{XAxis: m.MulVec(o.XAxis), YAxis: m.MulVec(o.YAxis)}
}

// Affine2 is a 2D affine map, used for texture coordinate transforms.
type Affine2 struct {
	Matrix      Matrix2                `json:"matrix" yaml:"matrix"`
	Translation Vector2[number.Number] `json:"translation" yaml:"translation"`
}

func IdentityAffine2() Affine2 {
	return Affine2{Matrix: Identity2()}
}

// Affine2FromScale returns a scale about the origin.
func Affine2FromScale(s Vector2[number.Number]) Affine2 {
	return Affine2{Matrix: Matrix2FromDiagonal(s)}
}

// Affine2FromTranslation returns a pure translation.
func Affine2FromTranslation(t Vector2[number.Number]) Affine2 {
	return Affine2{Matrix: Identity2(), Translation: t}
}

// Mul returns a∘o: o is applied first.
func (a Affine2) Mul(o Affine2) Affine2 {
	return Affine2{
		Matrix:      a.Matrix.Mul(o.Matrix),
		Translation: a.Matrix.MulVec(o.Translation).Add(a.Translation),
	}
}

// TransformPoint maps p through a.
func (a Affine2) TransformPoint(p Vector2[number.Number]) Vector2[number.Number] {
	return a.Matrix.MulVec(p).Add(a.Translation)
}

func (a Affine2) IsIdentity() bool {
	return a == IdentityAffine2()
}
