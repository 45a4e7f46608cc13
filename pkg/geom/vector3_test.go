package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

func n(v int64) number.Number { return number.FromInt(v) }

func meters(v int64) unit.Length { return unit.NewLength[unit.Meters](number.FromInt(v)) }

func vec(x, y, z int64) Vector3[number.Number] { return Vec3(n(x), n(y), n(z)) }

func pos(x, y, z int64) Vector3[unit.Length] { return Vec3(meters(x), meters(y), meters(z)) }

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3[number.Number]
		want number.Number
	}{
		{"zero", vec(0, 0, 0), number.Zero},
		{"axis", vec(0, -7, 0), n(7)},
		{"3-4-5", vec(3, 4, 0), n(5)},
		{"1-2-2", vec(1, -2, 2), n(3)},
		{"infinite", Vec3(number.Infinity, number.One, number.Zero), number.Infinity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Magnitude())
		})
	}

	assert.Equal(t, meters(5), pos(0, 3, 4).Magnitude())
	assert.True(t, meters(13).ApproxEqual(pos(3, 4, 12).Magnitude()))
	assert.True(t, Vec3(number.NaN, number.One, number.Zero).Magnitude().IsNaN())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vector3[number.Number]{}, vec(0, 0, 0).Normalize())
	assert.Equal(t, Vector3[number.Number]{}, Vector3[unit.Length]{}.Normalize())
	assert.Equal(t, Vec3(number.Zero, number.MustParse("0.6"), number.MustParse("0.8")), vec(0, 3, 4).Normalize())
	assert.Equal(t, XAxis, pos(40, 0, 0).Normalize())
}

func TestDotCross(t *testing.T) {
	assert.Equal(t, n(32), vec(1, 2, 3).Dot(vec(4, 5, 6)))
	assert.Equal(t, ZAxis, Cross(XAxis, YAxis))
	assert.Equal(t, XAxis, Cross(YAxis, ZAxis))
	assert.Equal(t, vec(-3, 6, -3), Cross(vec(1, 2, 3), vec(4, 5, 6)))

	assert.Equal(t, meters(3), pos(1, 2, 3).Dot(XAxis.Add(YAxis)))

	area := CrossWith(pos(2, 0, 0), pos(0, 3, 0), unit.Length.MulLength)
	assert.Equal(t, unit.NewArea[unit.SquareMeters](n(6)), area.Z)
	assert.True(t, area.X.IsZero())

	work := DotWith(pos(1, 2, 3), pos(4, 5, 6), unit.Length.MulLength)
	assert.Equal(t, unit.NewArea[unit.SquareMeters](n(32)), work)
}

func TestOuter(t *testing.T) {
	m := Outer(vec(1, 2, 3), vec(4, 5, 6))
	assert.Equal(t, vec(4, 8, 12), m.XAxis)
	assert.Equal(t, vec(6, 12, 18), m.ZAxis)
}

func TestReflect(t *testing.T) {
	assert.Equal(t, vec(1, -1, 0), vec(1, 1, 0).Reflect(vec(0, 2, 0)))
	assert.Equal(t, pos(3, 0, 0), pos(-3, 0, 0).Reflect(XAxis))
	assert.Equal(t, vec(1, 1, 0), vec(1, 1, 0).Reflect(vec(0, 0, 0)), "zero normal is a no-op")
}

func TestApplyMatrix(t *testing.T) {
	quarter := Matrix3FromAxisAngle(ZAxis, unit.QuarterTurn)
	assert.Equal(t, YAxis, XAxis.ApplyMatrix3(quarter))
	assert.Equal(t, pos(0, 2, 0), pos(2, 0, 0).ApplyMatrix3(quarter))
	assert.Equal(t, pos(1, 2, 3), pos(1, 2, 3).Remap(Identity3()))

	swap := Matrix3FromCols(YAxis, XAxis, ZAxis)
	assert.Equal(t, pos(2, 1, 3), pos(1, 2, 3).Remap(swap))
}

func TestMinMax(t *testing.T) {
	a, b := pos(1, 5, -2), pos(3, -1, 0)
	assert.Equal(t, pos(1, -1, -2), a.Min(b))
	assert.Equal(t, pos(3, 5, 0), a.Max(b))
}

func TestVectorApproxEqual(t *testing.T) {
	tiny := number.MustParse("1e-30")
	assert.True(t, vec(1, 2, 3).ApproxEqual(vec(1, 2, 3).Add(Splat(tiny))))
	assert.False(t, vec(1, 2, 3).Equal(vec(1, 2, 3).Add(Splat(tiny))))
	assert.Equal(t, "(1, 2, 3)", vec(1, 2, 3).String())
}
