package unit

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chazu/stockyard/pkg/number"
)

func TestLengthConversions(t *testing.T) {
	forty := NewLength[Millimeters](number.FromInt(40))
	assert.Equal(t, number.MustParse("0.04"), forty.Canonical())
	assert.Equal(t, number.FromInt(40), LengthIn[Millimeters](forty))
	assert.Equal(t, number.FromInt(4), LengthIn[Centimeters](forty))

	inch := NewLength[Inches](number.One)
	assert.Equal(t, number.MustParse("25.4"), LengthIn[Millimeters](inch))
	assert.Equal(t, number.FromInt(12), LengthIn[Inches](NewLength[Feet](number.One)))
	assert.Equal(t, number.FromInt(5280), LengthIn[Feet](NewLength[Miles](number.One)))
	assert.Equal(t, number.FromInt(1852), LengthIn[Meters](NewLength[NauticalMiles](number.One)))
}

func TestRoundTrip(t *testing.T) {
	values := []number.Number{number.Zero, number.One, number.MustParse("0.1"), number.MustParse("-37.25"), number.MustParse("123456.789")}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			assert.True(t, v.ApproxEqual(LengthIn[Yards](NewLength[Yards](v))))
			assert.True(t, v.ApproxEqual(AreaIn[Acres](NewArea[Acres](v))))
			assert.True(t, v.ApproxEqual(VolumeIn[FluidOunces](NewVolume[FluidOunces](v))))
			assert.True(t, v.ApproxEqual(AngleIn[Degrees](NewAngle[Degrees](v))))
		})
	}
}

func TestSameDimensionArithmetic(t *testing.T) {
	a := NewLength[Meters](number.FromInt(3))
	b := NewLength[Meters](number.FromInt(2))
	assert.Equal(t, NewLength[Meters](number.FromInt(5)), a.Add(b))
	assert.Equal(t, NewLength[Meters](number.One), a.Sub(b))
	assert.Equal(t, NewLength[Meters](number.FromInt(-3)), a.Neg())
	assert.Equal(t, a, a.Neg().Abs())
	assert.Equal(t, NewLength[Meters](number.FromInt(6)), a.Mul(number.Two))
	assert.Equal(t, NewLength[Meters](number.One), b.Quo(number.Two))
	assert.Equal(t, number.MustParse("1.5"), a.Ratio(b))
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, b, a.Min(b))
	assert.Equal(t, a, a.Max(b))
	assert.True(t, ZeroLength().IsZero())
	assert.True(t, NewLength[Millimeters](number.FromInt(1000)).Equal(NewLength[Meters](number.One)))
}

func TestCrossDimension(t *testing.T) {
	two := NewLength[Meters](number.Two)
	three := NewLength[Meters](number.FromInt(3))

	area := two.MulLength(three)
	assert.Equal(t, number.FromInt(6), AreaIn[SquareMeters](area))
	assert.Equal(t, number.FromInt(6000000), AreaIn[SquareMillimeters](area))
	assert.Equal(t, three, area.QuoLength(two))

	vol := area.MulLength(two)
	assert.Equal(t, vol, two.MulArea(area))
	assert.Equal(t, number.FromInt(12000), VolumeIn[Liters](vol))
	assert.Equal(t, area, vol.QuoLength(two))
	assert.Equal(t, two, vol.QuoArea(area))

	assert.Equal(t, three, NewArea[SquareMeters](number.FromInt(9)).Sqrt())
	assert.True(t, three.ApproxEqual(NewVolume[CubicMeters](number.FromInt(27)).Cbrt()))
}

func TestVolumeUnits(t *testing.T) {
	assert.Equal(t, number.FromInt(1000), VolumeIn[Milliliters](NewVolume[Liters](number.One)))
	assert.Equal(t, number.MustParse("3.785411784"), VolumeIn[Liters](NewVolume[Gallons](number.One)))
	assert.Equal(t, number.FromInt(4), VolumeIn[Quarts](NewVolume[Gallons](number.One)))
	assert.Equal(t, number.Two, VolumeIn[Pints](NewVolume[Quarts](number.One)))
	assert.Equal(t, number.FromInt(1728), VolumeIn[CubicInches](NewVolume[CubicFeet](number.One)))
}

func TestAngle(t *testing.T) {
	assert.True(t, HalfTurn.ApproxEqual(NewAngle[Degrees](number.FromInt(180))))
	assert.True(t, FullTurn.ApproxEqual(NewAngle[Turns](number.One)))
	assert.True(t, QuarterTurn.ApproxEqual(NewAngle[Gradians](number.FromInt(100))))
	assert.Equal(t, number.One, QuarterTurn.Sin())
	assert.Equal(t, number.Zero, QuarterTurn.Cos())
	assert.True(t, number.Half.ApproxEqual(NewAngle[Degrees](number.FromInt(60)).Cos()))
	assert.True(t, number.One.ApproxEqual(NewAngle[Degrees](number.FromInt(45)).Tan()))
	assert.Equal(t, QuarterTurn, AngleFromAtan2(number.One, number.Zero))
	assert.True(t, number.FromInt(30).ApproxEqual(AngleIn[Degrees](AngleFromAsin(number.Half))))
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"40 mm", NewLength[Millimeters](number.FromInt(40))},
		{"40mm", NewLength[Millimeters](number.FromInt(40))},
		{"  1.5 ft ", NewLength[Feet](number.MustParse("1.5"))},
		{"2e1mm", NewLength[Millimeters](number.FromInt(20))},
		{"-3 in", NewLength[Inches](number.FromInt(-3))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	v, err := ParseVolume("2 l")
	require.NoError(t, err)
	assert.Equal(t, number.FromInt(2000), VolumeIn[Milliliters](v))

	a, err := ParseArea("1 ac")
	require.NoError(t, err)
	assert.Equal(t, number.MustParse("4046.8564224"), a.Canonical())
}

func TestParseQuantityErrors(t *testing.T) {
	_, err := ParseLength("40 parsecs")
	assert.True(t, errors.Is(err, ErrUnknownUnit))

	_, err = ParseLength("40 mm2")
	assert.True(t, errors.Is(err, ErrUnknownUnit), "area symbol is not a length unit")

	_, err = ParseLength("40")
	assert.True(t, errors.Is(err, ErrMissingUnit))

	_, err = ParseAngle("abc deg")
	assert.True(t, errors.Is(err, number.ErrSyntax))
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.04 m", NewLength[Millimeters](number.FromInt(40)).String())
	assert.Equal(t, "1.5 m2", NewArea[SquareMeters](number.MustParse("1.5")).String())
	assert.Equal(t, "0 rad", ZeroAngle().String())
}

func TestJSON(t *testing.T) {
	type beam struct {
		Length Length `json:"length"`
		Width  Length `json:"width"`
	}
	data, err := json.Marshal(beam{Length: NewLength[Meters](number.Two), Width: NewLength[Millimeters](number.FromInt(40))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"length":2,"width":0.04}`, string(data))

	var got beam
	require.NoError(t, json.Unmarshal([]byte(`{"length":"2 ft","width":0.5}`), &got))
	assert.Equal(t, NewLength[Feet](number.Two), got.Length)
	assert.Equal(t, NewLength[Meters](number.Half), got.Width)

	err = json.Unmarshal([]byte(`{"length":"2 kg"}`), &got)
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}

func TestYAML(t *testing.T) {
	type seat struct {
		Height Length `yaml:"height"`
		Tilt   Angle  `yaml:"tilt"`
	}
	var got seat
	require.NoError(t, yaml.Unmarshal([]byte("height: 450 mm\ntilt: 0.25\n"), &got))
	assert.Equal(t, NewLength[Millimeters](number.FromInt(450)), got.Height)
	assert.Equal(t, NewAngle[Radians](number.Quarter), got.Tilt)

	data, err := yaml.Marshal(got)
	require.NoError(t, err)
	var again seat
	require.NoError(t, yaml.Unmarshal(data, &again))
	assert.Equal(t, got, again)

	err = yaml.Unmarshal([]byte("height: [1]\n"), &got)
	assert.Error(t, err)
}
