package render

import (
	"encoding/json"

	"github.com/chazu/stockyard/pkg/number"
)

const (
	TypeSrgba = "Srgba"
	TypeHsla  = "Hsla"
)

// Color is a base color in one of the supported color spaces.
type Color interface {
	ToSrgba() Srgba
	colorType() string
}

var (
	White = Srgba{Red: number.One, Green: number.One, Blue: number.One, Alpha: number.One}
	Black = Srgba{Alpha: number.One}
)

// Srgba is a gamma-encoded sRGB color with components in [0, 1].
type Srgba struct {
	Red   number.Number `json:"red" yaml:"red"`
	Green number.Number `json:"green" yaml:"green"`
	Blue  number.Number `json:"blue" yaml:"blue"`
	Alpha number.Number `json:"alpha" yaml:"alpha"`
}

func (Srgba) colorType() string { return TypeSrgba }

func (c Srgba) ToSrgba() Srgba { return c }

// Float32s returns the components as r, g, b, a.
func (c Srgba) Float32s() [4]float32 {
	return [4]float32{c.Red.Float32(), c.Green.Float32(), c.Blue.Float32(), c.Alpha.Float32()}
}

func (c Srgba) MarshalJSON() ([]byte, error) {
	type plain Srgba
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{TypeSrgba, plain(c)})
}

func (c Srgba) MarshalYAML() (interface{}, error) {
	type plain Srgba
	return struct {
		Type  string `yaml:"type"`
		plain `yaml:",inline"`
	}{TypeSrgba, plain(c)}, nil
}

// Hsla is a color given by hue in degrees and saturation, lightness and
// alpha in [0, 1].
type Hsla struct {
	Hue        number.Number `json:"hue" yaml:"hue"`
	Saturation number.Number `json:"saturation" yaml:"saturation"`
	Lightness  number.Number `json:"lightness" yaml:"lightness"`
	Alpha      number.Number `json:"alpha" yaml:"alpha"`
}

func (Hsla) colorType() string { return TypeHsla }

var (
	sixty = number.FromInt(60)
	six   = number.FromInt(6)
)

// ToSrgba converts c using the standard hexcone model. Hues outside
// [0, 360) wrap around.
func (c Hsla) ToSrgba() Srgba {
	h := wrapMod(c.Hue.Quo(sixty), six)
	chroma := number.One.Sub(c.Lightness.Mul(number.Two).Sub(number.One).Abs()).Mul(c.Saturation)
	x := chroma.Mul(number.One.Sub(wrapMod(h, number.Two).Sub(number.One).Abs()))
	m := c.Lightness.Sub(chroma.Mul(number.Half))

	var r, g, b number.Number
	sector, _ := h.Floor().Int64()
	switch sector {
	case 0:
		r, g = chroma, x
	case 1:
		r, g = x, chroma
	case 2:
		g, b = chroma, x
	case 3:
		g, b = x, chroma
	case 4:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}
	return Srgba{Red: r.Add(m), Green: g.Add(m), Blue: b.Add(m), Alpha: c.Alpha}
}

// wrapMod returns n modulo d in [0, d).
func wrapMod(n, d number.Number) number.Number {
	return n.Sub(n.Quo(d).Floor().Mul(d))
}

func (c Hsla) MarshalJSON() ([]byte, error) {
	type plain Hsla
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{TypeHsla, plain(c)})
}

func (c Hsla) MarshalYAML() (interface{}, error) {
	type plain Hsla
	return struct {
		Type  string `yaml:"type"`
		plain `yaml:",inline"`
	}{TypeHsla, plain(c)}, nil
}
