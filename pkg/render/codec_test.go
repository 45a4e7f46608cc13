package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

func TestShapeJSON(t *testing.T) {
	data, err := json.Marshal(Shape(Circle{Radius: meters(2)}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "Circle", "radius": 2}`, string(data))

	data, err = json.Marshal(box(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "Cuboid", "x_length": 1, "y_length": 2, "z_length": 3}`, string(data))
}

func TestDecodeShape(t *testing.T) {
	s, err := DecodeShape(map[string]interface{}{
		"type":     "Cuboid",
		"x_length": "40 mm",
		"y_length": json.Number("0.5"),
		"z_length": 2,
	})
	require.NoError(t, err)
	want := Cuboid{
		XLength: unit.NewLength[unit.Millimeters](n(40)),
		YLength: unit.NewLength[unit.Meters](number.Half),
		ZLength: meters(2),
	}
	assert.Equal(t, want, s)

	_, err = DecodeShape(map[string]interface{}{"type": "Torus"})
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = DecodeShape(map[string]interface{}{"radius": 1})
	assert.Error(t, err)

	_, err = DecodeShape(map[string]interface{}{"type": "Circle", "radius": "3 parsecs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsecs")

	_, err = DecodeShape(map[string]interface{}{"type": "Circle", "diameter": 3})
	assert.Error(t, err, "unknown fields are rejected")
}

func TestDecodeColor(t *testing.T) {
	c, err := DecodeColor(map[string]interface{}{"type": "Srgba", "red": "0.25", "green": 1, "blue": 0, "alpha": 1})
	require.NoError(t, err)
	assert.Equal(t, Srgba{Red: number.Quarter, Green: n(1), Blue: n(0), Alpha: n(1)}, c)

	_, err = DecodeColor(map[string]interface{}{"type": "Cmyk"})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeMaterial(t *testing.T) {
	m, err := DecodeMaterial(map[string]interface{}{
		"base_color":         map[string]interface{}{"type": "Hsla", "hue": 30, "saturation": "0.5", "lightness": "0.5", "alpha": 1},
		"base_color_texture": "textures/oak.png",
		"alpha_mode":         map[string]interface{}{"mode": "mask", "cutoff": "0.25"},
		"metallic":           "0.1",
	})
	require.NoError(t, err)

	want := DefaultMaterial()
	want.BaseColor = Hsla{Hue: n(30), Saturation: number.Half, Lightness: number.Half, Alpha: n(1)}
	want.BaseColorTexture = "textures/oak.png"
	want.AlphaMode = Mask(number.Quarter)
	want.Metallic = number.MustParse("0.1")
	assert.Equal(t, want, m)

	m, err = DecodeMaterial(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaterial(), m)

	_, err = DecodeMaterial(map[string]interface{}{"base_color": "red"})
	assert.Error(t, err)
	_, err = DecodeMaterial(map[string]interface{}{"shininess": 4})
	assert.Error(t, err)
}

func TestRenderableJSONRoundTrip(t *testing.T) {
	r := sample()
	r.Materials["glass"] = Material{
		BaseColor:           Srgba{Red: number.MustParse("0.9"), Green: n(1), Blue: n(1), Alpha: number.MustParse("0.3")},
		NormalMapTexture:    "textures/ripple.png",
		AlphaMode:           AlphaMode{Mode: AlphaBlend},
		PerceptualRoughness: number.MustParse("0.05"),
		UVTransform:         geom.Affine2FromScale(geom.Vec2(n(2), n(2))),
	}
	r.Shapes["lens"] = Circle{Radius: unit.NewLength[unit.Centimeters](n(3))}
	r.InsertInstance(Instance{Shape: "lens", Material: "glass", Transform: geom.FromTranslation(pos(0, 3, 0))})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var got Renderable
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r, got)
	require.NoError(t, got.Validate())
}

func TestRenderableJSONDocument(t *testing.T) {
	doc := `{
		"shapes": {"top": {"type": "Cuboid", "x_length": "1 m", "y_length": "18 mm", "z_length": "600 mm"}},
		"materials": {"ply": {"base_color": {"type": "Srgba", "red": 0.8, "green": 0.7, "blue": 0.5, "alpha": 1}}},
		"instances": [{"shape": "top", "material": "ply", "transform": {"translation": {"y": "0.75 m"}}}]
	}`
	var r Renderable
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	require.NoError(t, r.Validate())

	assert.Equal(t, unit.NewLength[unit.Millimeters](n(18)), r.Shapes["top"].(Cuboid).YLength)
	assert.Equal(t, number.MustParse("0.7"), r.Materials["ply"].BaseColor.ToSrgba().Green)
	assert.Equal(t, number.Half, r.Materials["ply"].PerceptualRoughness)
	assert.Equal(t, geom.FromTranslation(geom.Vec3(unit.ZeroLength(), unit.NewLength[unit.Meters](number.MustParse("0.75")), unit.ZeroLength())), r.Instances[0].Transform)

	err := json.Unmarshal([]byte(`{"shapes": {"x": {"type": "Sphere"}}}`), &r)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestInstanceDefaultsToIdentity(t *testing.T) {
	var inst Instance
	require.NoError(t, json.Unmarshal([]byte(`{"shape": "a", "material": "b", "children": [{}]}`), &inst))
	assert.Equal(t, geom.IdentityTransform(), inst.Transform)
	require.Len(t, inst.Children, 1)
	assert.True(t, inst.Children[0].IsGroup())
	assert.Equal(t, geom.IdentityTransform(), inst.Children[0].Transform)
}

func TestRenderableYAML(t *testing.T) {
	doc := `
shapes:
  leg: {type: Cuboid, x_length: 2 in, y_length: 30 in, z_length: 2 in}
  foot: {type: Circle, radius: 0.05}
materials:
  paint:
    base_color: {type: Hsla, hue: 200, saturation: 0.5, lightness: 0.5, alpha: 1}
    metallic: 0.2
    alpha_mode: {mode: premultiplied}
instances:
  - shape: leg
    material: paint
    children:
      - {shape: foot, material: paint, transform: {translation: {y: -15 in}}}
`
	var r Renderable
	require.NoError(t, yaml.Unmarshal([]byte(doc), &r))
	require.NoError(t, r.Validate())

	assert.Equal(t, unit.NewLength[unit.Inches](n(30)), r.Shapes["leg"].(Cuboid).YLength)
	assert.Equal(t, Circle{Radius: unit.NewLength[unit.Meters](number.MustParse("0.05"))}, r.Shapes["foot"])
	assert.Equal(t, number.MustParse("0.2"), r.Materials["paint"].Metallic)
	assert.Equal(t, AlphaPremultiplied, r.Materials["paint"].AlphaMode.Mode)
	require.Len(t, r.Instances, 1)
	assert.Equal(t, unit.NewLength[unit.Inches](n(-15)), r.Instances[0].Children[0].Transform.Translation.Y)

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	var again Renderable
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, r, again)
}
