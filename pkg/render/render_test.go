package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

func n(v int64) number.Number { return number.FromInt(v) }

func meters(v int64) unit.Length { return unit.NewLength[unit.Meters](n(v)) }

func pos(x, y, z int64) geom.Vector3[unit.Length] { return geom.Vec3(meters(x), meters(y), meters(z)) }

func box(x, y, z int64) Cuboid {
	return Cuboid{XLength: meters(x), YLength: meters(y), ZLength: meters(z)}
}

func TestCuboidBounds(t *testing.T) {
	c := box(2, 4, 6)
	assert.Equal(t, AABB{Min: pos(-1, -2, -3), Max: pos(1, 2, 3)}, c.Bounds(geom.IdentityTransform()))

	turned := geom.IdentityTransform().RotateAbout(geom.ZAxis, unit.QuarterTurn).Translate(meters(10), meters(0), meters(0))
	assert.Equal(t, AABB{Min: pos(8, -1, -3), Max: pos(12, 1, 3)}, c.Bounds(turned))

	scaled := geom.IdentityTransform().Scale(geom.Vec3(n(2), n(1), n(1)))
	assert.Equal(t, AABB{Min: pos(-2, -2, -3), Max: pos(2, 2, 3)}, c.Bounds(scaled))
}

func TestCircleBounds(t *testing.T) {
	c := Circle{Radius: meters(1)}
	assert.Equal(t, AABB{Min: pos(-1, 0, -1), Max: pos(1, 0, 1)}, c.Bounds(geom.IdentityTransform()))

	upright := geom.IdentityTransform().RotateAbout(geom.XAxis, unit.QuarterTurn)
	assert.Equal(t, AABB{Min: pos(-1, -1, 0), Max: pos(1, 1, 0)}, c.Bounds(upright))
}

func TestAABB(t *testing.T) {
	a := AABB{Min: pos(0, 0, 0), Max: pos(1, 1, 1)}
	b := AABB{Min: pos(-1, 2, 0), Max: pos(0, 3, 4)}
	u := a.Union(b)
	assert.Equal(t, AABB{Min: pos(-1, 0, 0), Max: pos(1, 3, 4)}, u)
	assert.Equal(t, pos(2, 3, 4), u.Size())
	assert.True(t, u.Contains(pos(0, 1, 2)))
	assert.False(t, a.Contains(pos(2, 0, 0)))
}

func TestHslaToSrgba(t *testing.T) {
	half := number.Half
	tests := []struct {
		name string
		in   Hsla
		want Srgba
	}{
		{"red", Hsla{Hue: n(0), Saturation: n(1), Lightness: half, Alpha: n(1)}, Srgba{Red: n(1), Green: n(0), Blue: n(0), Alpha: n(1)}},
		{"green", Hsla{Hue: n(120), Saturation: n(1), Lightness: half, Alpha: n(1)}, Srgba{Red: n(0), Green: n(1), Blue: n(0), Alpha: n(1)}},
		{"blue", Hsla{Hue: n(240), Saturation: n(1), Lightness: half, Alpha: half}, Srgba{Red: n(0), Green: n(0), Blue: n(1), Alpha: half}},
		{"wrapped hue", Hsla{Hue: n(480), Saturation: n(1), Lightness: half, Alpha: n(1)}, Srgba{Red: n(0), Green: n(1), Blue: n(0), Alpha: n(1)}},
		{"negative hue", Hsla{Hue: n(-120), Saturation: n(1), Lightness: half, Alpha: n(1)}, Srgba{Red: n(0), Green: n(0), Blue: n(1), Alpha: n(1)}},
		{"white", Hsla{Hue: n(200), Saturation: n(0), Lightness: n(1), Alpha: n(1)}, White},
		{"yellow", Hsla{Hue: n(60), Saturation: n(1), Lightness: half, Alpha: n(1)}, Srgba{Red: n(1), Green: n(1), Blue: n(0), Alpha: n(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToSrgba())
		})
	}
	assert.Equal(t, White, White.ToSrgba())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, Black.Float32s())
}

func TestMaterialAsKey(t *testing.T) {
	seen := map[Material]int{}
	seen[DefaultMaterial()]++
	seen[WithColor(White)]++
	seen[WithColor(Black)]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[DefaultMaterial()])

	shapes := map[Shape]int{box(1, 1, 1): 1, Circle{Radius: meters(1)}: 2}
	assert.Equal(t, 1, shapes[box(1, 1, 1)])
}

func sample() Renderable {
	r := New()
	seat := r.InsertShape("seat", box(2, 2, 2))
	leg := r.InsertShape("leg", box(1, 4, 1))
	wood := r.InsertMaterial("wood", WithColor(Hsla{Hue: n(30), Saturation: half(), Lightness: half(), Alpha: n(1)}))
	r.InsertInstance(NewInstance(seat, wood).WithChildren(
		Instance{Shape: leg, Material: wood, Transform: geom.FromTranslation(pos(0, -2, 0))},
	))
	return r
}

func half() number.Number { return number.Half }

func TestValidate(t *testing.T) {
	r := sample()
	require.NoError(t, r.Validate())

	r.InsertInstance(Instance{Transform: geom.IdentityTransform(), Children: []Instance{
		NewInstance("missing", "wood"),
		NewInstance("seat", "paint"),
		{Shape: "seat", Transform: geom.IdentityTransform()},
	}})
	err := r.Validate()
	require.Error(t, err)

	problems := r.Problems()
	require.Len(t, problems, 3)
	assert.Equal(t, CodeMissingShape, problems[0].Code)
	assert.Equal(t, "instances[1].children[0]", problems[0].Path)
	assert.Equal(t, CodeMissingMaterial, problems[1].Code)
	assert.Equal(t, CodeIncompleteInstance, problems[2].Code)

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CodeMissingShape, ve.Code)
	assert.Contains(t, err.Error(), "non-existent material: paint")
}

func TestValidateStoredValues(t *testing.T) {
	r := New()
	r.InsertShape("nothing", nil)
	m := DefaultMaterial()
	m.AlphaMode.Mode = "sparkle"
	r.InsertMaterial("odd", m)
	problems := r.Problems()
	require.Len(t, problems, 2)
	assert.Equal(t, CodeNilShape, problems[0].Code)
	assert.Equal(t, CodeInvalidMaterial, problems[1].Code)
}

func TestProblemsOrderIsStable(t *testing.T) {
	r := New()
	for _, key := range []ShapeKey{"e", "b", "d", "a", "c"} {
		r.InsertShape(key, nil)
	}
	for _, key := range []MaterialKey{"z", "x", "y"} {
		r.InsertMaterial(key, Material{AlphaMode: AlphaMode{Mode: AlphaOpaque}})
	}
	want := r.Validate().Error()
	for i := 0; i < 20; i++ {
		require.Equal(t, want, r.Validate().Error())
	}

	var got []string
	for _, p := range r.Problems() {
		got = append(got, p.Message)
	}
	assert.Equal(t, []string{
		`Shape "a" has no value`,
		`Shape "b" has no value`,
		`Shape "c" has no value`,
		`Shape "d" has no value`,
		`Shape "e" has no value`,
		`Material "x" has no base color`,
		`Material "y" has no base color`,
		`Material "z" has no base color`,
	}, got)
}

func TestRenderableBounds(t *testing.T) {
	_, ok := New().Bounds()
	assert.False(t, ok)

	r := sample()
	b, ok := r.Bounds()
	require.True(t, ok)
	assert.Equal(t, AABB{Min: pos(-1, -4, -1), Max: pos(1, 1, 1)}, b)

	moved := r.WithRootTransform(geom.FromTranslation(pos(10, 0, 0)))
	b, ok = moved.Bounds()
	require.True(t, ok)
	assert.Equal(t, AABB{Min: pos(9, -4, -1), Max: pos(11, 1, 1)}, b)
	assert.Equal(t, geom.IdentityTransform(), r.Instances[0].Transform, "original untouched")
}

func TestWalk(t *testing.T) {
	r := sample()
	var keys []ShapeKey
	var worlds []geom.Vector3[unit.Length]
	r.WithRootTransform(geom.FromTranslation(pos(1, 0, 0))).Walk(func(inst Instance, world geom.Transform) {
		keys = append(keys, inst.Shape)
		worlds = append(worlds, world.Translation)
	})
	assert.Equal(t, []ShapeKey{"seat", "leg"}, keys)
	assert.Equal(t, []geom.Vector3[unit.Length]{pos(1, 0, 0), pos(1, -2, 0)}, worlds)
	assert.Equal(t, 2, r.Instances[0].Count())
}

func TestSingle(t *testing.T) {
	r := Single("panel", box(1, 1, 1), DefaultMaterial())
	require.NoError(t, r.Validate())
	assert.Len(t, r.Instances, 1)
	assert.Equal(t, ShapeKey("panel"), r.Instances[0].Shape)
	assert.Equal(t, MaterialKey("panel"), r.Instances[0].Material)
}
