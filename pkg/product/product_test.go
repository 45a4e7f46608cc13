package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

func meters(v int64) unit.Length { return unit.NewLength[unit.Meters](number.FromInt(v)) }

func pos(x, y, z int64) geom.Vector3[unit.Length] { return geom.Vec3(meters(x), meters(y), meters(z)) }

func cube(name string) Piece {
	return Piece{
		Name:     name,
		Shape:    render.Cuboid{XLength: meters(2), YLength: meters(2), ZLength: meters(2)},
		Material: render.DefaultMaterial(),
	}
}

func translations(rs []render.Renderable) []geom.Vector3[unit.Length] {
	var out []geom.Vector3[unit.Length]
	for _, r := range rs {
		for _, inst := range r.Instances {
			out = append(out, inst.Transform.Translation)
		}
	}
	return out
}

type pair struct{ gap unit.Length }

func (p pair) Products() []Product {
	return []Product{
		Place(cube("left")).Translate(p.gap, meters(0), meters(0)),
		Place(cube("right")).Translate(p.gap.Neg(), meters(0), meters(0)),
	}
}

func TestFlattenComposesParentTransform(t *testing.T) {
	p := PlaceAssembly(pair{gap: meters(1)}).Translate(meters(5), meters(0), meters(0))
	rs, err := Flatten(p)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, []geom.Vector3[unit.Length]{pos(6, 0, 0), pos(4, 0, 0)}, translations(rs))
	assert.Equal(t, render.ShapeKey("left"), rs[0].Instances[0].Shape)
}

func TestFlattenKinds(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want []geom.Vector3[unit.Length]
	}{
		{"none", None().Translate(meters(1), meters(1), meters(1)), nil},
		{"nil stock", Place(nil), nil},
		{"stock", Place(cube("a")).Translate(meters(0), meters(3), meters(0)), []geom.Vector3[unit.Length]{pos(0, 3, 0)}},
		{"empty group", GroupOf(), nil},
		{"group skips none", GroupOf(None(), Place(cube("a")), None()).Translate(meters(1), meters(0), meters(0)), []geom.Vector3[unit.Length]{pos(1, 0, 0)}},
		{"nested groups", GroupOf(GroupOf(Place(cube("a")).Translate(meters(0), meters(0), meters(1))).Translate(meters(0), meters(2), meters(0))), []geom.Vector3[unit.Length]{pos(0, 2, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := Flatten(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, translations(rs))
		})
	}
}

func TestFlattenRotatedParent(t *testing.T) {
	p := PlaceAssembly(pair{gap: meters(1)}).Rotate(geom.ZAxis, unit.QuarterTurn)
	rs, err := Flatten(p)
	require.NoError(t, err)
	assert.Equal(t, []geom.Vector3[unit.Length]{pos(0, 1, 0), pos(0, -1, 0)}, translations(rs))

	pivoted := Place(cube("a")).Translate(meters(2), meters(0), meters(0)).Rotate(geom.ZAxis, unit.QuarterTurn, pos(1, 0, 0))
	assert.Equal(t, pos(1, 1, 0), pivoted.Transform().Translation)
}

type ouroboros struct{}

func (o ouroboros) Products() []Product { return []Product{PlaceAssembly(o)} }

func TestFlattenTooDeep(t *testing.T) {
	_, err := Flatten(PlaceAssembly(ouroboros{}))
	assert.ErrorIs(t, err, ErrTooDeep)

	deep := Place(cube("a"))
	for i := 0; i < 5; i++ {
		deep = GroupOf(deep)
	}
	_, err = FlattenDepth(deep, 3)
	assert.ErrorIs(t, err, ErrTooDeep)
	rs, err := FlattenDepth(deep, 5)
	require.NoError(t, err)
	assert.Len(t, rs, 1)
}

func TestProductIsAValue(t *testing.T) {
	base := Place(cube("a"))
	moved := base.Translate(meters(1), meters(0), meters(0))
	assert.True(t, base.Transform().IsIdentity())
	assert.Equal(t, pos(1, 0, 0), moved.Transform().Translation)

	g := GroupOf(base, moved)
	members := g.Members()
	members[0] = None()
	assert.Equal(t, KindStock, g.Members()[0].Kind())
}

func TestAccessors(t *testing.T) {
	s, ok := Place(cube("a")).Stock()
	assert.True(t, ok)
	assert.Equal(t, cube("a"), s)
	_, ok = None().Stock()
	assert.False(t, ok)

	a, ok := PlaceAssembly(pair{}).Assembly()
	assert.True(t, ok)
	assert.Equal(t, pair{}, a)

	assert.Equal(t, "group", Group{None()}.Product().Kind().String())
	assert.Equal(t, "none", None().Kind().String())
}

func TestCountAndBounds(t *testing.T) {
	p := GroupOf(PlaceAssembly(pair{gap: meters(3)}), Place(cube("c")).Translate(meters(0), meters(10), meters(0)), None())
	n, err := Count(p)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	box, ok, err := Bounds(p)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, render.AABB{Min: pos(-4, -1, -1), Max: pos(4, 11, 1)}, box)

	_, ok, err = Bounds(None())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMirrorAndScale(t *testing.T) {
	p := Place(cube("a")).Translate(meters(2), meters(0), meters(0)).Mirror(geom.XAxis)
	assert.Equal(t, pos(-2, 0, 0), p.Transform().Translation)

	s := Place(cube("a")).Scale(geom.Vec3(number.Two, number.One, number.One))
	box, ok, err := Bounds(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, render.AABB{Min: pos(-2, -1, -1), Max: pos(2, 1, 1)}, box)
}

type shelf struct{ boards []Product }

func (s *shelf) Products() []Product { return s.boards }

func (s *shelf) Clone() Assembly {
	return &shelf{boards: append([]Product(nil), s.boards...)}
}

func TestClone(t *testing.T) {
	orig := &shelf{boards: []Product{Place(cube("a"))}}
	p := GroupOf(PlaceAssembly(orig))
	c := p.Clone()

	orig.boards = append(orig.boards, Place(cube("b")))
	n, err := Count(c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = Count(p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStockFunc(t *testing.T) {
	calls := 0
	s := StockFunc(func() render.Renderable {
		calls++
		return cube("f").Render()
	})
	rs, err := Flatten(GroupOf(Place(s), Place(s)))
	require.NoError(t, err)
	assert.Len(t, rs, 2)
	assert.Equal(t, 2, calls)
}
