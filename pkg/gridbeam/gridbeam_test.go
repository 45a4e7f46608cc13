package gridbeam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/product"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

func mm(v int64) unit.Length { return unit.NewLength[unit.Millimeters](number.FromInt(v)) }

func box(x0, y0, z0, x1, y1, z1 int64) render.AABB {
	return render.AABB{
		Min: geom.Vec3(mm(x0), mm(y0), mm(z0)),
		Max: geom.Vec3(mm(x1), mm(y1), mm(z1)),
	}
}

func TestBeamRender(t *testing.T) {
	r := Beam{Length: number.FromInt(10)}.Render()
	require.NoError(t, r.Validate())
	require.Len(t, r.Instances, 1)

	assert.Equal(t, render.Cuboid{XLength: mm(400), YLength: mm(40), ZLength: mm(40)}, r.Shapes["cube"])
	assert.True(t, mm(180).Equal(r.Instances[0].Transform.Translation.X))

	wood := r.Materials["wood"]
	assert.Equal(t, WoodTexture, wood.BaseColorTexture)
	assert.Equal(t, number.MustParse("0.7"), wood.PerceptualRoughness)
	assert.Equal(t, render.Opaque(), wood.AlphaMode)
}

func TestPlacement(t *testing.T) {
	n := number.FromInt
	tests := []struct {
		name string
		p    product.Product
		want render.AABB
	}{
		{"x", X(SpanOf(0, 10), n(1), n(2)), box(-20, 20, 60, 380, 60, 100)},
		{"x reversed", X(SpanOf(10, 0), n(0), n(0)), box(20, -20, -20, 420, 20, 20)},
		{"y", Y(n(0), SpanOf(0, 5), n(0)), box(-20, -20, -20, 20, 180, 20)},
		{"z", Z(n(0), n(0), SpanOf(0, 10)), box(-20, -20, -20, 20, 20, 380)},
		{"z reversed", Z(n(3), n(0), SpanOf(10, 0)), box(100, -20, 20, 140, 20, 420)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := product.Bounds(tt.p)
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, tt.want.ApproxEqual(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestSpan(t *testing.T) {
	assert.Equal(t, number.FromInt(4), SpanOf(6, 2).Length())
	assert.True(t, SpanOf(6, 2).reversed())
	assert.False(t, SpanOf(2, 6).reversed())
}
