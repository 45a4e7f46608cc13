// Package gridbeam provides grid beam stock: square wooden beams drilled on
// a regular grid, placed by grid coordinates.
package gridbeam

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/product"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

// Unit is the grid pitch and the beam's cross-section side.
var Unit = unit.NewLength[unit.Millimeters](number.FromInt(40))

// Texture paths used by the wood material. Loading them is up to the host.
const (
	WoodTexture   render.ImageID = "textures/wood.jpg"
	WoodNormalMap render.ImageID = "textures/wood-normals.jpg"
)

// Wood returns the beam material. The texture repeats every 2.5 meters.
func Wood() render.Material {
	m := render.DefaultMaterial()
	m.BaseColorTexture = WoodTexture
	m.NormalMapTexture = WoodNormalMap
	m.Metallic = number.Zero
	m.PerceptualRoughness = number.MustParse("0.7")
	m.UVTransform = geom.Affine2FromScale(geom.Vec2(number.MustParse("0.4"), number.MustParse("0.4")))
	return m
}

// Span is a closed range of grid coordinates. From may exceed To, in which
// case the beam runs in the negative direction.
type Span struct {
	From, To number.Number
}

// SpanOf returns the span from a to b.
func SpanOf(a, b int64) Span {
	return Span{From: number.FromInt(a), To: number.FromInt(b)}
}

// Length returns the number of grid units covered.
func (s Span) Length() number.Number {
	return s.From.Sub(s.To).Abs()
}

func (s Span) reversed() bool {
	return s.From.Greater(s.To)
}

// Beam is a grid beam Length grid units long, lying along +X with its first
// cell centered on the origin.
type Beam struct {
	Length number.Number
}

var _ product.Stock = Beam{}

func (b Beam) Render() render.Renderable {
	r := render.New()
	cube := r.InsertShape("cube", render.Cuboid{
		XLength: Unit.Mul(b.Length),
		YLength: Unit,
		ZLength: Unit,
	})
	wood := r.InsertMaterial("wood", Wood())
	offset := Unit.Mul(number.Half.Mul(b.Length.Sub(number.One)))
	inst := render.NewInstance(cube, wood)
	inst.Transform = inst.Transform.Translate(offset, unit.ZeroLength(), unit.ZeroLength())
	r.InsertInstance(inst)
	return r
}

func (b Beam) String() string {
	return fmt.Sprintf("GridBeam(%v)", b.Length)
}

func at(x, y, z number.Number) (unit.Length, unit.Length, unit.Length) {
	return Unit.Mul(x), Unit.Mul(y), Unit.Mul(z)
}

// X places a beam along the X axis covering x, at grid row y and level z.
func X(x Span, y, z number.Number) product.Product {
	beam := product.Place(Beam{Length: x.Length()})
	if x.reversed() {
		beam = beam.Rotate(geom.YAxis, unit.HalfTurn)
	}
	return beam.Translate(at(x.From, y, z))
}

// Y places a beam along the Y axis covering y, at grid column x and level z.
func Y(x number.Number, y Span, z number.Number) product.Product {
	beam := product.Place(Beam{Length: y.Length()}).
		Rotate(geom.ZAxis, unit.QuarterTurn)
	if y.reversed() {
		beam = beam.Rotate(geom.XAxis, unit.HalfTurn)
	}
	return beam.Translate(at(x, y.From, z))
}

// Z places an upright beam covering z at grid position (x, y).
func Z(x, y number.Number, z Span) product.Product {
	beam := product.Place(Beam{Length: z.Length()}).
		Rotate(geom.YAxis, unit.QuarterTurn.Neg())
	if z.reversed() {
		beam = beam.Rotate(geom.XAxis, unit.HalfTurn)
	}
	return beam.Translate(at(x, y, z.From))
}
