package render

import (
	"encoding/json"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

// Discriminants written to the "type" field of encoded shapes.
const (
	TypeCuboid = "Cuboid"
	TypeCircle = "Circle"
)

// Shape is a primitive mesh description. Shapes are comparable values and
// can be used directly as cache keys.
type Shape interface {
	// Bounds returns the world-space box of the shape placed by t.
	Bounds(t geom.Transform) AABB
	shapeType() string
}

// Cuboid is an axis-aligned box centered on the origin.
type Cuboid struct {
	XLength unit.Length `json:"x_length" yaml:"x_length"`
	YLength unit.Length `json:"y_length" yaml:"y_length"`
	ZLength unit.Length `json:"z_length" yaml:"z_length"`
}

func (Cuboid) shapeType() string { return TypeCuboid }

// HalfSize returns the distance from the center to each face.
func (c Cuboid) HalfSize() geom.Vector3[unit.Length] {
	return geom.Vec3(c.XLength, c.YLength, c.ZLength).Mul(number.Half)
}

func (c Cuboid) Bounds(t geom.Transform) AABB {
	half := c.HalfSize()
	return extentBounds(t, func(row geom.Vector3[number.Number]) unit.Length {
		return half.Dot(geom.Vec3(row.X.Abs(), row.Y.Abs(), row.Z.Abs()))
	})
}

func (c Cuboid) MarshalJSON() ([]byte, error) {
	type plain Cuboid
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{TypeCuboid, plain(c)})
}

func (c Cuboid) MarshalYAML() (interface{}, error) {
	type plain Cuboid
	return struct {
		Type  string `yaml:"type"`
		plain `yaml:",inline"`
	}{TypeCuboid, plain(c)}, nil
}

// Circle is a flat disc of the given radius lying in the XZ plane.
type Circle struct {
	Radius unit.Length `json:"radius" yaml:"radius"`
}

func (Circle) shapeType() string { return TypeCircle }

func (c Circle) Bounds(t geom.Transform) AABB {
	return extentBounds(t, func(row geom.Vector3[number.Number]) unit.Length {
		return c.Radius.Abs().Mul(row.X.Hypot(row.Z))
	})
}

func (c Circle) MarshalJSON() ([]byte, error) {
	type plain Circle
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{TypeCircle, plain(c)})
}

func (c Circle) MarshalYAML() (interface{}, error) {
	type plain Circle
	return struct {
		Type  string `yaml:"type"`
		plain `yaml:",inline"`
	}{TypeCircle, plain(c)}, nil
}

// extentBounds builds the box centered on the translation of t whose half
// extent along world axis i is extent(row i of the linear part).
func extentBounds(t geom.Transform, extent func(geom.Vector3[number.Number]) unit.Length) AABB {
	e := geom.Vec3(extent(t.Linear.Row(0)), extent(t.Linear.Row(1)), extent(t.Linear.Row(2)))
	return AABB{Min: t.Translation.Sub(e), Max: t.Translation.Add(e)}
}
