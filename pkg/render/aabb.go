package render

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/unit"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min geom.Vector3[unit.Length] `json:"min" yaml:"min"`
	Max geom.Vector3[unit.Length] `json:"max" yaml:"max"`
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

func (b AABB) Size() geom.Vector3[unit.Length] {
	return b.Max.Sub(b.Min)
}

func (b AABB) Center() geom.Vector3[unit.Length] {
	return b.Min.Add(b.Max).Mul(number.Half)
}

// Contains reports whether p lies inside b, boundary included.
func (b AABB) Contains(p geom.Vector3[unit.Length]) bool {
	return p.X.Cmp(b.Min.X) >= 0 && p.Y.Cmp(b.Min.Y) >= 0 && p.Z.Cmp(b.Min.Z) >= 0 &&
		p.X.Cmp(b.Max.X) <= 0 && p.Y.Cmp(b.Max.Y) <= 0 && p.Z.Cmp(b.Max.Z) <= 0
}

func (b AABB) ApproxEqual(o AABB) bool {
	return b.Min.ApproxEqual(o.Min) && b.Max.ApproxEqual(o.Max)
}

func (b AABB) String() string {
	return fmt.Sprintf("[%v .. %v]", b.Min, b.Max)
}
