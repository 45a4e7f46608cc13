// Package render describes what a product looks like: a set of keyed shapes
// and materials and a tree of instances placing them. A Renderable is pure
// data; turning it into host assets is the job of package asset.
package render

import (
	"github.com/chazu/stockyard/pkg/geom"
)

// ShapeKey identifies a shape within a Renderable.
type ShapeKey string

// MaterialKey identifies a material within a Renderable.
type MaterialKey string

// Renderable is a self-contained description of renderable geometry.
// Instances refer to shapes and materials by key; every key they use must
// resolve (see Validate).
type Renderable struct {
	Shapes    map[ShapeKey]Shape       `json:"shapes" yaml:"shapes"`
	Materials map[MaterialKey]Material `json:"materials" yaml:"materials"`
	Instances []Instance               `json:"instances" yaml:"instances"`
}

// New returns an empty Renderable.
func New() Renderable {
	return Renderable{
		Shapes:    make(map[ShapeKey]Shape),
		Materials: make(map[MaterialKey]Material),
	}
}

// InsertShape stores s under key, replacing any previous shape.
func (r *Renderable) InsertShape(key ShapeKey, s Shape) ShapeKey {
	if r.Shapes == nil {
		r.Shapes = make(map[ShapeKey]Shape)
	}
	r.Shapes[key] = s
	return key
}

// InsertMaterial stores m under key, replacing any previous material.
func (r *Renderable) InsertMaterial(key MaterialKey, m Material) MaterialKey {
	if r.Materials == nil {
		r.Materials = make(map[MaterialKey]Material)
	}
	r.Materials[key] = m
	return key
}

// InsertInstance appends a root instance.
func (r *Renderable) InsertInstance(i Instance) {
	r.Instances = append(r.Instances, i)
}

// Single returns a Renderable holding one shape with one material at the
// identity, keyed by name.
func Single(name string, s Shape, m Material) Renderable {
	r := New()
	r.InsertInstance(NewInstance(r.InsertShape(ShapeKey(name), s), r.InsertMaterial(MaterialKey(name), m)))
	return r
}

// WithRootTransform returns a copy of r with t composed in front of every
// root instance transform. Shape and material maps are shared with r.
func (r Renderable) WithRootTransform(t geom.Transform) Renderable {
	if t.IsIdentity() {
		return r
	}
	out := Renderable{Shapes: r.Shapes, Materials: r.Materials, Instances: make([]Instance, len(r.Instances))}
	for i, inst := range r.Instances {
		inst.Transform = t.Compose(inst.Transform)
		out.Instances[i] = inst
	}
	return out
}

// Walk visits every instance with its transform relative to the
// Renderable's frame.
func (r Renderable) Walk(fn func(Instance, geom.Transform)) {
	for _, inst := range r.Instances {
		inst.Walk(geom.IdentityTransform(), fn)
	}
}

// Bounds returns the union of the bounds of every placed shape. It reports
// false when nothing resolvable is placed.
func (r Renderable) Bounds() (AABB, bool) {
	var box AABB
	found := false
	r.Walk(func(inst Instance, world geom.Transform) {
		s, ok := r.Shapes[inst.Shape]
		if !ok || s == nil {
			return
		}
		b := s.Bounds(world)
		if found {
			box = box.Union(b)
		} else {
			box, found = b, true
		}
	})
	return box, found
}

// IsEmpty reports whether r places nothing.
func (r Renderable) IsEmpty() bool {
	return len(r.Instances) == 0
}
