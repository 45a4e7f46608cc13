package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/chazu/stockyard/pkg/geom"
)

// Instance places a shape with a material. Children are positioned
// relative to their parent. An instance with neither a shape nor a
// material is a pure grouping node.
type Instance struct {
	Shape     ShapeKey       `json:"shape,omitempty" yaml:"shape,omitempty"`
	Material  MaterialKey    `json:"material,omitempty" yaml:"material,omitempty"`
	Transform geom.Transform `json:"transform" yaml:"transform"`
	Children  []Instance     `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewInstance returns an instance of shape and material at the identity.
func NewInstance(shape ShapeKey, material MaterialKey) Instance {
	return Instance{Shape: shape, Material: material, Transform: geom.IdentityTransform()}
}

// IsGroup reports whether i carries no geometry of its own.
func (i Instance) IsGroup() bool {
	return i.Shape == "" && i.Material == ""
}

// WithChildren returns a copy of i with children appended.
func (i Instance) WithChildren(children ...Instance) Instance {
	i.Children = append(append([]Instance(nil), i.Children...), children...)
	return i
}

// Walk calls fn for i and every descendant in depth-first order, passing
// the transform of each relative to the frame i was placed in by parent.
func (i Instance) Walk(parent geom.Transform, fn func(Instance, geom.Transform)) {
	world := parent.Compose(i.Transform)
	fn(i, world)
	for _, c := range i.Children {
		c.Walk(world, fn)
	}
}

// Count returns the number of nodes in the subtree rooted at i.
func (i Instance) Count() int {
	n := 1
	for _, c := range i.Children {
		n += c.Count()
	}
	return n
}

// instanceDoc defaults an omitted transform to the identity.
type instanceDoc Instance

func (i *Instance) UnmarshalJSON(data []byte) error {
	d := instanceDoc{Transform: geom.IdentityTransform()}
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("render: decode instance: %w", err)
	}
	*i = Instance(d)
	return nil
}

func (i *Instance) UnmarshalYAML(value *yaml.Node) error {
	d := instanceDoc{Transform: geom.IdentityTransform()}
	if err := value.Decode(&d); err != nil {
		return fmt.Errorf("render: decode instance: %w", err)
	}
	*i = Instance(d)
	return nil
}
