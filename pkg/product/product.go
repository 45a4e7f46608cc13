// Package product composes stock into assemblies. A Product is a value: a
// payload (a piece of stock, an assembly, a group of products, or nothing)
// placed by a transform. Flatten turns a product tree into the Renderables
// of its leaves, each positioned in the root's frame.
package product

import (
	"fmt"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/number"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

// Stock is a leaf product: something that can describe its own geometry.
type Stock interface {
	Render() render.Renderable
}

// Assembly is a product built from other products. Products is called each
// time the assembly is flattened.
type Assembly interface {
	Products() []Product
}

// Cloner is implemented by stock and assemblies that hold reference state
// which must not be shared between clones. A Stock implements
// Cloner[Stock]; an Assembly implements Cloner[Assembly].
type Cloner[T any] interface {
	Clone() T
}

// StockFunc adapts a function to the Stock interface.
type StockFunc func() render.Renderable

func (f StockFunc) Render() render.Renderable { return f() }

// AssemblyFunc adapts a function to the Assembly interface.
type AssemblyFunc func() []Product

func (f AssemblyFunc) Products() []Product { return f() }

// Kind identifies the payload of a Product.
type Kind int

const (
	KindNone Kind = iota
	KindStock
	KindAssembly
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStock:
		return "stock"
	case KindAssembly:
		return "assembly"
	case KindGroup:
		return "group"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Group is an ordered collection of products sharing a parent transform.
type Group []Product

// Product places a payload with a transform. Methods return modified
// copies; a Product is never changed in place.
type Product struct {
	kind      Kind
	stock     Stock
	assembly  Assembly
	members   Group
	transform geom.Transform
}

// Place returns s as a product at the identity.
func Place(s Stock) Product {
	if s == nil {
		return None()
	}
	return Product{kind: KindStock, stock: s, transform: geom.IdentityTransform()}
}

// PlaceAssembly returns a as a product at the identity.
func PlaceAssembly(a Assembly) Product {
	if a == nil {
		return None()
	}
	return Product{kind: KindAssembly, assembly: a, transform: geom.IdentityTransform()}
}

// GroupOf returns the products as one group at the identity.
func GroupOf(products ...Product) Product {
	return Product{kind: KindGroup, members: append(Group(nil), products...), transform: geom.IdentityTransform()}
}

// Product returns g as a product at the identity.
func (g Group) Product() Product {
	return GroupOf(g...)
}

// None returns the empty product. It flattens to nothing.
func None() Product {
	return Product{transform: geom.IdentityTransform()}
}

func (p Product) Kind() Kind { return p.kind }

func (p Product) Transform() geom.Transform { return p.transform }

func (p Product) Stock() (Stock, bool) { return p.stock, p.kind == KindStock }

func (p Product) Assembly() (Assembly, bool) { return p.assembly, p.kind == KindAssembly }

// Members returns a copy of the members of a group product.
func (p Product) Members() []Product {
	return append([]Product(nil), p.members...)
}

// WithTransform returns p placed by t instead of its current transform.
func (p Product) WithTransform(t geom.Transform) Product {
	p.transform = t
	return p
}

func (p Product) Translate(x, y, z unit.Length) Product {
	p.transform = p.transform.Translate(x, y, z)
	return p
}

func (p Product) TranslateBy(v geom.Vector3[unit.Length]) Product {
	p.transform = p.transform.TranslateBy(v)
	return p
}

// Rotate turns p by angle around axis through origin, in the parent frame.
// Without an origin the rotation is about the parent origin; only the first
// origin is used.
func (p Product) Rotate(axis geom.Vector3[number.Number], angle unit.Angle, origin ...geom.Vector3[unit.Length]) Product {
	var o geom.Vector3[unit.Length]
	if len(origin) > 0 {
		o = origin[0]
	}
	p.transform = p.transform.Rotate(axis, angle, o)
	return p
}

// RotateQuaternion rotates the local axes of p.
func (p Product) RotateQuaternion(q geom.Quaternion) Product {
	p.transform = p.transform.RotateQuaternion(q)
	return p
}

// Scale scales the local axes of p.
func (p Product) Scale(s geom.Vector3[number.Number]) Product {
	p.transform = p.transform.Scale(s)
	return p
}

// Mirror reflects p across the plane through the parent origin with normal
// axis.
func (p Product) Mirror(axis geom.Vector3[number.Number]) Product {
	p.transform = p.transform.Mirror(axis)
	return p
}

func (p Product) ChangeBasis(basis geom.Matrix3) Product {
	p.transform = p.transform.ChangeBasis(basis)
	return p
}

// Clone returns a deep copy of p. Stock and assemblies implementing Cloner
// are cloned; others are shared.
func (p Product) Clone() Product {
	switch p.kind {
	case KindStock:
		if c, ok := p.stock.(Cloner[Stock]); ok {
			p.stock = c.Clone()
		}
	case KindAssembly:
		if c, ok := p.assembly.(Cloner[Assembly]); ok {
			p.assembly = c.Clone()
		}
	case KindGroup:
		members := make(Group, len(p.members))
		for i, m := range p.members {
			members[i] = m.Clone()
		}
		p.members = members
	}
	return p
}

func (p Product) String() string {
	switch p.kind {
	case KindStock:
		return fmt.Sprintf("stock %T at %v", p.stock, p.transform.Translation)
	case KindAssembly:
		return fmt.Sprintf("assembly %T at %v", p.assembly, p.transform.Translation)
	case KindGroup:
		return fmt.Sprintf("group of %d at %v", len(p.members), p.transform.Translation)
	}
	return "none"
}
