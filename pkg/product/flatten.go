package product

import (
	"errors"
	"fmt"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/render"
)

// MaxDepth bounds the nesting Flatten follows before giving up.
const MaxDepth = 256

// ErrTooDeep is returned when a product tree nests deeper than the allowed
// depth, which usually means an assembly contains itself.
var ErrTooDeep = errors.New("product tree too deep")

// Flatten walks p depth-first and returns the Renderable of every stock
// leaf with its absolute transform composed onto the root instances. Leaves
// appear in tree order; None contributes nothing.
func Flatten(p Product) ([]render.Renderable, error) {
	return FlattenDepth(p, MaxDepth)
}

// FlattenDepth is Flatten with an explicit depth limit.
func FlattenDepth(p Product, maxDepth int) ([]render.Renderable, error) {
	var out []render.Renderable
	err := walk(p, geom.IdentityTransform(), 0, maxDepth, func(s Stock, world geom.Transform) error {
		out = append(out, s.Render().WithRootTransform(world))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Walk calls fn for every stock leaf of p with the leaf's absolute
// transform. Walking stops at the first error fn returns.
func Walk(p Product, fn func(s Stock, world geom.Transform) error) error {
	return walk(p, geom.IdentityTransform(), 0, MaxDepth, fn)
}

// walk dispatches on the payload of p, accumulating parent transforms.
func walk(p Product, parent geom.Transform, depth, maxDepth int, fn func(Stock, geom.Transform) error) error {
	if depth > maxDepth {
		return fmt.Errorf("product: %w (limit %d)", ErrTooDeep, maxDepth)
	}
	world := parent.Compose(p.transform)

	switch p.kind {
	case KindNone:
		return nil

	case KindStock:
		return fn(p.stock, world)

	case KindAssembly:
		return walkAll(p.assembly.Products(), world, depth, maxDepth, fn)

	case KindGroup:
		return walkAll(p.members, world, depth, maxDepth, fn)

	default:
		return fmt.Errorf("product: unknown kind %v", p.kind)
	}
}

func walkAll(children []Product, world geom.Transform, depth, maxDepth int, fn func(Stock, geom.Transform) error) error {
	for _, child := range children {
		if err := walk(child, world, depth+1, maxDepth, fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of stock leaves in p.
func Count(p Product) (int, error) {
	n := 0
	err := Walk(p, func(Stock, geom.Transform) error {
		n++
		return nil
	})
	return n, err
}

// Bounds returns the union of the bounds of every leaf of p. It reports
// false when p places no geometry.
func Bounds(p Product) (render.AABB, bool, error) {
	var box render.AABB
	found := false
	err := Walk(p, func(s Stock, world geom.Transform) error {
		b, ok := s.Render().WithRootTransform(world).Bounds()
		if !ok {
			return nil
		}
		if found {
			box = box.Union(b)
		} else {
			box, found = b, true
		}
		return nil
	})
	if err != nil {
		return render.AABB{}, false, err
	}
	return box, found, nil
}
