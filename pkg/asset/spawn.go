package asset

import (
	"errors"
	"fmt"

	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/render"
)

var (
	// ErrMissingShape is returned when an instance names a shape the
	// Renderable does not define.
	ErrMissingShape = errors.New("missing shape")
	// ErrMissingMaterial is returned when an instance names a material the
	// Renderable does not define.
	ErrMissingMaterial = errors.New("missing material")
)

// Host bundles the two materializers a renderer provides.
type Host[S, M any] struct {
	Shapes    Materializer[render.Shape, S]
	Materials Materializer[render.Material, M]
}

// Node is a spawned instance: handles to its materialized shape and
// material, its transform relative to its parent, and its children. Group
// nodes have nil handles.
type Node[S, M any] struct {
	ShapeKey    render.ShapeKey
	MaterialKey render.MaterialKey
	Shape       *Handle[S]
	Material    *Handle[M]
	Transform   geom.Transform
	Children    []*Node[S, M]
}

// Scene owns the handles of one or more spawned Renderables.
type Scene[S, M any] struct {
	Roots    []*Node[S, M]
	released bool
}

// Walk visits every node with its absolute transform, depth first.
func (sc *Scene[S, M]) Walk(fn func(n *Node[S, M], world geom.Transform)) {
	var visit func(n *Node[S, M], parent geom.Transform)
	visit = func(n *Node[S, M], parent geom.Transform) {
		world := parent.Compose(n.Transform)
		fn(n, world)
		for _, c := range n.Children {
			visit(c, world)
		}
	}
	for _, r := range sc.Roots {
		visit(r, geom.IdentityTransform())
	}
}

// Len returns the number of nodes carrying geometry.
func (sc *Scene[S, M]) Len() int {
	n := 0
	sc.Walk(func(node *Node[S, M], _ geom.Transform) {
		if node.Shape != nil {
			n++
		}
	})
	return n
}

// Release drops every handle the scene holds. It is safe to call more than
// once.
func (sc *Scene[S, M]) Release() {
	if sc == nil || sc.released {
		return
	}
	sc.released = true
	sc.Walk(func(n *Node[S, M], _ geom.Transform) {
		if n.Shape != nil {
			n.Shape.Release()
		}
		if n.Material != nil {
			n.Material.Release()
		}
	})
}

// Released reports whether Release has been called.
func (sc *Scene[S, M]) Released() bool { return sc.released }

// Spawn materializes every shape and material r places and returns the
// scene holding them. On error every handle acquired so far is released.
func Spawn[S, M any](r render.Renderable, shapes *Store[render.Shape, S], materials *Store[render.Material, M]) (*Scene[S, M], error) {
	return SpawnAll([]render.Renderable{r}, shapes, materials)
}

// SpawnAll is Spawn for several Renderables sharing one scene.
func SpawnAll[S, M any](rs []render.Renderable, shapes *Store[render.Shape, S], materials *Store[render.Material, M]) (*Scene[S, M], error) {
	sc := &Scene[S, M]{}
	for i, r := range rs {
		b := &builder[S, M]{
			r:         r,
			shapes:    shapes,
			materials: materials,
			shapeRefs: make(map[render.ShapeKey]*Handle[S]),
			matRefs:   make(map[render.MaterialKey]*Handle[M]),
		}
		for j, inst := range r.Instances {
			n, err := b.node(inst, fmt.Sprintf("renderable %d: instances[%d]", i, j))
			if n != nil {
				sc.Roots = append(sc.Roots, n)
			}
			if err != nil {
				sc.Release()
				return nil, err
			}
		}
	}
	return sc, nil
}

// builder spawns the instances of one Renderable, fetching each distinct
// key from its store once and retaining the handle for further uses.
type builder[S, M any] struct {
	r         render.Renderable
	shapes    *Store[render.Shape, S]
	materials *Store[render.Material, M]
	shapeRefs map[render.ShapeKey]*Handle[S]
	matRefs   map[render.MaterialKey]*Handle[M]
}

// node spawns inst and its children. On error it returns the partial node
// so the caller can release what was acquired.
func (b *builder[S, M]) node(inst render.Instance, path string) (*Node[S, M], error) {
	n := &Node[S, M]{ShapeKey: inst.Shape, MaterialKey: inst.Material, Transform: inst.Transform}
	if !inst.IsGroup() {
		sh, err := b.shape(inst.Shape, path)
		if err != nil {
			return nil, err
		}
		n.Shape = sh
		mat, err := b.material(inst.Material, path)
		if err != nil {
			return n, err
		}
		n.Material = mat
	}
	for i, c := range inst.Children {
		child, err := b.node(c, fmt.Sprintf("%s.children[%d]", path, i))
		if child != nil {
			n.Children = append(n.Children, child)
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (b *builder[S, M]) shape(key render.ShapeKey, path string) (*Handle[S], error) {
	if h, ok := b.shapeRefs[key]; ok {
		return h.Retain(), nil
	}
	s, ok := b.r.Shapes[key]
	if !ok || s == nil {
		return nil, fmt.Errorf("asset: %s: shape %q: %w", path, key, ErrMissingShape)
	}
	h, err := b.shapes.GetOrCreate(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b.shapeRefs[key] = h
	return h, nil
}

func (b *builder[S, M]) material(key render.MaterialKey, path string) (*Handle[M], error) {
	if h, ok := b.matRefs[key]; ok {
		return h.Retain(), nil
	}
	m, ok := b.r.Materials[key]
	if !ok {
		return nil, fmt.Errorf("asset: %s: material %q: %w", path, key, ErrMissingMaterial)
	}
	h, err := b.materials.GetOrCreate(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b.matRefs[key] = h
	return h, nil
}

// Spawner pairs a shape store and a material store built from a Host.
type Spawner[S, M any] struct {
	Shapes    *Store[render.Shape, S]
	Materials *Store[render.Material, M]
}

// NewSpawner creates the stores for h. The stores are named "shapes" and
// "materials"; opts apply to both.
func NewSpawner[S, M any](h Host[S, M], opts ...Option) *Spawner[S, M] {
	return &Spawner[S, M]{
		Shapes:    New(h.Shapes, withName(opts, "shapes")...),
		Materials: New(h.Materials, withName(opts, "materials")...),
	}
}

func withName(opts []Option, name string) []Option {
	return append(append([]Option(nil), opts...), WithName(name))
}

func (sp *Spawner[S, M]) Spawn(rs ...render.Renderable) (*Scene[S, M], error) {
	return SpawnAll(rs, sp.Shapes, sp.Materials)
}

// CleanUnused sweeps both stores and returns the number of evicted shapes
// and materials.
func (sp *Spawner[S, M]) CleanUnused() (shapes, materials int) {
	return sp.Shapes.CleanUnused(), sp.Materials.CleanUnused()
}
