// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/stockyard/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution along
// the longest side of a solid.
const DefaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// Option configures an SdfxKernel.
type Option func(*SdfxKernel)

// WithCells sets the marching cubes resolution. Values below one are
// ignored.
func WithCells(n int) Option {
	return func(k *SdfxKernel) {
		if n > 0 {
			k.cells = n
		}
	}
}

// New returns a new SdfxKernel.
func New(opts ...Option) *SdfxKernel {
	k := &SdfxKernel{cells: DefaultMeshCells}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int { return k.cells }

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with the given dimensions centered on the origin. A
// zero side gives a flat solid that meshes empty.
func (k *SdfxKernel) Box(x, y, z float64) (kernel.Solid, error) {
	if err := kernel.CheckDimensions(x, y, z); err != nil {
		return nil, err
	}
	size := v3.Vec{X: x, Y: y, Z: z}
	if size.MinComponent() == 0 {
		return wrap(flatBox(size)), nil
	}
	s, err := sdf.Box3D(size, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	return wrap(s), nil
}

// Cylinder creates a cylinder along Z centered on the origin.
func (k *SdfxKernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	if err := kernel.CheckDimensions(height, radius); err != nil {
		return nil, err
	}
	if height == 0 || radius == 0 {
		return wrap(flatBox(v3.Vec{X: 2 * radius, Y: 2 * radius, Z: height})), nil
	}
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}
	return wrap(s), nil
}

// Disc extrudes a circle by thickness and stands it in the XZ plane.
func (k *SdfxKernel) Disc(radius, thickness float64) (kernel.Solid, error) {
	if err := kernel.CheckDimensions(radius, thickness); err != nil {
		return nil, err
	}
	if radius == 0 || thickness == 0 {
		return wrap(flatBox(v3.Vec{X: 2 * radius, Y: thickness, Z: 2 * radius})), nil
	}
	c, err := sdf.Circle2D(radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
	}
	s := sdf.Extrude3D(c, thickness)
	return wrap(sdf.Transform3D(s, sdf.RotateX(math.Pi/2))), nil
}

// flatSDF3 is a box with at least one zero side. sdf.Box3D refuses those.
type flatSDF3 struct {
	half v3.Vec
	bb   sdf.Box3
}

func flatBox(size v3.Vec) *flatSDF3 {
	half := size.MulScalar(0.5)
	return &flatSDF3{half: half, bb: sdf.Box3{Min: half.Neg(), Max: half}}
}

// Evaluate returns the distance to the box.
func (s *flatSDF3) Evaluate(p v3.Vec) float64 {
	q := p.Abs().Sub(s.half)
	return q.Max(v3.Vec{}).Length() + math.Min(q.MaxComponent(), 0)
}

// BoundingBox returns the box itself.
func (s *flatSDF3) BoundingBox() sdf.Box3 {
	return s.bb
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
// Vertices shared by triangles with the same face normal are welded, so
// flat faces index a common vertex set. A solid that is flat along any
// axis yields an empty mesh.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)
	if _, ok := sdf3.(*flatSDF3); ok || sdf3.BoundingBox().Size().MinComponent() <= 0 {
		return &kernel.Mesh{}, nil
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	mesh := &kernel.Mesh{
		Vertices: make([]float32, 0, len(triangles)*3),
		Normals:  make([]float32, 0, len(triangles)*3),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	welded := make(map[[6]float32]uint32)

	for _, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
			continue
		}
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			key := [6]float32{float32(v.X), float32(v.Y), float32(v.Z), nx, ny, nz}
			idx, ok := welded[key]
			if !ok {
				idx = uint32(len(mesh.Vertices) / 3)
				welded[key] = idx
				mesh.Vertices = append(mesh.Vertices, key[0], key[1], key[2])
				mesh.Normals = append(mesh.Normals, nx, ny, nz)
			}
			mesh.Indices = append(mesh.Indices, idx)
		}
	}

	return mesh, nil
}
