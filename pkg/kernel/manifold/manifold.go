//go:build manifold

// Package manifold binds the Manifold library
// (https://github.com/elalish/manifold) as a kernel.Kernel. Meshes come out
// exact and watertight instead of sampled, so it is the kernel of choice for
// export.
//
// This package requires the Manifold C library (manifoldc).
// Build with: go build -tags=manifold
package manifold

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -lmanifoldc

#include <stdlib.h>
#include <manifold/manifoldc.h>
*/
import "C"

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/chazu/stockyard/pkg/kernel"
)

var (
	_ kernel.Kernel = (*ManifoldKernel)(nil)
	_ kernel.Solid  = (*manifoldSolid)(nil)
)

// manifoldSolid wraps a C ManifoldManifold pointer.
type manifoldSolid struct {
	ptr *C.ManifoldManifold
}

func (s *manifoldSolid) BoundingBox() (min, max [3]float64) {
	alloc := C.manifold_alloc_box()
	bbox := C.manifold_bounding_box(alloc, s.ptr)
	defer C.manifold_delete_box(bbox)

	min[0] = float64(C.manifold_box_min_x(bbox))
	min[1] = float64(C.manifold_box_min_y(bbox))
	min[2] = float64(C.manifold_box_min_z(bbox))
	max[0] = float64(C.manifold_box_max_x(bbox))
	max[1] = float64(C.manifold_box_max_y(bbox))
	max[2] = float64(C.manifold_box_max_z(bbox))
	return min, max
}

// newSolid wraps ptr and frees it when the solid is collected.
func newSolid(ptr *C.ManifoldManifold) *manifoldSolid {
	s := &manifoldSolid{ptr: ptr}
	runtime.SetFinalizer(s, func(s *manifoldSolid) {
		if s.ptr != nil {
			C.manifold_delete_manifold(s.ptr)
			s.ptr = nil
		}
	})
	return s
}

func unwrap(s kernel.Solid) *C.ManifoldManifold {
	return s.(*manifoldSolid).ptr
}

// ManifoldKernel implements kernel.Kernel with Manifold.
type ManifoldKernel struct {
	segments int
}

// New returns a ManifoldKernel.
func New(opts ...Option) (kernel.Kernel, error) {
	k := &ManifoldKernel{}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Box creates a box centered on the origin.
func (k *ManifoldKernel) Box(x, y, z float64) (kernel.Solid, error) {
	if err := kernel.CheckDimensions(x, y, z); err != nil {
		return nil, err
	}
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_cube(alloc, C.double(x), C.double(y), C.double(z), C.int(1))
	return newSolid(ptr), nil
}

// Cylinder creates a cylinder along Z centered on the origin.
func (k *ManifoldKernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	if err := kernel.CheckDimensions(height, radius); err != nil {
		return nil, err
	}
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_cylinder(alloc,
		C.double(height),
		C.double(radius), // radius_low
		C.double(radius), // radius_high
		C.int(k.segments),
		C.int(1), // center
	)
	return newSolid(ptr), nil
}

// Disc stands a cylinder of the given thickness in the XZ plane.
func (k *ManifoldKernel) Disc(radius, thickness float64) (kernel.Solid, error) {
	c, err := k.Cylinder(thickness, radius)
	if err != nil {
		return nil, err
	}
	return rotate(c, 90, 0, 0), nil
}

// rotate turns the solid by Euler angles in degrees about X, then Y, then Z.
func rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_rotate(alloc, unwrap(s), C.double(x), C.double(y), C.double(z))
	return newSolid(ptr)
}

// ToMesh reads the MeshGL of the solid. Positions and normals are
// interleaved in MeshGL; they are split into the kernel.Mesh layout.
func (k *ManifoldKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	meshAlloc := C.manifold_alloc_meshgl()
	meshGL := C.manifold_get_meshgl(meshAlloc, unwrap(s))
	defer C.manifold_delete_meshgl(meshGL)

	numVert := int(C.manifold_meshgl_num_vert(meshGL))
	numTri := int(C.manifold_meshgl_num_tri(meshGL))
	if numVert == 0 || numTri == 0 {
		return &kernel.Mesh{}, nil
	}

	// Position is always the first three properties; normals follow when
	// present.
	numProp := int(C.manifold_meshgl_num_prop(meshGL))
	props := make([]float32, numVert*numProp)
	C.manifold_meshgl_vert_properties((*C.float)(unsafe.Pointer(&props[0])), meshGL)

	indices := make([]uint32, numTri*3)
	C.manifold_meshgl_tri_verts((*C.uint32_t)(unsafe.Pointer(&indices[0])), meshGL)

	mesh := &kernel.Mesh{
		Vertices: make([]float32, numVert*3),
		Indices:  indices,
	}
	hasNormals := numProp >= 6
	if hasNormals {
		mesh.Normals = make([]float32, numVert*3)
	}
	for i := 0; i < numVert; i++ {
		copy(mesh.Vertices[i*3:i*3+3], props[i*numProp:])
		if hasNormals {
			copy(mesh.Normals[i*3:i*3+3], props[i*numProp+3:])
		}
	}
	if !hasNormals {
		mesh.Normals = vertexNormals(mesh.Vertices, mesh.Indices)
	}

	if mesh.VertexCount() != numVert {
		return nil, fmt.Errorf("manifold: vertex count mismatch: got %d, expected %d", mesh.VertexCount(), numVert)
	}
	return mesh, nil
}

// vertexNormals averages the face normals around each vertex.
func vertexNormals(vertices []float32, indices []uint32) []float32 {
	normals := make([]float32, len(vertices))
	at := func(i uint32) (float64, float64, float64) {
		return float64(vertices[i*3]), float64(vertices[i*3+1]), float64(vertices[i*3+2])
	}
	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		ax, ay, az := at(i0)
		bx, by, bz := at(i1)
		cx, cy, cz := at(i2)
		e1x, e1y, e1z := bx-ax, by-ay, bz-az
		e2x, e2y, e2z := cx-ax, cy-ay, cz-az
		n := [3]float32{
			float32(e1y*e2z - e1z*e2y),
			float32(e1z*e2x - e1x*e2z),
			float32(e1x*e2y - e1y*e2x),
		}
		for _, idx := range [3]uint32{i0, i1, i2} {
			normals[idx*3] += n[0]
			normals[idx*3+1] += n[1]
			normals[idx*3+2] += n[2]
		}
	}
	for i := 0; i+2 < len(normals); i += 3 {
		x, y, z := float64(normals[i]), float64(normals[i+1]), float64(normals[i+2])
		if l := math.Sqrt(x*x + y*y + z*z); l > 1e-12 {
			normals[i], normals[i+1], normals[i+2] = float32(x/l), float32(y/l), float32(z/l)
		}
	}
	return normals
}
