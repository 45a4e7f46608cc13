// Package kernel defines the abstract geometry kernel used to turn shape
// descriptions into triangle meshes. Implementations (sdfx) provide the
// primitives behind this interface so that backends can be swapped without
// changing the rest of the system.
//
// Kernel dimensions are float64 meters.
package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate is returned for primitives with negative or non-finite
// dimensions. A zero dimension is allowed and meshes empty.
var ErrDegenerate = errors.New("degenerate primitive")

// CheckDimensions returns ErrDegenerate for the first negative, NaN or
// infinite dimension.
func CheckDimensions(dims ...float64) error {
	for _, d := range dims {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("dimension %v: %w", d, ErrDegenerate)
		}
	}
	return nil
}

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Solids are built in
// their local frame; placement happens on the host through instance
// transforms.
type Kernel interface {
	// Primitives, all centered on the origin.
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)
	// Disc is a cylinder of the given thickness lying in the XZ plane.
	Disc(radius, thickness float64) (Solid, error)

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
