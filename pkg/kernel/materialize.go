package kernel

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/stockyard/internal/logging"
	"github.com/chazu/stockyard/pkg/asset"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

// DiscThicknessRatio is the thickness of a materialized Circle relative to
// its radius.
const DiscThicknessRatio = 0.02

// Compile-time interface checks.
var (
	_ asset.Materializer[render.Shape, *Mesh]       = (*ShapeMaterializer)(nil)
	_ asset.Materializer[render.Material, *Surface] = SurfaceMaterializer{}
)

// ShapeMaterializer meshes shapes with a Kernel.
type ShapeMaterializer struct {
	Kernel Kernel
	Logger *slog.Logger
}

// NewShapeMaterializer returns a materializer using k. A nil logger logs
// nothing.
func NewShapeMaterializer(k Kernel, logger *slog.Logger) *ShapeMaterializer {
	return &ShapeMaterializer{Kernel: k, Logger: logging.OrNop(logger)}
}

func meters(l unit.Length) float64 {
	return l.Canonical().Float64()
}

// Materialize builds the mesh for s in its local frame.
func (m *ShapeMaterializer) Materialize(s render.Shape) (*Mesh, error) {
	var (
		solid Solid
		name  string
		err   error
	)
	switch s := s.(type) {
	case render.Cuboid:
		name = render.TypeCuboid
		solid, err = m.Kernel.Box(meters(s.XLength), meters(s.YLength), meters(s.ZLength))
	case render.Circle:
		name = render.TypeCircle
		r := meters(s.Radius)
		solid, err = m.Kernel.Disc(r, r*DiscThicknessRatio)
	default:
		return nil, fmt.Errorf("kernel: unsupported shape %T", s)
	}
	if err != nil {
		return nil, fmt.Errorf("kernel: %s: %w", name, err)
	}

	mesh, err := m.Kernel.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("kernel: ToMesh failed for %s: %w", name, err)
	}
	mesh.Name = name
	if m.Logger != nil {
		m.Logger.Debug("meshed shape", "shape", name, "triangles", mesh.TriangleCount())
	}
	return mesh, nil
}

// Dispose releases nothing; meshes are garbage collected.
func (m *ShapeMaterializer) Dispose(*Mesh) {}

// Surface is a material resolved to the float values a renderer consumes.
type Surface struct {
	Color            [4]float32
	Metallic         float32
	Roughness        float32
	BaseColorTexture string
	NormalMapTexture string
	AlphaMode        render.AlphaModeKind
	AlphaCutoff      float32
	// UV is the texture coordinate transform as a homogeneous 3×3 matrix.
	UV mgl32.Mat3
}

// SurfaceMaterializer resolves materials to Surfaces.
type SurfaceMaterializer struct{}

func (SurfaceMaterializer) Materialize(m render.Material) (*Surface, error) {
	if m.BaseColor == nil {
		return nil, fmt.Errorf("kernel: material has no base color")
	}
	uv := m.UVTransform
	return &Surface{
		Color:            m.BaseColor.ToSrgba().Float32s(),
		Metallic:         m.Metallic.Float32(),
		Roughness:        m.PerceptualRoughness.Float32(),
		BaseColorTexture: string(m.BaseColorTexture),
		NormalMapTexture: string(m.NormalMapTexture),
		AlphaMode:        m.AlphaMode.Mode,
		AlphaCutoff:      m.AlphaMode.Cutoff.Float32(),
		UV: mgl32.Mat3{
			uv.Matrix.XAxis.X.Float32(), uv.Matrix.XAxis.Y.Float32(), 0,
			uv.Matrix.YAxis.X.Float32(), uv.Matrix.YAxis.Y.Float32(), 0,
			uv.Translation.X.Float32(), uv.Translation.Y.Float32(), 1,
		},
	}, nil
}

func (SurfaceMaterializer) Dispose(*Surface) {}

// Host returns the asset host that meshes shapes with k.
func Host(k Kernel, logger *slog.Logger) asset.Host[*Mesh, *Surface] {
	return asset.Host[*Mesh, *Surface]{
		Shapes:    NewShapeMaterializer(k, logger),
		Materials: SurfaceMaterializer{},
	}
}
