// Package workspace ties the script engine, the product tree and the asset
// stores together: source goes in, placed meshes come out.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chazu/stockyard/pkg/asset"
	"github.com/chazu/stockyard/pkg/config"
	"github.com/chazu/stockyard/pkg/engine"
	"github.com/chazu/stockyard/pkg/geom"
	"github.com/chazu/stockyard/pkg/kernel"
	"github.com/chazu/stockyard/pkg/kernel/manifold"
	"github.com/chazu/stockyard/pkg/kernel/sdfx"
	"github.com/chazu/stockyard/pkg/product"
	"github.com/chazu/stockyard/pkg/render"
	"github.com/chazu/stockyard/pkg/unit"
)

// ZUpToYUp maps the z-up modeling frame to a y-up host frame.
func ZUpToYUp() geom.Transform {
	return geom.IdentityTransform().RotateAbout(geom.XAxis, unit.QuarterTurn.Neg())
}

// MeshData is a placed mesh in the JSON-serializable form sent to hosts.
type MeshData struct {
	Name     string    `json:"name"`
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	// Matrix is the column-major model matrix, in meters.
	Matrix           mgl64.Mat4           `json:"matrix"`
	Color            [4]float32           `json:"color"`
	Metallic         float32              `json:"metallic"`
	Roughness        float32              `json:"roughness"`
	BaseColorTexture string               `json:"baseColorTexture,omitempty"`
	NormalMapTexture string               `json:"normalMapTexture,omitempty"`
	AlphaMode        render.AlphaModeKind `json:"alphaMode"`
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// Result is the output of Evaluate.
type Result struct {
	Meshes []MeshData      `json:"meshes"`
	Errors []EvalErrorData `json:"errors"`
}

// OK reports whether the evaluation succeeded.
func (r Result) OK() bool { return len(r.Errors) == 0 }

func failed(msg string) Result {
	return Result{Meshes: []MeshData{}, Errors: []EvalErrorData{{Message: msg}}}
}

// Option configures a Workspace.
type Option func(*options)

type options struct {
	kernel     kernel.Kernel
	logger     *slog.Logger
	registerer prometheus.Registerer
	root       geom.Transform
}

// WithKernel replaces the sdfx kernel.
func WithKernel(k kernel.Kernel) Option {
	return func(o *options) { o.kernel = k }
}

// WithLogger replaces the logger built from the config.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer receives the asset store metrics when the config enables
// them.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithRootTransform sets the transform applied to every product. The
// default is ZUpToYUp.
func WithRootTransform(t geom.Transform) Option {
	return func(o *options) { o.root = t }
}

// Workspace holds the current scene. Each successful Evaluate or
// LoadRenderable replaces it; assets shared between the old and new scenes
// are reused. It is safe for concurrent use.
type Workspace struct {
	mu      sync.Mutex
	engine  *engine.Engine
	spawner *asset.Spawner[*kernel.Mesh, *kernel.Surface]
	scene   *asset.Scene[*kernel.Mesh, *kernel.Surface]
	root    geom.Transform
	logger  *slog.Logger
}

// New creates a Workspace from cfg. The config is validated first.
func New(cfg config.Config, opts ...Option) (*Workspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{root: ZUpToYUp()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = cfg.Logger()
	}
	if o.kernel == nil {
		k, err := newKernel(cfg.Mesh)
		if err != nil {
			return nil, err
		}
		o.kernel = k
	}

	storeOpts := []asset.Option{
		asset.WithLogger(o.logger),
		asset.WithNamespace(cfg.Cache.Namespace),
	}
	if cfg.Cache.Metrics {
		reg := o.registerer
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		storeOpts = append(storeOpts, asset.WithMetrics(reg))
	}

	return &Workspace{
		engine: engine.NewEngine(
			engine.WithTimeout(time.Duration(cfg.Engine.Timeout)),
			engine.WithLogger(o.logger),
		),
		spawner: asset.NewSpawner(kernel.Host(o.kernel, o.logger), storeOpts...),
		root:    o.root,
		logger:  o.logger,
	}, nil
}

func newKernel(m config.Mesh) (kernel.Kernel, error) {
	if m.Kernel == config.KernelManifold {
		k, err := manifold.New(manifold.WithSegments(m.Segments))
		if err != nil {
			return nil, fmt.Errorf("workspace: %w", err)
		}
		return k, nil
	}
	return sdfx.New(sdfx.WithCells(m.Cells)), nil
}

// Evaluate runs source and replaces the current scene with the products it
// declares. On any error the current scene is kept.
func (w *Workspace) Evaluate(ctx context.Context, source string) Result {
	res, err := w.engine.Evaluate(ctx, source)
	if err != nil {
		return failed(err.Error())
	}
	if !res.OK() {
		out := Result{Meshes: []MeshData{}}
		for _, e := range res.Errors {
			out.Errors = append(out.Errors, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return out
	}

	rs, err := product.Flatten(res.Product())
	if err != nil {
		return failed(err.Error())
	}
	return w.load(rs)
}

// LoadRenderable replaces the current scene with data-authored
// Renderables.
func (w *Workspace) LoadRenderable(rs ...render.Renderable) Result {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return failed(fmt.Sprintf("renderable %d: %v", i, err))
		}
	}
	return w.load(rs)
}

func (w *Workspace) load(rs []render.Renderable) Result {
	placed := make([]render.Renderable, len(rs))
	for i, r := range rs {
		placed[i] = r.WithRootTransform(w.root)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	scene, err := w.spawner.Spawn(placed...)
	if err != nil {
		w.logger.Warn("spawn failed", "error", err)
		return failed("spawn failed: " + err.Error())
	}
	w.scene.Release()
	w.scene = scene
	shapes, materials := w.spawner.CleanUnused()
	w.logger.Info("scene loaded",
		"renderables", len(rs),
		"nodes", scene.Len(),
		"evicted_shapes", shapes,
		"evicted_materials", materials,
	)
	return Result{Meshes: w.meshes(), Errors: []EvalErrorData{}}
}

// Meshes exports the placed meshes of the current scene.
func (w *Workspace) Meshes() []MeshData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.meshes()
}

func (w *Workspace) meshes() []MeshData {
	out := []MeshData{}
	if w.scene == nil {
		return out
	}
	w.scene.Walk(func(n *asset.Node[*kernel.Mesh, *kernel.Surface], world geom.Transform) {
		if n.Shape == nil {
			return
		}
		m, s := n.Shape.Asset(), n.Material.Asset()
		out = append(out, MeshData{
			Name:             string(n.ShapeKey),
			Vertices:         m.Vertices,
			Normals:          m.Normals,
			Indices:          m.Indices,
			Matrix:           world.Mat4(),
			Color:            s.Color,
			Metallic:         s.Metallic,
			Roughness:        s.Roughness,
			BaseColorTexture: s.BaseColorTexture,
			NormalMapTexture: s.NormalMapTexture,
			AlphaMode:        s.AlphaMode,
		})
	})
	return out
}

// Stats reports the shape and material store counters.
func (w *Workspace) Stats() (shapes, materials asset.Stats) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spawner.Shapes.Stats(), w.spawner.Materials.Stats()
}

// Close releases the current scene and empties both stores.
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scene.Release()
	w.scene = nil
	w.spawner.CleanUnused()
}
