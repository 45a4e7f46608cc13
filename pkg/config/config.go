// Package config loads workspace settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chazu/stockyard/internal/logging"
	"github.com/chazu/stockyard/pkg/asset"
	"github.com/chazu/stockyard/pkg/engine"
	"github.com/chazu/stockyard/pkg/kernel/sdfx"
)

// MaxMeshCells bounds the marching cubes resolution.
const MaxMeshCells = 2000

// Kernel names accepted in mesh.kernel.
const (
	KernelSdfx     = "sdfx"
	KernelManifold = "manifold"
)

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	*d = Duration(v)
	return nil
}

// Config holds the settings of a workspace.
type Config struct {
	Log    Log    `yaml:"log" json:"log"`
	Mesh   Mesh   `yaml:"mesh" json:"mesh"`
	Engine Engine `yaml:"engine" json:"engine"`
	Cache  Cache  `yaml:"cache" json:"cache"`
}

type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" json:"level"`
}

type Mesh struct {
	// Kernel is sdfx or manifold. The manifold kernel needs a binary built
	// with -tags=manifold.
	Kernel string `yaml:"kernel" json:"kernel"`
	// Cells is the marching cubes resolution along the longest side.
	Cells int `yaml:"cells" json:"cells"`
	// Segments is the number of facets around manifold cylinders; zero
	// picks one from the radius.
	Segments int `yaml:"segments" json:"segments"`
}

type Engine struct {
	// Timeout limits a single script evaluation.
	Timeout Duration `yaml:"timeout" json:"timeout"`
}

type Cache struct {
	// Metrics enables the Prometheus collectors of the asset stores.
	Metrics   bool   `yaml:"metrics" json:"metrics"`
	Namespace string `yaml:"namespace" json:"namespace"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Mesh:   Mesh{Kernel: KernelSdfx, Cells: sdfx.DefaultMeshCells},
		Engine: Engine{Timeout: Duration(engine.EvalTimeout)},
		Cache:  Cache{Namespace: asset.DefaultNamespace},
	}
}

// Load reads the file at path over the defaults. Files ending in .json are
// decoded as JSON, everything else as YAML. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: log.level: %w", err))
	}
	if c.Mesh.Kernel != KernelSdfx && c.Mesh.Kernel != KernelManifold {
		errs = append(errs, fmt.Errorf("config: mesh.kernel %q is not %s or %s", c.Mesh.Kernel, KernelSdfx, KernelManifold))
	}
	if c.Mesh.Segments < 0 {
		errs = append(errs, fmt.Errorf("config: mesh.segments must not be negative, got %d", c.Mesh.Segments))
	}
	if c.Mesh.Cells < 1 || c.Mesh.Cells > MaxMeshCells {
		errs = append(errs, fmt.Errorf("config: mesh.cells %d out of range [1, %d]", c.Mesh.Cells, MaxMeshCells))
	}
	if c.Engine.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("config: engine.timeout must be positive, got %s", time.Duration(c.Engine.Timeout)))
	}
	if !metricName.MatchString(c.Cache.Namespace) {
		errs = append(errs, fmt.Errorf("config: cache.namespace %q is not a valid metric name", c.Cache.Namespace))
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level, or info if it is invalid.
func (c Config) LogLevel() slog.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Logger builds the stderr logger for c.
func (c Config) Logger() *slog.Logger {
	return logging.New(c.LogLevel())
}
