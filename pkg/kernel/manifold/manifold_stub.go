//go:build !manifold

// Package manifold binds the Manifold library as a kernel.Kernel. Without
// the "manifold" build tag this stub is compiled and New fails.
//
// Build with: go build -tags=manifold
package manifold

import "github.com/chazu/stockyard/pkg/kernel"

// ManifoldKernel is never instantiated without the manifold tag.
type ManifoldKernel struct {
	segments int
}

// New returns ErrUnavailable.
func New(opts ...Option) (kernel.Kernel, error) {
	return nil, ErrUnavailable
}
