package manifold

import "errors"

// ErrUnavailable is returned by New when built without the manifold tag.
var ErrUnavailable = errors.New("manifold kernel not available: build with -tags=manifold")

// Option configures a ManifoldKernel.
type Option func(*ManifoldKernel)

// WithSegments sets the number of segments around cylinders. Zero lets
// Manifold choose from the radius.
func WithSegments(n int) Option {
	return func(k *ManifoldKernel) {
		if n >= 0 {
			k.segments = n
		}
	}
}
