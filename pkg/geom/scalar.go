package geom

import "github.com/chazu/stockyard/pkg/number"

// Scalar is satisfied by number.Number and by every dimensioned quantity in
// package unit.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	Abs() T
	Mul(number.Number) T
	Quo(number.Number) T
	Cmp(T) int
	ApproxEqual(T) bool
	IsZero() bool
	Canonical() number.Number
}

func minOf[T Scalar[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxOf[T Scalar[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
