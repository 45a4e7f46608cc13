package number

import "github.com/woodsbury/decimal128"

var (
	Zero    = Number{}
	One     = FromInt(1)
	Two     = FromInt(2)
	Half    = New(5, -1)
	Quarter = New(25, -2)

	Pi      = wrap(decimal128.Pi())
	Tau     = Pi.Mul(Two)
	FracPi2 = Pi.Quo(Two)
	FracPi3 = Pi.Quo(FromInt(3))
	FracPi4 = Pi.Quo(FromInt(4))
	Frac1Pi = One.Quo(Pi)
	Frac2Pi = Two.Quo(Pi)

	Infinity    = wrap(decimal128.Inf(1))
	NegInfinity = wrap(decimal128.Inf(-1))
	NaN         = wrap(decimal128.NaN())

	// Epsilon is the tolerance used by ApproxEqual. It leaves ten of the
	// 34 significant digits as headroom for series and rounding error.
	Epsilon = New(1, -24)
)
