package number

// The decimal backend has no trigonometry, so the functions below evaluate
// Taylor series on reduced arguments. Arguments that are exact multiples of
// a quarter turn reduce to zero and therefore produce exact results.

var (
	seriesTolerance = New(1, -40)
	atanThreshold   = New(1, -1)
	oneEighty       = FromInt(180)
)

// maxQuadrant bounds the argument reduction. Beyond it the 34 digits of
// the reduced argument are no longer meaningful.
const maxQuadrant = 1 << 40

const maxSeriesTerms = 80

func (n Number) Sin() Number {
	s, _ := n.SinCos()
	return s
}

func (n Number) Cos() Number {
	_, c := n.SinCos()
	return c
}

// Tan returns sin(n)/cos(n).
func (n Number) Tan() Number {
	s, c := n.SinCos()
	return s.Quo(c)
}

// SinCos returns sin(n) and cos(n), with n in radians.
func (n Number) SinCos() (sin, cos Number) {
	if !n.IsFinite() {
		return NaN, NaN
	}
	q, r, ok := reduceQuarter(n)
	if !ok {
		return NaN, NaN
	}
	s, c := sinSeries(r), cosSeries(r)
	switch q & 3 {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case 2:
		return s.Neg(), c.Neg()
	default:
		return c.Neg(), s
	}
}

// reduceQuarter writes n as q·π/2 + r with |r| <= π/4.
func reduceQuarter(n Number) (int64, Number, bool) {
	k := n.Quo(FracPi2).Round()
	q, ok := k.Int64()
	if !ok || q > maxQuadrant || q < -maxQuadrant {
		return 0, Number{}, false
	}
	return q, n.Sub(k.Mul(FracPi2)), true
}

func sinSeries(r Number) Number {
	sum, term := r, r
	r2 := r.Mul(r).Neg()
	for i := int64(1); i < maxSeriesTerms; i++ {
		term = term.Mul(r2).Quo(FromInt((2 * i) * (2*i + 1)))
		if term.Abs().Cmp(seriesTolerance) < 0 {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

func cosSeries(r Number) Number {
	sum, term := One, One
	r2 := r.Mul(r).Neg()
	for i := int64(1); i < maxSeriesTerms; i++ {
		term = term.Mul(r2).Quo(FromInt((2*i - 1) * (2 * i)))
		if term.Abs().Cmp(seriesTolerance) < 0 {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

// Atan returns the arctangent of n in radians, in [-π/2, π/2].
func (n Number) Atan() Number {
	switch {
	case n.IsNaN():
		return NaN
	case n.IsInf(1):
		return FracPi2
	case n.IsInf(-1):
		return FracPi2.Neg()
	case n.IsZero():
		return Zero
	case n == One:
		return FracPi4
	case n == One.Neg():
		return FracPi4.Neg()
	}

	if n.Abs().Cmp(One) > 0 {
		base := FracPi2
		if n.Signbit() {
			base = base.Neg()
		}
		return base.Sub(n.Recip().Atan())
	}

	// atan(x) = 2·atan(x / (1 + sqrt(1 + x²))) until the series converges quickly.
	x := n
	doublings := int64(0)
	for x.Abs().Cmp(atanThreshold) > 0 {
		x = x.Quo(One.Add(One.Add(x.Mul(x)).Sqrt()))
		doublings++
	}

	sum, power := x, x
	x2 := x.Mul(x).Neg()
	for i := int64(1); i < maxSeriesTerms; i++ {
		power = power.Mul(x2)
		term := power.Quo(FromInt(2*i + 1))
		if term.Abs().Cmp(seriesTolerance) < 0 {
			break
		}
		sum = sum.Add(term)
	}
	return sum.Mul(FromInt(1 << doublings))
}

// Atan2 returns the angle of the point (x, n) measured from the positive x
// axis, in (-π, π].
func (n Number) Atan2(x Number) Number {
	y := n
	if y.IsNaN() || x.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		switch y.Sign() {
		case 1:
			return FracPi2
		case -1:
			return FracPi2.Neg()
		default:
			return Zero
		}
	}
	a := y.Quo(x).Atan()
	if x.Sign() > 0 {
		return a
	}
	if y.Signbit() {
		return a.Sub(Pi)
	}
	return a.Add(Pi)
}

// Asin returns the arcsine of n. It returns NaN when |n| > 1.
func (n Number) Asin() Number {
	if n.Abs().Cmp(One) > 0 || n.IsNaN() {
		return NaN
	}
	return n.Atan2(One.Sub(n.Mul(n)).Sqrt())
}

// Acos returns the arccosine of n. It returns NaN when |n| > 1.
func (n Number) Acos() Number {
	if n.Abs().Cmp(One) > 0 || n.IsNaN() {
		return NaN
	}
	return One.Sub(n.Mul(n)).Sqrt().Atan2(n)
}

// ToDegrees converts n from radians to degrees.
func (n Number) ToDegrees() Number {
	return n.Mul(oneEighty).Quo(Pi)
}

// ToRadians converts n from degrees to radians.
func (n Number) ToRadians() Number {
	return n.Mul(Pi).Quo(oneEighty)
}
