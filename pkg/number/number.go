// Package number provides Number, an exact decimal scalar used by every
// other layer of the kernel. A Number holds an IEEE 754-2008 decimal128
// value (34 significant digits) and is always kept in canonical form, so two
// Numbers that represent the same value compare equal with == and can be
// used directly as map keys, including the infinities and NaN.
package number

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/woodsbury/decimal128"
)

// Number is an immutable exact decimal value.
// The zero value is 0.
type Number struct {
	d decimal128.Decimal
}

var (
	// ErrSyntax is matched by parse errors for malformed literals.
	ErrSyntax = strconv.ErrSyntax
	// ErrRange is matched by parse errors for literals outside the representable range.
	ErrRange = strconv.ErrRange
)

// ParseError is returned by Parse when the text is not a valid decimal literal.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("number: parse %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// wrap canonicalizes d so that equal values share one representation.
func wrap(d decimal128.Decimal) Number {
	d = d.Canonical()
	if d.IsZero() {
		return Number{}
	}
	return Number{d: d}
}

// Parse parses a decimal literal such as "12", "-0.25", "1e-3", "Inf" or "NaN".
// Literals with more than 34 significant digits are rounded half to even,
// as strconv.ParseFloat rounds to the nearest float64; only malformed text is
// an error.
func Parse(s string) (Number, error) {
	d, err := decimal128.Parse(s)
	if err != nil {
		return Number{}, &ParseError{Text: s, Err: err}
	}
	return wrap(d), nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// package-level constants.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// New returns sig × 10^exp.
func New(sig int64, exp int) Number {
	return wrap(decimal128.New(sig, exp))
}

// FromInt returns the Number equal to i.
func FromInt(i int64) Number {
	return wrap(decimal128.FromInt64(i))
}

// FromFloat64 returns the Number closest to f.
func FromFloat64(f float64) Number {
	return wrap(decimal128.FromFloat64(f))
}

// Decimal returns the underlying decimal128 value.
func (n Number) Decimal() decimal128.Decimal {
	return n.d
}

func (n Number) Add(o Number) Number { return wrap(n.d.Add(o.d)) }
func (n Number) Sub(o Number) Number { return wrap(n.d.Sub(o.d)) }
func (n Number) Mul(o Number) Number { return wrap(n.d.Mul(o.d)) }

// Quo returns n / o. Division by zero yields ±Infinity, and 0/0 yields NaN.
func (n Number) Quo(o Number) Number { return wrap(n.d.Quo(o.d)) }

// Neg returns -n.
func (n Number) Neg() Number { return wrap(n.d.Neg()) }

// Abs returns |n|.
func (n Number) Abs() Number { return wrap(decimal128.Abs(n.d)) }

// Sqrt returns the square root of n. The square root of a negative number is NaN.
func (n Number) Sqrt() Number { return wrap(decimal128.Sqrt(n.d)) }

// Cbrt returns the cube root of n.
func (n Number) Cbrt() Number { return wrap(decimal128.Cbrt(n.d)) }

// Pow returns n raised to the power o.
func (n Number) Pow(o Number) Number { return wrap(n.d.Pow(o.d)) }

// Recip returns 1 / n.
func (n Number) Recip() Number { return One.Quo(n) }

// Hypot returns sqrt(n² + o²).
func (n Number) Hypot(o Number) Number {
	return n.Mul(n).Add(o.Mul(o)).Sqrt()
}

// Floor returns the greatest integer value less than or equal to n.
func (n Number) Floor() Number { return wrap(decimal128.Floor(n.d)) }

// Ceil returns the least integer value greater than or equal to n.
func (n Number) Ceil() Number { return wrap(decimal128.Ceil(n.d)) }

// Round returns the nearest integer, rounding half away from zero.
func (n Number) Round() Number { return wrap(decimal128.Round(n.d)) }

// Trunc returns the integer part of n.
func (n Number) Trunc() Number { return wrap(decimal128.Trunc(n.d)) }

// Cmp compares n and o and returns -1, 0 or +1. The order is total: NaN
// sorts below every other value, including -Infinity, and equals itself.
func (n Number) Cmp(o Number) int {
	return decimal128.Compare(n.d, o.d)
}

// Equal reports whether n and o hold exactly the same value. Unlike IEEE
// comparison, NaN is equal to NaN so that Equal agrees with ==.
func (n Number) Equal(o Number) bool { return n == o }

func (n Number) Less(o Number) bool    { return n.Cmp(o) < 0 }
func (n Number) Greater(o Number) bool { return n.Cmp(o) > 0 }

// ApproxEqual reports whether |n - o| <= Epsilon.
func (n Number) ApproxEqual(o Number) bool {
	return n.ApproxEqualWithin(o, Epsilon)
}

// ApproxEqualWithin reports whether |n - o| <= eps.
func (n Number) ApproxEqualWithin(o, eps Number) bool {
	if n == o {
		return true
	}
	if n.IsNaN() || o.IsNaN() {
		return false
	}
	diff := n.Sub(o).Abs()
	return !diff.IsNaN() && diff.Cmp(eps) <= 0
}

// Min returns the smaller of n and o.
func (n Number) Min(o Number) Number {
	if n.Cmp(o) <= 0 {
		return n
	}
	return o
}

// Max returns the larger of n and o.
func (n Number) Max(o Number) Number {
	if n.Cmp(o) >= 0 {
		return n
	}
	return o
}

func (n Number) IsZero() bool        { return n.d.IsZero() }
func (n Number) IsNaN() bool         { return n.d.IsNaN() }
func (n Number) IsInf(sign int) bool { return n.d.IsInf(sign) }

// IsFinite reports whether n is neither infinite nor NaN.
func (n Number) IsFinite() bool { return !n.IsNaN() && !n.IsInf(0) }

// Sign returns -1, 0 or +1. NaN reports 0.
func (n Number) Sign() int {
	if n.IsNaN() {
		return 0
	}
	return n.d.Sign()
}

// Signbit reports whether n is negative.
func (n Number) Signbit() bool { return n.d.Signbit() }

// Canonical returns n. It lets Number satisfy the same scalar interface as
// dimensioned quantities.
func (n Number) Canonical() Number { return n }

// Int64 returns n truncated to an integer. ok is false when n is NaN or out of range.
func (n Number) Int64() (int64, bool) {
	if n.IsNaN() {
		return 0, false
	}
	return n.d.Int64()
}

func (n Number) Float64() float64 { return n.d.Float64() }
func (n Number) Float32() float32 { return n.d.Float32() }

func (n Number) String() string { return n.d.String() }

// Format implements fmt.Formatter with the same verbs as float64.
func (n Number) Format(f fmt.State, verb rune) {
	n.d.Format(f, verb)
}

// IsParseError reports whether err came from parsing a malformed literal.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
