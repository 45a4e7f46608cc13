package unit

import "github.com/chazu/stockyard/pkg/number"

// Sqrt returns the side of the square with area q.
func (q Area) Sqrt() Length { return Length{v: q.v.Sqrt()} }

// Cbrt returns the side of the cube with volume q.
func (q Volume) Cbrt() Length { return Length{v: q.v.Cbrt()} }

var (
	// FullTurn is one complete revolution.
	FullTurn = Angle{v: number.Tau}
	// HalfTurn is half a revolution.
	HalfTurn = Angle{v: number.Pi}
	// QuarterTurn is a right angle.
	QuarterTurn = Angle{v: number.FracPi2}
)

func (q Angle) Sin() number.Number { return q.v.Sin() }
func (q Angle) Cos() number.Number { return q.v.Cos() }
func (q Angle) Tan() number.Number { return q.v.Tan() }

// SinCos returns the sine and cosine of q.
func (q Angle) SinCos() (number.Number, number.Number) { return q.v.SinCos() }

// AngleFromAtan2 returns the angle of the point (x, y) from the positive x axis.
func AngleFromAtan2(y, x number.Number) Angle { return Angle{v: y.Atan2(x)} }

// AngleFromAsin returns the angle whose sine is n.
func AngleFromAsin(n number.Number) Angle { return Angle{v: n.Asin()} }

// AngleFromAcos returns the angle whose cosine is n.
func AngleFromAcos(n number.Number) Angle { return Angle{v: n.Acos()} }
