package xfloat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// BaseFloatOps selects the error-free product kernel for a base float type.
// Float64Ops and Float32Ops are the two implementations; the arithmetic in
// this package is written once against this interface.
type BaseFloatOps[F constraints.Float] interface {
	// Split returns hi, lo such that hi+lo == a exactly and each half holds at
	// most half of the significand bits.
	Split(a F) (hi, lo F)

	// TwoProd returns p = fl(a*b) and the exact rounding error e.
	TwoProd(a, b F) (p, e F)

	// FMA reports whether TwoProd uses a fused multiply-add.
	FMA() bool
}

// Float64Ops is the float64 kernel. When FMA is set, TwoProd uses math.FMA,
// which is exact on every platform but only fast where the hardware has it;
// see CPUCapabilities.
type Float64Ops struct {
	UseFMA bool
}

var _ BaseFloatOps[float64] = Float64Ops{}

const (
	split64          = 134217729.0 // 2^27 + 1
	splitThresh64    = 0x1p996
	splitScaleDown   = 3.7252902984619140625e-09 // 2^-28
	splitScaleUp     = 268435456.0               // 2^28
	splitTopUlp64    = 0x1p970
	split32          = 4097.0 // 2^12 + 1
	splitThresh32    = 0x1p115
	splitScaleDown32 = 1.0 / 8192 // 2^-13
	splitScaleUp32   = 8192.0     // 2^13
	splitTopUlp32    = 0x1p103
)

func (o Float64Ops) FMA() bool { return o.UseFMA }

func (o Float64Ops) Split(a float64) (hi, lo float64) {
	if a > splitThresh64 || a < -splitThresh64 {
		a *= splitScaleDown
		t := float64(split64 * a)
		hi = t - (t - a)
		if hi == splitThresh64 || hi == -splitThresh64 {
			// hi rounded up to 2^996 and would overflow when scaled back. Step
			// down one 26-bit ulp; lo then needs 27 bits.
			hi = math.Copysign(splitThresh64-splitTopUlp64, a)
		}
		lo = a - hi
		return hi * splitScaleUp, lo * splitScaleUp
	}
	// The explicit conversion stops the compiler fusing the product into the
	// subtraction below.
	t := float64(split64 * a)
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

func (o Float64Ops) TwoProd(a, b float64) (p, e float64) {
	p = a * b
	if o.UseFMA {
		return p, math.FMA(a, b, -p)
	}

	// Above the split threshold, work on a scaled operand so the halves stay
	// finite, and scale the error back.
	ps, scale := p, 1.0
	if a > splitThresh64 || a < -splitThresh64 {
		a *= splitScaleDown
		ps, scale = a*b, splitScaleUp
	} else if b > splitThresh64 || b < -splitThresh64 {
		b *= splitScaleDown
		ps, scale = a*b, splitScaleUp
	}
	ah, al := o.Split(a)
	bh, bl := o.Split(b)
	e = ((ah*bh - ps) + ah*bl + al*bh) + al*bl
	return p, e * scale
}

// Float32Ops is the float32 kernel. A float32 product is exact in float64,
// so TwoProd never needs the split path and FMA always reports true.
type Float32Ops struct{}

var _ BaseFloatOps[float32] = Float32Ops{}

func (Float32Ops) FMA() bool { return true }

func (Float32Ops) Split(a float32) (hi, lo float32) {
	if a > splitThresh32 || a < -splitThresh32 {
		a *= splitScaleDown32
		t := float32(split32 * a)
		hi = t - (t - a)
		if hi == splitThresh32 || hi == -splitThresh32 {
			hi = float32(math.Copysign(splitThresh32-splitTopUlp32, float64(a)))
		}
		lo = a - hi
		return hi * splitScaleUp32, lo * splitScaleUp32
	}
	t := float32(split32 * a)
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

func (Float32Ops) TwoProd(a, b float32) (p, e float32) {
	x := float64(a) * float64(b)
	p = float32(x)
	return p, float32(x - float64(p))
}

// TwoSum returns s = fl(a+b) and the exact error e such that s+e == a+b,
// provided a+b does not overflow. The operands are ordered by magnitude with
// a select rather than control flow around the arithmetic.
func TwoSum[F constraints.Float](a, b F) (s, e F) {
	s = a + b
	big, small := a, b
	if abs(b) > abs(a) {
		big, small = b, a
	}
	e = (big - s) + small
	return s, e
}

// FastTwoSum is TwoSum for operands already known to satisfy |a| >= |b|
// (or a == 0).
func FastTwoSum[F constraints.Float](a, b F) (s, e F) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// Split is a convenience wrapper for ops.Split.
func Split[F constraints.Float, O BaseFloatOps[F]](ops O, a F) (hi, lo F) {
	return ops.Split(a)
}

// TwoProd is a convenience wrapper for ops.TwoProd.
func TwoProd[F constraints.Float, O BaseFloatOps[F]](ops O, a, b F) (p, e F) {
	return ops.TwoProd(a, b)
}

func abs[F constraints.Float](a F) F {
	if a < 0 {
		return -a
	}
	return a
}

// nonFinite is true for NaN and both infinities.
func nonFinite[F constraints.Float](a F) bool {
	return a-a != 0
}

func isNaN[F constraints.Float](a F) bool {
	return a != a
}

func isInf[F constraints.Float](a F) bool {
	return a == a && a-a != 0
}
