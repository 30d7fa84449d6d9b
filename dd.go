package xfloat

import (
	"math"
)

// DD is a double-double: the unevaluated sum hi+lo of two float64 limbs, with
// |lo| <= ulp(hi)/2. It carries about 106 bits of significand with the
// exponent range of float64.
type DD struct {
	hi, lo float64
}

// DDFromRaw builds a DD from two limbs without normalising them. It is
// intended for formatters and tests that need to see exactly what they put
// in; use DDFromSum to get a normalised value.
func DDFromRaw(hi, lo float64) DD { return DD{hi: hi, lo: lo} }

// DDFromSum returns the normalised DD equal to a+b.
func DDFromSum(a, b float64) DD {
	s, e := TwoSum(a, b)
	return ddOf(canon(s, e))
}

func DDFrom64(v float64) DD { return DD{hi: v} }
func DDFrom32(v float32) DD { return DD{hi: float64(v)} }

// DDFromInt64 converts v exactly. The low 11 bits are split off so both
// halves are exactly representable in a float64.
func DDFromInt64(v int64) DD {
	return DDFromSum(float64(v&^0x7FF), float64(v&0x7FF))
}

// DDFromUint64 converts v exactly.
func DDFromUint64(v uint64) DD {
	return DDFromSum(float64(v&^0x7FF), float64(v&0x7FF))
}

// RandDD returns a uniformly distributed value in [0, 1) carrying 106 random
// bits, using an external source.
func RandDD(source RandSource) DD {
	hi := float64(source.Uint64()>>11) * 0x1p-53
	lo := float64(source.Uint64()>>11) * 0x1p-106
	return DDFromSum(hi, lo)
}

// Raw returns the two limbs. See DDFromRaw for the counterpart.
func (x DD) Raw() (hi, lo float64) { return x.hi, x.lo }

func (x DD) Hi() float64 { return x.hi }
func (x DD) Lo() float64 { return x.lo }

// AsFloat64 rounds x to the nearest float64. For a normalised value this is
// hi; the sum is kept so raw values convert sensibly too.
func (x DD) AsFloat64() float64 { return x.hi + x.lo }

// AsFloat32 rounds x to a float32. The result is faithful: a float32 tie
// in hi broken only by lo may round the wrong way.
func (x DD) AsFloat32() float32 { return float32(x.hi + x.lo) }

// AsDS narrows x to a double-single.
func (x DD) AsDS() DS {
	hi := float32(x.hi)
	if nonFinite(hi) {
		return DS{hi: hi}
	}
	lo := float32((x.hi - float64(hi)) + x.lo)
	return dsOf(canon(FastTwoSum(hi, lo)))
}

// AsInt64 truncates x towards zero. Values outside the int64 range saturate
// and set inRange to false; NaN returns 0, false.
func (x DD) AsInt64() (out int64, inRange bool) {
	if x.IsNaN() {
		return 0, false
	}
	t := x.Trunc()
	if t.hi > 0x1p63 || (t.hi == 0x1p63 && t.lo >= 0) {
		return math.MaxInt64, false
	} else if t.hi < -0x1p63 || (t.hi == -0x1p63 && t.lo < 0) {
		return math.MinInt64, false
	}
	if t.hi == 0x1p63 {
		// lo is a negative integer here, so the sum is back in range.
		return math.MaxInt64 + (int64(t.lo) + 1), true
	}
	return int64(t.hi) + int64(t.lo), true
}

func (x DD) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// Sign returns -1, 0 or 1. NaN returns 0.
func (x DD) Sign() int {
	if x.hi > 0 || (x.hi == 0 && x.lo > 0) {
		return 1
	} else if x.hi < 0 || (x.hi == 0 && x.lo < 0) {
		return -1
	}
	return 0
}

// Signbit reports whether the sign bit of hi is set.
func (x DD) Signbit() bool { return math.Signbit(x.hi) }

// IsNaN reports whether either limb is NaN.
func (x DD) IsNaN() bool { return x.hi != x.hi || x.lo != x.lo }

// IsInf reports whether either limb is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity; if sign < 0,
// negative infinity; if sign == 0, either.
func (x DD) IsInf(sign int) bool {
	return math.IsInf(x.hi, sign) || math.IsInf(x.lo, sign)
}

// IsFinite reports whether both limbs are finite.
func (x DD) IsFinite() bool { return !nonFinite(x.hi) && !nonFinite(x.lo) }

// IsNormal reports whether both limbs are finite and neither is subnormal.
// Zero limbs are allowed in lo, as every embedded float64 has one.
func (x DD) IsNormal() bool {
	return isNormal64(x.hi) && (x.lo == 0 || isNormal64(x.lo))
}

func isNormal64(f float64) bool {
	a := math.Abs(f)
	return a >= 0x1p-1022 && a <= math.MaxFloat64
}

func (x DD) Neg() DD { return DD{hi: -x.hi, lo: -x.lo} }

func (x DD) Abs() DD {
	if x.hi < 0 || (x.hi == 0 && x.lo < 0) {
		return x.Neg()
	}
	return x
}

func (x DD) Add(y DD) DD        { return defaultKernel64.Add(x, y) }
func (x DD) Add64(y float64) DD { return ddOf(addFloatLimbs(x.hi, x.lo, y)) }
func (x DD) Sub(y DD) DD        { return defaultKernel64.Sub(x, y) }
func (x DD) Sub64(y float64) DD { return ddOf(addFloatLimbs(x.hi, x.lo, -y)) }
func (x DD) Mul(y DD) DD        { return defaultKernel64.Mul(x, y) }
func (x DD) Mul64(y float64) DD { return defaultKernel64.Mul64(x, y) }

// Quo returns x/y. Division by zero follows float64: ±Inf, or NaN for 0/0.
func (x DD) Quo(y DD) DD { return defaultKernel64.Quo(x, y) }

func (x DD) Quo64(y float64) DD { return defaultKernel64.Quo64(x, y) }

// Sqr returns x*x, cheaper than x.Mul(x).
func (x DD) Sqr() DD { return defaultKernel64.Sqr(x) }

func (x DD) Recip() DD { return defaultKernel64.Recip(x) }

// Sqrt returns the square root of x. Zero is returned unchanged (so -0 stays
// -0) and negative values give NaN.
func (x DD) Sqrt() DD { return defaultKernel64.Sqrt(x) }

func (x DD) Cbrt() DD { return defaultKernel64.Cbrt(x) }

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
func (x DD) Hypot(y DD) DD { return defaultKernel64.Hypot(x, y) }

// Cmp compares x and y lexicographically on (hi, lo) and returns -1, 0 or 1.
// A NaN is less than any other value and equal to another NaN.
func (x DD) Cmp(y DD) int { return cmpLimbs(x.hi, x.lo, y.hi, y.lo) }

func (x DD) Equal(y DD) bool {
	return x.hi == y.hi && x.lo == y.lo
}

func (x DD) GreaterThan(y DD) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo > y.lo)
}

func (x DD) GreaterOrEqualTo(y DD) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo >= y.lo)
}

func (x DD) LessThan(y DD) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo < y.lo)
}

func (x DD) LessOrEqualTo(y DD) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo <= y.lo)
}
