package xfloat

import (
	"math"
	"math/big"
)

// DS is a double-single: the unevaluated sum hi+lo of two float32 limbs,
// carrying about 48 bits of significand with the exponent range of float32.
//
// Arithmetic runs the same limb-pair kernel as DD. The elementary functions
// are evaluated in float64, whose 53 bits cover DS's precision, and narrowed.
type DS struct {
	hi, lo float32
}

var ds32 = Float32Ops{}

// DSFromRaw builds a DS from two limbs without normalising them.
func DSFromRaw(hi, lo float32) DS { return DS{hi: hi, lo: lo} }

// DSFromSum returns the normalised DS equal to a+b.
func DSFromSum(a, b float32) DS {
	return dsOf(canon(TwoSum(a, b)))
}

func DSFrom32(v float32) DS { return DS{hi: v} }

// DSFrom64 rounds v to the nearest DS. Values beyond the float32 range
// become infinite.
func DSFrom64(v float64) DS {
	hi := float32(v)
	if nonFinite(hi) {
		return DS{hi: hi}
	}
	return dsOf(canon(FastTwoSum(hi, float32(v-float64(hi)))))
}

func (x DS) Raw() (hi, lo float32) { return x.hi, x.lo }
func (x DS) Hi() float32           { return x.hi }
func (x DS) Lo() float32           { return x.lo }

func (x DS) AsFloat32() float32 { return x.hi + x.lo }

// AsFloat64 sums the limbs in float64, which holds any normalised DS
// exactly.
func (x DS) AsFloat64() float64 { return float64(x.hi) + float64(x.lo) }

// AsDD widens x exactly.
func (x DS) AsDD() DD { return DDFromSum(float64(x.hi), float64(x.lo)) }

func (x DS) IsZero() bool { return x.hi == 0 && x.lo == 0 }

func (x DS) Sign() int {
	if x.hi > 0 || (x.hi == 0 && x.lo > 0) {
		return 1
	} else if x.hi < 0 || (x.hi == 0 && x.lo < 0) {
		return -1
	}
	return 0
}

func (x DS) Signbit() bool { return math.Signbit(float64(x.hi)) }
func (x DS) IsNaN() bool   { return isNaN(x.hi) || isNaN(x.lo) }

func (x DS) IsInf(sign int) bool {
	return math.IsInf(float64(x.hi), sign) || math.IsInf(float64(x.lo), sign)
}

func (x DS) IsFinite() bool { return !nonFinite(x.hi) && !nonFinite(x.lo) }

func (x DS) IsNormal() bool {
	return isNormal32(x.hi) && (x.lo == 0 || isNormal32(x.lo))
}

func isNormal32(f float32) bool {
	a := abs(f)
	return a >= 0x1p-126 && a <= math.MaxFloat32
}

func (x DS) Neg() DS { return DS{hi: -x.hi, lo: -x.lo} }

func (x DS) Abs() DS {
	if x.hi < 0 || (x.hi == 0 && x.lo < 0) {
		return x.Neg()
	}
	return x
}

func (x DS) Add(y DS) DS        { return dsOf(addLimbs(x.hi, x.lo, y.hi, y.lo)) }
func (x DS) Add32(y float32) DS { return dsOf(addFloatLimbs(x.hi, x.lo, y)) }
func (x DS) Sub(y DS) DS        { return dsOf(addLimbs(x.hi, x.lo, -y.hi, -y.lo)) }
func (x DS) Sub32(y float32) DS { return dsOf(addFloatLimbs(x.hi, x.lo, -y)) }
func (x DS) Mul(y DS) DS        { return dsOf(mulLimbs(ds32, x.hi, x.lo, y.hi, y.lo)) }
func (x DS) Mul32(y float32) DS { return dsOf(mulFloatLimbs(ds32, x.hi, x.lo, y)) }
func (x DS) Quo(y DS) DS        { return dsOf(quoLimbs(ds32, x.hi, x.lo, y.hi, y.lo)) }
func (x DS) Quo32(y float32) DS { return dsOf(quoFloatLimbs(ds32, x.hi, x.lo, y)) }
func (x DS) Sqr() DS            { return dsOf(sqrLimbs(ds32, x.hi, x.lo)) }
func (x DS) Recip() DS          { return dsOf(quoLimbs(ds32, 1, 0, x.hi, x.lo)) }
func (x DS) Sqrt() DS           { return dsOf(sqrtLimbs(ds32, x.hi, x.lo)) }
func (x DS) Cbrt() DS           { return dsOf(cbrtLimbs(ds32, x.hi, x.lo)) }
func (x DS) Hypot(y DS) DS      { return dsOf(hypotLimbs(ds32, x.hi, x.lo, y.hi, y.lo)) }

// Cmp orders like DD.Cmp.
func (x DS) Cmp(y DS) int { return cmpLimbs(x.hi, x.lo, y.hi, y.lo) }

func (x DS) Equal(y DS) bool { return x.hi == y.hi && x.lo == y.lo }

func (x DS) GreaterThan(y DS) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo > y.lo)
}

func (x DS) GreaterOrEqualTo(y DS) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo >= y.lo)
}

func (x DS) LessThan(y DS) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo < y.lo)
}

func (x DS) LessOrEqualTo(y DS) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo <= y.lo)
}

func (x DS) Trunc() DS       { return dsOf(roundLimbs(x.hi, x.lo, big.ToZero)) }
func (x DS) Floor() DS       { return dsOf(roundLimbs(x.hi, x.lo, big.ToNegativeInf)) }
func (x DS) Ceil() DS        { return dsOf(roundLimbs(x.hi, x.lo, big.ToPositiveInf)) }
func (x DS) Round() DS       { return dsOf(roundLimbs(x.hi, x.lo, big.ToNearestAway)) }
func (x DS) RoundToEven() DS { return dsOf(roundLimbs(x.hi, x.lo, big.ToNearestEven)) }
func (x DS) Rint() DS        { return x.RoundMode(big.ToNearestEven) }

func (x DS) RoundMode(mode big.RoundingMode) DS { return dsOf(roundLimbs(x.hi, x.lo, mode)) }

func (x DS) Frexp() (frac DS, exp int) {
	fh, fl, exp := frexpLimbs(x.hi, x.lo)
	return dsOf(fh, fl), exp
}

func (x DS) Ldexp(exp int) DS { return dsOf(ldexpCanon(x.hi, x.lo, exp)) }

func (x DS) Modf() (ipart DS, frac DS) {
	ih, il, fh, fl := modfLimbs(x.hi, x.lo)
	return dsOf(ih, il), dsOf(fh, fl)
}

func (x DS) Mod(y DS) DS { return dsOf(modLimbs(x.hi, x.lo, y.hi, y.lo)) }

func (x DS) via64(fn func(float64) float64) DS { return DSFrom64(fn(x.AsFloat64())) }

func (x DS) Exp() DS   { return x.via64(math.Exp) }
func (x DS) Expm1() DS { return x.via64(math.Expm1) }
func (x DS) Exp2() DS  { return x.via64(math.Exp2) }
func (x DS) Log() DS   { return x.via64(math.Log) }
func (x DS) Log1p() DS { return x.via64(math.Log1p) }
func (x DS) Log2() DS  { return x.via64(math.Log2) }
func (x DS) Log10() DS { return x.via64(math.Log10) }
func (x DS) Sin() DS   { return x.via64(math.Sin) }
func (x DS) Cos() DS   { return x.via64(math.Cos) }
func (x DS) Tan() DS   { return x.via64(math.Tan) }
func (x DS) Asin() DS  { return x.via64(math.Asin) }
func (x DS) Acos() DS  { return x.via64(math.Acos) }
func (x DS) Atan() DS  { return x.via64(math.Atan) }
func (x DS) Sinh() DS  { return x.via64(math.Sinh) }
func (x DS) Cosh() DS  { return x.via64(math.Cosh) }
func (x DS) Tanh() DS  { return x.via64(math.Tanh) }
func (x DS) Asinh() DS { return x.via64(math.Asinh) }
func (x DS) Acosh() DS { return x.via64(math.Acosh) }
func (x DS) Atanh() DS { return x.via64(math.Atanh) }
func (x DS) Gamma() DS { return x.via64(math.Gamma) }
func (x DS) Erf() DS   { return x.via64(math.Erf) }
func (x DS) Erfc() DS  { return x.via64(math.Erfc) }

func (x DS) Sincos() (sin, cos DS) {
	s, c := math.Sincos(x.AsFloat64())
	return DSFrom64(s), DSFrom64(c)
}

func (y DS) Atan2(x DS) DS {
	return DSFrom64(math.Atan2(y.AsFloat64(), x.AsFloat64()))
}

func (x DS) Lgamma() (lgamma DS, sign int) {
	l, s := math.Lgamma(x.AsFloat64())
	return DSFrom64(l), s
}

func (x DS) Pow(y DS) DS {
	return DSFrom64(math.Pow(x.AsFloat64(), y.AsFloat64()))
}

func (x DS) PowInt(n int) DS {
	return DSFrom64(math.Pow(x.AsFloat64(), float64(n)))
}
