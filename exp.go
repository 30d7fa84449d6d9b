package xfloat

import (
	"math"
)

// expHalvings is the number of times the reduced argument is halved before
// the Taylor series; the result is squared back up as many times.
const expHalvings = 9

// expm1Small returns exp(r)-1 for |r| <= ln2/2. The argument is scaled down
// by 2^expHalvings so the series converges in a dozen terms, then each
// doubling applies expm1(2a) = 2*expm1(a) + expm1(a)^2, which never cancels.
func expm1Small(r DD) DD {
	if math.Abs(r.hi) < 0x1p-60 {
		return r.Add(r.Sqr().Ldexp(-1))
	}

	r = r.Ldexp(-expHalvings)
	p := r.Sqr()
	s := r.Add(p.Ldexp(-1))
	for i := 0; i < invFactN; i++ {
		p = p.Mul(r)
		t := p.Mul(invFact[i])
		s = s.Add(t)
		if math.Abs(t.hi) <= math.Abs(s.hi)*0x1p-108 {
			break
		}
	}

	for i := 0; i < expHalvings; i++ {
		s = s.Ldexp(1).Add(s.Sqr())
	}
	return s
}

// Exp returns e**x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf and very small ones underflow to 0.
func (x DD) Exp() DD {
	switch {
	case x.IsNaN():
		return ddNaN
	case x.hi > expOverflow:
		return ddInf
	case x.hi < expUnderflow:
		return ddZero
	case x.IsZero():
		return ddOne
	}

	k := math.Floor(x.hi/Ln2.hi + 0.5)
	r := x.Sub(Ln2.Mul64(k))
	return expm1Small(r).Add64(1).Ldexp(int(k))
}

// Expm1 returns e**x - 1, accurate even when x is near zero.
func (x DD) Expm1() DD {
	if x.IsNaN() {
		return ddNaN
	}
	if x.IsZero() {
		return x
	}
	if math.Abs(x.hi) < Ln2.hi/2 {
		return expm1Small(x)
	}
	if x.IsInf(-1) {
		return DDFrom64(-1)
	}
	return x.Exp().Sub64(1)
}

// Exp2 returns 2**x. Integral x gives an exact power of two.
func (x DD) Exp2() DD {
	switch {
	case x.IsNaN():
		return ddNaN
	case x.hi >= 1024:
		return ddInf
	case x.hi < -1100:
		return ddZero
	}
	n := x.Floor()
	f := x.Sub(n)
	if f.IsZero() {
		return ddOne.Ldexp(int(n.hi))
	}
	return f.Mul(Ln2).Exp().Ldexp(int(n.hi))
}

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func (x DD) Log() DD {
	switch {
	case x.IsNaN() || x.Sign() < 0:
		return ddNaN
	case x.IsZero():
		return ddInf.Neg()
	case x.IsInf(1):
		return ddInf
	}

	if x.hi > 0.75 && x.hi < 1.25 {
		return x.Sub64(1).Log1p()
	}

	// Keep exp(-y) below well inside the float64 range.
	if x.hi < 0x1p-1000 || x.hi > 0x1p1000 {
		f, e := x.Frexp()
		return f.Log().Add(Ln2.Mul64(float64(e)))
	}

	// One Newton step for exp(y) - x = 0 doubles the 53 correct bits of the
	// float64 seed.
	y := DDFrom64(math.Log(x.hi))
	return y.Add(x.Mul(y.Neg().Exp())).Sub64(1)
}

// Log1p returns the natural logarithm of 1+x, accurate even when x is near
// zero.
func (x DD) Log1p() DD {
	switch {
	case x.IsNaN() || x.hi < -1:
		return ddNaN
	case x.hi == -1 && x.lo == 0:
		return ddInf.Neg()
	case x.hi == -1 && x.lo < 0:
		return ddNaN
	case x.IsInf(1):
		return ddInf
	case x.IsZero():
		return x
	}

	if math.Abs(x.hi) > 0.5 {
		return x.Add64(1).Log()
	}

	// log(1+x) = 2*atanh(z), z = x/(2+x) = 2(z + z^3/3 + z^5/5 + ...)
	z := x.Quo(x.Add64(2))
	z2 := z.Sqr()
	sum, p := z, z
	for k := 3; k < 400; k += 2 {
		p = p.Mul(z2)
		t := p.Quo64(float64(k))
		sum = sum.Add(t)
		if math.Abs(t.hi) <= math.Abs(sum.hi)*0x1p-108 {
			break
		}
	}
	return sum.Ldexp(1)
}

// Log2 returns the binary logarithm of x. Exact powers of two give an exact
// integer.
func (x DD) Log2() DD {
	frac, exp := x.Frexp()
	if frac.hi == 0.5 && frac.lo == 0 {
		return DDFrom64(float64(exp - 1))
	}
	return x.Log().Mul(Log2E)
}

// Log10 returns the decimal logarithm of x.
func (x DD) Log10() DD {
	return x.Log().Quo(Ln10)
}

// powIntLimit bounds the exponents Pow handles by repeated squaring.
const powIntLimit = 1 << 30

// Pow returns x**y. Special cases follow math.Pow; integral exponents of
// moderate size use PowInt so negative bases work.
func (x DD) Pow(y DD) DD {
	switch {
	case y.IsZero() || x.Equal(ddOne):
		return ddOne
	case x.IsNaN() || y.IsNaN():
		return ddNaN
	case !x.IsFinite() || !y.IsFinite() || x.IsZero():
		return DDFrom64(math.Pow(x.hi, y.hi))
	}

	yi := y.Trunc()
	isInt := yi.Equal(y)
	if isInt && math.Abs(y.hi) <= powIntLimit {
		return x.PowInt(int(y.hi + y.lo))
	}

	if x.Sign() < 0 {
		if !isInt {
			return ddNaN
		}
		r := x.Neg().Log().Mul(y).Exp()
		if yi.Ldexp(-1).Trunc().Ldexp(1).Equal(yi) {
			return r
		}
		return r.Neg()
	}
	return x.Log().Mul(y).Exp()
}

// PowInt returns x**n by repeated squaring.
func (x DD) PowInt(n int) DD {
	if n == 0 {
		return ddOne
	}
	neg := n < 0
	u := uint(n)
	if neg {
		u = uint(-n)
	}

	r, s := ddOne, x
	for u > 0 {
		if u&1 != 0 {
			r = r.Mul(s)
		}
		u >>= 1
		if u > 0 {
			s = s.Sqr()
		}
	}
	if neg {
		return r.Recip()
	}
	return r
}
