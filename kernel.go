package xfloat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// The functions in this file implement the limb-pair arithmetic once for any
// base float. Every function takes and returns raw (hi, lo) pairs so DD and DS
// can share them; results are normalised and canonical: if hi is NaN or
// infinite, lo is 0.

func canon[F constraints.Float](hi, lo F) (F, F) {
	if nonFinite(hi) {
		return hi, 0
	}
	return hi, lo
}

func addLimbs[F constraints.Float](xh, xl, yh, yl F) (F, F) {
	s1, s2 := TwoSum(xh, yh)
	if nonFinite(s1) {
		return s1, 0
	}
	t1, t2 := TwoSum(xl, yl)
	s2 += t1
	s1, s2 = FastTwoSum(s1, s2)
	s2 += t2
	s1, s2 = FastTwoSum(s1, s2)
	return canon(s1, s2)
}

func addFloatLimbs[F constraints.Float](xh, xl, y F) (F, F) {
	s1, s2 := TwoSum(xh, y)
	if nonFinite(s1) {
		return s1, 0
	}
	s2 += xl
	return canon(FastTwoSum(s1, s2))
}

func mulLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl, yh, yl F) (F, F) {
	p, e := ops.TwoProd(xh, yh)
	if nonFinite(p) {
		return p, 0
	}
	e += xh*yl + xl*yh
	return canon(FastTwoSum(p, e))
}

func mulFloatLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl, y F) (F, F) {
	p, e := ops.TwoProd(xh, y)
	if nonFinite(p) {
		return p, 0
	}
	e += xl * y
	return canon(FastTwoSum(p, e))
}

func sqrLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl F) (F, F) {
	p, e := ops.TwoProd(xh, xh)
	if nonFinite(p) {
		return p, 0
	}
	e += 2 * xh * xl
	e += xl * xl
	return canon(FastTwoSum(p, e))
}

// quoLimbs divides with a single correction step: q0 = x.hi/y.hi, then the
// residual x - q0*y is formed exactly enough with TwoProd to give q1.
func quoLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl, yh, yl F) (F, F) {
	q0 := xh / yh
	if nonFinite(q0) || nonFinite(yh) {
		return q0, 0
	}
	rh, rl := mulFloatLimbs(ops, yh, yl, q0)
	s, e := TwoSum(xh, -rh)
	e -= rl
	e += xl
	q1 := (s + e) / yh
	return canon(FastTwoSum(q0, q1))
}

func quoFloatLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl, y F) (F, F) {
	return quoLimbs(ops, xh, xl, y, 0)
}

func sqrtLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl F) (F, F) {
	if xh == 0 {
		return xh, xl
	}
	if nonFinite(xh) || xh < 0 {
		return F(math.Sqrt(float64(xh))), 0
	}
	g := F(math.Sqrt(float64(xh)))
	qh, ql := quoLimbs(ops, xh, xl, g, 0)
	sh, sl := addFloatLimbs(qh, ql, g)
	return sh * 0.5, sl * 0.5
}

func cbrtLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl F) (F, F) {
	if xh == 0 || nonFinite(xh) {
		return canon(xh, xl)
	}
	// Work near 1 so the residuals keep every bit even when x is tiny.
	_, exp := math.Frexp(float64(xh))
	k := exp / 3
	xh, xl = ldexpLimbs(xh, xl, -3*k)

	g := F(math.Cbrt(float64(xh)))
	gh, gl := ops.TwoProd(g, g)
	qh, ql := quoLimbs(ops, xh, xl, gh, gl)
	sh, sl := addFloatLimbs(qh, ql, 2*g)
	rh, rl := quoFloatLimbs(ops, sh, sl, 3)
	return ldexpLimbs(rh, rl, k)
}

// hypotLimbs scales both operands by the exponent of the larger hi limb so the
// squares can neither overflow nor underflow, then scales the root back.
func hypotLimbs[F constraints.Float, O BaseFloatOps[F]](ops O, xh, xl, yh, yl F) (F, F) {
	if isInf(xh) || isInf(yh) || isInf(xl) || isInf(yl) {
		return F(math.Inf(1)), 0
	}
	if isNaN(xh) || isNaN(yh) || isNaN(xl) || isNaN(yl) {
		return F(math.NaN()), 0
	}
	m := max(abs(xh), abs(yh))
	if m == 0 {
		return 0, 0
	}
	_, exp := math.Frexp(float64(m))
	xh, xl = ldexpLimbs(xh, xl, -exp)
	yh, yl = ldexpLimbs(yh, yl, -exp)

	ah, al := sqrLimbs(ops, xh, xl)
	bh, bl := sqrLimbs(ops, yh, yl)
	sh, sl := addLimbs(ah, al, bh, bl)
	rh, rl := sqrtLimbs(ops, sh, sl)
	return ldexpLimbs(rh, rl, exp)
}

// ldexpLimbs scales both limbs by 2^exp. It is exact unless a limb leaves the
// normal range.
func ldexpLimbs[F constraints.Float](hi, lo F, exp int) (F, F) {
	return F(math.Ldexp(float64(hi), exp)), F(math.Ldexp(float64(lo), exp))
}

func negLimbs[F constraints.Float](hi, lo F) (F, F) {
	return -hi, -lo
}

// cmpLimbs orders lexicographically on (hi, lo). NaN sorts before everything
// else and is equal to NaN.
func cmpLimbs[F constraints.Float](xh, xl, yh, yl F) int {
	xn, yn := isNaN(xh) || isNaN(xl), isNaN(yh) || isNaN(yl)
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	}
	if xh < yh {
		return -1
	} else if xh > yh {
		return 1
	} else if xl < yl {
		return -1
	} else if xl > yl {
		return 1
	}
	return 0
}

// Kernel64 is the double-double arithmetic kernel for a specific
// Float64Ops variant. The package-level DD methods use the kernel chosen by
// CPUCapabilities; a Kernel64 makes the choice explicit.
type Kernel64 struct {
	ops Float64Ops
}

func NewKernel64(ops Float64Ops) Kernel64 { return Kernel64{ops: ops} }

// DefaultKernel64 returns the kernel used by DD's methods.
func DefaultKernel64() Kernel64 { return defaultKernel64 }

func (k Kernel64) Ops() Float64Ops { return k.ops }

func (k Kernel64) Add(x, y DD) DD { return ddOf(addLimbs(x.hi, x.lo, y.hi, y.lo)) }

func (k Kernel64) Sub(x, y DD) DD { return ddOf(addLimbs(x.hi, x.lo, -y.hi, -y.lo)) }

func (k Kernel64) Mul(x, y DD) DD { return ddOf(mulLimbs(k.ops, x.hi, x.lo, y.hi, y.lo)) }

func (k Kernel64) Mul64(x DD, y float64) DD { return ddOf(mulFloatLimbs(k.ops, x.hi, x.lo, y)) }

func (k Kernel64) Quo(x, y DD) DD { return ddOf(quoLimbs(k.ops, x.hi, x.lo, y.hi, y.lo)) }

func (k Kernel64) Quo64(x DD, y float64) DD { return ddOf(quoFloatLimbs(k.ops, x.hi, x.lo, y)) }

func (k Kernel64) Sqr(x DD) DD { return ddOf(sqrLimbs(k.ops, x.hi, x.lo)) }

func (k Kernel64) Recip(x DD) DD { return ddOf(quoLimbs(k.ops, 1, 0, x.hi, x.lo)) }

func (k Kernel64) Sqrt(x DD) DD { return ddOf(sqrtLimbs(k.ops, x.hi, x.lo)) }

func (k Kernel64) Cbrt(x DD) DD { return ddOf(cbrtLimbs(k.ops, x.hi, x.lo)) }

func (k Kernel64) Hypot(x, y DD) DD { return ddOf(hypotLimbs(k.ops, x.hi, x.lo, y.hi, y.lo)) }

// TwoProd exposes the kernel's error-free product.
func (k Kernel64) TwoProd(a, b float64) DD { return ddOf(k.ops.TwoProd(a, b)) }

func ddOf(hi, lo float64) DD { return DD{hi: hi, lo: lo} }

func dsOf(hi, lo float32) DS { return DS{hi: hi, lo: lo} }
