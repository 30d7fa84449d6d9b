// This file contains a version of the exponent-alignment loop from math.Mod,
// generalised to limb pairs.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfloat

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// frexpLimbs breaks hi+lo into a fraction in [0.5, 1) and a power of two.
// The exponent is taken from hi; when hi is exactly a power of two and lo
// pulls the sum below it, the fraction is doubled to stay in range.
func frexpLimbs[F constraints.Float](hi, lo F) (fh, fl F, exp int) {
	if hi == 0 || nonFinite(hi) {
		return hi, 0, 0
	}
	fr, exp := math.Frexp(float64(hi))
	fh, fl = ldexpLimbs(hi, lo, -exp)
	if (fr == 0.5 && fl < 0) || (fr == -0.5 && fl > 0) {
		fh, fl = fh*2, fl*2
		exp--
	}
	return fh, fl, exp
}

func ldexpCanon[F constraints.Float](hi, lo F, exp int) (F, F) {
	if hi == 0 || nonFinite(hi) {
		return hi, 0
	}
	h, l := ldexpLimbs(hi, lo, exp)
	if nonFinite(h) {
		return h, 0
	}
	// lo may have lost bits to gradual underflow, so renormalise.
	return FastTwoSum(h, l)
}

// modLimbs returns x - n*y for the integer n that makes the result the same
// sign as x and smaller in magnitude than y. Like math.Mod it repeatedly
// subtracts y scaled by a power of two aligned with the running remainder.
func modLimbs[F constraints.Float](xh, xl, yh, yl F) (F, F) {
	switch {
	case isNaN(xh) || isNaN(xl) || isNaN(yh) || isNaN(yl):
		return F(math.NaN()), 0
	case nonFinite(xh) || (yh == 0 && yl == 0):
		return F(math.NaN()), 0
	case nonFinite(yh):
		return xh, xl
	}

	neg := xh < 0 || (xh == 0 && xl < 0)
	if neg {
		xh, xl = -xh, -xl
	}
	if yh < 0 {
		yh, yl = -yh, -yl
	}
	_, yexp := math.Frexp(float64(yh))

	rh, rl := xh, xl
	for cmpLimbs(rh, rl, yh, yl) >= 0 {
		_, rexp := math.Frexp(float64(rh))
		th, tl := ldexpLimbs(yh, yl, rexp-yexp)
		if cmpLimbs(th, tl, rh, rl) > 0 {
			th, tl = th*0.5, tl*0.5
		}
		rh, rl = addLimbs(rh, rl, -th, -tl)
	}
	if neg {
		rh, rl = -rh, -rl
	}
	if rh == 0 && rl == 0 {
		return F(math.Copysign(0, b2f(neg))), 0
	}
	return rh, rl
}

// modfLimbs splits x into an integer part and a fraction with the same sign.
func modfLimbs[F constraints.Float](xh, xl F) (ih, il, fh, fl F) {
	if isNaN(xh) || isNaN(xl) {
		nan := F(math.NaN())
		return nan, 0, nan, 0
	}
	if nonFinite(xh) {
		return xh, 0, F(math.NaN()), 0
	}
	ih, il = roundLimbs(xh, xl, big.ToZero)
	fh, fl = addLimbs(xh, xl, -ih, -il)
	if fh == 0 && fl == 0 {
		fh = F(math.Copysign(0, float64(xh)))
	}
	return ih, il, fh, fl
}

func b2f(neg bool) float64 {
	if neg {
		return -1
	}
	return 1
}

// Frexp breaks x into a normalised fraction in [0.5, 1) and an integral power
// of two, such that x == frac × 2**exp. Zero, infinities and NaN are returned
// with exp 0.
func (x DD) Frexp() (frac DD, exp int) {
	fh, fl, exp := frexpLimbs(x.hi, x.lo)
	return ddOf(fh, fl), exp
}

// Ldexp returns x × 2**exp.
func (x DD) Ldexp(exp int) DD { return ddOf(ldexpCanon(x.hi, x.lo, exp)) }

// Modf returns integer and fractional parts that sum to x. Both have the
// same sign as x.
func (x DD) Modf() (ipart DD, frac DD) {
	ih, il, fh, fl := modfLimbs(x.hi, x.lo)
	return ddOf(ih, il), ddOf(fh, fl)
}

// Mod returns the floating-point remainder of x/y. The result has the sign of
// x and magnitude less than |y|.
//
// Special cases follow math.Mod:
//
//	Mod(±Inf, y) = NaN
//	Mod(NaN, y) = NaN
//	Mod(x, 0) = NaN
//	Mod(x, ±Inf) = x
//	Mod(x, NaN) = NaN
func (x DD) Mod(y DD) DD { return ddOf(modLimbs(x.hi, x.lo, y.hi, y.lo)) }
