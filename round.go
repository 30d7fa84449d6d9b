package xfloat

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// roundLimbs rounds the pair (xh, xl) to an integer using mode.
//
// Each limb is truncated on its own; the two fractional remainders are then
// summed smallest first with TwoSum, which is exact, so (s, e) is precisely
// the fractional part of x. The integer part is corrected by k, chosen from
// the sign of x and where s+e sits relative to the 1.0 and 0.5 thresholds.
func roundLimbs[F constraints.Float](xh, xl F, mode big.RoundingMode) (F, F) {
	if isNaN(xh) || isNaN(xl) {
		return F(math.NaN()), 0
	}
	if nonFinite(xh) {
		return xh, 0
	}

	ih, il := truncF(xh), truncF(xl)
	s, e := TwoSum(xl-il, xh-ih)
	nh, nl := TwoSum(ih, il)
	neg := xh < 0 || (xh == 0 && xl < 0)

	var k F
	switch mode {
	case big.ToZero:
		if neg {
			k = pairCeil(s, e)
		} else {
			k = pairFloor(s, e)
		}

	case big.AwayFromZero:
		if neg {
			k = pairFloor(s, e)
		} else {
			k = pairCeil(s, e)
		}

	case big.ToNegativeInf:
		k = pairFloor(s, e)

	case big.ToPositiveInf:
		k = pairCeil(s, e)

	case big.ToNearestEven, big.ToNearestAway:
		k = pairFloor(s, e)
		switch pairCmp(s, e, k+0.5) {
		case 1:
			k++
		case 0:
			if mode == big.ToNearestAway {
				if !neg {
					k++
				}
			} else if limbsOdd(addFloatLimbs(nh, nl, k)) {
				k++
			}
		}

	default:
		panic("xfloat: unknown rounding mode")
	}

	rh, rl := addFloatLimbs(nh, nl, k)
	if rh == 0 && rl == 0 {
		// Keep the sign of the input on zero results, like math.Trunc.
		return F(math.Copysign(0, float64(xh))), 0
	}
	return rh, rl
}

// pairCmp compares s+e against c, where (s, e) is a TwoSum result and c is
// exactly representable. Because s is s+e rounded, s alone decides unless it
// equals c.
func pairCmp[F constraints.Float](s, e, c F) int {
	if s < c {
		return -1
	} else if s > c {
		return 1
	} else if e < 0 {
		return -1
	} else if e > 0 {
		return 1
	}
	return 0
}

func pairFloor[F constraints.Float](s, e F) F {
	k := F(math.Floor(float64(s)))
	if pairCmp(s, e, k) < 0 {
		k--
	}
	return k
}

func pairCeil[F constraints.Float](s, e F) F {
	k := F(math.Ceil(float64(s)))
	if pairCmp(s, e, k) > 0 {
		k++
	}
	return k
}

func truncF[F constraints.Float](f F) F {
	return F(math.Trunc(float64(f)))
}

// limbsOdd reports whether the integer pair hi+lo is odd. When lo is non-zero,
// hi is at least 2^p and therefore even, so the parity lives in lo.
func limbsOdd[F constraints.Float](hi, lo F) bool {
	if lo != 0 {
		return math.Mod(float64(lo), 2) != 0
	}
	return math.Mod(float64(hi), 2) != 0
}

// Trunc returns the integer value of x, rounded towards zero.
func (x DD) Trunc() DD { return ddOf(roundLimbs(x.hi, x.lo, big.ToZero)) }

// Floor returns the greatest integer value less than or equal to x.
func (x DD) Floor() DD { return ddOf(roundLimbs(x.hi, x.lo, big.ToNegativeInf)) }

// Ceil returns the least integer value greater than or equal to x.
func (x DD) Ceil() DD { return ddOf(roundLimbs(x.hi, x.lo, big.ToPositiveInf)) }

// Round returns the nearest integer, rounding half away from zero.
func (x DD) Round() DD { return ddOf(roundLimbs(x.hi, x.lo, big.ToNearestAway)) }

// RoundToEven returns the nearest integer, rounding ties to even.
func (x DD) RoundToEven() DD { return ddOf(roundLimbs(x.hi, x.lo, big.ToNearestEven)) }

// RoundMode rounds x to an integer using any of big.Float's rounding modes.
func (x DD) RoundMode(mode big.RoundingMode) DD { return ddOf(roundLimbs(x.hi, x.lo, mode)) }

// Rint rounds x to an integer in the current rounding mode. Go programs
// always run with the IEEE default, round to nearest even; use RoundMode
// to pick another.
func (x DD) Rint() DD { return x.RoundMode(big.ToNearestEven) }
