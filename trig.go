package xfloat

import (
	"math"
)

// trigReduceLimit is the magnitude up to which the reduction below keeps the
// reduced argument accurate to a DD. Larger arguments fall back to float64.
const trigReduceLimit = 0x1p50

// sinTaylor evaluates sin(t) for |t| <= π/4.
func sinTaylor(t DD) DD {
	if t.IsZero() {
		return t
	}
	t2 := t.Sqr().Neg()
	s, p := t, t
	for i := 0; i < invFactN; i += 2 {
		p = p.Mul(t2)
		term := p.Mul(invFact[i])
		s = s.Add(term)
		if math.Abs(term.hi) <= math.Abs(s.hi)*0x1p-108 {
			break
		}
	}
	return s
}

// cosTaylor evaluates cos(t) for |t| <= π/4.
func cosTaylor(t DD) DD {
	if t.IsZero() {
		return ddOne
	}
	t2 := t.Sqr().Neg()
	p := t2
	c := ddOne.Add(p.Ldexp(-1))
	for i := 1; i < invFactN; i += 2 {
		p = p.Mul(t2)
		term := p.Mul(invFact[i])
		c = c.Add(term)
		if math.Abs(term.hi) <= 0x1p-108 {
			break
		}
	}
	return c
}

// reduceTrig returns t and j such that x = 2πk + jπ/2 + t for some integer
// k, with j in [-2, 2] and |t| <= π/4. |x| must not exceed trigReduceLimit,
// so k fits in a float64 and k*2π is formed exactly from twoPiLimbs.
func reduceTrig(x DD) (t DD, j int) {
	k := math.RoundToEven(x.hi / twoPiLimbs[0])
	a := defaultKernel64.TwoProd(k, twoPiLimbs[0])
	b := defaultKernel64.TwoProd(k, twoPiLimbs[1])
	c := k * twoPiLimbs[2]

	r := DDFromSum(x.hi, -a.hi)
	r = r.Add64(x.lo).Sub64(a.lo).Sub64(b.hi).Sub64(b.lo).Sub64(c)

	// q/4 is a power of two or zero, so each limb product is exact.
	q := math.Floor(r.hi/HalfPi.hi + 0.5)
	qq := q * 0.25
	t = r.Sub64(qq * twoPiLimbs[0]).Sub64(qq * twoPiLimbs[1]).Sub64(qq * twoPiLimbs[2])
	return t, int(q)
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func (x DD) Sin() DD {
	s, _ := x.Sincos()
	return s
}

// Cos returns the cosine of the radian argument x.
func (x DD) Cos() DD {
	_, c := x.Sincos()
	return c
}

// Sincos returns Sin(x), Cos(x).
func (x DD) Sincos() (sin, cos DD) {
	switch {
	case x.IsZero():
		return x, ddOne
	case !x.IsFinite():
		return ddNaN, ddNaN
	case math.Abs(x.hi) > trigReduceLimit:
		sh, ch := math.Sincos(x.hi)
		sl, cl := math.Sincos(x.lo)
		return DDFrom64(sh*cl + ch*sl), DDFrom64(ch*cl - sh*sl)
	case math.Abs(x.hi) <= QtrPi.hi:
		return sinTaylor(x), cosTaylor(x)
	}

	t, j := reduceTrig(x)
	s, c := sinTaylor(t), cosTaylor(t)
	switch j {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case -1:
		return c.Neg(), s
	default:
		return s.Neg(), c.Neg()
	}
}

// Tan returns the tangent of the radian argument x.
func (x DD) Tan() DD {
	if x.IsZero() {
		return x
	}
	s, c := x.Sincos()
	return s.Quo(c)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value. Special cases follow
// math.Atan2.
func (y DD) Atan2(x DD) DD {
	switch {
	case y.IsNaN() || x.IsNaN():
		return ddNaN

	case y.IsZero():
		if x.Sign() > 0 || (x.IsZero() && !x.Signbit()) {
			return y
		}
		return copySignDD(Pi, y)

	case x.IsZero():
		return copySignDD(HalfPi, y)

	case x.IsInf(0) || y.IsInf(0):
		return atan2Special(y, x)
	}

	// Seed from float64, then one Newton step on the unit circle point
	// (x, y)/r using whichever of sin and cos is better conditioned.
	r := x.Hypot(y)
	xx, yy := x.Quo(r), y.Quo(r)
	z := DDFrom64(math.Atan2(y.hi, x.hi))
	sz, cz := z.Sincos()
	if math.Abs(xx.hi) > math.Abs(yy.hi) {
		return z.Add(yy.Sub(sz).Quo(cz))
	}
	return z.Sub(xx.Sub(cz).Quo(sz))
}

// atan2Special handles an infinite operand; every result is a multiple of
// π/4.
func atan2Special(y, x DD) DD {
	switch {
	case x.IsInf(1) && y.IsInf(0):
		return copySignDD(QtrPi, y)
	case x.IsInf(-1) && y.IsInf(0):
		return copySignDD(QtrPi.Mul64(3), y)
	case x.IsInf(1):
		return copySignDD(ddZero, y)
	case x.IsInf(-1):
		return copySignDD(Pi, y)
	default:
		return copySignDD(HalfPi, y)
	}
}

func copySignDD(mag, sign DD) DD {
	if mag.Signbit() != sign.Signbit() {
		return mag.Neg()
	}
	return mag
}

// Atan returns the arctangent, in radians, of x.
func (x DD) Atan() DD {
	if x.IsZero() {
		return x
	}
	return x.Atan2(ddOne)
}

// Asin returns the arcsine, in radians, of x. |x| > 1 gives NaN.
func (x DD) Asin() DD {
	a := x.Abs()
	switch {
	case x.IsNaN() || a.GreaterThan(ddOne):
		return ddNaN
	case x.IsZero():
		return x
	}
	return x.Atan2(oneMinusSqr(x).Sqrt())
}

// Acos returns the arccosine, in radians, of x. |x| > 1 gives NaN.
func (x DD) Acos() DD {
	a := x.Abs()
	if x.IsNaN() || a.GreaterThan(ddOne) {
		return ddNaN
	}
	return oneMinusSqr(x).Sqrt().Atan2(x)
}

// oneMinusSqr returns 1-x² as (1-x)(1+x), which does not cancel near ±1.
func oneMinusSqr(x DD) DD {
	return ddOne.Sub(x).Mul(x.Add64(1))
}
