package xfloat

import "math"

// hyperLarge is the magnitude beyond which e**-|x| no longer affects a DD
// result.
const hyperLarge = 40

// Sinh returns the hyperbolic sine of x.
func (x DD) Sinh() DD {
	switch {
	case x.IsNaN():
		return ddNaN
	case x.IsZero():
		return x
	case math.Abs(x.hi) > hyperLarge:
		// exp(|x|)/2 as exp(|x|-ln2) so the result does not overflow early.
		return copySignDD(x.Abs().Sub(Ln2).Exp(), x)
	}
	em := x.Expm1()
	return em.Add(em.Quo(em.Add64(1))).Ldexp(-1)
}

// Cosh returns the hyperbolic cosine of x.
func (x DD) Cosh() DD {
	a := x.Abs()
	switch {
	case x.IsNaN():
		return ddNaN
	case a.hi > hyperLarge:
		return a.Sub(Ln2).Exp()
	}
	e := a.Exp()
	return e.Add(e.Recip()).Ldexp(-1)
}

// Tanh returns the hyperbolic tangent of x.
func (x DD) Tanh() DD {
	switch {
	case x.IsNaN():
		return ddNaN
	case x.IsZero():
		return x
	case math.Abs(x.hi) > hyperLarge:
		return copySignDD(ddOne, x)
	}
	em := x.Abs().Ldexp(1).Expm1()
	return copySignDD(em.Quo(em.Add64(2)), x)
}

// asinhLarge is where x² would overflow, and log(2|x|) is already exact
// enough.
const asinhLarge = 0x1p500

// Asinh returns the inverse hyperbolic sine of x.
func (x DD) Asinh() DD {
	a := x.Abs()
	switch {
	case x.IsNaN() || x.IsZero() || x.IsInf(0):
		return x
	case a.hi > asinhLarge:
		return copySignDD(a.Log().Add(Ln2), x)
	}
	// log1p(|x| + x²/(1 + sqrt(1+x²)))
	x2 := a.Sqr()
	r := a.Add(x2.Quo(x2.Add64(1).Sqrt().Add64(1))).Log1p()
	return copySignDD(r, x)
}

// Acosh returns the inverse hyperbolic cosine of x. x < 1 gives NaN.
func (x DD) Acosh() DD {
	switch {
	case x.IsNaN() || x.LessThan(ddOne):
		return ddNaN
	case x.IsInf(1):
		return x
	case x.hi > asinhLarge:
		return x.Log().Add(Ln2)
	}
	t := x.Sub64(1)
	return t.Add(t.Mul(x.Add64(1)).Sqrt()).Log1p()
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// Special cases are:
//
//	Atanh(1) = +Inf
//	Atanh(±0) = ±0
//	Atanh(-1) = -Inf
//	Atanh(x) = NaN if x < -1 or x > 1
func (x DD) Atanh() DD {
	a := x.Abs()
	switch {
	case x.IsNaN() || a.GreaterThan(ddOne):
		return ddNaN
	case a.Equal(ddOne):
		return copySignDD(ddInf, x)
	case x.IsZero():
		return x
	}
	// 0.5 * log1p(2|x|/(1-|x|))
	r := a.Ldexp(1).Quo(ddOne.Sub(a)).Log1p().Ldexp(-1)
	return copySignDD(r, x)
}
