package xfloat

import "math"

// The special functions below are evaluated in float64 and widened. They
// are accurate to float64, not to the full DD precision.

// Gamma returns the Gamma function of x, to float64 accuracy.
func (x DD) Gamma() DD { return DDFrom64(math.Gamma(x.AsFloat64())) }

// Lgamma returns the natural logarithm and sign (-1 or +1) of Gamma(x), to
// float64 accuracy.
func (x DD) Lgamma() (lgamma DD, sign int) {
	l, s := math.Lgamma(x.AsFloat64())
	return DDFrom64(l), s
}

// Erf returns the error function of x, to float64 accuracy.
func (x DD) Erf() DD { return DDFrom64(math.Erf(x.AsFloat64())) }

// Erfc returns the complementary error function of x, to float64 accuracy.
func (x DD) Erfc() DD { return DDFrom64(math.Erfc(x.AsFloat64())) }
