package xfloat

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

const (
	// Decimals whose adjusted exponent lies outside these bounds are beyond
	// the float64 range, so they are not expanded into a big.Rat.
	decimalMaxAdjusted = 310
	decimalMinAdjusted = -330
)

// AsDecimal returns x exactly as an apd.Decimal. Every DD is a dyadic
// rational n/2^k, which is n*5^k/10^k in decimal, so no rounding occurs.
func (x DD) AsDecimal() *apd.Decimal {
	switch {
	case x.IsNaN():
		return &apd.Decimal{Form: apd.NaN}
	case x.IsInf(0):
		return &apd.Decimal{Form: apd.Infinite, Negative: x.IsInf(-1)}
	case x.IsZero():
		return &apd.Decimal{Negative: x.Signbit()}
	}

	r := x.AsBigRat()
	k := r.Denom().BitLen() - 1
	coeff := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil)
	coeff.Mul(coeff, r.Num())
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), -int32(k))
}

// AsDecimal returns x exactly as an apd.Decimal.
func (x DS) AsDecimal() *apd.Decimal { return x.AsDD().AsDecimal() }

// DDFromDecimal rounds d to the nearest DD. Quiet NaN and infinities map
// to their DD counterparts; a signalling NaN is an error.
func DDFromDecimal(d *apd.Decimal) (out DD, accurate bool, err error) {
	switch d.Form {
	case apd.NaN:
		return ddNaN, false, nil
	case apd.Infinite:
		if d.Negative {
			return ddInf.Neg(), true, nil
		}
		return ddInf, true, nil
	case apd.Finite:
	default:
		return out, false, errors.Newf("xfloat: cannot convert %s form decimal", d.Form)
	}

	if d.IsZero() {
		return DD{hi: math.Copysign(0, decimalSign(d))}, true, nil
	}

	adjusted := d.NumDigits() + int64(d.Exponent)
	if adjusted > decimalMaxAdjusted {
		return DD{hi: math.Inf(int(decimalSign(d)))}, false, nil
	} else if adjusted < decimalMinAdjusted {
		return DD{hi: math.Copysign(0, decimalSign(d))}, false, nil
	}

	var r big.Rat
	coeff := d.Coeff.MathBigInt()
	exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(d.Exponent))), nil)
	if d.Exponent >= 0 {
		r.SetInt(coeff.Mul(coeff, exp))
	} else {
		r.SetFrac(coeff, exp)
	}
	if d.Negative {
		r.Neg(&r)
	}
	out, accurate = DDFromBigRat(&r)
	return out, accurate, nil
}

// DSFromDecimal rounds d to the nearest DS.
func DSFromDecimal(d *apd.Decimal) (out DS, accurate bool, err error) {
	dd, accurate, err := DDFromDecimal(d)
	if err != nil {
		return out, false, err
	}
	out = dd.AsDS()
	return out, accurate && out.AsDD().Equal(dd), nil
}

func decimalSign(d *apd.Decimal) float64 {
	if d.Negative {
		return -1
	}
	return 1
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
