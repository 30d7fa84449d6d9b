package xfloat

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// References for the transcendental functions, computed at refPrec with
// big.Float. Exp, Log and Pow come from bigfloat; the trig functions use the
// doubling iteration 2-2cos(2t) = s(4-s), s = 2-2cos(t), starting from an
// argument scaled small enough that s ≈ t².

const refPiDigits = "3.141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117067982148086513282306647093844609550582231725359408128481117450284102701938521105559644622948954930381964428810975665933446128475648233786783165271201909145648566923460348610454326648213393607260249141273"

func refPi() *big.Float {
	pi, _, err := big.ParseFloat(refPiDigits, 10, refPrec+64, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return pi
}

func refExp(x *big.Float) *big.Float { return bigfloat.Exp(x) }
func refLog(x *big.Float) *big.Float { return bigfloat.Log(x) }

func refPow(x, y *big.Float) *big.Float { return bigfloat.Pow(x, y) }

// refCos works at refPrec+64 and rounds to refPrec.
func refCos(x *big.Float) *big.Float {
	const prec = refPrec + 64
	const halvings = prec / 2

	t := new(big.Float).SetPrec(prec).Set(x)
	t.SetMantExp(t, -halvings)

	s := new(big.Float).SetPrec(prec).Mul(t, t)
	four := new(big.Float).SetPrec(prec).SetInt64(4)
	tmp := new(big.Float).SetPrec(prec)
	for i := 0; i < halvings; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	// cos = 1 - s/2
	s.SetMantExp(s, -1)
	out := new(big.Float).SetPrec(prec).SetInt64(1)
	out.Sub(out, s)
	return out.SetPrec(refPrec)
}

func refSin(x *big.Float) *big.Float {
	halfPi := refPi()
	halfPi.SetMantExp(halfPi, -1)
	return refCos(new(big.Float).SetPrec(refPrec+64).Sub(x, halfPi))
}
