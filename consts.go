package xfloat

import (
	"math"
	"math/big"
)

const (
	// ddConstPrec is the precision the constant strings below are parsed at,
	// well beyond the 106 bits a DD can hold.
	ddConstPrec = 256

	// exp(x) overflows above expOverflow and flushes to zero below
	// expUnderflow.
	expOverflow  = 709.782712893384
	expUnderflow = -745.2

	// invFactN is the number of 1/n! terms kept for the Taylor series.
	invFactN = 30
)

const (
	piDigits    = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"
	eDigits     = "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759457138217852516642742746"
	ln2Digits   = "0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687542"
	ln10Digits  = "2.30258509299404568401799145468436420760110148862877297603332790096757260967735248023599720508959829834196"
	log2eDigits = "1.44269504088896340735992468100189213742664595415298593413544940693110921918118507988552662289350634449699"
)

var (
	// Pi is the double-double nearest to π.
	Pi = mustDDConst(piDigits)

	// E is the double-double nearest to e.
	E = mustDDConst(eDigits)

	Ln2   = mustDDConst(ln2Digits)
	Ln10  = mustDDConst(ln10Digits)
	Log2E = mustDDConst(log2eDigits)

	// The multiples of π are exact scalings of Pi by powers of two.
	TwoPi  = Pi.Ldexp(1)
	HalfPi = Pi.Ldexp(-1)
	QtrPi  = Pi.Ldexp(-2)

	// MaxDD is the largest finite DD: MaxFloat64 plus half an ulp less a
	// bit, so the pair still rounds to MaxFloat64.
	MaxDD = DD{hi: math.MaxFloat64, lo: 0x1p970 - 0x1p917}

	// SmallestNonzeroDD is the smallest positive DD, a single subnormal.
	SmallestNonzeroDD = DD{hi: math.SmallestNonzeroFloat64}

	// EpsilonDD is 2^-104, the gap between 1 and the next DD with a
	// normalised lo limb, taken as the unit roundoff of the type.
	EpsilonDD = DD{hi: 0x1p-104}

	ddZero = DD{}
	ddOne  = DD{hi: 1}
	ddNaN  = DD{hi: math.NaN()}
	ddInf  = DD{hi: math.Inf(1)}

	// twoPiLimbs holds 2π to about 160 bits as three float64s, for argument
	// reduction where a DD 2π is too short.
	twoPiLimbs = mustLimbs3(piDigits, 2)

	// invFact[i] holds 1/(i+3)!; the series below start at the cubic term.
	invFact [invFactN]DD
)

func init() {
	f := ddOne
	for i := 1; i < invFactN+3; i++ {
		f = f.Mul64(float64(i))
		if i >= 3 {
			invFact[i-3] = f.Recip()
		}
	}
}

func mustDDConst(s string) DD {
	f, _, err := big.ParseFloat(s, 10, ddConstPrec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	out, _ := DDFromBigFloat(f)
	return out
}

// mustLimbs3 returns s*mul as three non-overlapping float64 limbs.
func mustLimbs3(s string, mul float64) (out [3]float64) {
	f, _, err := big.ParseFloat(s, 10, ddConstPrec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	f.Mul(f, big.NewFloat(mul))
	for i := range out {
		out[i], _ = f.Float64()
		f.Sub(f, new(big.Float).SetFloat64(out[i]))
	}
	return out
}
