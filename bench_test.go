package xfloat

import (
	"math"
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBoolResult     bool
	BenchDDResult       DD
	BenchDSResult       DS
	BenchFloatResult    float64
	BenchStringResult   string

	BenchFloat1, BenchFloat2 float64 = 1.2093749018, 18927.348917

	BenchDD1 = DDFromSum(1.2093749018, 0x1p-60)
	BenchDD2 = DDFromSum(18927.348917, -0x1p-45)
)

func BenchmarkFloat64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 + BenchFloat2
	}
}

func BenchmarkFloat64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 * BenchFloat2
	}
}

func BenchmarkFloat64Quo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 / BenchFloat2
	}
}

func BenchmarkDDAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Add(BenchDD2)
	}
}

func BenchmarkDDMul(b *testing.B) {
	for _, bc := range []struct {
		name string
		k    Kernel64
	}{
		{"fma", NewKernel64(Float64Ops{UseFMA: true})},
		{"split", NewKernel64(Float64Ops{UseFMA: false})},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchDDResult = bc.k.Mul(BenchDD1, BenchDD2)
			}
		})
	}
}

func BenchmarkDDQuo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Quo(BenchDD2)
	}
}

func BenchmarkDDSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD2.Sqrt()
	}
}

func BenchmarkDDCmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchDD1.LessThan(BenchDD2)
	}
}

func BenchmarkDDExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Exp()
	}
}

func BenchmarkDDLog(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD2.Log()
	}
}

func BenchmarkDDSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = BenchDD1.Sin()
	}
}

func BenchmarkDDString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchDD1.String()
	}
}

func BenchmarkDSMul(b *testing.B) {
	x, y := DSFrom64(BenchFloat1), DSFrom64(BenchFloat2)
	for i := 0; i < b.N; i++ {
		BenchDSResult = x.Mul(y)
	}
}

func BenchmarkBigFloatMul(b *testing.B) {
	x := new(big.Float).SetPrec(106).SetFloat64(BenchFloat1)
	y := new(big.Float).SetPrec(106).SetFloat64(BenchFloat2)
	for i := 0; i < b.N; i++ {
		var z big.Float
		z.SetPrec(106)
		BenchBigFloatResult = z.Mul(x, y)
	}
}

func BenchmarkBigFloatQuo(b *testing.B) {
	x := new(big.Float).SetPrec(106).SetFloat64(BenchFloat1)
	y := new(big.Float).SetPrec(106).SetFloat64(BenchFloat2)
	for i := 0; i < b.N; i++ {
		var z big.Float
		z.SetPrec(106)
		BenchBigFloatResult = z.Quo(x, y)
	}
}

func BenchmarkMathExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = math.Exp(BenchFloat1)
	}
}
