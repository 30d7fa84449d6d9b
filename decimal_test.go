package xfloat

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/shabbyrobe/golib/assert"
)

func decs(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDDAsDecimal(t *testing.T) {
	for _, tc := range []struct {
		in  DD
		out string
	}{
		{dd64(1), "1"},
		{dd64(-0.5), "-0.5"},
		{dd64(0.1), "0.1000000000000000055511151231257827021181583404541015625"},
		{DDFromSum(1, 0x1p-60), "1.000000000000000000867361737988403547205962240695953369140625"},
		{dd64(0x1p70), "1180591620717411303424"},
		{dd64(math.Inf(1)), "Infinity"},
		{dd64(math.Inf(-1)), "-Infinity"},
		{dd64(math.NaN()), "NaN"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			d := tc.in.AsDecimal()
			want := decs(tc.out)
			if tc.in.IsNaN() {
				tt.MustEqual(apd.NaN, d.Form)
				return
			}
			tt.MustEqual(0, d.Cmp(want), "%s != %s", d, want)
		})
	}
}

func TestDDAsDecimalNegativeZero(t *testing.T) {
	tt := assert.WrapTB(t)
	d := dd64(math.Copysign(0, -1)).AsDecimal()
	tt.MustAssert(d.IsZero() && d.Negative)
}

func TestDDDecimalRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	src := &rando{rng: globalRNG}
	for i := 0; i < 500; i++ {
		x := src.DD(-1000, 1000)
		back, acc, err := DDFromDecimal(x.AsDecimal())
		tt.MustOK(err)
		tt.MustAssert(acc)
		tt.MustAssert(back.Equal(x), "%v != %v", back, x)
	}
}

func TestDDFromDecimal(t *testing.T) {
	for _, tc := range []struct {
		in       string
		out      DD
		accurate bool
	}{
		{"1", dd64(1), true},
		{"-1.25", dd64(-1.25), true},
		{"0.1", dds("0.1"), false},
		{"1E+2", dd64(100), true},
		{"12345678901234567890123456789", dds("12345678901234567890123456789"), true},
		{"1E+400", dd64(math.Inf(1)), false},
		{"-1E+400", dd64(math.Inf(-1)), false},
		{"1E-400", dd64(0), false},
		{"Infinity", dd64(math.Inf(1)), true},
		{"-Infinity", dd64(math.Inf(-1)), true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc, err := DDFromDecimal(decs(tc.in))
			tt.MustOK(err)
			tt.MustEqual(tc.out, v)
			tt.MustEqual(tc.accurate, acc)
		})
	}
}

func TestDDFromDecimalSpecials(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc, err := DDFromDecimal(&apd.Decimal{Form: apd.NaN})
	tt.MustOK(err)
	tt.MustAssert(v.IsNaN() && !acc)

	_, _, err = DDFromDecimal(&apd.Decimal{Form: apd.NaNSignaling})
	tt.MustAssert(err != nil)

	v, _, err = DDFromDecimal(decs("-0"))
	tt.MustOK(err)
	tt.MustAssert(v.IsZero() && v.Signbit())

	v, _, err = DDFromDecimal(decs("-1E-400"))
	tt.MustOK(err)
	tt.MustAssert(v.IsZero() && v.Signbit())
}

func TestDSDecimal(t *testing.T) {
	for _, tc := range []struct {
		in       string
		accurate bool
	}{
		{"1.5", true},
		{"0.1", false},
		{"16777217", true}, // 2^24 + 1 needs both limbs
		{"1.0000000000000000000001", false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc, err := DSFromDecimal(decs(tc.in))
			tt.MustOK(err)
			tt.MustEqual(tc.accurate, acc)

			back, acc, err := DSFromDecimal(v.AsDecimal())
			tt.MustOK(err)
			tt.MustAssert(acc)
			tt.MustEqual(v, back)
		})
	}

	tt := assert.WrapTB(t)
	_, _, err := DSFromDecimal(&apd.Decimal{Form: apd.NaNSignaling})
	tt.MustAssert(err != nil, fmt.Sprint(err))
}
