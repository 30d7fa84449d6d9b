package xfloat

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSyntax is marked on every error returned for malformed text.
var ErrSyntax = errors.New("xfloat: invalid syntax")

const (
	// maxExactPrec covers the widest possible gap between the top bit of
	// MaxFloat64 and the bottom bit of the smallest subnormal. Text is parsed
	// at this precision so a DD with a wide gap between its limbs survives.
	maxExactPrec = 1024 + 1074 + 1

	// stringDigits is the number of significant digits String prints, the
	// full precision of a DD whose limbs are adjacent.
	stringDigits = 34

	// maxShortestDigits bounds the search in MarshalText; the exact decimal
	// expansion of any DD is shorter.
	maxShortestDigits = 1100
)

// DDFromString parses a decimal or hexadecimal floating point number, as
// accepted by big.ParseFloat with base 0, or one of "NaN", "Inf", "+Inf",
// "-Inf" (case-insensitive). accurate is false if the result is not exactly
// the number written.
func DDFromString(s string) (out DD, accurate bool, err error) {
	f, special, err := parseFloatString(s)
	if err != nil {
		return out, false, err
	}
	if special != nil {
		return *special, false, nil
	}
	out, accurate = DDFromBigFloat(f)
	return out, accurate && f.Acc() == big.Exact, nil
}

// MustDDFromString is DDFromString for constants; it panics on error.
func MustDDFromString(s string) DD {
	out, _, err := DDFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// DSFromString is DDFromString for double-singles.
func DSFromString(s string) (out DS, accurate bool, err error) {
	f, special, err := parseFloatString(s)
	if err != nil {
		return out, false, err
	}
	if special != nil {
		return special.AsDS(), false, nil
	}
	out, accurate = DSFromBigFloat(f)
	return out, accurate && f.Acc() == big.Exact, nil
}

func parseFloatString(s string) (f *big.Float, special *DD, err error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "nan":
		return nil, &ddNaN, nil
	case "inf", "+inf", "infinity", "+infinity":
		return nil, &ddInf, nil
	case "-inf", "-infinity":
		neg := ddInf.Neg()
		return nil, &neg, nil
	}

	f, _, err = big.ParseFloat(t, 0, maxExactPrec, big.ToNearestEven)
	if err != nil {
		return nil, nil, errors.Mark(errors.Wrapf(err, "xfloat: string %q", s), ErrSyntax)
	}
	return f, nil, nil
}

// DDFromBigFloat rounds f to the nearest DD: hi is f rounded to float64 and
// lo is the remainder rounded to float64. accurate is false if that loses
// bits, or if f is outside the float64 range.
func DDFromBigFloat(f *big.Float) (out DD, accurate bool) {
	if f.IsInf() {
		return DD{hi: math.Inf(f.Sign())}, true
	}
	hi, acc := f.Float64()
	if acc == big.Exact {
		return DD{hi: hi}, true
	}
	if math.IsInf(hi, 0) {
		return DD{hi: hi}, false
	}

	rest := new(big.Float).SetPrec(f.Prec() + 64)
	rest.Sub(f, big.NewFloat(hi))
	lo, acc := rest.Float64()
	return ddOf(canon(FastTwoSum(hi, lo))), acc == big.Exact
}

// DSFromBigFloat is DDFromBigFloat for double-singles.
func DSFromBigFloat(f *big.Float) (out DS, accurate bool) {
	if f.IsInf() {
		return DS{hi: float32(math.Inf(f.Sign()))}, true
	}
	hi, acc := f.Float32()
	if acc == big.Exact {
		return DS{hi: hi}, true
	}
	if nonFinite(hi) {
		return DS{hi: hi}, false
	}

	rest := new(big.Float).SetPrec(f.Prec() + 64)
	rest.Sub(f, big.NewFloat(float64(hi)))
	lo, acc := rest.Float32()
	return dsOf(canon(FastTwoSum(hi, lo))), acc == big.Exact
}

// DDFromBigRat rounds r to the nearest DD.
func DDFromBigRat(r *big.Rat) (out DD, accurate bool) {
	f := new(big.Float).SetPrec(maxExactPrec).SetRat(r)
	out, accurate = DDFromBigFloat(f)
	return out, accurate && f.Acc() == big.Exact
}

// limbsPrec returns the precision needed to hold hi+lo exactly. A raw pair
// whose sum carries into a new top bit needs one bit beyond the span.
func limbsPrec(hi, lo float64) uint {
	if lo == 0 || hi == 0 {
		return 53
	}
	_, he := math.Frexp(hi)
	_, le := math.Frexp(lo)
	if he < le {
		he, le = le, he
	}
	return uint(he-le) + 54
}

// IntoBigFloat sets b to x exactly, raising b's precision if it is too small
// to hold x. It panics with a big.ErrNaN if x is NaN.
func (x DD) IntoBigFloat(b *big.Float) {
	if x.IsNaN() {
		panic(big.ErrNaN{})
	}
	if x.IsInf(0) {
		b.SetInf(x.IsInf(-1))
		return
	}
	if prec := limbsPrec(x.hi, x.lo); b.Prec() < prec {
		b.SetPrec(prec)
	}
	b.SetFloat64(x.hi)
	if x.lo != 0 {
		b.Add(b, big.NewFloat(x.lo))
	}
}

// AsBigFloat returns x exactly as a big.Float. It panics with a big.ErrNaN if
// x is NaN.
func (x DD) AsBigFloat() *big.Float {
	b := new(big.Float)
	x.IntoBigFloat(b)
	return b
}

// AsBigRat returns x exactly as a big.Rat, or nil if x is not finite.
func (x DD) AsBigRat() *big.Rat {
	if !x.IsFinite() {
		return nil
	}
	r, _ := x.AsBigFloat().Rat(nil)
	return r
}

func (x DS) AsBigFloat() *big.Float { return x.AsDD().AsBigFloat() }
func (x DS) AsBigRat() *big.Rat     { return x.AsDD().AsBigRat() }

// String returns x with enough significant digits to identify it, in %g
// style.
func (x DD) String() string {
	return x.Text('g', stringDigits)
}

// Text converts x to a string according to the given format and precision,
// as big.Float.Text does. NaN is "NaN".
func (x DD) Text(format byte, prec int) string {
	if x.IsNaN() {
		return "NaN"
	}
	return x.AsBigFloat().Text(format, prec)
}

// Format implements fmt.Formatter. It accepts the formats big.Float does;
// %v and %s without a precision print String.
func (x DD) Format(s fmt.State, c rune) {
	formatLimbs(s, c, x, x.String)
}

func (x DS) String() string {
	return x.Text('g', 16)
}

func (x DS) Text(format byte, prec int) string {
	return x.AsDD().Text(format, prec)
}

func (x DS) Format(s fmt.State, c rune) {
	formatLimbs(s, c, x.AsDD(), x.String)
}

func formatLimbs(s fmt.State, c rune, x DD, str func() string) {
	_, hasPrec := s.Precision()
	switch {
	case (c == 'v' || c == 's') && !hasPrec:
		fmt.Fprintf(s, fmt.FormatString(s, 's'), str())
	case c == 'x' && !hasPrec && x.IsFinite():
		// big.Float defaults to 6 digits here; print the shortest exact form
		// instead, as fmt does for float64.
		fmt.Fprintf(s, fmt.FormatString(s, 's'), x.AsBigFloat().Text('x', -1))
	case x.IsNaN():
		// big.Float has no NaN. Pad it to the width, ignoring any precision.
		out := "NaN"
		if w, ok := s.Width(); ok && w > len(out) {
			pad := strings.Repeat(" ", w-len(out))
			if s.Flag('-') {
				out += pad
			} else {
				out = pad + out
			}
		}
		io.WriteString(s, out)
	default:
		x.AsBigFloat().Format(s, c)
	}
}

// shortestText returns the shortest %g rendering of f that parses back to
// the input, as decided by roundTrips.
func shortestText(f *big.Float, roundTrips func(s string) bool) string {
	for digits := 1; digits < maxShortestDigits; digits++ {
		s := f.Text('g', digits)
		if roundTrips(s) {
			return s
		}
	}
	return f.Text('g', maxShortestDigits)
}

// MarshalText emits the shortest decimal string that parses back to exactly
// x.
func (x DD) MarshalText() ([]byte, error) {
	if !x.IsFinite() {
		return []byte(x.Text('g', 1)), nil
	}
	s := shortestText(x.AsBigFloat(), func(s string) bool {
		v, _, err := DDFromString(s)
		return err == nil && v.Equal(x) && v.Signbit() == x.Signbit()
	})
	return []byte(s), nil
}

func (x *DD) UnmarshalText(bts []byte) (err error) {
	v, _, err := DDFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x DD) MarshalJSON() ([]byte, error) {
	txt, err := x.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + string(txt) + `"`), nil
}

func (x *DD) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return x.UnmarshalText(bts)
}

func (x DS) MarshalText() ([]byte, error) {
	if !x.IsFinite() {
		return []byte(x.Text('g', 1)), nil
	}
	s := shortestText(x.AsBigFloat(), func(s string) bool {
		v, _, err := DSFromString(s)
		return err == nil && v.Equal(x) && v.Signbit() == x.Signbit()
	})
	return []byte(s), nil
}

func (x *DS) UnmarshalText(bts []byte) (err error) {
	v, _, err := DSFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x DS) MarshalJSON() ([]byte, error) {
	txt, err := x.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + string(txt) + `"`), nil
}

func (x *DS) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return x.UnmarshalText(bts)
}

// unquoteJSON accepts either a JSON string or a bare JSON number.
func unquoteJSON(bts []byte) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, errors.Mark(errors.Newf("xfloat: invalid JSON %q", string(bts)), ErrSyntax)
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
