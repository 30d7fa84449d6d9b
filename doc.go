/*
Package xfloat provides double-double (DD) and double-single (DS) floating
point numbers: values stored as the unevaluated sum of two ordinary floats,
giving roughly twice the significand of the base type without the cost of
arbitrary precision.

DD and DS are value types; all operations return new values.

Simple example:

	x := DDFromSum(1, 0x1p-60) // too small a step for a float64
	fmt.Println(x.Sub64(1).AsFloat64() == 0x1p-60)
	// Output: true

DD values can be created from a variety of sources:

	DDFromRaw(hi, lo float64) DD
	DDFromSum(a, b float64) DD
	DDFrom64(v float64) DD
	DDFrom32(v float32) DD
	DDFromInt64(v int64) DD
	DDFromUint64(v uint64) DD
	DDFromString(s string) (out DD, accurate bool, err error)
	DDFromBigFloat(f *big.Float) (out DD, accurate bool)
	DDFromBigRat(r *big.Rat) (out DD, accurate bool)
	DDFromDecimal(d *apd.Decimal) (out DD, accurate bool, err error)

The arithmetic is built on error-free transformations (TwoSum, FastTwoSum,
Split, TwoProd). TwoProd uses a fused multiply-add when the CPU has one;
setting the XFLOAT_NO_FMA environment variable selects Dekker's split
product instead. A Kernel64 makes that choice explicitly.

Results are faithfully rounded rather than correctly rounded. NaN and
infinities propagate as they do for float64; whenever hi is NaN or infinite,
lo is 0.

DD and DS support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package xfloat
