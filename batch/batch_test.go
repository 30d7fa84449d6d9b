package batch

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/shabbyrobe/go-xfloat"
	"github.com/shabbyrobe/golib/assert"
)

var ddEqual = cmp.Comparer(func(a, b xfloat.DD) bool {
	return a.Equal(b) || (a.IsNaN() && b.IsNaN())
})

func seq(n int, fn func(i int) xfloat.DD) []xfloat.DD {
	out := make([]xfloat.DD, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

func TestApply1(t *testing.T) {
	tt := assert.WrapTB(t)
	src := seq(1000, func(i int) xfloat.DD { return xfloat.DDFrom64(float64(i)) })
	want := seq(1000, func(i int) xfloat.DD { return src[i].Sqrt() })

	for _, opts := range []Options{{}, {Workers: 1, ChunkSize: 7}, {Workers: 8, ChunkSize: 64}} {
		dst := make([]xfloat.DD, len(src))
		tt.MustOK(Apply1(context.Background(), opts, dst, src, xfloat.DD.Sqrt))
		if diff := cmp.Diff(want, dst, ddEqual); diff != "" {
			t.Fatalf("%+v: (-want +got)\n%s", opts, diff)
		}
	}
}

func TestApply2(t *testing.T) {
	tt := assert.WrapTB(t)
	a := seq(300, func(i int) xfloat.DD { return xfloat.DDFrom64(float64(i + 1)) })
	b := seq(300, func(i int) xfloat.DD { return xfloat.DDFrom64(3) })
	want := seq(300, func(i int) xfloat.DD { return a[i].Quo(b[i]) })

	dst := make([]xfloat.DD, len(a))
	tt.MustOK(Apply2(context.Background(), Options{Workers: 3, ChunkSize: 16}, dst, a, b, xfloat.DD.Quo))
	if diff := cmp.Diff(want, dst, ddEqual); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
}

func TestLengthMismatch(t *testing.T) {
	tt := assert.WrapTB(t)
	ctx := context.Background()
	three, four := make([]xfloat.DD, 3), make([]xfloat.DD, 4)

	err := Apply1(ctx, Options{}, three, four, xfloat.DD.Neg)
	tt.MustAssert(errors.Is(err, ErrLengthMismatch), "%v", err)

	err = Apply2(ctx, Options{}, three, three, four, xfloat.DD.Add)
	tt.MustAssert(errors.Is(err, ErrLengthMismatch), "%v", err)

	_, err = Dot(ctx, Options{}, three, four)
	tt.MustAssert(errors.Is(err, ErrLengthMismatch), "%v", err)
}

func TestSumDeterministic(t *testing.T) {
	tt := assert.WrapTB(t)
	xs := seq(10000, func(i int) xfloat.DD {
		return xfloat.DDFrom64(1).Quo(xfloat.DDFrom64(float64(i + 1)))
	})

	var first xfloat.DD
	for i, workers := range []int{1, 2, 5, 32} {
		s, err := Sum(context.Background(), Options{Workers: workers, ChunkSize: 100}, xs)
		tt.MustOK(err)
		if i == 0 {
			first = s
		}
		tt.MustEqual(first, s, "workers=%d", workers)
	}

	// The harmonic number H(10000) to 34 digits.
	want := xfloat.MustDDFromString("9.787606036044382264178477904851605")
	diff := first.Sub(want).Abs()
	tt.MustAssert(diff.LessThan(xfloat.DDFrom64(1e-26)), "%v", first)
}

func TestDot(t *testing.T) {
	tt := assert.WrapTB(t)
	a := seq(5000, func(i int) xfloat.DD { return xfloat.DDFrom64(float64(i)) })
	b := seq(5000, func(i int) xfloat.DD { return xfloat.DDFrom64(2) })

	for _, workers := range []int{1, 4} {
		d, err := Dot(context.Background(), Options{Workers: workers, ChunkSize: 333}, a, b)
		tt.MustOK(err)
		tt.MustEqual(xfloat.DDFrom64(5000*4999), d)
	}
}

func TestEmpty(t *testing.T) {
	tt := assert.WrapTB(t)
	s, err := Sum(context.Background(), Options{}, nil)
	tt.MustOK(err)
	tt.MustAssert(s.IsZero())
	tt.MustOK(Apply1(context.Background(), Options{}, nil, nil, xfloat.DD.Neg))
}

func TestCancelled(t *testing.T) {
	tt := assert.WrapTB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	xs := seq(100, func(i int) xfloat.DD { return xfloat.DDFrom64(1) })
	_, err := Sum(ctx, Options{ChunkSize: 10}, xs)
	tt.MustAssert(errors.Is(err, context.Canceled), "%v", err)

	err = Apply1(ctx, Options{}, make([]xfloat.DD, len(xs)), xs, xfloat.DD.Neg)
	tt.MustAssert(errors.Is(err, context.Canceled), "%v", err)
}
