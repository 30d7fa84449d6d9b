package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-xfloat"
)

// ddlimbs applies a single DD operation to decimal operands and shows the
// result alongside its raw limbs. It is handy for checking what the kernel
// does with a particular input without writing a test.

const usage = `DD limb inspector

Usage: ddlimbs <op> <a> [<b>]

Unary ops: parse neg abs sqrt cbrt sqr recip exp expm1 log log1p sin cos tan
           atan asin acos sinh cosh tanh trunc floor ceil round
Binary ops: add sub mul quo hypot pow atan2 mod
Integer op: powint <a> <n>`

type unaryOp func(xfloat.DD) xfloat.DD
type binaryOp func(x, y xfloat.DD) xfloat.DD

var unaryOps = map[string]unaryOp{
	"parse": func(x xfloat.DD) xfloat.DD { return x },
	"neg":   xfloat.DD.Neg,
	"abs":   xfloat.DD.Abs,
	"sqrt":  xfloat.DD.Sqrt,
	"cbrt":  xfloat.DD.Cbrt,
	"sqr":   xfloat.DD.Sqr,
	"recip": xfloat.DD.Recip,
	"exp":   xfloat.DD.Exp,
	"expm1": xfloat.DD.Expm1,
	"log":   xfloat.DD.Log,
	"log1p": xfloat.DD.Log1p,
	"sin":   xfloat.DD.Sin,
	"cos":   xfloat.DD.Cos,
	"tan":   xfloat.DD.Tan,
	"atan":  xfloat.DD.Atan,
	"asin":  xfloat.DD.Asin,
	"acos":  xfloat.DD.Acos,
	"sinh":  xfloat.DD.Sinh,
	"cosh":  xfloat.DD.Cosh,
	"tanh":  xfloat.DD.Tanh,
	"trunc": xfloat.DD.Trunc,
	"floor": xfloat.DD.Floor,
	"ceil":  xfloat.DD.Ceil,
	"round": xfloat.DD.Round,
}

var binaryOps = map[string]binaryOp{
	"add":   xfloat.DD.Add,
	"sub":   xfloat.DD.Sub,
	"mul":   xfloat.DD.Mul,
	"quo":   xfloat.DD.Quo,
	"hypot": xfloat.DD.Hypot,
	"pow":   xfloat.DD.Pow,
	"atan2": xfloat.DD.Atan2,
	"mod":   xfloat.DD.Mod,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		fmt.Println(usage)
		return errors.New("missing args")
	}

	op := args[0]
	a, err := parseOperand(args[1])
	if err != nil {
		return err
	}

	var result xfloat.DD
	if fn, ok := unaryOps[op]; ok {
		result = fn(a)

	} else if fn, ok := binaryOps[op]; ok {
		if len(args) < 3 {
			return errors.Newf("op %q needs two operands", op)
		}
		b, err := parseOperand(args[2])
		if err != nil {
			return err
		}
		result = fn(a, b)

	} else if op == "powint" {
		if len(args) < 3 {
			return errors.New("powint needs an integer exponent")
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Wrap(err, "powint exponent")
		}
		result = a.PowInt(n)

	} else {
		fmt.Println(usage)
		return errors.Newf("unknown op %q", op)
	}

	hi, lo := result.Raw()
	fmt.Printf("result: %s\n", result)
	fmt.Printf("hi:     %x (%v)\n", hi, hi)
	fmt.Printf("lo:     %x (%v)\n", lo, lo)
	fmt.Printf("fma:    %v\n", xfloat.CPUCapabilities().FMA)
	spew.Dump(struct {
		Hi, Lo  float64
		NaN     bool
		Finite  bool
		Normal  bool
		Signbit bool
	}{hi, lo, result.IsNaN(), result.IsFinite(), result.IsNormal(), result.Signbit()})
	return nil
}

func parseOperand(s string) (xfloat.DD, error) {
	v, accurate, err := xfloat.DDFromString(s)
	if err != nil {
		return v, errors.Wrapf(err, "operand %q", s)
	}
	if !accurate {
		fmt.Fprintf(os.Stderr, "note: %q rounded to %s\n", s, v)
	}
	return v, nil
}
