// builtin_math.go
//
// The `math` library:
//  1. abs(x)    -> same numeric kind as x
//  2. sqrt(x)   -> float; negative x is an error (no NaN)
//  3. pow(b, e) -> float
package mussel

import "math"

func registerMathBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("abs", 1, func(_ *Interpreter, args []Value) Value {
		v := argNumeric("abs", args, 0)
		if v.Tag == VTInt {
			n := v.Data.(int64)
			if n < 0 {
				n = -n
			}
			return Int(n)
		}
		return Float(math.Abs(v.Data.(float64)))
	})

	ip.RegisterBuiltin("sqrt", 1, func(_ *Interpreter, args []Value) Value {
		x := asFloat(argNumeric("sqrt", args, 0))
		if x < 0 {
			fail(DiagRuntime, "sqrt: negative argument")
		}
		return Float(math.Sqrt(x))
	})

	ip.RegisterBuiltin("pow", 2, func(_ *Interpreter, args []Value) Value {
		b := asFloat(argNumeric("pow", args, 0))
		e := asFloat(argNumeric("pow", args, 1))
		return Float(math.Pow(b, e))
	})
}
