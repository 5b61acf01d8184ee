// builtin_random.go
//
// The `random` library:
//  1. rand(min, max) -> integer, uniform in [min, max] inclusive.
//     Float bounds are rounded to the nearest integer first.
package mussel

import (
	"fmt"
	"math"
)

func registerRandomBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("rand", 2, func(ip *Interpreter, args []Value) Value {
		lo := roundedBound("rand", args, 0)
		hi := roundedBound("rand", args, 1)
		if lo > hi {
			fail(DiagRuntime, fmt.Sprintf("rand: empty range [%d, %d]", lo, hi))
		}
		return Int(ip.Rand.UniformInt(lo, hi))
	})
}

func roundedBound(name string, args []Value, i int) int64 {
	v := argNumeric(name, args, i)
	if v.Tag == VTInt {
		return v.Data.(int64)
	}
	return int64(math.Round(v.Data.(float64)))
}
