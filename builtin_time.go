// builtin_time.go
//
// The `time` library:
//  1. time_ms()  -> integer milliseconds since the Unix epoch
//  2. time_sec() -> float seconds since the Unix epoch
package mussel

func registerTimeBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("time_ms", 0, func(ip *Interpreter, _ []Value) Value {
		return Int(ip.Clock.NowMillis())
	})

	ip.RegisterBuiltin("time_sec", 0, func(ip *Interpreter, _ []Value) Value {
		return Float(ip.Clock.NowSec())
	})
}
