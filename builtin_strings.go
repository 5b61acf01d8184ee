// builtin_strings.go
//
// The `string` library:
//  1. length(s) -> integer          (Unicode code points)
//  2. concat(a, b) -> string
//  3. split(s, sep) -> [string]     (empty sep is an error)
//  4. reverse(s) -> string          (by code point)
//  5. trim(s) / ltrim(s) / rtrim(s) -> string (Unicode whitespace)
//  6. lowercase(s) / uppercase(s) -> string
package mussel

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func registerStringBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("length", 1, func(_ *Interpreter, args []Value) Value {
		s := argString("length", args, 0)
		return Int(int64(utf8.RuneCountInString(s)))
	})

	ip.RegisterBuiltin("concat", 2, func(_ *Interpreter, args []Value) Value {
		a := argString("concat", args, 0)
		b := argString("concat", args, 1)
		return Str(a + b)
	})

	ip.RegisterBuiltin("split", 2, func(_ *Interpreter, args []Value) Value {
		s := argString("split", args, 0)
		sep := argString("split", args, 1)
		if sep == "" {
			fail(DiagRuntime, "split: separator must not be empty")
		}
		parts := strings.Split(s, sep)
		out := make([]Value, len(parts))
		for i := range parts {
			out[i] = Str(parts[i])
		}
		return Arr(out)
	})

	ip.RegisterBuiltin("reverse", 1, func(_ *Interpreter, args []Value) Value {
		s := argString("reverse", args, 0)
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return Str(string(r))
	})

	ip.RegisterBuiltin("trim", 1, func(_ *Interpreter, args []Value) Value {
		return Str(strings.TrimSpace(argString("trim", args, 0)))
	})

	ip.RegisterBuiltin("ltrim", 1, func(_ *Interpreter, args []Value) Value {
		return Str(strings.TrimLeftFunc(argString("ltrim", args, 0), unicode.IsSpace))
	})

	ip.RegisterBuiltin("rtrim", 1, func(_ *Interpreter, args []Value) Value {
		return Str(strings.TrimRightFunc(argString("rtrim", args, 0), unicode.IsSpace))
	})

	ip.RegisterBuiltin("lowercase", 1, func(_ *Interpreter, args []Value) Value {
		return Str(strings.ToLower(argString("lowercase", args, 0)))
	})

	ip.RegisterBuiltin("uppercase", 1, func(_ *Interpreter, args []Value) Value {
		return Str(strings.ToUpper(argString("uppercase", args, 0)))
	})
}
