// builtin_core.go
//
// Builtins available without any `include`:
//  1. println(v) -> unit
//  2. input(prompt: string) -> string
package mussel

import "strings"

func registerCoreBuiltins(ip *Interpreter) {
	// println(v)
	// Format v and write it to stdout followed by a newline.
	ip.RegisterBuiltin("println", 1, func(ip *Interpreter, args []Value) Value {
		ip.out.WriteString(FormatValue(args[0]))
		ip.out.WriteByte('\n')
		return Unit
	})

	// input(prompt)
	// Write the prompt without a trailing newline, flush, then read one
	// line from stdin with the terminator stripped.
	ip.RegisterBuiltin("input", 1, func(ip *Interpreter, args []Value) Value {
		prompt := argString("input", args, 0)
		ip.out.WriteString(prompt)
		ip.out.Flush()
		line, err := ip.in.ReadString('\n')
		if err != nil && line == "" {
			fail(DiagRuntime, "input: failed to read from stdin")
		}
		line = strings.TrimRight(line, "\n")
		line = strings.TrimRight(line, "\r")
		return Str(line)
	})
}
