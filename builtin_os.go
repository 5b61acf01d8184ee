// builtin_os.go
//
// The `os` library:
//  1. getcwd() -> string
//  2. listdir(path) -> [string]   (entry names; inaccessible path is an error)
//  3. exists(path) -> boolean
package mussel

import "fmt"

func registerOsBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("getcwd", 0, func(ip *Interpreter, _ []Value) Value {
		cwd, err := ip.FS.Cwd()
		if err != nil {
			fail(DiagRuntime, "getcwd: "+err.Error())
		}
		return Str(cwd)
	})

	ip.RegisterBuiltin("listdir", 1, func(ip *Interpreter, args []Value) Value {
		path := argString("listdir", args, 0)
		names, err := ip.FS.List(path)
		if err != nil {
			fail(DiagRuntime, fmt.Sprintf("listdir: cannot read directory %q: %v", path, err))
		}
		out := make([]Value, len(names))
		for i := range names {
			out[i] = Str(names[i])
		}
		return Arr(out)
	})

	ip.RegisterBuiltin("exists", 1, func(ip *Interpreter, args []Value) Value {
		return Bool(ip.FS.Exists(argString("exists", args, 0)))
	})
}
