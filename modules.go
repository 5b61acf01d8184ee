// modules.go — the bundled library set behind `include`.
//
// Library names are a closed, known set; `include NAME` merges that
// library's builtins into the active registry. Including a library twice is
// a no-op. There are no import paths and no namespaces.
package mussel

import "fmt"

var libraries = map[string]func(*Interpreter){
	"random": registerRandomBuiltins,
	"string": registerStringBuiltins,
	"time":   registerTimeBuiltins,
	"math":   registerMathBuiltins,
	"os":     registerOsBuiltins,
}

func (ip *Interpreter) include(name string, at Pos) {
	if ip.included[name] {
		return
	}
	register, ok := libraries[name]
	if !ok {
		failAt(DiagImport, at, fmt.Sprintf("unknown library %q", name))
	}
	register(ip)
	ip.included[name] = true
}

// ───────────────────────── builtin argument helpers ─────────────────────

func argString(name string, args []Value, i int) string {
	if args[i].Tag != VTString {
		fail(DiagType, fmt.Sprintf("%s: argument %d must be a string, got %s", name, i+1, args[i].Tag))
	}
	return args[i].Data.(string)
}

func argNumeric(name string, args []Value, i int) Value {
	if !isNumeric(args[i]) {
		fail(DiagType, fmt.Sprintf("%s: argument %d must be numeric, got %s", name, i+1, args[i].Tag))
	}
	return args[i]
}
