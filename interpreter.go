// interpreter.go — public surface of the Mussel runtime.
//
// This file defines the runtime value model (Value, Fun), lexical
// environments (Env), and the Interpreter with its canonical entry points:
//
//   - EvalSource(src)           — run a program in a fresh child of Global.
//   - EvalPersistentSource(src) — run in Global itself (REPL-style).
//   - EvalProgram(ast, env)     — run a pre-parsed program in a given env.
//
// All Eval* methods return (Value, error); failures are *Error diagnostics.
// The tree-walking machinery lives in interpreter_exec.go and
// interpreter_ops.go; builtins are registered per domain in builtin_*.go.
//
// SCOPING & SNAPSHOT SEMANTICS
// ----------------------------
// An Env frame is an append-only log of bindings plus a parent link. `let`
// appends (or, when provably unobserved, updates in place); nothing ever
// removes an entry. A Function captures its defining frame together with the
// log length at definition time, and every child frame records the parent's
// log length at creation. A lookup through a captured view only sees entries
// below the recorded length, so rebinding a name after a closure was defined
// can never change what the closure sees.
package mussel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Version of the interpreter, reported by the driver.
const Version = "0.3.0"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTString ValueTag = iota // string
	VTInt                    // int64
	VTFloat                  // float64
	VTBool                   // bool
	VTArray                  // []Value
	VTFun                    // *Fun
	VTUnit                   // no payload; result of value-less statements
)

func (t ValueTag) String() string {
	switch t {
	case VTString:
		return "string"
	case VTInt:
		return "integer"
	case VTFloat:
		return "float"
	case VTBool:
		return "boolean"
	case VTArray:
		return "array"
	case VTFun:
		return "function"
	default:
		return "unit"
	}
}

// Value is the universal runtime carrier. The tag determines which Go type
// Data holds (see ValueTag). Values are immutable once constructed.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Unit is the singleton result of statements that produce no value.
var Unit = Value{Tag: VTUnit}

// Primitive constructors.
func Str(s string) Value    { return Value{Tag: VTString, Data: s} }
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Arr(xs []Value) Value  { return Value{Tag: VTArray, Data: xs} }

// String renders a short debug representation; user-facing formatting is
// FormatValue in printer.go.
func (v Value) String() string {
	switch v.Tag {
	case VTString:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTArray:
		return fmt.Sprintf("<array len=%d>", len(v.Data.([]Value)))
	case VTFun:
		return "<fn>"
	default:
		return "()"
	}
}

// Fun is a user-defined function or closure. Equality between Function
// values is identity (*Fun pointer). Env and Snap together form the captured
// view of the defining environment.
type Fun struct {
	Name   string // "" for anonymous closures
	Params []string
	Body   []Expr
	Env    *Env
	Snap   int
}

// FunVal wraps *Fun into a Value.
func FunVal(f *Fun) Value { return Value{Tag: VTFun, Data: f} }

// binding is one entry in an Env's append-only log.
type binding struct {
	name string
	val  Value
}

// Env is a lexical frame: an append-only binding log with a parent link.
// parentSnap bounds which parent entries are visible from this frame.
type Env struct {
	parent     *Env
	parentSnap int
	entries    []binding
	index      map[string]int
	snapMax    int // highest log length captured by a Function
}

// NewEnv creates a child frame seeing everything currently in parent.
func NewEnv(parent *Env) *Env {
	e := &Env{parent: parent, index: make(map[string]int)}
	if parent != nil {
		e.parentSnap = len(parent.entries)
	}
	return e
}

// newEnvCapped creates a child frame whose view of parent is fixed at snap
// entries. Function calls use this with the callee's captured snapshot.
func newEnvCapped(parent *Env, snap int) *Env {
	return &Env{parent: parent, parentSnap: snap, index: make(map[string]int)}
}

// Define binds name to v in this frame. When the current entry for name is
// not covered by any snapshot the slot is updated in place; otherwise a new
// entry is appended so captured views stay intact.
func (e *Env) Define(name string, v Value) {
	if idx, ok := e.index[name]; ok && idx >= e.snapMax {
		e.entries[idx].val = v
		return
	}
	e.entries = append(e.entries, binding{name: name, val: v})
	e.index[name] = len(e.entries) - 1
}

// capture marks the current log length as observed by a snapshot and
// returns it.
func (e *Env) capture() int {
	if len(e.entries) > e.snapMax {
		e.snapMax = len(e.entries)
	}
	return len(e.entries)
}

// defineFun binds a self-visible definition: the name is entered first so
// the snapshot taken by mk includes it, then the produced value is installed
// into the reserved slot. Recursive functions resolve themselves this way.
func (e *Env) defineFun(name string, mk func(snap int) Value) Value {
	e.Define(name, Unit)
	idx := e.index[name]
	v := mk(e.capture())
	e.entries[idx].val = v
	return v
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name string) (Value, bool) {
	if idx, ok := e.index[name]; ok {
		return e.entries[idx].val, true
	}
	if e.parent != nil {
		return e.parent.getCapped(name, e.parentSnap)
	}
	return Value{}, false
}

// getCapped resolves name considering only the first n entries of this
// frame, then the parent view recorded at this frame's creation.
func (e *Env) getCapped(name string, n int) (Value, bool) {
	if idx, ok := e.index[name]; ok {
		if idx < n {
			return e.entries[idx].val, true
		}
		// The index points at the latest entry; an older shadowed one may
		// still be inside the capped view.
		for i := n - 1; i >= 0; i-- {
			if e.entries[i].name == name {
				return e.entries[i].val, true
			}
		}
	}
	if e.parent != nil {
		return e.parent.getCapped(name, e.parentSnap)
	}
	return Value{}, false
}

// Builtin is a native callable registered by name, possibly gated by
// `include`. Arity is fixed; argument kinds are checked by the
// implementation itself.
type Builtin struct {
	Name  string
	Arity int
	Impl  func(ip *Interpreter, args []Value) Value
}

// Interpreter evaluates Mussel programs. Global holds top-level bindings;
// the builtin registry starts with the core set (println, input) and grows
// through `include`. The collaborator fields (Clock, Rand, FS) and the
// stdio streams are swappable, which is how tests observe side effects.
type Interpreter struct {
	Global *Env

	Clock Clock
	Rand  RNG
	FS    Filesystem

	builtins map[string]*Builtin
	included map[string]bool

	out   *bufio.Writer
	in    *bufio.Reader
	depth int
}

// NewInterpreter constructs a ready-to-use engine wired to the process
// stdio and the system collaborators. The core builtins are available
// without any `include`.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Global:   NewEnv(nil),
		Clock:    systemClock{},
		Rand:     newSystemRNG(),
		FS:       osFS{},
		builtins: map[string]*Builtin{},
		included: map[string]bool{},
		out:      bufio.NewWriter(os.Stdout),
		in:       bufio.NewReader(os.Stdin),
	}
	registerCoreBuiltins(ip)
	return ip
}

// SetStdio redirects the interpreter's stdin/stdout, primarily for tests
// and embedding.
func (ip *Interpreter) SetStdio(in io.Reader, out io.Writer) {
	ip.in = bufio.NewReader(in)
	ip.out = bufio.NewWriter(out)
}

// Flush drains buffered program output to the underlying writer.
func (ip *Interpreter) Flush() { ip.out.Flush() }

// RegisterBuiltin installs a native callable under name.
func (ip *Interpreter) RegisterBuiltin(name string, arity int, impl func(*Interpreter, []Value) Value) {
	ip.builtins[name] = &Builtin{Name: name, Arity: arity, Impl: impl}
}

// EvalSource parses and evaluates src in a fresh child of Global, so the
// program's bindings do not leak into the persistent state.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	ast, err := Parse(src)
	if err != nil {
		return Unit, err
	}
	return ip.EvalProgram(ast, NewEnv(ip.Global))
}

// EvalPersistentSource parses and evaluates src in Global itself
// (REPL-style): `let` and `fn` update the persistent state.
func (ip *Interpreter) EvalPersistentSource(src string) (Value, error) {
	ast, err := Parse(src)
	if err != nil {
		return Unit, err
	}
	return ip.EvalProgram(ast, ip.Global)
}

// EvalProgram evaluates a pre-parsed program in env. The result is the
// value of the last top-level expression (Unit for an empty program). All
// runtime failures come back as *Error; output is flushed either way.
func (ip *Interpreter) EvalProgram(ast []Expr, env *Env) (out Value, err error) {
	defer ip.out.Flush()
	defer func() {
		if r := recover(); r != nil {
			switch sig := r.(type) {
			case returnSig:
				// A return that escaped every function frame.
				err = &Error{Kind: DiagRuntime, Msg: "return outside of a function"}
				out = Unit
			case rtErr:
				err = &Error{Kind: sig.kind, Msg: sig.msg, Line: sig.line, Col: sig.col}
				out = Unit
			default:
				panic(r)
			}
		}
	}()

	out = Unit
	for _, e := range ast {
		out = ip.eval(e, env)
	}
	return out, nil
}
