// printer.go — user-facing value formatting and a canonical AST formatter.
//
// FormatValue is the rendering `println` and interpolation use. FormatExpr /
// FormatProgram print an AST back to canonical source; parsing the output
// reproduces the same AST, which the tests rely on.
package mussel

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders v for program output.
//
//	String  → its characters
//	Integer → decimal
//	Float   → shortest round-trip form with at least one fractional digit
//	Boolean → true / false
//	Array   → [e1, e2, …]
//	Function/Unit → debug forms
func FormatValue(v Value) string {
	switch v.Tag {
	case VTString:
		return v.Data.(string)
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		return formatFloat(v.Data.(float64))
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTArray:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i := range xs {
			parts[i] = FormatValue(xs[i])
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VTFun:
		f := v.Data.(*Fun)
		if f.Name != "" {
			return fmt.Sprintf("<fn %s(%s)>", f.Name, strings.Join(f.Params, ", "))
		}
		return fmt.Sprintf("<fn (%s)>", strings.Join(f.Params, ", "))
	default:
		return "()"
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eE") || strings.Contains(s, "Inf") || strings.Contains(s, "NaN") {
		return s
	}
	return s + ".0"
}

// ───────────────────────────── AST formatting ───────────────────────────

// Operator precedence levels used to decide where parentheses are needed.
const (
	precOr = iota + 1
	precAnd
	precCmp
	precAdd
	precMul
	precUnary
	precPostfix
	precPrimary
)

func opPrec(op BinOpKind) int {
	switch op {
	case OpOr:
		return precOr
	case OpAnd:
		return precAnd
	case OpEq, OpNeq, OpLess, OpLessEq, OpGreater, OpGreaterEq:
		return precCmp
	case OpAdd, OpSub:
		return precAdd
	default:
		return precMul
	}
}

func exprPrec(e Expr) int {
	switch n := e.(type) {
	case *BinaryExpr:
		return opPrec(n.Op)
	case *UnaryExpr:
		return precUnary
	case *CallExpr, *GetExpr:
		return precPostfix
	case *ClosureExpr:
		// A closure body extends as far right as it can; as an operand the
		// closure always needs parentheses.
		return 0
	default:
		return precPrimary
	}
}

// FormatProgram renders a whole program, one top-level form per line.
func FormatProgram(ast []Expr) string {
	var b strings.Builder
	for i, e := range ast {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeExpr(&b, e, 0)
	}
	return b.String()
}

// FormatExpr renders a single node to canonical source.
func FormatExpr(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e, 0)
	return b.String()
}

// isStatementForm reports whether e can only appear in statement position,
// which forces braces around a one-element closure body.
func isStatementForm(e Expr) bool {
	switch e.(type) {
	case *LetExpr, *FnDefExpr, *IfExpr, *ForExpr, *UntilExpr, *ReturnExpr, *IncludeExpr:
		return true
	}
	return false
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
}

func writeBlock(b *strings.Builder, stmts []Expr, depth int) {
	b.WriteString("{")
	for _, st := range stmts {
		b.WriteByte('\n')
		writeIndent(b, depth+1)
		writeExpr(b, st, depth+1)
	}
	b.WriteByte('\n')
	writeIndent(b, depth)
	b.WriteString("}")
}

// writeOperand renders a child expression, parenthesizing when its
// precedence would otherwise change the parse.
func writeOperand(b *strings.Builder, e Expr, min int, depth int) {
	if exprPrec(e) < min {
		b.WriteString("(")
		writeExpr(b, e, depth)
		b.WriteString(")")
		return
	}
	writeExpr(b, e, depth)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr, depth int) {
	switch n := e.(type) {
	case *StringLit:
		b.WriteString(quoteString(n.Text))

	case *IntLit:
		b.WriteString(strconv.FormatInt(n.Value, 10))

	case *FloatLit:
		b.WriteString(formatFloat(n.Value))

	case *BoolLit:
		b.WriteString(strconv.FormatBool(n.Value))

	case *NameExpr:
		b.WriteString(n.Name)

	case *LetExpr:
		b.WriteString("let ")
		b.WriteString(n.Name)
		b.WriteString(" = ")
		writeExpr(b, n.Value, depth)

	case *ArrayLit:
		b.WriteString("[")
		for i, el := range n.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, el, depth)
		}
		b.WriteString("]")

	case *GetExpr:
		writeOperand(b, n.Target, precPostfix, depth)
		b.WriteString("[")
		writeExpr(b, n.Index, depth)
		b.WriteString("]")

	case *BinaryExpr:
		p := opPrec(n.Op)
		// Left child of the same precedence keeps its shape (operators are
		// left-associative); a right child of equal precedence needs parens.
		// Comparisons are non-associative: both sides must sit tighter.
		minLeft, minRight := p, p+1
		if p == precCmp {
			minLeft = p + 1
		}
		writeOperand(b, n.Left, minLeft, depth)
		b.WriteString(" ")
		b.WriteString(n.Op.String())
		b.WriteString(" ")
		writeOperand(b, n.Right, minRight, depth)

	case *UnaryExpr:
		b.WriteString(n.Op.String())
		// A negated numeric literal must not re-lex as a signed literal.
		switch n.Operand.(type) {
		case *IntLit, *FloatLit:
			b.WriteString("(")
			writeExpr(b, n.Operand, depth)
			b.WriteString(")")
		default:
			writeOperand(b, n.Operand, precUnary, depth)
		}

	case *IfExpr:
		b.WriteString("if ")
		writeExpr(b, n.Cond, depth)
		b.WriteString(" ")
		writeBlock(b, n.Then, depth)
		if n.Else != nil {
			b.WriteString(" else ")
			if len(n.Else) == 1 {
				if nested, ok := n.Else[0].(*IfExpr); ok {
					writeExpr(b, nested, depth)
					return
				}
			}
			writeBlock(b, n.Else, depth)
		}

	case *ForExpr:
		b.WriteString("for ")
		b.WriteString(n.Var)
		b.WriteString(" in ")
		writeExpr(b, n.Iter, depth)
		b.WriteString(" ")
		writeBlock(b, n.Body, depth)

	case *UntilExpr:
		b.WriteString("until ")
		writeExpr(b, n.Cond, depth)
		b.WriteString(" ")
		writeBlock(b, n.Body, depth)

	case *FnDefExpr:
		b.WriteString("fn ")
		b.WriteString(n.Name)
		b.WriteString("(")
		b.WriteString(strings.Join(n.Params, ", "))
		b.WriteString(") ")
		writeBlock(b, n.Body, depth)

	case *ClosureExpr:
		b.WriteString("|")
		b.WriteString(strings.Join(n.Params, ", "))
		b.WriteString("| ")
		if len(n.Body) == 1 && !isStatementForm(n.Body[0]) {
			writeExpr(b, n.Body[0], depth)
		} else {
			writeBlock(b, n.Body, depth)
		}

	case *CallExpr:
		writeOperand(b, n.Callee, precPostfix, depth)
		b.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, a, depth)
		}
		b.WriteString(")")

	case *ReturnExpr:
		b.WriteString("return ")
		writeExpr(b, n.Value, depth)

	case *IncludeExpr:
		b.WriteString("include ")
		b.WriteString(n.Name)
	}
}
