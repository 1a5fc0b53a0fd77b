package ast

import (
	"io"
	"strconv"
	"strings"
)

// Print writes the literal form of e: binary operators fully parenthesized,
// keyword forms wrapped in parentheses, no optional whitespace.
func Print(w io.Writer, e Expr) error {
	p := &printer{w: w}
	p.literal(e)
	return p.err
}

// String returns the literal form of e.
func String(e Expr) string {
	var sb strings.Builder
	_ = Print(&sb, e)
	return sb.String()
}

// PrettyPrint writes e with conventional spacing, parentheses only where
// precedence requires them, and the keywords of multi-line forms aligned on
// the column where the form started.
func PrettyPrint(w io.Writer, e Expr) error {
	p := &printer{w: w}
	p.pretty(e, precNone, false)
	return p.err
}

// PrettyString returns the pretty form of e.
func PrettyString(e Expr) string {
	var sb strings.Builder
	_ = PrettyPrint(&sb, e)
	return sb.String()
}

type prec int

const (
	precNone prec = iota
	precAdd
	precMult
)

// printer tracks the output column itself so alignment does not depend on
// the sink being seekable.
type printer struct {
	w   io.Writer
	col int
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.err = err
		return
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		p.col = len(s) - i - 1
	} else {
		p.col += len(s)
	}
}

func (p *printer) newline(indent int) {
	p.write("\n")
	p.write(strings.Repeat(" ", indent))
}

func (p *printer) literal(e Expr) {
	switch x := e.(type) {
	case *IntLiteral:
		p.write(strconv.FormatInt(int64(x.Value), 10))
	case *BoolLiteral:
		p.write(boolText(x.Value))
	case *VarRef:
		p.write(x.Name)
	case *EqualsExpr:
		p.binary(x.Left, "==", x.Right)
	case *AddExpr:
		p.binary(x.Left, "+", x.Right)
	case *MultExpr:
		p.binary(x.Left, "*", x.Right)
	case *LetExpr:
		p.write("(_let " + x.Name + "=")
		p.literal(x.Value)
		p.write(" _in ")
		p.literal(x.Body)
		p.write(")")
	case *IfExpr:
		p.write("(_if ")
		p.literal(x.Condition)
		p.write(" _then ")
		p.literal(x.Then)
		p.write(" _else ")
		p.literal(x.Else)
		p.write(")")
	case *FunExpr:
		p.write("(_fun (" + x.Param + ") ")
		p.literal(x.Body)
		p.write(")")
	case *CallExpr:
		p.literal(x.Callee)
		p.write(" ")
		p.literal(x.Arg)
	default:
		panic(unknown(e))
	}
}

func (p *printer) binary(l Expr, op string, r Expr) {
	p.write("(")
	p.literal(l)
	p.write(op)
	p.literal(r)
	p.write(")")
}

// pretty prints e for a context of precedence caller. The left operand of
// a binary operator is printed one level tighter than the operator so that
// left-nested chains get parentheses and right-nested chains do not,
// matching the right-recursive grammar. inParen is set once a
// multiplication has opened a parenthesis around the current subtree;
// keyword forms and equality rely on that parenthesis instead of adding
// their own.
func (p *printer) pretty(e Expr, caller prec, inParen bool) {
	switch x := e.(type) {
	case *IntLiteral, *BoolLiteral, *VarRef:
		p.literal(e)
	case *EqualsExpr:
		open := caller > precNone && !inParen
		p.openIf(open)
		p.pretty(x.Left, precNone+1, inParen)
		p.write(" == ")
		p.pretty(x.Right, precNone, inParen)
		p.closeIf(open)
	case *AddExpr:
		open := caller > precAdd
		p.openIf(open)
		p.pretty(x.Left, precAdd+1, inParen)
		p.write(" + ")
		p.pretty(x.Right, precNone, inParen)
		p.closeIf(open)
	case *MultExpr:
		open := caller > precMult
		if open {
			inParen = true
		}
		p.openIf(open)
		p.pretty(x.Left, precMult+1, inParen)
		p.write(" * ")
		p.pretty(x.Right, precMult, inParen)
		p.closeIf(open)
	case *LetExpr:
		open := caller > precNone && !inParen
		p.openIf(open)
		indent := p.col
		p.write("_let " + x.Name + " = ")
		p.pretty(x.Value, precNone, inParen)
		p.newline(indent)
		p.write("_in  ")
		p.pretty(x.Body, precNone, inParen)
		p.closeIf(open)
	case *IfExpr:
		open := caller > precNone && !inParen
		p.openIf(open)
		indent := p.col
		p.write("_if   ")
		p.pretty(x.Condition, precNone, inParen)
		p.newline(indent)
		p.write("_then ")
		p.pretty(x.Then, precNone, inParen)
		p.newline(indent)
		p.write("_else ")
		p.pretty(x.Else, precNone, inParen)
		p.closeIf(open)
	case *FunExpr:
		open := caller > precNone && !inParen
		p.openIf(open)
		indent := p.col
		p.write("_fun (" + x.Param + ")")
		p.newline(indent)
		p.write("  ")
		p.pretty(x.Body, precNone, inParen)
		p.closeIf(open)
	case *CallExpr:
		p.pretty(x.Callee, precNone, inParen)
		p.write("(")
		p.pretty(x.Arg, precNone, inParen)
		p.write(")")
	default:
		panic(unknown(e))
	}
}

func (p *printer) openIf(open bool) {
	if open {
		p.write("(")
	}
}

func (p *printer) closeIf(open bool) {
	if open {
		p.write(")")
	}
}

func boolText(b bool) string {
	if b {
		return "_true"
	}
	return "_false"
}
