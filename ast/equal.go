package ast

import "fmt"

// Equal reports whether a and b are the same variant with pairwise equal
// operands. A nil operand on either side compares unequal.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case *IntLiteral:
		y, ok := b.(*IntLiteral)
		return ok && x.Value == y.Value
	case *BoolLiteral:
		y, ok := b.(*BoolLiteral)
		return ok && x.Value == y.Value
	case *EqualsExpr:
		y, ok := b.(*EqualsExpr)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *AddExpr:
		y, ok := b.(*AddExpr)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *MultExpr:
		y, ok := b.(*MultExpr)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *VarRef:
		y, ok := b.(*VarRef)
		return ok && x.Name == y.Name
	case *LetExpr:
		y, ok := b.(*LetExpr)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value) && Equal(x.Body, y.Body)
	case *IfExpr:
		y, ok := b.(*IfExpr)
		return ok && Equal(x.Condition, y.Condition) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)
	case *FunExpr:
		y, ok := b.(*FunExpr)
		return ok && x.Param == y.Param && Equal(x.Body, y.Body)
	case *CallExpr:
		y, ok := b.(*CallExpr)
		return ok && Equal(x.Callee, y.Callee) && Equal(x.Arg, y.Arg)
	default:
		panic(unknown(a))
	}
}

// HasVariable reports whether any leaf of e is a variable reference.
func HasVariable(e Expr) bool {
	switch x := e.(type) {
	case *IntLiteral, *BoolLiteral:
		return false
	case *VarRef:
		return true
	case *EqualsExpr:
		return HasVariable(x.Left) || HasVariable(x.Right)
	case *AddExpr:
		return HasVariable(x.Left) || HasVariable(x.Right)
	case *MultExpr:
		return HasVariable(x.Left) || HasVariable(x.Right)
	case *LetExpr:
		return HasVariable(x.Value) || HasVariable(x.Body)
	case *IfExpr:
		return HasVariable(x.Condition) || HasVariable(x.Then) || HasVariable(x.Else)
	case *FunExpr:
		return HasVariable(x.Body)
	case *CallExpr:
		return HasVariable(x.Callee) || HasVariable(x.Arg)
	default:
		panic(unknown(e))
	}
}

func unknown(e Expr) string {
	return fmt.Sprintf("ast: unknown expression %T", e)
}
