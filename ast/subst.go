package ast

// Subst returns a copy of e with every free occurrence of the variable name
// replaced by replacement. A let body or function body that rebinds name is
// left untouched; a let's bound value is always rewritten.
//
// Replacement is inserted as is, so free variables inside it can be captured
// by binders in e.
func Subst(e Expr, name string, replacement Expr) Expr {
	switch x := e.(type) {
	case *IntLiteral:
		return &IntLiteral{Value: x.Value}
	case *BoolLiteral:
		return &BoolLiteral{Value: x.Value}
	case *VarRef:
		if x.Name == name {
			return replacement
		}
		return &VarRef{Name: x.Name}
	case *EqualsExpr:
		return &EqualsExpr{Left: Subst(x.Left, name, replacement), Right: Subst(x.Right, name, replacement)}
	case *AddExpr:
		return &AddExpr{Left: Subst(x.Left, name, replacement), Right: Subst(x.Right, name, replacement)}
	case *MultExpr:
		return &MultExpr{Left: Subst(x.Left, name, replacement), Right: Subst(x.Right, name, replacement)}
	case *LetExpr:
		body := x.Body
		if x.Name != name {
			body = Subst(x.Body, name, replacement)
		}
		return &LetExpr{Name: x.Name, Value: Subst(x.Value, name, replacement), Body: body}
	case *IfExpr:
		return &IfExpr{
			Condition: Subst(x.Condition, name, replacement),
			Then:      Subst(x.Then, name, replacement),
			Else:      Subst(x.Else, name, replacement),
		}
	case *FunExpr:
		if x.Param == name {
			return &FunExpr{Param: x.Param, Body: x.Body}
		}
		return &FunExpr{Param: x.Param, Body: Subst(x.Body, name, replacement)}
	case *CallExpr:
		return &CallExpr{Callee: Subst(x.Callee, name, replacement), Arg: Subst(x.Arg, name, replacement)}
	default:
		panic(unknown(e))
	}
}
