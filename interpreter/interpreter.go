package interpreter

import (
	"fmt"

	"msdscript/ast"
)

// Interp evaluates e in env. A nil env is the empty environment.
func Interp(e ast.Expr, env *Env) (Value, error) {
	if e == nil {
		return nil, fmt.Errorf("expression must not be nil")
	}
	if env == nil {
		env = EmptyEnv()
	}
	return evalExpr(e, env)
}

func evalExpr(e ast.Expr, env *Env) (Value, error) {
	switch ex := e.(type) {
	case *ast.IntLiteral:
		return &NumberValue{Value: ex.Value}, nil
	case *ast.BoolLiteral:
		return &BooleanValue{Value: ex.Value}, nil
	case *ast.VarRef:
		return env.Lookup(ex.Name)
	case *ast.EqualsExpr:
		left, right, err := evalOperands(ex.Left, ex.Right, env)
		if err != nil {
			return nil, err
		}
		return &BooleanValue{Value: left.Equals(right)}, nil
	case *ast.AddExpr:
		left, right, err := evalOperands(ex.Left, ex.Right, env)
		if err != nil {
			return nil, err
		}
		return left.AddTo(right)
	case *ast.MultExpr:
		left, right, err := evalOperands(ex.Left, ex.Right, env)
		if err != nil {
			return nil, err
		}
		return left.MultiplyWith(right)
	case *ast.LetExpr:
		return evalLet(ex, env)
	case *ast.IfExpr:
		return evalIf(ex)
	case *ast.FunExpr:
		return &ClosureValue{Param: ex.Param, Body: ex.Body, Env: env}, nil
	case *ast.CallExpr:
		return evalCall(ex)
	default:
		return nil, fmt.Errorf("unsupported expression %T", ex)
	}
}

func evalOperands(l, r ast.Expr, env *Env) (Value, Value, error) {
	left, err := evalExpr(l, env)
	if err != nil {
		return nil, nil, err
	}
	right, err := evalExpr(r, env)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// evalLet evaluates the bound value in the outer environment, so a let
// cannot refer to itself.
func evalLet(expr *ast.LetExpr, env *Env) (Value, error) {
	val, err := evalExpr(expr.Value, env)
	if err != nil {
		return nil, err
	}
	return evalExpr(expr.Body, Extend(expr.Name, val, env))
}

// evalIf evaluates the condition and the chosen branch in the empty
// environment; the enclosing bindings are not visible inside an if.
func evalIf(expr *ast.IfExpr) (Value, error) {
	env := EmptyEnv()
	condVal, err := evalExpr(expr.Condition, env)
	if err != nil {
		return nil, err
	}
	cond, err := condVal.IsTrue()
	if err != nil {
		return nil, err
	}
	if cond {
		return evalExpr(expr.Then, env)
	}
	return evalExpr(expr.Else, env)
}

// evalCall evaluates callee and argument in the empty environment, like
// evalIf. The callee's body then runs in its own captured environment.
func evalCall(expr *ast.CallExpr) (Value, error) {
	env := EmptyEnv()
	callee, err := evalExpr(expr.Callee, env)
	if err != nil {
		return nil, err
	}
	if _, ok := callee.(*ClosureValue); !ok {
		return nil, errNotCallable
	}
	arg, err := evalExpr(expr.Arg, env)
	if err != nil {
		return nil, err
	}
	return callee.Call(arg)
}
