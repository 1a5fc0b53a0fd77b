package interpreter

import (
	"errors"
	"testing"

	"msdscript/ast"
)

func TestLetBindingsDoNotLeakIntoOuterScope(t *testing.T) {
	// _let x = 1 _in (_let x = 2 _in x) + x
	program := ast.Let("x", ast.Num(1),
		ast.Add(ast.Let("x", ast.Num(2), ast.Var("x")), ast.Var("x")))

	v := mustInterp(t, program, nil)
	if !v.Equals(&NumberValue{Value: 3}) {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestLetValueDoesNotSeeItsOwnBinding(t *testing.T) {
	// _let x = x + 1 _in x, evaluated where x is 10
	program := ast.Let("x", ast.Add(ast.Var("x"), ast.Num(1)), ast.Var("x"))
	env := Extend("x", &NumberValue{Value: 10}, nil)

	v := mustInterp(t, program, env)
	if !v.Equals(&NumberValue{Value: 11}) {
		t.Fatalf("expected 11, got %v", v)
	}
}

func TestClosureUsesCapturedEnvironment(t *testing.T) {
	// _let y = 7 _in _fun (x) x + y
	fn := ast.Let("y", ast.Num(7), ast.Fun("x", ast.Add(ast.Var("x"), ast.Var("y"))))
	v := mustInterp(t, fn, nil)
	closure, ok := v.(*ClosureValue)
	if !ok {
		t.Fatalf("expected closure, got %T", v)
	}

	got, err := closure.Call(&NumberValue{Value: 3})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !got.Equals(&NumberValue{Value: 10}) {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestIfAndCallOperandsSeeOnlyTheEmptyEnvironment(t *testing.T) {
	env := Extend("x", &NumberValue{Value: 3}, nil)

	cond := ast.If(ast.Eq(ast.Var("x"), ast.Num(3)), ast.Num(1), ast.Num(2))
	if _, err := Interp(cond, env); !isUnbound(err, "x") {
		t.Fatalf("if: expected unbound x, got %v", err)
	}

	call := ast.Call(ast.Fun("y", ast.Add(ast.Var("y"), ast.Num(1))), ast.Var("x"))
	if _, err := Interp(call, env); !isUnbound(err, "x") {
		t.Fatalf("call: expected unbound x, got %v", err)
	}

	// Variables bound outside the whole expression are still visible to
	// plain arithmetic.
	v := mustInterp(t, ast.Add(ast.Var("x"), ast.Num(1)), env)
	if !v.Equals(&NumberValue{Value: 4}) {
		t.Fatalf("expected 4, got %v", v)
	}
}

func isUnbound(err error, name string) bool {
	var ub *UnboundVariableError
	return errors.As(err, &ub) && ub.Name == name
}

func mustInterp(t *testing.T, e ast.Expr, env *Env) Value {
	t.Helper()
	v, err := Interp(e, env)
	if err != nil {
		t.Fatalf("interp %s: %v", ast.String(e), err)
	}
	return v
}
