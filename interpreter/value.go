package interpreter

import (
	"fmt"

	"msdscript/ast"
)

// Value is the result of evaluating an expression.
type Value interface {
	// ToExpr converts the value back into an expression so it can be
	// printed. Closures lose their captured environment.
	ToExpr() ast.Expr
	Equals(other Value) bool
	AddTo(other Value) (Value, error)
	MultiplyWith(other Value) (Value, error)
	IsTrue() (bool, error)
	Call(arg Value) (Value, error)
	// Kind names the variant for error messages.
	Kind() string
	String() string
}

type NumberValue struct {
	Value int32
}

type BooleanValue struct {
	Value bool
}

// ClosureValue is a function literal together with the environment it was
// evaluated in.
type ClosureValue struct {
	Param string
	Body  ast.Expr
	Env   *Env
}

func (v *NumberValue) ToExpr() ast.Expr { return &ast.IntLiteral{Value: v.Value} }
func (v *NumberValue) Kind() string     { return "NumberValue" }
func (v *NumberValue) String() string   { return ast.String(v.ToExpr()) }

func (v *NumberValue) Equals(other Value) bool {
	o, ok := other.(*NumberValue)
	return ok && v.Value == o.Value
}

// AddTo adds two numbers. The sum wraps around on overflow.
func (v *NumberValue) AddTo(other Value) (Value, error) {
	o, ok := other.(*NumberValue)
	if !ok {
		return nil, errNonNumber
	}
	return &NumberValue{Value: int32(uint32(v.Value) + uint32(o.Value))}, nil
}

// MultiplyWith multiplies two numbers. The product wraps around on overflow.
func (v *NumberValue) MultiplyWith(other Value) (Value, error) {
	o, ok := other.(*NumberValue)
	if !ok {
		return nil, errNonNumber
	}
	return &NumberValue{Value: int32(uint32(v.Value) * uint32(o.Value))}, nil
}

func (v *NumberValue) IsTrue() (bool, error) { return false, notBoolean(v) }

func (v *NumberValue) Call(Value) (Value, error) { return nil, errNotCallable }

func (v *BooleanValue) ToExpr() ast.Expr { return &ast.BoolLiteral{Value: v.Value} }
func (v *BooleanValue) Kind() string     { return "BooleanValue" }
func (v *BooleanValue) String() string   { return ast.String(v.ToExpr()) }

func (v *BooleanValue) Equals(other Value) bool {
	o, ok := other.(*BooleanValue)
	return ok && v.Value == o.Value
}

func (v *BooleanValue) AddTo(Value) (Value, error)        { return nil, errNonNumber }
func (v *BooleanValue) MultiplyWith(Value) (Value, error) { return nil, errNonNumber }
func (v *BooleanValue) IsTrue() (bool, error)             { return v.Value, nil }
func (v *BooleanValue) Call(Value) (Value, error)         { return nil, errNotCallable }

func (v *ClosureValue) ToExpr() ast.Expr { return &ast.FunExpr{Param: v.Param, Body: v.Body} }
func (v *ClosureValue) Kind() string     { return "ClosureValue" }
func (v *ClosureValue) String() string   { return ast.String(v.ToExpr()) }

// Equals compares parameter and body; captured environments are ignored.
func (v *ClosureValue) Equals(other Value) bool {
	o, ok := other.(*ClosureValue)
	return ok && v.Param == o.Param && ast.Equal(v.Body, o.Body)
}

func (v *ClosureValue) AddTo(Value) (Value, error)        { return nil, errNonNumber }
func (v *ClosureValue) MultiplyWith(Value) (Value, error) { return nil, errNonNumber }
func (v *ClosureValue) IsTrue() (bool, error)             { return false, notBoolean(v) }

// Call binds the parameter in the captured environment, not the caller's,
// and evaluates the body there.
func (v *ClosureValue) Call(arg Value) (Value, error) {
	return Interp(v.Body, Extend(v.Param, arg, v.Env))
}

var (
	errNonNumber   = &TypeError{Msg: "invalid operation on non-number"}
	errNotCallable = &TypeError{Msg: "cannot use call() on this type"}
)

func notBoolean(v Value) error {
	return &TypeError{Msg: fmt.Sprintf("cannot call is_true on %s", v.Kind())}
}
