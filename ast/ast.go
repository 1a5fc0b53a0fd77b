package ast

// Expr is an immutable expression node. Nodes are never mutated after
// construction, so subtrees may be shared freely between trees.
type Expr interface {
	exprNode()
	String() string
}

type IntLiteral struct {
	Value int32
}

type BoolLiteral struct {
	Value bool
}

// EqualsExpr compares the values of its operands.
type EqualsExpr struct {
	Left, Right Expr
}

type AddExpr struct {
	Left, Right Expr
}

type MultExpr struct {
	Left, Right Expr
}

type VarRef struct {
	Name string
}

// LetExpr binds Name to Value while evaluating Body. Value does not see
// the binding.
type LetExpr struct {
	Name  string
	Value Expr
	Body  Expr
}

type IfExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

// FunExpr is a one-parameter function literal.
type FunExpr struct {
	Param string
	Body  Expr
}

type CallExpr struct {
	Callee Expr
	Arg    Expr
}

func (IntLiteral) exprNode()  {}
func (BoolLiteral) exprNode() {}
func (EqualsExpr) exprNode()  {}
func (AddExpr) exprNode()     {}
func (MultExpr) exprNode()    {}
func (VarRef) exprNode()      {}
func (LetExpr) exprNode()     {}
func (IfExpr) exprNode()      {}
func (FunExpr) exprNode()     {}
func (CallExpr) exprNode()    {}

func (e *IntLiteral) String() string  { return String(e) }
func (e *BoolLiteral) String() string { return String(e) }
func (e *EqualsExpr) String() string  { return String(e) }
func (e *AddExpr) String() string     { return String(e) }
func (e *MultExpr) String() string    { return String(e) }
func (e *VarRef) String() string      { return String(e) }
func (e *LetExpr) String() string     { return String(e) }
func (e *IfExpr) String() string      { return String(e) }
func (e *FunExpr) String() string     { return String(e) }
func (e *CallExpr) String() string    { return String(e) }

// Constructors for building trees by hand.

func Num(v int32) Expr                   { return &IntLiteral{Value: v} }
func Bool(v bool) Expr                   { return &BoolLiteral{Value: v} }
func Eq(l, r Expr) Expr                  { return &EqualsExpr{Left: l, Right: r} }
func Add(l, r Expr) Expr                 { return &AddExpr{Left: l, Right: r} }
func Mult(l, r Expr) Expr                { return &MultExpr{Left: l, Right: r} }
func Var(name string) Expr               { return &VarRef{Name: name} }
func Let(name string, v, body Expr) Expr { return &LetExpr{Name: name, Value: v, Body: body} }
func If(c, t, e Expr) Expr               { return &IfExpr{Condition: c, Then: t, Else: e} }
func Fun(param string, body Expr) Expr   { return &FunExpr{Param: param, Body: body} }
func Call(callee, arg Expr) Expr         { return &CallExpr{Callee: callee, Arg: arg} }
