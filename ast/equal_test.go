package ast

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"numbers", Num(1), Num(1), true},
		{"different numbers", Num(1), Num(2), false},
		{"number vs boolean", Num(1), Bool(true), false},
		{"booleans", Bool(false), Bool(false), true},
		{"variables", Var("x"), Var("x"), true},
		{"different variables", Var("x"), Var("y"), false},
		{"add vs mult", Add(Num(1), Num(2)), Mult(Num(1), Num(2)), false},
		{"operand order matters", Add(Num(1), Num(2)), Add(Num(2), Num(1)), false},
		{"equals", Eq(Var("x"), Num(3)), Eq(Var("x"), Num(3)), true},
		{"let", Let("x", Num(1), Var("x")), Let("x", Num(1), Var("x")), true},
		{"let binder differs", Let("x", Num(1), Var("x")), Let("y", Num(1), Var("x")), false},
		{"if", If(Bool(true), Num(1), Num(2)), If(Bool(true), Num(1), Num(2)), true},
		{"if branches differ", If(Bool(true), Num(1), Num(2)), If(Bool(true), Num(2), Num(1)), false},
		{"fun", Fun("x", Var("x")), Fun("x", Var("x")), true},
		{"fun param differs", Fun("x", Var("x")), Fun("y", Var("x")), false},
		{"call", Call(Var("f"), Num(1)), Call(Var("f"), Num(1)), true},
		{"nil", Num(1), nil, false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
		if tt.b != nil {
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("%s: Equal is not symmetric", tt.name)
			}
		}
	}
}

func TestHasVariable(t *testing.T) {
	tests := []struct {
		e    Expr
		want bool
	}{
		{Num(1), false},
		{Bool(true), false},
		{Var("x"), true},
		{Add(Num(1), Mult(Num(2), Num(3))), false},
		{Add(Num(1), Mult(Num(2), Var("y"))), true},
		{Eq(Var("x"), Num(1)), true},
		{Let("x", Num(1), Num(2)), false},
		{Let("x", Num(1), Var("x")), true},
		{If(Bool(true), Num(1), Var("z")), true},
		{Fun("x", Num(1)), false},
		{Fun("x", Var("x")), true},
		{Call(Fun("x", Num(1)), Num(2)), false},
		{Call(Num(1), Var("a")), true},
	}
	for _, tt := range tests {
		if got := HasVariable(tt.e); got != tt.want {
			t.Errorf("HasVariable(%s) = %v, want %v", String(tt.e), got, tt.want)
		}
	}
}
