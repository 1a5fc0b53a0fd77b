package ast

import "testing"

func TestSubst(t *testing.T) {
	tests := []struct {
		name        string
		e           Expr
		target      string
		replacement Expr
		want        Expr
	}{
		{"variable", Var("x"), "x", Num(5), Num(5)},
		{"other variable", Var("y"), "x", Num(5), Var("y")},
		{"add", Add(Var("x"), Num(7)), "x", Var("y"), Add(Var("y"), Num(7))},
		{"mult", Mult(Var("x"), Var("x")), "x", Num(2), Mult(Num(2), Num(2))},
		{"equals", Eq(Var("x"), Num(1)), "x", Bool(true), Eq(Bool(true), Num(1))},
		{
			"let rebinding keeps body",
			Let("x", Add(Var("x"), Num(1)), Add(Var("x"), Num(2))),
			"x", Num(5),
			Let("x", Add(Num(5), Num(1)), Add(Var("x"), Num(2))),
		},
		{
			"let with other binder",
			Let("y", Var("x"), Add(Var("x"), Var("y"))),
			"x", Num(3),
			Let("y", Num(3), Add(Num(3), Var("y"))),
		},
		{
			"if",
			If(Eq(Var("x"), Num(1)), Var("x"), Num(0)),
			"x", Num(1),
			If(Eq(Num(1), Num(1)), Num(1), Num(0)),
		},
		{
			"fun rebinding keeps body",
			Fun("x", Add(Var("x"), Var("y"))),
			"x", Num(1),
			Fun("x", Add(Var("x"), Var("y"))),
		},
		{
			"fun with other param",
			Fun("x", Add(Var("x"), Var("y"))),
			"y", Num(1),
			Fun("x", Add(Var("x"), Num(1))),
		},
		{"call", Call(Var("f"), Var("x")), "x", Num(4), Call(Var("f"), Num(4))},
		{"literal", Num(9), "x", Num(4), Num(9)},
	}
	for _, tt := range tests {
		got := Subst(tt.e, tt.target, tt.replacement)
		if !Equal(got, tt.want) {
			t.Errorf("%s: Subst = %s, want %s", tt.name, String(got), String(tt.want))
		}
	}
}

func TestSubstLeavesInputUntouched(t *testing.T) {
	e := Let("y", Var("x"), Add(Var("x"), Var("y")))
	before := String(e)
	_ = Subst(e, "x", Num(3))
	if after := String(e); after != before {
		t.Fatalf("Subst mutated its input: %s became %s", before, after)
	}
}
