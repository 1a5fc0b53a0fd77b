package interpreter

import (
	"errors"
	"testing"
)

func TestEmptyEnvIsSingleton(t *testing.T) {
	if EmptyEnv() != EmptyEnv() {
		t.Fatalf("EmptyEnv returned different instances")
	}
	if !EmptyEnv().IsEmpty() {
		t.Fatalf("EmptyEnv is not empty")
	}
}

func TestLookupUnbound(t *testing.T) {
	_, err := EmptyEnv().Lookup("x")
	var ub *UnboundVariableError
	if !errors.As(err, &ub) {
		t.Fatalf("expected UnboundVariableError, got %v", err)
	}
	if ub.Name != "x" || err.Error() != "unbound variable: x" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtendShadowsWithoutMutatingParent(t *testing.T) {
	outer := Extend("x", &NumberValue{Value: 1}, nil)
	inner := Extend("x", &NumberValue{Value: 2}, outer)
	sibling := Extend("y", &BooleanValue{Value: true}, outer)

	assertLookup(t, inner, "x", &NumberValue{Value: 2})
	assertLookup(t, outer, "x", &NumberValue{Value: 1})
	assertLookup(t, sibling, "x", &NumberValue{Value: 1})
	assertLookup(t, sibling, "y", &BooleanValue{Value: true})

	if _, err := outer.Lookup("y"); err == nil {
		t.Fatalf("extending a sibling leaked y into the parent")
	}
	if inner.IsEmpty() {
		t.Fatalf("extended env reports empty")
	}
}

func assertLookup(t *testing.T, env *Env, name string, want Value) {
	t.Helper()
	got, err := env.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	if !got.Equals(want) {
		t.Fatalf("lookup %s: got %v, want %v", name, got, want)
	}
}
