package interpreter

import "sync"

// Env is an immutable chain of name/value frames. Extending an Env never
// changes it, so one Env may be shared by any number of children and
// closures.
type Env struct {
	name   string
	value  Value
	parent *Env
}

var (
	emptyOnce sync.Once
	empty     *Env
)

// EmptyEnv returns the environment with no bindings. Every call returns the
// same instance.
func EmptyEnv() *Env {
	emptyOnce.Do(func() { empty = &Env{} })
	return empty
}

// Extend returns a new environment binding name to value in front of
// parent. A nil parent is the empty environment.
func Extend(name string, value Value, parent *Env) *Env {
	if parent == nil {
		parent = EmptyEnv()
	}
	return &Env{name: name, value: value, parent: parent}
}

// Lookup returns the value bound to name by the newest frame that binds it.
func (e *Env) Lookup(name string) (Value, error) {
	for cur := e; cur != nil && cur.parent != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, nil
		}
	}
	return nil, &UnboundVariableError{Name: name}
}

// IsEmpty reports whether e has no bindings.
func (e *Env) IsEmpty() bool {
	return e == nil || e.parent == nil
}
