package interpreter

import "fmt"

// UnboundVariableError is returned when a variable is evaluated in an
// environment that does not bind it.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// TypeError is returned when an operation is applied to a value of the
// wrong variant.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return e.Msg
}
