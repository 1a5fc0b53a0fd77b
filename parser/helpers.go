package parser

import (
	"fmt"
	"io"
	"os"

	"msdscript/ast"
)

// ParseFile reads and parses the expression stored at path.
func ParseFile(path string) (ast.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(path, string(data))
}

// ParseSource parses in-memory source (used for --interp and friends reading
// stdin). name only labels errors.
func ParseSource(name string, source string) (ast.Expr, error) {
	if name == "" {
		name = "<inline>"
	}
	e, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return e, nil
}

// ParseReader parses everything r yields as one expression.
func ParseReader(name string, r io.Reader) (ast.Expr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseSource(name, string(data))
}
