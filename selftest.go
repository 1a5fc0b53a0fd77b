package main

import (
	"fmt"
	"io"

	"msdscript/parser"
)

// selfCheck is one end-to-end case run by --test: parse input, render it in
// mode, and compare against want. A non-empty wantErr means the case must
// fail with exactly that message instead.
type selfCheck struct {
	name    string
	mode    string
	input   string
	want    string
	wantErr string
}

var selfChecks = []selfCheck{
	{name: "let", mode: "interp", input: "_let x = 5 _in x + 5", want: "10"},
	{name: "equals false", mode: "interp", input: "1==2+3", want: "_false"},
	{name: "equals true", mode: "interp", input: "1+1==2+0", want: "_true"},
	{name: "call", mode: "interp", input: "(_fun (x) x + 4)(3 + 8)", want: "15"},
	{name: "nested let", mode: "interp", input: "_let x = (_let y = 5 _in y+6) _in x+7", want: "18"},
	{name: "precedence", mode: "interp", input: "(3 + 5) * 6 * 1", want: "48"},
	{name: "if", mode: "interp", input: "_if 1 == 1 _then 2 _else 3", want: "2"},
	{name: "closure value", mode: "interp", input: "_fun (x) x * 2", want: "(_fun (x) (x*2))"},
	{name: "wraparound", mode: "interp", input: "2147483647 + 1", want: "-2147483648"},
	{name: "non-number", mode: "interp", input: "(1==2)+3", wantErr: "invalid operation on non-number"},
	{name: "non-boolean", mode: "interp", input: "_if 1 _then 2 _else 3", wantErr: "cannot call is_true on NumberValue"},
	{name: "not callable", mode: "interp", input: "5(3)", wantErr: "cannot use call() on this type"},
	{name: "unbound", mode: "interp", input: "x + 1", wantErr: "unbound variable: x"},
	{name: "print", mode: "print", input: "_if x==3 _then 42*42 _else x+0", want: "(_if (x==3) _then (42*42) _else (x+0))"},
	{name: "pretty let", mode: "pretty-print", input: "_let x = 42 _in x", want: "_let x = 42\n_in  x"},
	{name: "pretty fun", mode: "pretty-print", input: "_fun (x) 2 + x", want: "_fun (x)\n  2 + x"},
	{name: "pretty assoc", mode: "pretty-print", input: "(42 + x) + (42 + x)", want: "(42 + x) + 42 + x"},
	{name: "empty parens", mode: "print", input: "()", wantErr: "parse error at 1:2: invalid input"},
	{name: "open paren", mode: "print", input: "(", wantErr: "parse error at 1:2: invalid input"},
	{name: "unclosed", mode: "print", input: "(4", wantErr: "parse error at 1:3: missing closing parenthesis"},
	{name: "malformed variable", mode: "print", input: "x1", wantErr: "parse error at 1:2: malformed variable"},
	{name: "malformed number", mode: "print", input: "2x", wantErr: "parse error at 1:2: malformed number"},
	{name: "unused let", mode: "print", input: "_let x = 5 _in 3", wantErr: "parse error at 1:1: invalid let"},
	{name: "trailing input", mode: "print", input: "5 6780", wantErr: "parse error at 1:3: unexpected trailing input"},
}

// runSelfTest runs every selfCheck and reports failures on stderr.
func runSelfTest(stdout, stderr io.Writer) int {
	failed := 0
	for _, c := range selfChecks {
		if err := c.run(); err != nil {
			failed++
			fmt.Fprintf(stderr, "FAIL %s: %v\n", c.name, err)
		}
	}
	if failed > 0 {
		fmt.Fprintf(stderr, "%d of %d checks failed\n", failed, len(selfChecks))
		return 1
	}
	fmt.Fprintf(stdout, "%d checks passed\n", len(selfChecks))
	return 0
}

func (c selfCheck) run() error {
	got, err := c.output()
	if c.wantErr != "" {
		if err == nil {
			return fmt.Errorf("input %q: got %q, want error %q", c.input, got, c.wantErr)
		}
		if err.Error() != c.wantErr {
			return fmt.Errorf("input %q: got error %q, want %q", c.input, err, c.wantErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("input %q: unexpected error: %v", c.input, err)
	}
	if got != c.want {
		return fmt.Errorf("input %q: got %q, want %q", c.input, got, c.want)
	}
	return nil
}

func (c selfCheck) output() (string, error) {
	e, err := parser.Parse(c.input)
	if err != nil {
		return "", err
	}
	return render(c.mode, e)
}
