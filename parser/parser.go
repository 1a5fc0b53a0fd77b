package parser

import (
	"fmt"
	"strings"

	"msdscript/ast"
)

// Parser is a recursive-descent reader over a single source string. The
// grammar, loosest binding first:
//
//	expr  := eqs
//	eqs   := adds ( "==" eqs )?
//	adds  := mults ( "+" adds )?
//	mults := calls ( "*" mults )?
//	calls := bases ( "(" expr ")" )*
//	bases := number | boolean | variable | "(" expr ")" | let | if | fun
//
// Whitespace may appear between any two tokens.
type Parser struct {
	src string
	pos int
}

func New(src string) *Parser {
	return &Parser{src: src}
}

// Parse parses src as one complete expression.
func Parse(src string) (ast.Expr, error) {
	return New(src).ParseAll()
}

// ParseAll parses one expression and fails if any input other than
// whitespace follows it.
func (p *Parser) ParseAll() (ast.Expr, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.fail("unexpected trailing input")
	}
	return e, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseEqs()
}

func (p *Parser) parseEqs() (ast.Expr, error) {
	e, err := p.parseAdds()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.hasPrefix("==") {
		return e, nil
	}
	p.pos += 2
	rhs, err := p.parseEqs()
	if err != nil {
		return nil, err
	}
	return &ast.EqualsExpr{Left: e, Right: rhs}, nil
}

func (p *Parser) parseAdds() (ast.Expr, error) {
	e, err := p.parseMults()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '+' {
		return e, nil
	}
	p.pos++
	rhs, err := p.parseAdds()
	if err != nil {
		return nil, err
	}
	return &ast.AddExpr{Left: e, Right: rhs}, nil
}

func (p *Parser) parseMults() (ast.Expr, error) {
	e, err := p.parseCalls()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '*' {
		return e, nil
	}
	p.pos++
	rhs, err := p.parseMults()
	if err != nil {
		return nil, err
	}
	return &ast.MultExpr{Left: e, Right: rhs}, nil
}

func (p *Parser) parseCalls() (ast.Expr, error) {
	e, err := p.parseBases()
	if err != nil {
		return nil, err
	}
	for {
		mark := p.pos
		p.skipSpace()
		if p.peek() != '(' {
			p.pos = mark
			return e, nil
		}
		p.pos++
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeParen(); err != nil {
			return nil, err
		}
		e = &ast.CallExpr{Callee: e, Arg: arg}
	}
}

func (p *Parser) parseBases() (ast.Expr, error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case c == '-' || isDigit(c):
		return p.parseNum()
	case isAlpha(c):
		return p.parseVar()
	case c == '(':
		p.pos++
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeParen(); err != nil {
			return nil, err
		}
		return e, nil
	case c == '_':
		kw, err := p.peekKeyword()
		if err != nil {
			return nil, err
		}
		switch kw {
		case kwLet:
			return p.parseLet()
		case kwIf:
			return p.parseIf()
		case kwFun:
			return p.parseFun()
		default:
			return p.parseBool(kw)
		}
	default:
		return nil, p.fail("invalid input")
	}
}

type keyword int

const (
	kwLet keyword = iota
	kwIf
	kwTrue
	kwFalse
	kwFun
)

// peekKeyword identifies the keyword starting at the current '_' without
// consuming it. "_f" needs a third character to tell _false from _fun.
func (p *Parser) peekKeyword() (keyword, error) {
	switch p.at(1) {
	case 'l':
		return kwLet, nil
	case 'i':
		return kwIf, nil
	case 't':
		return kwTrue, nil
	case 'f':
		if p.at(2) == 'a' {
			return kwFalse, nil
		}
		return kwFun, nil
	default:
		return 0, p.failAt(p.pos+1, "invalid keyword")
	}
}

func (p *Parser) parseBool(kw keyword) (ast.Expr, error) {
	text := "_true"
	if kw == kwFalse {
		text = "_false"
	}
	if err := p.expect(text); err != nil {
		return nil, err
	}
	return &ast.BoolLiteral{Value: kw == kwTrue}, nil
}

// parseNum reads an optionally negative decimal literal. Values outside the
// int32 range wrap around.
func (p *Parser) parseNum() (ast.Expr, error) {
	negative := false
	if p.peek() == '-' {
		negative = true
		p.pos++
		if !isDigit(p.peek()) {
			return nil, p.fail("expecting digit after '-'")
		}
	}
	var n int32
	for isDigit(p.peek()) {
		n = n*10 + int32(p.peek()-'0')
		p.pos++
	}
	if c := p.peek(); isAlpha(c) || c == '_' {
		return nil, p.fail("malformed number")
	}
	if negative {
		n = -n
	}
	return &ast.IntLiteral{Value: n}, nil
}

func (p *Parser) parseVar() (ast.Expr, error) {
	start := p.pos
	for isAlpha(p.peek()) {
		p.pos++
	}
	if c := p.peek(); isDigit(c) || c == '_' {
		return nil, p.fail("malformed variable")
	}
	return &ast.VarRef{Name: p.src[start:p.pos]}, nil
}

// parseLet reads "_let name = value _in body". The binding must be used:
// substituting the value for name has to change the body.
func (p *Parser) parseLet() (ast.Expr, error) {
	start := p.pos
	if err := p.expect("_let"); err != nil {
		return nil, err
	}
	p.skipSpace()
	if !isAlpha(p.peek()) {
		return nil, p.fail("invalid let")
	}
	name, err := p.parseVar()
	if err != nil {
		return nil, err
	}
	if err := p.expectToken("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectToken("_in"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	bound := name.(*ast.VarRef).Name
	if ast.Equal(ast.Subst(body, bound, value), body) {
		return nil, p.rejectAt(start, "invalid let")
	}
	return &ast.LetExpr{Name: bound, Value: value, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	if err := p.expect("_if"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectToken("_then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectToken("_else"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{Condition: cond, Then: then, Else: els}, nil
}

// parseFun reads "_fun (param) body". The function is rejected when
// substituting the body into itself for param leaves the body unchanged,
// which also rejects a body that is just the parameter.
func (p *Parser) parseFun() (ast.Expr, error) {
	start := p.pos
	if err := p.expect("_fun"); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '(' {
		return nil, p.fail("invalid fun")
	}
	p.pos++
	p.skipSpace()
	if !isAlpha(p.peek()) {
		return nil, p.fail("invalid fun")
	}
	param, err := p.parseVar()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != ')' {
		return nil, p.fail("invalid fun")
	}
	p.pos++
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	name := param.(*ast.VarRef).Name
	if ast.Equal(ast.Subst(body, name, body), body) {
		return nil, p.rejectAt(start, "invalid fun")
	}
	return &ast.FunExpr{Param: name, Body: body}, nil
}

func (p *Parser) closeParen() error {
	p.skipSpace()
	if p.peek() != ')' {
		return p.fail("missing closing parenthesis")
	}
	p.pos++
	return nil
}

// expect consumes text at the current position.
func (p *Parser) expect(text string) error {
	if !p.hasPrefix(text) {
		err := p.fail(fmt.Sprintf("expected %q", text))
		err.Incomplete = strings.HasPrefix(text, p.src[p.pos:])
		return err
	}
	p.pos += len(text)
	return nil
}

// expectToken skips whitespace and then consumes text.
func (p *Parser) expectToken(text string) error {
	p.skipSpace()
	return p.expect(text)
}

func (p *Parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *Parser) eof() bool { return p.pos >= len(p.src) }

func (p *Parser) peek() byte { return p.at(0) }

// at returns the byte i positions ahead, or 0 past the end of input.
func (p *Parser) at(i int) byte {
	if p.pos+i >= len(p.src) {
		return 0
	}
	return p.src[p.pos+i]
}

func (p *Parser) hasPrefix(text string) bool {
	return len(p.src)-p.pos >= len(text) && p.src[p.pos:p.pos+len(text)] == text
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' }
