package parser

import (
	"fmt"
	"strings"
)

// ParseError reports malformed input. Offset is a byte index into the
// source; Line and Col are 1-based.
type ParseError struct {
	Offset int
	Line   int
	Col    int
	Msg    string
	// Incomplete is set when the input ended before the expression did, so
	// more input could still make it valid.
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (p *Parser) fail(msg string) *ParseError {
	return p.failAt(p.pos, msg)
}

func (p *Parser) failAt(offset int, msg string) *ParseError {
	err := p.rejectAt(offset, msg)
	err.Incomplete = offset >= len(p.src)
	return err
}

// rejectAt reports an error that no amount of further input can fix.
func (p *Parser) rejectAt(offset int, msg string) *ParseError {
	if offset > len(p.src) {
		offset = len(p.src)
	}
	before := p.src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return &ParseError{Offset: offset, Line: line, Col: col, Msg: msg}
}
