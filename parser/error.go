package parser

import (
	"fmt"

	"alisp/lexer"
)

// Represents a parsing error. We use this internally to signal
// that we cannot continue parsing the current expression.
type ParserError struct {
	Filename string
	Token    lexer.Token
	Message  string
}

func (e ParserError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Token.Line, e.Token.Column, e.Message)
}

// Incomplete reports whether the error was caused by running out of
// input inside an open ( or {.
func (e ParserError) Incomplete() bool { return e.Token.Type == lexer.EOF }

// IsIncomplete reports whether errs is non-empty and every error in it
// only means the input ended too early. A REPL uses this to ask for a
// continuation line instead of reporting the errors.
func IsIncomplete(errs []error) bool {
	if len(errs) == 0 {
		return false
	}
	for _, err := range errs {
		perr, ok := err.(ParserError)
		if !ok || !perr.Incomplete() {
			return false
		}
	}
	return true
}

func (p *Parser) error(tok lexer.Token, s string, args ...interface{}) ParserError {
	err := ParserError{
		Filename: p.filename,
		Token:    tok,
		Message:  fmt.Sprintf(s, args...),
	}
	p.Errors = append(p.Errors, err)
	return err
}

func (p *Parser) expect(typ lexer.TokenType, s string, args ...interface{}) lexer.Token {
	if !p.check(typ) {
		panic(p.error(p.peek(), s, args...))
	}
	return p.consume()
}

// synchronize discards tokens until the nesting opened by the failed
// top-level expression is closed, so cascading errors are dropped and
// later expressions can still be reported.
func (p *Parser) synchronize() {
	depth := 0
	for !p.isAtEnd() {
		switch p.consume().Type {
		case lexer.LEFT_PAREN, lexer.LEFT_BRACE:
			depth++
		case lexer.RIGHT_PAREN, lexer.RIGHT_BRACE:
			depth--
		}
		if depth <= 0 {
			return
		}
	}
}
