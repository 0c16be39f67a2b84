package parser

import "alisp/lexer"

type Parser struct {
	filename string
	tokens   []lexer.Token
	Errors   []error // all ParserError
	curr     int     // how many we have consumed.
}

// ====
// init
// ====

func New(fn string, tokens []lexer.Token) *Parser {
	return &Parser{
		filename: fn,
		tokens:   tokens,
		Errors:   []error{},
		curr:     0,
	}
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

// check returns if the peek token matches the given type
func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// ===========
// entry point
// ===========
//
//   program → expr* EOF
//   expr    → NUMBER | SYMBOL | sexpr | qexpr
//   sexpr   → "(" expr* ")"
//   qexpr   → "{" expr* "}"

func (p *Parser) Parse() *Program {
	program := &Program{Filename: p.filename, Exprs: []Node{}}
	for !p.isAtEnd() {
		if expr := p.toplevel(); expr != nil {
			program.Exprs = append(program.Exprs, expr)
		}
	}
	program.Token = p.peek()
	return program
}

// toplevel parses one top-level expression. It is the only place that
// recovers from a ParserError.
func (p *Parser) toplevel() (expr Node) {
	defer func() {
		if rv := recover(); rv != nil {
			if _, ok := rv.(ParserError); ok {
				p.synchronize()
				expr = nil
				return
			}
			panic(rv)
		}
	}()
	return p.expr()
}

func (p *Parser) expr() Node {
	tok := p.peek()
	switch tok.Type {
	case lexer.NUMBER:
		p.consume()
		return &Number{Token: tok, Value: tok.Literal.(int64)}
	case lexer.SYMBOL:
		p.consume()
		return &Symbol{Token: tok, Name: tok.Lexeme}
	case lexer.LEFT_PAREN:
		lparen := p.consume()
		exprs := p.exprsUntil(lexer.RIGHT_PAREN)
		rparen := p.expect(lexer.RIGHT_PAREN, "unmatched (")
		return &SExpr{LParen: lparen, Exprs: exprs, RParen: rparen}
	case lexer.LEFT_BRACE:
		lbrace := p.consume()
		exprs := p.exprsUntil(lexer.RIGHT_BRACE)
		rbrace := p.expect(lexer.RIGHT_BRACE, "unmatched {")
		return &QExpr{LBrace: lbrace, Exprs: exprs, RBrace: rbrace}
	case lexer.EOF:
		panic(p.error(tok, "unexpected end of input"))
	}
	panic(p.error(tok, "unexpected %s", tok.Lexeme))
}

func (p *Parser) exprsUntil(closer lexer.TokenType) []Node {
	exprs := []Node{}
	for !p.isAtEnd() && !p.check(closer) {
		exprs = append(exprs, p.expr())
	}
	return exprs
}
