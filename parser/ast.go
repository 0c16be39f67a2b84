package parser

import "alisp/lexer"

type NodeType uint8

const (
	_ = NodeType(iota)
	PROGRAM
	NUMBER
	SYMBOL
	SEXPR
	QEXPR
)

// Node is one element of the syntax tree handed to the evaluator.
// Leaves are NUMBER and SYMBOL, everything else is a grouping with
// ordered children.
type Node interface {
	String() string
	Type() NodeType
	Tok() lexer.Token
	node()
}

// Program is the root grouping: every top-level expression of the input.
type Program struct {
	Filename string
	Exprs    []Node
	Token    lexer.Token // the EOF token
}

type Number struct {
	Token lexer.Token
	Value int64
}

type Symbol struct {
	Token lexer.Token
	Name  string
}

// SExpr and QExpr keep their delimiter tokens for error reporting;
// they are not part of Exprs.
type SExpr struct {
	LParen lexer.Token
	Exprs  []Node
	RParen lexer.Token
}

type QExpr struct {
	LBrace lexer.Token
	Exprs  []Node
	RBrace lexer.Token
}

func (node *Program) Type() NodeType { return PROGRAM }
func (node *Number) Type() NodeType  { return NUMBER }
func (node *Symbol) Type() NodeType  { return SYMBOL }
func (node *SExpr) Type() NodeType   { return SEXPR }
func (node *QExpr) Type() NodeType   { return QEXPR }

func (node *Program) Tok() lexer.Token { return node.Token }
func (node *Number) Tok() lexer.Token  { return node.Token }
func (node *Symbol) Tok() lexer.Token  { return node.Token }
func (node *SExpr) Tok() lexer.Token   { return node.LParen }
func (node *QExpr) Tok() lexer.Token   { return node.LBrace }

func (node *Program) node() {}
func (node *Number) node()  {}
func (node *Symbol) node()  {}
func (node *SExpr) node()   {}
func (node *QExpr) node()   {}

// Children returns the ordered sub-expressions of a grouping node,
// or nil for a leaf.
func Children(node Node) []Node {
	switch node := node.(type) {
	case *Program:
		return node.Exprs
	case *SExpr:
		return node.Exprs
	case *QExpr:
		return node.Exprs
	}
	return nil
}
