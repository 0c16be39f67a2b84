package parser

import (
	"bytes"
	"strings"
)

func (node *Program) String() string {
	exprs := []string{}
	for _, expr := range node.Exprs {
		exprs = append(exprs, expr.String())
	}
	return strings.Join(exprs, "\n")
}

func (node *Number) String() string { return node.Token.Lexeme }
func (node *Symbol) String() string { return node.Name }

func (node *SExpr) String() string { return group('(', node.Exprs, ')') }
func (node *QExpr) String() string { return group('{', node.Exprs, '}') }

func group(open byte, exprs []Node, close byte) string {
	var buf bytes.Buffer
	buf.WriteByte(open)
	for i, expr := range exprs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(expr.String())
	}
	buf.WriteByte(close)
	return buf.String()
}
