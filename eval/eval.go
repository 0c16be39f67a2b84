package eval

import "alisp/parser"

// Eval reduces v in env with a fresh Context.
func Eval(env *Environment, v Value) Value {
	return NewContext().Eval(env, v)
}

// Read converts a syntax tree into a Value. The program root becomes an
// s-expression of its top-level expressions.
func Read(node parser.Node) Value {
	switch node := node.(type) {
	case *parser.Number:
		return Number(node.Value)
	case *parser.Symbol:
		return Symbol(node.Name)
	case *parser.SExpr:
		return newSExpr(readAll(node.Exprs)...)
	case *parser.QExpr:
		return newQExpr(readAll(node.Exprs)...)
	case *parser.Program:
		return newSExpr(readAll(node.Exprs)...)
	}
	return newError(ERR_TYPE, "cannot read node %s", node)
}

func readAll(nodes []parser.Node) []Value {
	cells := make([]Value, len(nodes))
	for i, node := range nodes {
		cells[i] = Read(node)
	}
	return cells
}
