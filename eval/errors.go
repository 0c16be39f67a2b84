package eval

import "fmt"

// Errors are values: every failure inside the language is an *Error
// returned in place of a result, and s-expression evaluation stops at
// the first one it sees.

//go:generate stringer -type=ErrorKind -linecomment
type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	ERR_UNBOUND_SYMBOL       // UnboundSymbol
	ERR_TYPE                 // TypeError
	ERR_ARITY                // ArityError
	ERR_EMPTY_LIST           // EmptyListError
	ERR_DIVISION_BY_ZERO     // DivisionByZero
	ERR_NOT_A_FUNCTION       // NotAFunction
	ERR_MALFORMED_DEFINITION // MalformedDefinition
	ERR_RECURSION_LIMIT      // RecursionLimit
	ERR_USER                 // UserError
)

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// expectNArgs checks the argument count of builtin fn.
func expectNArgs(fn string, args []Value, n int) Value {
	if len(args) == n {
		return nil
	}
	return newError(ERR_ARITY,
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		fn, len(args), n)
}

func expectMinArgs(fn string, args []Value, n int) Value {
	if len(args) >= n {
		return nil
	}
	return newError(ERR_ARITY,
		"Function '%s' passed too few arguments. Got %d, Expected at least %d.",
		fn, len(args), n)
}

// expectArgType checks the type of args[i].
func expectArgType(fn string, args []Value, i int, expected ValueType) Value {
	if got := args[i].Type(); got != expected {
		return newError(ERR_TYPE,
			"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			fn, i, got, expected)
	}
	return nil
}

// expectSymbols checks that every cell of q is a symbol, as required for
// formals and definition names.
func expectSymbols(fn string, q *QExpr) Value {
	for i, cell := range q.Cells {
		if cell.Type() != VT_SYMBOL {
			return newError(ERR_MALFORMED_DEFINITION,
				"Function '%s' cannot define non-symbol at position %d. Got %s, Expected %s.",
				fn, i, cell.Type(), VT_SYMBOL)
		}
	}
	return nil
}
