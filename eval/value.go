package eval

//go:generate stringer -type=ValueType -linecomment
type ValueType uint8

const (
	_ = ValueType(iota)
	VT_NUMBER  // Number
	VT_ERROR   // Error
	VT_SYMBOL  // Symbol
	VT_BUILTIN // Function
	VT_LAMBDA  // Function
	VT_SEXPR   // S-Expression
	VT_QEXPR   // Q-Expression
)

// Value is any runtime datum. A Value belongs to exactly one container
// (an expression, an environment, or the evaluation in flight); use Copy
// before storing it a second time.
type Value interface {
	Type() ValueType
}

type Number int64
type Symbol string

type Error struct {
	Kind    ErrorKind
	Message string
}

// Builtin refers to one entry of the fixed builtin table.
type Builtin BuiltinID

// Lambda is a user-defined function. Env holds the formals bound so far;
// its outer scope is only attached when the last formal is filled.
type Lambda struct {
	Formals *QExpr
	Body    *QExpr
	Env     *Environment
}

type SExpr struct {
	Cells []Value
}

type QExpr struct {
	Cells []Value
}

func (v Number) Type() ValueType  { return VT_NUMBER }
func (v *Error) Type() ValueType  { return VT_ERROR }
func (v Symbol) Type() ValueType  { return VT_SYMBOL }
func (v Builtin) Type() ValueType { return VT_BUILTIN }
func (v *Lambda) Type() ValueType { return VT_LAMBDA }
func (v *SExpr) Type() ValueType  { return VT_SEXPR }
func (v *QExpr) Type() ValueType  { return VT_QEXPR }

// ============
// Constructors
// ============

func newSExpr(cells ...Value) *SExpr {
	if cells == nil {
		cells = []Value{}
	}
	return &SExpr{Cells: cells}
}

func newQExpr(cells ...Value) *QExpr {
	if cells == nil {
		cells = []Value{}
	}
	return &QExpr{Cells: cells}
}

func newLambda(formals, body *QExpr) *Lambda {
	return &Lambda{
		Formals: formals,
		Body:    body,
		Env:     newEnvironment(nil),
	}
}

// ====
// Copy
// ====

// Copy duplicates v so the result shares no mutable state with it.
// Numbers, symbols and builtins are immutable and returned as is.
func Copy(v Value) Value {
	switch v := v.(type) {
	case *Error:
		return &Error{Kind: v.Kind, Message: v.Message}
	case *SExpr:
		return &SExpr{Cells: copyCells(v.Cells)}
	case *QExpr:
		return v.copy()
	case *Lambda:
		return v.Copy()
	}
	return v
}

func (v *QExpr) copy() *QExpr { return &QExpr{Cells: copyCells(v.Cells)} }

// Copy returns a lambda with its own formals, body and bindings. The
// bindings keep pointing at the same outer scope.
func (v *Lambda) Copy() *Lambda {
	return &Lambda{
		Formals: v.Formals.copy(),
		Body:    v.Body.copy(),
		Env:     v.Env.Copy(),
	}
}

func copyCells(cells []Value) []Value {
	out := make([]Value, len(cells))
	for i, cell := range cells {
		out[i] = Copy(cell)
	}
	return out
}

// ========
// Equality
// ========

// Equal reports whether a and b are structurally the same value. Lambdas
// compare by formals, body and the arguments bound so far.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case Number:
		return a == b.(Number)
	case Symbol:
		return a == b.(Symbol)
	case Builtin:
		return a == b.(Builtin)
	case *Error:
		return a.Message == b.(*Error).Message
	case *SExpr:
		return cellsEqual(a.Cells, b.(*SExpr).Cells)
	case *QExpr:
		return cellsEqual(a.Cells, b.(*QExpr).Cells)
	case *Lambda:
		other := b.(*Lambda)
		return cellsEqual(a.Formals.Cells, other.Formals.Cells) &&
			cellsEqual(a.Body.Cells, other.Body.Cells) &&
			bindingsEqual(a.Env, other.Env)
	}
	return false
}

// bindingsEqual compares the arguments already bound by two partial
// applications.
func bindingsEqual(a, b *Environment) bool {
	if len(a.store) != len(b.store) {
		return false
	}
	for name, v := range a.store {
		w, ok := b.store[name]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

func cellsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// =====
// Utils
// =====

func isError(v Value) bool { return v.Type() == VT_ERROR }
func isFunction(v Value) bool {
	t := v.Type()
	return t == VT_BUILTIN || t == VT_LAMBDA
}
