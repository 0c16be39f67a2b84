package eval

import (
	"fmt"
	"strings"
)

// BuiltinID names one entry of the fixed builtin table. Builtins are
// dispatched by id, never by comparing their names.
type BuiltinID uint8

const (
	BI_LIST = BuiltinID(iota)
	BI_HEAD
	BI_TAIL
	BI_INIT
	BI_LEN
	BI_JOIN
	BI_CONS
	BI_EVAL
	BI_ADD
	BI_SUB
	BI_MUL
	BI_DIV
	BI_MOD
	BI_GT
	BI_LT
	BI_GE
	BI_LE
	BI_EQ
	BI_NE
	BI_IF
	BI_DEF
	BI_PUT
	BI_LAMBDA
	BI_ERROR
	BI_PRINT
	numBuiltins
)

type builtinFunc func(ctx *Context, env *Environment, args []Value) Value

type builtinEntry struct {
	name string
	call builtinFunc
}

var builtinTable [numBuiltins]builtinEntry

func init() {
	initBuiltinTable()
}

func initBuiltinTable() {
	builtinTable = [numBuiltins]builtinEntry{
		BI_LIST:   {"list", bi_list},
		BI_HEAD:   {"head", bi_head},
		BI_TAIL:   {"tail", bi_tail},
		BI_INIT:   {"init", bi_init},
		BI_LEN:    {"len", bi_len},
		BI_JOIN:   {"join", bi_join},
		BI_CONS:   {"cons", bi_cons},
		BI_EVAL:   {"eval", bi_eval},
		BI_ADD:    {"+", arithmetic(BI_ADD)},
		BI_SUB:    {"-", arithmetic(BI_SUB)},
		BI_MUL:    {"*", arithmetic(BI_MUL)},
		BI_DIV:    {"/", arithmetic(BI_DIV)},
		BI_MOD:    {"%", arithmetic(BI_MOD)},
		BI_GT:     {">", comparison(BI_GT)},
		BI_LT:     {"<", comparison(BI_LT)},
		BI_GE:     {">=", comparison(BI_GE)},
		BI_LE:     {"<=", comparison(BI_LE)},
		BI_EQ:     {"==", equality(BI_EQ)},
		BI_NE:     {"!=", equality(BI_NE)},
		BI_IF:     {"if", bi_if},
		BI_DEF:    {"def", variable(BI_DEF)},
		BI_PUT:    {"=", variable(BI_PUT)},
		BI_LAMBDA: {`\`, bi_lambda},
		BI_ERROR:  {"error", bi_error},
		BI_PRINT:  {"print", bi_print},
	}
}

// InstallBuiltins binds every builtin under its name in env.
func InstallBuiltins(env *Environment) {
	for id := BuiltinID(0); id < numBuiltins; id++ {
		env.Put(builtinTable[id].name, Builtin(id))
	}
}

func (b Builtin) Name() string { return builtinTable[b].name }

// Call applies the builtin to already evaluated arguments. The builtin
// takes ownership of args.
func (b Builtin) Call(ctx *Context, env *Environment, args []Value) Value {
	return builtinTable[b].call(ctx, env, args)
}

// =================
// Builtin functions
// =================

// ----
// list
// ----
func bi_list(ctx *Context, env *Environment, args []Value) Value {
	return newQExpr(args...)
}

// ----
// head
// ----
func bi_head(ctx *Context, env *Environment, args []Value) Value {
	q, err := expectList("head", args)
	if err != nil {
		return err
	}
	if len(q.Cells) == 0 {
		return newError(ERR_EMPTY_LIST, "Function 'head' passed {} for argument 0.")
	}
	q.Cells = q.Cells[:1]
	return q
}

// ----
// tail
// ----
func bi_tail(ctx *Context, env *Environment, args []Value) Value {
	q, err := expectList("tail", args)
	if err != nil {
		return err
	}
	if len(q.Cells) == 0 {
		return newError(ERR_EMPTY_LIST, "Function 'tail' passed {} for argument 0.")
	}
	q.Cells = q.Cells[1:]
	return q
}

// ----
// init
// ----
func bi_init(ctx *Context, env *Environment, args []Value) Value {
	q, err := expectList("init", args)
	if err != nil {
		return err
	}
	if len(q.Cells) == 0 {
		return newError(ERR_EMPTY_LIST, "Function 'init' passed {} for argument 0.")
	}
	q.Cells = q.Cells[:len(q.Cells)-1]
	return q
}

// ---
// len
// ---
func bi_len(ctx *Context, env *Environment, args []Value) Value {
	q, err := expectList("len", args)
	if err != nil {
		return err
	}
	return Number(len(q.Cells))
}

// ----
// join
// ----
func bi_join(ctx *Context, env *Environment, args []Value) Value {
	if err := expectMinArgs("join", args, 1); err != nil {
		return err
	}
	for i := range args {
		if err := expectArgType("join", args, i, VT_QEXPR); err != nil {
			return err
		}
	}
	out := args[0].(*QExpr)
	for _, arg := range args[1:] {
		out.Cells = append(out.Cells, arg.(*QExpr).Cells...)
	}
	return out
}

// ----
// cons
// ----
func bi_cons(ctx *Context, env *Environment, args []Value) Value {
	if err := expectNArgs("cons", args, 2); err != nil {
		return err
	}
	if t := args[0].Type(); t != VT_NUMBER && t != VT_SYMBOL {
		return newError(ERR_TYPE,
			"Function 'cons' passed incorrect type for argument 0. Got %s, Expected %s or %s.",
			t, VT_NUMBER, VT_SYMBOL)
	}
	if err := expectArgType("cons", args, 1, VT_QEXPR); err != nil {
		return err
	}
	q := args[1].(*QExpr)
	cells := make([]Value, 0, len(q.Cells)+1)
	cells = append(cells, args[0])
	return newQExpr(append(cells, q.Cells...)...)
}

// ----
// eval
// ----
func bi_eval(ctx *Context, env *Environment, args []Value) Value {
	q, err := expectList("eval", args)
	if err != nil {
		return err
	}
	return ctx.Eval(env, &SExpr{Cells: q.Cells})
}

// ----------
// arithmetic
// ----------
func arithmetic(op BuiltinID) builtinFunc {
	return func(ctx *Context, env *Environment, args []Value) Value {
		name := Builtin(op).Name()
		if err := expectMinArgs(name, args, 1); err != nil {
			return err
		}
		for i := range args {
			if err := expectArgType(name, args, i, VT_NUMBER); err != nil {
				return err
			}
		}
		x := args[0].(Number)
		if op == BI_SUB && len(args) == 1 {
			return -x
		}
		for _, arg := range args[1:] {
			y := arg.(Number)
			switch op {
			case BI_ADD:
				x += y
			case BI_SUB:
				x -= y
			case BI_MUL:
				x *= y
			case BI_DIV, BI_MOD:
				if y == 0 {
					return newError(ERR_DIVISION_BY_ZERO, "Division By Zero.")
				}
				if op == BI_DIV {
					x /= y
				} else {
					x %= y
				}
			}
		}
		return x
	}
}

// ----------
// comparison
// ----------
func comparison(op BuiltinID) builtinFunc {
	return func(ctx *Context, env *Environment, args []Value) Value {
		name := Builtin(op).Name()
		if err := expectNArgs(name, args, 2); err != nil {
			return err
		}
		for i := range args {
			if err := expectArgType(name, args, i, VT_NUMBER); err != nil {
				return err
			}
		}
		x, y := args[0].(Number), args[1].(Number)
		var rv bool
		switch op {
		case BI_GT:
			rv = x > y
		case BI_LT:
			rv = x < y
		case BI_GE:
			rv = x >= y
		case BI_LE:
			rv = x <= y
		}
		return newBool(rv)
	}
}

func equality(op BuiltinID) builtinFunc {
	return func(ctx *Context, env *Environment, args []Value) Value {
		if err := expectNArgs(Builtin(op).Name(), args, 2); err != nil {
			return err
		}
		eq := Equal(args[0], args[1])
		if op == BI_NE {
			eq = !eq
		}
		return newBool(eq)
	}
}

// --
// if
// --
func bi_if(ctx *Context, env *Environment, args []Value) Value {
	if err := expectNArgs("if", args, 3); err != nil {
		return err
	}
	if err := expectArgType("if", args, 0, VT_NUMBER); err != nil {
		return err
	}
	if err := expectArgType("if", args, 1, VT_QEXPR); err != nil {
		return err
	}
	if err := expectArgType("if", args, 2, VT_QEXPR); err != nil {
		return err
	}
	branch := args[2].(*QExpr)
	if args[0].(Number) != 0 {
		branch = args[1].(*QExpr)
	}
	return ctx.Eval(env, &SExpr{Cells: branch.Cells})
}

// -------
// def / =
// -------
func variable(op BuiltinID) builtinFunc {
	return func(ctx *Context, env *Environment, args []Value) Value {
		name := Builtin(op).Name()
		if err := expectMinArgs(name, args, 1); err != nil {
			return err
		}
		if err := expectArgType(name, args, 0, VT_QEXPR); err != nil {
			return err
		}
		syms := args[0].(*QExpr)
		if err := expectSymbols(name, syms); err != nil {
			return err
		}
		values := args[1:]
		if len(syms.Cells) != len(values) {
			return newError(ERR_ARITY,
				"Function '%s' passed too many arguments for symbols. Got %d, Expected %d.",
				name, len(values), len(syms.Cells))
		}
		for i, sym := range syms.Cells {
			switch op {
			case BI_DEF:
				env.Def(string(sym.(Symbol)), values[i])
			case BI_PUT:
				env.Put(string(sym.(Symbol)), values[i])
			}
		}
		return newSExpr()
	}
}

// ------
// lambda
// ------
func bi_lambda(ctx *Context, env *Environment, args []Value) Value {
	if err := expectNArgs(`\`, args, 2); err != nil {
		return err
	}
	if err := expectArgType(`\`, args, 0, VT_QEXPR); err != nil {
		return err
	}
	if err := expectArgType(`\`, args, 1, VT_QEXPR); err != nil {
		return err
	}
	formals := args[0].(*QExpr)
	if err := expectSymbols(`\`, formals); err != nil {
		return err
	}
	return newLambda(formals, args[1].(*QExpr))
}

// -----
// error
// -----
func bi_error(ctx *Context, env *Environment, args []Value) Value {
	if err := expectNArgs("error", args, 1); err != nil {
		return err
	}
	if err := expectArgType("error", args, 0, VT_QEXPR); err != nil {
		return err
	}
	q := args[0].(*QExpr)
	words := make([]string, len(q.Cells))
	for i, cell := range q.Cells {
		words[i] = Inspect(cell)
	}
	return newError(ERR_USER, "%s", strings.Join(words, " "))
}

// -----
// print
// -----
func bi_print(ctx *Context, env *Environment, args []Value) Value {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = Inspect(arg)
	}
	fmt.Fprintln(ctx.Out, strings.Join(parts, " "))
	return newSExpr()
}

// =========
// Utilities
// =========

// expectList checks for the single q-expression argument taken by
// head, tail, init, len and eval.
func expectList(fn string, args []Value) (*QExpr, Value) {
	if err := expectNArgs(fn, args, 1); err != nil {
		return nil, err
	}
	if err := expectArgType(fn, args, 0, VT_QEXPR); err != nil {
		return nil, err
	}
	return args[0].(*QExpr), nil
}

func newBool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}
