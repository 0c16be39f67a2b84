package eval

import (
	"io"
	"os"
)

// DefaultMaxDepth bounds how deeply Eval may recurse before giving up
// with a RecursionLimit error.
const DefaultMaxDepth = 10000

type Context struct {
	// Out receives the output of print.
	Out io.Writer
	// MaxDepth is the deepest Eval nesting allowed; <= 0 means unbounded.
	MaxDepth int
	// how deep we currently are
	depth int
}

func NewContext() *Context {
	return &Context{
		Out:      os.Stdout,
		MaxDepth: DefaultMaxDepth,
	}
}

// Eval reduces v to its normal form in env. It consumes v: callers must
// not evaluate the same value twice, copy it instead.
func (ctx *Context) Eval(env *Environment, v Value) Value {
	if ctx.MaxDepth > 0 && ctx.depth >= ctx.MaxDepth {
		return newError(ERR_RECURSION_LIMIT, "maximum recursion depth (%d) exceeded", ctx.MaxDepth)
	}
	ctx.depth++
	defer func() { ctx.depth-- }()

	switch v := v.(type) {
	case Symbol:
		return env.Get(string(v))
	case *SExpr:
		return ctx.evalSExpr(env, v)
	}
	return v
}

func (ctx *Context) evalSExpr(env *Environment, v *SExpr) Value {
	cells := make([]Value, 0, len(v.Cells))
	for _, cell := range v.Cells {
		rv := ctx.Eval(env, cell)
		if isError(rv) {
			return rv
		}
		cells = append(cells, rv)
	}
	switch len(cells) {
	case 0:
		return v
	case 1:
		return cells[0]
	}
	return ctx.call(env, cells[0], cells[1:])
}

// ==============
// Function Calls
// ==============

func (ctx *Context) call(env *Environment, callee Value, args []Value) Value {
	if !isFunction(callee) {
		return newError(ERR_NOT_A_FUNCTION,
			"S-Expression starts with incorrect type. Got %s, Expected %s.",
			callee.Type(), VT_LAMBDA)
	}
	if b, ok := callee.(Builtin); ok {
		return b.Call(ctx, env, args)
	}
	return callee.(*Lambda).Call(ctx, env, args)
}

// Call binds args to the lambda's formals in order. With formals left
// over the result is a new lambda waiting for the rest; once every
// formal is bound the body runs in the bindings, chained to env, the
// scope of the caller.
func (f *Lambda) Call(ctx *Context, env *Environment, args []Value) Value {
	fn := f.Copy()
	given, total := len(args), len(fn.Formals.Cells)
	for _, arg := range args {
		if len(fn.Formals.Cells) == 0 {
			return newError(ERR_ARITY,
				"Function passed too many arguments. Got %d, Expected %d.",
				given, total)
		}
		sym := fn.Formals.Cells[0].(Symbol)
		fn.Formals.Cells = fn.Formals.Cells[1:]
		fn.Env.Put(string(sym), arg)
	}
	if len(fn.Formals.Cells) > 0 {
		return fn
	}
	fn.Env.outer = env
	return ctx.Eval(fn.Env, &SExpr{Cells: fn.Body.Cells})
}
