package eval

import (
	"fmt"
	"io"
	"os"

	"alisp/lexer"
	"alisp/parser"
)

// InteractiveContext is one read-evaluate session: a global environment
// with the builtins installed and the Context evaluating against it.
type InteractiveContext struct {
	Filename string
	ctx      *Context
	env      *Environment
}

func NewInteractiveContext() *InteractiveContext {
	return &InteractiveContext{
		Filename: "<stdin>",
		ctx:      NewContext(),
		env:      NewGlobalEnvironment(),
	}
}

func (ic *InteractiveContext) Context() *Context     { return ic.ctx }
func (ic *InteractiveContext) Env() *Environment     { return ic.env }
func (ic *InteractiveContext) SetOutput(w io.Writer) { ic.ctx.Out = w }

// Names returns every name bound in the global scope.
func (ic *InteractiveContext) Names() []string { return ic.env.Names() }

// Parse lexes and parses input, returning the errors of the first stage
// that failed.
func (ic *InteractiveContext) Parse(filename, input string) (*parser.Program, []error) {
	l := lexer.New(filename, input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		return nil, l.Errors
	}
	p := parser.New(filename, l.Tokens)
	program := p.Parse()
	if len(p.Errors) != 0 {
		return nil, p.Errors
	}
	return program, nil
}

// Run evaluates a line of input as a single s-expression, so `+ 1 2`
// and `(+ 1 2)` give the same result.
func (ic *InteractiveContext) Run(input string) (Value, []error) {
	program, errs := ic.Parse(ic.Filename, input)
	if errs != nil {
		return nil, errs
	}
	return ic.ctx.Eval(ic.env, Read(program)), nil
}

// RunSource evaluates every top-level expression of source on its own
// and returns their results in order. Error values do not stop the
// remaining expressions.
func (ic *InteractiveContext) RunSource(filename, source string) ([]Value, []error) {
	program, errs := ic.Parse(filename, source)
	if errs != nil {
		return nil, errs
	}
	results := make([]Value, 0, len(program.Exprs))
	for _, expr := range program.Exprs {
		results = append(results, ic.ctx.Eval(ic.env, Read(expr)))
	}
	return results, nil
}

// RunFile reads filename and evaluates it with RunSource.
func (ic *InteractiveContext) RunFile(filename string) ([]Value, []error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, []error{fmt.Errorf("load %s: %w", filename, err)}
	}
	return ic.RunSource(filename, string(source))
}
