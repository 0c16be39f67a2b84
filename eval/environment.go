package eval

import "sort"

type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment returns an empty root scope.
func NewEnvironment() *Environment { return newEnvironment(nil) }

// NewGlobalEnvironment returns a root scope with every builtin installed.
func NewGlobalEnvironment() *Environment {
	env := NewEnvironment()
	InstallBuiltins(env)
	return env
}

func newEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: map[string]Value{},
		outer: outer,
	}
}

// Outer returns the enclosing scope, or nil for a root scope.
func (e *Environment) Outer() *Environment { return e.outer }

func (e *Environment) root() *Environment {
	for e.outer != nil {
		e = e.outer
	}
	return e
}

// lookup walks the chain from e outwards and returns the stored value
// without copying it.
func (e *Environment) lookup(name string) (Value, bool) {
	for ; e != nil; e = e.outer {
		if v, ok := e.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Get returns a copy of the value bound to name in the nearest scope,
// or an unbound symbol error.
func (e *Environment) Get(name string) Value {
	v, ok := e.lookup(name)
	if !ok {
		return newError(ERR_UNBOUND_SYMBOL, "unbound symbol '%s'", name)
	}
	return Copy(v)
}

// Put binds a copy of v to name in this scope, replacing any previous
// binding of name here.
func (e *Environment) Put(name string, v Value) {
	e.store[name] = Copy(v)
}

// Def binds a copy of v to name in the root scope.
func (e *Environment) Def(name string, v Value) {
	e.root().Put(name, v)
}

// Copy returns a scope with copies of e's bindings and the same outer scope.
func (e *Environment) Copy() *Environment {
	c := newEnvironment(e.outer)
	for name, v := range e.store {
		c.store[name] = Copy(v)
	}
	return c
}

// Names returns the names bound directly in e, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings in e, ignoring outer scopes.
func (e *Environment) Len() int { return len(e.store) }
