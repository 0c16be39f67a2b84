package eval

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(+ 1 2 3)", "6"},
		{"(- 10 4 3)", "3"},
		{"(- 7)", "-7"},
		{"(* 2 3 4)", "24"},
		{"(/ 7 2)", "3"},
		{"(/ -7 2)", "-3"},
		{"(/ 7 -2)", "-3"},
		{"(% 7 3)", "1"},
		{"(% -7 3)", "-1"},
		{"(+ 5)", "5"},
		{"(/ 0 5)", "0"},
		{"(/ 100 10 5)", "2"},
	}
	for i, tt := range tests {
		rv := run(t, NewInteractiveContext(), tt.input)
		if got := Inspect(rv); got != tt.expected {
			t.Errorf("tests[%d] (%s): expected %s, got %s", i, tt.input, tt.expected, got)
		}
	}
}

func TestArithmeticErrors(t *testing.T) {
	testEvalError(t, ERR_DIVISION_BY_ZERO, "(/ 10 0)")
	testEvalError(t, ERR_DIVISION_BY_ZERO, "(/ 10 2 0 5)")
	testEvalError(t, ERR_DIVISION_BY_ZERO, "(% 1 0)")
	testEvalError(t, ERR_TYPE, "(+ 1 {2})")
	testEvalError(t, ERR_TYPE, "(* {} 1)")
	testEvalError(t, ERR_TYPE, "(- 1 head)")

	rv := run(t, NewInteractiveContext(), "(+ 1 {2})")
	if got := Inspect(rv); got != "error: Function '+' passed incorrect type for argument 1. Got Q-Expression, Expected Number." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestDivisionProperty(t *testing.T) {
	for x := int64(-20); x <= 20; x++ {
		for y := int64(-7); y <= 7; y++ {
			rv := run(t, NewInteractiveContext(), fmt.Sprintf("(/ %d %d)", x, y))
			if y == 0 {
				if err, ok := rv.(*Error); !ok || err.Kind != ERR_DIVISION_BY_ZERO {
					t.Fatalf("(/ %d 0): expected DivisionByZero, got %s", x, Inspect(rv))
				}
				continue
			}
			if !Equal(rv, Number(x/y)) {
				t.Fatalf("(/ %d %d): expected %d, got %s", x, y, x/y, Inspect(rv))
			}
		}
	}
}

func TestListBuiltins(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(list 1 2 3)", "{1 2 3}"},
		{"(list)", "<function>"},
		{"(list (+ 1 1) x)", "error: unbound symbol 'x'"},
		{"(head {1 2 3})", "{1}"},
		{"(head {{a b} c})", "{{a b}}"},
		{"(tail {1 2 3})", "{2 3}"},
		{"(tail {1})", "{}"},
		{"(init {1 2 3})", "{1 2}"},
		{"(init {1})", "{}"},
		{"(len {})", "0"},
		{"(len {1 {2 3} 4})", "3"},
		{"(join {1} {2 3} {} {4})", "{1 2 3 4}"},
		{"(join {a})", "{a}"},
		{"(cons 1 {2 3})", "{1 2 3}"},
		{"(cons 1 {a})", "{1 a}"},
		{"(eval {+ 1 2})", "3"},
		{"(eval {head (list 1 2 3)})", "{1}"},
		{"(eval (tail {tail tail {5 6 7}}))", "{6 7}"},
		{"(eval {})", "()"},
	}
	for i, tt := range tests {
		rv := run(t, NewInteractiveContext(), tt.input)
		if got := Inspect(rv); got != tt.expected {
			t.Errorf("tests[%d] (%s): expected %s, got %s", i, tt.input, tt.expected, got)
		}
	}
}

func TestListBuiltinErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"(head {})", ERR_EMPTY_LIST},
		{"(tail {})", ERR_EMPTY_LIST},
		{"(init {})", ERR_EMPTY_LIST},
		{"(head 1)", ERR_TYPE},
		{"(tail (+ 1 2))", ERR_TYPE},
		{"(len 1)", ERR_TYPE},
		{"(eval 1)", ERR_TYPE},
		{"(head {1} {2})", ERR_ARITY},
		{"(len {1} {2})", ERR_ARITY},
		{"(join {1} 2)", ERR_TYPE},
		{"(cons {1} {2})", ERR_TYPE},
		{"(cons 1 2)", ERR_TYPE},
		{"(cons 1)", ERR_ARITY},
		{"(cons 1 {} {})", ERR_ARITY},
	}
	for i, tt := range tests {
		rv := run(t, NewInteractiveContext(), tt.input)
		err, ok := rv.(*Error)
		if !ok {
			t.Errorf("tests[%d] (%s): expected %s, got %s", i, tt.input, tt.kind, Inspect(rv))
			continue
		}
		if err.Kind != tt.kind {
			t.Errorf("tests[%d] (%s): expected %s, got %s (%s)", i, tt.input, tt.kind, err.Kind, err.Message)
		}
	}
	rv := run(t, NewInteractiveContext(), "(head {})")
	if msg := rv.(*Error).Message; !strings.Contains(msg, "{}") {
		t.Errorf("expected the message to mention the empty list, got %q", msg)
	}
}

func TestListLengthProperties(t *testing.T) {
	for l := 0; l <= 5; l++ {
		items := make([]string, l)
		for i := range items {
			items[i] = fmt.Sprint(i + 1)
		}
		q := "{" + strings.Join(items, " ") + "}"

		if got := Inspect(run(t, NewInteractiveContext(), "(len "+q+")")); got != fmt.Sprint(l) {
			t.Errorf("len %s: expected %d, got %s", q, l, got)
		}
		for _, fn := range []string{"tail", "init"} {
			rv := run(t, NewInteractiveContext(), "(len ("+fn+" "+q+"))")
			if l == 0 {
				if !isError(rv) {
					t.Errorf("%s %s: expected an error, got %s", fn, q, Inspect(rv))
				}
				continue
			}
			if got := Inspect(rv); got != fmt.Sprint(l-1) {
				t.Errorf("%s %s: expected length %d, got %s", fn, q, l-1, got)
			}
		}
		rv := run(t, NewInteractiveContext(), "(head "+q+")")
		if l == 0 {
			if !isError(rv) {
				t.Errorf("head {}: expected an error, got %s", Inspect(rv))
			}
			continue
		}
		if got := Inspect(rv); got != "{1}" {
			t.Errorf("head %s: expected {1}, got %s", q, got)
		}
	}
}

func TestJoinProperties(t *testing.T) {
	lists := []string{"{}", "{1}", "{1 {2} a}", "{x y}"}
	for _, a := range lists {
		// identity
		for _, expr := range []string{"(join {} " + a + ")", "(join " + a + " {})"} {
			if got := Inspect(run(t, NewInteractiveContext(), expr)); got != a {
				t.Errorf("%s: expected %s, got %s", expr, a, got)
			}
		}
		// associativity
		for _, b := range lists {
			for _, c := range lists {
				left := Inspect(run(t, NewInteractiveContext(), fmt.Sprintf("(join (join %s %s) %s)", a, b, c)))
				right := Inspect(run(t, NewInteractiveContext(), fmt.Sprintf("(join %s (join %s %s))", a, b, c)))
				if left != right {
					t.Errorf("join is not associative for %s %s %s: %s != %s", a, b, c, left, right)
				}
			}
		}
	}
}

func TestConsProperties(t *testing.T) {
	for _, x := range []Value{Number(0), Number(-3), Symbol("sym")} {
		for _, q := range []string{"{}", "{1}", "{a {b} c}"} {
			ic := NewInteractiveContext()
			ic.Env().Put("x", x)
			if got := Inspect(run(t, ic, "(tail (cons x "+q+"))")); got != q {
				t.Errorf("tail of cons %s %s: expected %s, got %s", x, q, q, got)
			}
			if got := Inspect(run(t, ic, "(head (cons x "+q+"))")); got != "{"+Inspect(x)+"}" {
				t.Errorf("head of cons %s %s: expected {%s}, got %s", x, q, x, got)
			}
		}
	}
}

func TestComparison(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(> 2 1)", "1"},
		{"(> 1 2)", "0"},
		{"(< 1 2)", "1"},
		{"(>= 2 2)", "1"},
		{"(<= 3 2)", "0"},
		{"(== 1 1)", "1"},
		{"(== {1 {a}} {1 {a}})", "1"},
		{"(== {1} {2})", "0"},
		{"(== 1 {1})", "0"},
		{"(!= head tail)", "1"},
		{"(== + +)", "1"},
		{`(== (\ {x} {x}) (\ {x} {x}))`, "1"},
		{`(== ((\ {a b} {+ a b}) 1) ((\ {a b} {+ a b}) 2))`, "0"},
		{`(== ((\ {a b} {+ a b}) 1) ((\ {a b} {+ a b}) 1))`, "1"},
		{`(!= ((\ {a b} {+ a b}) 1) (\ {b} {+ a b}))`, "1"},
		{"(if 1 {+ 1 1} {error {nope}})", "2"},
		{"(if (== 1 2) {1} {+ 2 2})", "4"},
		{"(if 0 {1} {})", "()"},
	}
	for i, tt := range tests {
		rv := run(t, NewInteractiveContext(), tt.input)
		if got := Inspect(rv); got != tt.expected {
			t.Errorf("tests[%d] (%s): expected %s, got %s", i, tt.input, tt.expected, got)
		}
	}
	testEval(t, "0", `(def {add} (\ {a b} {+ a b}))`, "(== (add 1) (add 2))")
	testEval(t, "1", `(def {add} (\ {a b} {+ a b}))`, "(== (add 1) (add 1))")
	testEvalError(t, ERR_TYPE, "(> 1 {})")
	testEvalError(t, ERR_ARITY, "(< 1 2 3)")
	testEvalError(t, ERR_ARITY, "(== 1)")
	testEvalError(t, ERR_TYPE, "(if {1} {1} {2})")
	testEvalError(t, ERR_TYPE, "(if 1 1 {2})")
	testEvalError(t, ERR_ARITY, "(if 1 {1})")
}

func TestErrorBuiltin(t *testing.T) {
	testEval(t, "error: boom", "(error {boom})")
	testEval(t, "error: bad input 42 {x}", "(error {bad input 42 {x}})")
	testEvalError(t, ERR_USER, "(error {boom})")
	testEvalError(t, ERR_TYPE, "(error 1)")
	testEvalError(t, ERR_ARITY, "(error {a} {b})")
	// user errors short-circuit like any other
	testEvalError(t, ERR_USER, "(+ 1 (error {boom}) (/ 1 0))")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	ic := NewInteractiveContext()
	ic.SetOutput(&buf)
	rv := run(t, ic, "(print 1 {a (b)} head)")
	if got := Inspect(rv); got != "()" {
		t.Errorf("expected (), got %s", got)
	}
	if got := buf.String(); got != "1 {a (b)} <function>\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestBuiltinsInstalled(t *testing.T) {
	env := NewGlobalEnvironment()
	for _, name := range []string{"list", "head", "tail", "init", "len", "join", "cons", "eval",
		"+", "-", "*", "/", "%", "def", "=", `\`, "if", "==", "!=", ">", "<", ">=", "<=", "error", "print"} {
		v := env.Get(name)
		b, ok := v.(Builtin)
		if !ok {
			t.Errorf("%s: expected a builtin, got %s", name, Inspect(v))
			continue
		}
		if b.Name() != name {
			t.Errorf("%s: builtin reports name %s", name, b.Name())
		}
	}
	if env.Len() != int(numBuiltins) {
		t.Errorf("expected %d bindings, got %d", numBuiltins, env.Len())
	}
}

func TestBuiltinNamesMatchExactly(t *testing.T) {
	// single characters of an operator name are not that operator
	for _, sym := range []string{"x", "+-", "*/", "de"} {
		testEvalError(t, ERR_UNBOUND_SYMBOL, "("+sym+" 1 2)")
	}
}
