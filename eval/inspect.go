package eval

import (
	"bytes"
	"strconv"
)

// This file implements the canonical printed form of values.

// Inspect renders v in its canonical form.
func Inspect(v Value) string {
	var buf bytes.Buffer
	inspect(&buf, v)
	return buf.String()
}

func inspect(buf *bytes.Buffer, v Value) {
	switch v := v.(type) {
	case Number:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case *Error:
		buf.WriteString("error: ")
		buf.WriteString(v.Message)
	case Symbol:
		buf.WriteString(string(v))
	case Builtin, *Lambda:
		buf.WriteString("<function>")
	case *SExpr:
		inspectCells(buf, '(', v.Cells, ')')
	case *QExpr:
		inspectCells(buf, '{', v.Cells, '}')
	}
}

func inspectCells(buf *bytes.Buffer, open byte, cells []Value, close byte) {
	buf.WriteByte(open)
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(' ')
		}
		inspect(buf, cell)
	}
	buf.WriteByte(close)
}

// =========
// Stringify
// =========

func (v Number) String() string  { return Inspect(v) }
func (v *Error) String() string  { return Inspect(v) }
func (v Symbol) String() string  { return string(v) }
func (v Builtin) String() string { return Inspect(v) }
func (v *Lambda) String() string { return Inspect(v) }
func (v *SExpr) String() string  { return Inspect(v) }
func (v *QExpr) String() string  { return Inspect(v) }

// Error makes *Error usable as a Go error by hosts that want one.
func (v *Error) Error() string { return v.Message }
