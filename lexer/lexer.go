package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

//go:generate stringer -type=TokenType
type TokenType uint8

const (
	_ = TokenType(iota)
	// delimiters
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	// atoms
	NUMBER
	SYMBOL
	// meta
	EOF
)

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // int64 for NUMBER tokens
	Line    int
	Column  int
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

type Error struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

func (e *Error) Error() string { return e.String() }
func (e *Error) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

// maxErrors is the number of errors after which scanning gives up.
const maxErrors = 10

type Lexer struct {
	Filename string  // filename
	source   string  // the complete source code
	Tokens   []Token // list of tokens produced
	Errors   []error // list of lexer errors, all *Error
	current  int     // where are we in the input?
	line     int     // line and column positions
	column   int     // NB: column position is in terms of runes
	start    int     // the first char of the lexeme being scanned
	startLn  int     // starting line number
	startCol int     // starting col number
	stop     bool    // whether we have met a fatal error and cannot advance any more
}

func New(filename string, source string) *Lexer {
	return &Lexer{
		Filename: filename,
		source:   source,
		Tokens:   []Token{},
		line:     1,
		column:   1,
		startLn:  1,
		startCol: 1,
	}
}

// utils

// isAtEnd lets us know if we've reached the end of the input.
func (l *Lexer) isAtEnd() bool { return l.current >= len(l.source) }

// advance consumes one rune and returns the consumed rune.
// current is incremented by the width of the returned rune.
func (l *Lexer) advance() rune {
	r, w := utf8.DecodeRuneInString(l.source[l.current:])
	if r == utf8.RuneError && w <= 1 {
		l.error("invalid utf8 input at byte %d", l.current)
		l.stop = true
	}
	l.current += w
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// peek is the same as advance, but does not advance .current.
func (l *Lexer) peek() rune {
	if l.stop || l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

// public api, actual lexing

func (l *Lexer) ScanTokens() {
	for !l.stop && !l.isAtEnd() && len(l.Errors) < maxErrors {
		l.start = l.current
		l.scanToken()
	}
	l.Tokens = append(l.Tokens, Token{EOF, "", nil, l.line, l.column})
}

func (l *Lexer) scanToken() {
	ch := l.advance()
	if l.stop {
		// invalid utf8 char
		return
	}
	switch ch {
	// Ignore whitespace
	case ' ', '\t', '\r', '\n':
		for isWhiteSpace(l.peek()) {
			l.advance()
		}
		l.ignore()
	case ';':
		for l.peek() != '\n' && !l.stop && !l.isAtEnd() {
			l.advance()
		}
		l.ignore()
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case '{':
		l.emit(LEFT_BRACE)
	case '}':
		l.emit(RIGHT_BRACE)
	default:
		if isSymbol(ch) {
			l.lexAtom()
		} else {
			l.error("unexpected character %U %q", ch, ch)
			l.ignore()
		}
	}
}

// lexAtom scans a maximal run of symbol characters and then decides
// whether it spells a number.
func (l *Lexer) lexAtom() {
	for isSymbol(l.peek()) {
		l.advance()
	}
	word := l.source[l.start:l.current]
	if !isNumber(word) {
		l.emitLiteral(SYMBOL, word)
		return
	}
	num, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		l.error("invalid number %s", word)
		l.ignore()
		return
	}
	l.emitLiteral(NUMBER, num)
}

// ignore ignores the currently scanned lexeme
func (l *Lexer) ignore() {
	l.start = l.current
	l.startLn = l.line
	l.startCol = l.column
}

func (l *Lexer) emit(typ TokenType) { l.emitLiteral(typ, nil) }
func (l *Lexer) emitLiteral(typ TokenType, lit interface{}) {
	l.Tokens = append(l.Tokens, Token{
		Type:    typ,
		Lexeme:  l.source[l.start:l.current],
		Literal: lit,
		Line:    l.startLn,
		Column:  l.startCol,
	})
	l.start = l.current
	l.startLn = l.line
	l.startCol = l.column
}

func (l *Lexer) error(s string, args ...interface{}) {
	l.Errors = append(l.Errors, &Error{
		Filename: l.Filename,
		Line:     l.startLn,
		Column:   l.startCol,
		Message:  fmt.Sprintf(s, args...),
	})
}

// isNumber reports whether word matches -?[0-9]+
func isNumber(word string) bool {
	if len(word) > 0 && word[0] == '-' {
		word = word[1:]
	}
	if len(word) == 0 {
		return false
	}
	for _, ch := range word {
		if !isDigit(ch) {
			return false
		}
	}
	return true
}

func isWhiteSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
func isAlpha(ch rune) bool      { return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isDigit(ch rune) bool      { return '0' <= ch && ch <= '9' }
func isSymbol(ch rune) bool {
	if isAlpha(ch) || isDigit(ch) {
		return true
	}
	switch ch {
	case '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&', '%':
		return true
	}
	return false
}
