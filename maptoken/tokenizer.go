// SPDX-License-Identifier: GPL-2.0-or-later

// Package maptoken splits .map text into tokens.
package maptoken

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

type item struct {
	tok Token
	err error
}

type stateFn func(*Tokenizer) stateFn

type Tokenizer struct {
	input string
	start int
	pos   int
	width int
	// line and column of pos
	line, col int
	// line and column of start
	startLine, startCol int
	// line and column before the last next
	prevLine, prevCol int

	items   chan item
	state   stateFn
	err     error
	skipEOL bool
}

func New(input string) *Tokenizer {
	return &Tokenizer{
		input:     input,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
		items:     make(chan item, 2),
		state:     lexAction,
	}
}

// SetSkipEOL controls whether line ends are returned as EOL tokens.
func (l *Tokenizer) SetSkipEOL(skip bool) {
	l.skipEOL = skip
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF tokens, after an error it keeps returning the error.
func (l *Tokenizer) Next() (Token, error) {
	for {
		t, err := l.nextItem()
		if err != nil {
			return Token{}, err
		}
		if t.Kind == EOL && l.skipEOL {
			continue
		}
		return t, nil
	}
}

func (l *Tokenizer) nextItem() (Token, error) {
	for {
		select {
		case i := <-l.items:
			return i.tok, i.err
		default:
			if l.state == nil {
				if l.err != nil {
					return Token{}, l.err
				}
				return Token{Kind: EOF, Line: l.line, Column: l.col}, nil
			}
			l.state = l.state(l)
		}
	}
}

func (l *Tokenizer) emitText(k Kind, text string) {
	l.items <- item{tok: Token{
		Kind:   k,
		Text:   text,
		Line:   l.startLine,
		Column: l.startCol,
	}}
	l.ignore()
}

func (l *Tokenizer) emit(k Kind) {
	l.emitText(k, l.input[l.start:l.pos])
}

func (l *Tokenizer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	l.prevLine, l.prevCol = l.line, l.col
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Tokenizer) ignore() {
	l.start = l.pos
	l.startLine, l.startCol = l.line, l.col
}

// backup can only be called once per call of next.
func (l *Tokenizer) backup() {
	if l.width == 0 {
		return
	}
	l.pos -= l.width
	l.line, l.col = l.prevLine, l.prevCol
}

func (l *Tokenizer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Tokenizer) errorf(format string, args ...interface{}) stateFn {
	l.err = &TokenizerError{
		Line:   l.startLine,
		Column: l.startCol,
		Msg:    fmt.Sprintf(format, args...),
	}
	l.items <- item{err: l.err}
	return nil
}

func lexAction(l *Tokenizer) stateFn {
	switch r := l.next(); {
	case r == eof:
		l.emit(EOF)
		return nil
	case r == '\n':
		l.emit(EOL)
		return lexAction
	case isSpace(r):
		return lexSpace
	case r == '"':
		return lexQuote
	case r == '/' && l.peek() == '/':
		return lexComment
	case r == '(':
		l.emit(OParenthesis)
	case r == ')':
		l.emit(CParenthesis)
	case r == '[':
		l.emit(OBracket)
	case r == ']':
		l.emit(CBracket)
	case r == '{' || r == '}':
		// texture names like {blue start with a brace
		if p := l.peek(); p != eof && isWordRune(p) && !strings.ContainsRune("(){}[]\"", p) {
			return lexWord
		}
		if r == '{' {
			l.emit(OBrace)
		} else {
			l.emit(CBrace)
		}
	case r == utf8.RuneError && l.width == 1:
		return l.errorf("invalid UTF-8 encoding")
	case !isWordRune(r):
		return l.errorf("unexpected character %#U", r)
	default:
		return lexWord
	}
	return lexAction
}

func lexSpace(l *Tokenizer) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.ignore()
	return lexAction
}

func lexComment(l *Tokenizer) stateFn {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if r == '\n' {
			l.backup()
			break
		}
	}
	l.emitText(Comment, strings.TrimSpace(l.input[l.start+2:l.pos]))
	return lexAction
}

func lexQuote(l *Tokenizer) stateFn {
Loop:
	for {
		switch l.next() {
		case '"':
			break Loop
		case '\\':
			if l.peek() == '"' {
				l.next()
			}
		case eof, '\n':
			return l.errorf("unterminated string")
		}
	}
	s := l.input[l.start+1 : l.pos-1]
	l.emitText(String, strings.ReplaceAll(s, `\"`, `"`))
	return lexAction
}

func lexWord(l *Tokenizer) stateFn {
	for {
		r := l.next()
		if r == eof || !isWordRune(r) || strings.ContainsRune(")]\"", r) {
			l.backup()
			break
		}
	}
	w := l.input[l.start:l.pos]
	l.emitText(classify(w), w)
	return lexAction
}

// classify tells numbers from strings. A number is an optional sign,
// digits with an optional fraction and an optional exponent. Only
// numbers with fraction or exponent are decimals.
func classify(w string) Kind {
	i := 0
	if i < len(w) && (w[i] == '-' || w[i] == '+') {
		i++
	}
	digits := 0
	for i < len(w) && isDigit(w[i]) {
		i++
		digits++
	}
	decimal := false
	if i < len(w) && w[i] == '.' {
		decimal = true
		i++
		for i < len(w) && isDigit(w[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return String
	}
	if i < len(w) && (w[i] == 'e' || w[i] == 'E') {
		decimal = true
		i++
		if i < len(w) && (w[i] == '-' || w[i] == '+') {
			i++
		}
		exp := 0
		for i < len(w) && isDigit(w[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return String
		}
	}
	if i != len(w) {
		return String
	}
	if decimal {
		return Decimal
	}
	return Integer
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\v'
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError || r == 0x7f {
		return false
	}
	return r > ' ' && !unicode.IsControl(r)
}
