// SPDX-License-Identifier: GPL-2.0-or-later

package maptoken

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a bit set so a grammar rule can accept several kinds at once.
type Kind uint32

const (
	Integer      Kind = 1 << iota // integer number
	Decimal                       // decimal number
	String                        // quoted or bare string
	OParenthesis                  // (
	CParenthesis                  // )
	OBrace                        // {
	CBrace                        // }
	OBracket                      // [
	CBracket                      // ]
	Comment                       // line comment starting with //
	EOF                           // end of file
	EOL                           // end of line

	Number = Integer | Decimal
)

var kindNames = []struct {
	k Kind
	n string
}{
	{Number, "number"},
	{Integer, "integer"},
	{Decimal, "decimal"},
	{String, "string"},
	{OParenthesis, "'('"},
	{CParenthesis, "')'"},
	{OBrace, "'{'"},
	{CBrace, "'}'"},
	{OBracket, "'['"},
	{CBracket, "']'"},
	{Comment, "comment"},
	{EOF, "end of file"},
	{EOL, "end of line"},
}

func (k Kind) String() string {
	var n []string
	for _, kn := range kindNames {
		if k&kn.k == kn.k {
			n = append(n, kn.n)
			k &^= kn.k
		}
	}
	if len(n) == 0 {
		return "nothing"
	}
	return strings.Join(n, " or ")
}

type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// Is reports whether the token is of one of the kinds in k.
func (t Token) Is(k Kind) bool {
	return t.Kind&k != 0
}

func (t Token) Float() (float64, error) {
	return strconv.ParseFloat(t.Text, 64)
}

func (t Token) Int() (int, error) {
	i, err := strconv.ParseInt(t.Text, 10, 0)
	return int(i), err
}

func (t Token) String() string {
	switch t.Kind {
	case EOF, EOL:
		return t.Kind.String()
	}
	if len(t.Text) > 16 {
		return fmt.Sprintf("%.16q...", t.Text)
	}
	return fmt.Sprintf("%q", t.Text)
}

// TokenizerError is returned for input the tokenizer cannot split into
// tokens. It is not recoverable.
type TokenizerError struct {
	Line   int
	Column int
	Msg    string
}

func (e *TokenizerError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}
