// SPDX-License-Identifier: GPL-2.0-or-later

package maptoken

import (
	"errors"
	"testing"
)

func collect(t *testing.T, in string, skipEOL bool) []Token {
	t.Helper()
	l := New(in)
	l.SetSkipEOL(skipEOL)
	var ts []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next() on %q failed: %v", in, err)
		}
		ts = append(ts, tok)
		if tok.Kind == EOF {
			return ts
		}
	}
}

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		in        string
		wantKinds []Kind
		wantTexts []string
	}{
		{
			in:        `{ "classname" "worldspawn" }`,
			wantKinds: []Kind{OBrace, String, String, CBrace, EOF},
			wantTexts: []string{"{", "classname", "worldspawn", "}", ""},
		},
		{
			in:        `( 0 -1.5 2e3 ) tex`,
			wantKinds: []Kind{OParenthesis, Integer, Decimal, Decimal, CParenthesis, String, EOF},
			wantTexts: []string{"(", "0", "-1.5", "2e3", ")", "tex", ""},
		},
		{
			in:        `[ 1 0 0 0.5]`,
			wantKinds: []Kind{OBracket, Integer, Integer, Integer, Decimal, CBracket, EOF},
			wantTexts: []string{"[", "1", "0", "0", "0.5", "]", ""},
		},
		{
			in:        `(1 2 3)`,
			wantKinds: []Kind{OParenthesis, Integer, Integer, Integer, CParenthesis, EOF},
			wantTexts: []string{"(", "1", "2", "3", ")", ""},
		},
		{
			in:        `{blue *water +0button e1u1/floor 1a -`,
			wantKinds: []Kind{String, String, String, String, String, String, EOF},
			wantTexts: []string{"{blue", "*water", "+0button", "e1u1/floor", "1a", "-", ""},
		},
		{
			in:        "// Game: Quake\n{\n}",
			wantKinds: []Kind{Comment, OBrace, CBrace, EOF},
			wantTexts: []string{"Game: Quake", "{", "}", ""},
		},
		{
			in:        `"say \"hi\"" "a b"`,
			wantKinds: []Kind{String, String, EOF},
			wantTexts: []string{`say "hi"`, "a b", ""},
		},
		{
			in:        "\t.5 5. +3 1E-4\r\n",
			wantKinds: []Kind{Decimal, Decimal, Integer, Decimal, EOF},
			wantTexts: []string{".5", "5.", "+3", "1E-4", ""},
		},
	} {
		ts := collect(t, tc.in, true)
		if len(ts) != len(tc.wantKinds) {
			t.Errorf("tokenize(%q) got %d tokens %v, want %d", tc.in, len(ts), ts, len(tc.wantKinds))
			continue
		}
		for i, tok := range ts {
			if tok.Kind != tc.wantKinds[i] || tok.Text != tc.wantTexts[i] {
				t.Errorf("tokenize(%q)[%d] = %v %q, want %v %q", tc.in, i, tok.Kind, tok.Text, tc.wantKinds[i], tc.wantTexts[i])
			}
		}
	}
}

func TestTokenizeEOL(t *testing.T) {
	in := "( 0 0 0 ) tex 0 0 0 1 1\n}\n"
	ts := collect(t, in, false)
	var kinds []Kind
	for _, tok := range ts {
		kinds = append(kinds, tok.Kind)
	}
	want := []Kind{OParenthesis, Integer, Integer, Integer, CParenthesis, String,
		Integer, Integer, Integer, Integer, Integer, EOL, CBrace, EOL, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind[%d] = %v want %v", i, kinds[i], want[i])
		}
	}
}

func TestTokenPositions(t *testing.T) {
	ts := collect(t, "{\n  \"a\" ( 12 )\n}", true)
	want := [][2]int{{1, 1}, {2, 3}, {2, 7}, {2, 9}, {2, 12}, {3, 1}, {3, 2}}
	if len(ts) != len(want) {
		t.Fatalf("got %d tokens want %d", len(ts), len(want))
	}
	for i, tok := range ts {
		if tok.Line != want[i][0] || tok.Column != want[i][1] {
			t.Errorf("token %v at %d:%d want %d:%d", tok, tok.Line, tok.Column, want[i][0], want[i][1])
		}
	}
}

func TestTokenizerErrors(t *testing.T) {
	for _, tc := range []struct {
		in         string
		line, col  int
		afterValid int
	}{
		{"{ \"open\n}", 1, 3, 1},
		{"( 1 \x01 )", 1, 5, 2},
		{"ok \"never closed", 1, 4, 1},
		{"a\n\xff", 2, 1, 1},
	} {
		l := New(tc.in)
		l.SetSkipEOL(true)
		var err error
		valid := 0
		for {
			var tok Token
			tok, err = l.Next()
			if err != nil || tok.Kind == EOF {
				break
			}
			valid++
		}
		var te *TokenizerError
		if !errors.As(err, &te) {
			t.Errorf("tokenize(%q) err = %v want TokenizerError", tc.in, err)
			continue
		}
		if te.Line != tc.line || te.Column != tc.col {
			t.Errorf("tokenize(%q) error at %d:%d want %d:%d", tc.in, te.Line, te.Column, tc.line, tc.col)
		}
		if valid != tc.afterValid {
			t.Errorf("tokenize(%q) got %d tokens before the error, want %d", tc.in, valid, tc.afterValid)
		}
		if _, err2 := l.Next(); err2 != err {
			t.Errorf("tokenize(%q) error is not sticky: %v", tc.in, err2)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, tc := range []struct {
		k    Kind
		want string
	}{
		{Integer, "integer"},
		{Number, "number"},
		{Number | String, "number or string"},
		{OParenthesis | CBrace, "'(' or '}'"},
		{0, "nothing"},
	} {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q want %q", tc.k, got, tc.want)
		}
	}
}
