package lexer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple expr", "expr: a;", []string{"expr", ":", "a", ";"}},
		{"brackets and commas", "expr: [expr: 'a', 'b';];", []string{"expr", ":", "[", "expr", ":", "a", ",", "b", ";", "]", ";"}},
		{"double quoted", `expr: "1";`, []string{"expr", ":", "1", ";"}},
		{"empty literal", `expr: "";`, []string{"expr", ":", "", ";"}},
		{"escaped backslash", `expr: '\\d';`, []string{"expr", ":", `\d`, ";"}},
		{"whitespace collapses", "expr:   a   ;", []string{"expr", ":", "a", ";"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]string, len(toks))
			for i, tok := range toks {
				got[i] = tok.Text
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	if _, err := Tokenize(`expr: 'a;`); err == nil {
		t.Fatal("expected an error for an unterminated quote")
	}
}
