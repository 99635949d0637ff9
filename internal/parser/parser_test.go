package parser

import (
	"testing"

	"github.com/funvibe/regexeze/internal/diagnostics"
)

func TestTranslateValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", `expr: a;`, `(a)`},
		{"any char zero or more", `expr: any_char for zero_or_more;`, `(.)*`},
		{"any char zero or more not greedy", `expr: any_char for zero_or_more not_greedy;`, `(.)*?`},
		{"m to n not greedy", `expr: "a" for 1 up_to 2 not_greedy;`, `(a){1,2}?`},
		{"nested alternation", `expr: [expr: 'a' for zero_or_one greedy or 'b' for one_or_more;];`, `((a)?|(b)+)`},
		{"class ranges", `expr: any_char from 'a' to 'c' or_from '$' to '@';`, `([a-c\$-\@])`},
		{"class of", `expr: any_char of 'a' or_of 'b';`, `([ab])`},
		{"class except", `expr: any_char except 'a' or_except 'b';`, `([^ab])`},
		{"group name and backreference", `expr one: [expr: "1";]; expr: one;`, `(?P<one>(1))(?P=one)`},
		{"flags and alternation", `set_flags: ignore_case, multiline; expr: 'a' or 'b';`, `(?im)(a)|(b)`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TranslateSource(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  diagnostics.ErrorCode
	}{
		{"bad case keyword", `eXPr: any_char;`, diagnostics.ErrNewExpression},
		{"missing colon", `expr any_char;`, diagnostics.ErrColon},
		{"invalid repetitions", `expr: any_char for asdf;`, diagnostics.ErrInvalidRepetitions},
		{"invalid repetition range", `expr: any_char for 2 up_to 1;`, diagnostics.ErrInvalidRepetitionRange},
		{"multiple or", `expr: 'a' or 'b'; expr: 'c';`, diagnostics.ErrMultipleOr},
		{"invalid class range", `expr: any_char from 'z' to 'a';`, diagnostics.ErrInvalidClassRange},
		{"unclosed bracket", `expr: [expr: 'a';`, diagnostics.ErrUnclosedBracket},
		{"invalid group name", `expr any_char: "1";`, diagnostics.ErrInvalidGroupName},
		{"bad nested keyword", `expr: [any_char;];`, diagnostics.ErrNewNestedExpression},
		{"incomplete expression", `expr:`, diagnostics.ErrIncompleteExpression},
		{"incomplete class", `expr: any_char of`, diagnostics.ErrIncompleteClass},
		{"incomplete class range", `expr: any_char from 'a';`, diagnostics.ErrIncompleteClassRange},
		{"incomplete or", `expr: 'a' or`, diagnostics.ErrIncompleteOr},
		{"flags missing colon", `set_flags ignore_case;`, diagnostics.ErrFlagsColon},
		{"invalid modifier", `expr: 'a' blah;`, diagnostics.ErrInvalidModifier},
		{"invalid flag", `set_flags: bogus;`, diagnostics.ErrInvalidFlag},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TranslateSource(tc.input)
			if err == nil {
				t.Fatalf("expected an error")
			}
			de, ok := err.(*diagnostics.DiagnosticError)
			if !ok {
				t.Fatalf("expected *diagnostics.DiagnosticError, got %T (%v)", err, err)
			}
			if de.Code != tc.want {
				t.Fatalf("got code %s, want %s", de.Code, tc.want)
			}
		})
	}
}

func TestTranslateEmptyInput(t *testing.T) {
	got, err := TranslateSource("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}
