package parser

import "github.com/funvibe/regexeze/internal/lexer"

// TranslateSource tokenizes and translates a full Regexeze source string in
// one call. A tokenizer error (e.g. an unterminated quote) is returned
// unwrapped; a grammar error is returned as *diagnostics.DiagnosticError.
func TranslateSource(source string) (string, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return "", err
	}
	return Translate(source, toks)
}
