package parser

import (
	"github.com/funvibe/regexeze/internal/diagnostics"
	"github.com/funvibe/regexeze/internal/token"
)

// stream walks a token slice, tracking the cumulative consumed length used
// to locate a token for caret diagnostics.
type stream struct {
	toks   []token.Token
	idx    int
	source string
	cursor int
}

func newStream(source string, toks []token.Token) *stream {
	return &stream{toks: toks, source: source}
}

// peek returns the current token without consuming it, or the end-of-input
// sentinel once the stream is exhausted.
func (s *stream) peek() token.Token {
	return s.peekAt(0)
}

// peekAt returns the token n positions ahead of the current one (n==0 is
// the current token).
func (s *stream) peekAt(n int) token.Token {
	i := s.idx + n
	if i >= len(s.toks) {
		return token.Token{Text: token.EndOfInput}
	}
	return s.toks[i]
}

// advance consumes and returns the current token.
func (s *stream) advance() token.Token {
	tok := s.peek()
	s.idx++
	if !tok.IsEnd() {
		s.cursor += len(tok.Text)
	}
	return tok
}

func (s *stream) err(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) error {
	text := tok.Text
	if tok.IsEnd() {
		text = ""
	}
	return diagnostics.New(code, diagnostics.PhaseParser, s.source, text, s.cursor, args...)
}

// Translate parses source and returns the translated regex text, or a
// *diagnostics.DiagnosticError describing the first syntax error found.
func Translate(source string, toks []token.Token) (string, error) {
	s := newStream(source, toks)
	ctx := NewContext(source)
	if err := s.parseProgram(ctx, false); err != nil {
		return "", err
	}
	return ctx.Output, nil
}
