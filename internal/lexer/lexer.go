// Package lexer implements Regexeze's shell-style tokenizer: unquoted runs
// split on whitespace and on the single-character delimiters ; : , [ ],
// with single- and double-quoted spans read as one literal token with
// quotes stripped and backslash escapes resolved.
package lexer

import (
	"fmt"
	"strings"

	"github.com/funvibe/regexeze/internal/token"
)

const delimiters = ";:,[]"

// Lexer scans a Regexeze source string into a stream of raw tokens.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.ch == 0
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// NextToken returns the next token in the stream and true, or a zero token
// and false once the input is exhausted.
func (l *Lexer) NextToken() (token.Token, bool, error) {
	l.skipWhitespace()
	if l.atEnd() {
		return token.Token{}, false, nil
	}

	if l.ch == '\'' || l.ch == '"' {
		text, err := l.readQuoted(l.ch)
		if err != nil {
			return token.Token{}, false, err
		}
		return token.Token{Text: text}, true, nil
	}

	if strings.IndexByte(delimiters, l.ch) >= 0 {
		text := string(l.ch)
		l.readChar()
		return token.Token{Text: text}, true, nil
	}

	return token.Token{Text: l.readBareword()}, true, nil
}

func (l *Lexer) readBareword() string {
	start := l.position
	for !l.atEnd() && l.ch != ' ' && l.ch != '\t' && l.ch != '\r' && l.ch != '\n' &&
		strings.IndexByte(delimiters, l.ch) < 0 && l.ch != '\'' && l.ch != '"' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readQuoted consumes a quote-delimited literal, stripping the quotes and
// resolving backslash escapes, leaving the cursor past the closing quote.
func (l *Lexer) readQuoted(quote byte) (string, error) {
	l.readChar() // consume opening quote
	var b strings.Builder
	for {
		if l.atEnd() {
			return "", fmt.Errorf("unterminated quoted literal")
		}
		if l.ch == quote {
			l.readChar()
			return b.String(), nil
		}
		if l.ch == '\\' {
			l.readChar()
			if l.atEnd() {
				return "", fmt.Errorf("unterminated escape in quoted literal")
			}
			b.WriteByte(unescape(l.ch))
			l.readChar()
			continue
		}
		b.WriteByte(l.ch)
		l.readChar()
	}
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return ch
	}
}

// Tokenize scans the whole input eagerly and returns every token in order.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
