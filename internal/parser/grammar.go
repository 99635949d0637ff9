package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/funvibe/regexeze/internal/config"
	"github.com/funvibe/regexeze/internal/diagnostics"
	"github.com/funvibe/regexeze/internal/token"
)

// escapeLiteral regex-escapes raw text the way a plain-text or character-
// class value is emitted: every rune that is not a letter, digit, or
// underscore is backslash-escaped. This is deliberately broader than
// regexp.QuoteMeta (which only escapes characters with regex meaning),
// matching the behavior of the source language this grammar was translated
// from, where every punctuation rune in a literal is escaped on principle
// rather than only the ones RE2 happens to treat specially.
func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseProgram parses a sequence of top-level statements (set_flags blocks
// and expr statements) until end of input, or, when nested is true, until
// the ']' that closes the surrounding bracket (left unconsumed).
func (s *stream) parseProgram(ctx *Context, nested bool) error {
	for {
		tok := s.peek()
		if tok.IsEnd() {
			if nested {
				return s.err(diagnostics.ErrUnclosedBracket, tok)
			}
			return nil
		}
		if tok.Text == config.CloseBracket {
			if nested {
				return nil
			}
			return s.newExpressionErr(nested, tok)
		}
		switch tok.Text {
		case config.SetFlagsTok:
			s.advance()
			if err := s.parseFlags(ctx); err != nil {
				return err
			}
		case config.ExprTok:
			if ctx.AfterOr {
				return s.err(diagnostics.ErrMultipleOr, tok)
			}
			s.advance()
			if err := s.parseStatement(ctx); err != nil {
				return err
			}
		default:
			return s.newExpressionErr(nested, tok)
		}
	}
}

func (s *stream) newExpressionErr(nested bool, tok token.Token) error {
	if nested {
		return s.err(diagnostics.ErrNewNestedExpression, tok, tok.Text)
	}
	return s.err(diagnostics.ErrNewExpression, tok, tok.Text)
}

// parseStatement parses everything after a consumed "expr" keyword: an
// optional "<name>:" group-name binding, the value, and its continuation
// chain up to the terminating ';'.
func (s *stream) parseStatement(ctx *Context) error {
	first := s.peek()
	if first.Text == config.ColonTok {
		s.advance()
	} else {
		second := s.peekAt(1)
		if second.Text != config.ColonTok {
			return s.err(diagnostics.ErrColon, first, first.Text, second.Text)
		}
		name := first.Text
		if config.IsReservedKeyword(name) || ctx.Namespace[name] {
			return s.err(diagnostics.ErrInvalidGroupName, first, name)
		}
		s.advance() // name
		s.advance() // colon
		ctx.OpenParen = "(?P<" + name + ">"
		ctx.Namespace[name] = true
	}

	kind, err := s.parseValue(ctx)
	if err != nil {
		return err
	}
	return s.parseContinuation(ctx, kind)
}

// parseFlags parses a "set_flags: k1, k2, ...;" block and prefixes the
// resulting inline flag group onto the context's output.
func (s *stream) parseFlags(ctx *Context) error {
	colon := s.peek()
	if colon.Text != config.ColonTok {
		return s.err(diagnostics.ErrFlagsColon, colon, colon.Text)
	}
	s.advance()

	var flags strings.Builder
	for {
		tok := s.peek()
		if tok.IsEnd() {
			return s.err(diagnostics.ErrIncompleteExpression, tok)
		}
		code, ok := config.FlagSet[tok.Text]
		if !ok {
			return s.err(diagnostics.ErrInvalidFlag, tok, tok.Text)
		}
		flags.WriteString(code)
		s.advance()

		next := s.peek()
		switch next.Text {
		case config.CommaTok:
			s.advance()
			continue
		case config.SemicolonTok:
			s.advance()
			ctx.Output = "(?" + flags.String() + ")" + ctx.Output
			return nil
		default:
			return s.err(diagnostics.ErrInvalidFlag, next, next.Text)
		}
	}
}

// parseValue parses one expression value (the grammar's StartExpression)
// and returns a kind tag describing what continuations are legal next.
func (s *stream) parseValue(ctx *Context) (string, error) {
	tok := s.peek()
	switch {
	case tok.IsEnd():
		return "", s.err(diagnostics.ErrIncompleteExpression, tok)

	case tok.Text == config.AnyCharTok:
		s.advance()
		ctx.CurrentFragment = ctx.OpenParen + "."
		return "any_char", nil

	case tok.Text == config.OpenBracket:
		return s.parseNested(ctx)

	case tok.Text == config.StartOfStringTok || tok.Text == config.EndOfStringTok:
		s.advance()
		ctx.CurrentFragment = ctx.OpenParen + config.UnmodifiableSpecialCharSet[tok.Text]
		return "unmodifiable", nil

	default:
		if sym, ok := config.SpecialCharSet[tok.Text]; ok {
			s.advance()
			ctx.CurrentFragment = ctx.OpenParen + sym
			return "special", nil
		}
		if ctx.Namespace[tok.Text] {
			s.advance()
			ctx.CurrentFragment = "(?P=" + tok.Text + ")"
			ctx.FragmentComplete = true
			return "plain", nil
		}
		s.advance()
		ctx.CurrentFragment = ctx.OpenParen + escapeLiteral(tok.Text)
		return "plain", nil
	}
}

// parseNested parses a "[...]" sub-expression, recursively translating it
// in a child Context and inlining the result.
func (s *stream) parseNested(ctx *Context) (string, error) {
	s.advance() // consume '['
	next := s.peek()
	if next.Text != config.ExprTok {
		return "", s.err(diagnostics.ErrNewNestedExpression, next, next.Text)
	}

	child := ctx.NewChild()
	if err := s.parseProgram(child, true); err != nil {
		return "", err
	}

	closeTok := s.peek()
	if closeTok.Text != config.CloseBracket {
		return "", s.err(diagnostics.ErrUnclosedBracket, closeTok)
	}
	s.advance()

	ctx.CurrentFragment = ctx.OpenParen + child.Output
	ctx.MergeNamespace(child)
	return "plain", nil
}

// parseContinuation parses whatever follows a value: a quantifier
// ("for ..."), a character-class extension (only after any_char), an
// alternation ("or ..."), or the terminating ';'.
func (s *stream) parseContinuation(ctx *Context, kind string) error {
	for {
		tok := s.peek()
		switch {
		case tok.Text == config.SemicolonTok:
			s.advance()
			ctx.FlushFragment()
			ctx.NExpressions++
			return nil

		case tok.Text == config.OrTok:
			if ctx.NExpressions != 0 {
				return s.err(diagnostics.ErrMultipleOr, tok)
			}
			s.advance()
			if s.peek().IsEnd() {
				return s.err(diagnostics.ErrIncompleteOr, s.peek())
			}
			ctx.FlushFragment()
			ctx.Output += "|"
			ctx.AfterOr = true
			nextKind, err := s.parseValue(ctx)
			if err != nil {
				return err
			}
			kind = nextKind

		case kind == "any_char" && tok.Text == config.OfTok:
			s.advance()
			nk, err := s.parseClassFamily(ctx, config.OfTok)
			if err != nil {
				return err
			}
			kind = nk

		case kind == "any_char" && tok.Text == config.FromTok:
			s.advance()
			nk, err := s.parseClassFamily(ctx, config.FromTok)
			if err != nil {
				return err
			}
			kind = nk

		case kind == "any_char" && tok.Text == config.ExceptTok:
			s.advance()
			nk, err := s.parseClassFamily(ctx, config.ExceptTok)
			if err != nil {
				return err
			}
			kind = nk

		case tok.Text == config.ForTok && kind != "unmodifiable":
			s.advance()
			nk, err := s.parseQuantifier(ctx)
			if err != nil {
				return err
			}
			kind = nk

		case tok.IsEnd():
			return s.err(diagnostics.ErrIncompleteExpression, tok)

		default:
			return s.err(diagnostics.ErrInvalidModifier, tok, tok.Text)
		}
	}
}

// parseClassFamily parses the full of/or_of/from-to/or_from chain, or the
// full except/or_except chain, and writes the bracketed class text into
// the context's current fragment.
func (s *stream) parseClassFamily(ctx *Context, first string) (string, error) {
	ctx.CurrentFragment = ctx.OpenParen
	prefix := "["
	if first == config.ExceptTok {
		prefix = "[^"
	}

	body, err := s.parseClassSegment(first)
	if err != nil {
		return "", err
	}

	for {
		tok := s.peek()
		switch {
		case first != config.ExceptTok && tok.Text == config.OrOfTok:
			s.advance()
			seg, err := s.parseClassSegment(config.OfTok)
			if err != nil {
				return "", err
			}
			body += seg
		case first != config.ExceptTok && tok.Text == config.OrFromTok:
			s.advance()
			seg, err := s.parseClassSegment(config.FromTok)
			if err != nil {
				return "", err
			}
			body += seg
		case first == config.ExceptTok && tok.Text == config.OrExceptTok:
			s.advance()
			seg, err := s.parseClassSegment(config.ExceptTok)
			if err != nil {
				return "", err
			}
			body += seg
		default:
			ctx.CurrentFragment += prefix + body + "]"
			return "class", nil
		}
	}
}

// parseClassSegment parses one value contributed to a class body: a single
// value for "of"/"except", or a "from <c> to <c>" range.
func (s *stream) parseClassSegment(kind string) (string, error) {
	if kind == config.FromTok {
		return s.parseClassRange()
	}

	tok := s.peek()
	if tok.IsEnd() || tok.Text == "" {
		return "", s.err(diagnostics.ErrIncompleteClass, tok, kind)
	}
	s.advance()
	if sym, ok := config.SpecialCharSet[tok.Text]; ok {
		return sym, nil
	}
	return escapeLiteral(tok.Text), nil
}

func (s *stream) parseClassRange() (string, error) {
	startTok := s.peek()
	startRunes := []rune(startTok.Text)
	if startTok.IsEnd() || len(startRunes) != 1 {
		return "", s.err(diagnostics.ErrIncompleteClassRange, startTok)
	}
	s.advance()

	toTok := s.peek()
	if toTok.Text != config.ToTok {
		return "", s.err(diagnostics.ErrIncompleteClassRange, toTok)
	}
	s.advance()

	endTok := s.peek()
	endRunes := []rune(endTok.Text)
	if endTok.IsEnd() || len(endRunes) != 1 {
		return "", s.err(diagnostics.ErrIncompleteClassRange, endTok)
	}

	startRune, endRune := startRunes[0], endRunes[0]
	if endRune < startRune {
		s.advance()
		return "", s.err(diagnostics.ErrInvalidClassRange, endTok, startTok.Text+" to "+endTok.Text)
	}
	s.advance()

	return escapeLiteral(string(startRune)) + "-" + escapeLiteral(string(endRune)), nil
}

// parseQuantifier parses everything after a consumed "for" keyword: a
// quantifier shorthand, an integer repetition count (with optional
// "up_to"), and an optional trailing greedy/not_greedy suffix.
func (s *stream) parseQuantifier(ctx *Context) (string, error) {
	tok := s.peek()
	switch tok.Text {
	case config.ZeroOrMore:
		s.advance()
		ctx.CurrentModifier = "*"
	case config.OneOrMore:
		s.advance()
		ctx.CurrentModifier = "+"
	case config.ZeroOrOne:
		s.advance()
		ctx.CurrentModifier = "?"
	default:
		n, ok := parseNonNegativeInt(tok.Text)
		if !ok {
			return "", s.err(diagnostics.ErrInvalidRepetitions, tok, tok.Text)
		}
		s.advance()
		ctx.MRepetitions = n

		next := s.peek()
		if next.Text == config.UpToTok {
			s.advance()
			if err := s.parseUpTo(ctx, n); err != nil {
				return "", err
			}
		} else {
			ctx.CurrentModifier = fmt.Sprintf("{%d}", n)
		}
	}
	return s.parseGreedySuffix(ctx), nil
}

func (s *stream) parseUpTo(ctx *Context, lower int) error {
	tok := s.peek()
	if tok.Text == config.InfinityTok {
		s.advance()
		ctx.CurrentModifier = fmt.Sprintf("{%d,}", lower)
		return nil
	}
	n, ok := parseNonNegativeInt(tok.Text)
	if !ok || n < lower {
		return s.err(diagnostics.ErrInvalidRepetitionRange, tok, tok.Text)
	}
	s.advance()
	ctx.CurrentModifier = fmt.Sprintf("{%d,%d}", lower, n)
	return nil
}

func (s *stream) parseGreedySuffix(ctx *Context) string {
	tok := s.peek()
	switch tok.Text {
	case config.NotGreedyTok:
		s.advance()
		ctx.CurrentModifier += "?"
	case config.GreedyTok:
		s.advance()
	}
	return "quantified"
}

func parseNonNegativeInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
