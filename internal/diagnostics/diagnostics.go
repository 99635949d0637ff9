// Package diagnostics renders Regexeze syntax errors as a stable error code,
// a fixed human-readable message, and a caret pointing at the offending
// token within the original source text.
package diagnostics

import (
	"fmt"
	"strings"
)

// Phase identifies which stage of translation raised the error.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

// ErrorCode is a stable tag identifying one of the fixed error kinds.
type ErrorCode string

const (
	ErrNewExpression          ErrorCode = "E-NEWEXPR"
	ErrNewNestedExpression    ErrorCode = "E-NEWNESTED"
	ErrUnclosedBracket        ErrorCode = "E-UNCLOSEDBRACKET"
	ErrIncompleteExpression   ErrorCode = "E-INCOMPLETEEXPR"
	ErrIncompleteClass        ErrorCode = "E-INCOMPLETECLASS"
	ErrIncompleteClassRange   ErrorCode = "E-INCOMPLETERANGE"
	ErrInvalidClassRange      ErrorCode = "E-INVALIDRANGE"
	ErrIncompleteOr           ErrorCode = "E-INCOMPLETEOR"
	ErrMultipleOr             ErrorCode = "E-MULTIPLEOR"
	ErrColon                  ErrorCode = "E-COLON"
	ErrFlagsColon             ErrorCode = "E-FLAGSCOLON"
	ErrInvalidModifier        ErrorCode = "E-INVALIDMODIFIER"
	ErrInvalidRepetitions     ErrorCode = "E-INVALIDREPETITIONS"
	ErrInvalidRepetitionRange ErrorCode = "E-INVALIDRANGEREP"
	ErrInvalidFlag            ErrorCode = "E-INVALIDFLAG"
	ErrInvalidGroupName       ErrorCode = "E-INVALIDGROUPNAME"
)

var messageTemplates = map[ErrorCode]string{
	ErrNewExpression: "a new expression must begin with the keyword 'expr', " +
		"but found '%s'.",
	ErrNewNestedExpression: "a nested expression must begin with the keyword " +
		"'expr', but found '%s'.",
	ErrUnclosedBracket: "the source ended before a nested expression opened " +
		"with '[' was closed with ']'.",
	ErrIncompleteExpression: "the source ended before the current expression " +
		"was terminated with ';'.",
	ErrIncompleteClass: "'%s' must be followed by at least one character " +
		"class value, but the class was left empty.",
	ErrIncompleteClassRange: "a character range started with 'from' or 'to' " +
		"is missing its matching keyword or endpoint.",
	ErrInvalidClassRange: "a character range's endpoints must each be a " +
		"single character, with the start ordered before the end, but got " +
		"'%s'.",
	ErrIncompleteOr: "'or' was the last token in the source; an alternative " +
		"expression must follow it.",
	ErrMultipleOr: "'or' can only be used once per nesting level; this level " +
		"already has more than one expression.",
	ErrColon: "expected ':' after '%s', but found '%s'.",
	ErrFlagsColon: "expected ':' after 'set_flags', but found '%s'.",
	ErrInvalidModifier: "'%s' is not a valid continuation of the current " +
		"expression; expected a modifier, ';', or 'or'.",
	ErrInvalidRepetitions: "expected an integer or a quantifier keyword " +
		"after 'for', but found '%s'.",
	ErrInvalidRepetitionRange: "expected 'infinity' or an integer not less " +
		"than the lower bound after 'up_to', but found '%s'.",
	ErrInvalidFlag: "'%s' is not a recognized flag keyword.",
	ErrInvalidGroupName: "'%s' cannot be used as a group name because it " +
		"collides with a reserved keyword or a name already bound in this " +
		"scope.",
}

// DiagnosticError is raised when the parser's state machine enters a
// terminal error state.
type DiagnosticError struct {
	Code   ErrorCode
	Phase  Phase
	Source string
	Token  string
	Cursor int
	Args   []interface{}
}

func (e *DiagnosticError) Error() string {
	template, ok := messageTemplates[e.Code]
	if !ok {
		template = "unknown error"
	}
	message := template
	if len(e.Args) > 0 {
		message = fmt.Sprintf(template, e.Args...)
	}
	return fmt.Sprintf("[%s] %s\n%s", e.Code, message, e.caretDiagram())
}

// caretDiagram reproduces the original caret-location algorithm: search for
// the offending token's text in the source starting at the cumulative
// cursor, falling back to one past the end of the source if it cannot be
// found there (as happens for the synthetic end-of-input token).
func (e *DiagnosticError) caretDiagram() string {
	start := e.Cursor
	if start > len(e.Source) {
		start = len(e.Source)
	}
	idx := -1
	if e.Token != "" {
		if rel := strings.Index(e.Source[start:], e.Token); rel >= 0 {
			idx = start + rel
		}
	}
	if idx < 0 {
		idx = len(e.Source)
	}
	return e.Source + "\n" + strings.Repeat(" ", idx) + "^"
}

// New constructs a DiagnosticError for the given code.
func New(code ErrorCode, phase Phase, source, tok string, cursor int, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:   code,
		Phase:  phase,
		Source: source,
		Token:  tok,
		Cursor: cursor,
		Args:   args,
	}
}
