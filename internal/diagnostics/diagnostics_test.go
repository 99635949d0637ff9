package diagnostics

import (
	"strings"
	"testing"
)

func TestCaretDiagramLocatesToken(t *testing.T) {
	err := New(ErrColon, PhaseParser, "expr any_char;", "any_char", 5, "expr", "any_char")
	got := err.Error()
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (code+message, source, caret), got %d: %q", len(lines), got)
	}
	caretLine := lines[2]
	idx := strings.Index("expr any_char;", "any_char")
	want := strings.Repeat(" ", idx) + "^"
	if caretLine != want {
		t.Fatalf("caret line = %q, want %q", caretLine, want)
	}
}

func TestCaretDiagramFallsBackToEnd(t *testing.T) {
	err := New(ErrIncompleteExpression, PhaseParser, "expr: a", "", 7)
	got := err.Error()
	lines := strings.Split(got, "\n")
	caretLine := lines[len(lines)-1]
	want := strings.Repeat(" ", len("expr: a")) + "^"
	if caretLine != want {
		t.Fatalf("caret line = %q, want %q", caretLine, want)
	}
}
