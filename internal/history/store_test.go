package history

import (
	"testing"
	"time"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	defer store.Close()

	now := time.Date(2026, 7, 29, 10, 0, 0, 0, time.UTC)
	if err := store.Record(Record{
		Command:   "translate",
		Pattern:   "expr: a;",
		Result:    "(a)",
		Succeeded: true,
		Duration:  2 * time.Millisecond,
		CreatedAt: now,
	}); err != nil {
		t.Fatalf("unexpected error recording: %v", err)
	}
	if err := store.Record(Record{
		Command:   "match",
		Pattern:   "expr any_char;",
		Result:    "missing ':'",
		Succeeded: false,
		Duration:  time.Millisecond,
		CreatedAt: now.Add(time.Second),
	}); err != nil {
		t.Fatalf("unexpected error recording: %v", err)
	}

	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("unexpected error listing: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Command != "match" {
		t.Fatalf("expected most recent first, got %q", records[0].Command)
	}
	if records[0].Succeeded {
		t.Fatalf("expected the match record to be unsuccessful")
	}
	if records[1].Pattern != "expr: a;" {
		t.Fatalf("got pattern %q, want %q", records[1].Pattern, "expr: a;")
	}
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.Record(Record{
			Command:   "translate",
			Pattern:   "expr: a;",
			Result:    "(a)",
			Succeeded: true,
			CreatedAt: time.Date(2026, 7, 29, 10, 0, i, 0, time.UTC),
		}); err != nil {
			t.Fatalf("unexpected error recording: %v", err)
		}
	}

	records, err := store.Recent(2)
	if err != nil {
		t.Fatalf("unexpected error listing: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}
