package regex

import "testing"

func TestCompileAndSearch(t *testing.T) {
	cp, err := Compile(`expr: any_char for one_or_more;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cp.Pattern != "(.)+" {
		t.Fatalf("got pattern %q, want %q", cp.Pattern, "(.)+")
	}
	if cp.ID.String() == "" {
		t.Fatalf("expected a non-empty compiled pattern id")
	}

	ok, err := cp.Search("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a match")
	}
}

func TestMatchNamedGroup(t *testing.T) {
	result, err := Match(`expr digit_group: digit for one_or_more;`, "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected a match")
	}
	if result.Full != "42" {
		t.Fatalf("got full match %q, want %q", result.Full, "42")
	}
	// The quantifier sits outside the named group, so the group holds only
	// the last repetition.
	if result.Named["digit_group"] != "2" {
		t.Fatalf("got named group %q, want %q", result.Named["digit_group"], "2")
	}
}

func TestMatchNoMatch(t *testing.T) {
	result, err := Match(`expr: "z";`, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected no match, got %+v", result)
	}
}

func TestCompileInvalidSource(t *testing.T) {
	if _, err := Compile(`expr any_char;`); err == nil {
		t.Fatalf("expected a translation error")
	}
}
