package format

import "testing"

func TestEscapeMarkdownV1(t *testing.T) {
	got, err := EscapeMarkdown("my_user:pa*ss", MarkdownV1, "")
	if err != nil {
		t.Fatal(err)
	}
	if want := `my\_user:pa\*ss`; got != want {
		t.Fatalf("EscapeMarkdown = %q, want %q", got, want)
	}
}

func TestEscapeMarkdownV1SingleBackslash(t *testing.T) {
	got, err := EscapeMarkdown("a_b", MarkdownV1, "")
	if err != nil {
		t.Fatal(err)
	}
	// Exactly one backslash before the special character.
	if want := `a\_b`; got != want {
		t.Fatalf("EscapeMarkdown = %q, want %q", got, want)
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	got, err := EscapeMarkdown("a.b-c!", MarkdownV2, "")
	if err != nil {
		t.Fatal(err)
	}
	if want := `a\.b\-c\!`; got != want {
		t.Fatalf("EscapeMarkdown = %q, want %q", got, want)
	}
}

func TestEscapeMarkdownV2EntityTypes(t *testing.T) {
	cases := []struct {
		entityType string
		in, want   string
	}{
		{"pre", "a_b`c", "a_b\\`c"},
		{"code", `x\y`, `x\\y`},
		{"text_link", "u(v)w.z", `u(v\)w.z`},
	}
	for _, tc := range cases {
		got, err := EscapeMarkdown(tc.in, MarkdownV2, tc.entityType)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("EscapeMarkdown(%q, %q) = %q, want %q", tc.in, tc.entityType, got, tc.want)
		}
	}
}

func TestEscapeMarkdownUnknownVersion(t *testing.T) {
	if _, err := EscapeMarkdown("x", 3, ""); err == nil {
		t.Fatal("expected error for unknown version")
	}
}
