package submission

import (
	"bytes"
	"testing"
)

func TestMarshalSortsKeys(t *testing.T) {
	got, err := Marshal(map[string]any{"b": 2, "a": 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"a":1,"b":2}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Same logical content, different construction order.
	first := map[string]any{}
	first["name"] = "Ada Lovelace"
	first["email"] = "ada@example.com"
	first["timestamp"] = "2026-01-02T03:04:05.000Z"

	second := map[string]any{}
	second["timestamp"] = "2026-01-02T03:04:05.000Z"
	second["email"] = "ada@example.com"
	second["name"] = "Ada Lovelace"

	a, err := Marshal(first)
	if err != nil {
		t.Fatalf("Marshal(first) error: %v", err)
	}
	b, err := Marshal(second)
	if err != nil {
		t.Fatalf("Marshal(second) error: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Errorf("Marshal() not deterministic: %s vs %s", a, b)
	}
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	got, err := Marshal(map[string]any{"resume_link": "https://example.com/cv?id=1&v=2"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"resume_link":"https://example.com/cv?id=1&v=2"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestMarshalNoTrailingNewline(t *testing.T) {
	got, err := Marshal(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if bytes.HasSuffix(got, []byte("\n")) {
		t.Error("Marshal() output ends with a newline")
	}
}
