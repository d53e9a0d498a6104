package helpers

import "testing"

func TestSanitizeHTMLStrict_RemovesTagsAndScripts(t *testing.T) {
	input := `<p>Lionel <strong>Messi</strong><script>alert('x')</script></p>`
	got := SanitizeHTMLStrict(input)
	want := "Lionel Messi"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitizeHTMLStrict_EmptyInput(t *testing.T) {
	if got := SanitizeHTMLStrict("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
