package preview

import (
	"strings"
	"testing"
)

func TestNew_RejectsUnknownStyle(t *testing.T) {
	if _, err := New(Options{Style: "no-such-style"}); err == nil || !strings.Contains(err.Error(), "unknown style") {
		t.Fatalf("expected unknown style error, got %v", err)
	}
}

func TestNew_RejectsNegativeWrap(t *testing.T) {
	if _, err := New(Options{Style: "notty", WordWrap: -1}); err == nil {
		t.Fatalf("expected word wrap error")
	}
}

func TestNew_DefaultsStyle(t *testing.T) {
	r, err := New(Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := r.Options().Style; got != "dark" {
		t.Fatalf("style: got %q, want dark", got)
	}
}

func TestRender_PlainStyleKeepsText(t *testing.T) {
	r, err := New(Options{Style: "notty", WordWrap: 80})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render("# Title\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Title", "emphasis", "here."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newlines trimmed, got %q", out)
	}
}

func TestRender_NoColorEmitsNoEscapes(t *testing.T) {
	r, err := New(Options{Style: "dark", WordWrap: 40, NoColor: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render("# Title\n\n**bold** and `code`")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "\x1b") {
		t.Fatalf("expected no escape sequences, got %q", out)
	}
	if !strings.Contains(out, "bold") || !strings.Contains(out, "code") {
		t.Fatalf("expected text kept, got %q", out)
	}
}

func TestRender_StripsInjectedEscapes(t *testing.T) {
	r, err := New(Options{Style: "notty"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render("safe\x1b]0;pwned\x07 text")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "pwned") || strings.Contains(out, "\x07") {
		t.Fatalf("expected OSC sequence removed, got %q", out)
	}
	if !strings.Contains(out, "safe") || !strings.Contains(out, "text") {
		t.Fatalf("expected surrounding text kept, got %q", out)
	}
}

func TestResize_RebuildsWithNewWrap(t *testing.T) {
	r, err := New(Options{Style: "notty", WordWrap: 80})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := r.Resize(0); err != nil {
		t.Fatalf("resize 0: %v", err)
	}
	if got := r.Options().WordWrap; got != 80 {
		t.Fatalf("wrap after ignored resize: got %d, want 80", got)
	}
	if err := r.Resize(20); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if got := r.Options().WordWrap; got != 20 {
		t.Fatalf("wrap: got %d, want 20", got)
	}
}

func TestStyleNames_IncludesAutoAndStandard(t *testing.T) {
	names := strings.Join(StyleNames(), ",")
	for _, want := range []string{"auto", "dark", "light", "notty"} {
		if !strings.Contains(names, want) {
			t.Fatalf("expected %q in %s", want, names)
		}
	}
}
