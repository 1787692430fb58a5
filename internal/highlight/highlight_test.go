package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/iw2rmb/markpad/buffer"
	"github.com/iw2rmb/markpad/editor"
)

func testStyle(t *testing.T) *chroma.Style {
	t.Helper()
	return chroma.MustNewStyle("markpad-test", chroma.StyleEntries{
		chroma.GenericHeading: "bold #ff0000",
		chroma.GenericStrong:  "bold",
		chroma.GenericEmph:    "italic",
		chroma.LiteralString:  "#00ff00",
	})
}

func TestNew_UnknownStyle(t *testing.T) {
	if _, err := New("no-such-style"); err == nil {
		t.Fatalf("expected unknown style error")
	}
	if _, err := New("monokai"); err != nil {
		t.Fatalf("monokai: %v", err)
	}
}

func TestStyleNames_Sorted(t *testing.T) {
	names := StyleNames()
	if len(names) == 0 {
		t.Fatalf("expected registered styles")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}

func TestHighlightLine_Heading(t *testing.T) {
	h, err := NewWithStyle(testStyle(t))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	spans, err := h.HighlightLine(editor.LineContext{Text: "# Title", CursorCol: -1})
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if len(spans) == 0 {
		t.Fatalf("expected heading spans")
	}
	if spans[0].StartCol != 0 || spans[len(spans)-1].EndCol != 7 {
		t.Fatalf("heading spans: got %+v", spans)
	}
	if !spans[0].Style.GetBold() {
		t.Fatalf("expected bold heading style")
	}
}

func TestHighlightLine_SpansStayInsideLine(t *testing.T) {
	h, err := New("monokai")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	lines := []string{
		"- [link](https://example.com) and `code`",
		"**strong** _emph_ ~~gone~~",
		"> quote with テキスト",
		"```go",
		"    indented",
	}
	for _, line := range lines {
		spans, err := h.HighlightLine(editor.LineContext{Text: line, CursorCol: -1})
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		n := buffer.RuneLen(line)
		prev := 0
		for _, sp := range spans {
			if sp.StartCol < prev || sp.EndCol > n || sp.StartCol >= sp.EndCol {
				t.Fatalf("%q: bad span %+v (line len %d)", line, sp, n)
			}
			prev = sp.EndCol
		}
	}
}

func TestHighlightLine_EmptyAndCached(t *testing.T) {
	h, err := NewWithStyle(testStyle(t))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if spans, err := h.HighlightLine(editor.LineContext{}); err != nil || spans != nil {
		t.Fatalf("empty line: got (%v, %v)", spans, err)
	}

	line := "# " + strings.Repeat("x", 3)
	first, _ := h.HighlightLine(editor.LineContext{Text: line})
	second, _ := h.HighlightLine(editor.LineContext{Text: line})
	if len(first) != len(second) {
		t.Fatalf("cached spans differ: %d vs %d", len(first), len(second))
	}
	if _, ok := h.cache[line]; !ok {
		t.Fatalf("expected line to be cached")
	}
}
