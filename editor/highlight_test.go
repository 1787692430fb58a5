package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

type stubHighlighter struct {
	fn func(ctx LineContext) ([]HighlightSpan, error)
}

func (h *stubHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return h.fn(ctx)
}

func TestHighlighting_CalledOnlyForVisibleLines(t *testing.T) {
	var rows []int
	h := &stubHighlighter{
		fn: func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		},
	}

	m := New(Config{
		Text:        "a\nb\nc",
		Highlighter: h,
	})
	if len(rows) != 0 {
		t.Fatalf("highlighter called without a viewport height: %v", rows)
	}

	m = m.SetSize(10, 1)
	rows = nil
	_ = m.renderContent()

	if len(rows) != 1 || rows[0] != 0 {
		t.Fatalf("highlighter rows: got %v, want %v", rows, []int{0})
	}
}

func TestHighlighting_ContextCarriesCursor(t *testing.T) {
	var got []LineContext
	m := New(Config{
		Text: "ab\ncd",
		Highlighter: &stubHighlighter{fn: func(ctx LineContext) ([]HighlightSpan, error) {
			got = append(got, ctx)
			return nil, nil
		}},
	})
	m.buf.SetCaret(4)
	m = m.SetSize(10, 2)
	got = nil
	_ = m.renderContent()

	if len(got) != 2 {
		t.Fatalf("contexts: got %d, want 2", len(got))
	}
	if got[0].HasCursor || got[0].CursorCol != -1 || got[0].Text != "ab" {
		t.Fatalf("row 0 context: %+v", got[0])
	}
	if !got[1].HasCursor || got[1].CursorCol != 1 || got[1].Text != "cd" {
		t.Fatalf("row 1 context: %+v", got[1])
	}
}

func TestHighlighting_SpansStyleText(t *testing.T) {
	m := New(Config{
		Text: "abcd",
		Highlighter: &stubHighlighter{fn: func(ctx LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: lipgloss.NewStyle().Transform(strings.ToUpper)}}, nil
		}},
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	if got, want := stripANSI(m.renderContent()), "aBCd"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestHighlighting_ErrorFallsBackToPlainText(t *testing.T) {
	m := New(Config{
		Text: "abcd",
		Highlighter: &stubHighlighter{fn: func(ctx LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: lipgloss.NewStyle().Transform(strings.ToUpper)}}, errors.New("boom")
		}},
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	if got, want := stripANSI(m.renderContent()), "abcd"; got != want {
		t.Fatalf("render with highlighter error: got %q, want %q", got, want)
	}
}

func TestNormalizeHighlightSpans(t *testing.T) {
	in := []HighlightSpan{
		{StartCol: 5, EndCol: 3},
		{StartCol: -2, EndCol: 1},
		{StartCol: 2, EndCol: 2},
		{StartCol: 0, EndCol: 2},
		{StartCol: 8, EndCol: 99},
	}
	got := normalizeHighlightSpans(in, 10)

	want := [][2]int{{0, 1}, {3, 5}, {8, 10}}
	if len(got) != len(want) {
		t.Fatalf("spans: got %+v, want %v", got, want)
	}
	for i, sp := range got {
		if sp.StartCol != want[i][0] || sp.EndCol != want[i][1] {
			t.Fatalf("span %d: got [%d,%d), want [%d,%d)", i, sp.StartCol, sp.EndCol, want[i][0], want[i][1])
		}
	}
}
