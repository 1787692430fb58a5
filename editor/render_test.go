package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func stripANSI(s string) string { return ansi.Strip(s) }

func mark(open, close string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string { return open + s + close })
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(stripANSI(m.View()), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d ", digits, i+1)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_GutterFollowsLineCount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty document shows one blank row", text: "", want: []string{"  "}},
		{name: "trailing newline adds a row", text: "a\n", want: []string{"1 a", "2 "}},
		{name: "crlf counts twice", text: "a\r\nb", want: []string{"1 a", "2 ", "3 b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(Config{Text: tc.text, ShowLineNums: true}).Blur()
			got := strings.Split(stripANSI(m.renderContent()), "\n")
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("rows: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_ActiveLineNumberFollowsCaretLine(t *testing.T) {
	st := Style{LineNumActive: mark("[", "]")}
	m := New(Config{Text: "a\nb\nc", ShowLineNums: true, Style: st})
	m.buf.SetCaret(2)

	lines := strings.Split(stripANSI(m.renderContent()), "\n")
	if !strings.HasPrefix(lines[1], "[2]") {
		t.Fatalf("active row: got %q, want prefix %q", lines[1], "[2]")
	}
	if strings.Contains(lines[0], "[") || strings.Contains(lines[2], "[") {
		t.Fatalf("only the caret line should be active: %q", lines)
	}

	m = m.Blur()
	if got := stripANSI(m.renderContent()); strings.Contains(got, "[") {
		t.Fatalf("blurred editor should not mark an active line: %q", got)
	}
}

func TestRender_CursorProducesStyledCell(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtEOLIsPlaceholder(t *testing.T) {
	m := New(Config{Text: "ab", Style: Style{Cursor: mark("<", ">")}})
	m.buf.SetCaret(2)

	if got, want := stripANSI(m.renderContent()), "ab< >"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_CursorOnTrailingSpaceUsesNBSP(t *testing.T) {
	m := New(Config{Text: "a  "})
	m.buf.SetCaret(1)

	if got, want := stripANSI(m.renderContent()), "a\u00a0 "; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_SelectionAcrossLines(t *testing.T) {
	st := Style{Selection: lipgloss.NewStyle().Transform(strings.ToUpper)}
	m := New(Config{Text: "ab\ncd", Style: st}).Blur()
	m.buf.Select(1, 4)

	if got, want := stripANSI(m.renderContent()), "aB \nCd"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_TabsAndControlCharacters(t *testing.T) {
	m := New(Config{Text: "\tx\na\x1bb", TabWidth: 4}).Blur()

	if got, want := stripANSI(m.renderContent()), "    x\na\ufffdb"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_ControlStyleMarksReplacementGlyph(t *testing.T) {
	st := Style{Control: mark("{", "}")}
	m := New(Config{Text: "a\x07b\ufffd", Style: st}).Blur()

	if got, want := stripANSI(m.renderContent()), "a{\ufffd}b\ufffd"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}
