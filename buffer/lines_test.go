package buffer

import (
	"reflect"
	"testing"
)

func TestCountLines(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "a", want: 1},
		{text: "a\nb", want: 2},
		{text: "a\nb\nc", want: 3},
		{text: "\n", want: 2},
		{text: "a\n", want: 2},
		{text: "\r\n", want: 3},
		{text: "a\rb", want: 2},
		{text: "π\nテ", want: 2},
	}

	for _, tc := range cases {
		if got := CountLines(tc.text); got != tc.want {
			t.Fatalf("CountLines(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestLineOfIndex_CountsLineEndsBeforeIndex(t *testing.T) {
	texts := []string{"", "a", "a\nb", "ab\n\ncd\r\nef", "\n\n", "π\nテ\rx"}

	for _, text := range texts {
		runes := []rune(text)
		for idx := 0; idx <= len(runes); idx++ {
			want := 0
			for _, r := range runes[:idx] {
				if r == '\r' || r == '\n' {
					want++
				}
			}
			if got := LineOfIndex(text, idx); got != want {
				t.Fatalf("LineOfIndex(%q, %d): got %d, want %d", text, idx, got, want)
			}
		}
	}
}

func TestLineOfIndex_ClampsOutOfRange(t *testing.T) {
	if got := LineOfIndex("a\nb", -5); got != 0 {
		t.Fatalf("negative index: got %d, want 0", got)
	}
	if got := LineOfIndex("a\nb", 99); got != 1 {
		t.Fatalf("index past end: got %d, want 1", got)
	}
}

func TestIndexOfLine(t *testing.T) {
	cases := []struct {
		text string
		line int
		want int
	}{
		{text: "", line: 0, want: 0},
		{text: "abc", line: 0, want: 0},
		{text: "abc", line: 1, want: -1},
		{text: "a\nb\nc", line: 1, want: 2},
		{text: "a\nb\nc", line: 2, want: 4},
		{text: "a\nb\nc", line: 3, want: -1},
		{text: "a\r\nb", line: 1, want: 2},
		{text: "a\r\nb", line: 2, want: 3},
		{text: "ab\n", line: 1, want: 3},
		{text: "π\nテ", line: 1, want: 2},
		{text: "a\nb", line: -1, want: -1},
	}

	for _, tc := range cases {
		if got := IndexOfLine(tc.text, tc.line); got != tc.want {
			t.Fatalf("IndexOfLine(%q, %d): got %d, want %d", tc.text, tc.line, got, tc.want)
		}
	}
}

func TestIndexOfLine_InvertsLineOfIndex(t *testing.T) {
	text := "one\ntwo\r\nthree\n"
	for line := 0; line < CountLines(text); line++ {
		off := IndexOfLine(text, line)
		if off < 0 {
			t.Fatalf("IndexOfLine(%d): got -1", line)
		}
		if got := LineOfIndex(text, off); got != line {
			t.Fatalf("LineOfIndex(IndexOfLine(%d)): got %d", line, got)
		}
	}
}

func TestSnapToLineStart(t *testing.T) {
	cases := []struct {
		text   string
		offset int
		want   int
	}{
		{text: "", offset: 0, want: 0},
		{text: "hello", offset: 3, want: 0},
		{text: "ab\ncd", offset: 2, want: 0},
		{text: "ab\ncd", offset: 3, want: 3},
		{text: "ab\ncd", offset: 5, want: 3},
		{text: "ab\r\ncd", offset: 4, want: 4},
		{text: "ab\ncd", offset: 99, want: 3},
	}

	for _, tc := range cases {
		if got := SnapToLineStart(tc.text, tc.offset); got != tc.want {
			t.Fatalf("SnapToLineStart(%q, %d): got %d, want %d", tc.text, tc.offset, got, tc.want)
		}
	}
}

func TestLineStartsAndSplitLines_Agree(t *testing.T) {
	cases := []struct {
		text   string
		starts []int
		lines  []string
	}{
		{text: "", starts: []int{0}, lines: []string{""}},
		{text: "a\nb", starts: []int{0, 2}, lines: []string{"a", "b"}},
		{text: "a\r\nb", starts: []int{0, 2, 3}, lines: []string{"a", "", "b"}},
		{text: "π\n", starts: []int{0, 2}, lines: []string{"π", ""}},
	}

	for _, tc := range cases {
		if got := LineStarts(tc.text); !reflect.DeepEqual(got, tc.starts) {
			t.Fatalf("LineStarts(%q): got %v, want %v", tc.text, got, tc.starts)
		}
		if got := SplitLines(tc.text); !reflect.DeepEqual(got, tc.lines) {
			t.Fatalf("SplitLines(%q): got %q, want %q", tc.text, got, tc.lines)
		}
	}
}
