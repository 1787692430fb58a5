package buffer

import "unicode/utf8"

// IsLineEnd reports whether r terminates a line.
//
// '\r' and '\n' are independent terminators, so "\r\n" is two line breaks.
func IsLineEnd(r rune) bool {
	return r == '\r' || r == '\n'
}

// CountLines returns the number of lines in text.
//
// An empty text has 0 lines; any other text has one more line than it has
// line-end runes.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(text); i++ {
		// Line ends are ASCII and never appear inside a multi-byte sequence.
		if c := text[i]; c == '\r' || c == '\n' {
			n++
		}
	}
	return n
}

// LineOfIndex returns the 0-based line containing the rune offset index: the
// number of line ends strictly before it.
//
// index may equal the rune length of text (caret at end of document). Offsets
// outside [0, len] are clamped.
func LineOfIndex(text string, index int) int {
	if index <= 0 {
		return 0
	}
	line := 0
	off := 0
	for _, r := range text {
		if off >= index {
			break
		}
		if IsLineEnd(r) {
			line++
		}
		off++
	}
	return line
}

// IndexOfLine returns the rune offset of the first rune of the 0-based line.
//
// Line 0 always starts at 0. For line > 0 the result is the offset right
// after the line-th line end, or -1 when text has fewer line breaks.
func IndexOfLine(text string, line int) int {
	if line == 0 {
		return 0
	}
	if line < 0 {
		return -1
	}
	count := 0
	off := 0
	for _, r := range text {
		off++
		if IsLineEnd(r) {
			count++
			if count == line {
				return off
			}
		}
	}
	return -1
}

// SnapToLineStart returns the rune offset of the first rune of the line that
// contains offset.
func SnapToLineStart(text string, offset int) int {
	runes := []rune(text)
	offset = clampInt(offset, 0, len(runes))
	return snapToLineStart(runes, offset)
}

func snapToLineStart(runes []rune, offset int) int {
	for offset > 0 && !IsLineEnd(runes[offset-1]) {
		offset--
	}
	return offset
}

// LineStarts returns the start offset of every line in text, in one pass.
//
// The result always has at least one element, so an empty text still yields
// a single (empty) line at offset 0.
func LineStarts(text string) []int {
	starts := make([]int, 1, CountLines(text)+1)
	off := 0
	for _, r := range text {
		off++
		if IsLineEnd(r) {
			starts = append(starts, off)
		}
	}
	return starts
}

// SplitLines returns the contents of every line in text without terminators.
//
// It agrees with LineStarts: element i starts at LineStarts(text)[i].
func SplitLines(text string) []string {
	lines := make([]string, 0, CountLines(text)+1)
	start := 0
	for i := 0; i < len(text); i++ {
		if c := text[i]; c == '\r' || c == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}

// RuneLen returns the length of text in runes, the unit of every offset in
// this package.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}
