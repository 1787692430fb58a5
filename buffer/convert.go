package buffer

import (
	"unicode/utf16"
	"unicode/utf8"
)

type OffsetClampMode uint8

const (
	// OffsetError rejects out-of-range offsets.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps out-of-range offsets into the text.
	OffsetClamp
)

// PosFromOffset converts a rune offset into a (row, col) position. The offset
// is clamped into the text.
func PosFromOffset(text string, off int) Pos {
	starts := LineStarts(text)
	off = clampInt(off, 0, RuneLen(text))
	row := 0
	for row+1 < len(starts) && starts[row+1] <= off {
		row++
	}
	return Pos{Row: row, Col: off - starts[row]}
}

// OffsetFromPos converts a (row, col) position into a rune offset. Rows and
// columns are clamped to existing lines.
func OffsetFromPos(text string, pos Pos) int {
	starts := LineStarts(text)
	lines := SplitLines(text)
	row := clampInt(pos.Row, 0, len(starts)-1)
	return starts[row] + clampInt(pos.Col, 0, RuneLen(lines[row]))
}

// RuneOffsetFromByte converts a byte offset into a rune offset. Offsets
// inside a multi-byte sequence are rejected in both modes.
func RuneOffsetFromByte(text string, off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, len(text), mode)
	if !ok {
		return 0, false
	}
	if off < len(text) && !utf8.RuneStart(text[off]) {
		return 0, false
	}
	return utf8.RuneCountInString(text[:off]), true
}

// ByteOffsetFromRune converts a rune offset into a byte offset.
func ByteOffsetFromRune(text string, off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, RuneLen(text), mode)
	if !ok {
		return 0, false
	}
	n := 0
	for i := range text {
		if n == off {
			return i, true
		}
		n++
	}
	return len(text), true
}

// UTF16OffsetFromRune converts a rune offset into a UTF-16 code unit offset,
// the unit used by hosts that report JavaScript-style string indices.
func UTF16OffsetFromRune(text string, off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, RuneLen(text), mode)
	if !ok {
		return 0, false
	}
	units := 0
	n := 0
	for _, r := range text {
		if n == off {
			break
		}
		units += utf16.RuneLen(r)
		n++
	}
	return units, true
}

// RuneOffsetFromUTF16 converts a UTF-16 code unit offset into a rune offset.
// Offsets that split a surrogate pair are rejected in both modes.
func RuneOffsetFromUTF16(text string, off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, utf16Len(text), mode)
	if !ok {
		return 0, false
	}
	units := 0
	n := 0
	for _, r := range text {
		if units == off {
			return n, true
		}
		units += utf16.RuneLen(r)
		if units > off {
			return 0, false
		}
		n++
	}
	return n, true
}

func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}
