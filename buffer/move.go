package buffer

import "github.com/iw2rmb/markpad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor; if false clears the selection
}

func (b *Buffer) Move(m Move) {
	lines := SplitLines(b.text)
	starts := LineStarts(b.text)
	next := clampInt(b.moveCaret(lines, starts, m), 0, b.length)

	anchor := next
	if m.Extend {
		anchor = b.anchor
	}
	b.Select(anchor, next)
}

func (b *Buffer) moveCaret(lines []string, starts []int, m Move) int {
	row := LineOfIndex(b.text, b.caret)
	col := b.caret - starts[row]
	line := lines[row]
	lineLen := RuneLen(line)

	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			if col == 0 {
				return b.caret - 1
			}
			return starts[row] + grapheme.PrevBoundary(line, col)
		case DirRight:
			if col == lineLen {
				return b.caret + 1
			}
			return starts[row] + grapheme.NextBoundary(line, col)
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return starts[row] + prevWordBoundary(line, col)
		case DirRight:
			return starts[row] + nextWordBoundary(line, col)
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp:
			return 0
		case DirEnd, DirDown:
			return b.length
		}
		return b.caret
	}

	switch m.Dir {
	case DirUp:
		if row == 0 {
			return b.caret
		}
		return starts[row-1] + minInt(col, RuneLen(lines[row-1]))
	case DirDown:
		if row == len(lines)-1 {
			return b.caret
		}
		return starts[row+1] + minInt(col, RuneLen(lines[row+1]))
	case DirHome:
		return starts[row]
	case DirEnd:
		return starts[row] + lineLen
	default:
		return b.caret
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - line ends are hard boundaries (so this operates on a single line)
func prevWordBoundary(line string, col int) int {
	bounds := grapheme.Boundaries(line)
	clusters := grapheme.Split(line)
	i := clusterIndex(bounds, col)
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return bounds[i]
}

func nextWordBoundary(line string, col int) int {
	bounds := grapheme.Boundaries(line)
	clusters := grapheme.Split(line)
	i := clusterIndex(bounds, col)
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return bounds[i]
}

// clusterIndex returns the index of the last boundary at or before col.
func clusterIndex(bounds []int, col int) int {
	i := 0
	for i+1 < len(bounds) && bounds[i+1] <= col {
		i++
	}
	return i
}
