package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digits of the largest line number plus one separator cell.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(lineCount)
}

// renderGutter draws the number cell for row. Rows past lineCount, which only
// happens for the empty document, stay blank.
func (m Model) renderGutter(row, lineCount, caretRow int) string {
	digits := gutterDigits(lineCount)
	numStyle := m.cfg.Style.LineNum
	if m.focused && row == caretRow {
		numStyle = m.cfg.Style.LineNumActive
	}
	label := strings.Repeat(" ", digits)
	if row < lineCount {
		label = fmt.Sprintf("%*d", digits, row+1)
	}
	return numStyle.Render(label) + m.cfg.Style.GutterSep.Render(" ")
}
