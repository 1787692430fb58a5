package editor

import (
	"math"
	"strings"

	"github.com/iw2rmb/markpad/buffer"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	text := m.buf.Text()
	lines := buffer.SplitLines(text)
	starts := buffer.LineStarts(text)
	lineCount := buffer.CountLines(text)
	caret := m.buf.CaretPos()
	sel := m.buf.Selection()

	highlights := make([][]HighlightSpan, len(lines))
	if m.cfg.Highlighter != nil {
		h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
		if h > 0 {
			start := clampInt(m.viewport.YOffset, 0, len(lines))
			end := minInt(start+h, len(lines))
			for row := start; row < end; row++ {
				cursor := -1
				if row == caret.Row {
					cursor = caret.Col
				}
				highlights[row] = m.highlightForLine(row, lines[row], cursor)
			}
		}
	}

	left, right := 0, math.MaxInt
	if w := m.contentWidth(lineCount); w > 0 {
		left = maxInt(m.xOffset, 0)
		right = left + w
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, lineCount, caret.Row))
		}

		layout := layoutLine(line, m.cfg.TabWidth)
		cursorCol := -1
		if m.focused && row == caret.Row {
			cursorCol = clampInt(caret.Col, 0, layout.runes)
		}
		selLo, selHi, selEOL := selectionColsForRow(sel, starts[row], layout.runes)

		sb.WriteString(renderLine(m.cfg.Style, layout, cursorCol, selLo, selHi, selEOL, highlights[row], left, right))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

// selectionColsForRow returns the selected rune columns of a row starting at
// offset lineStart. eol reports whether the selection continues past the
// line end.
func selectionColsForRow(sel buffer.Selection, lineStart, lineLen int) (lo, hi int, eol bool) {
	if sel.IsEmpty() {
		return 0, 0, false
	}
	lineEnd := lineStart + lineLen
	if sel.End < lineStart || sel.Start > lineEnd {
		return 0, 0, false
	}
	lo = clampInt(sel.Start-lineStart, 0, lineLen)
	hi = clampInt(sel.End-lineStart, 0, lineLen)
	return lo, hi, sel.End > lineEnd
}

func renderLine(
	st Style,
	l lineLayout,
	cursorCol int,
	selLo, selHi int,
	selEOL bool,
	highlights []HighlightSpan,
	left, right int,
) string {
	// Trailing spaces can be visually elided by terminals at line end. Cursor
	// whitespace in that run is drawn as NBSP so the cursor stays visible.
	trailingFrom := len(l.cells)
	for trailingFrom > 0 && l.cells[trailingFrom-1].space {
		trailingFrom--
	}

	var sb strings.Builder
	for i, c := range l.cells {
		spanL := maxInt(c.startCell, left)
		spanR := minInt(c.startCell+c.width, right)
		if spanL >= spanR {
			continue
		}

		text := c.text
		if spanL != c.startCell || spanR != c.startCell+c.width {
			// Partial wide grapheme: preserve alignment with blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}

		switch {
		case cursorCol >= c.startCol && cursorCol < c.endCol:
			if c.space && i >= trailingFrom {
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
			sb.WriteString(st.Cursor.Render(text))
		case c.startCol < selHi && c.endCol > selLo:
			sb.WriteString(st.Selection.Render(text))
		case c.control:
			sb.WriteString(st.Control.Inherit(st.Text).Render(text))
		default:
			style := st.Text
			for _, sp := range highlights {
				if c.startCol < sp.EndCol && c.endCol > sp.StartCol {
					style = sp.Style.Inherit(st.Text)
					break
				}
			}
			sb.WriteString(style.Render(text))
		}
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if l.total >= left && l.total < right {
		switch {
		case cursorCol == l.runes:
			sb.WriteString(st.Cursor.Render(" "))
		case selEOL:
			sb.WriteString(st.Selection.Render(" "))
		}
	}
	return sb.String()
}
