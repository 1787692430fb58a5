package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartCol and EndCol are rune indices in the line text, half-open
	// [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row int
	// Text is the model line without its terminator.
	Text string

	// CursorCol is the rune index within Text if the cursor is on this row;
	// otherwise -1.
	CursorCol int
	HasCursor bool
}

// Highlighter styles one line at a time. It is called only for visible rows.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = maxInt(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Overlaps are resolved by keeping the earliest span.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func (m *Model) highlightForLine(row int, line string, cursor int) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{
		Row:       row,
		Text:      line,
		CursorCol: cursor,
		HasCursor: cursor >= 0,
	})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, len([]rune(line)))
}
