package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markpad/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isVerticalWheel(msg) {
		y := m.viewport.YOffset
		m.viewport, cmd = m.viewport.Update(msg)
		// Manual scrolling does not follow the cursor; highlight the rows that
		// became visible.
		if m.viewport.YOffset != y {
			m.rebuildContent()
		}
		return m, cmd
	}

	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		off := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			m.mouseAnchor = m.buf.Anchor()
			m.buf.Select(m.mouseAnchor, off)
		} else {
			m.mouseAnchor = off
			m.buf.SetCaret(off)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.buf.Select(m.mouseAnchor, m.screenToOffset(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func isVerticalWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
}

// screenToOffset maps a viewport cell to a rune offset in the document.
// Clicks in the gutter land on column 0.
func (m Model) screenToOffset(x, y int) int {
	text := m.buf.Text()
	lines := buffer.SplitLines(text)
	starts := buffer.LineStarts(text)

	row := clampInt(y+m.viewport.YOffset, 0, len(lines)-1)
	x -= m.gutterWidth(buffer.CountLines(text))
	if x < 0 {
		return starts[row]
	}
	return starts[row] + layoutLine(lines[row], m.cfg.TabWidth).colAtCell(x+m.xOffset)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
