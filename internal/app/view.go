package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	markpad "github.com/iw2rmb/markpad"
	"github.com/iw2rmb/markpad/buffer"
)

const separatorWidth = 1

type styles struct {
	separator lipgloss.Style
	status    lipgloss.Style
	statusKey lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		statusKey: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("236")),
	}
}

type layout struct {
	editorWidth  int
	previewWidth int
	paneHeight   int
}

// computeLayout splits the screen into two panes above a one-row status line.
func computeLayout(width, height int) layout {
	l := layout{paneHeight: height - 1}
	if l.paneHeight < 0 {
		l.paneHeight = 0
	}
	if width <= separatorWidth {
		l.editorWidth = maxInt(width, 0)
		return l
	}
	l.editorWidth = (width - separatorWidth + 1) / 2
	l.previewWidth = width - separatorWidth - l.editorWidth
	return l
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := computeLayout(m.width, m.height)

	var body string
	if l.paneHeight > 0 {
		sep := m.styles.separator.Render(strings.TrimSuffix(strings.Repeat("│\n", l.paneHeight), "\n"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), sep, m.preview.View())
	}
	status := m.statusLine()
	if body == "" {
		return status
	}
	return body + "\n" + status
}

func (m Model) statusLine() string {
	b := m.editor.Buffer()
	pos := b.CaretPos()
	name := m.path
	if name == "" {
		name = "(scratch)"
	}

	parts := []string{
		markpad.Banner(),
		name,
		fmt.Sprintf("Ln %d, Col %d", b.CaretLine()+1, pos.Col+1),
		fmt.Sprintf("%d lines", buffer.CountLines(b.Text())),
	}
	if sel := b.Selection(); !sel.IsEmpty() {
		parts = append(parts, fmt.Sprintf("%d selected", sel.Len()))
	}
	parts = append(parts, m.focus.String())

	var help []string
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	line := m.styles.status.Render(" "+strings.Join(parts, " │ ")+" ") +
		m.styles.statusKey.Render(" "+strings.Join(help, " · "))
	line = ansi.Truncate(line, m.width, "…")
	if pad := m.width - ansi.StringWidth(line); pad > 0 {
		line += m.styles.statusKey.Render(strings.Repeat(" ", pad))
	}
	return line
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
