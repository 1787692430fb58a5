package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markpad/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// Every model line is one screen row; long lines scroll horizontally with the
// cursor.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	lastBufVersion uint64

	mouseDragging bool
	mouseAnchor   int
}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{IndentWidth: cfg.IndentWidth}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// SetText replaces the document and places the caret at sel. It does not
// fire OnChange; the host already knows about the change.
func (m Model) SetText(text string, sel buffer.Selection) Model {
	m.buf.SetText(text, sel)
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}
	m.syncFromBuffer()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after the buffer changed and reports the change
// to the host.
func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	pos := m.buf.CaretPos()
	changed := false

	y := m.viewport.YOffset
	if pos.Row < y {
		m.viewport.SetYOffset(pos.Row)
		changed = true
	} else if pos.Row >= y+h {
		m.viewport.SetYOffset(pos.Row - h + 1)
		changed = true
	}

	if w := m.contentWidth(buffer.CountLines(m.buf.Text())); w > 0 {
		lines := buffer.SplitLines(m.buf.Text())
		row := clampInt(pos.Row, 0, len(lines)-1)
		cell := layoutLine(lines[row], m.cfg.TabWidth).cellAtCol(pos.Col)
		x := m.xOffset
		if cell < x {
			x = cell
		} else if cell >= x+w {
			x = cell - w + 1
		}
		if x != m.xOffset {
			m.xOffset = x
			changed = true
		}
	}

	if changed {
		m.rebuildContent()
	}
}

// contentWidth is the number of text cells per row, or 0 when unbounded.
func (m Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if w <= 0 {
		return 0
	}
	w -= m.gutterWidth(lineCount)
	if w < 1 {
		w = 1
	}
	return w
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
