// Package app is the interactive markpad program: the editor and the live
// preview side by side, backed by a store.Store.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"pkt.systems/pslog"

	"github.com/iw2rmb/markpad/buffer"
	"github.com/iw2rmb/markpad/editor"
	"github.com/iw2rmb/markpad/internal/config"
	"github.com/iw2rmb/markpad/internal/logx"
	"github.com/iw2rmb/markpad/store"
)

// Renderer renders the preview and follows the preview pane width.
type Renderer interface {
	store.Renderer
	Resize(width int) error
}

func editorStyle(p termenv.Profile) editor.Style {
	if p == termenv.Ascii {
		return editor.MonochromeStyle()
	}
	return editor.DefaultStyle()
}

// Options configures New.
type Options struct {
	// Path is shown in the status line; empty means an unsaved scratch
	// document.
	Path string
	Text string

	Config      config.Config
	Renderer    Renderer
	Highlighter editor.Highlighter
	Clipboard   editor.Clipboard
}

type pane int

const (
	paneEditor pane = iota
	panePreview
)

func (p pane) String() string {
	if p == panePreview {
		return "PREVIEW"
	}
	return "EDIT"
}

// docSink receives store updates; the preview is refreshed from it after
// each message.
type docSink struct {
	state store.State
	dirty bool
}

func (s *docSink) update(st store.State) {
	s.state = st
	s.dirty = true
}

type Model struct {
	log      pslog.Logger
	store    *store.Store
	renderer Renderer
	wordWrap int

	sink        *docSink
	unsubscribe func()

	editor  editor.Model
	preview viewport.Model
	keys    KeyMap
	styles  styles
	focus   pane

	width, height int
	path          string
}

func New(ctx context.Context, opt Options) (Model, error) {
	if opt.Renderer == nil {
		return Model{}, errors.New("app: no renderer")
	}
	log := logx.WithDocument(logx.Ctx(ctx).With("component", "app"), opt.Path)

	st, err := store.New(ctx, opt.Renderer, opt.Text)
	if err != nil {
		return Model{}, fmt.Errorf("app: %w", err)
	}
	sink := &docSink{state: st.State(), dirty: true}
	unsubscribe := st.Subscribe(sink.update)

	ecfg := opt.Config.Editor
	ed := editor.New(editor.Config{
		Text:         opt.Text,
		IndentWidth:  ecfg.IndentWidth,
		ExactOutdent: ecfg.ExactOutdent,
		ShowLineNums: ecfg.LineNumbers,
		Style:        editorStyle(lipgloss.ColorProfile()),
		Clipboard:    opt.Clipboard,
		Highlighter:  opt.Highlighter,
		OnChange: func(ev editor.ChangeEvent) {
			st.Dispatch(store.SetText{Text: ev.Text, Selection: ev.Selection})
		},
	})

	log.Info("document loaded", "bytes", len(opt.Text), "lines", buffer.CountLines(opt.Text))

	return Model{
		log:         log,
		store:       st,
		renderer:    opt.Renderer,
		wordWrap:    opt.Config.Preview.WordWrap,
		sink:        sink,
		unsubscribe: unsubscribe,
		editor:      ed,
		preview:     viewport.New(0, 0),
		keys:        DefaultKeyMap(),
		styles:      defaultStyles(),
		focus:       paneEditor,
		path:        opt.Path,
	}, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Text returns the current document.
func (m Model) Text() string { return m.editor.Buffer().Text() }

// Store exposes the document state container.
func (m Model) Store() *store.Store { return m.store }

// Close detaches the model from its store.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Debug("quit requested")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m = m.toggleFocus()
		case key.Matches(msg, m.keys.Clear):
			m.editor = m.editor.SetText("", buffer.Caret(0))
			m.store.Dispatch(store.Clear{})
		case m.focus == paneEditor:
			m.editor, cmd = m.editor.Update(msg)
		default:
			m.preview, cmd = m.preview.Update(msg)
		}
	case tea.MouseMsg:
		if msg.X < m.editor.Width() {
			m.editor, cmd = m.editor.Update(msg)
		} else {
			msg.X -= m.editor.Width() + separatorWidth
			m.preview, cmd = m.preview.Update(msg)
		}
	}
	m.syncPreview()
	return m, cmd
}

func (m Model) toggleFocus() Model {
	if m.focus == paneEditor {
		m.focus = panePreview
		m.editor = m.editor.Blur()
	} else {
		m.focus = paneEditor
		m.editor = m.editor.Focus()
	}
	return m
}

func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	l := computeLayout(width, height)

	m.editor = m.editor.SetSize(l.editorWidth, l.paneHeight)
	m.preview.Width = l.previewWidth
	m.preview.Height = l.paneHeight

	wrap := l.previewWidth
	if m.wordWrap > 0 && m.wordWrap < wrap {
		wrap = m.wordWrap
	}
	if err := m.renderer.Resize(wrap); err != nil {
		m.log.Warn("preview resize failed", "width", wrap, "err", err)
		return m
	}
	m.store.Dispatch(store.Refresh{})
	return m
}

func (m *Model) syncPreview() {
	if !m.sink.dirty {
		return
	}
	m.sink.dirty = false
	m.preview.SetContent(m.sink.state.Output)
}
