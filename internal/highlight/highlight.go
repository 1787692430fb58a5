// Package highlight colours markdown source for the editor using chroma.
package highlight

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markpad/buffer"
	"github.com/iw2rmb/markpad/editor"
)

// maxCachedLines bounds the per-line span cache; it is reset when full.
const maxCachedLines = 2000

// Markdown implements editor.Highlighter for markdown lines.
type Markdown struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu    sync.Mutex
	cache map[string][]editor.HighlightSpan
}

var _ editor.Highlighter = (*Markdown)(nil)

// New returns a highlighter using the named chroma style.
func New(styleName string) (*Markdown, error) {
	sty, ok := styles.Registry[styleName]
	if !ok {
		return nil, fmt.Errorf("highlight: unknown style %q", styleName)
	}
	return NewWithStyle(sty)
}

// NewWithStyle returns a highlighter using sty.
func NewWithStyle(sty *chroma.Style) (*Markdown, error) {
	if sty == nil {
		return nil, fmt.Errorf("highlight: nil style")
	}
	lex := lexers.Get("markdown")
	if lex == nil {
		return nil, fmt.Errorf("highlight: markdown lexer not registered")
	}
	return &Markdown{
		lexer: chroma.Coalesce(lex),
		style: sty,
		cache: map[string][]editor.HighlightSpan{},
	}, nil
}

// StyleNames lists the chroma styles accepted by New.
func StyleNames() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

// HighlightLine tokenises one line. Constructs that span lines, such as
// fenced code blocks, are coloured line by line.
func (h *Markdown) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Text == "" {
		return nil, nil
	}

	h.mu.Lock()
	if spans, ok := h.cache[ctx.Text]; ok {
		h.mu.Unlock()
		return spans, nil
	}
	h.mu.Unlock()

	// Block rules in the markdown lexer expect a terminated line.
	it, err := h.lexer.Tokenise(nil, ctx.Text+"\n")
	if err != nil {
		return nil, fmt.Errorf("highlight: tokenise: %w", err)
	}

	lineLen := buffer.RuneLen(ctx.Text)
	var spans []editor.HighlightSpan
	col := 0
	for _, tok := range it.Tokens() {
		n := buffer.RuneLen(tok.Value)
		start, end := col, col+n
		col = end
		if start >= lineLen {
			break
		}
		if end > lineLen {
			end = lineLen
		}
		st, ok := styleFor(h.style.Get(tok.Type), tok.Type)
		if !ok {
			continue
		}
		spans = append(spans, editor.HighlightSpan{StartCol: start, EndCol: end, Style: st})
	}

	h.mu.Lock()
	if len(h.cache) >= maxCachedLines {
		h.cache = map[string][]editor.HighlightSpan{}
	}
	h.cache[ctx.Text] = spans
	h.mu.Unlock()
	return spans, nil
}

// styleFor converts a chroma entry to a lipgloss style. Plain text and
// backgrounds are left to the editor's own style.
func styleFor(entry chroma.StyleEntry, typ chroma.TokenType) (lipgloss.Style, bool) {
	if typ == chroma.Text || typ == chroma.TextWhitespace {
		return lipgloss.Style{}, false
	}

	st := lipgloss.NewStyle()
	set := false
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
		set = true
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
		set = true
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
		set = true
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
		set = true
	}
	return st, set
}
