package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// AutoStyle picks dark or light from the terminal background.
const AutoStyle = "auto"

// Options configure a Renderer.
type Options struct {
	// Style is a glamour standard style name or AutoStyle.
	Style string
	// WordWrap is the wrap column; 0 disables wrapping.
	WordWrap int
	// NoColor keeps the layout of Style but strips every escape sequence
	// from the output. The ASCII profile alone still emits bold and other
	// attributes.
	NoColor bool
}

// Renderer renders markdown with glamour. Single line breaks inside a
// paragraph are kept, matching how the text reads in the editor.
type Renderer struct {
	opt Options
	tr  *glamour.TermRenderer
}

// New validates opt and builds a Renderer.
func New(opt Options) (*Renderer, error) {
	if opt.Style == "" {
		opt.Style = styles.DarkStyle
	}
	tr, err := newTermRenderer(opt)
	if err != nil {
		return nil, err
	}
	return &Renderer{opt: opt, tr: tr}, nil
}

// StyleNames lists the accepted style names.
func StyleNames() []string {
	names := make([]string, 0, len(styles.DefaultStyles)+1)
	names = append(names, AutoStyle)
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	return names
}

func newTermRenderer(opt Options) (*glamour.TermRenderer, error) {
	if opt.WordWrap < 0 {
		return nil, fmt.Errorf("preview: negative word wrap %d", opt.WordWrap)
	}

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(opt.WordWrap),
		glamour.WithPreservedNewLines(),
	}
	if opt.NoColor {
		opts = append(opts, glamour.WithColorProfile(termenv.Ascii))
	}
	switch {
	case opt.Style == AutoStyle:
		opts = append(opts, glamour.WithAutoStyle())
	case styles.DefaultStyles[opt.Style] != nil:
		opts = append(opts, glamour.WithStandardStyle(opt.Style))
	default:
		return nil, fmt.Errorf("preview: unknown style %q", opt.Style)
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("preview: build renderer: %w", err)
	}
	return tr, nil
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options { return r.opt }

// Render sanitizes markdown and renders it.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.tr.Render(Sanitize(markdown))
	if err != nil {
		return "", fmt.Errorf("preview: render: %w", err)
	}
	if r.opt.NoColor {
		out = ansi.Strip(out)
	}
	return strings.TrimRight(out, "\n"), nil
}

// Resize rebuilds the renderer with a new wrap column. A non-positive width
// is ignored.
func (r *Renderer) Resize(width int) error {
	if width <= 0 || width == r.opt.WordWrap {
		return nil
	}
	opt := r.opt
	opt.WordWrap = width
	tr, err := newTermRenderer(opt)
	if err != nil {
		return err
	}
	r.opt = opt
	r.tr = tr
	return nil
}
