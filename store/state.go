package store

import (
	_ "embed"

	"github.com/iw2rmb/markpad/buffer"
)

//go:embed welcome.md
var welcome string

// Welcome returns the document shown when markpad starts without a file.
func Welcome() string { return welcome }

// State is the document as the host last reported it plus its rendering.
type State struct {
	Input     string
	Output    string
	Selection buffer.Selection
	// Version counts applied actions.
	Version uint64
	// Stale is set while Output lags Input because the last render failed.
	Stale bool
}

// Action is a state transition request.
type Action interface {
	isAction()
}

// SetText replaces the document and selection. Offsets are runes.
type SetText struct {
	Text      string
	Selection buffer.Selection
}

// Clear empties the document.
type Clear struct{}

// Refresh renders the current input again, for example after the renderer
// was resized.
type Refresh struct{}

func (SetText) isAction() {}
func (Clear) isAction()   {}
func (Refresh) isAction() {}

// Renderer turns markdown into preview output. Implementations sanitize their
// input.
type Renderer interface {
	Render(markdown string) (string, error)
}
