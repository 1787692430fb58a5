package app

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/markpad/editor"
)

// SystemClipboard connects the editor to the desktop clipboard.
type SystemClipboard struct{}

var _ editor.Clipboard = SystemClipboard{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// DetectClipboard returns SystemClipboard when a clipboard utility is
// available and nil otherwise.
func DetectClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return SystemClipboard{}
}
