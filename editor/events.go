package editor

import "github.com/iw2rmb/markpad/buffer"

// ChangeEvent reports the state of the buffer after an update that changed
// it. Offsets are runes.
type ChangeEvent struct {
	Version   uint64
	Kind      buffer.ChangeKind
	Text      string
	Selection buffer.Selection
	Caret     int
	Cursor    buffer.Pos

	// Change is the last change applied during the update.
	Change buffer.Change
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:   b.Version(),
		Text:      b.Text(),
		Selection: b.Selection(),
		Caret:     b.Caret(),
		Cursor:    b.CaretPos(),
	}
	if ch, ok := b.LastChange(); ok {
		ev.Kind = ch.Kind
		ev.Change = ch
	}
	return ev
}
