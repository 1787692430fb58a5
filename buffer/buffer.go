package buffer

type Options struct {
	IndentWidth int // default: DefaultIndentWidth
}

// Buffer is the pure document state: text and a single selection.
//
// The selection is kept as an anchor and a caret so that extending moves
// preserve direction; Selection reports it normalized.
type Buffer struct {
	text   string
	length int

	version     uint64
	textVersion uint64

	anchor int
	caret  int

	opt Options

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	opt.IndentWidth = NormalizeWidth(defaultInt(opt.IndentWidth, DefaultIndentWidth))
	return &Buffer{
		text:   text,
		length: RuneLen(text),
		opt:    opt,
	}
}

func (b *Buffer) Text() string { return b.text }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return b.length }

// Version increments on every effective change to text, caret or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) IndentWidth() int { return b.opt.IndentWidth }

// Caret returns the active end of the selection.
func (b *Buffer) Caret() int { return b.caret }

// Anchor returns the fixed end of the selection.
func (b *Buffer) Anchor() int { return b.anchor }

// Selection returns the normalized selection. It is a caret when nothing is
// selected.
func (b *Buffer) Selection() Selection {
	return NormalizeSelection(Selection{Start: b.anchor, End: b.caret})
}

func (b *Buffer) HasSelection() bool { return b.anchor != b.caret }

// CaretPos returns the caret as a (row, col) position.
func (b *Buffer) CaretPos() Pos {
	return PosFromOffset(b.text, b.caret)
}

// CaretLine returns the line holding the caret.
func (b *Buffer) CaretLine() int {
	return LineOfIndex(b.text, b.caret)
}

// LineCount returns CountLines of the current text.
func (b *Buffer) LineCount() int {
	return CountLines(b.text)
}

// SetCaret moves the caret to off and clears the selection.
func (b *Buffer) SetCaret(off int) {
	b.Select(off, off)
}

// SetSelection selects sel with the caret at sel.End.
func (b *Buffer) SetSelection(sel Selection) {
	b.Select(sel.Start, sel.End)
}

// Select sets the anchor and caret. Offsets are clamped into the text.
func (b *Buffer) Select(anchor, caret int) {
	anchor = clampInt(anchor, 0, b.length)
	caret = clampInt(caret, 0, b.length)
	if anchor == b.anchor && caret == b.caret {
		return
	}
	change := b.beginChange(ChangeSelect)
	b.anchor = anchor
	b.caret = caret
	b.version++
	b.commitChange(change)
}

// ClearSelection collapses the selection onto the caret.
func (b *Buffer) ClearSelection() {
	b.Select(b.caret, b.caret)
}

// SetText replaces the whole document and selection in one change. It is the
// entry point for hosts that compute (text, selStart, selEnd) elsewhere.
func (b *Buffer) SetText(text string, sel Selection) {
	change := b.beginChange(ChangeReplace)
	if !b.apply(text, NormalizeSelection(sel)) {
		return
	}
	b.commitChange(change)
}

// apply stores text and sel, bumping versions when anything changed.
func (b *Buffer) apply(text string, sel Selection) bool {
	textChanged := text != b.text
	length := b.length
	if textChanged {
		length = RuneLen(text)
	}
	sel = ClampSelection(sel, length)
	if !textChanged && sel.Start == b.anchor && sel.End == b.caret {
		return false
	}
	if textChanged {
		b.text = text
		b.length = length
		b.textVersion++
	}
	b.anchor = sel.Start
	b.caret = sel.End
	b.version++
	return true
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
