package buffer

import (
	"strings"

	"github.com/iw2rmb/markpad/internal/grapheme"
)

// InsertText inserts text at the caret, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.replace(b.Selection(), s, ChangeInsert)
}

// InsertNewline inserts a line break at the caret, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection if any, otherwise
// the grapheme cluster (or line end) before the caret.
func (b *Buffer) DeleteBackward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	if b.caret == 0 {
		return
	}

	runes := []rune(b.text)
	start := b.caret - 1
	if !IsLineEnd(runes[start]) {
		lineStart := snapToLineStart(runes, b.caret)
		col := grapheme.PrevBoundary(string(runes[lineStart:b.caret]), b.caret-lineStart)
		start = lineStart + col
	}
	b.replace(Selection{Start: start, End: b.caret}, "", ChangeDelete)
}

// DeleteForward applies delete-key semantics: the selection if any, otherwise
// the grapheme cluster (or line end) after the caret.
func (b *Buffer) DeleteForward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	if b.caret >= b.length {
		return
	}

	runes := []rune(b.text)
	end := b.caret + 1
	if !IsLineEnd(runes[b.caret]) {
		lineEnd := b.caret
		for lineEnd < len(runes) && !IsLineEnd(runes[lineEnd]) {
			lineEnd++
		}
		end = b.caret + grapheme.NextBoundary(string(runes[b.caret:lineEnd]), 0)
	}
	b.replace(Selection{Start: b.caret, End: end}, "", ChangeDelete)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if !b.HasSelection() {
		return
	}
	b.replace(b.Selection(), "", ChangeDelete)
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() string {
	sel := b.Selection()
	if sel.IsEmpty() {
		return ""
	}
	return string([]rune(b.text)[sel.Start:sel.End])
}

// Indent runs Indent over the buffer text and current selection and stores
// the reconciled result.
func (b *Buffer) Indent(width int) IndentResult {
	sel := b.Selection()
	res := Indent(b.text, sel, width)

	change := b.beginChange(ChangeIndent)
	if b.apply(res.Text, res.Reconcile(sel)) {
		b.commitChange(change)
	}
	return res
}

// Outdent runs Outdent over the buffer text and current selection and stores
// the reconciled result. With exact set the selection follows the spaces that
// were actually removed instead of the per-line estimate.
func (b *Buffer) Outdent(width int, exact bool) OutdentResult {
	sel := b.Selection()
	res := Outdent(b.text, sel, width)

	next := res.Reconcile(sel)
	if exact {
		next = res.ReconcileExact(sel)
	}

	change := b.beginChange(ChangeOutdent)
	if b.apply(res.Text, next) {
		b.commitChange(change)
	}
	return res
}

func (b *Buffer) replace(sel Selection, s string, kind ChangeKind) {
	sel = ClampSelection(sel, b.length)
	if sel.IsEmpty() && s == "" {
		return
	}

	runes := []rune(b.text)
	var sb strings.Builder
	sb.Grow(len(b.text) + len(s))
	sb.WriteString(string(runes[:sel.Start]))
	sb.WriteString(s)
	sb.WriteString(string(runes[sel.End:]))

	change := b.beginChange(kind)
	if b.apply(sb.String(), Caret(sel.Start+RuneLen(s))) {
		b.commitChange(change)
	}
}
