package buffer

// ChangeKind identifies the operation that produced a change.
type ChangeKind uint8

const (
	ChangeSelect ChangeKind = iota
	ChangeInsert
	ChangeDelete
	ChangeIndent
	ChangeOutdent
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelect:
		return "select"
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeIndent:
		return "indent"
	case ChangeOutdent:
		return "outdent"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// AppliedEdit describes the text difference of a change as one replacement.
//
// Start and End are rune offsets in the text before the change; InsertText
// replaced DeletedText there.
type AppliedEdit struct {
	Start       int
	End         int
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Kind            ChangeKind
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore Selection
	SelectionAfter  Selection
	CaretBefore     int
	CaretAfter      int

	// Edit is set only when the text changed.
	Edit    AppliedEdit
	HasEdit bool
}

type changeBuilder struct {
	kind            ChangeKind
	versionBefore   uint64
	selectionBefore Selection
	caretBefore     int
	textBefore      string
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:            kind,
		versionBefore:   b.version,
		selectionBefore: b.Selection(),
		caretBefore:     b.caret,
		textBefore:      b.text,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	ch := Change{
		Kind:            cb.kind,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.Selection(),
		CaretBefore:     cb.caretBefore,
		CaretAfter:      b.caret,
	}
	ch.Edit, ch.HasEdit = diffEdit(cb.textBefore, b.text)
	b.lastChange = ch
	b.hasLastChange = true
}

// diffEdit reduces a before/after pair to the single replacement between
// their common prefix and suffix.
func diffEdit(before, after string) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	a := []rune(before)
	c := []rune(after)

	prefix := 0
	for prefix < len(a) && prefix < len(c) && a[prefix] == c[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(c)-prefix && a[len(a)-1-suffix] == c[len(c)-1-suffix] {
		suffix++
	}

	return AppliedEdit{
		Start:       prefix,
		End:         len(a) - suffix,
		InsertText:  string(c[prefix : len(c)-suffix]),
		DeletedText: string(a[prefix : len(a)-suffix]),
	}, true
}
