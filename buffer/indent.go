package buffer

import "strings"

// DefaultIndentWidth is the indent unit used when a host does not configure one.
const DefaultIndentWidth = 4

// NormalizeWidth coerces a configured indent width to max(|w|, 1).
func NormalizeWidth(w int) int {
	if w < 0 {
		w = -w
	}
	if w < 1 {
		return 1
	}
	return w
}

// IndentKind classifies the edit made by Indent.
type IndentKind uint8

const (
	// IndentInsert inserted one indent unit at a caret.
	IndentInsert IndentKind = iota
	// IndentCollapse deleted a selection confined to a single line.
	IndentCollapse
	// IndentLines prefixed every line touched by the selection.
	IndentLines
)

func (k IndentKind) String() string {
	switch k {
	case IndentInsert:
		return "insert"
	case IndentCollapse:
		return "collapse"
	case IndentLines:
		return "lines"
	default:
		return "unknown"
	}
}

// OutdentKind classifies the edit made by Outdent.
type OutdentKind uint8

const (
	// OutdentLine stripped leading spaces from a single line.
	OutdentLine OutdentKind = iota
	// OutdentLines stripped leading spaces from every line touched by the
	// selection.
	OutdentLines
)

func (k OutdentKind) String() string {
	switch k {
	case OutdentLine:
		return "line"
	case OutdentLines:
		return "lines"
	default:
		return "unknown"
	}
}

// IndentResult is the outcome of Indent.
type IndentResult struct {
	Text string
	Kind IndentKind
	// NumLines is the number of lines spanned by the original selection,
	// measured from the start of its first line. It is 0 for a caret.
	NumLines int
	// Width is the normalized indent width that was applied.
	Width int
}

// OutdentResult is the outcome of Outdent.
type OutdentResult struct {
	Text     string
	Kind     OutdentKind
	NumLines int
	Width    int

	// LineStart is the offset the selection start was snapped to.
	LineStart int
	// Stripped holds the number of spaces actually removed from each line of
	// the snapped selection, in order. An empty snapped selection yields a
	// single zero entry.
	Stripped []int
}

// Removed returns the total number of spaces removed by the outdent.
func (r OutdentResult) Removed() int {
	n := 0
	for _, s := range r.Stripped {
		n += s
	}
	return n
}

// Changed reports whether the outdent modified the text.
func (r OutdentResult) Changed() bool {
	return r.Removed() > 0
}

// Indent applies an indent ("tab") to text for the selection sel.
//
// A caret inserts width spaces. A non-empty selection confined to one line is
// deleted. A selection spanning several lines gets width spaces at the start
// of its first line and right after every line end inside it; the terminators
// themselves are kept.
//
// sel must satisfy 0 <= Start <= End <= RuneLen(text).
func Indent(text string, sel Selection, width int) IndentResult {
	width = NormalizeWidth(width)
	tab := strings.Repeat(" ", width)
	runes := []rune(text)

	if sel.IsEmpty() {
		var sb strings.Builder
		sb.Grow(len(text) + width)
		sb.WriteString(string(runes[:sel.Start]))
		sb.WriteString(tab)
		sb.WriteString(string(runes[sel.Start:]))
		return IndentResult{Text: sb.String(), Kind: IndentInsert, NumLines: 0, Width: width}
	}

	lineStart := snapToLineStart(runes, sel.Start)
	selected := runes[lineStart:sel.End]
	numLines := CountLines(string(selected))

	if numLines <= 1 {
		out := string(runes[:sel.Start]) + string(runes[sel.End:])
		return IndentResult{Text: out, Kind: IndentCollapse, NumLines: numLines, Width: width}
	}

	var sb strings.Builder
	sb.Grow(len(text) + numLines*width)
	sb.WriteString(string(runes[:lineStart]))
	sb.WriteString(tab)
	for _, r := range selected {
		sb.WriteRune(r)
		if IsLineEnd(r) {
			sb.WriteString(tab)
		}
	}
	sb.WriteString(string(runes[sel.End:]))
	return IndentResult{Text: sb.String(), Kind: IndentLines, NumLines: numLines, Width: width}
}

// Outdent applies an outdent ("shift-tab") to text for the selection sel.
//
// The selection start is always snapped to its line start first, even for a
// caret. Up to width leading spaces are stripped from the first line of the
// snapped selection and, when it spans several lines, right after every line
// end inside it. Stripping stops at the first non-space and never crosses the
// end of the selection.
//
// sel must satisfy 0 <= Start <= End <= RuneLen(text).
func Outdent(text string, sel Selection, width int) OutdentResult {
	width = NormalizeWidth(width)
	runes := []rune(text)

	lineStart := snapToLineStart(runes, sel.Start)
	selected := runes[lineStart:sel.End]
	numLines := CountLines(string(selected))

	kind := OutdentLine
	if numLines > 1 {
		kind = OutdentLines
	}

	out := make([]rune, 0, len(runes))
	out = append(out, runes[:lineStart]...)

	stripped := make([]int, 0, numLines)
	i := 0
	for {
		n := leadingSpaces(selected[i:], width)
		stripped = append(stripped, n)
		i += n
		if kind == OutdentLine {
			out = append(out, selected[i:]...)
			break
		}
		j := i
		for j < len(selected) && !IsLineEnd(selected[j]) {
			j++
		}
		if j == len(selected) {
			out = append(out, selected[i:]...)
			break
		}
		out = append(out, selected[i:j+1]...)
		i = j + 1
	}
	out = append(out, runes[sel.End:]...)

	return OutdentResult{
		Text:      string(out),
		Kind:      kind,
		NumLines:  numLines,
		Width:     width,
		LineStart: lineStart,
		Stripped:  stripped,
	}
}

// leadingSpaces counts the spaces at the start of runes, up to limit.
func leadingSpaces(runes []rune, limit int) int {
	n := 0
	for n < limit && n < len(runes) && runes[n] == ' ' {
		n++
	}
	return n
}
