package buffer

// Selection is a half-open range of rune offsets: [Start, End).
// Start == End is a caret with nothing selected.
type Selection struct {
	Start int
	End   int
}

// Caret returns a zero-width selection at off.
func Caret(off int) Selection {
	return Selection{Start: off, End: off}
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

func (s Selection) Len() int {
	return s.End - s.Start
}

// NormalizeSelection orders s so that Start <= End.
func NormalizeSelection(s Selection) Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// ClampSelection clamps both offsets into [0, length] and normalizes the
// result.
func ClampSelection(s Selection, length int) Selection {
	return NormalizeSelection(Selection{
		Start: clampInt(s.Start, 0, length),
		End:   clampInt(s.End, 0, length),
	})
}

// Pos points into the document by (row, col) using the line model of this
// package. Row and Col are 0-based; Col counts runes.
type Pos struct {
	Row int
	Col int
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
