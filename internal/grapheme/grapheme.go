package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Boundaries returns the rune offset of every cluster boundary in text,
// starting with 0 and ending with the rune length of text.
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// PrevBoundary returns the last cluster boundary strictly before the rune
// offset col, or 0.
func PrevBoundary(text string, col int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// NextBoundary returns the first cluster boundary strictly after the rune
// offset col. Offsets at or past the end return the rune length of text.
func NextBoundary(text string, col int) int {
	bounds := Boundaries(text)
	for _, b := range bounds {
		if b > col {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
