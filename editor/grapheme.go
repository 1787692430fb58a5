package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/markpad/buffer"
	graphemeutil "github.com/iw2rmb/markpad/internal/grapheme"
)

// lineCell is one grapheme cluster of a model line placed on screen cells.
type lineCell struct {
	// text is what gets drawn; tabs are expanded and control characters
	// replaced.
	text string
	// startCol and endCol are rune columns within the line.
	startCol, endCol int
	startCell, width int
	space            bool
	control          bool
}

type lineLayout struct {
	cells []lineCell
	runes int
	total int
}

func layoutLine(line string, tabWidth int) lineLayout {
	clusters := graphemeutil.Split(line)
	out := lineLayout{cells: make([]lineCell, 0, len(clusters))}
	col, cell := 0, 0
	for _, c := range clusters {
		n := buffer.RuneLen(c)
		w := graphemeCellWidth(c, cell, tabWidth)
		text := c
		switch {
		case c == "\t":
			text = strings.Repeat(" ", w)
		case isControlCluster(c):
			text = "\ufffd"
			w = 1
		case w < 1:
			w = 1
		}
		out.cells = append(out.cells, lineCell{
			text:      text,
			startCol:  col,
			endCol:    col + n,
			startCell: cell,
			width:     w,
			space:     graphemeutil.IsSpace(c),
			control:   text == "\ufffd" && c != "\ufffd",
		})
		col += n
		cell += w
	}
	out.runes = col
	out.total = cell
	return out
}

// cellAtCol returns the screen cell where rune column col is drawn.
func (l lineLayout) cellAtCol(col int) int {
	for _, c := range l.cells {
		if col < c.endCol {
			return c.startCell
		}
	}
	return l.total
}

// colAtCell returns the rune column of the cluster covering cell x. Cells
// past the end of the line map to the line end.
func (l lineLayout) colAtCell(x int) int {
	for _, c := range l.cells {
		if x < c.startCell+c.width {
			return c.startCol
		}
	}
	return l.runes
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}

func isControlCluster(c string) bool {
	for _, r := range c {
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return true
		}
	}
	return false
}
