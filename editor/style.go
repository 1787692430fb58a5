package editor

import "github.com/charmbracelet/lipgloss"

// Style paints the gutter and the text area.
//
// Highlighter spans inherit from Text, so Text should only carry attributes
// every span may keep (a background, for example).
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	GutterSep     lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	// Control draws the replacement glyph shown for control characters.
	Control lipgloss.Style
}

// DefaultStyle is tuned for 256-color dark terminals.
func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		GutterSep:     dim,
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Control:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// MonochromeStyle uses attributes only, for terminals without color.
func MonochromeStyle() Style {
	return Style{
		LineNumActive: lipgloss.NewStyle().Bold(true),
		Selection:     lipgloss.NewStyle().Underline(true),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Control:       lipgloss.NewStyle().Faint(true),
	}
}
