package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// IndentWidth is the number of spaces inserted by Tab and removed by
	// Shift+Tab. Values are normalized by buffer.NormalizeWidth; 0 means 4.
	IndentWidth int
	// ExactOutdent repositions the selection after Shift+Tab from the spaces
	// actually removed instead of the width-based estimate.
	ExactOutdent bool

	// TabWidth is the tab stop used to render literal tab characters.
	// 0 means 4.
	TabWidth int

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	ReadOnly bool

	Clipboard   Clipboard
	Highlighter Highlighter

	// OnChange is called once per update that changed text or selection.
	OnChange func(ChangeEvent)
}
