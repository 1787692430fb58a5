package editor

// Clipboard backs the Copy, Cut and Paste bindings. A nil Clipboard disables
// them. Read and write errors leave the buffer untouched and are not
// reported to the host.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
