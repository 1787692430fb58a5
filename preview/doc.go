// Package preview turns markdown source into terminal output for the preview
// pane. Input is sanitized before it reaches the renderer so that escape
// sequences typed or pasted into the editor cannot drive the terminal.
package preview
