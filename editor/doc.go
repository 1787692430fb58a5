// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, the line-number gutter and host integration hooks
// (highlighting, clipboard and change events). Tab and Shift+Tab indent and
// outdent the selection instead of moving focus.
package editor
