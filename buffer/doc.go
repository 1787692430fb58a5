// Package buffer implements the pure, rune-accurate text model for markpad.
//
// Offsets are 0-based rune indices into the document text.
// Selections are half-open ranges [Start, End) with Start <= End.
// Lines are delimited by '\r' or '\n', each counted as its own terminator.
package buffer
