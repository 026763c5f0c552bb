// Package ui provides the console the screens draw on, plus the widgets they draw with.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/verbonia/internal/geom"
)

// Default colours used by the plain drawing calls.
const (
	DefaultForeground = tcell.ColorWhite
	DefaultBackground = tcell.ColorBlack
)

// Console is a character grid that screens draw on.
// Nothing drawn is visible until Flush.
type Console interface {
	// Put draws one character with explicit colours.
	Put(pos geom.Point, r rune, fg, bg tcell.Color)
	// PutPlain draws one character in the default colours.
	PutPlain(pos geom.Point, r rune)
	// Print draws text left to right starting at pos.
	Print(pos geom.Point, text string, fg, bg tcell.Color)
	// PrintPlain draws text in the default colours.
	PrintPlain(pos geom.Point, text string)
	Clear()
	Flush()
	Size() geom.Size
	// PollKey returns the next pending key without blocking.
	PollKey() (Key, bool)
}
