package ui

import "github.com/gdamore/tcell/v2"

// Key is a discrete key press understood by the screens.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyEnter
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// KeyFromEvent translates a terminal key event. Keys outside the set report false.
func KeyFromEvent(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyEnter:
		return KeyEnter, true
	default:
		return KeyNone, false
	}
}
