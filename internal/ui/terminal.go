package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/verbonia/internal/geom"
)

// Terminal is a Console backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	size   geom.Size
	plain  tcell.Style
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// NewTerminal creates and initializes a terminal console of the given logical size.
func NewTerminal(size geom.Size) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(s, size)
}

func newTerminal(s tcell.Screen, size geom.Size) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	plain := tcell.StyleDefault.Background(DefaultBackground).Foreground(DefaultForeground)
	s.SetStyle(plain)
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		size:   size,
		plain:  plain,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards terminal events until the screen is finalized.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Close finalizes the screen and restores terminal state.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

// Put draws one character with explicit colours.
func (t *Terminal) Put(pos geom.Point, r rune, fg, bg tcell.Color) {
	t.screen.SetContent(pos.X, pos.Y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// PutPlain draws one character in the default colours.
func (t *Terminal) PutPlain(pos geom.Point, r rune) {
	t.screen.SetContent(pos.X, pos.Y, r, nil, t.plain)
}

// Print draws text starting at pos.
func (t *Terminal) Print(pos geom.Point, text string, fg, bg tcell.Color) {
	t.print(pos, text, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// PrintPlain draws text in the default colours.
func (t *Terminal) PrintPlain(pos geom.Point, text string) {
	t.print(pos, text, t.plain)
}

func (t *Terminal) print(pos geom.Point, text string, style tcell.Style) {
	x := pos.X
	for _, r := range text {
		t.screen.SetContent(x, pos.Y, r, nil, style)
		x++
	}
}

// Clear clears the screen buffer.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Flush shows the screen buffer on the terminal.
func (t *Terminal) Flush() {
	t.screen.Show()
}

// Size returns the logical console size the layout is built for.
func (t *Terminal) Size() geom.Size {
	return t.size
}

// PollKey returns the next pending key press, if any. Non-key events are consumed.
func (t *Terminal) PollKey() (Key, bool) {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return KeyNone, false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return KeyFromEvent(ev)
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return KeyNone, false
		}
	}
}
