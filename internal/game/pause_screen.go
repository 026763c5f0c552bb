package game

import (
	"github.com/samdwyer/verbonia/internal/geom"
	"github.com/samdwyer/verbonia/internal/ui"
)

type pauseChoice int

const (
	pauseResume pauseChoice = iota
	pauseExit
)

// PauseScreen is a menu drawn over the frozen game.
type PauseScreen struct {
	menu *ui.Menu[pauseChoice]
}

// NewPauseScreen creates the pause menu with Resume selected.
func NewPauseScreen() *PauseScreen {
	return &PauseScreen{
		menu: ui.MustMenu(
			ui.Option[pauseChoice]{Label: "Resume Game", Value: pauseResume},
			ui.Option[pauseChoice]{Label: "Exit Game", Value: pauseExit},
		),
	}
}

func (s *PauseScreen) String() string { return "pause" }

// Input moves the cursor, and closes the menu or the game.
func (s *PauseScreen) Input(_ *Game, c ui.Console) Change {
	key, ok := c.PollKey()
	if !ok {
		return nil
	}

	switch key {
	case ui.KeyUp:
		s.menu.Prev()
	case ui.KeyDown:
		s.menu.Next()
	case ui.KeyEnter:
		switch s.menu.Selected().Value {
		case pauseResume:
			return RemoveTopScreen{}
		case pauseExit:
			return ExitGame{}
		}
	case ui.KeyEscape:
		return RemoveTopScreen{}
	}
	return nil
}

// Update does nothing.
func (s *PauseScreen) Update(*Game, ui.Console) Change {
	return nil
}

// Render draws the title and the menu centred on the console.
func (s *PauseScreen) Render(_ *Game, c ui.Console) {
	c.PrintPlain(geom.Pt(0, 0), "Paused")

	size := c.Size()
	origin := geom.Pt(size.Width/2-s.menu.Widest()/2, size.Height/2-s.menu.Len()/2)

	for i, opt := range s.menu.Items() {
		row := origin.Down(i)
		c.PrintPlain(row.Right(2), opt.Label)
		if s.menu.IsSelected(i) {
			c.PutPlain(row, '>')
		}
	}
}
