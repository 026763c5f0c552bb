package game

import (
	"fmt"

	"github.com/samdwyer/verbonia/internal/ui"
)

// Screen is one layer of the UI. The driver calls Input and Update on the top screen only,
// and Render on every screen. Screens must not keep the Game or Console between calls.
type Screen interface {
	// Input handles at most one pending key.
	Input(g *Game, c ui.Console) Change
	// Update advances the screen's simulation by one frame.
	Update(g *Game, c ui.Console) Change
	// Render draws the screen. It must not change the game.
	Render(g *Game, c ui.Console)
}

// Change is a request to alter the screen stack. A nil Change leaves the stack alone.
type Change interface {
	fmt.Stringer
	isChange()
}

// PushScreen puts a new screen on top of the stack.
type PushScreen struct {
	Screen Screen
}

// RemoveTopScreen pops the top screen. Popping the last screen ends the game.
type RemoveTopScreen struct{}

// ExitGame empties the stack, ending the game.
type ExitGame struct{}

func (PushScreen) isChange()      {}
func (RemoveTopScreen) isChange() {}
func (ExitGame) isChange()        {}

func (c PushScreen) String() string { return "push " + screenName(c.Screen) }

func (RemoveTopScreen) String() string { return "remove_top" }

func (ExitGame) String() string { return "exit" }

func screenName(s Screen) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
