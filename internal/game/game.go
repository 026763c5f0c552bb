// Package game drives the screen stack: each frame the top screen handles input and
// updates, then every screen renders bottom to top.
package game

import (
	"github.com/samdwyer/verbonia/internal/messages"
	"github.com/samdwyer/verbonia/internal/world"
)

// Game holds the state shared by every screen for the whole run.
type Game struct {
	World *world.World
	Log   *messages.Log
}

// New creates a game around a world and its message log.
func New(w *world.World, log *messages.Log) *Game {
	if log == nil {
		log = messages.NewLog(messages.DefaultCapacity)
	}
	return &Game{World: w, Log: log}
}
