package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/verbonia/internal/geom"
)

// MovePolicy decides whether an actor may step from one cell to another.
type MovePolicy func(m *Map, a *Actor, to geom.Point) bool

// Unbounded allows every move, including steps off the map.
func Unbounded(*Map, *Actor, geom.Point) bool {
	return true
}

// Collision allows moves onto passable tiles inside the map.
func Collision(m *Map, _ *Actor, to geom.Point) bool {
	return m.InBounds(to) && m.At(to).IsPassable()
}

// World holds the map and every actor on it. One actor is the player.
type World struct {
	Map    *Map
	Actors []*Actor
	player int
	policy MovePolicy
}

// New creates a world. The player is added as the first actor; others follow in order.
func New(m *Map, player *Actor, others ...*Actor) *World {
	if m == nil || player == nil {
		panic("world: New requires a map and a player")
	}

	actors := make([]*Actor, 0, len(others)+1)
	actors = append(actors, player)
	actors = append(actors, others...)

	return &World{
		Map:    m,
		Actors: actors,
		player: 0,
		policy: Unbounded,
	}
}

// Player returns the player's actor.
func (w *World) Player() *Actor {
	return w.Actors[w.player]
}

// SetMovePolicy replaces the rule consulted by Walk. A nil policy restores Unbounded.
func (w *World) SetMovePolicy(p MovePolicy) {
	if p == nil {
		p = Unbounded
	}
	w.policy = p
}

// Walk moves the player one step if the move policy allows it.
// It reports whether the player moved.
func (w *World) Walk(d geom.Direction) bool {
	player := w.Player()
	to := player.Pos.Move(d)
	if !w.policy(w.Map, player, to) {
		return false
	}
	player.Walk(d)
	return true
}

// ActorAt returns the first actor standing on p, or nil.
func (w *World) ActorAt(p geom.Point) *Actor {
	for _, a := range w.Actors {
		if a.Pos == p {
			return a
		}
	}
	return nil
}

// Actor looks up an actor by ID.
func (w *World) Actor(id uuid.UUID) (*Actor, error) {
	for _, a := range w.Actors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("world: no actor with id %s", id)
}

// Others returns every actor except the player.
func (w *World) Others() []*Actor {
	others := make([]*Actor, 0, len(w.Actors)-1)
	for i, a := range w.Actors {
		if i != w.player {
			others = append(others, a)
		}
	}
	return others
}
