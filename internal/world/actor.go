package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/verbonia/internal/geom"
)

// Actor is anything with a position and health that lives in the world.
// Health is not clamped: it may go negative or above MaxHealth.
type Actor struct {
	ID        uuid.UUID
	Name      string
	Glyph     rune
	Pos       geom.Point
	Health    int
	MaxHealth int
}

// NewActor creates an actor at full health.
func NewActor(name string, glyph rune, pos geom.Point, maxHealth int) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Name:      name,
		Glyph:     glyph,
		Pos:       pos,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// Walk moves the actor one step. The actor knows nothing about map bounds.
func (a *Actor) Walk(d geom.Direction) {
	a.Pos = a.Pos.Move(d)
}

// IsDead returns true once health reaches zero or below.
func (a *Actor) IsDead() bool {
	return a.Health <= 0
}

// Hurt subtracts amount from health.
func (a *Actor) Hurt(amount int) {
	a.Health -= amount
}

// Heal adds amount to health.
func (a *Actor) Heal(amount int) {
	a.Health += amount
}

// Kill sets health to zero.
func (a *Actor) Kill() {
	a.Health = 0
}
