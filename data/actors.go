package data

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ActorDef places one actor at the start of the game.
type ActorDef struct {
	Name      string `json:"name"`
	Glyph     string `json:"glyph"` // Single character for rendering (e.g., "d")
	X         int    `json:"x"`
	Y         int    `json:"y"`
	MaxHealth int    `json:"maxHealth"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(a.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Roster represents the structure of actors.json.
type Roster struct {
	Player ActorDef   `json:"player"`
	Actors []ActorDef `json:"actors"`
}

// Validate checks that every actor is named and alive.
func (r *Roster) Validate() error {
	if r.Player.Name == "" {
		return errors.New("roster: player has no name")
	}
	for i, a := range append([]ActorDef{r.Player}, r.Actors...) {
		if a.MaxHealth <= 0 {
			return fmt.Errorf("roster: actor %d (%s) has max health %d", i, a.Name, a.MaxHealth)
		}
	}
	return nil
}

// LoadRoster loads the starting actors from the embedded actors.json file.
func LoadRoster() (Roster, error) {
	roster, err := Load[Roster]("actors.json")
	if err != nil {
		return roster, err
	}
	if err := roster.Validate(); err != nil {
		return roster, err
	}
	return roster, nil
}
