package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/verbonia/data"
	"github.com/samdwyer/verbonia/internal/config"
	"github.com/samdwyer/verbonia/internal/geom"
	"github.com/samdwyer/verbonia/internal/messages"
	"github.com/samdwyer/verbonia/internal/telemetry"
	"github.com/samdwyer/verbonia/internal/world"
)

// Load builds the starting game: the configured map (or the built-in one), the actor roster,
// and a message log holding the welcome text.
func Load(ctx context.Context, cfg config.Config) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	var (
		m   *world.Map
		err error
	)
	if cfg.Map.Path != "" {
		m, err = world.FromFile(ctx, cfg.Map.Path)
	} else {
		var text string
		if text, err = data.DefaultMap(); err == nil {
			m, err = world.FromString(text)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("game: failed to build map: %w", err)
	}

	roster, err := data.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("game: failed to load actors: %w", err)
	}

	w := world.New(m, newActor(roster.Player))
	for _, def := range roster.Actors {
		w.Actors = append(w.Actors, newActor(def))
	}
	if cfg.Rules.Collision {
		w.SetMovePolicy(world.Collision)
	}

	log := messages.NewLog(cfg.Log.Capacity)
	log.Info("Welcome to Verbonia.")
	log.Info("Arrow keys move, Esc pauses.")
	if !m.InBounds(w.Player().Pos) {
		log.Error(fmt.Sprintf("%s starts outside the %dx%d map.", w.Player().Name, m.Width(), m.Height()))
	}

	span.SetAttributes(
		attribute.Int("map.width", m.Width()),
		attribute.Int("map.height", m.Height()),
		attribute.Int("actors", len(w.Actors)),
		attribute.Bool("rules.collision", cfg.Rules.Collision),
	)
	return New(w, log), nil
}

func newActor(def data.ActorDef) *world.Actor {
	return world.NewActor(def.Name, def.GlyphRune(), geom.Pt(def.X, def.Y), def.MaxHealth)
}
