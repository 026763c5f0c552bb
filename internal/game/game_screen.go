package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/verbonia/internal/geom"
	"github.com/samdwyer/verbonia/internal/messages"
	"github.com/samdwyer/verbonia/internal/ui"
	"github.com/samdwyer/verbonia/internal/world"
)

const (
	infoWidth = 19

	// Scroll margins inside the map frame, in cells from each edge.
	scrollMarginX = 10
	scrollMarginY = 5

	playerGlyph = '@'
	corpseGlyph = '%'
)

var directions = map[ui.Key]geom.Direction{
	ui.KeyUp:    geom.Up,
	ui.KeyDown:  geom.Down,
	ui.KeyLeft:  geom.Left,
	ui.KeyRight: geom.Right,
}

// GameScreen shows the map, the player's stats and the message log, and moves the player.
type GameScreen struct {
	info     ui.Panel
	board    ui.Panel
	messages ui.Panel
	view     geom.Point // map cell shown at the board's inner top-left
	palette  ui.Palette
	seen     uuid.UUID // last actor the player came across
}

// NewGameScreen lays out the panels for a console of the given size.
// Row 0 is the title bar, the info panel runs down the left, and the map sits above the messages.
func NewGameScreen(size geom.Size, palette ui.Palette) *GameScreen {
	if palette == nil {
		palette = ui.DefaultPalette()
	}

	body := size.Height - 1
	msgHeight := max(5, body*2/7)
	rightWidth := size.Width - infoWidth

	return &GameScreen{
		info:     ui.NewPanel("Info", geom.NewRect(0, 1, infoWidth, body)),
		board:    ui.NewPanel("Map", geom.NewRect(infoWidth, 1, rightWidth, body-msgHeight)),
		messages: ui.NewPanel("Messages", geom.NewRect(infoWidth, 1+body-msgHeight, rightWidth, msgHeight)),
		palette:  palette,
	}
}

func (s *GameScreen) String() string { return "game" }

// View returns the map coordinate at the top-left of the map frame.
func (s *GameScreen) View() geom.Point {
	return s.view
}

// Frame returns the console area the map is drawn into.
func (s *GameScreen) Frame() geom.Rect {
	return s.board.Inner()
}

// Input moves the player with the arrow keys and opens the pause menu on Escape.
func (s *GameScreen) Input(g *Game, c ui.Console) Change {
	key, ok := c.PollKey()
	if !ok {
		return nil
	}

	if key == ui.KeyEscape {
		return PushScreen{Screen: NewPauseScreen()}
	}
	if dir, ok := directions[key]; ok {
		s.look(g, g.World.Player().Pos.Move(dir))
		if !g.World.Walk(dir) {
			g.Log.Info(fmt.Sprintf("You cannot go %s.", dir))
		}
	}
	return nil
}

// look reports an actor on the cell the player is stepping toward and remembers it
// for the info panel.
func (s *GameScreen) look(g *Game, target geom.Point) {
	a := g.World.ActorAt(target)
	if a == nil || a == g.World.Player() {
		return
	}
	g.Log.Info(fmt.Sprintf("You see the %s.", a.Name))
	s.seen = a.ID
}

// Seen returns the ID of the last actor the player came across, or uuid.Nil.
func (s *GameScreen) Seen() uuid.UUID {
	return s.seen
}

// Update does nothing yet; time-based simulation will hook in here.
func (s *GameScreen) Update(*Game, ui.Console) Change {
	return nil
}

// Render scrolls the view toward the player, then draws every panel.
func (s *GameScreen) Render(g *Game, c ui.Console) {
	s.follow(g.World.Map, g.World.Player().Pos)

	s.drawBorders(c)
	s.drawInfo(g, c)
	s.drawMap(g, c)
	s.drawActors(g, c)
	s.drawPlayer(g, c)
	s.drawMessages(g, c)
}

// follow nudges the view one cell per axis toward a player who has crossed a margin.
// The view never leaves the map, and a player moving faster than one cell per frame
// outruns it until they stop.
func (s *GameScreen) follow(m *world.Map, player geom.Point) {
	frame := s.Frame()
	pos := player.Add(frame.Location).Sub(s.view)
	mx := margin(scrollMarginX, frame.Width())
	my := margin(scrollMarginY, frame.Height())

	switch {
	case pos.X >= frame.Right()-mx && s.view.X+frame.Width() < m.Width():
		s.view.X++
	case pos.X <= frame.X()+mx && s.view.X > 0:
		s.view.X--
	}

	switch {
	case pos.Y >= frame.Bottom()-my && s.view.Y+frame.Height() < m.Height():
		s.view.Y++
	case pos.Y <= frame.Y()+my && s.view.Y > 0:
		s.view.Y--
	}
}

// margin shrinks a scroll margin on narrow frames so the two edges leave at least
// one resting column between them. Overlapping margins would bounce the view.
func margin(want, extent int) int {
	return max(0, min(want, (extent-2)/2))
}

// visible returns the map cells shown in the frame, clipped for maps smaller than it.
func (s *GameScreen) visible(m *world.Map) geom.Rect {
	frame := s.Frame()
	return geom.Rect{
		Location: s.view,
		Size: geom.Sz(
			min(frame.Width(), m.Width()-s.view.X),
			min(frame.Height(), m.Height()-s.view.Y),
		),
	}
}

func (s *GameScreen) drawBorders(c ui.Console) {
	width := c.Size().Width
	for x := 0; x < width; x++ {
		c.Put(geom.Pt(x, 0), ' ', tcell.ColorBlack, ui.Accent)
	}
	c.Print(geom.Pt(1, 0), "Verbonia", tcell.ColorBlack, ui.Accent)

	s.info.Draw(c)
	s.board.Draw(c)
	s.messages.Draw(c)
}

func (s *GameScreen) drawInfo(g *Game, c ui.Console) {
	p := g.World.Player()
	healthColor := ui.DefaultForeground
	if p.IsDead() {
		healthColor = tcell.ColorRed
	}

	s.info.Print(c, geom.Pt(0, 0), p.Name, tcell.ColorYellow, ui.DefaultBackground)
	s.info.Print(c, geom.Pt(0, 2), fmt.Sprintf("HP  %d/%d", p.Health, p.MaxHealth), healthColor, ui.DefaultBackground)
	s.info.Print(c, geom.Pt(0, 3), fmt.Sprintf("Pos %d,%d", p.Pos.X, p.Pos.Y), ui.DefaultForeground, ui.DefaultBackground)
	s.info.Print(c, geom.Pt(0, 5), fmt.Sprintf("Actors %d", len(g.World.Actors)), ui.DefaultForeground, ui.DefaultBackground)

	if s.seen == uuid.Nil {
		return
	}
	a, err := g.World.Actor(s.seen)
	if err != nil {
		s.seen = uuid.Nil
		return
	}
	status := fmt.Sprintf("HP  %d/%d", a.Health, a.MaxHealth)
	if a.IsDead() {
		status = "dead"
	}
	s.info.Print(c, geom.Pt(0, 7), "Seen", ui.Accent, ui.DefaultBackground)
	s.info.Print(c, geom.Pt(0, 8), a.Name, tcell.ColorYellow, ui.DefaultBackground)
	s.info.Print(c, geom.Pt(0, 9), status, ui.DefaultForeground, ui.DefaultBackground)
}

func (s *GameScreen) drawMap(g *Game, c ui.Console) {
	for y, row := range g.World.Map.Region(s.visible(g.World.Map)) {
		for x, tile := range row {
			s.board.Put(c, geom.Pt(x, y), tile.Rune(), tcell.ColorGray, s.palette.Color(tile))
		}
	}
}

func (s *GameScreen) drawActors(g *Game, c ui.Console) {
	shown := s.visible(g.World.Map)
	for _, a := range g.World.Others() {
		if !shown.Contains(a.Pos) {
			continue
		}
		glyph, fg := a.Glyph, tcell.ColorYellow
		if a.IsDead() {
			glyph, fg = corpseGlyph, tcell.ColorDarkRed
		}
		s.board.Put(c, a.Pos.Sub(s.view), glyph, fg, s.palette.Color(g.World.Map.At(a.Pos)))
	}
}

func (s *GameScreen) drawPlayer(g *Game, c ui.Console) {
	pos := g.World.Player().Pos
	if !s.visible(g.World.Map).Contains(pos) {
		return
	}
	s.board.Put(c, pos.Sub(s.view), playerGlyph, ui.DefaultForeground, s.palette.Color(g.World.Map.At(pos)))
}

func (s *GameScreen) drawMessages(g *Game, c ui.Console) {
	for i, msg := range g.Log.Latest(s.messages.Inner().Height()) {
		fg := ui.DefaultForeground
		if msg.Type == messages.Error {
			fg = tcell.ColorRed
		}
		s.messages.Print(c, geom.Pt(0, i), msg.Text, fg, ui.DefaultBackground)
	}
}
