package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/verbonia/internal/telemetry"
	"github.com/samdwyer/verbonia/internal/ui"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Driver owns the game and the screen stack and pumps frames through them.
type Driver struct {
	game    *Game
	console ui.Console
	stack   Stack
	logger  *log.Logger
	frame   time.Duration
	frames  uint64
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger for stack transitions.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithFPS sets the frame rate used by Run. Non-positive values are ignored.
func WithFPS(fps int) Option {
	return func(d *Driver) {
		if fps > 0 {
			d.frame = time.Second / time.Duration(fps)
		}
	}
}

// NewDriver creates a driver with initial as the base screen.
func NewDriver(g *Game, c ui.Console, initial Screen, opts ...Option) *Driver {
	if g == nil || c == nil || initial == nil {
		panic("game: NewDriver requires a game, a console and an initial screen")
	}

	d := &Driver{
		game:    g,
		console: c,
		logger:  log.New(io.Discard),
		frame:   time.Second / DefaultFPS,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.stack.Push(initial)
	return d
}

// Game returns the driven game.
func (d *Driver) Game() *Game {
	return d.game
}

// Running reports whether any screen is left.
func (d *Driver) Running() bool {
	return d.stack.Len() > 0
}

// Depth returns the number of screens on the stack.
func (d *Driver) Depth() int {
	return d.stack.Len()
}

// Screen returns the screen at depth i, 0 being the bottom.
func (d *Driver) Screen(i int) Screen {
	return d.stack.At(i)
}

// Frames returns the number of frames stepped so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Step runs one frame and reports whether the game is still running.
//
// The top screen gets Input, then Update. The first change either returns is applied and
// ends the frame without drawing, so a screen is never updated or drawn in the frame it was
// pushed or popped. Otherwise every screen renders bottom to top and the console is
// flushed once.
func (d *Driver) Step(ctx context.Context) bool {
	if !d.Running() {
		return false
	}
	d.frames++

	top := d.stack.Top()
	if change := top.Input(d.game, d.console); change != nil {
		d.apply(ctx, change)
		return d.Running()
	}
	if change := top.Update(d.game, d.console); change != nil {
		d.apply(ctx, change)
		return d.Running()
	}

	d.console.Clear()
	for _, sc := range d.stack.All() {
		sc.Render(d.game, d.console)
	}
	d.console.Flush()
	return true
}

// Run steps frames at the configured rate until the stack empties or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.frame)
	defer ticker.Stop()

	d.logger.Info("game started", "fps", int(time.Second/d.frame))
	for d.Step(ctx) {
		select {
		case <-ctx.Done():
			d.logger.Info("game interrupted", "frames", d.frames)
			return ctx.Err()
		case <-ticker.C:
		}
	}
	d.logger.Info("game over", "frames", d.frames)
	return nil
}

func (d *Driver) apply(ctx context.Context, change Change) {
	_, span := telemetry.Tracer("game").Start(ctx, "screen.change")
	defer span.End()

	before := d.stack.Len()
	switch c := change.(type) {
	case PushScreen:
		if c.Screen == nil {
			panic("game: push of nil screen")
		}
		d.stack.Push(c.Screen)
	case RemoveTopScreen:
		d.stack.Pop()
		if d.stack.Len() == 0 {
			d.logger.Info("base screen removed, ending game")
		}
	case ExitGame:
		d.stack.Clear()
	default:
		panic(fmt.Sprintf("game: unknown screen change %T", change))
	}

	span.SetAttributes(
		attribute.String("change", change.String()),
		attribute.Int("depth.before", before),
		attribute.Int("depth.after", d.stack.Len()),
		attribute.Int64("frame", int64(d.frames)),
	)
	d.logger.Debug("screen change", "change", change, "depth", d.stack.Len(), "frame", d.frames)
}
