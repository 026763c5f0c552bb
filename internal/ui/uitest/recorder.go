// Package uitest provides an in-memory Console for testing screens.
package uitest

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/verbonia/internal/geom"
	"github.com/samdwyer/verbonia/internal/ui"
)

// Cell is one recorded console cell.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Recorder is a ui.Console that keeps what was drawn in memory and replays scripted keys.
type Recorder struct {
	size    geom.Size
	cells   [][]Cell
	keys    []ui.Key
	Flushes int
	Clears  int
}

var _ ui.Console = (*Recorder)(nil)

// NewRecorder creates a blank console of the given size.
func NewRecorder(size geom.Size) *Recorder {
	r := &Recorder{size: size}
	r.cells = make([][]Cell, size.Height)
	for y := range r.cells {
		r.cells[y] = make([]Cell, size.Width)
	}
	r.Clear()
	r.Clears = 0
	return r
}

// Press queues keys to be returned by PollKey, one per call.
func (r *Recorder) Press(keys ...ui.Key) {
	r.keys = append(r.keys, keys...)
}

// Pending returns the number of queued keys.
func (r *Recorder) Pending() int {
	return len(r.keys)
}

// Put records one character. Out-of-bounds positions are ignored.
func (r *Recorder) Put(pos geom.Point, ch rune, fg, bg tcell.Color) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= r.size.Width || pos.Y >= r.size.Height {
		return
	}
	r.cells[pos.Y][pos.X] = Cell{Rune: ch, Fg: fg, Bg: bg}
}

// PutPlain records one character in the default colours.
func (r *Recorder) PutPlain(pos geom.Point, ch rune) {
	r.Put(pos, ch, ui.DefaultForeground, ui.DefaultBackground)
}

// Print records text left to right.
func (r *Recorder) Print(pos geom.Point, text string, fg, bg tcell.Color) {
	x := pos.X
	for _, ch := range text {
		r.Put(geom.Pt(x, pos.Y), ch, fg, bg)
		x++
	}
}

// PrintPlain records text in the default colours.
func (r *Recorder) PrintPlain(pos geom.Point, text string) {
	r.Print(pos, text, ui.DefaultForeground, ui.DefaultBackground)
}

// Clear blanks every cell.
func (r *Recorder) Clear() {
	for y := range r.cells {
		for x := range r.cells[y] {
			r.cells[y][x] = Cell{Rune: ' ', Fg: ui.DefaultForeground, Bg: ui.DefaultBackground}
		}
	}
	r.Clears++
}

// Flush counts the call.
func (r *Recorder) Flush() {
	r.Flushes++
}

// Size returns the console size.
func (r *Recorder) Size() geom.Size {
	return r.size
}

// PollKey pops the next queued key.
func (r *Recorder) PollKey() (ui.Key, bool) {
	if len(r.keys) == 0 {
		return ui.KeyNone, false
	}
	k := r.keys[0]
	r.keys = r.keys[1:]
	return k, true
}

// At returns the cell at pos.
func (r *Recorder) At(pos geom.Point) Cell {
	return r.cells[pos.Y][pos.X]
}

// Row returns row y as text.
func (r *Recorder) Row(y int) string {
	var sb strings.Builder
	for _, c := range r.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Find returns the first position holding ch.
func (r *Recorder) Find(ch rune) (geom.Point, bool) {
	for y, row := range r.cells {
		for x, c := range row {
			if c.Rune == ch {
				return geom.Pt(x, y), true
			}
		}
	}
	return geom.Point{}, false
}
