package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/verbonia/internal/geom"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term, err := newTerminal(sim, geom.Sz(20, 5))
	if err != nil {
		t.Fatalf("newTerminal() failed: %v", err)
	}
	sim.SetSize(20, 5)
	t.Cleanup(term.Close)
	return term, sim
}

func TestTerminalPrint(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.PrintPlain(geom.Pt(1, 2), "hi")
	term.Put(geom.Pt(0, 0), '@', tcell.ColorYellow, tcell.ColorBlack)
	term.Flush()

	cells, width, _ := sim.GetContents()
	if got := cells[2*width+1].Runes; len(got) == 0 || got[0] != 'h' {
		t.Errorf("cell (1,2) = %q, want 'h'", got)
	}
	if got := cells[0].Runes; len(got) == 0 || got[0] != '@' {
		t.Errorf("cell (0,0) = %q, want '@'", got)
	}
	if term.Size() != geom.Sz(20, 5) {
		t.Errorf("Size() = %v, want 20x5", term.Size())
	}
}

func TestTerminalPollKey(t *testing.T) {
	term, sim := newSimTerminal(t)

	if k, ok := term.PollKey(); ok {
		t.Fatalf("PollKey() with no input = %v, want none", k)
	}

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if k, ok := term.PollKey(); ok {
			if k != KeyUp {
				t.Errorf("PollKey() = %v, want up", k)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("PollKey() never returned the injected key")
}
