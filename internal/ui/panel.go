package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/verbonia/internal/geom"
)

// Panel is a titled, bordered region of the console.
// Drawing through a panel is relative to its inner area and clipped to it.
type Panel struct {
	Title string
	Rect  geom.Rect
}

// NewPanel creates a panel covering rect.
func NewPanel(title string, rect geom.Rect) Panel {
	return Panel{Title: title, Rect: rect}
}

// Inner returns the drawable area inside the border, in console coordinates.
func (p Panel) Inner() geom.Rect {
	return p.Rect.Inner()
}

// Draw draws the border and title.
func (p Panel) Draw(c Console) {
	DrawBox(c, p.Rect)
	if p.Title == "" || p.Rect.Width() < len(p.Title)+4 {
		return
	}
	c.Print(p.Rect.Location.Right(2), " "+p.Title+" ", tcell.ColorBlack, Accent)
}

// Put draws a character at pos relative to the inner area.
func (p Panel) Put(c Console, pos geom.Point, r rune, fg, bg tcell.Color) {
	inner := p.Inner()
	at := pos.Add(inner.Location)
	if !inner.Contains(at) {
		return
	}
	c.Put(at, r, fg, bg)
}

// Print draws text at pos relative to the inner area, cut at the right edge.
func (p Panel) Print(c Console, pos geom.Point, text string, fg, bg tcell.Color) {
	inner := p.Inner()
	at := pos.Add(inner.Location)
	if at.Y < inner.Y() || at.Y >= inner.Bottom() {
		return
	}
	room := inner.Right() - at.X
	if room <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > room {
		runes = runes[:room]
	}
	c.Print(at, string(runes), fg, bg)
}

// DrawBox outlines r with line-drawing characters.
func DrawBox(c Console, r geom.Rect) {
	if r.Width() < 2 || r.Height() < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	c.PutPlain(geom.Pt(r.X(), r.Y()), tcell.RuneULCorner)
	c.PutPlain(geom.Pt(right, r.Y()), tcell.RuneURCorner)
	c.PutPlain(geom.Pt(r.X(), bottom), tcell.RuneLLCorner)
	c.PutPlain(geom.Pt(right, bottom), tcell.RuneLRCorner)

	for x := r.X() + 1; x < right; x++ {
		c.PutPlain(geom.Pt(x, r.Y()), tcell.RuneHLine)
		c.PutPlain(geom.Pt(x, bottom), tcell.RuneHLine)
	}
	for y := r.Y() + 1; y < bottom; y++ {
		c.PutPlain(geom.Pt(r.X(), y), tcell.RuneVLine)
		c.PutPlain(geom.Pt(right, y), tcell.RuneVLine)
	}
}
