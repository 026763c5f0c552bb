// Package geom provides the integer geometry used by the world and the UI.
package geom

// Point is a 2D cell coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Move returns the neighbouring point in the given direction.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Offset())
}

// Up returns p moved n cells up.
func (p Point) Up(n int) Point { return Point{X: p.X, Y: p.Y - n} }

// Down returns p moved n cells down.
func (p Point) Down(n int) Point { return Point{X: p.X, Y: p.Y + n} }

// Left returns p moved n cells left.
func (p Point) Left(n int) Point { return Point{X: p.X - n, Y: p.Y} }

// Right returns p moved n cells right.
func (p Point) Right(n int) Point { return Point{X: p.X + n, Y: p.Y} }

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Add grows s by o. Negative components shrink it.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Area returns the number of cells covered.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Rect is an axis-aligned rectangle covering [X, X+Width) x [Y, Y+Height).
type Rect struct {
	Location Point
	Size     Size
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Location: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// X returns the left edge.
func (r Rect) X() int { return r.Location.X }

// Y returns the top edge.
func (r Rect) Y() int { return r.Location.Y }

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Size.Width }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Size.Height }

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.Location.X + r.Size.Width
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Location.Y + r.Size.Height
}

// Translate returns r moved by the offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Location: r.Location.Add(offset), Size: r.Size}
}

// Resize returns r with its size grown by delta.
func (r Rect) Resize(delta Size) Rect {
	return Rect{Location: r.Location, Size: r.Size.Add(delta)}
}

// Inner returns the area left inside a one-cell border.
func (r Rect) Inner() Rect {
	return r.Translate(Point{X: 1, Y: 1}).Resize(Size{Width: -2, Height: -2})
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Location.X && p.X < r.Right() && p.Y >= r.Location.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Location.X + r.Size.Width/2, Y: r.Location.Y + r.Size.Height/2}
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.Location.X < other.Right() &&
		r.Right() > other.Location.X &&
		r.Location.Y < other.Bottom() &&
		r.Bottom() > other.Location.Y
}
