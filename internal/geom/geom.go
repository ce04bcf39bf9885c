// Package geom provides cell-based geometry for terminal layouts.
package geom

// Point is a position in terminal cells. Whether it is screen-absolute or
// local to some rectangle depends on context.
type Point struct {
	X int
	Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is a rectangle in terminal cells. X,Y is the top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether p (in the same coordinate space as r) falls
// inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ToLocal converts a screen-absolute point into r-local coordinates.
func (r Rect) ToLocal(p Point) Point {
	return p.Sub(r.Origin())
}

// ToScreen converts an r-local point into screen-absolute coordinates.
func (r Rect) ToScreen(p Point) Point {
	return p.Add(r.Origin())
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp shifts r so it fits inside bounds where possible, shrinking it as a
// last resort. Used to keep popup frames on screen.
func (r Rect) Clamp(bounds Rect) Rect {
	out := r
	if out.X+out.W > bounds.X+bounds.W {
		out.X = bounds.X + bounds.W - out.W
	}
	if out.Y+out.H > bounds.Y+bounds.H {
		out.Y = bounds.Y + bounds.H - out.H
	}
	if out.X < bounds.X {
		out.X = bounds.X
	}
	if out.Y < bounds.Y {
		out.Y = bounds.Y
	}
	if out.W > bounds.W {
		out.W = bounds.W
	}
	if out.H > bounds.H {
		out.H = bounds.H
	}
	return out
}
