// Package geom holds the shared screen-space geometry primitives.
package geom

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsPoint reports whether the point (x, y) lies inside the rect.
// Edges count as inside, matching box semantics of the scene layer.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= float64(r.X) && x <= float64(r.X+r.Width) &&
		y >= float64(r.Y) && y <= float64(r.Y+r.Height)
}

// Center returns the center point of the rect.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Point is a position in global (layout) coordinates.
type Point struct {
	X float64
	Y float64
}
