package game

// Rectangle is an axis-aligned rectangle in screen coordinates
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// NewRectangle creates a rectangle at (x, y) with the given size
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// CollidesWith reports whether the two rectangles overlap.
// Touching edges do not count as a collision.
func (r Rectangle) CollidesWith(other Rectangle) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
