package game

// Entity is the shared base for every positioned, sized actor. Owners mutate
// position in place each frame; there is no shared update or draw dispatch.
type Entity struct {
	X, Y          int
	Width, Height int
}

// Rect returns the entity's collision rectangle
func (e *Entity) Rect() Rectangle {
	return Rectangle{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}
