package tetris

// Rectangle is an axis-aligned, inclusive integer rectangle.
type Rectangle struct {
	MinX int
	MaxX int
	MinY int
	MaxY int
}

// NewRectangle creates a rectangle spanning both corners, in any order.
func NewRectangle(x1, y1, x2, y2 int) Rectangle {
	return Rectangle{
		MinX: min(x1, x2),
		MaxX: max(x1, x2),
		MinY: min(y1, y2),
		MaxY: max(y1, y2),
	}
}

// Translate returns the rectangle moved by dx columns and dy rows.
func (r Rectangle) Translate(dx, dy int) Rectangle {
	return Rectangle{
		MinX: r.MinX + dx,
		MaxX: r.MaxX + dx,
		MinY: r.MinY + dy,
		MaxY: r.MaxY + dy,
	}
}

// Contains checks if a point lies inside the rectangle.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width returns the number of columns covered.
func (r Rectangle) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered.
func (r Rectangle) Height() int {
	return r.MaxY - r.MinY + 1
}
