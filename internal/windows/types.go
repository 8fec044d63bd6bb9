package windows

// Point is a position in pixels
type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height in pixels
type Size struct {
	Width, Height int
}

// Rect is a screen rectangle with its top-left corner at X, Y
type Rect struct {
	X, Y, Width, Height int
}

// Origin returns the top-left corner of r
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// CenterIn returns the top-left position that centers a window of the
// given size inside area. Windows larger than area are pinned to its origin
// on the overflowing axis.
func CenterIn(area Rect, size Size) Point {
	return Point{
		X: area.X + centerOffset(area.Width, size.Width),
		Y: area.Y + centerOffset(area.Height, size.Height),
	}
}

func centerOffset(outer, inner int) int {
	if inner >= outer {
		return 0
	}

	return (outer - inner) / 2
}
