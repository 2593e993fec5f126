package layout

// Point is a position in some control's coordinate space.
type Point struct {
	X, Y int
}

// Add offsets p by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scaled returns p multiplied by s, for drawing at a scale factor.
func (p Point) Scaled(s float64) (x, y float64) {
	return float64(p.X) * s, float64(p.Y) * s
}
