package hex

import "fmt"

// Point is a continuous position in pixel space.
type Point struct {
	X float32 `json:"x" toml:"x"`
	Y float32 `json:"y" toml:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Layout maps between axial coordinates and pixel space for an ideal grid.
// Hex (0, 0) is centered on the pixel origin.
type Layout interface {
	// HorizontalSpacing is the x distance between adjacent hex centers.
	HorizontalSpacing() float32

	// VerticalSpacing is the y distance between adjacent hex centers.
	VerticalSpacing() float32

	// PixelCenter returns the exact pixel center of a hex.
	PixelCenter(a Axial) Point

	// PixelRelative returns the offset of p from the center of the hex
	// containing it.
	PixelRelative(p Point) Point

	// NearestAxial returns the hex containing p.
	NearestAxial(p Point) Axial
}
