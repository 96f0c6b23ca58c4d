package hex

import "math"

const (
	sqrt3     float32 = 1.7320508075688772
	sqrt3By2  float32 = sqrt3 / 2
	sqrt3By3  float32 = sqrt3 / 3
	oneThird  float32 = 1.0 / 3
	twoThirds float32 = 2.0 / 3
)

// matrix is a row-major 2x2 matrix.
type matrix [2][2]float32

func (m matrix) apply(a, b float32) (float32, float32) {
	return m[0][0]*a + m[0][1]*b, m[1][0]*a + m[1][1]*b
}

var (
	flatForward   = matrix{{1.5, 0}, {sqrt3By2, sqrt3}}
	flatInverse   = matrix{{twoThirds, 0}, {-oneThird, sqrt3By3}}
	pointyForward = matrix{{sqrt3, sqrt3By2}, {0, 1.5}}
	pointyInverse = matrix{{sqrt3By3, -oneThird}, {0, twoThirds}}
)

// Geometry is a regular hexagon of a given size, where size is the radius of
// the circumscribed circle. All other measures derive from size.
type Geometry struct {
	orientation Orientation
	size        float32
	width       float32
	height      float32
	innerRadius float32
	outerRadius float32
	vertical    float32
	horizontal  float32
	vertices    [6]Point
}

// NewGeometry returns the geometry of a regular hexagon of orientation o.
func NewGeometry(o Orientation, size float32) Geometry {
	if o == Pointy {
		return PointyGeometry(size)
	}
	return FlatGeometry(size)
}

// FlatGeometry returns a flat-top hexagon with vertices at 0°, 60°, ... 300°.
func FlatGeometry(size float32) Geometry {
	return Geometry{
		orientation: Flat,
		size:        size,
		width:       2 * size,
		height:      sqrt3 * size,
		innerRadius: sqrt3By2 * size,
		outerRadius: size,
		vertical:    sqrt3 * size,
		horizontal:  1.5 * size,
		vertices:    vertices(size, 0),
	}
}

// PointyGeometry returns a pointy-top hexagon with vertices at 30°, 90°, ... 330°.
func PointyGeometry(size float32) Geometry {
	return Geometry{
		orientation: Pointy,
		size:        size,
		width:       sqrt3 * size,
		height:      2 * size,
		innerRadius: sqrt3By2 * size,
		outerRadius: size,
		vertical:    1.5 * size,
		horizontal:  sqrt3 * size,
		vertices:    vertices(size, 30),
	}
}

func vertices(size float32, offsetDeg float64) [6]Point {
	var pts [6]Point
	for i := range pts {
		ang := (float64(i)*60 + offsetDeg) * math.Pi / 180
		pts[i] = Point{
			X: size * float32(math.Cos(ang)),
			Y: size * float32(math.Sin(ang)),
		}
	}
	return pts
}

// Orientation returns whether the hexagon is flat-top or pointy-top.
func (g Geometry) Orientation() Orientation { return g.orientation }

// Size returns the center-to-corner distance the geometry was built from.
func (g Geometry) Size() float32 { return g.size }

// Width returns the horizontal extent of one hexagon.
func (g Geometry) Width() float32 { return g.width }

// Height returns the vertical extent of one hexagon.
func (g Geometry) Height() float32 { return g.height }

// InnerRadius returns the center-to-edge distance, √3/2 of the size.
func (g Geometry) InnerRadius() float32 { return g.innerRadius }

// OuterRadius returns the center-to-corner distance, equal to the size.
func (g Geometry) OuterRadius() float32 { return g.outerRadius }

// Vertices returns the hexagon outline relative to its center.
func (g Geometry) Vertices() [6]Point { return g.vertices }

// Corners returns the outline of hex a in pixel space.
func (g Geometry) Corners(a Axial) [6]Point {
	c := g.PixelCenter(a)
	var pts [6]Point
	for i, v := range g.vertices {
		pts[i] = c.Add(v)
	}
	return pts
}

// Spacing returns the equivalent spacing-only model.
func (g Geometry) Spacing() Spacing {
	return NewSpacing(g.orientation, g.horizontal, g.vertical)
}

// HorizontalSpacing implements [Layout].
func (g Geometry) HorizontalSpacing() float32 { return g.horizontal }

// VerticalSpacing implements [Layout].
func (g Geometry) VerticalSpacing() float32 { return g.vertical }

// PixelCenter implements [Layout].
func (g Geometry) PixelCenter(a Axial) Point {
	m := flatForward
	if g.orientation == Pointy {
		m = pointyForward
	}
	f := a.Float()
	x, y := m.apply(f.Q, f.R)
	return Point{X: g.size * x, Y: g.size * y}
}

// PixelRelative implements [Layout].
func (g Geometry) PixelRelative(p Point) Point {
	return p.Sub(g.PixelCenter(g.NearestAxial(p)))
}

// NearestAxial implements [Layout].
func (g Geometry) NearestAxial(p Point) Axial {
	m := flatInverse
	if g.orientation == Pointy {
		m = pointyInverse
	}
	q, r := m.apply(p.X, p.Y)
	return Round(q/g.size, r/g.size)
}

var _ Layout = Geometry{}
