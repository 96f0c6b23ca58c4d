package hex

// Spacing describes an ideal grid by the pixel distance between adjacent hex
// centers along each axis.
//
//	flat:   x = q*h             y = (q/2 + r)*v
//	pointy: x = (q + r/2)*h     y = r*v
//
// Zero spacings are allowed and describe a degenerate grid whose inverse
// transform is undefined.
type Spacing struct {
	orientation Orientation
	vertical    float32
	horizontal  float32
}

// NewSpacing returns the spacing model for orientation o.
func NewSpacing(o Orientation, horizontal, vertical float32) Spacing {
	return Spacing{orientation: o, vertical: vertical, horizontal: horizontal}
}

// FlatSpacing returns a flat-top spacing model.
func FlatSpacing(horizontal, vertical float32) Spacing {
	return NewSpacing(Flat, horizontal, vertical)
}

// PointySpacing returns a pointy-top spacing model.
func PointySpacing(horizontal, vertical float32) Spacing {
	return NewSpacing(Pointy, horizontal, vertical)
}

// Orientation returns the grid orientation.
func (s Spacing) Orientation() Orientation { return s.orientation }

// HorizontalSpacing implements [Layout].
func (s Spacing) HorizontalSpacing() float32 { return s.horizontal }

// VerticalSpacing implements [Layout].
func (s Spacing) VerticalSpacing() float32 { return s.vertical }

// PixelCenter implements [Layout].
func (s Spacing) PixelCenter(a Axial) Point {
	f := a.Float()
	if s.orientation == Pointy {
		return Point{X: (f.Q + f.R/2) * s.horizontal, Y: f.R * s.vertical}
	}
	return Point{X: f.Q * s.horizontal, Y: (0.5*f.Q + f.R) * s.vertical}
}

// PixelRelative implements [Layout].
func (s Spacing) PixelRelative(p Point) Point {
	return p.Sub(s.PixelCenter(s.NearestAxial(p)))
}

// NearestAxial implements [Layout].
func (s Spacing) NearestAxial(p Point) Axial {
	return s.Frac(p).Round()
}

// Frac returns the continuous axial position of p, before rounding.
func (s Spacing) Frac(p Point) FracAxial {
	ih := 1 / s.horizontal
	iv := 1 / s.vertical
	if s.orientation == Pointy {
		return FracAxial{Q: ih*p.X - 0.5*iv*p.Y, R: iv * p.Y}
	}
	return FracAxial{Q: ih * p.X, R: -0.5*ih*p.X + iv*p.Y}
}

var _ Layout = Spacing{}
