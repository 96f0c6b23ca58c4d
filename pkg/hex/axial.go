package hex

import (
	"fmt"

	errs "github.com/matzehuels/hextile/pkg/errors"
)

// ErrDegenerateLine is returned by [PointOnLine] when both endpoints are the
// same hex and the interpolation parameter is undefined.
var ErrDegenerateLine = errs.New(errs.ErrCodeDegenerateLine, "line endpoints coincide")

// Axial is a hex position in axial coordinates.
// The zero value is the origin.
type Axial struct {
	Q int `json:"q" toml:"q"`
	R int `json:"r" toml:"r"`
}

// FracAxial is a continuous position in axial space.
type FracAxial struct {
	Q float32 `json:"q" toml:"q"`
	R float32 `json:"r" toml:"r"`
}

// New returns the axial coordinate (q, r).
func New(q, r int) Axial {
	return Axial{Q: q, R: r}
}

// FromPair returns the axial coordinate for a (q, r) pair.
func FromPair(qr [2]int) Axial {
	return Axial{Q: qr[0], R: qr[1]}
}

// S returns the third cube coordinate, -q-r.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Add returns a + b.
func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Sub returns a - b.
func (a Axial) Sub(b Axial) Axial {
	return Axial{Q: a.Q - b.Q, R: a.R - b.R}
}

// Neg returns -a.
func (a Axial) Neg() Axial {
	return Axial{Q: -a.Q, R: -a.R}
}

// Scale multiplies both components by k.
func (a Axial) Scale(k int) Axial {
	return Axial{Q: a.Q * k, R: a.R * k}
}

// ScaleFloat multiplies both components by f. The result is not an Axial;
// use [FracAxial.Round] to snap it back onto the grid.
func (a Axial) ScaleFloat(f float32) FracAxial {
	return FracAxial{Q: float32(a.Q) * f, R: float32(a.R) * f}
}

// Length returns the hex distance from the origin.
func (a Axial) Length() int {
	return (abs(a.Q) + abs(a.Q+a.R) + abs(a.R)) / 2
}

// DistanceTo returns the hex distance between a and b.
func (a Axial) DistanceTo(b Axial) int {
	return a.Sub(b).Length()
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func (a Axial) Lerp(b Axial, t float32) FracAxial {
	p := a.ScaleFloat(1 - t)
	q := b.ScaleFloat(t)
	return FracAxial{Q: p.Q + q.Q, R: p.R + q.R}
}

// PointOnLine returns the hex at hex distance dist along the segment from p1
// to p2. p1 and p2 must differ; otherwise the error wraps [ErrDegenerateLine].
func PointOnLine(p1, p2 Axial, dist float32) (Axial, error) {
	n := p1.DistanceTo(p2)
	if n == 0 {
		return Axial{}, errs.Wrap(errs.ErrCodeDegenerateLine, ErrDegenerateLine, "point on line %v-%v", p1, p2)
	}
	return p1.Lerp(p2, dist/float32(n)).Round(), nil
}

// Line returns every hex on the segment from p1 to p2, both ends included.
func Line(p1, p2 Axial) []Axial {
	n := p1.DistanceTo(p2)
	if n == 0 {
		return []Axial{p1}
	}
	out := make([]Axial, 0, n+1)
	for i := 0; i <= n; i++ {
		// n > 0, so PointOnLine cannot fail.
		a, _ := PointOnLine(p1, p2, float32(i))
		out = append(out, a)
	}
	return out
}

// Circle returns the ring of hexes at distance radius around a.
func (a Axial) Circle(radius uint) *Ring {
	return NewRing(a, radius)
}

// Neighbours returns the six adjacent hexes, in ring order.
func (a Axial) Neighbours() *Ring {
	return a.Circle(1)
}

// Tuple returns (q, r).
func (a Axial) Tuple() (int, int) {
	return a.Q, a.R
}

// Float returns a as a continuous position.
func (a Axial) Float() FracAxial {
	return FracAxial{Q: float32(a.Q), R: float32(a.R)}
}

// String formats a as "(q, r)".
func (a Axial) String() string {
	return fmt.Sprintf("(%d, %d)", a.Q, a.R)
}

// S returns the third cube coordinate, -q-r.
func (f FracAxial) S() float32 {
	return -f.Q - f.R
}

// Round snaps f to the nearest hex. See [Round].
func (f FracAxial) Round() Axial {
	return Round(f.Q, f.R)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
