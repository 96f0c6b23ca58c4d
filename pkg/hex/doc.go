// Package hex provides coordinate mathematics for hexagonal grids.
//
// # Axial Coordinates
//
// [Axial] is an integer (q, r) pair. The third cube coordinate s = -q-r is
// derived on demand and never stored, so every value built through [New],
// arithmetic or [Round] satisfies q + r + s == 0.
//
//	a := hex.New(-1, 3)
//	a.Length()                     // 3
//	a.DistanceTo(hex.New(2, -2))   // 5
//
// Scaling by a float or interpolating leaves axial space and yields a
// [FracAxial]; it re-enters through [FracAxial.Round], which applies cube
// rounding:
//
//	hex.Round(5.4, 3.2)    // (6, 3)
//	hex.Round(2.3, -13.6)  // (2, -13)
//
// The rounding tie-break checks q first, then r, and otherwise keeps q and r.
// Callers that persist rounded positions depend on that order.
//
// # Rings
//
// [Axial.Circle] returns a [Ring], a single-pass iterator over the hexes at an
// exact distance from a center. Radius 0 yields the center alone; radius R
// yields 6R hexes, starting at (0, R) relative to the center and walking the
// six legs of the ring in a fixed order.
//
//	ring := hex.New(1, -1).Circle(2)
//	for a := range ring.All() {
//	    fmt.Println(a)
//	}
//
// # Pixel Transforms
//
// The [Layout] interface maps between axial coordinates and continuous pixel
// space. Two implementations are provided:
//
//   - [Spacing]: only the distances between adjacent hex centers
//   - [Geometry]: a regular hexagon of a given size, with its vertices
//
// Both support [Flat] and [Pointy] orientations. The orientation is fixed at
// construction.
//
// # Concurrency
//
// [Axial], [FracAxial], [Point], [Spacing] and [Geometry] are immutable values
// and safe for concurrent use. A [Ring] carries iteration state and belongs to
// one consumer.
package hex
