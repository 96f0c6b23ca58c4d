package hex

import "math"

// Round snaps the continuous axial position (qf, rf) to the nearest hex.
//
// Each cube component is rounded to the nearest integer, halves away from
// zero. The component with the largest rounding error is then rebuilt from
// the other two so that q + r + s == 0 holds:
//
//  1. q, if its error is strictly greater than both the r and s errors;
//  2. otherwise r, if its error is strictly greater than the s error;
//  3. otherwise s, which is implicit, so q and r are kept as rounded.
//
// The errors are compared in float32. Reordering the checks changes the
// result for tie inputs.
func Round(qf, rf float32) Axial {
	sf := -qf - rf

	q := round32(qf)
	r := round32(rf)
	s := round32(sf)

	qd := abs32(q - qf)
	rd := abs32(r - rf)
	sd := abs32(s - sf)

	qi, ri, si := int(q), int(r), int(s)
	switch {
	case qd > rd && qd > sd:
		qi = -(ri + si)
	case rd > sd:
		ri = -(qi + si)
	}
	return Axial{Q: qi, R: ri}
}

func round32(x float32) float32 {
	return float32(math.Round(float64(x)))
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
