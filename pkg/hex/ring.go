package hex

import "iter"

// legCount is the number of straight legs in a ring.
const legCount = 6

// Ring iterates over the hexes at an exact distance from a center.
//
// The walk starts at center + (0, radius) and follows six legs of radius
// steps each. Step k of leg L is at the relative offset
//
//	L0 (-k, R)     L1 (-R, R-k)    L2 (-R+k, -k)
//	L3 (k, -R)     L4 (R, -R+k)    L5 (R-k, k)
//
// A Ring is single-pass. Build a new one with [NewRing] or [Axial.Circle] to
// iterate again.
type Ring struct {
	center Axial
	radius int
	leg    int
	step   int
}

// NewRing returns a ring of the given radius around center.
func NewRing(center Axial, radius uint) *Ring {
	return &Ring{center: center, radius: int(radius)}
}

// Center returns the ring center.
func (r *Ring) Center() Axial { return r.center }

// Radius returns the ring radius.
func (r *Ring) Radius() int { return r.radius }

// Len returns the total number of hexes the ring yields from the start:
// 1 for radius 0, 6*radius otherwise.
func (r *Ring) Len() int {
	if r.radius == 0 {
		return 1
	}
	return legCount * r.radius
}

// Next returns the next hex of the ring. The second result is false once
// the ring is exhausted.
func (r *Ring) Next() (Axial, bool) {
	if r.leg >= legCount {
		return Axial{}, false
	}
	off := r.offset()
	switch {
	case r.radius == 0:
		r.leg = legCount
	case r.step < r.radius-1:
		r.step++
	default:
		r.step = 0
		r.leg++
	}
	return r.center.Add(off), true
}

// All yields the remaining hexes of the ring.
func (r *Ring) All() iter.Seq[Axial] {
	return func(yield func(Axial) bool) {
		for {
			a, ok := r.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}

// Collect drains the ring into a slice.
func (r *Ring) Collect() []Axial {
	out := make([]Axial, 0, r.Len())
	for a := range r.All() {
		out = append(out, a)
	}
	return out
}

func (r *Ring) offset() Axial {
	k, R := r.step, r.radius
	switch r.leg {
	case 0:
		return Axial{Q: -k, R: R}
	case 1:
		return Axial{Q: -R, R: R - k}
	case 2:
		return Axial{Q: -R + k, R: -k}
	case 3:
		return Axial{Q: k, R: -R}
	case 4:
		return Axial{Q: R, R: -R + k}
	default:
		return Axial{Q: R - k, R: k}
	}
}

// Spiral returns center followed by the rings of radius 1 through radius,
// each in ring order.
func Spiral(center Axial, radius uint) []Axial {
	out := make([]Axial, 0, 1+3*int(radius)*(int(radius)+1))
	for k := uint(0); k <= radius; k++ {
		for a := range center.Circle(k).All() {
			out = append(out, a)
		}
	}
	return out
}
