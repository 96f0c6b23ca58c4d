package hex

import (
	"strings"

	errs "github.com/matzehuels/hextile/pkg/errors"
)

// Orientation is the rotation of a hexagon relative to the pixel axes.
type Orientation uint8

const (
	// Flat hexagons have a horizontal top edge; columns share q.
	Flat Orientation = iota
	// Pointy hexagons have a vertex at the top; rows share r.
	Pointy
)

// String returns "flat" or "pointy".
func (o Orientation) String() string {
	switch o {
	case Flat:
		return "flat"
	case Pointy:
		return "pointy"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the defined orientations.
func (o Orientation) Valid() bool {
	return o == Flat || o == Pointy
}

// ParseOrientation parses "flat" or "pointy", ignoring case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "pointy":
		return Pointy, nil
	default:
		return 0, errs.New(errs.ErrCodeInvalidOrientation, "invalid orientation %q (must be 'flat' or 'pointy')", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, errs.New(errs.ErrCodeInvalidOrientation, "invalid orientation %d", uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
