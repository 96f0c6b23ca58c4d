package pixelhex

import (
	"math"
	"slices"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/hex"
)

// ErrOutOfRange is wrapped by lookups whose row falls outside the extent
// table the tile was built with.
var ErrOutOfRange = errs.New(errs.ErrCodeOutOfRange, "index out of configured range")

// Sample is the horizontal extent of one pixel row of a tile silhouette.
// Row is measured relative to the tile's vertical center; Min and Max are
// the leftmost and rightmost covered pixels relative to its horizontal
// center, inclusive.
type Sample struct {
	Row float32 `json:"row" toml:"row"`
	Min float32 `json:"min" toml:"min"`
	Max float32 `json:"max" toml:"max"`
}

// Extent is an inclusive [Min, Max] range.
type Extent struct {
	Min float32 `json:"min" toml:"min"`
	Max float32 `json:"max" toml:"max"`
}

// Tile is the footprint of an irregular flat-top hex tile.
// Row i of the extent table is pixel row vertical.Min + i relative to a
// tile's ideal center. A Tile is immutable.
type Tile struct {
	spacing    hex.Spacing
	vertical   Extent
	horizontal []Extent
}

// NewFlat builds a tile from its per-row samples.
//
// Rows must be whole numbers, unique, and cover every row between the
// smallest and largest one. Samples may come in any order, but the
// horizontal spacing uses the Max of the last sample, so callers normally
// pass them top to bottom.
func NewFlat(samples []Sample) (*Tile, error) {
	if len(samples) == 0 {
		return &Tile{spacing: hex.FlatSpacing(0, 0)}, nil
	}

	vmin, vmax := samples[0].Row, samples[0].Row
	minX := samples[0].Min
	for _, s := range samples {
		if err := validateSample(s); err != nil {
			return nil, err
		}
		vmin = min(vmin, s.Row)
		vmax = max(vmax, s.Row)
		minX = min(minX, s.Min)
	}

	table := make([]Extent, int(vmax-vmin)+1)
	filled := make([]bool, len(table))
	for _, s := range samples {
		i := int(s.Row - vmin)
		if filled[i] {
			return nil, errs.New(errs.ErrCodeInvalidSamples, "duplicate row %g", s.Row)
		}
		filled[i] = true
		table[i] = Extent{Min: s.Min, Max: s.Max}
	}
	if i := slices.Index(filled, false); i >= 0 {
		return nil, errs.New(errs.ErrCodeInvalidSamples, "missing row %g", vmin+float32(i))
	}

	hs := samples[len(samples)-1].Max - minX + 1
	vs := vmax - vmin + 1
	return &Tile{
		spacing:    hex.FlatSpacing(hs, vs),
		vertical:   Extent{Min: vmin, Max: vmax},
		horizontal: table,
	}, nil
}

// NewTile assembles a tile from stored parts, as read back from a layout
// document. The table must hold exactly one entry per row of vertical.
func NewTile(spacing hex.Spacing, vertical Extent, horizontal []Extent) (*Tile, error) {
	if spacing.Orientation() != hex.Flat {
		return nil, errs.New(errs.ErrCodeUnsupported, "irregular tiles support only flat orientation, got %s", spacing.Orientation())
	}
	if len(horizontal) == 0 {
		if vertical != (Extent{}) {
			return nil, errs.New(errs.ErrCodeInvalidSamples, "vertical extents %v without horizontal extents", vertical)
		}
		return &Tile{spacing: spacing}, nil
	}
	if !isWhole(vertical.Min) || !isWhole(vertical.Max) || vertical.Min > vertical.Max {
		return nil, errs.New(errs.ErrCodeInvalidSamples, "invalid vertical extents [%g, %g]", vertical.Min, vertical.Max)
	}
	if want := int(vertical.Max-vertical.Min) + 1; len(horizontal) != want {
		return nil, errs.New(errs.ErrCodeInvalidSamples, "extent table has %d rows, vertical extents [%g, %g] need %d",
			len(horizontal), vertical.Min, vertical.Max, want)
	}
	for i, e := range horizontal {
		if e.Min > e.Max {
			return nil, errs.New(errs.ErrCodeInvalidSamples, "row %d: min %g > max %g", i, e.Min, e.Max)
		}
	}
	return &Tile{
		spacing:    spacing,
		vertical:   vertical,
		horizontal: slices.Clone(horizontal),
	}, nil
}

func validateSample(s Sample) error {
	for _, v := range []float32{s.Row, s.Min, s.Max} {
		if err := errs.ValidateFinite("sample", v); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidSamples, err, "row %g", s.Row)
		}
	}
	if !isWhole(s.Row) {
		return errs.New(errs.ErrCodeInvalidSamples, "row %g is not a whole pixel row", s.Row)
	}
	if s.Min > s.Max {
		return errs.New(errs.ErrCodeInvalidSamples, "row %g: min %g > max %g", s.Row, s.Min, s.Max)
	}
	return nil
}

func isWhole(v float32) bool {
	return float32(math.Trunc(float64(v))) == v
}

// Spacing returns the ideal flat-top grid the tiles are laid out on.
func (t *Tile) Spacing() hex.Spacing { return t.spacing }

// HorizontalSpacing returns the x distance between adjacent tile centers.
func (t *Tile) HorizontalSpacing() float32 { return t.spacing.HorizontalSpacing() }

// VerticalSpacing returns the y distance between adjacent tile centers.
func (t *Tile) VerticalSpacing() float32 { return t.spacing.VerticalSpacing() }

// VerticalExtents returns the first and last row of the silhouette.
func (t *Tile) VerticalExtents() Extent { return t.vertical }

// HorizontalExtents returns a copy of the per-row extent table.
func (t *Tile) HorizontalExtents() []Extent { return slices.Clone(t.horizontal) }

// Rows returns the number of rows in the extent table.
func (t *Tile) Rows() int { return len(t.horizontal) }

// Empty reports whether the tile was built from no samples.
func (t *Tile) Empty() bool { return len(t.horizontal) == 0 }

// Samples returns the silhouette as one sample per row, top to bottom.
func (t *Tile) Samples() []Sample {
	out := make([]Sample, len(t.horizontal))
	for i, e := range t.horizontal {
		out[i] = Sample{Row: t.vertical.Min + float32(i), Min: e.Min, Max: e.Max}
	}
	return out
}

// PixelCenter returns the ideal center of the tile at a.
func (t *Tile) PixelCenter(a hex.Axial) hex.Point {
	return t.spacing.PixelCenter(a)
}

// Axial returns the tile whose footprint contains p.
func (t *Tile) Axial(p hex.Point) (hex.Axial, error) {
	qr := t.spacing.NearestAxial(p)
	dy := p.Y - t.spacing.PixelCenter(qr).Y
	switch {
	case dy < t.vertical.Min:
		qr = qr.Add(hex.New(0, -1))
	case dy > t.vertical.Max:
		qr = qr.Add(hex.New(0, 1))
	}

	c := t.spacing.PixelCenter(qr)
	dx, dy := p.X-c.X, p.Y-c.Y
	ext, err := t.row(dy)
	if err != nil {
		return hex.Axial{}, errs.Wrap(errs.ErrCodeOutOfRange, err, "pixel %v", p)
	}

	upper := dy <= 0
	switch {
	case dx < ext.Min && upper:
		return qr.Add(hex.New(-1, 0)), nil
	case dx < ext.Min:
		return qr.Add(hex.New(-1, 1)), nil
	case dx > ext.Max && upper:
		return qr.Add(hex.New(1, -1)), nil
	case dx > ext.Max:
		return qr.Add(hex.New(1, 0)), nil
	}
	return qr, nil
}

// PixelRelative returns the offset of p from the center of the tile that
// contains it.
func (t *Tile) PixelRelative(p hex.Point) (hex.Point, error) {
	a, err := t.Axial(p)
	if err != nil {
		return hex.Point{}, err
	}
	return p.Sub(t.PixelCenter(a)), nil
}

// Contains reports whether p, relative to a tile center, lies inside the
// tile's silhouette.
func (t *Tile) Contains(p hex.Point) bool {
	idx := math.Floor(float64(p.Y - t.vertical.Min))
	if idx < 0 || idx >= float64(len(t.horizontal)) {
		return false
	}
	ext := t.horizontal[int(idx)]
	return p.X >= ext.Min && p.X <= ext.Max
}

// row returns the extent of the row at dy relative to a tile center.
// The offset from the first row is truncated toward zero, so the
// fractional band just above the first row reads the first row.
func (t *Tile) row(dy float32) (Extent, error) {
	off := dy - t.vertical.Min
	if math.IsNaN(float64(off)) || off <= -1 || off >= float32(len(t.horizontal)) {
		return Extent{}, errs.Wrap(errs.ErrCodeOutOfRange, ErrOutOfRange, "row %g outside [%g, %g]",
			dy, t.vertical.Min, t.vertical.Min+float32(len(t.horizontal))-1)
	}
	return t.horizontal[int(off)], nil
}
