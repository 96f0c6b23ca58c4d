package io

import (
	"fmt"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/hex"
	"github.com/matzehuels/hextile/pkg/pixelhex"
)

// document is the wire form shared by both formats. Floats travel as
// float64 so that the float32 -> float64 -> text -> float64 -> float32 path
// is exact.
type document struct {
	Orientation       string      `json:"orientation" toml:"orientation"`
	VerticalSpacing   float64     `json:"vertical_spacing" toml:"vertical_spacing"`
	HorizontalSpacing float64     `json:"horizontal_spacing" toml:"horizontal_spacing"`
	VerticalExtents   []float64   `json:"vertical_extents,omitempty" toml:"vertical_extents,omitempty"`
	HorizontalExtents [][]float64 `json:"horizontal_extents,omitempty" toml:"horizontal_extents,omitempty"`
}

// Layout is a decoded layout document. Tile is nil for spacing-only
// documents; otherwise Spacing equals Tile.Spacing().
type Layout struct {
	Spacing hex.Spacing
	Tile    *pixelhex.Tile
}

// IsTile reports whether the document carried an extent table.
func (l *Layout) IsTile() bool { return l.Tile != nil }

func spacingDocument(s hex.Spacing) (document, error) {
	o, err := s.Orientation().MarshalText()
	if err != nil {
		return document{}, err
	}
	if err := errs.ValidateFinite("vertical spacing", s.VerticalSpacing()); err != nil {
		return document{}, err
	}
	if err := errs.ValidateFinite("horizontal spacing", s.HorizontalSpacing()); err != nil {
		return document{}, err
	}
	return document{
		Orientation:       string(o),
		VerticalSpacing:   float64(s.VerticalSpacing()),
		HorizontalSpacing: float64(s.HorizontalSpacing()),
	}, nil
}

func tileDocument(t *pixelhex.Tile) (document, error) {
	doc, err := spacingDocument(t.Spacing())
	if err != nil {
		return document{}, err
	}
	if t.Empty() {
		return doc, nil
	}

	v := t.VerticalExtents()
	doc.VerticalExtents = []float64{float64(v.Min), float64(v.Max)}
	doc.HorizontalExtents = make([][]float64, t.Rows())
	for i, e := range t.HorizontalExtents() {
		if err := finiteExtent(e); err != nil {
			return document{}, fmt.Errorf("row %d: %w", i, err)
		}
		doc.HorizontalExtents[i] = []float64{float64(e.Min), float64(e.Max)}
	}
	return doc, nil
}

func finiteExtent(e pixelhex.Extent) error {
	if err := errs.ValidateFinite("extent min", e.Min); err != nil {
		return err
	}
	return errs.ValidateFinite("extent max", e.Max)
}

func (d document) spacing() (hex.Spacing, error) {
	if d.Orientation == "" {
		return hex.Spacing{}, errs.New(errs.ErrCodeInvalidFormat, "missing orientation")
	}
	o, err := hex.ParseOrientation(d.Orientation)
	if err != nil {
		return hex.Spacing{}, err
	}
	return hex.NewSpacing(o, float32(d.HorizontalSpacing), float32(d.VerticalSpacing)), nil
}

func (d document) hasExtents() bool {
	return d.VerticalExtents != nil || d.HorizontalExtents != nil
}

func (d document) tile() (*pixelhex.Tile, error) {
	s, err := d.spacing()
	if err != nil {
		return nil, err
	}
	if !d.hasExtents() {
		return pixelhex.NewTile(s, pixelhex.Extent{}, nil)
	}

	if len(d.VerticalExtents) != 2 {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "vertical_extents must hold 2 values, got %d", len(d.VerticalExtents))
	}
	vertical := pixelhex.Extent{Min: float32(d.VerticalExtents[0]), Max: float32(d.VerticalExtents[1])}

	table := make([]pixelhex.Extent, len(d.HorizontalExtents))
	for i, pair := range d.HorizontalExtents {
		if len(pair) != 2 {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "horizontal_extents[%d] must hold 2 values, got %d", i, len(pair))
		}
		table[i] = pixelhex.Extent{Min: float32(pair[0]), Max: float32(pair[1])}
	}
	return pixelhex.NewTile(s, vertical, table)
}

func (d document) layout() (*Layout, error) {
	if !d.hasExtents() {
		s, err := d.spacing()
		if err != nil {
			return nil, err
		}
		return &Layout{Spacing: s}, nil
	}
	t, err := d.tile()
	if err != nil {
		return nil, err
	}
	return &Layout{Spacing: t.Spacing(), Tile: t}, nil
}
