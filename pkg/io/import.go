package io

import (
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/hex"
	"github.com/matzehuels/hextile/pkg/pixelhex"
)

// ReadSpacing decodes a spacing model from r. Extents, if present, are
// ignored; use [ReadTile] or [ReadLayout] to keep them.
func ReadSpacing(r io.Reader, f Format) (hex.Spacing, error) {
	doc, err := decode(r, f)
	if err != nil {
		return hex.Spacing{}, err
	}
	return doc.spacing()
}

// ReadTile decodes an irregular tile from r.
//
// ReadTile returns an error if the document is malformed, names a pointy
// orientation (irregular tiles are flat-top only), or carries an extent
// table whose length does not match its vertical extents. A document
// without extents yields an empty tile with the stored spacing.
func ReadTile(r io.Reader, f Format) (*pixelhex.Tile, error) {
	doc, err := decode(r, f)
	if err != nil {
		return nil, err
	}
	return doc.tile()
}

// ReadLayout decodes either kind of layout document from r.
func ReadLayout(r io.Reader, f Format) (*Layout, error) {
	doc, err := decode(r, f)
	if err != nil {
		return nil, err
	}
	return doc.layout()
}

// ImportTile reads the tile document at path. The format follows from the
// file extension.
func ImportTile(path string) (*pixelhex.Tile, error) {
	var t *pixelhex.Tile
	err := withFile(path, func(r io.Reader, f Format) (err error) {
		t, err = ReadTile(r, f)
		return err
	})
	return t, err
}

// ImportLayout reads the layout document at path. The format follows from
// the file extension.
func ImportLayout(path string) (*Layout, error) {
	var l *Layout
	err := withFile(path, func(r io.Reader, f Format) (err error) {
		l, err = ReadLayout(r, f)
		return err
	})
	return l, err
}

func withFile(path string, fn func(io.Reader, Format) error) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return errs.Wrap(errs.ErrCodeFileNotFound, err, "layout file %s not found", path)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if err := fn(file, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
