package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/hextile/pkg/hex"
	"github.com/matzehuels/hextile/pkg/pixelhex"
)

// WriteSpacing encodes s as a spacing-only document.
func WriteSpacing(w io.Writer, f Format, s hex.Spacing) error {
	doc, err := spacingDocument(s)
	if err != nil {
		return err
	}
	return encode(w, f, doc)
}

// WriteTile encodes t, including its extent table. The output can be read
// back with [ReadTile] and yields an identical tile.
func WriteTile(w io.Writer, f Format, t *pixelhex.Tile) error {
	doc, err := tileDocument(t)
	if err != nil {
		return err
	}
	return encode(w, f, doc)
}

// ExportTile writes t to path in the format implied by its extension.
func ExportTile(path string, t *pixelhex.Tile) error {
	return createFile(path, func(w io.Writer, f Format) error { return WriteTile(w, f, t) })
}

// ExportSpacing writes s to path in the format implied by its extension.
func ExportSpacing(path string, s hex.Spacing) error {
	return createFile(path, func(w io.Writer, f Format) error { return WriteSpacing(w, f, s) })
}

func createFile(path string, fn func(io.Writer, Format) error) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
