// Package pkg provides the libraries behind hextile, a toolkit for
// hexagonal tile maps.
//
// # Overview
//
// The pkg directory is organized in layers:
//
//  1. [hex] - Axial coordinates, rings, lines, and ideal flat/pointy grids
//  2. [pixelhex] - Pixel lookups for tiles whose footprint is not a regular hexagon
//  3. [io] - TOML and JSON layout documents
//  4. [sprite] - Silhouette tracing of tile sprites
//  5. [pipeline] - Cached sprite-to-tile tracing
//  6. [cache], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow for hand-drawn tiles:
//
//	Tile sprite (PNG, BMP, ...)
//	         ↓
//	    [sprite] package (trace one extent per pixel row)
//	         ↓
//	    [pixelhex] package (build the Tile)
//	         ↓
//	    [io] package (save as a layout document)
//
// At runtime a game or tool loads the layout document and maps mouse
// positions to hexes with [pixelhex.Tile.Axial], or with a [hex.Layout]
// for ideal grids.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/hextile/pkg/hex"
//	    hexio "github.com/matzehuels/hextile/pkg/io"
//	)
//
//	tile, err := hexio.ImportTile("grass.toml")
//	if err != nil {
//	    return err
//	}
//	a, err := tile.Axial(hex.Pt(mouseX, mouseY))
//
// [hex]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/hex
// [pixelhex]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/pixelhex
// [io]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/io
// [sprite]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/sprite
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/buildinfo
// [pixelhex.Tile.Axial]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/pixelhex#Tile.Axial
// [hex.Layout]: https://pkg.go.dev/github.com/matzehuels/hextile/pkg/hex#Layout
package pkg
