// Package pixelhex maps pixel coordinates to hexes for tiles whose rendered
// footprint is not a regular hexagon.
//
// Hand-drawn or pixel-art hex tiles rarely match the ideal outline: edges are
// stair-stepped and neighbouring tiles interlock. A [Tile] records the real
// silhouette of one tile as a table of horizontal extents, one entry per
// pixel row relative to the tile center, and uses it to correct the ideal
// flat-top lookup near tile edges.
//
// # Building a Tile
//
// [NewFlat] takes one [Sample] per row:
//
//	tile, err := pixelhex.NewFlat([]pixelhex.Sample{
//	    {Row: -1, Min: 0, Max: 1},
//	    {Row: 0, Min: -1, Max: 2},
//	    {Row: 1, Min: -1, Max: 2},
//	    {Row: 2, Min: 0, Max: 1},
//	})
//
// The grid spacing is derived from the samples: the vertical spacing is the
// number of rows, the horizontal spacing is the last row's right edge minus
// the leftmost left edge, plus one. An empty sample list yields a zero-sized
// tile and no error.
//
// # Lookup
//
// [Tile.Axial] starts from the ideal flat-top guess, moves at most one row
// up or down when the pixel lies outside the tile's vertical extents, and
// then at most one hex sideways when it lies outside the row's horizontal
// extent. Pixels at or above the tile center nudge toward the upper
// neighbours, pixels below it toward the lower ones. The row is read by
// truncating the offset from the first row toward zero. A pixel whose
// corrected row still falls outside the table returns an error wrapping
// [ErrOutOfRange].
//
// Only flat-top tiles are supported.
package pixelhex
