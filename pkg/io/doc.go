// Package io reads and writes tile-layout documents as TOML or JSON.
//
// # Document Format
//
// A layout document describes either an ideal spacing model or an irregular
// pixel tile. Both share three keys; tiles add their extent table:
//
//	orientation = "flat"
//	vertical_spacing = 32.0
//	horizontal_spacing = 29.0
//	vertical_extents = [-16.0, 15.0]
//	horizontal_extents = [[-11.0, 10.0], [-11.0, 10.0], ...]
//
// The JSON form uses the same field names. A document without extents is a
// spacing model; [ReadTile] accepts it and returns an empty tile.
//
// # Exactness
//
// Values are stored as float32 in memory and written with the shortest
// decimal form that parses back to the same float32, so decoding an encoded
// document reproduces every spacing and extent bit for bit. NaN and infinite
// values are rejected on write.
//
// # Files
//
// [ImportLayout], [ImportTile] and [ExportTile] pick the format from the file
// extension (.toml or .json). The Read and Write functions take an explicit
// [Format] and work on any io.Reader or io.Writer; they never close it.
//
// Unknown keys are rejected in both formats so that typos in hand-edited
// layout files surface as errors instead of silently reverting to defaults.
package io
