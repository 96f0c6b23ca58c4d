// Package sprite derives irregular tile silhouettes from sprite images.
//
// A tile sprite is an image of a single hex tile drawn on a transparent or
// solid key-colour background. [Trace] scans it row by row and records the
// leftmost and rightmost tile pixel of each row relative to the sprite
// center (width/2, height/2), producing the samples [pixelhex.NewFlat]
// expects.
//
//	img, err := sprite.Load("grass.png")
//	samples, err := sprite.Trace(img, sprite.DefaultOptions())
//	tile, err := pixelhex.NewFlat(samples)
//
// A pixel belongs to the tile when its alpha is at least
// [Options.AlphaThreshold] and, if [Options.Key] is set, its colour is
// farther than [Options.Tolerance] from the key colour in CIE L*a*b* space.
package sprite
