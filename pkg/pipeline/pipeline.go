// Package pipeline turns sprite files into irregular tiles.
//
// The pipeline reads a sprite, traces its silhouette, and builds the
// [pixelhex.Tile] for it. Results are cached by sprite content and trace
// options so repeated runs over unchanged art skip decoding entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Trace(ctx, pipeline.Options{Sprite: "grass.png"})
//	if err != nil {
//	    return err
//	}
//	err = io.ExportTile("grass.toml", result.Tile)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hextile/pkg/cache"
	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/pixelhex"
	"github.com/matzehuels/hextile/pkg/sprite"
)

// Options configures a trace run.
type Options struct {
	// Sprite is the path of the sprite image.
	Sprite string `json:"sprite"`

	// Trace controls which pixels belong to the tile. The zero value is
	// replaced by sprite.DefaultOptions().
	Trace sprite.Options `json:"trace"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errs.ValidatePath(o.Sprite); err != nil {
		return err
	}
	if o.Trace == (sprite.Options{}) {
		o.Trace = sprite.DefaultOptions()
	}
	if err := o.Trace.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// TraceKeyOpts returns the cache key options for o.
func (o *Options) TraceKeyOpts() cache.TraceKeyOpts {
	return cache.TraceKeyOpts{
		AlphaThreshold: o.Trace.AlphaThreshold,
		Key:            o.Trace.Key,
		Tolerance:      o.Trace.Tolerance,
	}
}

// Result is the outcome of a trace run.
type Result struct {
	// Tile is the traced tile. It is empty if the sprite has no tile pixels.
	Tile *pixelhex.Tile

	// SpriteHash is the SHA-256 of the sprite file.
	SpriteHash string

	// CacheHit reports whether Tile came from the cache.
	CacheHit bool

	// Duration is the wall time of the run.
	Duration time.Duration
}
