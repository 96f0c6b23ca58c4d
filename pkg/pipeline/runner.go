package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hextile/pkg/cache"
	errs "github.com/matzehuels/hextile/pkg/errors"
	hexio "github.com/matzehuels/hextile/pkg/io"
	"github.com/matzehuels/hextile/pkg/observability"
	"github.com/matzehuels/hextile/pkg/pixelhex"
	"github.com/matzehuels/hextile/pkg/sprite"
)

const keyTypeTrace = "trace"

// Runner traces sprites with caching.
//
// The Runner holds no per-run state; multiple goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer selects the default keyer, a nil
// cache disables caching and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Trace reads opts.Sprite and returns its tile, from the cache when an
// entry for the same sprite content and options exists.
//
// Cache failures are logged and otherwise ignored; only reading, decoding
// and tracing the sprite can fail a run.
func (r *Runner) Trace(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)
	start := time.Now()

	data, err := os.ReadFile(opts.Sprite)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "sprite %s not found", opts.Sprite)
	}
	if err != nil {
		return nil, fmt.Errorf("read sprite: %w", err)
	}

	result := &Result{SpriteHash: cache.Hash(data)}
	key := r.Keyer.TraceKey(result.SpriteHash, opts.TraceKeyOpts())

	if !opts.Refresh {
		if tile, ok := r.lookup(ctx, logger, key); ok {
			result.Tile = tile
			result.CacheHit = true
			result.Duration = time.Since(start)
			logger.Debug("trace cache hit", "sprite", opts.Sprite, "rows", tile.Rows())
			return result, nil
		}
	}

	observability.Trace().OnTraceStart(ctx, opts.Sprite)
	tile, err := traceBytes(data, opts.Trace)
	observability.Trace().OnTraceComplete(ctx, opts.Sprite, rows(tile), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Sprite, err)
	}
	result.Tile = tile
	result.Duration = time.Since(start)

	logger.Info("traced sprite",
		"sprite", opts.Sprite,
		"rows", tile.Rows(),
		"horizontal_spacing", tile.HorizontalSpacing(),
		"vertical_spacing", tile.VerticalSpacing(),
		"duration", result.Duration)

	r.store(ctx, logger, key, tile)
	return result, nil
}

func traceBytes(data []byte, opts sprite.Options) (*pixelhex.Tile, error) {
	img, err := sprite.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	samples, err := sprite.Trace(img, opts)
	if err != nil {
		return nil, err
	}
	return pixelhex.NewFlat(samples)
}

func rows(t *pixelhex.Tile) int {
	if t == nil {
		return 0
	}
	return t.Rows()
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (*pixelhex.Tile, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeTrace)
		return nil, false
	}
	tile, err := hexio.ReadTile(bytes.NewReader(data), hexio.FormatJSON)
	if err != nil {
		// Stale or foreign entry; recompute and overwrite.
		logger.Debug("discarding unreadable cache entry", "err", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeTrace)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeTrace)
	return tile, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, tile *pixelhex.Tile) {
	var buf bytes.Buffer
	if err := hexio.WriteTile(&buf, hexio.FormatJSON, tile); err != nil {
		logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLTrace); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeTrace, buf.Len())
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
