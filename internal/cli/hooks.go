package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hextile/pkg/observability"
)

// debugHooks reports pipeline and cache events as debug log lines, so
// --verbose shows where a trace spent its time.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnTraceStart(_ context.Context, sprite string) {
	h.logger.Debug("trace started", "sprite", sprite)
}

func (h debugHooks) OnTraceComplete(_ context.Context, sprite string, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("trace failed", "sprite", sprite, "duration", d, "err", err)
		return
	}
	h.logger.Debug("trace finished", "sprite", sprite, "rows", rows, "duration", d)
}

func (h debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// RegisterHooks routes observability events to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := debugHooks{logger: c.Logger}
	observability.SetTraceHooks(h)
	observability.SetCacheHooks(h)
}
