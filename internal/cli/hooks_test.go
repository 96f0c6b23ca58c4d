package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hextile/pkg/observability"
)

func TestRegisterHooks(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, log.DebugLevel)
	c.RegisterHooks()

	ctx := context.Background()
	observability.Trace().OnTraceStart(ctx, "grass.png")
	observability.Cache().OnCacheMiss(ctx, "trace")
	observability.Cache().OnCacheSet(ctx, "trace", 128)
	observability.Trace().OnTraceComplete(ctx, "grass.png", 32, time.Millisecond, nil)
	observability.Trace().OnTraceComplete(ctx, "broken.png", 0, time.Millisecond, errors.New("bad image"))

	out := buf.String()
	for _, want := range []string{"trace started", "cache miss", "cache set", "trace finished", "trace failed", "bad image"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := debugHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit(context.Background(), "trace")
	if buf.Len() != 0 {
		t.Errorf("debug hooks should be silent at info level, got %q", buf.String())
	}
}
