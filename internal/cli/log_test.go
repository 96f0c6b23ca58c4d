package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevelFor(t *testing.T) {
	if got := LevelFor(false); got != log.InfoLevel {
		t.Errorf("LevelFor(false) = %v, want info", got)
	}
	if got := LevelFor(true); got != log.DebugLevel {
		t.Errorf("LevelFor(true) = %v, want debug", got)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), "grass.png")
	prog.done("Traced", "rows", 32)

	out := buf.String()
	for _, want := range []string{"Traced", "subject=grass.png", "rows=32", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q: %q", want, out)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("without an attached logger, loggerFromContext should return log.Default()")
	}

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

// TestTraceLogsThroughCommandLogger checks that the root command hands its
// logger to subcommands: the trace summary lands in the CLI log, not in
// log.Default().
func TestTraceLogsThroughCommandLogger(t *testing.T) {
	isolateCache(t)
	sprite := writeSprite(t)

	_, logs, err := executeWithLogs(t, "trace", sprite)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	for _, want := range []string{"Traced", "subject=" + sprite, "rows=4", "cached=false"} {
		if !strings.Contains(logs, want) {
			t.Errorf("trace log missing %q:\n%s", want, logs)
		}
	}

	_, logs, err = executeWithLogs(t, "trace", sprite)
	if err != nil {
		t.Fatalf("second trace: %v", err)
	}
	if !strings.Contains(logs, "cached=true") {
		t.Errorf("second trace should report a cache hit:\n%s", logs)
	}
}
