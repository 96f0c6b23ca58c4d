package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger: "HH:MM:SS.ms" timestamps on w, messages
// below level dropped.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// LevelFor maps the --verbose flag to a log level.
func LevelFor(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// progress times the work done on one input, such as a sprite.
type progress struct {
	logger  *log.Logger
	subject string
	start   time.Time
}

func newProgress(l *log.Logger, subject string) *progress {
	return &progress{logger: l, subject: subject, start: time.Now()}
}

// done logs msg with the subject, any extra key/value pairs and the
// elapsed time, e.g. "Traced subject=grass.png rows=32 elapsed=12ms".
func (p *progress) done(msg string, keyvals ...any) {
	kv := append([]any{"subject", p.subject}, keyvals...)
	kv = append(kv, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, kv...)
}

type loggerKey struct{}

// withLogger attaches l to ctx for the command being run.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
