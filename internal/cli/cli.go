// Package cli implements the hextile command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hextile/pkg/buildinfo"
	"github.com/matzehuels/hextile/pkg/cache"
	"github.com/matzehuels/hextile/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "hextile"

	// envRedisAddr selects a shared Redis trace cache when set.
	envRedisAddr = "HEXTILE_REDIS_ADDR"
)

// LogInfo is the default level, exported for use in main.go.
const LogInfo = log.InfoLevel

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	build := buildinfo.Get()
	root := &cobra.Command{
		Use:   appName,
		Short: "hextile converts between hex grid and pixel coordinates",
		Long: `hextile is a toolkit for hexagonal tile maps: it converts between axial
hex coordinates and pixel positions for ideal and hand-drawn tiles, lists
rings and lines of hexes, and traces tile sprites into layout files.`,
		Version:      build.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(build.Template())

	root.AddCommand(c.axialCommand())
	root.AddCommand(c.pixelCommand())
	root.AddCommand(c.ringCommand())
	root.AddCommand(c.distanceCommand())
	root.AddCommand(c.lineCommand())
	root.AddCommand(c.geometryCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

// newCache returns the trace cache: Redis when HEXTILE_REDIS_ADDR is set
// and reachable, the user cache directory otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := os.Getenv(envRedisAddr); addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
		if err == nil {
			c.Logger.Debug("using redis cache", "addr", addr)
			return rc, nil
		}
		c.Logger.Warn("redis unavailable, falling back to file cache", "err", err)
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return fc, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/hextile/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
