package cli

import (
	"github.com/spf13/cobra"

	hexio "github.com/matzehuels/hextile/pkg/io"
	"github.com/matzehuels/hextile/pkg/pipeline"
	"github.com/matzehuels/hextile/pkg/sprite"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	output    string // output file path (stdout if empty)
	format    string // stdout format
	alpha     uint8
	key       string
	tolerance float64
	noCache   bool
	refresh   bool
}

func (o *traceOpts) spriteOptions() sprite.Options {
	return sprite.Options{AlphaThreshold: o.alpha, Key: o.key, Tolerance: o.tolerance}
}

// traceCommand creates the "trace" command: sprite to tile document.
func (c *CLI) traceCommand() *cobra.Command {
	def := sprite.DefaultOptions()
	opts := traceOpts{format: string(hexio.FormatTOML), alpha: def.AlphaThreshold, tolerance: def.Tolerance}

	cmd := &cobra.Command{
		Use:   "trace SPRITE",
		Short: "Trace a tile sprite into a layout document",
		Long: `Trace the silhouette of a tile sprite and write it as a tile layout document.

A pixel belongs to the tile when its alpha is at least --alpha and, if --key is
set, its colour is further than --tolerance from the key colour. Results are
cached by sprite content and options.

Examples:
  hextile trace grass.png                   # TOML to stdout
  hextile trace grass.png -o grass.toml     # Write a file
  hextile trace water.bmp --key "#ff00ff"   # Magenta background`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .toml or .json (stdout if empty)")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "stdout format: toml, json")
	cmd.Flags().Uint8Var(&opts.alpha, "alpha", opts.alpha, "minimum alpha of a tile pixel")
	cmd.Flags().StringVar(&opts.key, "key", "", "background key colour, e.g. #ff00ff")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", opts.tolerance, "L*a*b* distance that still matches --key")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the trace cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-trace and overwrite the cached result")

	return cmd
}

func (c *CLI) runTrace(cmd *cobra.Command, path string, opts traceOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, path)

	var format hexio.Format
	if opts.output == "" {
		f, err := hexio.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		format = f
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Trace(ctx, pipeline.Options{
		Sprite:  path,
		Trace:   opts.spriteOptions(),
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done("Traced", "rows", result.Tile.Rows(), "cached", result.CacheHit)

	if opts.output == "" {
		return hexio.WriteTile(cmd.OutOrStdout(), format, result.Tile)
	}
	if err := hexio.ExportTile(opts.output, result.Tile); err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	printSuccess(w, "Traced %d rows (%gx%g)", result.Tile.Rows(),
		result.Tile.HorizontalSpacing(), result.Tile.VerticalSpacing())
	printCacheStatus(w, result.CacheHit)
	printFile(w, opts.output)
	return nil
}
