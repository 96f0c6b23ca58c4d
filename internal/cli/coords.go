package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/hex"
)

// axialCommand creates the "axial" command: pixel to hex lookup.
func (c *CLI) axialCommand() *cobra.Command {
	var grid layoutFlags
	cmd := &cobra.Command{
		Use:   "axial X Y",
		Short: "Find the hex containing a pixel",
		Long: `Find the hex containing a pixel and the pixel's offset from that hex's center.

Examples:
  hextile axial 12 -3 --size 10
  hextile axial 40 17 --layout grass.toml
  hextile axial --size 10 -- -13 1       # Negative values after "--"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloatArg("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseFloatArg("y", args[1])
			if err != nil {
				return err
			}
			m, err := grid.resolve()
			if err != nil {
				return err
			}

			p := hex.Pt(x, y)
			a, err := m.Axial(p)
			if err != nil {
				return err
			}
			rel, err := m.PixelRelative(p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "axial", a)
			printKeyValue(w, "center", m.PixelCenter(a))
			printKeyValue(w, "offset", rel)
			return nil
		},
	}
	grid.register(cmd)
	return cmd
}

// pixelCommand creates the "pixel" command: hex to pixel center.
func (c *CLI) pixelCommand() *cobra.Command {
	var grid layoutFlags
	cmd := &cobra.Command{
		Use:   "pixel Q R",
		Short: "Print the pixel center of a hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAxialArgs(args)
			if err != nil {
				return err
			}
			m, err := grid.resolve()
			if err != nil {
				return err
			}
			printKeyValue(cmd.OutOrStdout(), "center", m.PixelCenter(a))
			return nil
		},
	}
	grid.register(cmd)
	return cmd
}

// distanceCommand creates the "distance" command.
func (c *CLI) distanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance Q1 R1 Q2 R2",
		Short: "Print the hex distance between two hexes",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAxialArgs(args[:2])
			if err != nil {
				return err
			}
			b, err := parseAxialArgs(args[2:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.DistanceTo(b))
			return nil
		},
	}
}

// lineCommand creates the "line" command.
func (c *CLI) lineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "line Q1 R1 Q2 R2",
		Short: "List the hexes on the line between two hexes",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAxialArgs(args[:2])
			if err != nil {
				return err
			}
			b, err := parseAxialArgs(args[2:])
			if err != nil {
				return err
			}
			printAxials(cmd.OutOrStdout(), hex.Line(a, b))
			return nil
		},
	}
}

// ringCommand creates the "ring" command.
func (c *CLI) ringCommand() *cobra.Command {
	var spiral bool
	cmd := &cobra.Command{
		Use:   "ring Q R RADIUS",
		Short: "List the hexes at a distance from a center",
		Long: `List the hexes at exactly RADIUS steps from the center, starting at
(q, r+RADIUS) and walking clockwise. With --spiral, list the center
and every ring up to RADIUS.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := parseAxialArgs(args[:2])
			if err != nil {
				return err
			}
			radius, err := parseIntArg("radius", args[2])
			if err != nil {
				return err
			}
			if radius < 0 {
				return errs.New(errs.ErrCodeInvalidInput, "radius must be >= 0, got %d", radius)
			}

			var hexes []hex.Axial
			if spiral {
				hexes = hex.Spiral(center, uint(radius))
			} else {
				hexes = center.Circle(uint(radius)).Collect()
			}
			printAxials(cmd.OutOrStdout(), hexes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&spiral, "spiral", false, "include the center and all inner rings")
	return cmd
}

// geometryCommand creates the "geometry" command.
func (c *CLI) geometryCommand() *cobra.Command {
	var orientation string
	cmd := &cobra.Command{
		Use:   "geometry SIZE",
		Short: "Describe an ideal hexagon of the given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseFloatArg("size", args[0])
			if err != nil {
				return err
			}
			if err := errs.ValidateSpacing(size, size); err != nil {
				return err
			}
			o, err := hex.ParseOrientation(orientation)
			if err != nil {
				return err
			}

			g := hex.NewGeometry(o, size)
			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("%s hexagon, size %g", o, size))
			printKeyValue(w, "width", formatFloat(g.Width()))
			printKeyValue(w, "height", formatFloat(g.Height()))
			printKeyValue(w, "inner radius", formatFloat(g.InnerRadius()))
			printKeyValue(w, "outer radius", formatFloat(g.OuterRadius()))
			printKeyValue(w, "horizontal spacing", formatFloat(g.HorizontalSpacing()))
			printKeyValue(w, "vertical spacing", formatFloat(g.VerticalSpacing()))

			rows := make([][]string, 0, 6)
			for i, v := range g.Vertices() {
				rows = append(rows, []string{strconv.Itoa(i), formatFloat(v.X), formatFloat(v.Y)})
			}
			printTable(w, []string{"#", "x", "y"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&orientation, "orientation", hex.Flat.String(), "hexagon orientation: flat, pointy")
	return cmd
}

// printAxials prints hexes as a numbered q/r/s table.
func printAxials(w io.Writer, hexes []hex.Axial) {
	rows := make([][]string, len(hexes))
	for i, a := range hexes {
		rows[i] = []string{strconv.Itoa(i), strconv.Itoa(a.Q), strconv.Itoa(a.R), strconv.Itoa(a.S())}
	}
	printTable(w, []string{"#", "q", "r", "s"}, rows)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}
