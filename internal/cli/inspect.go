package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	hexio "github.com/matzehuels/hextile/pkg/io"
)

// inspectCommand creates the "inspect" command.
func (c *CLI) inspectCommand() *cobra.Command {
	var rows bool
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize a layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := hexio.ImportLayout(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			kind := "spacing"
			if l.IsTile() {
				kind = "tile"
			}
			printTitle(w, fmt.Sprintf("%s (%s)", args[0], kind))
			printKeyValue(w, "orientation", l.Spacing.Orientation())
			printKeyValue(w, "horizontal spacing", formatFloat(l.Spacing.HorizontalSpacing()))
			printKeyValue(w, "vertical spacing", formatFloat(l.Spacing.VerticalSpacing()))
			if !l.IsTile() {
				return nil
			}

			t := l.Tile
			v := t.VerticalExtents()
			printKeyValue(w, "rows", t.Rows())
			printKeyValue(w, "vertical extents", fmt.Sprintf("[%g, %g]", v.Min, v.Max))
			if !rows || t.Empty() {
				return nil
			}

			table := make([][]string, 0, t.Rows())
			for _, s := range t.Samples() {
				table = append(table, []string{
					formatFloat(s.Row), formatFloat(s.Min), formatFloat(s.Max),
					strconv.Itoa(int(s.Max-s.Min) + 1),
				})
			}
			printTable(w, []string{"row", "min", "max", "width"}, table)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rows, "rows", true, "print the per-row extent table")
	return cmd
}
