package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/hex"
	hexio "github.com/matzehuels/hextile/pkg/io"
	"github.com/matzehuels/hextile/pkg/pixelhex"
)

// layoutFlags selects the grid a coordinate command works on: a layout
// file, an ideal hexagon of a given size, or explicit spacings.
type layoutFlags struct {
	file        string
	orientation string
	horizontal  float32
	vertical    float32
	size        float32
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "layout", "l", "", "layout file (.toml or .json)")
	cmd.Flags().StringVar(&f.orientation, "orientation", hex.Flat.String(), "grid orientation: flat, pointy")
	cmd.Flags().Float32Var(&f.horizontal, "horizontal", 0, "horizontal spacing between hex centers")
	cmd.Flags().Float32Var(&f.vertical, "vertical", 0, "vertical spacing between hex centers")
	cmd.Flags().Float32Var(&f.size, "size", 0, "hexagon size (center to corner) of an ideal grid")
	cmd.MarkFlagsMutuallyExclusive("layout", "size")
	cmd.MarkFlagsMutuallyExclusive("layout", "horizontal")
	cmd.MarkFlagsMutuallyExclusive("layout", "vertical")
	cmd.MarkFlagsMutuallyExclusive("size", "horizontal")
	cmd.MarkFlagsMutuallyExclusive("size", "vertical")
}

// resolve builds the mapper the flags describe.
func (f *layoutFlags) resolve() (pixelMapper, error) {
	if f.file != "" {
		l, err := hexio.ImportLayout(f.file)
		if err != nil {
			return nil, err
		}
		if l.IsTile() && !l.Tile.Empty() {
			return tileMapper{l.Tile}, nil
		}
		return idealMapper{l.Spacing}, nil
	}

	o, err := hex.ParseOrientation(f.orientation)
	if err != nil {
		return nil, err
	}
	switch {
	case f.size != 0:
		if err := errs.ValidateSpacing(f.size, f.size); err != nil {
			return nil, err
		}
		return idealMapper{hex.NewGeometry(o, f.size)}, nil
	case f.horizontal != 0 || f.vertical != 0:
		if err := errs.ValidateSpacing(f.horizontal, f.vertical); err != nil {
			return nil, err
		}
		return idealMapper{hex.NewSpacing(o, f.horizontal, f.vertical)}, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidInput, "no grid given: use --layout, --size, or --horizontal and --vertical")
}

// pixelMapper is the lookup surface shared by ideal grids and irregular
// tiles. Only tiles can fail a lookup.
type pixelMapper interface {
	PixelCenter(a hex.Axial) hex.Point
	Axial(p hex.Point) (hex.Axial, error)
	PixelRelative(p hex.Point) (hex.Point, error)
}

type idealMapper struct{ hex.Layout }

func (m idealMapper) Axial(p hex.Point) (hex.Axial, error) {
	return m.NearestAxial(p), nil
}

func (m idealMapper) PixelRelative(p hex.Point) (hex.Point, error) {
	return m.Layout.PixelRelative(p), nil
}

type tileMapper struct{ *pixelhex.Tile }

func parseFloatArg(name, s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "%s: %q is not a number", name, s)
	}
	f := float32(v)
	if err := errs.ValidateFinite(name, f); err != nil {
		return 0, err
	}
	return f, nil
}

func parseIntArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "%s: %q is not an integer", name, s)
	}
	return v, nil
}

// parseAxialArgs reads a q, r pair from args[0:2].
func parseAxialArgs(args []string) (hex.Axial, error) {
	q, err := parseIntArg("q", args[0])
	if err != nil {
		return hex.Axial{}, err
	}
	r, err := parseIntArg("r", args[1])
	if err != nil {
		return hex.Axial{}, err
	}
	return hex.New(q, r), nil
}
