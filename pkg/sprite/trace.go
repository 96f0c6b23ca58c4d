package sprite

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/pixelhex"
)

// Options control which pixels count as part of the tile.
type Options struct {
	// AlphaThreshold is the smallest alpha value of a tile pixel.
	AlphaThreshold uint8 `json:"alpha_threshold"`
	// Key is an optional "#rrggbb" background colour.
	Key string `json:"key,omitempty"`
	// Tolerance is the L*a*b* distance under which a pixel matches Key.
	Tolerance float64 `json:"tolerance,omitempty"`
}

// DefaultOptions treats every pixel with alpha >= 128 as part of the tile.
func DefaultOptions() Options {
	return Options{AlphaThreshold: 128, Tolerance: 0.05}
}

// Validate checks the options and parses the key colour.
func (o Options) Validate() error {
	if o.AlphaThreshold == 0 && o.Key == "" {
		return errs.New(errs.ErrCodeInvalidInput, "alpha threshold 0 without a key colour selects every pixel")
	}
	if o.Tolerance < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "tolerance must be >= 0, got %g", o.Tolerance)
	}
	if o.Key != "" {
		if _, err := colorful.Hex(o.Key); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid key colour %q", o.Key)
		}
	}
	return nil
}

// Load opens a sprite image. PNG, JPEG, GIF, BMP and TIFF are supported.
func Load(path string) (image.Image, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidImage, err, "open sprite %s", path)
	}
	return img, nil
}

// Decode reads a sprite image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidImage, err, "decode sprite")
	}
	return img, nil
}

// Trace returns one sample per row of the tile silhouette in img, top to
// bottom. An image without tile pixels yields no samples.
//
// Trace fails with INVALID_IMAGE when a row between the first and last
// tile row is empty, since such a silhouette has no extent table.
func Trace(img image.Image, opts Options) ([]pixelhex.Sample, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m := newMatcher(opts)

	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	cx, cy := w/2, h/2

	var samples []pixelhex.Sample
	gap := -1
	for y := 0; y < h; y++ {
		left, right := -1, -1
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			if !m.tile(src.Pix[i : i+4 : i+4]) {
				continue
			}
			if left < 0 {
				left = x
			}
			right = x
		}

		if left < 0 {
			if len(samples) > 0 && gap < 0 {
				gap = y
			}
			continue
		}
		if gap >= 0 {
			return nil, errs.New(errs.ErrCodeInvalidImage, "sprite row %d is empty inside the silhouette", gap)
		}
		samples = append(samples, pixelhex.Sample{
			Row: float32(y - cy),
			Min: float32(left - cx),
			Max: float32(right - cx),
		})
	}
	return samples, nil
}

type matcher struct {
	alpha     uint8
	key       colorful.Color
	keyed     bool
	tolerance float64
}

func newMatcher(opts Options) matcher {
	m := matcher{alpha: opts.AlphaThreshold, tolerance: opts.Tolerance}
	if opts.Key != "" {
		m.key, _ = colorful.Hex(opts.Key)
		m.keyed = true
	}
	return m
}

// tile reports whether the NRGBA pixel px belongs to the tile.
func (m matcher) tile(px []uint8) bool {
	if px[3] < m.alpha {
		return false
	}
	if !m.keyed {
		return true
	}
	c := colorful.Color{R: float64(px[0]) / 255, G: float64(px[1]) / 255, B: float64(px[2]) / 255}
	return c.DistanceLab(m.key) > m.tolerance
}
