package io

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	errs "github.com/matzehuels/hextile/pkg/errors"
	"github.com/matzehuels/hextile/pkg/hex"
	"github.com/matzehuels/hextile/pkg/pixelhex"
)

var formats = []Format{FormatTOML, FormatJSON}

// referenceTile is the 32-row 29x32 tile used across the layout tests.
func referenceTile(t *testing.T) *pixelhex.Tile {
	t.Helper()
	widths := []float32{11, 12, 13, 14, 15, 16, 17, 18, 18, 17, 16, 15, 14, 13, 12, 11}
	var samples []pixelhex.Sample
	for i := 0; i < 32; i++ {
		w := widths[i/2]
		samples = append(samples, pixelhex.Sample{Row: float32(i - 16), Min: -w, Max: w - 1})
	}
	tile, err := pixelhex.NewFlat(samples)
	if err != nil {
		t.Fatalf("NewFlat: %v", err)
	}
	return tile
}

func TestTileRoundTrip(t *testing.T) {
	odd, err := pixelhex.NewTile(
		hex.FlatSpacing(float32(1)/3, 0.1),
		pixelhex.Extent{Min: -1, Max: 0},
		[]pixelhex.Extent{{Min: -0.7, Max: 1e-7}, {Min: -3.4028235e38, Max: float32(math.Pi)}},
	)
	if err != nil {
		t.Fatalf("NewTile: %v", err)
	}
	empty, err := pixelhex.NewFlat(nil)
	if err != nil {
		t.Fatalf("NewFlat: %v", err)
	}

	tiles := map[string]*pixelhex.Tile{
		"reference": referenceTile(t),
		"odd":       odd,
		"empty":     empty,
	}
	for name, tile := range tiles {
		for _, f := range formats {
			t.Run(name+"/"+string(f), func(t *testing.T) {
				var buf bytes.Buffer
				if err := WriteTile(&buf, f, tile); err != nil {
					t.Fatalf("WriteTile: %v", err)
				}
				got, err := ReadTile(&buf, f)
				if err != nil {
					t.Fatalf("ReadTile: %v", err)
				}
				assertSameTile(t, tile, got)
			})
		}
	}
}

func assertSameTile(t *testing.T, want, got *pixelhex.Tile) {
	t.Helper()
	if got.Spacing() != want.Spacing() {
		t.Errorf("spacing = %+v, want %+v", got.Spacing(), want.Spacing())
	}
	if bits(got.HorizontalSpacing()) != bits(want.HorizontalSpacing()) ||
		bits(got.VerticalSpacing()) != bits(want.VerticalSpacing()) {
		t.Errorf("spacing bits differ")
	}
	if got.VerticalExtents() != want.VerticalExtents() {
		t.Errorf("vertical extents = %v, want %v", got.VerticalExtents(), want.VerticalExtents())
	}
	if !reflect.DeepEqual(got.Samples(), want.Samples()) {
		t.Errorf("samples = %v, want %v", got.Samples(), want.Samples())
	}
}

func bits(f float32) uint32 { return math.Float32bits(f) }

func TestWriteTile_TOMLShape(t *testing.T) {
	tile, err := pixelhex.NewFlat([]pixelhex.Sample{
		{Row: -1, Min: 0, Max: 1},
		{Row: 0, Min: -1, Max: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteTile(&buf, FormatTOML, tile); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`orientation = "flat"`,
		"vertical_spacing = 2.0",
		"horizontal_spacing = 4.0",
		"vertical_extents = [-1.0, 0.0]",
		"horizontal_extents = [[0.0, 1.0], [-1.0, 2.0]]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSpacingRoundTrip(t *testing.T) {
	spacings := []hex.Spacing{
		hex.FlatSpacing(7, 10),
		hex.PointySpacing(float32(math.Sqrt(3))*13, 19.5),
	}
	for _, s := range spacings {
		for _, f := range formats {
			var buf bytes.Buffer
			if err := WriteSpacing(&buf, f, s); err != nil {
				t.Fatalf("WriteSpacing(%s): %v", f, err)
			}
			if strings.Contains(buf.String(), "extents") {
				t.Errorf("spacing document contains extents:\n%s", buf.String())
			}
			got, err := ReadSpacing(&buf, f)
			if err != nil {
				t.Fatalf("ReadSpacing(%s): %v", f, err)
			}
			if got != s {
				t.Errorf("ReadSpacing(%s) = %+v, want %+v", f, got, s)
			}
		}
	}
}

func TestWrite_RejectsNonFinite(t *testing.T) {
	s := hex.FlatSpacing(float32(math.Inf(1)), 1)
	err := WriteSpacing(&bytes.Buffer{}, FormatJSON, s)
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("WriteSpacing(+Inf) error = %v, want INVALID_INPUT", err)
	}
}

func TestReadLayout(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		input    string
		wantTile bool
		wantRows int
	}{
		{
			name:   "toml spacing",
			format: FormatTOML,
			input:  "orientation = \"pointy\"\nvertical_spacing = 15.0\nhorizontal_spacing = 17.0\n",
		},
		{
			name:   "json spacing",
			format: FormatJSON,
			input:  `{"orientation": "flat", "vertical_spacing": 10, "horizontal_spacing": 7}`,
		},
		{
			name:   "toml tile",
			format: FormatTOML,
			input: `orientation = "flat"
vertical_spacing = 4.0
horizontal_spacing = 3.0
vertical_extents = [-1.0, 2.0]
horizontal_extents = [[0.0, 1.0], [-1.0, 2.0], [-1.0, 2.0], [0.0, 1.0]]
`,
			wantTile: true,
			wantRows: 4,
		},
		{
			name:     "json tile",
			format:   FormatJSON,
			input:    `{"orientation": "flat", "vertical_spacing": 1, "horizontal_spacing": 3, "vertical_extents": [0, 0], "horizontal_extents": [[-1, 1]]}`,
			wantTile: true,
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ReadLayout(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadLayout: %v", err)
			}
			if l.IsTile() != tt.wantTile {
				t.Fatalf("IsTile = %v, want %v", l.IsTile(), tt.wantTile)
			}
			if tt.wantTile {
				if l.Tile.Rows() != tt.wantRows {
					t.Errorf("Rows = %d, want %d", l.Tile.Rows(), tt.wantRows)
				}
				if l.Spacing != l.Tile.Spacing() {
					t.Errorf("Spacing = %+v, tile spacing %+v", l.Spacing, l.Tile.Spacing())
				}
			}
		})
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errs.Code
	}{
		{"malformed toml", FormatTOML, "orientation = ", errs.ErrCodeInvalidFormat},
		{"malformed json", FormatJSON, `{"orientation": `, errs.ErrCodeInvalidFormat},
		{"unknown toml key", FormatTOML, "orientation = \"flat\"\nspacing = 3.0\n", errs.ErrCodeInvalidFormat},
		{"unknown json key", FormatJSON, `{"orientation": "flat", "spacing": 3}`, errs.ErrCodeInvalidFormat},
		{"missing orientation", FormatJSON, `{"vertical_spacing": 1}`, errs.ErrCodeInvalidFormat},
		{"bad orientation", FormatJSON, `{"orientation": "diagonal"}`, errs.ErrCodeInvalidOrientation},
		{"pointy tile", FormatJSON, `{"orientation": "pointy", "vertical_extents": [0, 0], "horizontal_extents": [[0, 1]]}`, errs.ErrCodeUnsupported},
		{"short vertical extents", FormatJSON, `{"orientation": "flat", "vertical_extents": [0], "horizontal_extents": [[0, 1]]}`, errs.ErrCodeInvalidFormat},
		{"short row", FormatJSON, `{"orientation": "flat", "vertical_extents": [0, 0], "horizontal_extents": [[0]]}`, errs.ErrCodeInvalidFormat},
		{"row count mismatch", FormatJSON, `{"orientation": "flat", "vertical_extents": [0, 2], "horizontal_extents": [[0, 1]]}`, errs.ErrCodeInvalidSamples},
		{"unknown format", Format("yaml"), `orientation: flat`, errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTile(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	tile := referenceTile(t)

	for _, name := range []string{"tile.toml", "tile.JSON"} {
		path := filepath.Join(dir, name)
		if err := ExportTile(path, tile); err != nil {
			t.Fatalf("ExportTile(%s): %v", name, err)
		}
		got, err := ImportTile(path)
		if err != nil {
			t.Fatalf("ImportTile(%s): %v", name, err)
		}
		assertSameTile(t, tile, got)

		l, err := ImportLayout(path)
		if err != nil {
			t.Fatalf("ImportLayout(%s): %v", name, err)
		}
		if !l.IsTile() {
			t.Errorf("ImportLayout(%s) lost the extent table", name)
		}
	}

	path := filepath.Join(dir, "grid.json")
	if err := ExportSpacing(path, hex.PointySpacing(17, 15)); err != nil {
		t.Fatalf("ExportSpacing: %v", err)
	}
	l, err := ImportLayout(path)
	if err != nil {
		t.Fatalf("ImportLayout: %v", err)
	}
	if l.IsTile() || l.Spacing != hex.PointySpacing(17, 15) {
		t.Errorf("ImportLayout = %+v", l)
	}
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportLayout(filepath.Join(dir, "missing.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want FILE_NOT_FOUND", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error does not wrap os.ErrNotExist")
	}

	_, err = ImportTile(filepath.Join(dir, "tile.yaml"))
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("bad extension: error = %v, want INVALID_FORMAT", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ImportTile(bad)
	if !errs.Is(err, errs.ErrCodeInvalidFormat) || !strings.Contains(err.Error(), bad) {
		t.Errorf("bad content: error = %v, want INVALID_FORMAT naming the file", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"layout.toml", FormatTOML, true},
		{"dir/Layout.Json", FormatJSON, true},
		{"layout.yml", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
	if FormatTOML.Ext() != ".toml" {
		t.Errorf("Ext = %q", FormatTOML.Ext())
	}
}
