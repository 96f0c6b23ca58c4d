package io

import (
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/hextile/pkg/errors"
)

// Format is a layout document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat parses "toml" or "json", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTOML, FormatJSON:
		return f, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "unknown layout format %q (must be 'toml' or 'json')", s)
	}
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	if err := errs.ValidateLayoutFilename(path); err != nil {
		return "", err
	}
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
