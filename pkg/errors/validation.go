package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates a file path given on the command line or in a
// layout reference.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateLayoutFilename validates the name of a layout document.
// Only .toml and .json documents are understood.
func ValidateLayoutFilename(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".json":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported layout file extension %q (must be .toml or .json)", filepath.Ext(path))
	}
}

// ValidateSpacing checks that a pair of grid spacings is usable for
// pixel lookups: both values finite and strictly positive.
func ValidateSpacing(horizontal, vertical float32) error {
	if err := ValidateFinite("horizontal spacing", horizontal); err != nil {
		return err
	}
	if err := ValidateFinite("vertical spacing", vertical); err != nil {
		return err
	}
	if horizontal <= 0 || vertical <= 0 {
		return New(ErrCodeInvalidInput, "spacing must be positive (horizontal=%g, vertical=%g)", horizontal, vertical)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(name string, v float32) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %g", name, f)
	}
	return nil
}
