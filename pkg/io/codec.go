package io

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/hextile/pkg/errors"
)

func encode(w io.Writer, f Format, doc document) error {
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown layout format %q", string(f))
	}
	return nil
}

func decode(r io.Reader, f Format) (document, error) {
	var doc document
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return document{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return document{}, errs.New(errs.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return document{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
		}
	default:
		return document{}, errs.New(errs.ErrCodeInvalidFormat, "unknown layout format %q", string(f))
	}
	return doc, nil
}
