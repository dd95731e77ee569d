// Package diagfmt renders classified diagnostics and the rule catalog.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"bashate/internal/diag"
)

// Format selects the diagnostic line layout.
type Format uint8

const (
	// FormatPEP8: file:line:1: E001 message
	FormatPEP8 Format = iota
	// FormatLong is the two-line layout with the offending line.
	FormatLong
	// FormatJSON is one JSON object per line.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatPEP8:
		return "pep8"
	case FormatLong:
		return "long"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseFormat converts a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pep8":
		return FormatPEP8, nil
	case "long":
		return FormatLong, nil
	case "json", "ndjson":
		return FormatJSON, nil
	}
	return FormatPEP8, fmt.Errorf("unsupported format %q (must be pep8, long or json)", s)
}

// Options configures an emitter.
type Options struct {
	Color bool
}

// New returns the emitter for format writing to w.
func New(w io.Writer, format Format, opts Options) diag.Emitter {
	switch format {
	case FormatLong:
		return &Long{w: w, palette: newPalette(opts.Color)}
	case FormatJSON:
		return NewJSON(w)
	default:
		return &PEP8{w: w, palette: newPalette(opts.Color)}
	}
}
