// Package output serializes CLI results in the supported formats.
package output

import (
	"fmt"
	"io"
)

// Format identifies a result serialization format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name from a flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatJSONL, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", s)
	}
}

// Encoder writes a stream of result values. Buffering formats (JSON
// array, YAML) emit on Close; line formats emit per Encode call.
type Encoder interface {
	Encode(v any) error
	Close() error
}

// New creates an encoder for the given format.
func New(w io.Writer, format Format, pretty bool) (Encoder, error) {
	switch format {
	case FormatJSON:
		return NewJSON(w, pretty), nil
	case FormatJSONL:
		return NewJSONL(w), nil
	case FormatYAML:
		return NewYAML(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
