package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder buffers values and emits them on Close: a single value
// directly, multiple values as a sequence.
type YAMLEncoder struct {
	w     io.Writer
	items []any
}

// NewYAML creates a YAML encoder.
func NewYAML(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

// Encode buffers a value.
func (e *YAMLEncoder) Encode(v any) error {
	e.items = append(e.items, v)
	return nil
}

// Close marshals and writes the buffered values.
func (e *YAMLEncoder) Close() error {
	if len(e.items) == 0 {
		return nil
	}

	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)

	var err error
	if len(e.items) == 1 {
		err = enc.Encode(e.items[0])
	} else {
		err = enc.Encode(e.items)
	}
	if err != nil {
		return err
	}
	return enc.Close()
}
