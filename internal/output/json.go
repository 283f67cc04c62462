package output

import (
	"encoding/json"
	"io"
)

// JSONEncoder buffers values and emits them on Close: a single value
// directly, multiple values as an array.
type JSONEncoder struct {
	w      io.Writer
	pretty bool
	items  []any
}

// NewJSON creates a JSON encoder.
func NewJSON(w io.Writer, pretty bool) *JSONEncoder {
	return &JSONEncoder{w: w, pretty: pretty}
}

// Encode buffers a value.
func (e *JSONEncoder) Encode(v any) error {
	e.items = append(e.items, v)
	return nil
}

// Close marshals and writes the buffered values.
func (e *JSONEncoder) Close() error {
	var payload any
	switch len(e.items) {
	case 0:
		return nil
	case 1:
		payload = e.items[0]
	default:
		payload = e.items
	}

	var (
		data []byte
		err  error
	)
	if e.pretty {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

// JSONLEncoder writes newline-delimited JSON, one value per line,
// immediately on each Encode.
type JSONLEncoder struct {
	enc *json.Encoder
}

// NewJSONL creates a JSONL encoder.
func NewJSONL(w io.Writer) *JSONLEncoder {
	return &JSONLEncoder{enc: json.NewEncoder(w)}
}

// Encode writes a value as one JSON line.
func (e *JSONLEncoder) Encode(v any) error {
	return e.enc.Encode(v)
}

// Close is a no-op; every value was already written.
func (e *JSONLEncoder) Close() error {
	return nil
}
