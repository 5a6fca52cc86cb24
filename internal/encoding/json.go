package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/geosolutions-it/gsr/internal/config"
)

// jsonEncoder implements Encoder for JSON.
type jsonEncoder struct {
	pretty bool
}

// NewJSONEncoder creates a JSON renderer. Pretty printing indents the
// output for human-facing responses.
func NewJSONEncoder(pretty bool) Encoder {
	return &jsonEncoder{pretty: pretty}
}

// Encode encodes the value to JSON bytes.
func (e *jsonEncoder) Encode(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if e.pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	// Drop the trailing newline added by the encoder.
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	return result, nil
}

// ContentType returns the JSON content type.
func (e *jsonEncoder) ContentType() string {
	return config.ContentTypeJSON
}

// MarshalJSON is a convenience function for JSON marshaling.
func MarshalJSON(v interface{}, pretty bool) ([]byte, error) {
	return NewJSONEncoder(pretty).Encode(v)
}

// geoJSONEncoder renders JSON bodies under the GeoJSON content type.
type geoJSONEncoder struct {
	inner Encoder
}

// NewGeoJSONEncoder creates a GeoJSON renderer.
func NewGeoJSONEncoder() Encoder {
	return &geoJSONEncoder{inner: NewJSONEncoder(false)}
}

// Encode encodes the value to JSON bytes.
func (e *geoJSONEncoder) Encode(v interface{}) ([]byte, error) {
	return e.inner.Encode(v)
}

// ContentType returns the GeoJSON content type.
func (e *geoJSONEncoder) ContentType() string {
	return config.ContentTypeGeoJSON
}
