package encoding

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/geosolutions-it/gsr/internal/config"
)

// xmlEncoder implements Encoder for XML.
type xmlEncoder struct{}

// NewXMLEncoder creates an XML renderer.
func NewXMLEncoder() Encoder {
	return &xmlEncoder{}
}

// Encode encodes the value to XML bytes, including the XML header.
func (e *xmlEncoder) Encode(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}

	return buf.Bytes(), nil
}

// ContentType returns the XML content type.
func (e *xmlEncoder) ContentType() string {
	return config.ContentTypeXML
}
