package negotiation

import (
	"fmt"
	"mime"
	"strings"

	"github.com/geosolutions-it/gsr/internal/config"
)

// MediaType identifies a response representation format, such as
// "application/json" or "image/png". Values are compared by string
// identity.
type MediaType string

// Media types recognized by the explicit format vocabulary.
const (
	MediaTypeJSON    = MediaType(config.ContentTypeJSON)
	MediaTypeGeoJSON = MediaType(config.ContentTypeGeoJSON)
	MediaTypeKMZ     = MediaType(config.ContentTypeKMZ)
	MediaTypeXML     = MediaType(config.ContentTypeXML)
	MediaTypeTextXML = MediaType(config.ContentTypeTextXML)
	MediaTypeHTML    = MediaType(config.ContentTypeHTML)
	MediaTypePNG     = MediaType(config.ContentTypePNG)

	// MediaTypeAll is the Accept header wildcard.
	MediaTypeAll = MediaType("*/*")
)

// ParseMediaType parses and validates a media type string. The returned
// value is normalized to lowercase with parameters stripped.
func ParseMediaType(value string) (MediaType, error) {
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return "", fmt.Errorf("parse media type %q: %w", value, err)
	}

	slash := strings.IndexByte(parsed, '/')
	if slash <= 0 || slash == len(parsed)-1 {
		return "", fmt.Errorf("parse media type %q: missing subtype", value)
	}

	return MediaType(parsed), nil
}

// String returns the media type as a string.
func (m MediaType) String() string {
	return string(m)
}
