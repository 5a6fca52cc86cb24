package encoding

import (
	"errors"
	"strings"

	"github.com/geosolutions-it/gsr/internal/config"
	"github.com/geosolutions-it/gsr/internal/observability"
)

// Common encoding errors.
var (
	// ErrUnsupportedMediaType indicates that no encoder is registered
	// for the media type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrEncodingFailed indicates that encoding failed.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrNilValue indicates that the value to encode is nil.
	ErrNilValue = errors.New("nil value")
)

// Encoder renders a value as a response body.
type Encoder interface {
	// Encode encodes the value to bytes.
	Encode(v interface{}) ([]byte, error)

	// ContentType returns the Content-Type header value for this
	// encoder.
	ContentType() string
}

// EncoderFactory creates encoders keyed by media type.
type EncoderFactory interface {
	// GetEncoder returns an encoder for the given media type.
	GetEncoder(mediaType string) (Encoder, error)

	// SupportedTypes returns the media types with registered encoders.
	SupportedTypes() []string
}

// encoderFactory implements EncoderFactory.
type encoderFactory struct {
	logger   observability.Logger
	encoders map[string]Encoder
}

// NewEncoderFactory creates a factory with the default renderers.
func NewEncoderFactory(logger observability.Logger) EncoderFactory {
	if logger == nil {
		logger = observability.NopLogger()
	}

	factory := &encoderFactory{
		logger:   logger,
		encoders: make(map[string]Encoder),
	}

	jsonEncoder := NewJSONEncoder(false)
	factory.encoders[config.ContentTypeJSON] = jsonEncoder
	factory.encoders["text/json"] = jsonEncoder

	factory.encoders[config.ContentTypeGeoJSON] = NewGeoJSONEncoder()

	xmlEncoder := NewXMLEncoder()
	factory.encoders[config.ContentTypeXML] = xmlEncoder
	factory.encoders[config.ContentTypeTextXML] = xmlEncoder

	factory.encoders[config.ContentTypeHTML] = NewHTMLEncoder()

	return factory
}

// GetEncoder returns an encoder for the given media type.
func (f *encoderFactory) GetEncoder(mediaType string) (Encoder, error) {
	mt := normalizeMediaType(mediaType)

	encoder, exists := f.encoders[mt]
	if !exists {
		f.logger.Debug("no encoder for media type",
			observability.String("media_type", mediaType))
		return nil, ErrUnsupportedMediaType
	}

	return encoder, nil
}

// SupportedTypes returns the media types with registered encoders.
func (f *encoderFactory) SupportedTypes() []string {
	types := make([]string, 0, len(f.encoders))
	for mt := range f.encoders {
		types = append(types, mt)
	}
	return types
}

// normalizeMediaType strips parameters and surrounding whitespace from
// a media type (e.g. "application/json; charset=utf-8" →
// "application/json").
func normalizeMediaType(mediaType string) string {
	mt := strings.TrimSpace(mediaType)
	if idx := strings.IndexByte(mt, ';'); idx >= 0 {
		mt = strings.TrimSpace(mt[:idx])
	}
	return mt
}
