package negotiation

import (
	"net/http"
	"net/url"
)

// Request parameters consumed by the explicit format strategy.
const (
	// FormatParameter forces a response representation, bypassing
	// Accept header negotiation.
	FormatParameter = "f"

	// ImageFormatParameter selects the image subtype when
	// FormatParameter is "image".
	ImageFormatParameter = "format"
)

// Explicit format parameter values.
const (
	formatJSON    = "json"
	formatPJSON   = "pjson"
	formatGeoJSON = "geojson"
	formatKMZ     = "kmz"
	formatXML     = "xml"
	formatHTML    = "html"
	formatImage   = "image"
)

// FormatParameterStrategy resolves media types from the explicit "f"
// request parameter. Value comparison is exact and case-sensitive; no
// trimming or case folding.
type FormatParameterStrategy struct {
	defaultImageType MediaType
}

// FormatStrategyOption is a functional option for configuring the
// format parameter strategy.
type FormatStrategyOption func(*FormatParameterStrategy)

// WithDefaultImageType overrides the image type used when f=image is
// requested without a format parameter.
func WithDefaultImageType(mt MediaType) FormatStrategyOption {
	return func(s *FormatParameterStrategy) {
		s.defaultImageType = mt
	}
}

// NewFormatParameterStrategy creates the explicit format strategy.
func NewFormatParameterStrategy(opts ...FormatStrategyOption) *FormatParameterStrategy {
	s := &FormatParameterStrategy{defaultImageType: MediaTypePNG}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name identifies the strategy.
func (s *FormatParameterStrategy) Name() string {
	return "format_parameter"
}

// Resolve maps the "f" parameter to media types. An absent parameter
// defers to later strategies; any present value outside the supported
// vocabulary is a 400 error.
func (s *FormatParameterStrategy) Resolve(r *http.Request) (Outcome, error) {
	query := r.URL.Query()
	if !query.Has(FormatParameter) {
		return Unconstrained(), nil
	}

	switch f := query.Get(FormatParameter); f {
	case formatJSON, formatPJSON:
		return Candidates(MediaTypeJSON), nil
	case formatGeoJSON:
		return Candidates(MediaTypeGeoJSON), nil
	case formatKMZ:
		return Candidates(MediaTypeKMZ), nil
	case formatXML:
		// Either XML rendering is acceptable, in this order.
		return Candidates(MediaTypeXML, MediaTypeTextXML), nil
	case formatHTML:
		return Candidates(MediaTypeHTML), nil
	case formatImage:
		return s.resolveImage(query)
	default:
		return Outcome{}, NewUnsupportedFormatError(f)
	}
}

// resolveImage handles f=image, which nests a second parameter lookup
// for the image subtype. Without a format parameter the configured
// default applies; with one, the media type is built from the raw value
// and validated only by media type parsing.
func (s *FormatParameterStrategy) resolveImage(query url.Values) (Outcome, error) {
	if !query.Has(ImageFormatParameter) {
		return Candidates(s.defaultImageType), nil
	}

	value := "image/" + query.Get(ImageFormatParameter)
	mt, err := ParseMediaType(value)
	if err != nil {
		return Outcome{}, NewInvalidMediaTypeError(value, err)
	}

	return Candidates(mt), nil
}
