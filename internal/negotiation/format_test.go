package negotiation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParameterStrategy_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		header        map[string]string
		wantTypes     []MediaType
		wantNoOpinion bool
	}{
		{
			name:          "no format parameter defers",
			url:           "/services",
			wantNoOpinion: true,
		},
		{
			name:          "unrelated parameters defer",
			url:           "/services?foo=bar",
			wantNoOpinion: true,
		},
		{
			name:      "json",
			url:       "/services?f=json",
			wantTypes: []MediaType{MediaTypeJSON},
		},
		{
			name:      "pjson maps to json",
			url:       "/services?f=pjson",
			wantTypes: []MediaType{MediaTypeJSON},
		},
		{
			name:      "geojson",
			url:       "/services?f=geojson",
			wantTypes: []MediaType{MediaTypeGeoJSON},
		},
		{
			name:      "kmz",
			url:       "/services?f=kmz",
			wantTypes: []MediaType{MediaTypeKMZ},
		},
		{
			name:      "xml yields both xml renderings",
			url:       "/services?f=xml",
			wantTypes: []MediaType{MediaTypeXML, MediaTypeTextXML},
		},
		{
			name:      "html",
			url:       "/services?f=html",
			wantTypes: []MediaType{MediaTypeHTML},
		},
		{
			name:      "image without format uses default",
			url:       "/services?f=image",
			wantTypes: []MediaType{MediaTypePNG},
		},
		{
			name:      "image with explicit format",
			url:       "/services?f=image&format=jpeg",
			wantTypes: []MediaType{MediaType("image/jpeg")},
		},
		{
			name:      "format parameter ignored without f=image",
			url:       "/services?f=json&format=jpeg",
			wantTypes: []MediaType{MediaTypeJSON},
		},
		{
			name:      "accept header ignored when f present",
			url:       "/services?f=html",
			header:    map[string]string{"Accept": "application/json"},
			wantTypes: []MediaType{MediaTypeHTML},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := NewFormatParameterStrategy()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			outcome, err := strategy.Resolve(req)
			require.NoError(t, err)

			if tt.wantNoOpinion {
				assert.True(t, outcome.IsUnconstrained())
				return
			}
			assert.False(t, outcome.IsUnconstrained())
			assert.Equal(t, tt.wantTypes, outcome.MediaTypes())
		})
	}
}

func TestFormatParameterStrategy_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantDetail string
	}{
		{
			name:       "unknown value",
			url:        "/services?f=yaml",
			wantDetail: "Format yaml is not supported",
		},
		{
			name:       "empty value is a rejection not a deferral",
			url:        "/services?f=",
			wantDetail: "Format  is not supported",
		},
		{
			name:       "case sensitive",
			url:        "/services?f=JSON",
			wantDetail: "Format JSON is not supported",
		},
		{
			name:       "whitespace not trimmed",
			url:        "/services?f=%20json",
			wantDetail: "Format  json is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := NewFormatParameterStrategy()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			outcome, err := strategy.Resolve(req)
			require.Error(t, err)
			assert.False(t, outcome.IsUnconstrained())
			assert.Empty(t, outcome.MediaTypes())

			var negErr *Error
			require.ErrorAs(t, err, &negErr)
			assert.Equal(t, http.StatusBadRequest, negErr.StatusCode)
			assert.Equal(t, "Output format not supported", negErr.Message)
			assert.Equal(t, []string{tt.wantDetail}, negErr.Details)
			assert.True(t, errors.Is(err, ErrUnsupportedFormat))
		})
	}
}

func TestFormatParameterStrategy_Resolve_InvalidImageFormat(t *testing.T) {
	strategy := NewFormatParameterStrategy()

	req := httptest.NewRequest(http.MethodGet, "/services?f=image&format=not%20valid%2F", nil)
	_, err := strategy.Resolve(req)
	require.Error(t, err)

	var negErr *Error
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, http.StatusBadRequest, negErr.StatusCode)
}

func TestFormatParameterStrategy_WithDefaultImageType(t *testing.T) {
	strategy := NewFormatParameterStrategy(
		WithDefaultImageType(MediaType("image/jpeg")),
	)

	req := httptest.NewRequest(http.MethodGet, "/services?f=image", nil)
	outcome, err := strategy.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, []MediaType{MediaType("image/jpeg")}, outcome.MediaTypes())
}

func TestFormatParameterStrategy_Name(t *testing.T) {
	assert.Equal(t, "format_parameter", NewFormatParameterStrategy().Name())
}
