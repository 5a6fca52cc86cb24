package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosolutions-it/gsr/internal/config"
	"github.com/geosolutions-it/gsr/internal/negotiation"
	"github.com/geosolutions-it/gsr/internal/observability"
)

// stubResolver returns a fixed outcome or error.
type stubResolver struct {
	outcome negotiation.Outcome
	err     error
}

func (s *stubResolver) ResolveMediaTypes(_ *http.Request) (negotiation.Outcome, error) {
	return s.outcome, s.err
}

func TestNegotiation_StoresOutcomeInContext(t *testing.T) {
	resolver := &stubResolver{
		outcome: negotiation.Candidates(negotiation.MediaTypeHTML, negotiation.MediaTypeJSON),
	}

	var captured negotiation.Outcome
	var found bool
	handler := Negotiation(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, found = negotiation.OutcomeFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	require.True(t, found)
	assert.Equal(t,
		[]negotiation.MediaType{negotiation.MediaTypeHTML, negotiation.MediaTypeJSON},
		captured.MediaTypes())
	assert.Equal(t, "text/html, application/json", rec.Header().Get(NegotiatedTypesHeader))
}

func TestNegotiation_UnconstrainedOmitsHeader(t *testing.T) {
	resolver := &stubResolver{outcome: negotiation.Unconstrained()}

	var captured negotiation.Outcome
	handler := Negotiation(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = negotiation.OutcomeFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.True(t, captured.IsUnconstrained())
	assert.Empty(t, rec.Header().Get(NegotiatedTypesHeader))
}

func TestNegotiation_ErrorShortCircuits(t *testing.T) {
	resolver := &stubResolver{err: negotiation.NewUnsupportedFormatError("bogus")}

	reached := false
	handler := Negotiation(resolver, observability.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services?f=bogus", nil))

	assert.False(t, reached)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, config.ContentTypeJSON, rec.Header().Get("Content-Type"))

	var body struct {
		Error struct {
			Code    int      `json:"code"`
			Message string   `json:"message"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Error.Code)
	assert.Equal(t, "Output format not supported", body.Error.Message)
	assert.Equal(t, []string{"Format bogus is not supported"}, body.Error.Details)
}

func TestNegotiation_UnstructuredErrorIsInternal(t *testing.T) {
	resolver := &stubResolver{err: assert.AnError}

	handler := Negotiation(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error struct {
			Code    int      `json:"code"`
			Message string   `json:"message"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.NotNil(t, body.Error.Details)
}
