package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/geosolutions-it/gsr/internal/config"
	"github.com/geosolutions-it/gsr/internal/encoding"
	"github.com/geosolutions-it/gsr/internal/negotiation"
	"github.com/geosolutions-it/gsr/internal/observability"
)

// NegotiatedTypesHeader exposes the resolved candidate list as a hint
// for downstream consumers. It is absent when negotiation is fully
// open.
const NegotiatedTypesHeader = "X-Media-Types-Negotiated"

// MediaTypeResolver resolves candidate response media types for a
// request.
type MediaTypeResolver interface {
	ResolveMediaTypes(r *http.Request) (negotiation.Outcome, error)
}

// Negotiation returns a middleware that resolves the response media
// types for each request and stores the outcome in the request context.
// A negotiation failure is rendered as a GeoServices error body and the
// request does not reach the next handler.
func Negotiation(resolver MediaTypeResolver, logger observability.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = observability.NopLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome, err := resolver.ResolveMediaTypes(r)
			if err != nil {
				writeNegotiationError(w, r, err, logger)
				return
			}

			if !outcome.IsUnconstrained() {
				w.Header().Set(NegotiatedTypesHeader, strings.Join(outcome.Strings(), ", "))
			}

			ctx := negotiation.ContextWithOutcome(r.Context(), outcome)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// errorBody is the GeoServices error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

// errorDetail carries the status code, message, and detail strings of a
// service error.
type errorDetail struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// writeNegotiationError renders a negotiation failure. Structured
// negotiation errors keep their status code and details; anything else
// is reported as an internal error.
func writeNegotiationError(w http.ResponseWriter, r *http.Request, err error, logger observability.Logger) {
	status := http.StatusInternalServerError
	detail := errorDetail{
		Code:    status,
		Message: "internal server error",
		Details: []string{},
	}

	var negErr *negotiation.Error
	if errors.As(err, &negErr) {
		status = negErr.StatusCode
		detail = errorDetail{
			Code:    negErr.StatusCode,
			Message: negErr.Message,
			Details: negErr.Details,
		}
		if detail.Details == nil {
			detail.Details = []string{}
		}
	}

	logger.WithContext(r.Context()).Debug("negotiation failed",
		observability.String("path", r.URL.Path),
		observability.String("query", r.URL.RawQuery),
		observability.Int("status", status),
		observability.Error(err),
	)

	payload, marshalErr := encoding.MarshalJSON(errorBody{Error: detail}, false)
	if marshalErr != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", config.ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
