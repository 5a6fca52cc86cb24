package negotiation

import (
	"net/http"

	"github.com/geosolutions-it/gsr/internal/observability"
)

// Resolver runs negotiation strategies in a fixed priority order and
// guarantees the caller always has a usable media type.
type Resolver struct {
	logger       observability.Logger
	strategies   []Strategy
	fallbackType MediaType
	metrics      *Metrics
}

// ResolverOption is a functional option for configuring the resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger for the resolver.
func WithResolverLogger(logger observability.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithStrategies replaces the default strategy chain. Strategies are
// consulted in the given order.
func WithStrategies(strategies ...Strategy) ResolverOption {
	return func(r *Resolver) {
		r.strategies = strategies
	}
}

// WithFallbackType sets the media type appended to every concrete
// candidate list.
func WithFallbackType(mt MediaType) ResolverOption {
	return func(r *Resolver) {
		r.fallbackType = mt
	}
}

// NewResolver creates a resolver with the default strategy chain: the
// explicit format parameter first, then Accept header negotiation.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		logger:       observability.NopLogger(),
		fallbackType: MediaTypeJSON,
		metrics:      GetMetrics(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if len(r.strategies) == 0 {
		r.strategies = []Strategy{
			NewFormatParameterStrategy(),
			NewAcceptHeaderStrategy(),
		}
	}

	return r
}

// FallbackType returns the media type that terminates every concrete
// candidate list.
func (r *Resolver) FallbackType() MediaType {
	return r.fallbackType
}

// ResolveMediaTypes resolves the candidate response media types for the
// request. Strategies are consulted in order and the first one to
// express a preference wins; a strategy error aborts resolution
// immediately. The result is either the unconstrained outcome, meaning
// negotiation is fully open, or a candidate list ending with the
// fallback type. It is never an empty candidate list.
func (r *Resolver) ResolveMediaTypes(req *http.Request) (Outcome, error) {
	resolved := Unconstrained()
	strategyName := "none"

	for _, s := range r.strategies {
		outcome, err := s.Resolve(req)
		if err != nil {
			r.metrics.RecordError(s.Name())
			r.logger.Debug("negotiation aborted",
				observability.String("strategy", s.Name()),
				observability.Error(err))
			return Outcome{}, err
		}
		if !outcome.IsUnconstrained() {
			resolved = outcome
			strategyName = s.Name()
			break
		}
	}

	if resolved.IsUnconstrained() {
		r.metrics.RecordResolution(strategyName, "unconstrained")
		return resolved, nil
	}

	candidates := resolved.MediaTypes()
	switch {
	case len(candidates) == 0:
		// Strategies never produce a concrete empty list; if one does,
		// offer the fallback alone.
		candidates = []MediaType{r.fallbackType}
	case candidates[len(candidates)-1] != r.fallbackType:
		candidates = append(candidates, r.fallbackType)
	}

	final := Candidates(candidates...)

	r.metrics.RecordResolution(strategyName, "candidates")
	r.logger.Debug("media types resolved",
		observability.String("strategy", strategyName),
		observability.Strings("candidates", final.Strings()))

	return final, nil
}
