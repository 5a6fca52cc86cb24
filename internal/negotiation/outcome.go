package negotiation

import "context"

// Outcome is the result of a negotiation strategy: either the
// unconstrained sentinel, meaning the strategy expressed no preference
// and any type is acceptable, or a non-empty preference-ordered
// candidate list. The two cases are distinct by construction; an
// unconstrained outcome is not an empty candidate list.
type Outcome struct {
	unconstrained bool
	candidates    []MediaType
}

// Unconstrained returns the outcome meaning "no opinion; anything is
// acceptable".
func Unconstrained() Outcome {
	return Outcome{unconstrained: true}
}

// Candidates returns a concrete outcome carrying the given media types,
// most preferred first.
func Candidates(types ...MediaType) Outcome {
	return Outcome{candidates: append([]MediaType(nil), types...)}
}

// IsUnconstrained reports whether the outcome is the unconstrained
// sentinel.
func (o Outcome) IsUnconstrained() bool {
	return o.unconstrained
}

// MediaTypes returns a copy of the candidate list, nil for the
// unconstrained outcome.
func (o Outcome) MediaTypes() []MediaType {
	if o.candidates == nil {
		return nil
	}
	return append([]MediaType(nil), o.candidates...)
}

// Strings returns the candidates as plain strings, for logging and
// response headers.
func (o Outcome) Strings() []string {
	if o.candidates == nil {
		return nil
	}
	result := make([]string, len(o.candidates))
	for i, mt := range o.candidates {
		result[i] = string(mt)
	}
	return result
}

// outcomeContextKey is the context key for resolved outcomes.
type outcomeContextKey struct{}

// ContextWithOutcome stores a resolved outcome in the context.
func ContextWithOutcome(ctx context.Context, o Outcome) context.Context {
	return context.WithValue(ctx, outcomeContextKey{}, o)
}

// OutcomeFromContext returns the outcome stored by the negotiation
// middleware. The second return value is false when no resolution ran
// for this request.
func OutcomeFromContext(ctx context.Context) (Outcome, bool) {
	o, ok := ctx.Value(outcomeContextKey{}).(Outcome)
	return o, ok
}
