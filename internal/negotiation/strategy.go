package negotiation

import "net/http"

// Strategy proposes response media types for a request. A strategy
// returns a concrete candidate outcome, the unconstrained outcome to
// fall through to the next strategy in the chain, or an error that
// aborts resolution entirely.
//
// Strategies must treat the request as read-only.
type Strategy interface {
	// Name identifies the strategy in logs and metrics.
	Name() string

	// Resolve inspects the request and proposes acceptable response
	// media types.
	Resolve(r *http.Request) (Outcome, error)
}
