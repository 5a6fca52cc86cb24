// Package negotiation resolves the response media type for incoming
// requests using an ordered chain of negotiation strategies.
//
// The resolver consults the explicit "f" format parameter first and
// falls back to standard Accept header negotiation. The aggregate result
// is either fully open (the client accepts anything) or a
// preference-ordered candidate list that always ends with a concrete
// fallback type, so a renderable representation exists even when none of
// the client's stated preferences can be produced.
//
// # Example Usage
//
//	resolver := negotiation.NewResolver()
//	outcome, err := resolver.ResolveMediaTypes(req)
//
// # Thread Safety
//
// Strategies and resolvers are pure functions over the per-call request
// and are safe for concurrent use.
package negotiation
