// Package middleware provides HTTP middleware for the gateway.
//
// Middlewares compose in the standard func(http.Handler) http.Handler
// form. The negotiation middleware is the boundary between the media
// type resolver and the transport: it resolves candidates for each
// request, stores the outcome in the request context, and renders
// negotiation failures as GeoServices error bodies.
package middleware
