// Package gateway provides the hosting dispatcher for the GeoServices
// gateway: the HTTP server, the middleware chain, and the handlers that
// render responses in the negotiated media type.
package gateway
