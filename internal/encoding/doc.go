// Package encoding provides response renderers for the gateway.
//
// An Encoder turns a response value into bytes for one media type. The
// EncoderFactory maps negotiated media types to encoders:
//
//   - JSON (application/json)
//   - GeoJSON (application/geo+json)
//   - XML (application/xml, text/xml)
//   - HTML (text/html)
//
// Media types without a registered encoder (KMZ archives, raster
// images) fall through to the JSON fallback the negotiation resolver
// guarantees.
//
// # Thread Safety
//
// All encoders and factories are safe for concurrent use.
package encoding
