// Package config provides configuration types and loading for the gateway.
package config

// ContentType constants for the media types the gateway negotiates.
const (
	// ContentTypeJSON is the structured JSON content type.
	ContentTypeJSON = "application/json"

	// ContentTypeGeoJSON is the GeoJSON content type.
	ContentTypeGeoJSON = "application/geo+json"

	// ContentTypeKMZ is the KMZ archive content type.
	ContentTypeKMZ = "application/vnd.google-earth.kmz"

	// ContentTypeXML is the XML content type.
	ContentTypeXML = "application/xml"

	// ContentTypeTextXML is the alternate XML content type.
	ContentTypeTextXML = "text/xml"

	// ContentTypeHTML is the HTML content type.
	ContentTypeHTML = "text/html"

	// ContentTypePNG is the PNG image content type.
	ContentTypePNG = "image/png"
)
