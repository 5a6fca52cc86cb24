package gateway

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geosolutions-it/gsr/internal/encoding"
	"github.com/geosolutions-it/gsr/internal/negotiation"
	"github.com/geosolutions-it/gsr/internal/observability"
)

// ServiceInfo describes a single published service.
type ServiceInfo struct {
	XMLName     xml.Name `json:"-" xml:"service"`
	Name        string   `json:"name" xml:"name"`
	Title       string   `json:"title" xml:"title"`
	Description string   `json:"description" xml:"description"`
	Version     string   `json:"version" xml:"version"`
	Enabled     bool     `json:"enabled" xml:"enabled"`
}

// ServiceCatalog is the list of published services.
type ServiceCatalog struct {
	XMLName  xml.Name      `json:"-" xml:"services"`
	Services []ServiceInfo `json:"services" xml:"service"`
}

// defaultCatalog returns the built-in service catalog.
func defaultCatalog() ServiceCatalog {
	return ServiceCatalog{
		Services: []ServiceInfo{
			{
				Name:        "features",
				Title:       "Feature Service",
				Description: "Vector feature access",
				Version:     "1.0.0",
				Enabled:     true,
			},
			{
				Name:        "maps",
				Title:       "Map Service",
				Description: "Rendered map access",
				Version:     "1.0.0",
				Enabled:     true,
			},
		},
	}
}

// handleHealth reports liveness.
func (g *Gateway) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleServiceCatalog renders the service catalog in the negotiated
// media type.
func (g *Gateway) handleServiceCatalog(c *gin.Context) {
	g.render(c, defaultCatalog())
}

// handleServiceInfo renders a single service entry in the negotiated
// media type.
func (g *Gateway) handleServiceInfo(c *gin.Context) {
	name := c.Param("name")

	for _, svc := range defaultCatalog().Services {
		if svc.Name == name {
			g.render(c, svc)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": gin.H{
			"code":    http.StatusNotFound,
			"message": "Service not found",
			"details": []string{"Service " + name + " is not published"},
		},
	})
}

// handleNotFound renders a 404 for unknown routes.
func (g *Gateway) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": gin.H{
			"code":    http.StatusNotFound,
			"message": "Not found",
			"details": []string{},
		},
	})
}

// render encodes v with the first negotiated media type that has a
// registered encoder.
func (g *Gateway) render(c *gin.Context, v interface{}) {
	encoder := g.encoderFor(c.Request)

	payload, err := encoder.Encode(v)
	if err != nil {
		g.logger.WithContext(c.Request.Context()).Error("response encoding failed",
			observability.String("content_type", encoder.ContentType()),
			observability.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    http.StatusInternalServerError,
				"message": "internal server error",
				"details": []string{},
			},
		})
		return
	}

	c.Data(http.StatusOK, encoder.ContentType(), payload)
}

// encoderFor picks an encoder from the negotiation outcome stored in
// the request context. An unconstrained outcome, or a candidate list
// with no renderable entry, falls back to the default JSON encoder.
func (g *Gateway) encoderFor(r *http.Request) encoding.Encoder {
	defaultEncoder := encoding.NewJSONEncoder(false)

	outcome, ok := negotiation.OutcomeFromContext(r.Context())
	if !ok || outcome.IsUnconstrained() {
		return defaultEncoder
	}

	for _, mt := range outcome.MediaTypes() {
		if mt == negotiation.MediaTypeAll {
			break
		}
		if encoder, err := g.encoders.GetEncoder(mt.String()); err == nil {
			return encoder
		}
	}

	return defaultEncoder
}
